package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	huntout "huntlog/internal/modules/hunt/port/out"
)

// FileReportReader loads report files written by the game client. Files
// that are not valid UTF-8 are decoded as Windows-1252.
type FileReportReader struct{}

func NewFileReportReader() huntout.ReportReader {
	return FileReportReader{}
}

func (FileReportReader) ReadReport(_ context.Context, path string) (string, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	if utf8.Valid(payload) {
		return strings.TrimPrefix(string(payload), "\ufeff"), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("decode report %s: %w", filepath.Base(path), err)
	}
	return string(decoded), nil
}

// ListReports returns the .txt and .log files directly inside dir, sorted.
func (FileReportReader) ListReports(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsReportFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func IsReportFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".txt" || ext == ".log"
}
