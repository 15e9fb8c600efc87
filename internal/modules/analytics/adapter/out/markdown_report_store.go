package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	analyticsout "huntlog/internal/modules/analytics/port/out"
	"huntlog/internal/platform/markdown"
)

const (
	blockStart = "<!-- huntlog:analysis:start -->"
	blockEnd   = "<!-- huntlog:analysis:end -->"
)

// MarkdownReportStore keeps analyses as Markdown notes. Re-saving replaces
// only the marked block and the frontmatter keys it owns.
type MarkdownReportStore struct{}

func NewMarkdownReportStore() analyticsout.ReportStore {
	return MarkdownReportStore{}
}

func (MarkdownReportStore) Save(_ context.Context, path string, meta map[string]any, generated string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	existing := map[string]any{}
	body := "# Hunt analysis\n"
	payload, err := os.ReadFile(path)
	switch {
	case err == nil:
		existing, body, err = markdown.Split(string(payload))
		if err != nil {
			return "", fmt.Errorf("parse report note: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read report note: %w", err)
	}
	for k, v := range meta {
		existing[k] = v
	}
	rendered, err := markdown.Render(existing, markdown.ReplaceBlock(body, blockStart, blockEnd, generated))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report note: %w", err)
	}
	return path, nil
}
