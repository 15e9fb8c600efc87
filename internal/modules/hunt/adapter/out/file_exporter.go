package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	huntout "huntlog/internal/modules/hunt/port/out"
)

type FileExporter struct{}

func NewFileExporter() huntout.RawExporter {
	return FileExporter{}
}

// Export writes content verbatim to dir/name, replacing any existing file.
func (FileExporter) Export(_ context.Context, dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
