package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	huntout "huntlog/internal/modules/hunt/adapter/out"
	"huntlog/internal/platform/logging"
)

func TestFSNotifyWatcherReportsSettledFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	found := make(chan string, 4)
	watcher := huntout.NewFSNotifyWatcher(50*time.Millisecond, logging.Discard())
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, dir, func(path string) { found <- path })
	}()

	report := filepath.Join(dir, "hunt.txt")
	deadline := time.After(8 * time.Second)
	for {
		if err := os.WriteFile(report, []byte("Session: 01:00h"), 0o644); err != nil {
			t.Fatalf("write report: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "ignored.md"), []byte("x"), 0o644); err != nil {
			t.Fatalf("write note: %v", err)
		}
		select {
		case path := <-found:
			if path != report {
				t.Fatalf("unexpected path %s", path)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch: %v", err)
			}
			return
		case <-time.After(500 * time.Millisecond):
		case <-deadline:
			t.Fatalf("report was never reported")
		}
	}
}
