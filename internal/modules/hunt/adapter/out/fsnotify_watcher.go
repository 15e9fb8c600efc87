package out

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	huntout "huntlog/internal/modules/hunt/port/out"
)

const defaultSettle = 500 * time.Millisecond

// FSNotifyWatcher reports files in one directory once they stop changing
// for the settle period. The client writes reports in several chunks.
type FSNotifyWatcher struct {
	settle time.Duration
	log    logrus.FieldLogger
}

func NewFSNotifyWatcher(settle time.Duration, log logrus.FieldLogger) huntout.ReportWatcher {
	if settle <= 0 {
		settle = defaultSettle
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FSNotifyWatcher{settle: settle, log: log}
}

// Watch blocks until ctx is done. found runs on the calling goroutine, one
// path at a time.
func (w *FSNotifyWatcher) Watch(ctx context.Context, dir string, found func(path string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.WithField("dir", dir).Info("watching for reports")

	pending := map[string]time.Time{}
	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !IsReportFile(event.Name) || !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			w.log.WithFields(logrus.Fields{"file": event.Name, "op": event.Op.String()}).Debug("report changed")
			pending[event.Name] = time.Now()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watcher error")
		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.settle {
					continue
				}
				delete(pending, path)
				found(path)
			}
		}
	}
}
