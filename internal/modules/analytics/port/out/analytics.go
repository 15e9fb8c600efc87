package out

import (
	"context"

	"huntlog/internal/modules/analytics/domain"
)

// HuntSource reads stored hunts. Records come back newest first.
type HuntSource interface {
	Records(ctx context.Context, filter domain.Filter) ([]domain.Record, error)
	Kills(ctx context.Context, filter domain.Filter) ([]domain.Kill, error)
}

// ReportStore writes a generated report into a note at path, keeping any
// text the user added around the generated block.
type ReportStore interface {
	Save(ctx context.Context, path string, meta map[string]any, generated string) (string, error)
}
