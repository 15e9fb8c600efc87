package out

import (
	"context"

	"huntlog/internal/modules/hunt/domain"
)

// HuntRepository persists hunts. Implementations serialise writes.
type HuntRepository interface {
	Save(ctx context.Context, hunt domain.Hunt) (int64, error)
	Query(ctx context.Context, filter domain.Filter) ([]domain.Hunt, error)
	Get(ctx context.Context, id int64) (domain.Hunt, error)
	Update(ctx context.Context, hunt domain.Hunt) error
	BatchUpdate(ctx context.Context, ids []int64, character, location *string) (int, error)
	Delete(ctx context.Context, ids []int64) (int, error)
	AggregateKills(ctx context.Context, filter domain.Filter) ([]domain.Kill, error)
}

type RosterRepository interface {
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	DefaultCharacter(ctx context.Context) (string, error)
	SetDefaultCharacter(ctx context.Context, name string) error
	AddCharacter(ctx context.Context, name string) error
	DeleteCharacter(ctx context.Context, name string) error
	ListLocations(ctx context.Context) ([]string, error)
	AddLocation(ctx context.Context, name string) error
	DeleteLocation(ctx context.Context, name string) error
}

type ReportReader interface {
	ReadReport(ctx context.Context, path string) (string, error)
	ListReports(ctx context.Context, dir string) ([]string, error)
}

type RawExporter interface {
	Export(ctx context.Context, dir, name, content string) (string, error)
}

// ReportWatcher calls found for every report file created or rewritten in
// dir until ctx is done.
type ReportWatcher interface {
	Watch(ctx context.Context, dir string, found func(path string)) error
}
