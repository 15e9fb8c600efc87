package in

import (
	"context"

	"huntlog/internal/modules/hunt/dto"
)

type Usecase interface {
	Parse(ctx context.Context, text string) (dto.ParseOutput, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
	ImportFiles(ctx context.Context, input dto.ImportFilesInput) (dto.ImportOutput, error)
	Check(ctx context.Context, dir string) (dto.CheckOutput, error)
	Watch(ctx context.Context, input dto.WatchInput, onImport func(dto.ImportOutput)) error

	List(ctx context.Context, filter dto.FilterInput) ([]dto.HuntOutput, error)
	Get(ctx context.Context, id int64) (dto.HuntOutput, error)
	Update(ctx context.Context, input dto.EditInput) (dto.HuntOutput, error)
	BatchUpdate(ctx context.Context, input dto.BatchEditInput) (int, error)
	Delete(ctx context.Context, ids []int64) (int, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	AggregateKills(ctx context.Context, filter dto.FilterInput) ([]dto.KillOutput, error)

	ListCharacters(ctx context.Context) ([]dto.CharacterOutput, error)
	DefaultCharacter(ctx context.Context) (string, error)
	SetDefaultCharacter(ctx context.Context, name string) error
	AddCharacter(ctx context.Context, name string) error
	DeleteCharacter(ctx context.Context, name string) error
	ListLocations(ctx context.Context) ([]string, error)
	AddLocation(ctx context.Context, name string) error
	DeleteLocation(ctx context.Context, name string) error
}
