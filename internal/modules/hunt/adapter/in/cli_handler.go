package in

import (
	"context"

	huntdto "huntlog/internal/modules/hunt/dto"
	huntin "huntlog/internal/modules/hunt/port/in"
)

type CLIHandler struct {
	usecase huntin.Usecase
}

func NewCLIHandler(usecase huntin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Parse(ctx context.Context, text string) (huntdto.ParseOutput, error) {
	return h.usecase.Parse(ctx, text)
}

func (h CLIHandler) ImportFiles(ctx context.Context, paths []string, character, location string, allowDuplicates bool) (huntdto.ImportOutput, error) {
	return h.usecase.ImportFiles(ctx, huntdto.ImportFilesInput{
		Paths:           paths,
		Defaults:        huntdto.ImportDefaults{Character: character, Location: location},
		AllowDuplicates: allowDuplicates,
	})
}

func (h CLIHandler) ImportText(ctx context.Context, name, text, character, location string, allowDuplicates bool) (huntdto.ImportOutput, error) {
	return h.usecase.Import(ctx, huntdto.ImportInput{
		Reports:         []huntdto.RawReport{{Name: name, Text: text}},
		Defaults:        huntdto.ImportDefaults{Character: character, Location: location},
		AllowDuplicates: allowDuplicates,
	})
}

func (h CLIHandler) Check(ctx context.Context, dir string) (huntdto.CheckOutput, error) {
	return h.usecase.Check(ctx, dir)
}

func (h CLIHandler) Watch(ctx context.Context, dir string, onImport func(huntdto.ImportOutput)) error {
	return h.usecase.Watch(ctx, huntdto.WatchInput{Dir: dir}, onImport)
}

func (h CLIHandler) List(ctx context.Context, filter huntdto.FilterInput) ([]huntdto.HuntOutput, error) {
	return h.usecase.List(ctx, filter)
}

func (h CLIHandler) Get(ctx context.Context, huntID int64) (huntdto.HuntOutput, error) {
	return h.usecase.Get(ctx, huntID)
}

func (h CLIHandler) Update(ctx context.Context, input huntdto.EditInput) (huntdto.HuntOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) BatchUpdate(ctx context.Context, ids []int64, character, location *string) (int, error) {
	return h.usecase.BatchUpdate(ctx, huntdto.BatchEditInput{IDs: ids, Character: character, Location: location})
}

func (h CLIHandler) Delete(ctx context.Context, ids []int64) (int, error) {
	return h.usecase.Delete(ctx, ids)
}

func (h CLIHandler) Export(ctx context.Context, ids []int64, dir string) (huntdto.ExportOutput, error) {
	return h.usecase.Export(ctx, huntdto.ExportInput{IDs: ids, Dir: dir})
}

func (h CLIHandler) Kills(ctx context.Context, filter huntdto.FilterInput) ([]huntdto.KillOutput, error) {
	return h.usecase.AggregateKills(ctx, filter)
}

func (h CLIHandler) Characters(ctx context.Context) ([]huntdto.CharacterOutput, error) {
	return h.usecase.ListCharacters(ctx)
}

func (h CLIHandler) DefaultCharacter(ctx context.Context) (string, error) {
	return h.usecase.DefaultCharacter(ctx)
}

func (h CLIHandler) SetDefaultCharacter(ctx context.Context, name string) error {
	return h.usecase.SetDefaultCharacter(ctx, name)
}

func (h CLIHandler) AddCharacter(ctx context.Context, name string) error {
	return h.usecase.AddCharacter(ctx, name)
}

func (h CLIHandler) DeleteCharacter(ctx context.Context, name string) error {
	return h.usecase.DeleteCharacter(ctx, name)
}

func (h CLIHandler) Locations(ctx context.Context) ([]string, error) {
	return h.usecase.ListLocations(ctx)
}

func (h CLIHandler) AddLocation(ctx context.Context, name string) error {
	return h.usecase.AddLocation(ctx, name)
}

func (h CLIHandler) DeleteLocation(ctx context.Context, name string) error {
	return h.usecase.DeleteLocation(ctx, name)
}
