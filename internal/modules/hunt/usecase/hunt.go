package usecase

import (
	"context"
	"fmt"
	"strings"

	"huntlog/internal/modules/hunt/domain"
	huntdto "huntlog/internal/modules/hunt/dto"
	huntin "huntlog/internal/modules/hunt/port/in"
	huntout "huntlog/internal/modules/hunt/port/out"
	"huntlog/internal/modules/hunt/service"
	apperrors "huntlog/internal/platform/errors"
)

type Interactor struct {
	svc     *service.HuntService
	watcher huntout.ReportWatcher
}

func NewInteractor(svc *service.HuntService, watcher huntout.ReportWatcher) huntin.Usecase {
	return &Interactor{svc: svc, watcher: watcher}
}

func (i *Interactor) Parse(_ context.Context, text string) (huntdto.ParseOutput, error) {
	r := domain.ParseReport(text)
	h := domain.NewHunt(r, text, "", "")
	return huntdto.ParseOutput{
		IsSession:   r.IsSession(),
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		DurationMin: r.DurationMin,
		RawXP:       r.RawXP,
		XP:          r.XP,
		Loot:        r.Loot,
		Supplies:    r.Supplies,
		Balance:     r.Balance,
		Payment:     h.Payment(),
		Damage:      r.Damage,
		Healing:     r.Healing,
		Monsters:    toMonsterOutputs(r.Kills),
	}, nil
}

func (i *Interactor) Import(ctx context.Context, input huntdto.ImportInput) (huntdto.ImportOutput, error) {
	return i.svc.Import(ctx, input.Reports, input.Defaults, input.AllowDuplicates)
}

func (i *Interactor) ImportFiles(ctx context.Context, input huntdto.ImportFilesInput) (huntdto.ImportOutput, error) {
	if len(input.Paths) == 0 {
		return huntdto.ImportOutput{}, fmt.Errorf("%w: no report files given", apperrors.ErrInvalidInput)
	}
	return i.svc.ImportFiles(ctx, input.Paths, input.Defaults, input.AllowDuplicates)
}

func (i *Interactor) Check(ctx context.Context, dir string) (huntdto.CheckOutput, error) {
	if strings.TrimSpace(dir) == "" {
		return huntdto.CheckOutput{}, fmt.Errorf("%w: report directory is not configured", apperrors.ErrInvalidInput)
	}
	pending, err := i.svc.Pending(ctx, dir)
	if err != nil {
		return huntdto.CheckOutput{}, err
	}
	return huntdto.CheckOutput{Dir: dir, Pending: pending}, nil
}

// Watch imports report files as they appear in input.Dir until ctx is done.
// Rewritten files are deduplicated like any other import.
func (i *Interactor) Watch(ctx context.Context, input huntdto.WatchInput, onImport func(huntdto.ImportOutput)) error {
	if i.watcher == nil {
		return fmt.Errorf("report watcher is not configured")
	}
	if strings.TrimSpace(input.Dir) == "" {
		return fmt.Errorf("%w: report directory is not configured", apperrors.ErrInvalidInput)
	}
	return i.watcher.Watch(ctx, input.Dir, func(path string) {
		out, err := i.svc.ImportFiles(ctx, []string{path}, input.Defaults, false)
		if err != nil {
			out = huntdto.ImportOutput{
				Results: []huntdto.ImportResult{{Name: path, Status: huntdto.StatusFailed, Err: err}},
				Failed:  1,
			}
		}
		if onImport != nil {
			onImport(out)
		}
	})
}

func (i *Interactor) List(ctx context.Context, filter huntdto.FilterInput) ([]huntdto.HuntOutput, error) {
	hunts, err := i.svc.Query(ctx, toFilter(filter))
	if err != nil {
		return nil, err
	}
	out := make([]huntdto.HuntOutput, 0, len(hunts))
	for _, h := range hunts {
		out = append(out, toHuntOutput(h))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, huntID int64) (huntdto.HuntOutput, error) {
	h, err := i.svc.Get(ctx, huntID)
	if err != nil {
		return huntdto.HuntOutput{}, err
	}
	return toHuntOutput(h), nil
}

func (i *Interactor) Update(ctx context.Context, input huntdto.EditInput) (huntdto.HuntOutput, error) {
	h := domain.Hunt{
		ID:          input.ID,
		Character:   input.Character,
		Location:    input.Location,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		DurationMin: input.DurationMin,
		RawXP:       input.RawXP,
		XP:          input.XP,
		Loot:        input.Loot,
		Supplies:    input.Supplies,
		Balance:     input.Balance,
		Damage:      input.Damage,
		Healing:     input.Healing,
	}
	if input.Monsters != nil {
		h.Monsters = make([]domain.Monster, 0, len(input.Monsters))
		for _, m := range input.Monsters {
			h.Monsters = append(h.Monsters, domain.Monster{Name: m.Name, Count: m.Count})
		}
	}
	updated, err := i.svc.Update(ctx, h)
	if err != nil {
		return huntdto.HuntOutput{}, err
	}
	return toHuntOutput(updated), nil
}

func (i *Interactor) BatchUpdate(ctx context.Context, input huntdto.BatchEditInput) (int, error) {
	return i.svc.BatchUpdate(ctx, input.IDs, input.Character, input.Location)
}

func (i *Interactor) Delete(ctx context.Context, ids []int64) (int, error) {
	return i.svc.Delete(ctx, ids)
}

func (i *Interactor) Export(ctx context.Context, input huntdto.ExportInput) (huntdto.ExportOutput, error) {
	paths, err := i.svc.Export(ctx, input.IDs, input.Dir)
	if err != nil {
		return huntdto.ExportOutput{Paths: paths}, err
	}
	return huntdto.ExportOutput{Paths: paths}, nil
}

func (i *Interactor) AggregateKills(ctx context.Context, filter huntdto.FilterInput) ([]huntdto.KillOutput, error) {
	kills, err := i.svc.AggregateKills(ctx, toFilter(filter))
	if err != nil {
		return nil, err
	}
	out := make([]huntdto.KillOutput, 0, len(kills))
	for _, k := range kills {
		out = append(out, huntdto.KillOutput{Name: k.Name, Total: k.Total})
	}
	return out, nil
}

func (i *Interactor) ListCharacters(ctx context.Context) ([]huntdto.CharacterOutput, error) {
	chars, err := i.svc.Characters(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]huntdto.CharacterOutput, 0, len(chars))
	for _, c := range chars {
		out = append(out, huntdto.CharacterOutput{Name: c.Name, IsDefault: c.IsDefault})
	}
	return out, nil
}

func (i *Interactor) DefaultCharacter(ctx context.Context) (string, error) {
	return i.svc.DefaultCharacter(ctx)
}

func (i *Interactor) SetDefaultCharacter(ctx context.Context, name string) error {
	return i.svc.SetDefaultCharacter(ctx, name)
}

func (i *Interactor) AddCharacter(ctx context.Context, name string) error {
	return i.svc.AddCharacter(ctx, name)
}

func (i *Interactor) DeleteCharacter(ctx context.Context, name string) error {
	return i.svc.DeleteCharacter(ctx, name)
}

func (i *Interactor) ListLocations(ctx context.Context) ([]string, error) {
	return i.svc.Locations(ctx)
}

func (i *Interactor) AddLocation(ctx context.Context, name string) error {
	return i.svc.AddLocation(ctx, name)
}

func (i *Interactor) DeleteLocation(ctx context.Context, name string) error {
	return i.svc.DeleteLocation(ctx, name)
}

func toFilter(f huntdto.FilterInput) domain.Filter {
	return domain.Filter{
		Character:      strings.TrimSpace(f.Character),
		LocationLike:   strings.TrimSpace(f.LocationLike),
		DateStart:      f.DateStart,
		DateEnd:        f.DateEnd,
		ExactDate:      f.ExactDate,
		ExactStartTime: f.ExactStartTime,
	}
}

func toHuntOutput(h domain.Hunt) huntdto.HuntOutput {
	return huntdto.HuntOutput{
		ID:          h.ID,
		Character:   h.Character,
		Location:    h.Location,
		Date:        h.Date,
		StartTime:   h.StartTime,
		EndTime:     h.EndTime,
		DurationMin: h.DurationMin,
		RawXP:       h.RawXP,
		XP:          h.XP,
		Loot:        h.Loot,
		Supplies:    h.Supplies,
		Balance:     h.Balance,
		Payment:     h.Payment(),
		Damage:      h.Damage,
		Healing:     h.Healing,
		Monsters:    toMonsterOutputs(h.Monsters),
		RawText:     h.RawText,
	}
}

func toMonsterOutputs(in []domain.Monster) []huntdto.MonsterOutput {
	out := make([]huntdto.MonsterOutput, 0, len(in))
	for _, m := range in {
		out = append(out, huntdto.MonsterOutput{Name: m.Name, Count: m.Count})
	}
	return out
}
