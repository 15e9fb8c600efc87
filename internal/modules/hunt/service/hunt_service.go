package service

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"huntlog/internal/modules/hunt/domain"
	"huntlog/internal/modules/hunt/dto"
	huntout "huntlog/internal/modules/hunt/port/out"
	apperrors "huntlog/internal/platform/errors"
	"huntlog/internal/platform/id"
)

type HuntService struct {
	repo     huntout.HuntRepository
	roster   huntout.RosterRepository
	reader   huntout.ReportReader
	exporter huntout.RawExporter
	idGen    id.Generator
	log      logrus.FieldLogger
	fallback dto.ImportDefaults
	workers  int
}

type Deps struct {
	Repo     huntout.HuntRepository
	Roster   huntout.RosterRepository
	Reader   huntout.ReportReader
	Exporter huntout.RawExporter
	IDGen    id.Generator
	Log      logrus.FieldLogger
	// Fallback applies when neither the caller nor the roster names a
	// character or location.
	Fallback dto.ImportDefaults
}

func NewHuntService(deps Deps) *HuntService {
	log := deps.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HuntService{
		repo:     deps.Repo,
		roster:   deps.Roster,
		reader:   deps.Reader,
		exporter: deps.Exporter,
		idGen:    deps.IDGen,
		log:      log,
		fallback: deps.Fallback,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// Import parses every report concurrently and stores them one at a time in
// input order, so duplicates inside one batch are caught too.
func (s *HuntService) Import(ctx context.Context, reports []dto.RawReport, defaults dto.ImportDefaults, allowDuplicates bool) (dto.ImportOutput, error) {
	return s.run(ctx, reports, nil, defaults, allowDuplicates)
}

// ImportFiles reads the files concurrently, then behaves like Import. An
// unreadable file becomes a failed result and does not stop the batch.
func (s *HuntService) ImportFiles(ctx context.Context, paths []string, defaults dto.ImportDefaults, allowDuplicates bool) (dto.ImportOutput, error) {
	reports := make([]dto.RawReport, len(paths))
	readErrs := make([]error, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := s.reader.ReadReport(gctx, path)
			reports[i] = dto.RawReport{Name: path, Text: text}
			readErrs[i] = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dto.ImportOutput{}, err
	}
	return s.run(ctx, reports, readErrs, defaults, allowDuplicates)
}

func (s *HuntService) run(ctx context.Context, reports []dto.RawReport, readErrs []error, defaults dto.ImportDefaults, allowDuplicates bool) (dto.ImportOutput, error) {
	defaults, err := s.ResolveDefaults(ctx, defaults)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	parsed := s.parseAll(reports)
	out := dto.ImportOutput{RunID: s.idGen.New(), Results: make([]dto.ImportResult, 0, len(reports))}
	for i, raw := range reports {
		i, raw := i, raw
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if readErrs != nil && readErrs[i] != nil {
			res := dto.ImportResult{Name: raw.Name, Status: dto.StatusFailed, Err: readErrs[i]}
			s.log.WithFields(logrus.Fields{"run_id": out.RunID, "file": raw.Name, "status": res.Status}).
				WithError(res.Err).Warn("report not read")
			tally(&out, res)
			continue
		}
		tally(&out, s.store(ctx, out.RunID, raw, parsed[i], defaults, allowDuplicates))
	}
	return out, nil
}

func tally(out *dto.ImportOutput, res dto.ImportResult) {
	out.Results = append(out.Results, res)
	switch res.Status {
	case dto.StatusImported:
		out.Imported++
	case dto.StatusRejected:
		out.Rejected++
	case dto.StatusDuplicate:
		out.Duplicates++
	case dto.StatusFailed:
		out.Failed++
	}
}

// ResolveDefaults fills an empty character from the roster default, then
// from the configured fallback. An empty location takes the fallback.
func (s *HuntService) ResolveDefaults(ctx context.Context, defaults dto.ImportDefaults) (dto.ImportDefaults, error) {
	defaults.Character = strings.TrimSpace(defaults.Character)
	defaults.Location = strings.TrimSpace(defaults.Location)
	if domain.ReservedCharacter(defaults.Character) {
		return dto.ImportDefaults{}, fmt.Errorf("%w: character name %q is reserved", apperrors.ErrInvalidInput, defaults.Character)
	}
	if defaults.Character == "" && s.roster != nil {
		name, err := s.roster.DefaultCharacter(ctx)
		if err != nil {
			return dto.ImportDefaults{}, fmt.Errorf("load default character: %w", err)
		}
		defaults.Character = name
	}
	if defaults.Character == "" {
		defaults.Character = s.fallback.Character
	}
	if defaults.Location == "" {
		defaults.Location = s.fallback.Location
	}
	return defaults, nil
}

func (s *HuntService) parseAll(reports []dto.RawReport) []domain.Report {
	parsed := make([]domain.Report, len(reports))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, raw := range reports {
		i, raw := i, raw
		g.Go(func() error {
			parsed[i] = domain.ParseReport(raw.Text)
			return nil
		})
	}
	_ = g.Wait()
	return parsed
}

func (s *HuntService) store(ctx context.Context, runID string, raw dto.RawReport, report domain.Report, defaults dto.ImportDefaults, allowDuplicates bool) dto.ImportResult {
	res := dto.ImportResult{Name: raw.Name}
	entry := s.log.WithFields(logrus.Fields{"run_id": runID, "file": raw.Name})

	if !report.IsSession() {
		res.Status = dto.StatusRejected
		res.Err = apperrors.ErrNotAReport
		entry.WithField("status", res.Status).Info("report skipped")
		return res
	}

	hunt := domain.NewHunt(report, raw.Text, defaults.Character, defaults.Location)
	if key, ok := hunt.NaturalKey(); ok && !allowDuplicates {
		existing, err := s.repo.Query(ctx, key)
		if err != nil {
			res.Status = dto.StatusFailed
			res.Err = fmt.Errorf("check duplicate: %w", err)
			entry.WithField("status", res.Status).WithError(err).Warn("report not stored")
			return res
		}
		if len(existing) > 0 {
			res.Status = dto.StatusDuplicate
			res.HuntID = existing[0].ID
			entry.WithField("status", res.Status).Info("report already stored")
			return res
		}
	}

	huntID, err := s.repo.Save(ctx, hunt)
	if err != nil {
		res.Status = dto.StatusFailed
		res.Err = err
		entry.WithField("status", res.Status).WithError(err).Warn("report not stored")
		return res
	}
	res.Status = dto.StatusImported
	res.HuntID = huntID
	entry.WithFields(logrus.Fields{"status": res.Status, "hunt_id": huntID}).Info("report stored")
	return res
}

// Pending lists report files in dir whose start date and time match no
// stored hunt. Unreadable files and reports missing either value are skipped.
func (s *HuntService) Pending(ctx context.Context, dir string) ([]string, error) {
	paths, err := s.reader.ListReports(ctx, dir)
	if err != nil {
		return nil, err
	}
	pending := make([]string, 0)
	for _, path := range paths {
		text, err := s.reader.ReadReport(ctx, path)
		if err != nil {
			s.log.WithField("file", path).WithError(err).Debug("skip unreadable report")
			continue
		}
		report := domain.ParseReport(text)
		if report.Date == "" || report.StartTime == "" {
			continue
		}
		found, err := s.repo.Query(ctx, domain.Filter{ExactDate: report.Date, ExactStartTime: report.StartTime})
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			pending = append(pending, path)
		}
	}
	return pending, nil
}

func (s *HuntService) Update(ctx context.Context, hunt domain.Hunt) (domain.Hunt, error) {
	if err := hunt.Validate(); err != nil {
		return domain.Hunt{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	stored, err := s.repo.Get(ctx, hunt.ID)
	if err != nil {
		return domain.Hunt{}, err
	}
	if hunt.Monsters == nil {
		hunt.Monsters = stored.Monsters
	}
	hunt.RawText = stored.RawText
	hunt.Character = strings.TrimSpace(hunt.Character)
	hunt.Location = strings.TrimSpace(hunt.Location)
	if err := s.repo.Update(ctx, hunt); err != nil {
		return domain.Hunt{}, err
	}
	return hunt, nil
}

func (s *HuntService) BatchUpdate(ctx context.Context, ids []int64, character, location *string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no hunts selected", apperrors.ErrInvalidInput)
	}
	character, err := trimmedOptional("character", character)
	if err != nil {
		return 0, err
	}
	if character != nil && domain.ReservedCharacter(*character) {
		return 0, fmt.Errorf("%w: character name %q is reserved", apperrors.ErrInvalidInput, *character)
	}
	location, err = trimmedOptional("location", location)
	if err != nil {
		return 0, err
	}
	if character == nil && location == nil {
		return 0, fmt.Errorf("%w: nothing to change", apperrors.ErrInvalidInput)
	}
	n, err := s.repo.BatchUpdate(ctx, ids, character, location)
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{"hunts": n}).Info("hunts updated")
	return n, nil
}

func (s *HuntService) Delete(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no hunts selected", apperrors.ErrInvalidInput)
	}
	n, err := s.repo.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{"hunts": n}).Info("hunts deleted")
	return n, nil
}

// Export writes each hunt's raw text into dir and returns the written paths.
func (s *HuntService) Export(ctx context.Context, ids []int64, dir string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no hunts selected", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: export directory is required", apperrors.ErrInvalidInput)
	}
	paths := make([]string, 0, len(ids))
	for _, huntID := range ids {
		hunt, err := s.repo.Get(ctx, huntID)
		if err != nil {
			return paths, fmt.Errorf("export hunt %d: %w", huntID, err)
		}
		path, err := s.exporter.Export(ctx, dir, domain.ExportFileName(hunt), domain.ExportContent(hunt))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func trimmedOptional(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %s must not be empty", apperrors.ErrInvalidInput, field)
	}
	return &trimmed, nil
}

func (s *HuntService) Query(ctx context.Context, filter domain.Filter) ([]domain.Hunt, error) {
	return s.repo.Query(ctx, filter)
}

func (s *HuntService) Get(ctx context.Context, huntID int64) (domain.Hunt, error) {
	return s.repo.Get(ctx, huntID)
}

func (s *HuntService) AggregateKills(ctx context.Context, filter domain.Filter) ([]domain.Kill, error) {
	return s.repo.AggregateKills(ctx, filter)
}

func (s *HuntService) Characters(ctx context.Context) ([]domain.Character, error) {
	return s.roster.ListCharacters(ctx)
}

func (s *HuntService) DefaultCharacter(ctx context.Context) (string, error) {
	return s.roster.DefaultCharacter(ctx)
}

func (s *HuntService) SetDefaultCharacter(ctx context.Context, name string) error {
	name, err := rosterName("character", name)
	if err != nil {
		return err
	}
	return s.roster.SetDefaultCharacter(ctx, name)
}

func (s *HuntService) AddCharacter(ctx context.Context, name string) error {
	name, err := rosterName("character", name)
	if err != nil {
		return err
	}
	return s.roster.AddCharacter(ctx, name)
}

func (s *HuntService) DeleteCharacter(ctx context.Context, name string) error {
	name, err := rosterName("character", name)
	if err != nil {
		return err
	}
	return s.roster.DeleteCharacter(ctx, name)
}

func (s *HuntService) Locations(ctx context.Context) ([]string, error) {
	return s.roster.ListLocations(ctx)
}

func (s *HuntService) AddLocation(ctx context.Context, name string) error {
	name, err := rosterName("location", name)
	if err != nil {
		return err
	}
	return s.roster.AddLocation(ctx, name)
}

func (s *HuntService) DeleteLocation(ctx context.Context, name string) error {
	name, err := rosterName("location", name)
	if err != nil {
		return err
	}
	return s.roster.DeleteLocation(ctx, name)
}

func rosterName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", apperrors.ErrInvalidInput, kind)
	}
	if kind == "character" && domain.ReservedCharacter(name) {
		return "", fmt.Errorf("%w: %q is reserved", apperrors.ErrInvalidInput, name)
	}
	return name, nil
}
