package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"huntlog/internal/modules/hunt/domain"
	apperrors "huntlog/internal/platform/errors"
)

type fakeID struct{}

func (fakeID) New() string { return "run-1" }

type fakeRepo struct {
	hunts    []domain.Hunt
	nextID   int64
	saveErr  error
	chars    []domain.Character
	locs     []string
	batchIDs []int64
}

func (f *fakeRepo) Save(_ context.Context, h domain.Hunt) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.nextID++
	h.ID = f.nextID
	f.hunts = append(f.hunts, h)
	return h.ID, nil
}

func (f *fakeRepo) Query(_ context.Context, filter domain.Filter) ([]domain.Hunt, error) {
	out := []domain.Hunt{}
	for _, h := range f.hunts {
		if filter.CharacterScoped() && h.Character != filter.Character {
			continue
		}
		if filter.ExactDate != "" && h.Date != filter.ExactDate {
			continue
		}
		if filter.ExactStartTime != "" && h.StartTime != filter.ExactStartTime {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (domain.Hunt, error) {
	for _, h := range f.hunts {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hunt{}, fmt.Errorf("hunt %d: %w", id, apperrors.ErrNotFound)
}

func (f *fakeRepo) Update(_ context.Context, h domain.Hunt) error {
	for i := range f.hunts {
		if f.hunts[i].ID == h.ID {
			f.hunts[i] = h
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeRepo) BatchUpdate(_ context.Context, ids []int64, character, location *string) (int, error) {
	f.batchIDs = ids
	n := 0
	for i := range f.hunts {
		for _, id := range ids {
			if f.hunts[i].ID != id {
				continue
			}
			if character != nil {
				f.hunts[i].Character = *character
			}
			if location != nil {
				f.hunts[i].Location = *location
			}
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) Delete(_ context.Context, ids []int64) (int, error) {
	kept := f.hunts[:0]
	n := 0
	for _, h := range f.hunts {
		drop := false
		for _, id := range ids {
			drop = drop || h.ID == id
		}
		if drop {
			n++
			continue
		}
		kept = append(kept, h)
	}
	f.hunts = kept
	return n, nil
}

func (f *fakeRepo) AggregateKills(context.Context, domain.Filter) ([]domain.Kill, error) {
	return nil, nil
}

func (f *fakeRepo) ListCharacters(context.Context) ([]domain.Character, error) { return f.chars, nil }

func (f *fakeRepo) DefaultCharacter(context.Context) (string, error) {
	for _, c := range f.chars {
		if c.IsDefault {
			return c.Name, nil
		}
	}
	return "", nil
}

func (f *fakeRepo) SetDefaultCharacter(_ context.Context, name string) error {
	found := false
	for i := range f.chars {
		f.chars[i].IsDefault = f.chars[i].Name == name
		found = found || f.chars[i].IsDefault
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return nil
}

func (f *fakeRepo) AddCharacter(_ context.Context, name string) error {
	f.chars = append(f.chars, domain.Character{Name: name})
	return nil
}

func (f *fakeRepo) DeleteCharacter(context.Context, string) error   { return nil }
func (f *fakeRepo) ListLocations(context.Context) ([]string, error) { return f.locs, nil }
func (f *fakeRepo) AddLocation(_ context.Context, name string) error {
	f.locs = append(f.locs, name)
	return nil
}
func (f *fakeRepo) DeleteLocation(context.Context, string) error { return nil }

type fakeReader struct {
	files map[string]string
}

func (f fakeReader) ReadReport(_ context.Context, path string) (string, error) {
	text, ok := f.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return text, nil
}

func (f fakeReader) ListReports(_ context.Context, dir string) ([]string, error) {
	out := []string{}
	for path := range f.files {
		if filepath.Dir(path) == dir {
			out = append(out, path)
		}
	}
	return out, nil
}

type fakeExporter struct {
	written map[string]string
}

func (f *fakeExporter) Export(_ context.Context, dir, name, content string) (string, error) {
	if f.written == nil {
		f.written = map[string]string{}
	}
	path := filepath.Join(dir, name)
	f.written[path] = content
	return path, nil
}
