package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	huntout "huntlog/internal/modules/hunt/adapter/out"
	huntdto "huntlog/internal/modules/hunt/dto"
	"huntlog/internal/modules/hunt/service"
	"huntlog/internal/modules/hunt/usecase"
	"huntlog/internal/platform/id"
	"huntlog/internal/platform/logging"
)

func TestEndToEndImportCheckAndExport(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	logDir := filepath.Join(root, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("create log dir: %v", err)
	}
	first := filepath.Join(logDir, "first.txt")
	second := filepath.Join(logDir, "second.log")
	if err := os.WriteFile(first, []byte(report), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte(otherReport), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}

	repo, err := huntout.NewSQLiteRepository(filepath.Join(root, ".huntlog", "huntlog.db"), "Knight", logging.Discard())
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	svc := service.NewHuntService(service.Deps{
		Repo:     repo,
		Roster:   repo,
		Reader:   huntout.NewFileReportReader(),
		Exporter: huntout.NewFileExporter(),
		IDGen:    id.UUID{},
		Log:      logging.Discard(),
		Fallback: huntdto.ImportDefaults{Character: "Unknown", Location: "Unknown"},
	})
	uc := usecase.NewInteractor(svc, nil)
	ctx := context.Background()

	check, err := uc.Check(ctx, logDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(check.Pending) != 2 {
		t.Fatalf("expected 2 pending reports, got %v", check.Pending)
	}

	out, err := uc.ImportFiles(ctx, huntdto.ImportFilesInput{Paths: []string{first}, Defaults: huntdto.ImportDefaults{Location: "Venore"}})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if out.Imported != 1 || out.RunID == "" {
		t.Fatalf("unexpected import output %+v", out)
	}
	check, err = uc.Check(ctx, logDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(check.Pending) != 1 || check.Pending[0] != second {
		t.Fatalf("expected only the second report pending, got %v", check.Pending)
	}

	hunts, err := uc.List(ctx, huntdto.FilterInput{Character: "Knight"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hunts) != 1 || hunts[0].Payment != 500 || len(hunts[0].Monsters) != 2 {
		t.Fatalf("unexpected hunts %+v", hunts)
	}
	kills, err := uc.AggregateKills(ctx, huntdto.FilterInput{Character: "all"})
	if err != nil {
		t.Fatalf("aggregate kills: %v", err)
	}
	if len(kills) != 2 || kills[0].Name != "Rat" || kills[0].Total != 5 {
		t.Fatalf("unexpected kills %+v", kills)
	}

	exported, err := uc.Export(ctx, huntdto.ExportInput{IDs: []int64{hunts[0].ID}, Dir: filepath.Join(root, "exports")})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	payload, err := os.ReadFile(exported.Paths[0])
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(payload) != report {
		t.Fatalf("export must be verbatim, got %q", payload)
	}
	if filepath.Base(exported.Paths[0]) != "hunt_1_2025-03-14_Knight_Venore.txt" {
		t.Fatalf("unexpected export name %s", exported.Paths[0])
	}
}
