package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleReport = `Session data: From 2025-03-14, 18:00:00 to 2025-03-14, 19:30:00
Session: 01:30h
Raw XP Gain: 12,345
XP Gain: 10,000
Loot: 4,500
Supplies: 5,000
Balance: -500
Killed Monsters:
5 x Rat
3 x Troll
`

func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data", dataDir}, args...))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("huntlog %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestImportListAnalyzeFlow(t *testing.T) {
	t.Setenv("HUNTLOG_LOG_LEVEL", "error")
	dataDir := t.TempDir()
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	reportPath := filepath.Join(logDir, "hunt.txt")
	if err := os.WriteFile(reportPath, []byte(sampleReport), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	if got := run(t, dataDir, "config", "set-log-dir", logDir); !strings.Contains(got, logDir) {
		t.Fatalf("unexpected set-log-dir output %q", got)
	}
	if got := run(t, dataDir, "check"); !strings.Contains(got, reportPath) {
		t.Fatalf("expected pending report, got %q", got)
	}

	got := run(t, dataDir, "import", "--character", "Knight", "--location", "Venore", reportPath)
	if !strings.Contains(got, "imported=1") {
		t.Fatalf("unexpected import output %q", got)
	}
	got = run(t, dataDir, "import", "--character", "Knight", reportPath)
	if !strings.Contains(got, "duplicates=1") {
		t.Fatalf("expected duplicate on re-import, got %q", got)
	}
	if got := run(t, dataDir, "check"); !strings.Contains(got, "no new reports") {
		t.Fatalf("expected nothing pending, got %q", got)
	}

	got = run(t, dataDir, "hunt", "list", "--character", "Knight", "--from", "14-03-2025")
	if !strings.Contains(got, "2025-03-14 18:00:00") || !strings.Contains(got, "Venore") {
		t.Fatalf("unexpected list output %q", got)
	}
	got = run(t, dataDir, "hunt", "show", "--id", "1")
	if !strings.Contains(got, "payment: 500") || !strings.Contains(got, "5 x Rat") {
		t.Fatalf("unexpected show output %q", got)
	}

	got = run(t, dataDir, "analyze", "--character", "Knight")
	for _, want := range []string{"===== SUMMARY =====", "===== CREATURES (Top 4) =====", "Rat", "minimum 4 hunts"} {
		if !strings.Contains(got, want) {
			t.Fatalf("analyze output missing %q:\n%s", want, got)
		}
	}

	notePath := filepath.Join(dataDir, "reports", "knight.md")
	run(t, dataDir, "analyze", "--character", "Knight", "--out", notePath)
	note, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.HasPrefix(string(note), "---\n") || !strings.Contains(string(note), "character: Knight") {
		t.Fatalf("unexpected note:\n%s", note)
	}
}

func TestRosterCommands(t *testing.T) {
	t.Setenv("HUNTLOG_LOG_LEVEL", "error")
	dataDir := t.TempDir()

	run(t, dataDir, "character", "add", "Druid")
	run(t, dataDir, "character", "default", "Druid")
	got := run(t, dataDir, "character", "list")
	if !strings.HasPrefix(got, "Druid\tdefault\n") {
		t.Fatalf("expected Druid as default first, got %q", got)
	}
	run(t, dataDir, "location", "add", "Darashia")
	if got := run(t, dataDir, "location", "list"); !strings.Contains(got, "Darashia") {
		t.Fatalf("unexpected locations %q", got)
	}
}

func TestCommandErrors(t *testing.T) {
	t.Setenv("HUNTLOG_LOG_LEVEL", "error")
	dataDir := t.TempDir()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--data", dataDir, "analyze", "--period", "decade"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected unknown period to fail")
	}

	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--data", dataDir, "import"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected import without files to fail")
	}
}
