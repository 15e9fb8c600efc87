package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"huntlog/internal/ui/components"
)

func typeText(p components.Palette, s string) components.Palette {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func submit(t *testing.T, p components.Palette) (components.Palette, string) {
	t.Helper()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok {
		t.Fatalf("expected PaletteSubmitMsg, got %T", cmd())
	}
	return p, msg.Input
}

func TestPaletteSubmitAndHistory(t *testing.T) {
	t.Parallel()
	p := components.NewPalette("period <today|week>", "reload")
	_ = p.Open()
	p = typeText(p, "period week ")
	p, got := submit(t, p)
	if got != "period week" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
	if p.Visible() {
		t.Fatal("palette should close on submit")
	}

	_ = p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p, got = submit(t, p)
	if got != "period week" {
		t.Fatalf("expected recalled command, got %q", got)
	}
}

func TestPaletteEscCancels(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	_ = p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatal("palette should close on esc")
	}
	if _, ok := cmd().(components.PaletteCancelMsg); !ok {
		t.Fatal("expected PaletteCancelMsg")
	}
}
