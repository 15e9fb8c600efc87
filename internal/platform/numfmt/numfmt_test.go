package numfmt_test

import (
	"testing"

	"huntlog/internal/platform/numfmt"
)

func TestIntGroupsByLocale(t *testing.T) {
	t.Parallel()
	if got := numfmt.New("en").Int(1234567); got != "1,234,567" {
		t.Fatalf("en grouping: got %q", got)
	}
	if got := numfmt.New("pt-BR").Int(-12345); got != "-12.345" {
		t.Fatalf("pt-BR grouping: got %q", got)
	}
	if got := numfmt.New("???").Int(1000); got != "1,000" {
		t.Fatalf("fallback grouping: got %q", got)
	}
}

func TestRoundAndPercent(t *testing.T) {
	t.Parallel()
	p := numfmt.New("en")
	if got := p.Round(2499.5); got != "2,500" {
		t.Fatalf("round: got %q", got)
	}
	if got := p.Percent(200); got != "+200.00%" {
		t.Fatalf("percent: got %q", got)
	}
}
