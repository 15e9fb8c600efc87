// Package numfmt formats report figures with locale-aware digit grouping.
package numfmt

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Printer struct {
	p *message.Printer
}

// New returns a printer for the BCP 47 tag; unparseable tags use English.
func New(locale string) Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Printer{p: message.NewPrinter(tag)}
}

// Int renders n with thousands grouping.
func (p Printer) Int(n int64) string {
	return p.p.Sprintf("%d", n)
}

// Round renders f rounded half away from zero to an integer.
func (p Printer) Round(f float64) string {
	return p.Int(int64(math.Round(f)))
}

// Percent renders a signed percentage with two decimals.
func (p Printer) Percent(f float64) string {
	return p.p.Sprintf("%+.2f%%", f)
}
