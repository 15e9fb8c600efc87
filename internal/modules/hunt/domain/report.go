package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Report is the typed result of scanning one session report. Every field
// degrades to its zero value when the matching marker is missing.
type Report struct {
	Date        string
	StartTime   string
	EndTime     string
	DurationMin int
	RawXP       int64
	XP          int64
	Loot        int64
	Supplies    int64
	Balance     int64
	Damage      int64
	Healing     int64
	Kills       []Monster
}

// IsSession reports whether the text carried a start date or start time.
// Callers reject reports where both are empty.
func (r Report) IsSession() bool {
	return r.Date != "" || r.StartTime != ""
}

// Empty reports whether nothing at all was recovered.
func (r Report) Empty() bool {
	return !r.IsSession() && r.EndTime == "" && r.DurationMin == 0 &&
		r.RawXP == 0 && r.XP == 0 && r.Loot == 0 && r.Supplies == 0 &&
		r.Balance == 0 && r.Damage == 0 && r.Healing == 0 && len(r.Kills) == 0
}

var (
	sessionRe   = regexp.MustCompile(`Session:\s+(\d{2}):(\d{2})h`)
	rawXPRe     = regexp.MustCompile(`Raw XP Gain:\s*([\d,.]+)`)
	xpRe        = regexp.MustCompile(`(?m)^XP Gain:\s*([\d,.]+)`)
	lootRe      = regexp.MustCompile(`Loot:\s*([-\d,−–]+)`)
	suppliesRe  = regexp.MustCompile(`Supplies:\s*([-\d,−–]+)`)
	balanceRe   = regexp.MustCompile(`Balance:\s*([-\d,−–]+)`)
	damageRe    = regexp.MustCompile(`Damage:\s*([-\d,−–]+)`)
	healingRe   = regexp.MustCompile(`Healing:\s*([-\d,−–]+)`)
	startDateRe = regexp.MustCompile(`From\s+(\d{4}-\d{2}-\d{2}),`)
	startTimeRe = regexp.MustCompile(`From\s+\d{4}-\d{2}-\d{2},\s+(\d{2}:\d{2}:\d{2})`)
	endTimeRe   = regexp.MustCompile(`to\s+\d{4}-\d{2}-\d{2},\s+(\d{2}:\d{2}:\d{2})`)

	killsSectionRe = regexp.MustCompile(`(?is)Killed Monsters:\s*(.*?)(?:Looted Items:|$)`)
	killLineRe     = regexp.MustCompile(`(?mi)^\s*(\d+)\s*x\s+(.+?)\s*$`)

	minusGlyphs = strings.NewReplacer(",", "", "−", "-", "–", "-")
)

// ParseReport extracts every field independently; it never fails.
func ParseReport(text string) Report {
	return Report{
		Date:        capture(text, startDateRe),
		StartTime:   capture(text, startTimeRe),
		EndTime:     capture(text, endTimeRe),
		DurationMin: sessionMinutes(text),
		RawXP:       ParseInt(capture(text, rawXPRe)),
		XP:          ParseInt(capture(text, xpRe)),
		Loot:        ParseInt(capture(text, lootRe)),
		Supplies:    ParseInt(capture(text, suppliesRe)),
		Balance:     ParseInt(capture(text, balanceRe)),
		Damage:      ParseInt(capture(text, damageRe)),
		Healing:     ParseInt(capture(text, healingRe)),
		Kills:       ExtractKills(text),
	}
}

// ExtractKills returns the "<count> x <name>" lines of the kills section in
// the order written. Lines that do not match are skipped.
func ExtractKills(text string) []Monster {
	section := killsSectionRe.FindStringSubmatch(text)
	if section == nil {
		return []Monster{}
	}
	lines := killLineRe.FindAllStringSubmatch(section[1], -1)
	out := make([]Monster, 0, len(lines))
	for _, m := range lines {
		out = append(out, Monster{Name: strings.TrimSpace(m[2]), Count: ParseInt(m[1])})
	}
	return out
}

// ParseInt normalises separators and minus glyphs, then tries an integer,
// then a truncated float, then 0.
func ParseInt(raw string) int64 {
	s := strings.TrimSpace(minusGlyphs.Replace(raw))
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}

func capture(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(minusGlyphs.Replace(m[1]))
}

func sessionMinutes(text string) int {
	m := sessionRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	h, errH := strconv.Atoi(m[1])
	mm, errM := strconv.Atoi(m[2])
	if errH != nil || errM != nil {
		return 0
	}
	return h*60 + mm
}
