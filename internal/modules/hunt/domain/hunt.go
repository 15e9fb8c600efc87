package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// AllCharacters is the character filter value that disables filtering.
const AllCharacters = "all"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

type Monster struct {
	Name  string
	Count int64
}

// Kill is a creature total across many hunts.
type Kill struct {
	Name  string
	Total int64
}

type Hunt struct {
	ID          int64
	Character   string
	Location    string
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
	Monsters    []Monster
	RawText     string
}

// Payment is the waste covered by the character: |balance| for a loss, else 0.
func (h Hunt) Payment() int64 {
	if h.Balance < 0 {
		return -h.Balance
	}
	return 0
}

// NewHunt builds a record from a parsed report. Character and location are
// caller-assigned, never parsed.
func NewHunt(report Report, rawText, character, location string) Hunt {
	monsters := make([]Monster, len(report.Kills))
	copy(monsters, report.Kills)
	return Hunt{
		Character:   character,
		Location:    location,
		Date:        report.Date,
		StartTime:   report.StartTime,
		EndTime:     report.EndTime,
		DurationMin: report.DurationMin,
		RawXP:       report.RawXP,
		XP:          report.XP,
		Loot:        report.Loot,
		Supplies:    report.Supplies,
		Balance:     report.Balance,
		Damage:      report.Damage,
		Healing:     report.Healing,
		Monsters:    monsters,
		RawText:     rawText,
	}
}

// ReservedCharacter reports whether name collides with the filter value that
// selects every character.
func ReservedCharacter(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), AllCharacters)
}

func (h Hunt) Validate() error {
	if strings.TrimSpace(h.Character) == "" {
		return fmt.Errorf("character is required")
	}
	if ReservedCharacter(h.Character) {
		return fmt.Errorf("character name %q is reserved", h.Character)
	}
	if strings.TrimSpace(h.Location) == "" {
		return fmt.Errorf("location is required")
	}
	if h.Date != "" && !datePattern.MatchString(h.Date) {
		return fmt.Errorf("date %q must be YYYY-MM-DD", h.Date)
	}
	if h.StartTime != "" && !timePattern.MatchString(h.StartTime) {
		return fmt.Errorf("start time %q must be HH:MM:SS", h.StartTime)
	}
	if h.EndTime != "" && !timePattern.MatchString(h.EndTime) {
		return fmt.Errorf("end time %q must be HH:MM:SS", h.EndTime)
	}
	if h.DurationMin < 0 || h.RawXP < 0 || h.XP < 0 || h.Damage < 0 || h.Healing < 0 {
		return fmt.Errorf("duration, experience, damage and healing must be non-negative")
	}
	for _, m := range h.Monsters {
		if m.Count < 0 {
			return fmt.Errorf("kill count for %q must be non-negative", m.Name)
		}
	}
	return nil
}

// Filter selects hunts. Zero values disable the matching clause.
type Filter struct {
	Character      string
	LocationLike   string
	DateStart      string
	DateEnd        string
	ExactDate      string
	ExactStartTime string
}

// CharacterScoped reports whether the filter narrows to one character.
func (f Filter) CharacterScoped() bool {
	c := strings.TrimSpace(f.Character)
	return c != "" && !strings.EqualFold(c, AllCharacters)
}

// NaturalKey is the dedup filter for a record: same date, start time and
// character. ok is false when the date or start time is missing, since an
// empty value would drop its clause and match unrelated hunts.
func (h Hunt) NaturalKey() (key Filter, ok bool) {
	if h.Date == "" || h.StartTime == "" {
		return Filter{}, false
	}
	return Filter{Character: h.Character, ExactDate: h.Date, ExactStartTime: h.StartTime}, true
}

// Character is a roster entry. At most one is the default.
type Character struct {
	Name      string
	IsDefault bool
}
