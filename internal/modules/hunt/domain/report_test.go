package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntlog/internal/modules/hunt/domain"
)

const sampleReport = `Session data: From 2025-03-14, 18:02:11 to 2025-03-14, 19:32:40
Session: 01:30h
Raw XP Gain: 12,345
XP Gain: 10,000
Raw XP/h: 8,230
Loot: 45,210
Supplies: 45,710
Balance: -500
Damage: 81,002
Healing: 23,400
Killed Monsters:
  5 x Rat
  3 x Troll
Looted Items:
  12x a gold coin
`

func TestParseReportSample(t *testing.T) {
	t.Parallel()
	r := domain.ParseReport(sampleReport)

	assert.Equal(t, "2025-03-14", r.Date)
	assert.Equal(t, "18:02:11", r.StartTime)
	assert.Equal(t, "19:32:40", r.EndTime)
	assert.Equal(t, 90, r.DurationMin)
	assert.EqualValues(t, 12345, r.RawXP)
	assert.EqualValues(t, 10000, r.XP)
	assert.EqualValues(t, 45210, r.Loot)
	assert.EqualValues(t, 45710, r.Supplies)
	assert.EqualValues(t, -500, r.Balance)
	assert.EqualValues(t, 81002, r.Damage)
	assert.EqualValues(t, 23400, r.Healing)
	assert.Equal(t, []domain.Monster{{Name: "Rat", Count: 5}, {Name: "Troll", Count: 3}}, r.Kills)
	assert.True(t, r.IsSession())

	h := domain.NewHunt(r, sampleReport, "Knight", "Venore")
	assert.EqualValues(t, 500, h.Payment())
	assert.Equal(t, sampleReport, h.RawText)
}

func TestParseReportWithoutMarkersDegradesToZero(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"", "hello world", "Session: soon\nBalance: lots", "\x00\xff garbage"} {
		r := domain.ParseReport(text)
		assert.True(t, r.Empty(), "text %q should parse to an empty report: %+v", text, r)
		assert.False(t, r.IsSession())
		assert.NotNil(t, r.Kills)
	}
}

func TestParseReportFieldsAreIndependent(t *testing.T) {
	t.Parallel()
	text := "From 2025-01-02, 10:00:00 to garbage\nBalance: 1,000\n"
	r := domain.ParseReport(text)
	assert.Equal(t, "2025-01-02", r.Date)
	assert.Equal(t, "10:00:00", r.StartTime)
	assert.Empty(t, r.EndTime)
	assert.Zero(t, r.DurationMin, "duration comes only from the Session marker")
	assert.EqualValues(t, 1000, r.Balance)
}

func TestParseReportXPGainIsAnchored(t *testing.T) {
	t.Parallel()
	r := domain.ParseReport("Raw XP Gain: 900\n")
	assert.EqualValues(t, 900, r.RawXP)
	assert.Zero(t, r.XP)
}

func TestParseReportMinusGlyphs(t *testing.T) {
	t.Parallel()
	for _, text := range []string{"Balance: -1,200", "Balance: −1,200", "Balance: –1,200"} {
		assert.EqualValues(t, -1200, domain.ParseReport(text).Balance, text)
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want int64
	}{
		{"12,345", 12345},
		{" 7 ", 7},
		{"1.9", 1},
		{"−42", -42},
		{"", 0},
		{"-", 0},
		{"abc", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseInt(tt.in), "ParseInt(%q)", tt.in)
	}
}

func TestExtractKillsSkipsNoise(t *testing.T) {
	t.Parallel()
	text := "Killed Monsters:\n" +
		"  5 x Rat\n" +
		"some noise here\n" +
		"12x dragon lord\n" +
		"x Missing count\n" +
		"\t2 X Cave Rat\n" +
		"----\n" +
		"looted items:\n" +
		"  4 x a gold coin\n"
	kills := domain.ExtractKills(text)
	require.Len(t, kills, 3)
	assert.Equal(t, domain.Monster{Name: "Rat", Count: 5}, kills[0])
	assert.Equal(t, domain.Monster{Name: "dragon lord", Count: 12}, kills[1])
	assert.Equal(t, domain.Monster{Name: "Cave Rat", Count: 2}, kills[2])
}

func TestExtractKillsToEndOfTextAndDuplicates(t *testing.T) {
	t.Parallel()
	kills := domain.ExtractKills("killed monsters: 1 x Rat\r\n2 x Rat\r\n")
	assert.Equal(t, []domain.Monster{{Name: "Rat", Count: 1}, {Name: "Rat", Count: 2}}, kills)
	assert.Empty(t, domain.ExtractKills("Loot: 10\n5 x Rat\n"))
}

func TestExportFileName(t *testing.T) {
	t.Parallel()
	h := domain.Hunt{ID: 7, Date: "2025-03-14", Character: "Sir Knight", Location: "Venore / Swamp"}
	assert.Equal(t, "hunt_7_2025-03-14_Sir_Knight_Venore_Swamp.txt", domain.ExportFileName(h))
	assert.Equal(t, "Hunt ID 7 (Raw text missing)", domain.ExportContent(h))
	h.RawText = "raw"
	assert.Equal(t, "raw", domain.ExportContent(h))
}

func TestHuntValidate(t *testing.T) {
	t.Parallel()
	base := domain.Hunt{Character: "Knight", Location: "Venore", Date: "2025-03-14", StartTime: "10:00:00"}
	require.NoError(t, base.Validate())

	bad := base
	bad.Character = " "
	assert.Error(t, bad.Validate())
	for _, reserved := range []string{"all", "ALL", " All "} {
		bad = base
		bad.Character = reserved
		assert.Error(t, bad.Validate(), "character %q", reserved)
	}
	bad = base
	bad.Date = "14-03-2025"
	assert.Error(t, bad.Validate())
	bad = base
	bad.EndTime = "25h"
	assert.Error(t, bad.Validate())
	bad = base
	bad.RawXP = -1
	assert.Error(t, bad.Validate())
	bad = base
	bad.Monsters = []domain.Monster{{Name: "Rat", Count: -1}}
	assert.Error(t, bad.Validate())

	loss := base
	loss.Balance = 300
	assert.Zero(t, loss.Payment())
}

func TestParseReportSessionNeedsTwoDigitHours(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 65, domain.ParseReport("Session: 01:05h").DurationMin)
	assert.Zero(t, domain.ParseReport("Session: 123:05h").DurationMin)
	assert.Zero(t, domain.ParseReport("Session: 1:05h").DurationMin)
}

func TestNaturalKeyNeedsDateAndStartTime(t *testing.T) {
	t.Parallel()
	h := domain.Hunt{Character: "Knight", Date: "2025-03-14", StartTime: "18:00:00"}
	key, ok := h.NaturalKey()
	require.True(t, ok)
	assert.Equal(t, domain.Filter{Character: "Knight", ExactDate: "2025-03-14", ExactStartTime: "18:00:00"}, key)

	h.StartTime = ""
	_, ok = h.NaturalKey()
	assert.False(t, ok)

	h.StartTime, h.Date = "18:00:00", ""
	_, ok = h.NaturalKey()
	assert.False(t, ok)
}
