package domain

import (
	"fmt"
	"strings"

	"huntlog/internal/platform/numfmt"
)

// Report is everything one analysis shows.
type Report struct {
	Character string
	DateStart string
	DateEnd   string
	Top       int
	Snapshot  Snapshot
	Kills     []Kill
	// TotalKills covers every creature, not only the ranked prefix.
	TotalKills int64
	Growth     Growth
}

// Render lays the report out as plain text sections.
func Render(r Report, p numfmt.Printer) string {
	var b strings.Builder
	s := r.Snapshot

	section(&b, "SUMMARY")
	line(&b, "Character", orElse(r.Character, AllCharacters))
	line(&b, "Period", fmt.Sprintf("%s to %s", orElse(r.DateStart, "start"), orElse(r.DateEnd, "today")))
	line(&b, "Hunts", p.Int(int64(s.Count)))
	if s.Count == 0 {
		b.WriteString("\nNo hunts in this period.\n")
		return b.String()
	}
	line(&b, "Time", fmt.Sprintf("%02dh%02dm", s.TotalMinutes/60, s.TotalMinutes%60))
	line(&b, "XP", p.Int(s.TotalXP))
	line(&b, "XP/h", p.Round(s.XPPerHour))

	section(&b, "RAW XP")
	line(&b, "Total Raw XP", p.Int(s.TotalRawXP))
	line(&b, "Raw XP/h", p.Round(s.RawXPPerHour))
	line(&b, "Avg Raw XP/hunt", p.Round(s.AvgRawXPPerHunt))
	line(&b, "Avg Raw XP/h", p.Round(s.MeanRawXPPerHour))
	line(&b, "Best Raw XP/h", dated(p, s.BestRawXPPerHour))
	line(&b, "Worst Raw XP/h", dated(p, s.WorstRawXPPerHour))

	section(&b, "BALANCE")
	line(&b, "Total Balance", p.Int(s.TotalBalance))
	line(&b, "Total Loot", p.Int(s.TotalLoot))
	line(&b, "Total Supplies", p.Int(s.TotalSupplies))
	line(&b, "Total Payment", p.Int(s.TotalPayment))
	line(&b, "Balance/h", p.Round(s.BalancePerHour))
	line(&b, "Supplies/h", p.Round(s.SuppliesPerHour))
	line(&b, "Avg Profit/hunt", p.Round(s.AvgBalancePerHunt))
	line(&b, "Avg Profit/h", p.Round(s.MeanBalancePerHour))
	line(&b, "Best Profit", dated(p, s.BestBalance))
	line(&b, "Best Profit/h", dated(p, s.BestBalancePerHour))

	section(&b, "COMBAT")
	line(&b, "Total Damage", p.Int(s.TotalDamage))
	line(&b, "Total Healing", p.Int(s.TotalHealing))
	line(&b, "Total Kills", p.Int(r.TotalKills))

	if r.Top > 0 {
		section(&b, fmt.Sprintf("CREATURES (Top %d)", r.Top))
	} else {
		section(&b, "CREATURES")
	}
	if len(r.Kills) == 0 {
		b.WriteString("No creatures recorded in this period.\n")
	}
	for i, k := range r.Kills {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, k.Name, p.Int(k.Total))
	}

	section(&b, "PROGRESS")
	if !r.Growth.Available {
		fmt.Fprintf(&b, "Not enough data for progress (minimum %d hunts).\n", growthMinRecords)
		return b.String()
	}
	fmt.Fprintf(&b, "First %d vs last %d hunts in the period:\n", growthWindow, growthWindow)
	line(&b, "Raw XP/h growth", growth(p, r.Growth.RawXPPerHour, r.Growth.RawXPZeroBaseline))
	line(&b, "Profit/h growth", growth(p, r.Growth.BalancePerHour, r.Growth.BalanceZeroBaseline))
	return b.String()
}

func section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	fmt.Fprintf(b, "===== %s =====\n", title)
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-18s %s\n", label+":", value)
}

func dated(p numfmt.Printer, d Dated) string {
	if !d.Found {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", p.Round(d.Value), orElse(d.Date, "no date"))
}

func growth(p numfmt.Printer, v float64, zeroBaseline bool) string {
	if zeroBaseline {
		return p.Percent(v) + " (no baseline)"
	}
	return p.Percent(v)
}

func orElse(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
