package domain

import "sort"

const (
	growthWindow     = 3
	growthMinRecords = 4
)

// Growth compares the mean per-record rates of the first and last three
// records in chronological order. Available is false below four records.
// A zero first-window mean yields 0 with the matching ZeroBaseline flag set,
// which callers should read as "undefined" rather than "no change".
type Growth struct {
	Available           bool
	RawXPPerHour        float64
	BalancePerHour      float64
	RawXPZeroBaseline   bool
	BalanceZeroBaseline bool
}

func ComputeGrowth(records []Record) Growth {
	if len(records) < growthMinRecords {
		return Growth{}
	}
	sorted := Chronological(records)
	first := sorted[:growthWindow]
	last := sorted[len(sorted)-growthWindow:]

	g := Growth{Available: true}
	g.RawXPPerHour, g.RawXPZeroBaseline = growthPercent(
		meanRate(first, Record.RawXPPerHour), meanRate(last, Record.RawXPPerHour))
	g.BalancePerHour, g.BalanceZeroBaseline = growthPercent(
		meanRate(first, Record.BalancePerHour), meanRate(last, Record.BalancePerHour))
	return g
}

// Chronological returns a copy ordered by date then start time. Undated
// records go last; equal keys keep input order.
func Chronological(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if (a.Date == "") != (b.Date == "") {
			return b.Date == ""
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.StartTime < b.StartTime
	})
	return sorted
}

func meanRate(records []Record, rate func(Record) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += rate(r)
	}
	return sum / float64(len(records))
}

func growthPercent(first, last float64) (float64, bool) {
	if first == 0 {
		return 0, true
	}
	return (last - first) / first * 100, false
}
