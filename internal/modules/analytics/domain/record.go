package domain

// Record is the read-only view of one stored hunt the engine aggregates.
type Record struct {
	Date        string
	StartTime   string
	DurationMin int
	RawXP       int64
	XP          int64
	Loot        int64
	Supplies    int64
	Balance     int64
	Payment     int64
	Damage      int64
	Healing     int64
}

func (r Record) hours() float64 {
	return float64(r.DurationMin) / 60
}

// RawXPPerHour is the record's own rate, 0 when it has no duration.
func (r Record) RawXPPerHour() float64 {
	return perHour(float64(r.RawXP), r.hours())
}

func (r Record) BalancePerHour() float64 {
	return perHour(float64(r.Balance), r.hours())
}

func (r Record) SuppliesPerHour() float64 {
	return perHour(float64(r.Supplies), r.hours())
}

func perHour(total, hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	return total / hours
}

// Kill is a creature's summed kill count.
type Kill struct {
	Name  string
	Total int64
}

// Filter selects the records to analyse. Character "" or "all" means every
// character; dates are inclusive YYYY-MM-DD bounds.
type Filter struct {
	Character string
	DateStart string
	DateEnd   string
}

// AllCharacters is the character value that disables the character filter.
const AllCharacters = "all"
