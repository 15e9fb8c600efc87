package domain

// Dated is a value taken from one record, with that record's date.
type Dated struct {
	Value float64
	Date  string
	Found bool
}

// Snapshot is recomputed from the filtered records on every query.
type Snapshot struct {
	Count          int
	TotalMinutes   int
	Hours          float64
	AverageMinutes float64

	TotalXP       int64
	TotalRawXP    int64
	TotalLoot     int64
	TotalSupplies int64
	TotalPayment  int64
	TotalBalance  int64
	TotalDamage   int64
	TotalHealing  int64

	XPPerHour       float64
	RawXPPerHour    float64
	BalancePerHour  float64
	SuppliesPerHour float64

	AvgRawXPPerHunt   float64
	AvgBalancePerHunt float64

	// Means of the per-record rates, unlike the aggregate rates above.
	MeanRawXPPerHour   float64
	MeanBalancePerHour float64

	BestRawXPPerHour   Dated
	WorstRawXPPerHour  Dated
	BestBalancePerHour Dated
	BestBalance        Dated
}

// Summarize aggregates records. An empty slice yields the zero Snapshot.
// Best and worst keep the first record on ties.
func Summarize(records []Record) Snapshot {
	s := Snapshot{Count: len(records)}
	if len(records) == 0 {
		return s
	}

	var sumRawRate, sumBalRate float64
	for _, r := range records {
		s.TotalMinutes += r.DurationMin
		s.TotalXP += r.XP
		s.TotalRawXP += r.RawXP
		s.TotalLoot += r.Loot
		s.TotalSupplies += r.Supplies
		s.TotalPayment += r.Payment
		s.TotalBalance += r.Balance
		s.TotalDamage += r.Damage
		s.TotalHealing += r.Healing

		rawRate := r.RawXPPerHour()
		balRate := r.BalancePerHour()
		sumRawRate += rawRate
		sumBalRate += balRate

		keepMax(&s.BestRawXPPerHour, rawRate, r.Date)
		keepMin(&s.WorstRawXPPerHour, rawRate, r.Date)
		keepMax(&s.BestBalancePerHour, balRate, r.Date)
		keepMax(&s.BestBalance, float64(r.Balance), r.Date)
	}

	n := float64(len(records))
	s.Hours = float64(s.TotalMinutes) / 60
	s.AverageMinutes = float64(s.TotalMinutes) / n
	s.XPPerHour = perHour(float64(s.TotalXP), s.Hours)
	s.RawXPPerHour = perHour(float64(s.TotalRawXP), s.Hours)
	s.BalancePerHour = perHour(float64(s.TotalBalance), s.Hours)
	s.SuppliesPerHour = perHour(float64(s.TotalSupplies), s.Hours)
	s.AvgRawXPPerHunt = float64(s.TotalRawXP) / n
	s.AvgBalancePerHunt = float64(s.TotalBalance) / n
	s.MeanRawXPPerHour = sumRawRate / n
	s.MeanBalancePerHour = sumBalRate / n
	return s
}

func keepMax(d *Dated, v float64, date string) {
	if !d.Found || v > d.Value {
		*d = Dated{Value: v, Date: date, Found: true}
	}
}

func keepMin(d *Dated, v float64, date string) {
	if !d.Found || v < d.Value {
		*d = Dated{Value: v, Date: date, Found: true}
	}
}
