package domain

// Point is one record's per-hour rates, for charting progress over time.
type Point struct {
	Date            string
	StartTime       string
	RawXPPerHour    float64
	BalancePerHour  float64
	SuppliesPerHour float64
}

// Timeline lists per-record rates in chronological order.
func Timeline(records []Record) []Point {
	sorted := Chronological(records)
	points := make([]Point, 0, len(sorted))
	for _, r := range sorted {
		points = append(points, Point{
			Date:            r.Date,
			StartTime:       r.StartTime,
			RawXPPerHour:    r.RawXPPerHour(),
			BalancePerHour:  r.BalancePerHour(),
			SuppliesPerHour: r.SuppliesPerHour(),
		})
	}
	return points
}
