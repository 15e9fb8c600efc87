package dto

import "huntlog/internal/modules/analytics/domain"

// AnalyzeInput selects hunts by character and date range. A non-empty
// Period (today, week, month, year) replaces both dates. Dates accept
// YYYY-MM-DD or DD-MM-YYYY. Top 0 uses the configured default.
type AnalyzeInput struct {
	Character string
	DateStart string
	DateEnd   string
	Period    string
	Top       int
}

type AnalyzeOutput struct {
	Character  string
	DateStart  string
	DateEnd    string
	Snapshot   domain.Snapshot
	Kills      []domain.Kill
	TotalKills int64
	Growth     domain.Growth
	Text       string
}

type TimelineOutput struct {
	DateStart string
	DateEnd   string
	Points    []domain.Point
}

type SaveReportInput struct {
	Analyze AnalyzeInput
	Path    string
}

type SaveReportOutput struct {
	Path string
}
