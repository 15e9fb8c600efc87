package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"huntlog/internal/modules/analytics/domain"
	analyticsout "huntlog/internal/modules/analytics/port/out"
	"huntlog/internal/platform/clock"
	apperrors "huntlog/internal/platform/errors"
	"huntlog/internal/platform/numfmt"
)

type AnalyticsService struct {
	source  analyticsout.HuntSource
	store   analyticsout.ReportStore
	clock   clock.Clock
	printer numfmt.Printer
	top     int
	log     logrus.FieldLogger
}

func NewAnalyticsService(source analyticsout.HuntSource, store analyticsout.ReportStore, clk clock.Clock, printer numfmt.Printer, top int, log logrus.FieldLogger) *AnalyticsService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AnalyticsService{source: source, store: store, clock: clk, printer: printer, top: top, log: log}
}

// Scope resolves a period name or raw dates into a filter.
func (s *AnalyticsService) Scope(character, dateStart, dateEnd, period string) (domain.Filter, error) {
	filter := domain.Filter{Character: strings.TrimSpace(character)}
	if strings.TrimSpace(period) != "" {
		start, end, err := domain.ResolvePeriod(period, s.clock.Now())
		if err != nil {
			return domain.Filter{}, err
		}
		filter.DateStart, filter.DateEnd = start, end
		return filter, nil
	}
	var err error
	if filter.DateStart, err = domain.NormalizeDate(dateStart); err != nil {
		return domain.Filter{}, err
	}
	if filter.DateEnd, err = domain.NormalizeDate(dateEnd); err != nil {
		return domain.Filter{}, err
	}
	if filter.DateStart != "" && filter.DateEnd != "" && filter.DateStart > filter.DateEnd {
		return domain.Filter{}, fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrInvalidInput, filter.DateStart, filter.DateEnd)
	}
	return filter, nil
}

// Build runs the engine over the filtered hunts. top 0 uses the configured
// default; a negative top is rejected.
func (s *AnalyticsService) Build(ctx context.Context, filter domain.Filter, top int) (domain.Report, error) {
	if top < 0 {
		return domain.Report{}, fmt.Errorf("%w: top must be non-negative", apperrors.ErrInvalidInput)
	}
	if top == 0 {
		top = s.top
	}
	records, err := s.source.Records(ctx, filter)
	if err != nil {
		return domain.Report{}, err
	}
	kills, err := s.source.Kills(ctx, filter)
	if err != nil {
		return domain.Report{}, err
	}
	ranked, err := domain.RankKills(kills, 0)
	if err != nil {
		return domain.Report{}, err
	}
	report := domain.Report{
		Character:  filter.Character,
		DateStart:  filter.DateStart,
		DateEnd:    filter.DateEnd,
		Top:        top,
		Snapshot:   domain.Summarize(records),
		Kills:      ranked,
		TotalKills: domain.TotalKills(ranked),
		Growth:     domain.ComputeGrowth(records),
	}
	if top > 0 && top < len(ranked) {
		report.Kills = ranked[:top]
	}
	s.log.WithFields(logrus.Fields{
		"character": filter.Character,
		"from":      filter.DateStart,
		"to":        filter.DateEnd,
		"hunts":     report.Snapshot.Count,
	}).Debug("analysis built")
	return report, nil
}

func (s *AnalyticsService) Render(report domain.Report) string {
	return domain.Render(report, s.printer)
}

func (s *AnalyticsService) Timeline(ctx context.Context, filter domain.Filter) ([]domain.Point, error) {
	records, err := s.source.Records(ctx, filter)
	if err != nil {
		return nil, err
	}
	return domain.Timeline(records), nil
}

// Save writes the rendered report into the note at path, with the headline
// metrics as frontmatter.
func (s *AnalyticsService) Save(ctx context.Context, path string, report domain.Report) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: report path is required", apperrors.ErrInvalidInput)
	}
	snap := report.Snapshot
	meta := map[string]any{
		"character":         valueOr(report.Character, domain.AllCharacters),
		"date_start":        report.DateStart,
		"date_end":          report.DateEnd,
		"hunts":             snap.Count,
		"minutes":           snap.TotalMinutes,
		"raw_xp":            snap.TotalRawXP,
		"raw_xp_per_hour":   roundInt(snap.RawXPPerHour),
		"xp_per_hour":       roundInt(snap.XPPerHour),
		"balance":           snap.TotalBalance,
		"balance_per_hour":  roundInt(snap.BalancePerHour),
		"supplies_per_hour": roundInt(snap.SuppliesPerHour),
		"kills":             report.TotalKills,
		"generated_at":      s.clock.Now().Format(time.RFC3339),
		"growth_available":  report.Growth.Available,
		// Written as null when unavailable so a re-save clears older values.
		"raw_xp_growth_pct":  nil,
		"balance_growth_pct": nil,
	}
	if report.Growth.Available {
		meta["raw_xp_growth_pct"] = report.Growth.RawXPPerHour
		meta["balance_growth_pct"] = report.Growth.BalancePerHour
	}
	written, err := s.store.Save(ctx, path, meta, "```text\n"+s.Render(report)+"```")
	if err != nil {
		return "", err
	}
	s.log.WithField("path", written).Info("analysis saved")
	return written, nil
}

func roundInt(f float64) int64 {
	return int64(math.Round(f))
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
