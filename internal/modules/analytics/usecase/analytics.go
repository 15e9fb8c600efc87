package usecase

import (
	"context"

	analyticsdto "huntlog/internal/modules/analytics/dto"
	analyticsin "huntlog/internal/modules/analytics/port/in"
	"huntlog/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Analyze(ctx context.Context, input analyticsdto.AnalyzeInput) (analyticsdto.AnalyzeOutput, error) {
	filter, err := i.svc.Scope(input.Character, input.DateStart, input.DateEnd, input.Period)
	if err != nil {
		return analyticsdto.AnalyzeOutput{}, err
	}
	report, err := i.svc.Build(ctx, filter, input.Top)
	if err != nil {
		return analyticsdto.AnalyzeOutput{}, err
	}
	return analyticsdto.AnalyzeOutput{
		Character:  report.Character,
		DateStart:  report.DateStart,
		DateEnd:    report.DateEnd,
		Snapshot:   report.Snapshot,
		Kills:      report.Kills,
		TotalKills: report.TotalKills,
		Growth:     report.Growth,
		Text:       i.svc.Render(report),
	}, nil
}

func (i *Interactor) Timeline(ctx context.Context, input analyticsdto.AnalyzeInput) (analyticsdto.TimelineOutput, error) {
	filter, err := i.svc.Scope(input.Character, input.DateStart, input.DateEnd, input.Period)
	if err != nil {
		return analyticsdto.TimelineOutput{}, err
	}
	points, err := i.svc.Timeline(ctx, filter)
	if err != nil {
		return analyticsdto.TimelineOutput{}, err
	}
	return analyticsdto.TimelineOutput{DateStart: filter.DateStart, DateEnd: filter.DateEnd, Points: points}, nil
}

func (i *Interactor) SaveReport(ctx context.Context, input analyticsdto.SaveReportInput) (analyticsdto.SaveReportOutput, error) {
	filter, err := i.svc.Scope(input.Analyze.Character, input.Analyze.DateStart, input.Analyze.DateEnd, input.Analyze.Period)
	if err != nil {
		return analyticsdto.SaveReportOutput{}, err
	}
	report, err := i.svc.Build(ctx, filter, input.Analyze.Top)
	if err != nil {
		return analyticsdto.SaveReportOutput{}, err
	}
	path, err := i.svc.Save(ctx, input.Path, report)
	if err != nil {
		return analyticsdto.SaveReportOutput{}, err
	}
	return analyticsdto.SaveReportOutput{Path: path}, nil
}
