package in

import (
	"context"

	analyticsdto "huntlog/internal/modules/analytics/dto"
	analyticsin "huntlog/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Analyze(ctx context.Context, input analyticsdto.AnalyzeInput) (analyticsdto.AnalyzeOutput, error) {
	return h.usecase.Analyze(ctx, input)
}

func (h CLIHandler) Timeline(ctx context.Context, input analyticsdto.AnalyzeInput) (analyticsdto.TimelineOutput, error) {
	return h.usecase.Timeline(ctx, input)
}

func (h CLIHandler) SaveReport(ctx context.Context, input analyticsdto.AnalyzeInput, path string) (analyticsdto.SaveReportOutput, error) {
	return h.usecase.SaveReport(ctx, analyticsdto.SaveReportInput{Analyze: input, Path: path})
}
