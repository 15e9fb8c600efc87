package in

import (
	"context"

	"huntlog/internal/modules/analytics/dto"
)

type Usecase interface {
	Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.AnalyzeOutput, error)
	Timeline(ctx context.Context, input dto.AnalyzeInput) (dto.TimelineOutput, error)
	SaveReport(ctx context.Context, input dto.SaveReportInput) (dto.SaveReportOutput, error)
}
