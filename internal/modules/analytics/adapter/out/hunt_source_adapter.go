package out

import (
	"context"

	"huntlog/internal/modules/analytics/domain"
	analyticsout "huntlog/internal/modules/analytics/port/out"
	huntdto "huntlog/internal/modules/hunt/dto"
	huntin "huntlog/internal/modules/hunt/port/in"
)

// HuntSourceAdapter reads hunts through the hunt module's use cases.
type HuntSourceAdapter struct {
	hunts huntin.Usecase
}

func NewHuntSourceAdapter(hunts huntin.Usecase) analyticsout.HuntSource {
	return &HuntSourceAdapter{hunts: hunts}
}

func (a *HuntSourceAdapter) Records(ctx context.Context, filter domain.Filter) ([]domain.Record, error) {
	hunts, err := a.hunts.List(ctx, toHuntFilter(filter))
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(hunts))
	for _, h := range hunts {
		records = append(records, domain.Record{
			Date:        h.Date,
			StartTime:   h.StartTime,
			DurationMin: h.DurationMin,
			RawXP:       h.RawXP,
			XP:          h.XP,
			Loot:        h.Loot,
			Supplies:    h.Supplies,
			Balance:     h.Balance,
			Payment:     h.Payment,
			Damage:      h.Damage,
			Healing:     h.Healing,
		})
	}
	return records, nil
}

func (a *HuntSourceAdapter) Kills(ctx context.Context, filter domain.Filter) ([]domain.Kill, error) {
	kills, err := a.hunts.AggregateKills(ctx, toHuntFilter(filter))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Kill, 0, len(kills))
	for _, k := range kills {
		out = append(out, domain.Kill{Name: k.Name, Total: k.Total})
	}
	return out, nil
}

func toHuntFilter(filter domain.Filter) huntdto.FilterInput {
	return huntdto.FilterInput{Character: filter.Character, DateStart: filter.DateStart, DateEnd: filter.DateEnd}
}
