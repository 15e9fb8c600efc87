package domain

import (
	"fmt"
	"sort"

	apperrors "huntlog/internal/platform/errors"
)

// RankKills merges entries by creature name, sums their totals and sorts
// descending. Ties keep first-seen order. n <= 0 returns every creature.
func RankKills(kills []Kill, n int) ([]Kill, error) {
	index := make(map[string]int, len(kills))
	merged := make([]Kill, 0, len(kills))
	for _, k := range kills {
		if k.Total < 0 {
			return nil, fmt.Errorf("%w: %s has %d", apperrors.ErrNegativeKillCount, k.Name, k.Total)
		}
		if i, ok := index[k.Name]; ok {
			merged[i].Total += k.Total
			continue
		}
		index[k.Name] = len(merged)
		merged = append(merged, k)
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Total > merged[j].Total })
	if n > 0 && n < len(merged) {
		merged = merged[:n]
	}
	return merged, nil
}

// TotalKills sums every count.
func TotalKills(kills []Kill) int64 {
	var total int64
	for _, k := range kills {
		total += k.Total
	}
	return total
}
