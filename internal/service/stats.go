package service

import (
	"time"

	"github.com/passforge/passforge-go/internal/model"
)

// ComputeStats derives summary statistics from the given history items. It is
// a pure recomputation and keeps no state between calls. Day boundaries use
// UTC; the week window is the rolling seven days ending at now, inclusive at
// its start.
func ComputeStats(items []model.HistoryItem, now time.Time) model.Stats {
	stats := model.Stats{
		TotalGenerated:       len(items),
		StrengthDistribution: make(map[string]int),
	}
	if len(items) == 0 {
		return stats
	}

	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := now.Add(-7 * 24 * time.Hour)

	var lengthSum int
	var responseSum time.Duration
	for _, item := range items {
		created := item.CreatedAt.UTC()
		if !created.Before(dayStart) {
			stats.GeneratedToday++
		}
		if !created.Before(weekStart) {
			stats.GeneratedThisWeek++
		}
		lengthSum += item.Length
		responseSum += item.ResponseTime
		stats.StrengthDistribution[item.Strength]++
	}

	stats.AverageLength = float64(lengthSum) / float64(len(items))
	stats.AverageResponseTimeMS = durationToMillis(responseSum) / float64(len(items))
	return stats
}
