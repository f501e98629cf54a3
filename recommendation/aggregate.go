package recommendation

import (
	"sort"
	"time"

	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
)

// MinScoreThreshold is the hard minimum quality for an hour to enter a
// recommendation: entries at or below it are dropped.
const MinScoreThreshold = 30.0

// ScoredEntry is one scored (spot, hour) pair ready for aggregation.
type ScoredEntry struct {
	SpotID   int64
	SpotName string
	// Location is the spot's zone, used for local-date grouping; nil
	// falls back to UTC.
	Location     *time.Location
	TimestampUTC time.Time
	Scores       models.ScoreBreakdown
	Conditions   forecast.Sample
}

// AggregateDaily turns scored hourly entries into ranked per-day
// recommendations:
//
//   - entries scoring at or below minScore are discarded;
//   - survivors group by the spot-local calendar date;
//   - within a date each spot keeps only its best hour;
//   - spots rank descending by that best score, ties broken by spot ID
//     so output is reproducible;
//   - dates with no qualifying spot are omitted entirely.
//
// Empty input yields an empty list, never an error.
func AggregateDaily(entries []ScoredEntry, minScore float64) []models.DailyRecommendation {
	bestByDate := make(map[string]map[int64]ScoredEntry)

	for _, e := range entries {
		if e.Scores.OverallScore <= minScore {
			continue
		}
		loc := e.Location
		if loc == nil {
			loc = time.UTC
		}
		date := e.TimestampUTC.In(loc).Format("2006-01-02")

		bySpot, ok := bestByDate[date]
		if !ok {
			bySpot = make(map[int64]ScoredEntry)
			bestByDate[date] = bySpot
		}
		// Strictly-greater keeps the earliest hour on score ties.
		if current, ok := bySpot[e.SpotID]; !ok || e.Scores.OverallScore > current.Scores.OverallScore {
			bySpot[e.SpotID] = e
		}
	}

	dates := make([]string, 0, len(bestByDate))
	for date := range bestByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]models.DailyRecommendation, 0, len(dates))
	for _, date := range dates {
		bySpot := bestByDate[date]
		ranked := make([]models.SpotDailySummary, 0, len(bySpot))
		for _, e := range bySpot {
			ranked = append(ranked, models.SpotDailySummary{
				SpotID:      e.SpotID,
				SpotName:    e.SpotName,
				BestHourUTC: e.TimestampUTC,
				Scores:      e.Scores,
				Conditions:  e.Conditions,
			})
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].Scores.OverallScore != ranked[j].Scores.OverallScore {
				return ranked[i].Scores.OverallScore > ranked[j].Scores.OverallScore
			}
			return ranked[i].SpotID < ranked[j].SpotID
		})
		out = append(out, models.DailyRecommendation{
			Date:        date,
			RankedSpots: ranked,
		})
	}
	return out
}
