package analytics

import (
	"strings"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

const trendWindow = 30

type TrendPoint struct {
	Date           string  `json:"date"`
	EmotionalScore int     `json:"emotionalScore"`
	TradingResult  float64 `json:"tradingResult"`
}

// EmotionTrend maps the 30 most recent entries (input is most-recent-first)
// to chart points and returns them in chronological order for plotting.
func EmotionTrend(entries []models.JournalEntry) []TrendPoint {
	n := len(entries)
	if n > trendWindow {
		n = trendWindow
	}
	points := make([]TrendPoint, 0, n)
	for _, entry := range entries[:n] {
		points = append(points, TrendPoint{
			Date:           entry.CreatedAt.Format("2006-01-02"),
			EmotionalScore: emotionalScore(entry.Emotion),
			TradingResult:  EntryPnL(entry),
		})
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

func emotionalScore(emotion string) int {
	label := strings.ToLower(emotion)
	switch {
	case strings.Contains(label, "positive"):
		return 75
	case strings.Contains(label, "neutral"):
		return 50
	default:
		return 25
	}
}
