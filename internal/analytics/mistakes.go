package analytics

import (
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

type MistakeStat struct {
	Count int     `json:"count"`
	Loss  float64 `json:"loss"`
}

// MistakeFrequency tallies how often each mistake tag appears and how much
// losing pnl it coincided with. An entry's entire loss total is attributed
// to every tag on that entry; there is no proportional split. That matches
// how users read the chart ("sessions where I did X lost this much") and is
// deliberate.
func MistakeFrequency(entries []models.JournalEntry) map[string]MistakeStat {
	out := map[string]MistakeStat{}
	for _, entry := range entries {
		if len(entry.Mistakes) == 0 {
			continue
		}
		loss := EntryLoss(entry)
		for _, tag := range entry.Mistakes {
			stat := out[tag]
			stat.Count++
			stat.Loss += loss
			out[tag] = stat
		}
	}
	return out
}
