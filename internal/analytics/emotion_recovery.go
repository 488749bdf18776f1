package analytics

import (
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

const (
	RecoveryUnderOneDay = "< 1 day"
	RecoveryOneTwoDays  = "1-2 days"
	RecoveryTwoThreeDay = "2-3 days"
	RecoveryOverThree   = "> 3 days"
)

// EmotionRecovery measures how long it takes to bounce back from a losing
// session. Entries MUST be passed most-recent-first: for every loss the scan
// walks toward older entries (increasing index) until it finds the first win,
// counting one day per entry crossed. Losses with no earlier win count the
// entries scanned before the list ran out.
func EmotionRecovery(entries []models.JournalEntry) map[string]int {
	out := map[string]int{
		RecoveryUnderOneDay: 0,
		RecoveryOneTwoDays:  0,
		RecoveryTwoThreeDay: 0,
		RecoveryOverThree:   0,
	}
	for i, entry := range entries {
		if entry.Outcome != models.OutcomeLoss {
			continue
		}
		days := 0
		for j := i + 1; j < len(entries); j++ {
			days++
			if entries[j].Outcome == models.OutcomeWin {
				break
			}
		}
		out[recoveryBucket(days)]++
	}
	return out
}

func recoveryBucket(days int) string {
	switch {
	case days <= 1:
		return RecoveryUnderOneDay
	case days <= 2:
		return RecoveryOneTwoDays
	case days <= 3:
		return RecoveryTwoThreeDay
	default:
		return RecoveryOverThree
	}
}
