package analytics

import (
	"time"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

const weeksPerMonth = 5

type WeekSummary struct {
	WeekNumber  int     `json:"weekNumber"`
	TotalPnL    float64 `json:"totalPnL"`
	TradingDays int     `json:"tradingDays"`
}

// WeeklySummary buckets the current month's entries into five calendar
// weeks. Week 1 is the ISO week containing the 1st of the month; an entry
// landing outside weeks 1-5 (a month spilling into a sixth partial week) is
// dropped. TradingDays counts entries with a nonzero pnl sum, at most once
// per entry regardless of trade count.
func WeeklySummary(entries []models.JournalEntry, now time.Time) []WeekSummary {
	weeks := make([]WeekSummary, weeksPerMonth)
	for i := range weeks {
		weeks[i].WeekNumber = i + 1
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	_, firstWeek := monthStart.ISOWeek()

	for _, entry := range entries {
		created := entry.CreatedAt
		if created.Before(monthStart) || created.After(now) {
			continue
		}
		_, entryWeek := created.ISOWeek()
		idx := entryWeek - firstWeek + 1
		if idx < 1 || idx > weeksPerMonth {
			continue
		}
		sum := EntryPnL(entry)
		weeks[idx-1].TotalPnL += sum
		if sum != 0 {
			weeks[idx-1].TradingDays++
		}
	}
	return weeks
}
