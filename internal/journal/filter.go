package journal

import (
	"strings"
	"time"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

type TimeWindow string

const (
	WindowThisMonth  TimeWindow = "this-month"
	WindowLastMonth  TimeWindow = "last-month"
	WindowLastThree  TimeWindow = "last-three-months"
	WindowLastYear   TimeWindow = "last-year"
	WindowEternal    TimeWindow = "eternal"
	WindowNone       TimeWindow = "none"
)

// Criteria is the set of optional, AND-combined entry predicates. Zero
// values impose no constraint.
type Criteria struct {
	Date          *time.Time
	Emotion       string
	EmotionDetail string
	Outcome       string
	TimeWindow    TimeWindow
}

// Filter returns the entries matching every active predicate, preserving
// input order. Emotion matches case-insensitively, emotion detail exactly.
// Outcome only ever matches post sessions: a pre entry carrying a stray
// outcome value is still excluded.
func Filter(entries []models.JournalEntry, c Criteria, now time.Time) []models.JournalEntry {
	start, end, bounded := windowBounds(c.TimeWindow, now)

	out := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if c.Date != nil && !sameDay(entry.CreatedAt, *c.Date) {
			continue
		}
		if c.Emotion != "" && !strings.EqualFold(entry.Emotion, c.Emotion) {
			continue
		}
		if c.EmotionDetail != "" && entry.EmotionDetail != c.EmotionDetail {
			continue
		}
		if c.Outcome != "" {
			if entry.SessionType != models.SessionTypePost || entry.Outcome != c.Outcome {
				continue
			}
		}
		if bounded {
			if entry.CreatedAt.Before(start) || entry.CreatedAt.After(end) {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// windowBounds resolves a rolling time window to an inclusive interval.
// "eternal", "none", and the empty window impose no bounds.
func windowBounds(w TimeWindow, now time.Time) (start, end time.Time, bounded bool) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	switch w {
	case WindowThisMonth:
		return monthStart, now, true
	case WindowLastMonth:
		prevStart := monthStart.AddDate(0, -1, 0)
		return prevStart, monthStart.Add(-time.Nanosecond), true
	case WindowLastThree:
		return now.AddDate(0, -3, 0), now, true
	case WindowLastYear:
		return now.AddDate(-1, 0, 0), now, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
