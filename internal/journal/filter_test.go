package journal

import (
	"testing"
	"time"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

var filterNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func entryAt(created time.Time) models.JournalEntry {
	return models.JournalEntry{SessionType: models.SessionTypePost, CreatedAt: created}
}

func TestFilter_NoCriteriaReturnsAllInOrder(t *testing.T) {
	entries := []models.JournalEntry{
		{Emotion: "positive", CreatedAt: filterNow},
		{Emotion: "anxious", CreatedAt: filterNow.AddDate(0, 0, -1)},
	}
	out := Filter(entries, Criteria{}, filterNow)
	if len(out) != 2 {
		t.Fatalf("len=%d want 2", len(out))
	}
	if out[0].Emotion != "positive" || out[1].Emotion != "anxious" {
		t.Fatalf("order not preserved: %v, %v", out[0].Emotion, out[1].Emotion)
	}
}

func TestFilter_EmotionIsCaseInsensitive(t *testing.T) {
	entries := []models.JournalEntry{
		{Emotion: "Positive", CreatedAt: filterNow},
		{Emotion: "anxious", CreatedAt: filterNow},
	}
	out := Filter(entries, Criteria{Emotion: "POSITIVE"}, filterNow)
	if len(out) != 1 || out[0].Emotion != "Positive" {
		t.Fatalf("out=%+v", out)
	}
}

func TestFilter_EmotionDetailIsExact(t *testing.T) {
	entries := []models.JournalEntry{
		{EmotionDetail: "Calm", CreatedAt: filterNow},
	}
	if out := Filter(entries, Criteria{EmotionDetail: "calm"}, filterNow); len(out) != 0 {
		t.Fatalf("detail match must be case sensitive, got %+v", out)
	}
	if out := Filter(entries, Criteria{EmotionDetail: "Calm"}, filterNow); len(out) != 1 {
		t.Fatalf("exact detail did not match")
	}
}

func TestFilter_OutcomeExcludesPreSessions(t *testing.T) {
	entries := []models.JournalEntry{
		{SessionType: models.SessionTypePre, Outcome: models.OutcomeWin, CreatedAt: filterNow},
		{SessionType: models.SessionTypePost, Outcome: models.OutcomeWin, CreatedAt: filterNow},
		{SessionType: models.SessionTypePost, Outcome: models.OutcomeLoss, CreatedAt: filterNow},
	}
	out := Filter(entries, Criteria{Outcome: models.OutcomeWin}, filterNow)
	if len(out) != 1 {
		t.Fatalf("len=%d want 1: %+v", len(out), out)
	}
	if out[0].SessionType != models.SessionTypePost {
		t.Fatalf("pre session leaked through outcome filter")
	}
}

func TestFilter_DateMatchesCalendarDay(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		entryAt(time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)),
		entryAt(time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)),
	}
	out := Filter(entries, Criteria{Date: &day}, filterNow)
	if len(out) != 1 || out[0].CreatedAt.Day() != 10 {
		t.Fatalf("out=%+v", out)
	}
}

func TestFilter_TimeWindows(t *testing.T) {
	entries := []models.JournalEntry{
		entryAt(time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)),  // this month
		entryAt(time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)),  // last month
		entryAt(time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)),  // within 3 months
		entryAt(time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)),  // within a year
		entryAt(time.Date(2023, 12, 20, 10, 0, 0, 0, time.UTC)), // older than a year
	}
	cases := []struct {
		window TimeWindow
		want   int
	}{
		{WindowThisMonth, 1},
		{WindowLastMonth, 1},
		{WindowLastThree, 3},
		{WindowLastYear, 4},
		{WindowEternal, 5},
		{WindowNone, 5},
		{"", 5},
	}
	for _, tc := range cases {
		out := Filter(entries, Criteria{TimeWindow: tc.window}, filterNow)
		if len(out) != tc.want {
			t.Fatalf("window %q: len=%d want %d", tc.window, len(out), tc.want)
		}
	}
}

func TestFilter_LastMonthExcludesCurrentMonthStart(t *testing.T) {
	entries := []models.JournalEntry{
		entryAt(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		entryAt(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)),
		entryAt(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
		entryAt(time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC)),
	}
	out := Filter(entries, Criteria{TimeWindow: WindowLastMonth}, filterNow)
	if len(out) != 2 {
		t.Fatalf("len=%d want 2: %+v", len(out), out)
	}
	for _, entry := range out {
		if entry.CreatedAt.Month() != time.May {
			t.Fatalf("entry outside May matched: %v", entry.CreatedAt)
		}
	}
}

func TestFilter_CriteriaCombineWithAnd(t *testing.T) {
	entries := []models.JournalEntry{
		{SessionType: models.SessionTypePost, Emotion: "positive", Outcome: models.OutcomeWin, CreatedAt: filterNow},
		{SessionType: models.SessionTypePost, Emotion: "positive", Outcome: models.OutcomeLoss, CreatedAt: filterNow},
		{SessionType: models.SessionTypePost, Emotion: "anxious", Outcome: models.OutcomeWin, CreatedAt: filterNow},
	}
	out := Filter(entries, Criteria{Emotion: "positive", Outcome: models.OutcomeWin}, filterNow)
	if len(out) != 1 {
		t.Fatalf("len=%d want 1", len(out))
	}
}
