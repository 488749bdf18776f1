package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

type stubStore struct {
	stats   *models.ProgressStats
	getErr  error
	saveErr error
	saves   int
}

func (s *stubStore) GetProgress(_ context.Context, _ uuid.UUID) (*models.ProgressStats, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.stats == nil {
		return nil, nil
	}
	clone := *s.stats
	return &clone, nil
}

func (s *stubStore) SaveProgress(_ context.Context, stats *models.ProgressStats) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *stats
	s.stats = &clone
	s.saves++
	return nil
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Monday 2025-06-02 is an arbitrary anchor used across these tests.
var monday = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func TestShouldResetStreak_OneDayGapNeverResets(t *testing.T) {
	for d := 0; d < 7; d++ {
		last := monday.AddDate(0, 0, d)
		now := last.AddDate(0, 0, 1)
		if ShouldResetStreak(last, now) {
			t.Fatalf("one-day gap starting %s should not reset", last.Weekday())
		}
	}
}

func TestShouldResetStreak_WeekdayGapResets(t *testing.T) {
	// Monday -> Wednesday skips Tuesday.
	if !ShouldResetStreak(monday, monday.AddDate(0, 0, 2)) {
		t.Fatalf("skipped Tuesday should reset")
	}
}

func TestShouldResetStreak_WeekendGapDoesNotReset(t *testing.T) {
	friday := time.Date(2025, 6, 6, 18, 0, 0, 0, time.UTC)
	nextMonday := friday.AddDate(0, 0, 3)
	if ShouldResetStreak(friday, nextMonday) {
		t.Fatalf("Friday to Monday skips only the weekend and should not reset")
	}
	nextTuesday := friday.AddDate(0, 0, 4)
	if !ShouldResetStreak(friday, nextTuesday) {
		t.Fatalf("Friday to Tuesday skips Monday and should reset")
	}
}

func TestShouldResetStreak_SameDay(t *testing.T) {
	if ShouldResetStreak(monday, monday.Add(4*time.Hour)) {
		t.Fatalf("same-day activity should never reset")
	}
}

func TestRecordSession_PrePostCompletesDay(t *testing.T) {
	store := &stubStore{}
	tracker := &Tracker{Store: store, Now: fixedNow(monday)}
	userID := uuid.New()

	stats, err := tracker.RecordSession(context.Background(), userID, models.SessionTypePre)
	if err != nil {
		t.Fatalf("pre session: %v", err)
	}
	if stats.PreSessionStreak != 1 || stats.PostSessionStreak != 0 {
		t.Fatalf("after pre: flags=%d/%d want 1/0", stats.PreSessionStreak, stats.PostSessionStreak)
	}
	if stats.DailyStreak != 0 {
		t.Fatalf("after pre: dailyStreak=%d want 0", stats.DailyStreak)
	}

	stats, err = tracker.RecordSession(context.Background(), userID, models.SessionTypePost)
	if err != nil {
		t.Fatalf("post session: %v", err)
	}
	if stats.DailyStreak != 1 {
		t.Fatalf("dailyStreak=%d want 1", stats.DailyStreak)
	}
	if stats.PreSessionStreak != 0 || stats.PostSessionStreak != 0 {
		t.Fatalf("flags=%d/%d want 0/0 after a completed day", stats.PreSessionStreak, stats.PostSessionStreak)
	}
	if stats.LevelProgress != 10 {
		t.Fatalf("levelProgress=%d want 10", stats.LevelProgress)
	}
	if stats.Level != 1 {
		t.Fatalf("level=%d want 1", stats.Level)
	}
}

func TestRecordSession_LevelRollsOverAtHundred(t *testing.T) {
	store := &stubStore{stats: &models.ProgressStats{
		Level:         1,
		LevelProgress: 90,
		DailyStreak:   9,
		LastActivity:  monday.AddDate(0, 0, -1),
	}}
	userID := uuid.New()
	store.stats.UserID = userID
	tracker := &Tracker{Store: store, Now: fixedNow(monday)}

	if _, err := tracker.RecordSession(context.Background(), userID, models.SessionTypePre); err != nil {
		t.Fatalf("pre: %v", err)
	}
	stats, err := tracker.RecordSession(context.Background(), userID, models.SessionTypePost)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if stats.Level != 2 {
		t.Fatalf("level=%d want 2", stats.Level)
	}
	if stats.LevelProgress != 0 {
		t.Fatalf("levelProgress=%d want 0 after rollover", stats.LevelProgress)
	}
	if stats.DailyStreak != 10 {
		t.Fatalf("dailyStreak=%d want 10", stats.DailyStreak)
	}
}

func TestRecordSession_LapsedStreakResetsWithoutRecording(t *testing.T) {
	store := &stubStore{stats: &models.ProgressStats{
		DailyStreak:      5,
		PreSessionStreak: 1,
		Level:            3,
		LevelProgress:    40,
		LastActivity:     monday.AddDate(0, 0, -1), // Sunday
	}}
	userID := uuid.New()
	store.stats.UserID = userID
	now := monday.AddDate(0, 0, 2) // Wednesday; skips Monday and Tuesday
	tracker := &Tracker{Store: store, Now: fixedNow(now)}

	stats, err := tracker.RecordSession(context.Background(), userID, models.SessionTypePre)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if stats.DailyStreak != 0 || stats.PreSessionStreak != 0 || stats.PostSessionStreak != 0 {
		t.Fatalf("streaks not zeroed: %+v", stats)
	}
	// Level is untouched and the triggering session was not recorded.
	if stats.Level != 3 || stats.LevelProgress != 40 {
		t.Fatalf("level fields changed on reset: level=%d progress=%d", stats.Level, stats.LevelProgress)
	}
	if !stats.LastActivity.Equal(now) {
		t.Fatalf("lastActivity=%v want %v", stats.LastActivity, now)
	}
}

func TestRecordSession_SaveFailureLeavesNothingCached(t *testing.T) {
	store := &stubStore{saveErr: errors.New("store down")}
	tracker := &Tracker{Store: store, Now: fixedNow(monday)}
	userID := uuid.New()

	if _, err := tracker.RecordSession(context.Background(), userID, models.SessionTypePre); err == nil {
		t.Fatalf("expected save error")
	}
	if _, ok := tracker.Cached(userID); ok {
		t.Fatalf("failed save must not populate the display cache")
	}
}

func TestStats_DefaultsWhenMissing(t *testing.T) {
	tracker := &Tracker{Store: &stubStore{}, Now: fixedNow(monday)}
	userID := uuid.New()
	stats, err := tracker.Stats(context.Background(), userID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Level != 1 {
		t.Fatalf("default level=%d want 1", stats.Level)
	}
	if stats.DailyStreak != 0 || stats.LevelProgress != 0 {
		t.Fatalf("default stats not zero: %+v", stats)
	}
	if stats.UserID != userID {
		t.Fatalf("default stats carry wrong user id")
	}
}
