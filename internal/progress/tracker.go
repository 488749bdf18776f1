package progress

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

const (
	levelStep = 10
	levelMax  = 100
)

// Store is the narrow persistence surface the tracker needs. GetProgress
// returns nil (not an error) when the user has no row yet.
type Store interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (*models.ProgressStats, error)
	SaveProgress(ctx context.Context, stats *models.ProgressStats) error
}

// Tracker maintains pre/post session flags, the daily streak, and the
// gamified level for each user. The cached map is a read-through display
// cache only; the store row is always the source of truth.
type Tracker struct {
	Store  Store
	Logger *zap.Logger

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time

	mu     sync.Mutex
	cached map[uuid.UUID]models.ProgressStats
}

// Stats returns the user's current stats, substituting the well-defined
// zero state when no row exists yet.
func (t *Tracker) Stats(ctx context.Context, userID uuid.UUID) (models.ProgressStats, error) {
	existing, err := t.Store.GetProgress(ctx, userID)
	if err != nil {
		return models.ProgressStats{}, err
	}
	if existing == nil {
		return models.DefaultProgressStats(userID), nil
	}
	t.remember(*existing)
	return *existing, nil
}

// RecordSession applies one completed pre or post session to the user's
// stats and persists the result.
//
// When the streak has lapsed (a gap of two or more days containing at least
// one weekday), the call only zeroes the streak fields; the session that
// triggered the call is intentionally not recorded in the same update.
// Otherwise the matching flag is set, and if both flags are now up the
// daily streak advances, the flags clear, and level progress climbs by 10
// until it wraps into the next level.
func (t *Tracker) RecordSession(ctx context.Context, userID uuid.UUID, sessionType string) (models.ProgressStats, error) {
	now := t.now()

	stats, err := t.Stats(ctx, userID)
	if err != nil {
		return models.ProgressStats{}, err
	}

	if !stats.LastActivity.IsZero() && ShouldResetStreak(stats.LastActivity, now) {
		stats.PreSessionStreak = 0
		stats.PostSessionStreak = 0
		stats.DailyStreak = 0
		stats.LastActivity = now
		if err := t.Store.SaveProgress(ctx, &stats); err != nil {
			t.warn("progress reset save failed", userID, err)
			return models.ProgressStats{}, err
		}
		t.remember(stats)
		return stats, nil
	}

	switch sessionType {
	case models.SessionTypePre:
		stats.PreSessionStreak = 1
	case models.SessionTypePost:
		stats.PostSessionStreak = 1
	}

	if stats.PreSessionStreak == 1 && stats.PostSessionStreak == 1 {
		stats.DailyStreak++
		stats.PreSessionStreak = 0
		stats.PostSessionStreak = 0
		stats.LevelProgress += levelStep
		if stats.LevelProgress > levelMax {
			stats.LevelProgress = levelMax
		}
	}

	if stats.LevelProgress >= levelMax {
		stats.Level++
		stats.LevelProgress = 0
	}

	stats.LastActivity = now
	if err := t.Store.SaveProgress(ctx, &stats); err != nil {
		t.warn("progress save failed", userID, err)
		return models.ProgressStats{}, err
	}
	t.remember(stats)
	return stats, nil
}

// Cached returns the last successfully persisted stats for display, if any.
func (t *Tracker) Cached(userID uuid.UUID) (models.ProgressStats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	stats, ok := t.cached[userID]
	return stats, ok
}

func (t *Tracker) remember(stats models.ProgressStats) {
	t.mu.Lock()
	if t.cached == nil {
		t.cached = map[uuid.UUID]models.ProgressStats{}
	}
	t.cached[stats.UserID] = stats
	t.mu.Unlock()
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now().UTC()
}

func (t *Tracker) warn(msg string, userID uuid.UUID, err error) {
	if t.Logger != nil {
		t.Logger.Warn(msg, zap.String("user_id", userID.String()), zap.Error(err))
	}
}

// ShouldResetStreak reports whether the streak lapsed between the last
// recorded activity and now. Exactly one elapsed day (activity yesterday)
// never resets; a longer gap resets only when at least one skipped calendar
// day was a weekday, so weekends off don't break the streak.
func ShouldResetStreak(lastActivity, now time.Time) bool {
	last := startOfDay(lastActivity)
	today := startOfDay(now)
	if !today.After(last.AddDate(0, 0, 1)) {
		return false
	}
	for day := last.AddDate(0, 0, 1); day.Before(today); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
