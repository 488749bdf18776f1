package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/progress"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

// StreakSweepService applies the streak-reset policy to users who stopped
// showing up, so a lapsed streak reads as zero even before their next
// session submission triggers the reset inline.
type StreakSweepService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *StreakSweepService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	now := time.Now().UTC()
	// Anyone active within the last two days cannot have lapsed yet.
	cutoff := now.AddDate(0, 0, -2)
	items, err := s.Repo.ListProgressInactiveSince(ctx, cutoff)
	if err != nil {
		return err
	}
	reset := 0
	for i := range items {
		stats := items[i]
		if !progress.ShouldResetStreak(stats.LastActivity, now) {
			continue
		}
		stats.PreSessionStreak = 0
		stats.PostSessionStreak = 0
		stats.DailyStreak = 0
		if err := s.Repo.SaveProgress(ctx, &stats); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("streak sweep save failed",
					zap.String("user_id", stats.UserID.String()), zap.Error(err))
			}
			continue
		}
		reset++
	}
	if s.Logger != nil && reset > 0 {
		s.Logger.Info("streak sweep complete", zap.Int("reset", reset), zap.Int("scanned", len(items)))
	}
	return nil
}
