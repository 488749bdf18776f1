package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/analytics"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

// AnalyticsService fetches a user's entries and runs the pure aggregators
// over them. Every fetch is most-recent-first, which the recovery scan
// requires.
type AnalyticsService struct {
	Repo repository.Repository
}

func (s *AnalyticsService) entries(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	return s.Repo.ListJournalEntries(ctx, repository.ListJournalEntriesParams{
		UserID:  userID,
		Limit:   1000,
		OrderBy: "created_at",
	})
}

func (s *AnalyticsService) trades(ctx context.Context, userID uuid.UUID) ([]models.Trade, error) {
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	var trades []models.Trade
	for _, entry := range entries {
		trades = append(trades, entry.Trades...)
	}
	return trades, nil
}

func (s *AnalyticsService) EmotionRecovery(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.EmotionRecovery(entries), nil
}

func (s *AnalyticsService) EmotionTrend(ctx context.Context, userID uuid.UUID) ([]analytics.TrendPoint, error) {
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.EmotionTrend(entries), nil
}

func (s *AnalyticsService) MistakeFrequency(ctx context.Context, userID uuid.UUID) (map[string]analytics.MistakeStat, error) {
	entries, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.MistakeFrequency(entries), nil
}

func (s *AnalyticsService) TradeDurations(ctx context.Context, userID uuid.UUID) (map[string]analytics.DurationBucket, error) {
	trades, err := s.trades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.TradeDurationStats(trades), nil
}

func (s *AnalyticsService) AssetPairs(ctx context.Context, userID uuid.UUID) (map[string]analytics.PairStat, error) {
	trades, err := s.trades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.AssetPairStats(trades), nil
}

// WeeklySummary buckets the current month's entries into calendar weeks.
func (s *AnalyticsService) WeeklySummary(ctx context.Context, userID uuid.UUID) ([]analytics.WeekSummary, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.Repo.ListJournalEntries(ctx, repository.ListJournalEntriesParams{
		UserID:  userID,
		Since:   &monthStart,
		Limit:   1000,
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, err
	}
	return analytics.WeeklySummary(entries, now), nil
}

// DailyStats returns the precomputed 30-day rollup rows the cron job
// maintains, oldest first.
func (s *AnalyticsService) DailyStats(ctx context.Context, userID uuid.UUID) ([]models.UserDailyStats, error) {
	since := time.Now().UTC().Add(-30 * 24 * time.Hour)
	return s.Repo.ListUserDailyStats(ctx, userID, since)
}
