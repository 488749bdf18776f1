package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

// DailyStatsService rebuilds per-user, per-day performance rollups from
// journal entries. Rows are regenerated in place; the journal remains the
// source of truth.
type DailyStatsService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *DailyStatsService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return nil
	}
	since := time.Now().UTC().Add(-30 * 24 * time.Hour)
	userIDs, err := s.Repo.ListUserIDsWithEntriesSince(ctx, since)
	if err != nil {
		return err
	}
	for _, userID := range userIDs {
		if err := s.rebuildUser(ctx, userID, since); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("daily stats rebuild failed",
					zap.String("user_id", userID.String()), zap.Error(err))
			}
		}
	}
	return nil
}

func (s *DailyStatsService) rebuildUser(ctx context.Context, userID uuid.UUID, since time.Time) error {
	asc := true
	entries, err := s.Repo.ListJournalEntries(ctx, repository.ListJournalEntriesParams{
		UserID:  userID,
		Since:   &since,
		Limit:   1000,
		OrderBy: "created_at",
		Asc:     &asc,
	})
	if err != nil {
		return err
	}

	type dayAgg struct {
		sessions, trades, wins, losses int
		pnl                            decimal.Decimal
	}
	days := map[time.Time]*dayAgg{}
	for _, entry := range entries {
		day := entry.CreatedAt.UTC().Truncate(24 * time.Hour)
		agg := days[day]
		if agg == nil {
			agg = &dayAgg{}
			days[day] = agg
		}
		agg.sessions++
		for _, trade := range entry.Trades {
			agg.trades++
			pnl := trade.NumericPnL()
			if pnl > 0 {
				agg.wins++
			} else if pnl < 0 {
				agg.losses++
			}
			agg.pnl = agg.pnl.Add(decimal.NewFromFloat(pnl))
		}
	}

	ordered := make([]time.Time, 0, len(days))
	for day := range days {
		ordered = append(ordered, day)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	// All of a user's rows land together so a reader never sees a cumulative
	// pnl computed from a half-written window.
	return s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		cumulative := decimal.Zero
		for _, day := range ordered {
			agg := days[day]
			cumulative = cumulative.Add(agg.pnl)
			row := &models.UserDailyStats{
				UserID:        userID,
				Date:          day,
				SessionCount:  agg.sessions,
				TradeCount:    agg.trades,
				WinCount:      agg.wins,
				LossCount:     agg.losses,
				PnL:           agg.pnl,
				CumulativePnL: cumulative,
			}
			if err := s.Repo.UpsertUserDailyStatsTx(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
}
