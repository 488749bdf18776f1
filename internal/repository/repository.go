package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

type ListJournalEntriesParams struct {
	UserID      uuid.UUID
	SessionType *string
	Outcome     *string
	Since       *time.Time
	Until       *time.Time
	Limit       int
	Offset      int
	OrderBy     string
	Asc         *bool
}

type ListBacktestSessionsParams struct {
	UserID      uuid.UUID
	BlueprintID *uuid.UUID
	Limit       int
	Offset      int
}

// Repository is the single persistence surface consumed by services and
// handlers. The GORM implementation lives in repository/gorm.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	// Users
	CreateUser(ctx context.Context, item *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Journal entries
	InsertJournalEntry(ctx context.Context, item *models.JournalEntry) error
	GetJournalEntryByID(ctx context.Context, userID, id uuid.UUID) (*models.JournalEntry, error)
	ListJournalEntries(ctx context.Context, params ListJournalEntriesParams) ([]models.JournalEntry, error)
	CountJournalEntries(ctx context.Context, params ListJournalEntriesParams) (int64, error)
	UpdateJournalEntryTrades(ctx context.Context, userID, id uuid.UUID, trades models.TradeList) error
	ListUserIDsWithEntriesSince(ctx context.Context, since time.Time) ([]uuid.UUID, error)

	// Progress stats
	GetProgress(ctx context.Context, userID uuid.UUID) (*models.ProgressStats, error)
	SaveProgress(ctx context.Context, stats *models.ProgressStats) error
	ListProgressInactiveSince(ctx context.Context, before time.Time) ([]models.ProgressStats, error)

	// Blueprints and backtesting
	InsertBlueprint(ctx context.Context, item *models.Blueprint) error
	GetBlueprintByID(ctx context.Context, userID, id uuid.UUID) (*models.Blueprint, error)
	ListBlueprints(ctx context.Context, userID uuid.UUID) ([]models.Blueprint, error)
	DeleteBlueprint(ctx context.Context, userID, id uuid.UUID) error
	InsertBacktestSession(ctx context.Context, item *models.BacktestSession) error
	ListBacktestSessions(ctx context.Context, params ListBacktestSessionsParams) ([]models.BacktestSession, error)
	CountBacktestSessions(ctx context.Context, params ListBacktestSessionsParams) (int64, error)
	DeleteBacktestSession(ctx context.Context, userID, id uuid.UUID) error

	// Subscriptions
	GetSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
	UpsertSubscription(ctx context.Context, item *models.Subscription) error

	// Daily stats rollups
	UpsertUserDailyStatsTx(ctx context.Context, tx *gorm.DB, item *models.UserDailyStats) error
	ListUserDailyStats(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.UserDailyStats, error)
}
