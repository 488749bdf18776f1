package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Users ------------------------------------------------------------------

func (s *Store) CreateUser(ctx context.Context, item *models.User) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- Journal entries --------------------------------------------------------

func (s *Store) InsertJournalEntry(ctx context.Context, item *models.JournalEntry) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetJournalEntryByID(ctx context.Context, userID, id uuid.UUID) (*models.JournalEntry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.JournalEntry
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) journalQuery(ctx context.Context, params repository.ListJournalEntriesParams) *gorm.DB {
	query := s.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("user_id = ?", params.UserID)
	if params.SessionType != nil && strings.TrimSpace(*params.SessionType) != "" {
		query = query.Where("session_type = ?", strings.TrimSpace(*params.SessionType))
	}
	if params.Outcome != nil && strings.TrimSpace(*params.Outcome) != "" {
		query = query.
			Where("session_type = ?", models.SessionTypePost).
			Where("outcome = ?", strings.TrimSpace(*params.Outcome))
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("created_at >= ?", *params.Since)
	}
	if params.Until != nil && !params.Until.IsZero() {
		query = query.Where("created_at <= ?", *params.Until)
	}
	return query
}

func (s *Store) ListJournalEntries(ctx context.Context, params repository.ListJournalEntriesParams) ([]models.JournalEntry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applyOrder(s.journalQuery(ctx, params), params.OrderBy, params.Asc, "created_at")
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.JournalEntry
	if err := query.Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountJournalEntries(ctx context.Context, params repository.ListJournalEntriesParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.journalQuery(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) UpdateJournalEntryTrades(ctx context.Context, userID, id uuid.UUID, trades models.TradeList) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"trades":     trades,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (s *Store) ListUserIDsWithEntriesSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Where("created_at >= ?", since).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// --- Progress stats ---------------------------------------------------------

func (s *Store) GetProgress(ctx context.Context, userID uuid.UUID) (*models.ProgressStats, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.ProgressStats
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) SaveProgress(ctx context.Context, stats *models.ProgressStats) error {
	if s == nil || s.db == nil || stats == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pre_session_streak",
			"post_session_streak",
			"daily_streak",
			"level",
			"level_progress",
			"last_activity",
			"updated_at",
		}),
	}).Create(stats).Error
}

func (s *Store) ListProgressInactiveSince(ctx context.Context, before time.Time) ([]models.ProgressStats, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.ProgressStats
	err := s.db.WithContext(ctx).
		Model(&models.ProgressStats{}).
		Where("last_activity < ?", before).
		Where("pre_session_streak > 0 OR post_session_streak > 0 OR daily_streak > 0").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// --- Blueprints and backtesting ---------------------------------------------

func (s *Store) InsertBlueprint(ctx context.Context, item *models.Blueprint) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetBlueprintByID(ctx context.Context, userID, id uuid.UUID) (*models.Blueprint, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Blueprint
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListBlueprints(ctx context.Context, userID uuid.UUID) ([]models.Blueprint, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Blueprint
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteBlueprint(ctx context.Context, userID, id uuid.UUID) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&models.Blueprint{}).Error
}

func (s *Store) InsertBacktestSession(ctx context.Context, item *models.BacktestSession) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) backtestQuery(ctx context.Context, params repository.ListBacktestSessionsParams) *gorm.DB {
	query := s.db.WithContext(ctx).
		Model(&models.BacktestSession{}).
		Where("user_id = ?", params.UserID)
	if params.BlueprintID != nil {
		query = query.Where("blueprint_id = ?", *params.BlueprintID)
	}
	return query
}

func (s *Store) ListBacktestSessions(ctx context.Context, params repository.ListBacktestSessionsParams) ([]models.BacktestSession, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	limit := normalizeLimit(params.Limit, 200)
	offset := normalizeOffset(params.Offset)
	var items []models.BacktestSession
	err := s.backtestQuery(ctx, params).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountBacktestSessions(ctx context.Context, params repository.ListBacktestSessionsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	var total int64
	if err := s.backtestQuery(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) DeleteBacktestSession(ctx context.Context, userID, id uuid.UUID) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&models.BacktestSession{}).Error
}

// --- Subscriptions ----------------------------------------------------------

func (s *Store) GetSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Subscription
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertSubscription(ctx context.Context, item *models.Subscription) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status",
			"plan",
			"customer_id",
			"subscription_id",
			"current_period_end",
			"last_event",
			"updated_at",
		}),
	}).Create(item).Error
}

// --- Daily stats rollups ----------------------------------------------------

func (s *Store) UpsertUserDailyStatsTx(ctx context.Context, tx *gorm.DB, item *models.UserDailyStats) error {
	if s == nil || item == nil {
		return nil
	}
	if tx == nil {
		tx = s.db
	}
	if tx == nil {
		return nil
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"session_count",
			"trade_count",
			"win_count",
			"loss_count",
			"pnl",
			"cumulative_pnl",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) ListUserDailyStats(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.UserDailyStats, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.UserDailyStats
	query := s.db.WithContext(ctx).
		Model(&models.UserDailyStats{}).
		Where("user_id = ?", userID)
	if !since.IsZero() {
		query = query.Where("date >= ?", since)
	}
	if err := query.Order("date asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- helpers ----------------------------------------------------------------

func applyOrder(query *gorm.DB, orderBy string, asc *bool, fallback string) *gorm.DB {
	column := strings.TrimSpace(orderBy)
	if column == "" {
		column = fallback
	}
	direction := "desc"
	if asc != nil && *asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
