package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/journal"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/notify"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/progress"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrTradeNotFound = errors.New("trade not found")
	ErrBadSession    = errors.New("session_type must be pre or post")
)

type JournalService struct {
	Repo     repository.Repository
	Tracker  *progress.Tracker
	Notifier *notify.Hub
	Logger   *zap.Logger
}

type CreateEntryInput struct {
	SessionType          string         `json:"session_type"`
	Emotion              string         `json:"emotion"`
	EmotionDetail        string         `json:"emotion_detail"`
	Outcome              string         `json:"outcome"`
	Notes                string         `json:"notes"`
	Trades               []models.Trade `json:"trades"`
	Mistakes             []string       `json:"mistakes"`
	FollowedRules        []string       `json:"followed_rules"`
	PreTradingActivities []string       `json:"pre_trading_activities"`
}

// CreateEntry persists a new session reflection and feeds the streak
// tracker. A tracker failure does not roll the entry back; it is logged and
// surfaced as a transient notification, matching how the rest of the app
// treats external-call failures.
func (s *JournalService) CreateEntry(ctx context.Context, userID uuid.UUID, input CreateEntryInput) (*models.JournalEntry, error) {
	sessionType := strings.TrimSpace(input.SessionType)
	if sessionType != models.SessionTypePre && sessionType != models.SessionTypePost {
		return nil, ErrBadSession
	}

	outcome := strings.TrimSpace(input.Outcome)
	if sessionType != models.SessionTypePost {
		outcome = ""
	}

	trades := make(models.TradeList, 0, len(input.Trades))
	for _, trade := range input.Trades {
		trade.ID = uuid.NewString()
		trades = append(trades, trade)
	}

	entry := &models.JournalEntry{
		ID:                   uuid.New(),
		UserID:               userID,
		SessionType:          sessionType,
		Emotion:              strings.TrimSpace(input.Emotion),
		EmotionDetail:        strings.TrimSpace(input.EmotionDetail),
		Outcome:              outcome,
		Notes:                input.Notes,
		Trades:               trades,
		Mistakes:             models.StringList(input.Mistakes),
		FollowedRules:        models.StringList(input.FollowedRules),
		PreTradingActivities: models.StringList(input.PreTradingActivities),
		CreatedAt:            time.Now().UTC(),
	}
	if err := s.Repo.InsertJournalEntry(ctx, entry); err != nil {
		s.notifyError("Could not save your session", err)
		return nil, err
	}

	if s.Tracker != nil {
		if _, err := s.Tracker.RecordSession(ctx, userID, sessionType); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("progress update failed after entry save",
					zap.String("entry_id", entry.ID.String()), zap.Error(err))
			}
			s.notifyError("Your session was saved but streak tracking failed", err)
		}
	}
	return entry, nil
}

// ListEntries fetches the user's entries most-recent-first and applies the
// in-process filter engine over them.
func (s *JournalService) ListEntries(ctx context.Context, userID uuid.UUID, criteria journal.Criteria) ([]models.JournalEntry, error) {
	entries, err := s.Repo.ListJournalEntries(ctx, repository.ListJournalEntriesParams{
		UserID:  userID,
		Limit:   1000,
		OrderBy: "created_at",
	})
	if err != nil {
		s.notifyError("Could not load your journal", err)
		return nil, err
	}
	return journal.Filter(entries, criteria, time.Now().UTC()), nil
}

func (s *JournalService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.JournalEntry, error) {
	entry, err := s.Repo.GetJournalEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// AddTrade appends a trade with a fresh id to an existing entry. A missing
// parent entry is a hard failure; nothing is partially written.
func (s *JournalService) AddTrade(ctx context.Context, userID, entryID uuid.UUID, trade models.Trade) (*models.Trade, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	trade.ID = uuid.NewString()
	trades := append(models.TradeList{}, entry.Trades...)
	trades = append(trades, trade)
	if err := s.Repo.UpdateJournalEntryTrades(ctx, userID, entryID, trades); err != nil {
		s.notifyError("Could not save the trade", err)
		return nil, err
	}
	return &trade, nil
}

// UpdateTrade replaces a trade in place by id, keeping its position in the
// list.
func (s *JournalService) UpdateTrade(ctx context.Context, userID, entryID uuid.UUID, tradeID string, patch models.Trade) (*models.Trade, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	trades := append(models.TradeList{}, entry.Trades...)
	found := false
	for i := range trades {
		if trades[i].ID == tradeID {
			patch.ID = tradeID
			trades[i] = patch
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTradeNotFound
	}
	if err := s.Repo.UpdateJournalEntryTrades(ctx, userID, entryID, trades); err != nil {
		s.notifyError("Could not update the trade", err)
		return nil, err
	}
	return &patch, nil
}

// RemoveTrade deletes a trade by filtering it out of the entry's list.
func (s *JournalService) RemoveTrade(ctx context.Context, userID, entryID uuid.UUID, tradeID string) error {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}
	trades := make(models.TradeList, 0, len(entry.Trades))
	found := false
	for _, trade := range entry.Trades {
		if trade.ID == tradeID {
			found = true
			continue
		}
		trades = append(trades, trade)
	}
	if !found {
		return ErrTradeNotFound
	}
	if err := s.Repo.UpdateJournalEntryTrades(ctx, userID, entryID, trades); err != nil {
		s.notifyError("Could not delete the trade", err)
		return err
	}
	return nil
}

func (s *JournalService) notifyError(title string, err error) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Publish(notify.LevelError, title, err.Error())
}
