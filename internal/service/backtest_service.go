package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/analytics"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/repository"
)

var (
	ErrBlueprintNotFound = errors.New("blueprint not found")
	ErrSessionNotFound   = errors.New("backtest session not found")
	ErrBlueprintName     = errors.New("blueprint name is required")
)

type BacktestService struct {
	Repo repository.Repository
}

type CreateBlueprintInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Rules       json.RawMessage `json:"rules"`
}

func (s *BacktestService) CreateBlueprint(ctx context.Context, userID uuid.UUID, input CreateBlueprintInput) (*models.Blueprint, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrBlueprintName
	}
	item := &models.Blueprint{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Rules:       datatypes.JSON(input.Rules),
	}
	if err := s.Repo.InsertBlueprint(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BacktestService) ListBlueprints(ctx context.Context, userID uuid.UUID) ([]models.Blueprint, error) {
	return s.Repo.ListBlueprints(ctx, userID)
}

func (s *BacktestService) GetBlueprint(ctx context.Context, userID, id uuid.UUID) (*models.Blueprint, error) {
	item, err := s.Repo.GetBlueprintByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrBlueprintNotFound
	}
	return item, nil
}

func (s *BacktestService) DeleteBlueprint(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetBlueprint(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.DeleteBlueprint(ctx, userID, id)
}

// CreateSession records a simulated trade against a blueprint. The parent
// blueprint must exist; there is no partial success.
func (s *BacktestService) CreateSession(ctx context.Context, userID, blueprintID uuid.UUID, session models.BacktestSession) (*models.BacktestSession, error) {
	if _, err := s.GetBlueprint(ctx, userID, blueprintID); err != nil {
		return nil, err
	}
	session.ID = uuid.New()
	session.UserID = userID
	session.BlueprintID = blueprintID
	if err := s.Repo.InsertBacktestSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *BacktestService) ListSessions(ctx context.Context, params repository.ListBacktestSessionsParams) ([]models.BacktestSession, int64, error) {
	items, err := s.Repo.ListBacktestSessions(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.CountBacktestSessions(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *BacktestService) DeleteSession(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.DeleteBacktestSession(ctx, userID, id)
}

// BlueprintPairStats runs the asset-pair aggregator over a blueprint's
// simulated trades, reusing the journal analytics unchanged.
func (s *BacktestService) BlueprintPairStats(ctx context.Context, userID, blueprintID uuid.UUID) (map[string]analytics.PairStat, error) {
	if _, err := s.GetBlueprint(ctx, userID, blueprintID); err != nil {
		return nil, err
	}
	sessions, err := s.Repo.ListBacktestSessions(ctx, repository.ListBacktestSessionsParams{
		UserID:      userID,
		BlueprintID: &blueprintID,
		Limit:       1000,
	})
	if err != nil {
		return nil, err
	}
	trades := make([]models.Trade, 0, len(sessions))
	for _, session := range sessions {
		trades = append(trades, session.Trade())
	}
	return analytics.AssetPairStats(trades), nil
}
