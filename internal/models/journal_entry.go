package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionTypePre  = "pre"
	SessionTypePost = "post"

	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// JournalEntry is one pre- or post-session reflection. Emotion fields and
// created_at are immutable after creation; only the trade list and tag sets
// change afterwards.
type JournalEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	SessionType   string `gorm:"type:varchar(10);not null;index" json:"session_type"`
	Emotion       string `gorm:"type:varchar(50)" json:"emotion"`
	EmotionDetail string `gorm:"type:varchar(100)" json:"emotion_detail"`
	// Outcome is only meaningful for post sessions; pre sessions may carry a
	// stale value from client drafts and every consumer must gate on
	// SessionType before reading it.
	Outcome string `gorm:"type:varchar(20);index" json:"outcome,omitempty"`
	Notes   string `gorm:"type:text" json:"notes,omitempty"`

	Trades               TradeList  `gorm:"type:jsonb" json:"trades"`
	Mistakes             StringList `gorm:"type:jsonb" json:"mistakes,omitempty"`
	FollowedRules        StringList `gorm:"type:jsonb" json:"followed_rules,omitempty"`
	PreTradingActivities StringList `gorm:"type:jsonb" json:"pre_trading_activities,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
