package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressStats is the singleton gamification row per user. The session
// flags are 0/1 ("has today's pre/post session happened"), not counters;
// DailyStreak only advances when both flags are set in the same update,
// which also clears them.
type ProgressStats struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`

	PreSessionStreak  int `gorm:"not null;default:0" json:"pre_session_streak"`
	PostSessionStreak int `gorm:"not null;default:0" json:"post_session_streak"`
	DailyStreak       int `gorm:"not null;default:0" json:"daily_streak"`

	Level         int `gorm:"not null;default:1" json:"level"`
	LevelProgress int `gorm:"not null;default:0" json:"level_progress"`

	LastActivity time.Time `gorm:"type:timestamptz" json:"last_activity"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ProgressStats) TableName() string {
	return "progress_stats"
}

// DefaultProgressStats is the zero state used until the first write; there
// is never a null row threaded through business logic.
func DefaultProgressStats(userID uuid.UUID) ProgressStats {
	return ProgressStats{
		UserID: userID,
		Level:  1,
	}
}
