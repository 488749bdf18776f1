package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Blueprint is a named, reusable playbook that backtesting sessions
// reference.
type Blueprint struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Rules holds the free-form playbook definition (entry/exit criteria,
	// risk notes) exactly as the client submitted it.
	Rules datatypes.JSON `gorm:"type:jsonb" json:"rules,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Blueprint) TableName() string {
	return "blueprints"
}
