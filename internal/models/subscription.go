package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SubscriptionActive   = "active"
	SubscriptionTrialing = "trialing"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Subscription mirrors the payment processor's view of a user. The processor
// is the source of truth; rows here are updated from webhook events only.
type Subscription struct {
	ID     uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Status string `gorm:"type:varchar(20);not null;index" json:"status"`
	Plan   string `gorm:"type:varchar(50)" json:"plan,omitempty"`

	CustomerID     string `gorm:"type:varchar(100);index" json:"customer_id,omitempty"`
	SubscriptionID string `gorm:"type:varchar(100);index" json:"subscription_id,omitempty"`

	CurrentPeriodEnd *time.Time     `gorm:"type:timestamptz" json:"current_period_end,omitempty"`
	LastEvent        datatypes.JSON `gorm:"type:jsonb" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
