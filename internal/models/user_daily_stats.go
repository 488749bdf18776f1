package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserDailyStats is a rebuilt-per-day rollup backing the performance
// dashboard; the cron sweep regenerates recent rows from journal entries.
type UserDailyStats struct {
	ID     uint64    `gorm:"primaryKey;autoIncrement"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_daily;index"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_daily;index"`

	SessionCount int `gorm:"not null;default:0"`
	TradeCount   int `gorm:"not null;default:0"`
	WinCount     int `gorm:"not null;default:0"`
	LossCount    int `gorm:"not null;default:0"`

	// Use an explicit column name because default GORM naming turns "PnL"
	// into "pn_l".
	PnL           decimal.Decimal `gorm:"column:pnl;type:numeric(30,10);not null;default:0"`
	CumulativePnL decimal.Decimal `gorm:"column:cumulative_pnl;type:numeric(30,10);not null;default:0"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (UserDailyStats) TableName() string {
	return "user_daily_stats"
}
