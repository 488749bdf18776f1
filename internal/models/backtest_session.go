package models

import (
	"time"

	"github.com/google/uuid"
)

// BacktestSession is a simulated trade evaluated against historical data.
// It shares the Trade field shape but lives as a top-level row owned by a
// blueprint rather than embedded in a journal entry.
type BacktestSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BlueprintID uuid.UUID `gorm:"type:uuid;not null;index" json:"blueprint_id"`

	Instrument string     `gorm:"type:varchar(50)" json:"instrument,omitempty"`
	Direction  string     `gorm:"type:varchar(10)" json:"direction,omitempty"`
	Setup      string     `gorm:"type:varchar(100)" json:"setup,omitempty"`
	EntryDate  *time.Time `gorm:"type:timestamptz" json:"entryDate,omitempty"`
	ExitDate   *time.Time `gorm:"type:timestamptz" json:"exitDate,omitempty"`

	EntryPrice FlexFloat  `gorm:"type:numeric(30,10)" json:"entryPrice,omitempty"`
	ExitPrice  FlexFloat  `gorm:"type:numeric(30,10)" json:"exitPrice,omitempty"`
	Quantity   FlexFloat  `gorm:"type:numeric(30,10)" json:"quantity,omitempty"`
	StopLoss   FlexFloat  `gorm:"type:numeric(30,10)" json:"stopLoss,omitempty"`
	TakeProfit FlexFloat  `gorm:"type:numeric(30,10)" json:"takeProfit,omitempty"`
	Fees       FlexFloat  `gorm:"type:numeric(30,10)" json:"fees,omitempty"`
	PnL        *FlexFloat `gorm:"column:pnl;type:numeric(30,10)" json:"pnl,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (BacktestSession) TableName() string {
	return "backtest_sessions"
}

// Trade returns the session re-expressed in the embedded trade shape so the
// analytics aggregators can consume backtests unchanged.
func (s BacktestSession) Trade() Trade {
	return Trade{
		ID:         s.ID.String(),
		Instrument: s.Instrument,
		Direction:  s.Direction,
		Setup:      s.Setup,
		EntryDate:  s.EntryDate,
		ExitDate:   s.ExitDate,
		EntryPrice: s.EntryPrice,
		ExitPrice:  s.ExitPrice,
		Quantity:   s.Quantity,
		StopLoss:   s.StopLoss,
		TakeProfit: s.TakeProfit,
		Fees:       s.Fees,
		PnL:        s.PnL,
	}
}
