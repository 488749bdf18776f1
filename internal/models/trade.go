package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// FlexFloat accepts JSON numbers, numeric strings, and null. Rows written by
// older clients carry price fields as strings; anything unparseable reads as 0
// so analytics never see NaN.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Trade is one executed or simulated position. It is embedded in a journal
// entry's jsonb trade list; backtesting sessions persist the same shape as
// top-level rows.
type Trade struct {
	ID         string     `json:"id"`
	Instrument string     `json:"instrument,omitempty"`
	Direction  string     `json:"direction,omitempty"`
	Setup      string     `json:"setup,omitempty"`
	EntryDate  *time.Time `json:"entryDate,omitempty"`
	ExitDate   *time.Time `json:"exitDate,omitempty"`
	EntryPrice FlexFloat  `json:"entryPrice,omitempty"`
	ExitPrice  FlexFloat  `json:"exitPrice,omitempty"`
	Quantity   FlexFloat  `json:"quantity,omitempty"`
	StopLoss   FlexFloat  `json:"stopLoss,omitempty"`
	TakeProfit FlexFloat  `json:"takeProfit,omitempty"`
	Fees       FlexFloat  `json:"fees,omitempty"`
	PnL        *FlexFloat `json:"pnl,omitempty"`
	// ProfitLoss is the legacy column name for PnL; honored on read only.
	ProfitLoss *FlexFloat `json:"profit_loss,omitempty"`
}

// NumericPnL resolves the pnl/profit_loss duality: pnl wins, the legacy field
// is the fallback, anything else is 0. Callers must never touch the raw
// fields for arithmetic.
func (t Trade) NumericPnL() float64 {
	if t.PnL != nil {
		return float64(*t.PnL)
	}
	if t.ProfitLoss != nil {
		return float64(*t.ProfitLoss)
	}
	return 0
}

// TradeList maps an ordered trade sequence onto a jsonb column.
type TradeList []Trade

func (l TradeList) Value() (driver.Value, error) {
	if l == nil {
		l = TradeList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *TradeList) Scan(value any) error {
	if value == nil {
		*l = TradeList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("trade list: unsupported column type")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*l = TradeList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// StringList maps a tag set onto a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("string list: unsupported column type")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}
