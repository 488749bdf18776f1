package analytics

import (
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

const (
	DurationUnderTen    = "< 10 min"
	DurationTenThirty   = "10-30 min"
	DurationThirtySixty = "30-60 min"
	DurationOverHour    = "> 1 hour"
)

type DurationBucket struct {
	Count int `json:"count"`
	Wins  int `json:"wins"`
}

// TradeDurationStats buckets trades by whole minutes held. Trades missing
// either timestamp are skipped entirely rather than defaulted.
func TradeDurationStats(trades []models.Trade) map[string]DurationBucket {
	out := map[string]DurationBucket{
		DurationUnderTen:    {},
		DurationTenThirty:   {},
		DurationThirtySixty: {},
		DurationOverHour:    {},
	}
	for _, trade := range trades {
		if trade.EntryDate == nil || trade.ExitDate == nil {
			continue
		}
		minutes := int(trade.ExitDate.Sub(*trade.EntryDate).Minutes())
		label := durationBucket(minutes)
		bucket := out[label]
		bucket.Count++
		if trade.NumericPnL() > 0 {
			bucket.Wins++
		}
		out[label] = bucket
	}
	return out
}

func durationBucket(minutes int) string {
	switch {
	case minutes <= 10:
		return DurationUnderTen
	case minutes <= 30:
		return DurationTenThirty
	case minutes <= 60:
		return DurationThirtySixty
	default:
		return DurationOverHour
	}
}
