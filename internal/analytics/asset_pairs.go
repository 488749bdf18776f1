package analytics

import (
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

const unknownInstrument = "Unknown"

type PairStat struct {
	Total  int     `json:"total"`
	Profit float64 `json:"profit"`
	Loss   float64 `json:"loss"`
}

// AssetPairStats groups trades by instrument, accumulating trade count,
// gross profit, and gross loss (as a positive magnitude) per symbol.
func AssetPairStats(trades []models.Trade) map[string]PairStat {
	out := map[string]PairStat{}
	for _, trade := range trades {
		label := trade.Instrument
		if label == "" {
			label = unknownInstrument
		}
		stat := out[label]
		stat.Total++
		if pnl := trade.NumericPnL(); pnl > 0 {
			stat.Profit += pnl
		} else if pnl < 0 {
			stat.Loss += -pnl
		}
		out[label] = stat
	}
	return out
}
