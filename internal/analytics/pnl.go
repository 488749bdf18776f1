package analytics

import (
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

// EntryPnL sums a single entry's trade results. Missing or malformed trade
// values contribute 0 via models.Trade.NumericPnL.
func EntryPnL(entry models.JournalEntry) float64 {
	var total float64
	for _, trade := range entry.Trades {
		total += trade.NumericPnL()
	}
	return total
}

// EntryLoss sums the absolute value of every losing trade on an entry,
// ignoring winners.
func EntryLoss(entry models.JournalEntry) float64 {
	var total float64
	for _, trade := range entry.Trades {
		if pnl := trade.NumericPnL(); pnl < 0 {
			total += -pnl
		}
	}
	return total
}
