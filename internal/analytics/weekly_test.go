package analytics

import (
	"testing"
	"time"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

func TestWeeklySummary_BucketsByWeekOfMonth(t *testing.T) {
	// June 2025: the 1st is a Sunday in ISO week 22, the 2nd starts week 23.
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		{CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), Trades: models.TradeList{tradeWithPnL(10)}},
		{CreatedAt: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), Trades: models.TradeList{tradeWithPnL(-5)}},
		{CreatedAt: time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC), Trades: models.TradeList{tradeWithPnL(20)}},
	}
	out := WeeklySummary(entries, now)
	if len(out) != 5 {
		t.Fatalf("len=%d want 5", len(out))
	}
	if out[0].WeekNumber != 1 || out[0].TotalPnL != 10 || out[0].TradingDays != 1 {
		t.Fatalf("week 1 = %+v", out[0])
	}
	if out[1].TotalPnL != 15 || out[1].TradingDays != 2 {
		t.Fatalf("week 2 = %+v", out[1])
	}
}

func TestWeeklySummary_DropsEntriesOutsideMonthAndWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		{CreatedAt: time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC), Trades: models.TradeList{tradeWithPnL(99)}},
		{CreatedAt: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC), Trades: models.TradeList{tradeWithPnL(99)}},
	}
	out := WeeklySummary(entries, now)
	for _, week := range out {
		if week.TotalPnL != 0 || week.TradingDays != 0 {
			t.Fatalf("week %d = %+v, want empty", week.WeekNumber, week)
		}
	}
}

func TestWeeklySummary_SixthWeekEntryIsDropped(t *testing.T) {
	// August 2026 starts on a Saturday (ISO week 31), so the 31st, a Monday
	// in ISO week 36, computes to week 6 of the month and must be dropped.
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		{CreatedAt: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), Trades: models.TradeList{tradeWithPnL(77)}},
	}
	out := WeeklySummary(entries, now)
	if len(out) != 5 {
		t.Fatalf("len=%d want 5", len(out))
	}
	for _, week := range out {
		if week.TotalPnL != 0 || week.TradingDays != 0 {
			t.Fatalf("week %d = %+v, want empty", week.WeekNumber, week)
		}
	}
}

func TestWeeklySummary_ZeroPnLEntryIsNotATradingDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		{CreatedAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
	}
	out := WeeklySummary(entries, now)
	var days int
	for _, week := range out {
		days += week.TradingDays
	}
	if days != 0 {
		t.Fatalf("tradingDays=%d want 0 for an entry with no pnl", days)
	}
}
