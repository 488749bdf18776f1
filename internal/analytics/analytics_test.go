package analytics

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

func flexPtr(v float64) *models.FlexFloat {
	f := models.FlexFloat(v)
	return &f
}

func tradeWithPnL(v float64) models.Trade {
	return models.Trade{PnL: flexPtr(v)}
}

func TestAssetPairStats_CoercesStringAndNull(t *testing.T) {
	raw := `[{"pnl":"100"},{"pnl":-50},{"pnl":null}]`
	var trades []models.Trade
	if err := json.Unmarshal([]byte(raw), &trades); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := AssetPairStats(trades)
	stat, ok := out["Unknown"]
	if !ok {
		t.Fatalf("missing Unknown bucket: %v", out)
	}
	if stat.Total != 3 {
		t.Fatalf("total=%d want 3", stat.Total)
	}
	if stat.Profit != 100 {
		t.Fatalf("profit=%v want 100", stat.Profit)
	}
	if stat.Loss != 50 {
		t.Fatalf("loss=%v want 50", stat.Loss)
	}
}

func TestAssetPairStats_GroupsByInstrument(t *testing.T) {
	trades := []models.Trade{
		{Instrument: "EURUSD", PnL: flexPtr(30)},
		{Instrument: "EURUSD", PnL: flexPtr(-10)},
		{Instrument: "GBPJPY", PnL: flexPtr(5)},
	}
	out := AssetPairStats(trades)
	if out["EURUSD"].Total != 2 || out["EURUSD"].Profit != 30 || out["EURUSD"].Loss != 10 {
		t.Fatalf("EURUSD=%+v", out["EURUSD"])
	}
	if out["GBPJPY"].Total != 1 || out["GBPJPY"].Profit != 5 {
		t.Fatalf("GBPJPY=%+v", out["GBPJPY"])
	}
}

func TestMistakeFrequency_WholeLossPerTag(t *testing.T) {
	entries := []models.JournalEntry{{
		Mistakes: models.StringList{"fomo"},
		Trades:   models.TradeList{tradeWithPnL(-20), tradeWithPnL(10)},
	}}
	out := MistakeFrequency(entries)
	stat := out["fomo"]
	if stat.Count != 1 {
		t.Fatalf("count=%d want 1", stat.Count)
	}
	if stat.Loss != 20 {
		t.Fatalf("loss=%v want 20", stat.Loss)
	}
}

func TestMistakeFrequency_DoubleAttributesAcrossTags(t *testing.T) {
	entries := []models.JournalEntry{{
		Mistakes: models.StringList{"fomo", "revenge"},
		Trades:   models.TradeList{tradeWithPnL(-40)},
	}}
	out := MistakeFrequency(entries)
	// Both tags carry the full 40: there is no proportional split.
	if out["fomo"].Loss != 40 || out["revenge"].Loss != 40 {
		t.Fatalf("fomo=%+v revenge=%+v", out["fomo"], out["revenge"])
	}
}

func TestTradeDurationStats_Buckets(t *testing.T) {
	entry := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(45 * time.Minute)
	trades := []models.Trade{
		{EntryDate: &entry, ExitDate: &exit, PnL: flexPtr(5)},
		{EntryDate: &entry, PnL: flexPtr(100)}, // missing exit, skipped
	}
	out := TradeDurationStats(trades)
	bucket := out[DurationThirtySixty]
	if bucket.Count != 1 {
		t.Fatalf("count=%d want 1", bucket.Count)
	}
	if bucket.Wins != 1 {
		t.Fatalf("wins=%d want 1", bucket.Wins)
	}
	var total int
	for _, b := range out {
		total += b.Count
	}
	if total != 1 {
		t.Fatalf("trades missing a date must be skipped, counted=%d", total)
	}
}

func TestTradeDurationStats_Boundaries(t *testing.T) {
	entry := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		minutes int
		want    string
	}{
		{5, DurationUnderTen},
		{10, DurationUnderTen},
		{11, DurationTenThirty},
		{30, DurationTenThirty},
		{60, DurationThirtySixty},
		{61, DurationOverHour},
	}
	for _, tc := range cases {
		exit := entry.Add(time.Duration(tc.minutes) * time.Minute)
		out := TradeDurationStats([]models.Trade{{EntryDate: &entry, ExitDate: &exit}})
		if out[tc.want].Count != 1 {
			t.Fatalf("%d minutes: want bucket %q, got %v", tc.minutes, tc.want, out)
		}
	}
}

func TestEmotionRecovery_BucketsLossToNextWin(t *testing.T) {
	// Most-recent-first: loss at index 0, win one step older.
	entries := []models.JournalEntry{
		{SessionType: models.SessionTypePost, Outcome: models.OutcomeLoss},
		{SessionType: models.SessionTypePost, Outcome: models.OutcomeWin},
	}
	out := EmotionRecovery(entries)
	if out[RecoveryUnderOneDay] != 1 {
		t.Fatalf("recovery=%v want one entry under a day", out)
	}
}

func TestEmotionRecovery_NoWinCountsScannedEntries(t *testing.T) {
	entries := []models.JournalEntry{
		{SessionType: models.SessionTypePost, Outcome: models.OutcomeLoss},
		{SessionType: models.SessionTypePost},
		{SessionType: models.SessionTypePost},
		{SessionType: models.SessionTypePost},
		{SessionType: models.SessionTypePost},
	}
	out := EmotionRecovery(entries)
	if out[RecoveryOverThree] != 1 {
		t.Fatalf("recovery=%v want the unrecovered loss in the > 3 days bucket", out)
	}
}

func TestEmotionRecovery_AllBucketLabelsPresent(t *testing.T) {
	out := EmotionRecovery(nil)
	for _, label := range []string{RecoveryUnderOneDay, RecoveryOneTwoDays, RecoveryTwoThreeDay, RecoveryOverThree} {
		if _, ok := out[label]; !ok {
			t.Fatalf("label %q missing from empty result", label)
		}
	}
}

func TestEmotionTrend_ScoresAndOrder(t *testing.T) {
	base := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		{Emotion: "Very Positive", CreatedAt: base, Trades: models.TradeList{tradeWithPnL(40)}},
		{Emotion: "neutral", CreatedAt: base.AddDate(0, 0, -1)},
		{Emotion: "anxious", CreatedAt: base.AddDate(0, 0, -2), Trades: models.TradeList{tradeWithPnL(-15)}},
	}
	out := EmotionTrend(entries)
	if len(out) != 3 {
		t.Fatalf("len=%d want 3", len(out))
	}
	// Output is chronological, so the oldest (negative) entry comes first.
	if out[0].EmotionalScore != 25 || out[0].TradingResult != -15 {
		t.Fatalf("first point=%+v want score 25, result -15", out[0])
	}
	if out[1].EmotionalScore != 50 {
		t.Fatalf("second point=%+v want neutral score 50", out[1])
	}
	if out[2].EmotionalScore != 75 || out[2].TradingResult != 40 {
		t.Fatalf("last point=%+v want score 75, result 40", out[2])
	}
}

func TestEmotionTrend_WindowCapsAtThirty(t *testing.T) {
	entries := make([]models.JournalEntry, 45)
	for i := range entries {
		entries[i].Emotion = "neutral"
	}
	out := EmotionTrend(entries)
	if len(out) != 30 {
		t.Fatalf("len=%d want 30", len(out))
	}
}

func TestAggregators_Idempotent(t *testing.T) {
	entry := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(20 * time.Minute)
	entries := []models.JournalEntry{
		{
			SessionType: models.SessionTypePost,
			Outcome:     models.OutcomeLoss,
			Emotion:     "positive",
			Mistakes:    models.StringList{"fomo"},
			CreatedAt:   entry,
			Trades: models.TradeList{
				{EntryDate: &entry, ExitDate: &exit, Instrument: "EURUSD", PnL: flexPtr(-20)},
			},
		},
		{SessionType: models.SessionTypePost, Outcome: models.OutcomeWin, CreatedAt: entry.AddDate(0, 0, -1)},
	}
	var trades []models.Trade
	for _, e := range entries {
		trades = append(trades, e.Trades...)
	}

	if !reflect.DeepEqual(EmotionRecovery(entries), EmotionRecovery(entries)) {
		t.Fatalf("EmotionRecovery not idempotent")
	}
	if !reflect.DeepEqual(EmotionTrend(entries), EmotionTrend(entries)) {
		t.Fatalf("EmotionTrend not idempotent")
	}
	if !reflect.DeepEqual(MistakeFrequency(entries), MistakeFrequency(entries)) {
		t.Fatalf("MistakeFrequency not idempotent")
	}
	if !reflect.DeepEqual(TradeDurationStats(trades), TradeDurationStats(trades)) {
		t.Fatalf("TradeDurationStats not idempotent")
	}
	if !reflect.DeepEqual(AssetPairStats(trades), AssetPairStats(trades)) {
		t.Fatalf("AssetPairStats not idempotent")
	}
}
