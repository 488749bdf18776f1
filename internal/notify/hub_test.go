package notify

import "testing"

func TestHub_PublishReachesEverySubscriber(t *testing.T) {
	hub := NewHub()
	var a, b []Notification
	hub.Subscribe(func(n Notification) { a = append(a, n) })
	hub.Subscribe(func(n Notification) { b = append(b, n) })

	sent := hub.Publish(LevelSuccess, "Journal entry saved", "Pre-session logged")
	if sent.ID == "" {
		t.Fatalf("notification must carry an id")
	}
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("fan-out missed a subscriber: %d, %d", len(a), len(b))
	}
	if a[0].Level != LevelSuccess || a[0].Title != "Journal entry saved" {
		t.Fatalf("got %+v", a[0])
	}
	if a[0].ID != sent.ID || b[0].ID != sent.ID {
		t.Fatalf("subscribers saw different notifications")
	}
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	var got []Notification
	unsubscribe := hub.Subscribe(func(n Notification) { got = append(got, n) })

	hub.Publish(LevelInfo, "first", "")
	unsubscribe()
	hub.Publish(LevelInfo, "second", "")

	if len(got) != 1 || got[0].Title != "first" {
		t.Fatalf("got %+v", got)
	}
}

func TestHub_PublishWithNoSubscribers(t *testing.T) {
	hub := NewHub()
	n := hub.Publish(LevelError, "Streak check failed", "progress could not be saved")
	if n.Level != LevelError {
		t.Fatalf("got %+v", n)
	}
}
