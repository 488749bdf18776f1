package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one transient, dismissible message for the user.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Hub is an in-process publish/subscribe registry for user-facing
// notifications. Subscribers receive every published notification
// synchronously; the composition root owns the hub's lifecycle.
type Hub struct {
	mu   sync.Mutex
	subs map[int]func(Notification)
	next int
}

func NewHub() *Hub {
	return &Hub{subs: map[int]func(Notification){}}
}

// Subscribe registers a callback and returns its unsubscribe function.
func (h *Hub) Subscribe(fn func(Notification)) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

func (h *Hub) Publish(level Level, title, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	h.mu.Lock()
	callbacks := make([]func(Notification), 0, len(h.subs))
	for _, fn := range h.subs {
		callbacks = append(callbacks, fn)
	}
	h.mu.Unlock()
	for _, fn := range callbacks {
		fn(n)
	}
	return n
}
