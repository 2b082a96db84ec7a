// internal/controller/notifier.go
package controller

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is a user-visible record of a failed mutation. The dashboard
// polls these so rollbacks are never silent.
type Notification struct {
	ID        string    `json:"id"`
	Resource  string    `json:"resource"`
	ItemKey   string    `json:"item_key"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

type Notifier interface {
	Notify(n Notification)
}

type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

func FailureNotification(resource, key string, err error) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Resource:  resource,
		ItemKey:   key,
		Message:   fmt.Sprintf("change to %s could not be saved: %v", resource, err),
		Level:     "error",
		CreatedAt: time.Now(),
	}
}

// Feed is a bounded in-memory notification buffer, newest first.
type Feed struct {
	mu    sync.Mutex
	buf   []Notification
	limit int
}

func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 100
	}
	return &Feed{limit: limit}
}

func (f *Feed) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf = append([]Notification{n}, f.buf...)
	if len(f.buf) > f.limit {
		f.buf = f.buf[:f.limit]
	}
}

// Recent returns up to limit notifications, newest first.
func (f *Feed) Recent(limit int) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	if limit <= 0 || limit > len(f.buf) {
		limit = len(f.buf)
	}
	return append([]Notification(nil), f.buf[:limit]...)
}
