// internal/controller/list.go
package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound         = errors.New("item not found")
	ErrMutationInFlight = errors.New("a mutation for this item is already in flight")
)

// Item is anything a list controller can manage: stable key within the
// fetched collection, plus the text the client-side search filters over.
type Item interface {
	Key() string
	SearchText() string
}

// List owns the fetch/search/paginate/mutate lifecycle for one resource.
// Search and pagination are pure views over the last loaded collection;
// mutations are applied optimistically and rolled back when the upstream call
// fails. A second mutation on an item whose first mutation is still pending
// is refused rather than allowed to clobber the rollback snapshot.
type List[T Item] struct {
	mu       sync.Mutex
	items    []T
	loaded   bool
	inflight map[string]bool

	resource string
	pageSize int
	fetch    func(ctx context.Context) ([]T, error)
	notifier Notifier
	log      *logrus.Entry
}

func NewList[T Item](resource string, pageSize int, fetch func(ctx context.Context) ([]T, error), notifier Notifier) *List[T] {
	if pageSize <= 0 {
		pageSize = 8
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &List[T]{
		inflight: make(map[string]bool),
		resource: resource,
		pageSize: pageSize,
		fetch:    fetch,
		notifier: notifier,
		log:      logrus.WithField("resource", resource),
	}
}

// Load fetches the full collection and replaces the held list. On failure the
// prior list survives so a stale view can still be served.
func (l *List[T]) Load(ctx context.Context) error {
	items, err := l.fetch(ctx)
	if err != nil {
		l.log.WithError(err).Error("Failed to load collection")
		return err
	}

	l.mu.Lock()
	l.items = items
	l.loaded = true
	l.mu.Unlock()
	return nil
}

func (l *List[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns a copy of the full held collection.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// View applies the client-side search filter and pagination window. The
// returned total is the filtered count, page the effective page after
// clamping. A page beyond the last filtered page clamps back to the last one,
// which also makes a search-term change land on page 1 when the filtered set
// shrinks.
func (l *List[T]) View(search string, page, size int) (items []T, total, effectivePage int) {
	if size <= 0 {
		size = l.pageSize
	}
	if page < 1 {
		page = 1
	}

	filtered := Filter(l.Items(), search)
	total = len(filtered)

	lastPage := (total + size - 1) / size
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return filtered[start:end], total, page
}

// Filter is the case-insensitive substring search over an item's display
// fields. An empty term matches everything.
func Filter[T Item](items []T, search string) []T {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(item.SearchText(), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Mutate performs an optimistic single-item update: apply locally, commit
// upstream, patch the item from the server's returned entity. When commit
// fails the pre-mutation snapshot is restored and a notification is emitted.
// When commit succeeds but returns no entity the whole collection is
// refetched.
func (l *List[T]) Mutate(ctx context.Context, key string, apply func(T) T, commit func(ctx context.Context) (*T, error)) (T, error) {
	var zero T

	l.mu.Lock()
	idx := l.indexOf(key)
	if idx < 0 {
		l.mu.Unlock()
		return zero, ErrNotFound
	}
	if l.inflight[key] {
		l.mu.Unlock()
		return zero, ErrMutationInFlight
	}

	snapshot := append([]T(nil), l.items...)
	l.items[idx] = apply(l.items[idx])
	optimistic := l.items[idx]
	l.inflight[key] = true
	l.mu.Unlock()

	updated, err := commit(ctx)

	l.mu.Lock()
	delete(l.inflight, key)
	if err != nil {
		l.items = snapshot
		l.mu.Unlock()
		l.log.WithError(err).WithField("key", key).Error("Mutation failed, rolled back")
		l.notifier.Notify(FailureNotification(l.resource, key, err))
		return zero, err
	}

	result := optimistic
	if updated != nil {
		if idx := l.indexOf(key); idx >= 0 {
			l.items[idx] = *updated
			result = *updated
		}
	}
	l.mu.Unlock()

	if updated == nil {
		// Server confirmed but returned no entity: fall back to a full
		// refetch. The optimistic value stands if the refetch fails.
		if err := l.Load(ctx); err == nil {
			l.mu.Lock()
			if idx := l.indexOf(key); idx >= 0 {
				result = l.items[idx]
			}
			l.mu.Unlock()
		}
	}

	return result, nil
}

// Remove performs an optimistic single-item delete with the same rollback
// contract as Mutate.
func (l *List[T]) Remove(ctx context.Context, key string, commit func(ctx context.Context) error) error {
	l.mu.Lock()
	idx := l.indexOf(key)
	if idx < 0 {
		l.mu.Unlock()
		return ErrNotFound
	}
	if l.inflight[key] {
		l.mu.Unlock()
		return ErrMutationInFlight
	}

	snapshot := append([]T(nil), l.items...)
	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)
	l.inflight[key] = true
	l.mu.Unlock()

	err := commit(ctx)

	l.mu.Lock()
	delete(l.inflight, key)
	if err != nil {
		l.items = snapshot
	}
	l.mu.Unlock()

	if err != nil {
		l.log.WithError(err).WithField("key", key).Error("Delete failed, rolled back")
		l.notifier.Notify(FailureNotification(l.resource, key, err))
		return err
	}
	return nil
}

// Get returns the held item for key, if present.
func (l *List[T]) Get(key string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if idx := l.indexOf(key); idx >= 0 {
		return l.items[idx], true
	}
	return zero, false
}

// indexOf must be called with l.mu held.
func (l *List[T]) indexOf(key string) int {
	for i, item := range l.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}
