// internal/controller/list_test.go
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID     string
	Label  string
	Status string
}

func (t testItem) Key() string        { return t.ID }
func (t testItem) SearchText() string { return strings.ToLower(t.Label + " " + t.Status) }

func staticFetch(items []testItem) func(ctx context.Context) ([]testItem, error) {
	return func(ctx context.Context) ([]testItem, error) {
		return append([]testItem(nil), items...), nil
	}
}

func makeItems(n int) []testItem {
	items := make([]testItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, testItem{ID: fmt.Sprintf("i%d", i), Label: fmt.Sprintf("item %d", i), Status: "Pending"})
	}
	return items
}

func loadedList(t *testing.T, items []testItem, pageSize int) *List[testItem] {
	t.Helper()
	l := NewList("test", pageSize, staticFetch(items), nil)
	require.NoError(t, l.Load(context.Background()))
	return l
}

func TestLoadKeepsPriorListOnFailure(t *testing.T) {
	calls := 0
	l := NewList("test", 8, func(ctx context.Context) ([]testItem, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("backend down")
		}
		return makeItems(3), nil
	}, nil)

	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, 3, l.Len())

	assert.Error(t, l.Load(context.Background()))
	assert.Equal(t, 3, l.Len(), "stale list must survive a failed reload")
}

func TestViewPaginationWindow(t *testing.T) {
	l := loadedList(t, makeItems(20), 8)

	page1, total, effective := l.View("", 1, 8)
	assert.Equal(t, 20, total)
	assert.Equal(t, 1, effective)
	require.Len(t, page1, 8)
	assert.Equal(t, "i0", page1[0].ID)

	page3, _, effective := l.View("", 3, 8)
	assert.Equal(t, 3, effective)
	require.Len(t, page3, 4)
	assert.Equal(t, "i16", page3[0].ID)
}

func TestViewClampsPageBeyondLast(t *testing.T) {
	l := loadedList(t, makeItems(10), 8)

	items, total, effective := l.View("", 99, 8)
	assert.Equal(t, 10, total)
	assert.Equal(t, 2, effective)
	assert.Len(t, items, 2)
}

func TestViewEmptyCollection(t *testing.T) {
	l := loadedList(t, nil, 8)

	items, total, effective := l.View("", 5, 8)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.Equal(t, 1, effective)
}

func TestViewSearchResetsDeepPage(t *testing.T) {
	items := makeItems(20)
	items[2].Label = "unique widget"
	l := loadedList(t, items, 8)

	// On page 3 unfiltered; a narrowing search lands back on page 1.
	filtered, total, effective := l.View("unique", 3, 8)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, effective)
	require.Len(t, filtered, 1)
	assert.Equal(t, "i2", filtered[0].ID)
}

func TestFilterCaseInsensitiveAndIdempotent(t *testing.T) {
	items := makeItems(5)
	items[1].Label = "Golden Widget"

	once := Filter(items, "GOLDEN")
	require.Len(t, once, 1)
	assert.Equal(t, "i1", once[0].ID)

	twice := Filter(once, "golden")
	assert.Equal(t, once, twice)

	assert.Equal(t, items, Filter(items, "   "))
}

func TestMutateAppliesServerEntity(t *testing.T) {
	l := loadedList(t, makeItems(3), 8)

	result, err := l.Mutate(context.Background(), "i1",
		func(it testItem) testItem {
			it.Status = "Approved"
			return it
		},
		func(ctx context.Context) (*testItem, error) {
			return &testItem{ID: "i1", Label: "item 1 (server)", Status: "Approved"}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, "item 1 (server)", result.Label)

	held, ok := l.Get("i1")
	require.True(t, ok)
	assert.Equal(t, "item 1 (server)", held.Label)
	assert.Equal(t, "Approved", held.Status)
}

func TestMutateRollbackRestoresSnapshot(t *testing.T) {
	l := loadedList(t, makeItems(3), 8)
	before := l.Items()

	_, err := l.Mutate(context.Background(), "i1",
		func(it testItem) testItem {
			it.Status = "Approved"
			return it
		},
		func(ctx context.Context) (*testItem, error) {
			return nil, errors.New("backend rejected it")
		})
	require.Error(t, err)
	assert.Equal(t, before, l.Items(), "failed mutation must leave the list untouched")
}

func TestMutateFailureEmitsNotification(t *testing.T) {
	feed := NewFeed(10)
	l := NewList("products", 8, staticFetch(makeItems(2)), feed)
	require.NoError(t, l.Load(context.Background()))

	_, err := l.Mutate(context.Background(), "i0",
		func(it testItem) testItem { return it },
		func(ctx context.Context) (*testItem, error) {
			return nil, errors.New("boom")
		})
	require.Error(t, err)

	recent := feed.Recent(10)
	require.Len(t, recent, 1)
	assert.Equal(t, "products", recent[0].Resource)
	assert.Equal(t, "i0", recent[0].ItemKey)
	assert.Equal(t, "error", recent[0].Level)
}

func TestMutateUnknownKey(t *testing.T) {
	l := loadedList(t, makeItems(2), 8)

	_, err := l.Mutate(context.Background(), "missing",
		func(it testItem) testItem { return it },
		func(ctx context.Context) (*testItem, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutateRefusesConcurrentSameItem(t *testing.T) {
	l := loadedList(t, makeItems(2), 8)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := l.Mutate(context.Background(), "i0",
			func(it testItem) testItem { return it },
			func(ctx context.Context) (*testItem, error) {
				close(started)
				<-release
				return nil, nil
			})
		done <- err
	}()

	<-started
	_, err := l.Mutate(context.Background(), "i0",
		func(it testItem) testItem { return it },
		func(ctx context.Context) (*testItem, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrMutationInFlight)

	// A different item is not blocked.
	_, err = l.Mutate(context.Background(), "i1",
		func(it testItem) testItem { return it },
		func(ctx context.Context) (*testItem, error) { return nil, nil })
	assert.NoError(t, err)

	close(release)
	assert.NoError(t, <-done)
}

func TestMutateNilEntityTriggersRefetch(t *testing.T) {
	serverItems := makeItems(3)
	fetches := 0
	l := NewList("test", 8, func(ctx context.Context) ([]testItem, error) {
		fetches++
		return append([]testItem(nil), serverItems...), nil
	}, nil)
	require.NoError(t, l.Load(context.Background()))

	serverItems[1].Status = "Approved"

	result, err := l.Mutate(context.Background(), "i1",
		func(it testItem) testItem {
			it.Status = "Approved"
			return it
		},
		func(ctx context.Context) (*testItem, error) {
			return nil, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "nil server entity must trigger a refetch")
	assert.Equal(t, "Approved", result.Status)
}

func TestRemoveOptimisticAndRollback(t *testing.T) {
	l := loadedList(t, makeItems(3), 8)

	require.NoError(t, l.Remove(context.Background(), "i1", func(ctx context.Context) error {
		return nil
	}))
	assert.Equal(t, 2, l.Len())
	_, ok := l.Get("i1")
	assert.False(t, ok)

	before := l.Items()
	err := l.Remove(context.Background(), "i2", func(ctx context.Context) error {
		return errors.New("backend down")
	})
	require.Error(t, err)
	assert.Equal(t, before, l.Items(), "failed delete must restore the item")
}

func TestFeedBoundedNewestFirst(t *testing.T) {
	feed := NewFeed(3)
	for i := 0; i < 5; i++ {
		feed.Notify(Notification{ID: fmt.Sprintf("n%d", i)})
	}

	recent := feed.Recent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, "n4", recent[0].ID)
	assert.Equal(t, "n2", recent[2].ID)

	limited := feed.Recent(1)
	require.Len(t, limited, 1)
	assert.Equal(t, "n4", limited[0].ID)
}
