package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/internal/metrics"
	"github.com/aaravmahajanofficial/shopity/internal/storage"
)

type listEntry interface {
	ProductID() string
}

// entryList is a product list persisted as a single snapshot under one key.
// writeMu serialises mutations across the durable write, mu guards items, so
// readers never wait on storage. Memory changes only after the write lands.
type entryList[E listEntry] struct {
	name  string
	key   string
	store storage.Store

	writeMu     sync.Mutex
	mu          sync.RWMutex
	items       []E
	subscribers []func([]E)
}

func newEntryList[E listEntry](name, key string, store storage.Store) *entryList[E] {
	return &entryList[E]{name: name, key: key, store: store, items: []E{}}
}

// subscribe registers fn to receive every committed list. fn runs while the
// list is locked for writing and must not mutate it.
func (l *entryList[E]) subscribe(fn func([]E)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.subscribers = append(l.subscribers, fn)
}

// load replaces the in-memory list with the persisted snapshot. On failure the
// list is reset to empty and the StorageError is returned.
func (l *entryList[E]) load(ctx context.Context) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	items, err := l.read(ctx)
	if err != nil {
		slog.Error("Failed to load persisted list",
			slog.String("list", l.name),
			slog.String("key", l.key),
			slog.String("error", err.Error()),
		)
		metrics.RecordStorageError(l.key, "get")
		l.commit([]E{})

		return errors.StorageError("Failed to load " + l.name).WithError(err)
	}

	l.commit(items)

	return nil
}

// mutate derives the next list from the current one and persists it. When fn
// reports no change nothing is written and false is returned.
func (l *entryList[E]) mutate(ctx context.Context, op string, fn func(current []E) ([]E, bool)) (bool, error) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	next, changed := fn(l.snapshot())
	if !changed {
		return false, nil
	}

	if err := l.store.Set(ctx, l.key, next); err != nil {
		slog.Error("Failed to persist list",
			slog.String("list", l.name),
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		metrics.RecordStorageError(l.key, "set")
		metrics.RecordListMutation(l.name, op, metrics.ResultFailed)

		return false, errors.StorageError("Failed to save " + l.name).WithError(err)
	}

	l.commit(next)
	metrics.RecordListMutation(l.name, op, metrics.ResultSuccess)

	return true, nil
}

// clear removes the persisted snapshot and empties the list.
func (l *entryList[E]) clear(ctx context.Context) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if err := l.store.Remove(ctx, l.key); err != nil {
		slog.Error("Failed to remove persisted list",
			slog.String("list", l.name),
			slog.String("error", err.Error()),
		)
		metrics.RecordStorageError(l.key, "remove")
		metrics.RecordListMutation(l.name, "clear", metrics.ResultFailed)

		return errors.StorageError("Failed to clear " + l.name).WithError(err)
	}

	l.commit([]E{})
	metrics.RecordListMutation(l.name, "clear", metrics.ResultSuccess)

	return nil
}

func (l *entryList[E]) commit(items []E) {
	l.mu.Lock()
	l.items = items
	subscribers := slices.Clone(l.subscribers)
	l.mu.Unlock()

	for _, fn := range subscribers {
		fn(slices.Clone(items))
	}
}

func (l *entryList[E]) snapshot() []E {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.items)
}

// persisted re-reads the durable snapshot, bypassing memory.
func (l *entryList[E]) persisted(ctx context.Context) ([]E, error) {
	items, err := l.read(ctx)
	if err != nil {
		metrics.RecordStorageError(l.key, "get")
		return nil, errors.StorageError("Failed to read " + l.name).WithError(err)
	}

	return items, nil
}

func (l *entryList[E]) read(ctx context.Context) ([]E, error) {
	var items []E

	found, err := l.store.Get(ctx, l.key, &items)
	if err != nil {
		return nil, err
	}

	if !found || items == nil {
		return []E{}, nil
	}

	return items, nil
}

func containsProduct[E listEntry](items []E, productID string) bool {
	return slices.ContainsFunc(items, func(e E) bool { return e.ProductID() == productID })
}

func withoutProduct[E listEntry](items []E, productID string) []E {
	return slices.DeleteFunc(items, func(e E) bool { return e.ProductID() == productID })
}
