package collection

import (
	"context"
	"errors"
	"sync"

	"autohub/database"
)

// Entity is a record addressable by a string id.
type Entity interface {
	GetID() string
}

// Placement decides where Add inserts a new record.
type Placement int

const (
	// Prepend puts new records first (newest-first collections).
	Prepend Placement = iota
	// Append puts new records last.
	Append
)

// ErrRejected is wrapped by guards passed to AddIf when they refuse an insert.
var ErrRejected = errors.New("insert rejected")

// Collection is a JSON array of T stored under a single key.
// Read-modify-write cycles are serialized per collection within the process.
type Collection[T Entity] struct {
	store     database.Store
	key       string
	placement Placement
	limit     int
	mu        sync.Mutex
}

func New[T Entity](store database.Store, key string, placement Placement) *Collection[T] {
	return &Collection[T]{store: store, key: key, placement: placement}
}

// Capped bounds the collection to the newest n records. Older records are
// dropped on insert: the tail of a Prepend collection, the head of an Append one.
func (c *Collection[T]) Capped(n int) *Collection[T] {
	c.limit = n
	return c
}

// Key returns the store key backing the collection.
func (c *Collection[T]) Key() string { return c.key }

func (c *Collection[T]) load(ctx context.Context) []T {
	return database.GetJSON(ctx, c.store, c.key, []T{})
}

// List returns every record in stored order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.load(ctx), nil
}

// Get returns the record with id, or nil when there is none.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	if pos, ok := indexByID(items)[id]; ok {
		item := items[pos]
		return &item, nil
	}
	return nil, nil
}

// Add inserts item and persists the collection. The item is returned unchanged.
func (c *Collection[T]) Add(ctx context.Context, item T) (T, error) {
	return c.AddIf(ctx, item, nil)
}

// AddIf is Add with a guard evaluated against the current records under the collection lock.
// A non-nil guard error aborts the insert without writing.
func (c *Collection[T]) AddIf(ctx context.Context, item T, guard func([]T) error) (T, error) {
	if err := ctx.Err(); err != nil {
		return item, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	if guard != nil {
		if err := guard(items); err != nil {
			return item, err
		}
	}
	if c.placement == Prepend {
		items = append([]T{item}, items...)
		if c.limit > 0 && len(items) > c.limit {
			items = items[:c.limit]
		}
	} else {
		items = append(items, item)
		if c.limit > 0 && len(items) > c.limit {
			items = items[len(items)-c.limit:]
		}
	}
	if err := database.SetJSON(ctx, c.store, c.key, items); err != nil {
		return item, err
	}
	return item, nil
}

// Update applies fn to a copy of the record with id and persists the collection.
// It returns nil without writing when no record matches.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T)) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	pos, ok := indexByID(items)[id]
	if !ok {
		return nil, nil
	}
	updated := items[pos]
	fn(&updated)
	items[pos] = updated
	if err := database.SetJSON(ctx, c.store, c.key, items); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateAll applies fn to every record and persists the collection once.
// It returns the number of records fn reported as changed; nothing is written when that is zero.
func (c *Collection[T]) UpdateAll(ctx context.Context, fn func(*T) bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	changed := 0
	for i := range items {
		if fn(&items[i]) {
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := database.SetJSON(ctx, c.store, c.key, items); err != nil {
		return 0, err
	}
	return changed, nil
}

// indexByID maps ids to positions. On duplicate ids the first occurrence wins.
func indexByID[T Entity](items []T) map[string]int {
	idx := make(map[string]int, len(items))
	for i, item := range items {
		if _, seen := idx[item.GetID()]; !seen {
			idx[item.GetID()] = i
		}
	}
	return idx
}
