// Package store implements the domain state modules: reactive in-memory views
// of collections backed by the durable key-value substrate. Every module
// follows the same cycle: load on first access, cache in memory, mutate by
// whole-collection replacement, persist asynchronously.
package store

import (
	"encoding/json"
	"sync"

	"github.com/LLuCCKKyyyy/lifecompass/internal/logger"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

type loadState int

const (
	stateUninitialized loadState = iota
	stateLoading
	stateReady
)

// PersistStatus reports the durability of the most recent mutation. The
// in-memory cache is updated synchronously; persistence trails behind it.
type PersistStatus string

const (
	PersistIdle      PersistStatus = "idle"
	PersistPending   PersistStatus = "pending"
	PersistCommitted PersistStatus = "committed"
	PersistFailed    PersistStatus = "failed"
)

// Collection is one named collection cached in memory and persisted as a
// single JSON array under its storage key.
//
// Reads during the initial load (or after a failed load) observe an empty
// collection rather than blocking or erroring; read failures are logged and
// absorbed. Mutations install the new snapshot in the cache before the
// asynchronous persist starts, so a read immediately following a write always
// observes the write even if the underlying Set has not completed.
type Collection[T any] struct {
	key string
	st  storage.Store

	mu    sync.Mutex
	state loadState
	items []T

	// persistMu serializes writes to the substrate; each persist writes the
	// latest cache snapshot, so delayed goroutines never clobber newer data.
	persistMu sync.Mutex
	pending   sync.WaitGroup

	statusMu   sync.Mutex
	status     PersistStatus
	persistErr error
}

// NewCollection creates a collection bound to one storage key. Nothing is
// read until the first access.
func NewCollection[T any](st storage.Store, key string) *Collection[T] {
	return &Collection[T]{key: key, st: st, status: PersistIdle}
}

// Key returns the storage key this collection persists under.
func (c *Collection[T]) Key() string {
	return c.key
}

// Items returns a copy of the cached collection, loading it from storage on
// first access. While a load is in flight on another goroutine the result is
// empty, never an error.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	switch c.state {
	case stateLoading:
		c.mu.Unlock()
		return []T{}
	case stateUninitialized:
		c.state = stateLoading
		c.mu.Unlock()
		items := c.load()
		c.mu.Lock()
		c.items = items
		c.state = stateReady
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	c.mu.Unlock()
	return out
}

// load fetches and deserializes the collection. Any failure degrades to an
// empty collection; the error is logged, never surfaced.
func (c *Collection[T]) load() []T {
	raw, ok, err := c.st.Get(c.key)
	if err != nil {
		logger.Error("Failed to load collection", "key", c.key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Error("Failed to parse collection", "key", c.key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Update applies f to a copy of the current collection, installs the result
// in the cache synchronously, and persists it asynchronously. f must not
// mutate its argument's elements in place when they hold reference types; it
// returns the complete next snapshot.
//
// Update returns before the persist completes. A failed persist leaves the
// new value visible in memory for the session; it is logged and reflected in
// Status, not returned.
func (c *Collection[T]) Update(f func(current []T) []T) {
	current := c.Items()
	next := f(current)
	if next == nil {
		next = []T{}
	}

	c.mu.Lock()
	c.items = next
	c.state = stateReady
	c.mu.Unlock()

	c.setStatus(PersistPending, nil)
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		c.persistLatest()
	}()
}

// persistLatest serializes and writes the cache as it stands now. Persists
// are serialized so the last write to hit the substrate is always the newest
// snapshot, regardless of goroutine scheduling.
func (c *Collection[T]) persistLatest() {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	c.mu.Unlock()

	raw, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to serialize collection", "key", c.key, "error", err)
		c.setStatus(PersistFailed, err)
		return
	}
	if err := c.st.Set(c.key, raw); err != nil {
		logger.Error("Failed to persist collection", "key", c.key, "error", err)
		c.setStatus(PersistFailed, err)
		return
	}
	c.setStatus(PersistCommitted, nil)
}

// Flush blocks until every persist issued so far has completed. Called on
// shutdown and in tests; mutators themselves never wait.
func (c *Collection[T]) Flush() {
	c.pending.Wait()
}

// Invalidate drops the cache so the next read re-fetches from storage.
func (c *Collection[T]) Invalidate() {
	c.Flush()
	c.mu.Lock()
	c.state = stateUninitialized
	c.items = nil
	c.mu.Unlock()
}

// Status returns the durability state of the most recent mutation and, when
// failed, the persist error.
func (c *Collection[T]) Status() (PersistStatus, error) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	return c.status, c.persistErr
}

func (c *Collection[T]) setStatus(s PersistStatus, err error) {
	c.statusMu.Lock()
	c.status = s
	c.persistErr = err
	c.statusMu.Unlock()
}
