package store

import (
	"encoding/json"
	"sync"

	"github.com/LLuCCKKyyyy/lifecompass/internal/logger"
	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

// Scalar is the single-value analogue of Collection, used for settings that
// are one JSON value under one key (the reminder time). Same contract:
// lazy load, synchronous cache update, asynchronous persist.
type Scalar[T any] struct {
	key      string
	st       storage.Store
	fallback T

	mu    sync.Mutex
	state loadState
	value T

	persistMu sync.Mutex
	pending   sync.WaitGroup

	statusMu   sync.Mutex
	status     PersistStatus
	persistErr error
}

// NewScalar creates a scalar bound to one storage key. fallback is returned
// until a value has been loaded or set.
func NewScalar[T any](st storage.Store, key string, fallback T) *Scalar[T] {
	return &Scalar[T]{key: key, st: st, fallback: fallback, value: fallback, status: PersistIdle}
}

// Value returns the cached value, loading it on first access. An absent key
// or a failed read yields the fallback.
func (s *Scalar[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateUninitialized {
		s.state = stateReady
		raw, ok, err := s.st.Get(s.key)
		if err != nil {
			logger.Error("Failed to load value", "key", s.key, "error", err)
			return s.fallback
		}
		if ok {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				logger.Error("Failed to parse value", "key", s.key, "error", err)
				return s.fallback
			}
			s.value = v
		}
	}
	return s.value
}

// Set installs the value in the cache synchronously and persists it
// asynchronously. A failed persist is logged and reflected in Status.
func (s *Scalar[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.state = stateReady
	s.mu.Unlock()

	s.setStatus(PersistPending, nil)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.persistLatest()
	}()
}

func (s *Scalar[T]) persistLatest() {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	v := s.value
	s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to serialize value", "key", s.key, "error", err)
		s.setStatus(PersistFailed, err)
		return
	}
	if err := s.st.Set(s.key, raw); err != nil {
		logger.Error("Failed to persist value", "key", s.key, "error", err)
		s.setStatus(PersistFailed, err)
		return
	}
	s.setStatus(PersistCommitted, nil)
}

// Flush blocks until every persist issued so far has completed.
func (s *Scalar[T]) Flush() {
	s.pending.Wait()
}

// Status returns the durability state of the most recent mutation.
func (s *Scalar[T]) Status() (PersistStatus, error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.status, s.persistErr
}

func (s *Scalar[T]) setStatus(st PersistStatus, err error) {
	s.statusMu.Lock()
	s.status = st
	s.persistErr = err
	s.statusMu.Unlock()
}
