package store

import (
	"errors"
	"sync"
)

// memStore is an in-memory substrate for tests. Set failures and Get errors
// can be injected per test.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	setErr error
	getErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Init() error  { return nil }
func (m *memStore) Load() error  { return nil }
func (m *memStore) Close() error { return nil }
func (m *memStore) Path() string { return "memory" }

func (m *memStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memStore) failWrites() {
	m.mu.Lock()
	m.setErr = errors.New("write failed")
	m.mu.Unlock()
}

func (m *memStore) raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok
}

// fakeScheduler records ScheduleDaily calls for reminder tests.
type fakeScheduler struct {
	mu       sync.Mutex
	calls    [][2]int
	schedErr error
}

func (f *fakeScheduler) ScheduleDaily(hour, minute int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, [2]int{hour, minute})
	return f.schedErr
}

func (f *fakeScheduler) CancelAll() error { return nil }

func (f *fakeScheduler) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
