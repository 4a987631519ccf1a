package store

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/LLuCCKKyyyy/lifecompass/internal/storage"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection_AbsentKeyIsEmpty(t *testing.T) {
	c := NewCollection[record](newMemStore(), "test-key")

	items := c.Items()
	if len(items) != 0 {
		t.Errorf("Items() = %v, want empty", items)
	}
}

func TestCollection_LoadFailureDegradesToEmpty(t *testing.T) {
	st := newMemStore()
	st.getErr = errTest("read failed")
	c := NewCollection[record](st, "test-key")

	items := c.Items()
	if len(items) != 0 {
		t.Errorf("Items() after failed load = %v, want empty", items)
	}
}

func TestCollection_CorruptValueDegradesToEmpty(t *testing.T) {
	st := newMemStore()
	st.data["test-key"] = []byte("{not json")
	c := NewCollection[record](st, "test-key")

	if items := c.Items(); len(items) != 0 {
		t.Errorf("Items() over corrupt value = %v, want empty", items)
	}
}

func TestCollection_UpdateVisibleBeforePersistCompletes(t *testing.T) {
	st := newMemStore()
	c := NewCollection[record](st, "test-key")

	c.Update(func(current []record) []record {
		return append(current, record{ID: "1", Name: "first"})
	})

	// No Flush: the cache must already hold the write.
	items := c.Items()
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("Items() immediately after Update = %v, want [{1 first}]", items)
	}
}

func TestCollection_PersistRoundTrip(t *testing.T) {
	st := newMemStore()
	c := NewCollection[record](st, "test-key")

	c.Update(func(current []record) []record {
		return append(current, record{ID: "1", Name: "first"})
	})
	c.Flush()

	raw, ok := st.raw("test-key")
	if !ok {
		t.Fatal("nothing persisted under test-key")
	}
	var persisted []record
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted value is not valid JSON: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Name != "first" {
		t.Errorf("persisted = %v, want [{1 first}]", persisted)
	}

	// A fresh collection over the same substrate sees the persisted data.
	c2 := NewCollection[record](st, "test-key")
	if items := c2.Items(); len(items) != 1 || items[0].ID != "1" {
		t.Errorf("reloaded Items() = %v, want [{1 first}]", items)
	}
}

func TestCollection_FailedPersistKeepsMemoryValue(t *testing.T) {
	st := newMemStore()
	c := NewCollection[record](st, "test-key")
	st.failWrites()

	c.Update(func(current []record) []record {
		return append(current, record{ID: "1", Name: "first"})
	})
	c.Flush()

	if items := c.Items(); len(items) != 1 {
		t.Errorf("Items() after failed persist = %v, want the written value", items)
	}
	status, err := c.Status()
	if status != PersistFailed {
		t.Errorf("Status() = %q, want %q", status, PersistFailed)
	}
	if err == nil {
		t.Error("Status() error = nil, want the persist error")
	}
}

func TestCollection_StatusLifecycle(t *testing.T) {
	st := newMemStore()
	c := NewCollection[record](st, "test-key")

	if status, _ := c.Status(); status != PersistIdle {
		t.Errorf("initial Status() = %q, want %q", status, PersistIdle)
	}

	c.Update(func(current []record) []record { return current })
	c.Flush()

	if status, _ := c.Status(); status != PersistCommitted {
		t.Errorf("Status() after flush = %q, want %q", status, PersistCommitted)
	}
}

func TestCollection_InvalidateRereads(t *testing.T) {
	st := newMemStore()
	c := NewCollection[record](st, "test-key")

	if items := c.Items(); len(items) != 0 {
		t.Fatalf("initial Items() = %v, want empty", items)
	}

	// Simulate another writer touching the substrate directly.
	raw, _ := json.Marshal([]record{{ID: "x", Name: "external"}})
	if err := st.Set("test-key", raw); err != nil {
		t.Fatal(err)
	}

	if items := c.Items(); len(items) != 0 {
		t.Fatal("cache unexpectedly re-read before Invalidate")
	}
	c.Invalidate()
	if items := c.Items(); len(items) != 1 || items[0].ID != "x" {
		t.Errorf("Items() after Invalidate = %v, want the external write", items)
	}
}

func TestCollection_NilResultBecomesEmpty(t *testing.T) {
	c := NewCollection[record](newMemStore(), "test-key")
	c.Update(func(current []record) []record { return nil })
	c.Flush()

	if items := c.Items(); items == nil || len(items) != 0 {
		t.Errorf("Items() = %v, want non-nil empty slice", items)
	}
}

// Back-to-back mutations on two collections sharing one file substrate leave
// both persist goroutines in flight at once, which must not corrupt either
// key (the shape of doctor --fix and of sequential coach calls).
func TestCollections_ConcurrentPersistsOnSharedFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	st := storage.NewFileStore(path)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	a := NewCollection[record](st, "key-a")
	b := NewCollection[record](st, "key-b")
	for i := 0; i < 50; i++ {
		id := strconv.Itoa(i)
		a.Update(func(current []record) []record {
			return append(current, record{ID: id})
		})
		b.Update(func(current []record) []record {
			return append(current, record{ID: id})
		})
	}
	a.Flush()
	b.Flush()

	if status, err := a.Status(); status != PersistCommitted {
		t.Errorf("collection a status = %q (%v), want %q", status, err, PersistCommitted)
	}
	if status, err := b.Status(); status != PersistCommitted {
		t.Errorf("collection b status = %q (%v), want %q", status, err, PersistCommitted)
	}

	st2 := storage.NewFileStore(path)
	if err := st2.Load(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"key-a", "key-b"} {
		fresh := NewCollection[record](st2, key)
		if items := fresh.Items(); len(items) != 50 {
			t.Errorf("%s has %d items after reload, want 50", key, len(items))
		}
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
