package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileStore_InitLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifecompass.json")
	st := NewFileStore(path)

	if err := st.Load(); err == nil {
		t.Error("Load before Init succeeded, want not-initialized error")
	}
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if err := st.Init(); err == nil {
		t.Error("second Init succeeded, want already-initialized error")
	}

	if err := st.Set("life-compass-tasks", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatal(err)
	}

	// A fresh store over the same file sees the value.
	st2 := NewFileStore(path)
	if err := st2.Load(); err != nil {
		t.Fatal(err)
	}
	value, ok, err := st2.Get("life-compass-tasks")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v, %v), want the persisted value", value, ok, err)
	}
	if string(value) != `[{"id":"1"}]` {
		t.Errorf("Get = %s, want the persisted value", value)
	}
}

func TestFileStore_AbsentKeyIsNotAnError(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "s.json"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	value, ok, err := st.Get("missing")
	if err != nil {
		t.Errorf("Get(missing) error = %v, want nil", err)
	}
	if ok || value != nil {
		t.Errorf("Get(missing) = (%s, %v), want (nil, false)", value, ok)
	}
}

func TestFileStore_RejectsInvalidJSON(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "s.json"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if err := st.Set("key", []byte("{broken")); err == nil {
		t.Error("invalid JSON value accepted")
	}
}

func TestFileStore_SetSurvivesOtherKeys(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "s.json"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	st.Set("a", []byte(`1`))
	st.Set("b", []byte(`2`))

	value, ok, _ := st.Get("a")
	if !ok || string(value) != "1" {
		t.Errorf("key a = (%s, %v) after writing b, want (1, true)", value, ok)
	}
}

// Persist goroutines from different collections hit the same FileStore
// without any coordination above it, so concurrent Sets on distinct keys
// must neither race on the snapshot map nor clobber each other's temp file.
func TestFileStore_ConcurrentSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	st := NewFileStore(path)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	const writes = 200
	var wg sync.WaitGroup
	for _, key := range []string{"life-compass-tasks", "life-compass-people"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			for i := 0; i < writes; i++ {
				if err := st.Set(key, []byte(fmt.Sprintf(`{"n":%d}`, i))); err != nil {
					t.Errorf("Set(%s) = %v", key, err)
					return
				}
			}
		}(key)
	}
	wg.Wait()

	st2 := NewFileStore(path)
	if err := st2.Load(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"life-compass-tasks", "life-compass-people"} {
		value, ok, err := st2.Get(key)
		if err != nil || !ok {
			t.Fatalf("Get(%s) = (%s, %v, %v) after concurrent writes", key, value, ok, err)
		}
		if string(value) != fmt.Sprintf(`{"n":%d}`, writes-1) {
			t.Errorf("Get(%s) = %s, want the last write", key, value)
		}
	}
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStore(filepath.Join(dir, "s.json"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	st.Set("a", []byte(`1`))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "s.json" {
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only s.json", names)
	}
}
