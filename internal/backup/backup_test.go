package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "lifecompass.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateAndList(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"life-compass-tasks":[]}`)
	mgr := NewManager(path)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(backupPath) != mgr.BackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(backupPath), mgr.BackupDir())
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 || backups[0].Path != backupPath {
		t.Errorf("List = %v, want the created backup", backups)
	}
	if backups[0].Size == 0 {
		t.Error("backup size = 0")
	}
}

func TestCreate_MissingStoreFails(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("backup of a missing store succeeded")
	}
}

func TestCreate_SameSecondCollision(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{}`)
	mgr := NewManager(path)

	first, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two backups in the same second got the same path")
	}
}

func TestList_EmptyWithoutBackupDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "lifecompass.json"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("List = %v, want empty", backups)
	}
}

func TestRestore_ReplacesStoreAndKeepsSafetyBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{"v":"original"}`)
	mgr := NewManager(path)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	// Change the live store, then restore the backup over it.
	if err := os.WriteFile(path, []byte(`{"v":"changed"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Restore(backupPath); err != nil {
		t.Fatal(err)
	}

	restored, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != `{"v":"original"}` {
		t.Errorf("store after restore = %s, want the backed-up content", restored)
	}

	// The pre-restore state must have been backed up too.
	backups, _ := mgr.List()
	if len(backups) < 2 {
		t.Errorf("got %d backups after restore, want the safety backup as well", len(backups))
	}
}

func TestRestore_RejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{}`)
	mgr := NewManager(path)

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Restore(corrupt); err == nil {
		t.Error("restore of a corrupt backup succeeded")
	}

	// The live store must be untouched.
	content, _ := os.ReadFile(path)
	if string(content) != `{}` {
		t.Errorf("store = %s after rejected restore, want untouched", content)
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()
	path := writeStore(t, dir, `{}`)
	mgr := NewManager(path)

	// Pre-seed more than the retention limit with distinct timestamps.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		name := filepath.Join(mgr.BackupDir(),
			"lifecompass-20260101-"+twoDigits(i)+"0000.json")
		if err := os.WriteFile(name, []byte(`{}`), 0600); err != nil {
			t.Fatal(err)
		}
	}

	created, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) > 14 {
		t.Errorf("got %d backups after rotation, want at most 14", len(backups))
	}
	// The newest backup survives rotation.
	if _, err := os.Stat(created); err != nil {
		t.Error("rotation removed the backup it was rotating for")
	}
}

func twoDigits(n int) string {
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}
