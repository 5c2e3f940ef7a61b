package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	if _, err := m.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := m.Set(KeyToken, "t1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := m.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "t1" {
		t.Errorf("expected t1, got %s", value)
	}

	if err := m.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is not an error
	if err := m.Delete("missing"); err != nil {
		t.Errorf("Delete of missing key should not error, got %v", err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if _, err := f.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := f.Set(KeyToken, "t1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := f.Set(KeyUser, `{"role":"ADMIN"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Values survive a fresh store over the same file
	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	value, err := reopened.Get(KeyUser)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != `{"role":"ADMIN"}` {
		t.Errorf("unexpected value: %s", value)
	}

	if err := reopened.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := reopened.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The credentials file holds the token; it must not be world-readable
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected file mode 0600, got %o", perm)
	}
}

func TestFile_DeleteMissingKey(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	if err := f.Delete("missing"); err != nil {
		t.Errorf("Delete of missing key should not error, got %v", err)
	}
}
