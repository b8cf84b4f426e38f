package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	// Parent directory should have been created.
	if _, _, err := store.Get("anything"); err != nil {
		t.Errorf("Get() on fresh database error = %v", err)
	}
}

func TestGetSetRoundtrip(t *testing.T) {
	store := testStore(t)

	if err := store.Set("greeting", "hello"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get("greeting")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if value != "hello" {
		t.Errorf("Get() = %q, want %q", value, "hello")
	}
}

func TestGetMissingKey(t *testing.T) {
	store := testStore(t)

	value, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() ok = true for missing key, value = %q", value)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := testStore(t)

	if err := store.Set("k", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("k", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}
	if value != "second" {
		t.Errorf("Get() = %q, want %q", value, "second")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Set("persistent", "yes"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() after close error = %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("persistent")
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = %q, %v, %v", value, ok, err)
	}
	if value != "yes" {
		t.Errorf("Get() after reopen = %q, want %q", value, "yes")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	if err := store.Set("a", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, ok, err := store.Get("a")
	if err != nil || !ok || value != "1" {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}

	if _, ok, _ := store.Get("missing"); ok {
		t.Error("Get() ok = true for missing key")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenDefaultFallsBackToMemory(t *testing.T) {
	// A path that cannot be a database: the parent exists as a file.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	logger := log.New(io.Discard)
	store := OpenDefault(filepath.Join(blocker, "test.db"), logger)
	defer store.Close()

	if _, isMemory := store.(*Memory); !isMemory {
		t.Fatalf("OpenDefault() = %T, want *Memory", store)
	}

	// The fallback store still works.
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set() on fallback error = %v", err)
	}
	if value, ok, _ := store.Get("k"); !ok || value != "v" {
		t.Errorf("Get() on fallback = %q, %v", value, ok)
	}
}

func testStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
