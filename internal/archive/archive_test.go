package archive

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoad(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	body := "format_version: 1\ncolors: []\n"
	if err := store.Save("release-1", body); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load("release-1")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != body {
		t.Errorf("Load() = %q, expected %q", got, body)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Save("wip", "old"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save("wip", "new"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load("wip")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != "new" {
		t.Errorf("Load() = %q, expected %q", got, "new")
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("List() returned %d entries, expected 1", len(entries))
	}
}

func TestList(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Save("a", "aaaa"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save("b", "bb"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, expected 2", len(entries))
	}
	for _, e := range entries {
		switch e.Name {
		case "a":
			if e.Size != 4 {
				t.Errorf("entry a size = %d, expected 4", e.Size)
			}
		case "b":
			if e.Size != 2 {
				t.Errorf("entry b size = %d, expected 2", e.Size)
			}
		default:
			t.Errorf("unexpected entry %q", e.Name)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Load("nope"); err == nil {
		t.Error("Load() should fail for a missing snapshot")
	}
}

func TestDelete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.Save("gone", "body"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Load("gone"); err == nil {
		t.Error("Load() should fail after Delete()")
	}
	if err := store.Delete("gone"); err == nil {
		t.Error("Delete() should fail for a missing snapshot")
	}
}
