package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestStoreWritesBytesUnderGeneratedName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	name, err := store.Store(strings.NewReader("not a real png"), "cover.png")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if matched := regexp.MustCompile(`^\d+-\d+\.png$`).MatchString(name); !matched {
		t.Fatalf("unexpected generated name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "not a real png" {
		t.Fatalf("stored bytes mismatch: %q", data)
	}
}

func TestStoreKeepsOriginalExtension(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	name, err := store.Store(strings.NewReader("x"), "shot.final.JPG")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(name, ".JPG") {
		t.Fatalf("expected .JPG suffix, got %q", name)
	}

	name, err = store.Store(strings.NewReader("x"), "noextension")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if strings.Contains(name, ".") {
		t.Fatalf("expected no extension, got %q", name)
	}
}

func TestRemoveDeletesFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	name, err := store.Store(strings.NewReader("bytes"), "a.png")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Fatalf("expected file gone, stat err = %v", err)
	}
}

func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	if err := store.Remove("never-existed.png"); err != nil {
		t.Fatalf("expected nil for missing file, got %v", err)
	}
	// removing twice stays silent
	if err := store.Remove("never-existed.png"); err != nil {
		t.Fatalf("expected idempotent remove, got %v", err)
	}
}

func TestNewDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewDiskStore(dir); err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat upload dir: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected upload path to be a directory")
	}
}
