package kvstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "jobguard.json")
	store := NewFileStore(path)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}

	if err := store.Set("token", "abc123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := store.Get("token")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if val != "abc123" {
		t.Fatalf("expected abc123, got %q", val)
	}

	// Replacing an existing key keeps other keys intact.
	if err := store.Set("user", `{"email":"a@b.c"}`); err != nil {
		t.Fatalf("Set second key: %v", err)
	}
	if err := store.Set("token", "def456"); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	val, _, _ = store.Get("token")
	if val != "def456" {
		t.Fatalf("expected def456, got %q", val)
	}
	if _, ok, _ := store.Get("user"); !ok {
		t.Fatal("expected user key to survive token rewrite")
	}

	if err := store.Delete("token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get("token"); ok {
		t.Fatal("expected token gone after Delete")
	}
	if err := store.Delete("token"); err != nil {
		t.Fatalf("Delete absent key should be a no-op: %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobguard.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	store := NewFileStore(path)

	if _, _, err := store.Get("anything"); err == nil {
		t.Fatal("expected parse error from corrupt file")
	}
	if err := store.Set("k", "v"); err == nil {
		t.Fatal("expected Set against corrupt file to fail rather than clobber")
	}
}

func TestFileStoreEmptyFileTreatedAsEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobguard.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("seed empty file: %v", err)
	}
	store := NewFileStore(path)
	if _, ok, err := store.Get("k"); err != nil || ok {
		t.Fatalf("empty file: ok=%v err=%v", ok, err)
	}
}
