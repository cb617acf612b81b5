package session

import (
	"testing"

	"jobguard/internal/backend"
	"jobguard/internal/shared/kvstore"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewManager(kvstore.NewMemoryStore())

	user := backend.User{ID: 7, Name: "Alice", Email: "a@example.com", Profession: "Developer"}
	if err := m.Save("tok-1", user); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sess := m.Load()
	if !sess.LoggedIn() {
		t.Fatal("expected logged-in session")
	}
	if sess.Token != "tok-1" || sess.User.Email != "a@example.com" || sess.User.Profession != "Developer" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestSaveRejectsEmptyIdentity(t *testing.T) {
	m := NewManager(kvstore.NewMemoryStore())
	if err := m.Save("", backend.User{Email: "a@example.com"}); err == nil {
		t.Fatal("expected error for empty token")
	}
	if err := m.Save("tok", backend.User{}); err == nil {
		t.Fatal("expected error for user without email")
	}
}

func TestLoadMissingStateIsLoggedOut(t *testing.T) {
	m := NewManager(kvstore.NewMemoryStore())
	if sess := m.Load(); sess.LoggedIn() {
		t.Fatalf("expected logged-out session, got %+v", sess)
	}
}

func TestLoadSelfHealsCorruptUser(t *testing.T) {
	storage := kvstore.NewMemoryStore()
	_ = storage.Set("token", "tok-1")
	_ = storage.Set("user", "{broken json")

	m := NewManager(storage)
	if sess := m.Load(); sess.LoggedIn() {
		t.Fatalf("expected logged-out session, got %+v", sess)
	}

	// Both credentials must have been cleared so startup doesn't loop.
	if _, ok, _ := storage.Get("token"); ok {
		t.Fatal("expected corrupt token cleared")
	}
	if _, ok, _ := storage.Get("user"); ok {
		t.Fatal("expected corrupt user cleared")
	}
}

func TestLoadHandlesUndefinedLiteral(t *testing.T) {
	storage := kvstore.NewMemoryStore()
	_ = storage.Set("token", "tok-1")
	_ = storage.Set("user", "undefined")

	m := NewManager(storage)
	if sess := m.Load(); sess.LoggedIn() {
		t.Fatalf("expected logged-out session, got %+v", sess)
	}
	if _, ok, _ := storage.Get("user"); ok {
		t.Fatal(`expected literal "undefined" user removed`)
	}
}

func TestClear(t *testing.T) {
	m := NewManager(kvstore.NewMemoryStore())
	if err := m.Save("tok-1", backend.User{Email: "a@example.com"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	m.Clear()
	if sess := m.Load(); sess.LoggedIn() {
		t.Fatal("expected logged-out session after Clear")
	}
}
