package session

import (
	"encoding/json"
	"errors"

	"jobguard/internal/backend"
	"jobguard/internal/shared/kvstore"
	"jobguard/internal/shared/telemetry"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Session is the current identity: an opaque bearer token plus the backend's
// user object, both persisted in local storage.
type Session struct {
	Token string
	User  backend.User
}

// LoggedIn reports whether the session carries a usable identity.
func (s Session) LoggedIn() bool {
	return s.Token != "" && s.User.Email != ""
}

// Manager loads and stores the session in the shared key-value storage.
type Manager struct {
	storage kvstore.Storage
}

// NewManager constructs a Manager over the given storage.
func NewManager(storage kvstore.Storage) *Manager {
	return &Manager{storage: storage}
}

// Load reads the stored session. Corrupt state is self-healing: a missing
// token, a user payload that is absent, the literal string "undefined", or
// unparseable JSON all clear the stored credentials and yield a logged-out
// session instead of a broken loop.
func (m *Manager) Load() Session {
	token, _, err := m.storage.Get(tokenKey)
	if err != nil {
		telemetry.Error("session.read.failed", map[string]any{"err": err.Error()})
		return Session{}
	}
	rawUser, ok, err := m.storage.Get(userKey)
	if err != nil {
		telemetry.Error("session.read.failed", map[string]any{"err": err.Error()})
		return Session{}
	}

	if rawUser == "undefined" {
		_ = m.storage.Delete(userKey)
		ok = false
	}
	if token == "" || !ok {
		return Session{}
	}

	var user backend.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.Email == "" {
		telemetry.Error("session.corrupt", map[string]any{"err": errString(err)})
		m.Clear()
		return Session{}
	}

	return Session{Token: token, User: user}
}

// Save persists the token and user object.
func (m *Manager) Save(token string, user backend.User) error {
	if token == "" || user.Email == "" {
		return errors.New("session: token and user are required")
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.storage.Set(tokenKey, token); err != nil {
		return err
	}
	return m.storage.Set(userKey, string(rawUser))
}

// Clear removes the stored credentials. Errors are logged and swallowed;
// a failed clear just means the next Load self-heals again.
func (m *Manager) Clear() {
	if err := m.storage.Delete(tokenKey); err != nil {
		telemetry.Error("session.clear.failed", map[string]any{"err": err.Error()})
	}
	if err := m.storage.Delete(userKey); err != nil {
		telemetry.Error("session.clear.failed", map[string]any{"err": err.Error()})
	}
}

func errString(err error) string {
	if err == nil {
		return "user object missing email"
	}
	return err.Error()
}
