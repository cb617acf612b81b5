package kvstore

// Storage is the flat key-value persistence medium backing the record store
// and the session. Values are opaque strings (JSON-serialized by callers).
// Get reports whether the key was present; an absent key is not an error.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
