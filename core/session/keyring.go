package session

import "errors"

// Durable storage keys. Writes are last-write-wins; the stored schema is
// not versioned.
const (
	KeyToken       = "token"
	KeyCurrentUser = "currentUser"
	KeyDeviceID    = "appDeviceId"
)

var ErrKeyNotFound = errors.New("keyring: key not found")

// Keyring is the scoped durable key-value store backing the session.
// The Store is its sole writer for the session keys; other components only
// read session state through the Store's queries.
type Keyring interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
