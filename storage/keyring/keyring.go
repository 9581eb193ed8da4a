// Package keyring provides the durable key-value stores backing credential
// persistence: a file-backed store scoped to the user's config dir, and an
// in-memory store for tests.
package keyring

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core/session"
)

// ErrCorrupted is returned by Open alongside a usable empty keyring when
// the existing file cannot be parsed. Callers report it and carry on; the
// next write replaces the file.
var ErrCorrupted = errors.New("keyring: stored data is corrupted")

// File is a file-backed keyring: one JSON object per file, last-write-wins.
// Concurrent writers from separate processes are not coordinated.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

var _ session.Keyring = (*File)(nil)

// DefaultPath places the keyring under the user config dir.
func DefaultPath(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving user config dir")
	}
	return filepath.Join(dir, appName, "keyring.json"), nil
}

// Open loads the keyring at path, creating parent directories as needed.
// A corrupt file yields an empty keyring and ErrCorrupted.
func Open(path string) (*File, error) {
	f := &File{path: path, data: make(map[string]string)}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "creating keyring dir")
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading keyring")
	}
	if err = json.Unmarshal(raw, &f.data); err != nil {
		f.data = make(map[string]string)
		return f, ErrCorrupted
	}
	return f, nil
}

func (f *File) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	if !ok {
		return "", session.ErrKeyNotFound
	}
	return val, nil
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.save()
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return session.ErrKeyNotFound
	}
	delete(f.data, key)
	return f.save()
}

func (f *File) save() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding keyring")
	}
	if err = os.WriteFile(f.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing keyring")
	}
	return nil
}
