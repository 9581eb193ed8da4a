package keyring

import (
	"sync"

	"github.com/siakad-id/siakad/core/session"
)

// Memory is an in-memory keyring for tests; nothing survives the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ session.Keyring = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return "", session.ErrKeyNotFound
	}
	return val, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return session.ErrKeyNotFound
	}
	delete(m.data, key)
	return nil
}
