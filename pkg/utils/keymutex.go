package utils

import "sync"

// KeyMutex serializes work per string key. Toggles on the same edge key
// take the same lock; toggles on different keys proceed independently.
// Entries are never evicted; the key space (edge tuples under concurrent
// toggle) stays small relative to row data.
type KeyMutex struct {
	locks sync.Map
}

func (m *KeyMutex) Lock(key string) {
	mu, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (m *KeyMutex) Unlock(key string) {
	mu, ok := m.locks.Load(key)
	if !ok {
		return
	}
	mu.(*sync.Mutex).Unlock()
}
