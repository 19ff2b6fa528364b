package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps values for the lifetime of the process. It backs
// tests and the degraded memory-only mode after a storage failure.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]json.RawMessage

	// FailSets makes every Set report false, for exercising the
	// degraded-storage path in tests
	FailSets bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]json.RawMessage)}
}

func (ms *MemoryStore) Get(key string, out interface{}) bool {
	ms.mu.Lock()
	data, ok := ms.values[key]
	ms.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (ms *MemoryStore) Set(key string, value interface{}) bool {
	if ms.FailSets {
		return false
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	ms.mu.Lock()
	ms.values[key] = data
	ms.mu.Unlock()
	return true
}

func (ms *MemoryStore) Remove(key string) bool {
	ms.mu.Lock()
	delete(ms.values, key)
	ms.mu.Unlock()
	return true
}
