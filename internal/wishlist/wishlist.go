// Package wishlist keeps the ordered set of saved product ids,
// persisted under the wishlist store key.
package wishlist

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/store"
)

// Manager owns the wishlist. Same persistence policy as the cart:
// every mutation is written through before returning, and a failed
// write degrades the session to memory only with a single warning.
type Manager struct {
	mu         sync.Mutex
	ids        []string
	store      store.Store
	logger     *zap.Logger
	memoryOnly bool
}

// NewManager loads any persisted wishlist from the store
func NewManager(s store.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		ids:    store.Wishlist(s),
		store:  s,
		logger: logger,
	}
}

// Add appends a product id if not already present; reports whether it
// was newly added
func (m *Manager) Add(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.ids {
		if id == productID {
			return false
		}
	}
	m.ids = append(m.ids, productID)
	m.persist()
	return true
}

// Remove deletes a product id; absent ids are a no-op
func (m *Manager) Remove(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, id := range m.ids {
		if id == productID {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			m.persist()
			return
		}
	}
}

// Contains reports whether a product id is wishlisted
func (m *Manager) Contains(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// List returns a snapshot of the wishlisted product ids
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]string, len(m.ids))
	copy(snapshot, m.ids)
	return snapshot
}

func (m *Manager) persist() {
	if m.memoryOnly {
		return
	}
	if !store.SaveWishlist(m.store, m.ids) {
		m.memoryOnly = true
		m.logger.Warn("Wishlist persistence failed, continuing in memory only for this session")
	}
}
