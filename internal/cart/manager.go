// Package cart owns the in-memory cart and keeps it consistent with
// the persistent store: every mutation is durable before it returns.
package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/store"
	"github.com/sk-sazzad/tinystepsbd/pkg/errors"
)

// Catalog is the product lookup the manager copies line-item fields
// from at add time
type Catalog interface {
	Product(id string) (domain.Product, bool)
}

// Manager is the single owner of the cart. Mutations are serialized so
// two rapid operations apply strictly in issue order.
type Manager struct {
	mu      sync.Mutex
	items   []domain.LineItem
	store   store.Store
	catalog Catalog
	logger  *zap.Logger

	// memoryOnly is set after the first failed persist; the session
	// continues in memory and the failure is warned exactly once
	memoryOnly bool
}

// NewManager loads any persisted cart from the store
func NewManager(s store.Store, catalog Catalog, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		items:   store.Cart(s),
		store:   s,
		catalog: catalog,
		logger:  logger,
	}
}

// AddItem adds quantity of a product to the cart. An id already in the
// cart has its quantity incremented, clamped at the item's max with the
// excess silently dropped. A new id is populated from the catalog;
// ErrItemNotFound leaves the cart untouched.
func (m *Manager) AddItem(productID string, quantity int, color, size string) error {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID != productID {
			continue
		}
		next := m.items[i].Quantity + quantity
		if next > m.items[i].MaxQuantity {
			next = m.items[i].MaxQuantity
		}
		m.items[i].Quantity = next
		m.persist()
		return nil
	}

	product, ok := m.catalog.Product(productID)
	if !ok {
		return &errors.ErrItemNotFound{ProductID: productID}
	}
	if quantity > domain.DefaultMaxQuantity {
		quantity = domain.DefaultMaxQuantity
	}
	m.items = append(m.items, domain.LineItem{
		ID:          product.ID,
		Name:        product.Name,
		ImageURL:    product.ImageURL,
		UnitPrice:   product.Price,
		Quantity:    quantity,
		Color:       color,
		Size:        size,
		MaxQuantity: domain.DefaultMaxQuantity,
	})
	m.persist()
	return nil
}

// SetQuantity sets a line item's quantity directly. Zero or negative
// removes the item, above-max clamps, an absent id is a no-op.
func (m *Manager) SetQuantity(productID string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID != productID {
			continue
		}
		if quantity <= 0 {
			m.items = append(m.items[:i], m.items[i+1:]...)
		} else {
			if quantity > m.items[i].MaxQuantity {
				quantity = m.items[i].MaxQuantity
			}
			m.items[i].Quantity = quantity
		}
		m.persist()
		return
	}
}

// RemoveItem removes a line item; absent ids are a no-op
func (m *Manager) RemoveItem(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persist()
			return
		}
	}
}

// SetVariant records the selected color and size on an existing line
// item; absent ids are a no-op
func (m *Manager) SetVariant(productID, color, size string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == productID {
			m.items[i].Color = color
			m.items[i].Size = size
			m.persist()
			return
		}
	}
}

// Clear empties the cart and persists the empty state
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = []domain.LineItem{}
	m.persist()
}

// Items returns a snapshot copy of the cart
func (m *Manager) Items() []domain.LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]domain.LineItem, len(m.items))
	copy(snapshot, m.items)
	return snapshot
}

// TotalItems sums the quantities across all line items
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no line items
func (m *Manager) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items) == 0
}

// persist writes the cart through the store. Callers hold the mutex.
// The first failure switches the session to memory-only operation.
func (m *Manager) persist() {
	if m.memoryOnly {
		return
	}
	if !store.SaveCart(m.store, m.items) {
		m.memoryOnly = true
		m.logger.Warn("Cart persistence failed, continuing in memory only for this session")
	}
}
