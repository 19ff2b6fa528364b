package store

import (
	"github.com/sk-sazzad/tinystepsbd/internal/domain"
)

// Keys used in the persistent store
const (
	KeyCart         = "cart"
	KeyWishlist     = "wishlist"
	KeyProductCache = "products_cache"
)

// Store is a localStorage-style key-value store with JSON values.
// Implementations never return errors: Get reports false and leaves
// the destination untouched on any failure, Set reports false. Callers
// fall back to their own defaults.
type Store interface {
	Get(key string, out interface{}) bool
	Set(key string, value interface{}) bool
	Remove(key string) bool
}

// Cart loads the persisted cart, or an empty cart when missing or
// unreadable. Records are normalized on the way in: a missing max
// defaults, quantities clamp into range, id-less rows are dropped.
func Cart(s Store) []domain.LineItem {
	var items []domain.LineItem
	if !s.Get(KeyCart, &items) || items == nil {
		return []domain.LineItem{}
	}

	normalized := items[:0]
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if item.MaxQuantity <= 0 {
			item.MaxQuantity = domain.DefaultMaxQuantity
		}
		if item.Quantity > item.MaxQuantity {
			item.Quantity = item.MaxQuantity
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		normalized = append(normalized, item)
	}
	return normalized
}

// SaveCart persists the cart
func SaveCart(s Store, items []domain.LineItem) bool {
	return s.Set(KeyCart, items)
}

// Wishlist loads the persisted wishlist product ids
func Wishlist(s Store) []string {
	var ids []string
	if !s.Get(KeyWishlist, &ids) || ids == nil {
		return []string{}
	}
	return ids
}

// SaveWishlist persists the wishlist
func SaveWishlist(s Store, ids []string) bool {
	return s.Set(KeyWishlist, ids)
}

// ProductCache loads the cached catalog snapshot. The second return is
// false when no usable snapshot is stored; staleness is judged by the
// caller against the snapshot timestamp.
func ProductCache(s Store) (domain.ProductCache, bool) {
	var cache domain.ProductCache
	if !s.Get(KeyProductCache, &cache) || len(cache.Products) == 0 {
		return domain.ProductCache{}, false
	}
	return cache, true
}

// SaveProductCache persists a catalog snapshot
func SaveProductCache(s Store, cache domain.ProductCache) bool {
	return s.Set(KeyProductCache, cache)
}
