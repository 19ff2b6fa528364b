package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/domain"
	"github.com/sk-sazzad/tinystepsbd/internal/store"
)

// CacheTimeout is how long a persisted catalog snapshot stays usable
const CacheTimeout = 5 * time.Minute

// Source names the tier a catalog load came from
type Source string

const (
	SourceLive   Source = "live"
	SourceCache  Source = "cache"
	SourceSample Source = "sample"
)

// Loader holds the current product list and refreshes it through a
// three-tier fallback: live API, persisted cache, built-in samples.
type Loader struct {
	client        *Client
	store         store.Store
	logger        *zap.Logger
	enableSamples bool

	mu       sync.RWMutex
	products []domain.Product
	source   Source
}

// NewLoader creates a catalog loader. enableSamples controls the
// last-resort built-in product set.
func NewLoader(client *Client, s store.Store, enableSamples bool, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		client:        client,
		store:         s,
		logger:        logger,
		enableSamples: enableSamples,
	}
}

// Load refreshes the in-memory product list. A live fetch refreshes
// the persisted cache; on failure the loader falls back to a fresh
// cache, then to the sample set. Each tier is logged distinctly.
func (l *Loader) Load(ctx context.Context) (Source, error) {
	products, err := l.client.FetchProducts(ctx)
	if err == nil {
		l.setProducts(products, SourceLive)
		store.SaveProductCache(l.store, domain.ProductCache{
			Products:  products,
			Timestamp: time.Now().UnixMilli(),
		})
		l.logger.Info("Catalog loaded from live API", zap.Int("product_count", len(products)))
		return SourceLive, nil
	}
	l.logger.Warn("Live catalog load failed, trying cache", zap.Error(err))

	if cache, ok := store.ProductCache(l.store); ok {
		age := time.Since(time.UnixMilli(cache.Timestamp))
		if age <= CacheTimeout {
			l.setProducts(cache.Products, SourceCache)
			l.logger.Info("Catalog loaded from cache",
				zap.Int("product_count", len(cache.Products)),
				zap.Duration("age", age))
			return SourceCache, nil
		}
		l.logger.Info("Catalog cache is stale, ignoring", zap.Duration("age", age))
	}

	if l.enableSamples {
		l.setProducts(sampleProducts, SourceSample)
		l.logger.Warn("Catalog falling back to built-in sample products",
			zap.Int("product_count", len(sampleProducts)))
		return SourceSample, nil
	}

	return "", fmt.Errorf("catalog unavailable: %w", err)
}

func (l *Loader) setProducts(products []domain.Product, source Source) {
	l.mu.Lock()
	l.products = products
	l.source = source
	l.mu.Unlock()
}

// Products returns a snapshot of the current product list and its
// source tier
func (l *Loader) Products() ([]domain.Product, Source) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make([]domain.Product, len(l.products))
	copy(snapshot, l.products)
	return snapshot, l.source
}

// Product looks up a product by id in the currently loaded catalog
func (l *Loader) Product(id string) (domain.Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Query filters and orders the product list
type Query struct {
	Text     string
	Category string
	Size     string
	Sort     string // name, price-low, price-high, newest
}

// Search applies the query to the current product list
func (l *Loader) Search(q Query) []domain.Product {
	products, _ := l.Products()

	filtered := products[:0:0]
	text := strings.ToLower(q.Text)
	for _, p := range products {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) &&
			!strings.Contains(strings.ToLower(p.Category), text) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Size != "" && p.Size != q.Size {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.Sort {
	case "price-low":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-high":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case "newest":
		// Later product ids are newer in the sheet
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })
	default:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	}
	return filtered
}

// RunRefreshLoop loads the catalog once, then refreshes it on the
// cache cadence until ctx is cancelled
func (l *Loader) RunRefreshLoop(ctx context.Context) {
	if _, err := l.Load(ctx); err != nil {
		l.logger.Error("Initial catalog load failed", zap.Error(err))
	}

	ticker := time.NewTicker(CacheTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := l.Load(ctx); err != nil {
				l.logger.Error("Catalog refresh failed", zap.Error(err))
			}
		}
	}
}
