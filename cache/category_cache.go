package cache

import (
	"context"
	"sync"
	"time"

	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

const categoryTTL = 5 * time.Minute

// CachedCategoryStore wraps a category store with a short in-process TTL
// cache. Category scope resolution runs on every catalog query; the flat
// active-category list changes rarely and is invalidated by broker events.
type CachedCategoryStore struct {
	inner catalog.CategoryStore

	mu        sync.RWMutex
	list      []models.Category
	fetchedAt time.Time
}

func NewCachedCategoryStore(inner catalog.CategoryStore) *CachedCategoryStore {
	return &CachedCategoryStore{inner: inner}
}

func (s *CachedCategoryStore) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	if s.list != nil && time.Since(s.fetchedAt) < categoryTTL {
		cached := s.list
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	categories, err := s.inner.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.list = categories
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return categories, nil
}

func (s *CachedCategoryStore) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	s.mu.RLock()
	if s.list != nil && time.Since(s.fetchedAt) < categoryTTL {
		for i := range s.list {
			if s.list[i].ID == id {
				c := s.list[i]
				s.mu.RUnlock()
				return &c, nil
			}
		}
	}
	s.mu.RUnlock()

	return s.inner.GetCategory(ctx, id)
}

// Invalidate drops the cached list. Called by the catalog-event consumer on
// any category change.
func (s *CachedCategoryStore) Invalidate() {
	s.mu.Lock()
	s.list = nil
	s.mu.Unlock()
}
