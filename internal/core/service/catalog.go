package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// Cache keys for the shared catalog reads. Every shopper sees the same
// catalog, so these are global rather than per session.
const (
	cacheKeyCategories    = "catalog:categories"
	cacheKeyProducts      = "catalog:products"
	cacheKeyProductCounts = "catalog:product-counts"
)

const defaultCatalogTTL = 2 * time.Minute

// Catalog serves category and product reads through a TTL cache, collapsing
// concurrent misses for the same key into a single backend call. Admin
// mutations pass through to the backend and invalidate the cached reads.
// Product image names are rewritten into absolute URLs from the configured
// image base; the base itself is an opaque string.
type Catalog struct {
	api       ports.CatalogAPI
	cache     ports.CatalogCache
	ttl       time.Duration
	imageBase string
	sfg       singleflight.Group
	log       zerolog.Logger
}

func NewCatalog(api ports.CatalogAPI, cache ports.CatalogCache, ttl time.Duration, imageBase string, log zerolog.Logger) *Catalog {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &Catalog{api: api, cache: cache, ttl: ttl, imageBase: imageBase, log: log}
}

// Categories lists all categories, cached.
func (s *Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	err := s.fetch(ctx, cacheKeyCategories, func() (any, error) {
		return s.api.ListCategories(ctx)
	}, &cats)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		cats[i].Image = s.imageURL(cats[i].Image)
	}
	return cats, nil
}

// Products lists all products, cached, with absolute image URLs.
func (s *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.fetch(ctx, cacheKeyProducts, func() (any, error) {
		return s.api.ListProducts(ctx)
	}, &products)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Image = s.imageURL(products[i].Image)
	}
	return products, nil
}

// Product fetches a single product directly from the backend. Detail views
// are rare enough that they skip the cache.
func (s *Catalog) Product(ctx context.Context, id int) (*domain.Product, error) {
	p, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Image = s.imageURL(p.Image)
	return p, nil
}

// ProductCounts lists per-category product counts, cached.
func (s *Catalog) ProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error) {
	var counts []domain.CategoryProductCount
	err := s.fetch(ctx, cacheKeyProductCounts, func() (any, error) {
		return s.api.CategoryProductCounts(ctx)
	}, &counts)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// --- Admin mutations: pass through and invalidate cached reads ---

func (s *Catalog) CreateCategory(ctx context.Context, in ports.CategoryUpsert) (*domain.Category, error) {
	cat, err := s.api.CreateCategory(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return cat, nil
}

func (s *Catalog) UpdateCategory(ctx context.Context, id int, in ports.CategoryUpsert) (*domain.Category, error) {
	cat, err := s.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return cat, nil
}

func (s *Catalog) DeleteCategory(ctx context.Context, id int) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Catalog) CreateProduct(ctx context.Context, in ports.ProductUpsert) (*domain.Product, error) {
	p, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Catalog) UpdateProduct(ctx context.Context, id int, in ports.ProductUpsert) (*domain.Product, error) {
	p, err := s.api.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Catalog) DeleteProduct(ctx context.Context, id int) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// fetch reads key from the cache, falling back to load on a miss. Concurrent
// misses for the same key share one backend call via singleflight. Cache
// failures degrade to direct backend reads, never to request failures.
func (s *Catalog) fetch(ctx context.Context, key string, load func() (any, error), out any) error {
	if data, err := s.cache.Get(ctx, key); err == nil {
		if json.Unmarshal(data, out) == nil {
			return nil
		}
		s.log.Warn().Str("key", key).Msg("corrupt cache entry, reloading")
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}

	v, err, _ := s.sfg.Do(key, func() (any, error) {
		fresh, err := load()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(fresh)
		if err != nil {
			return nil, err
		}
		if setErr := s.cache.Set(ctx, key, data, s.ttl); setErr != nil {
			s.log.Warn().Err(setErr).Str("key", key).Msg("cache set failed")
		}
		return data, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), out)
}

func (s *Catalog) invalidate(ctx context.Context) {
	err := s.cache.Invalidate(ctx, cacheKeyCategories, cacheKeyProducts, cacheKeyProductCounts)
	if err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

// imageURL turns a bare backend file name into an absolute URL. Names that
// are already absolute pass through untouched.
func (s *Catalog) imageURL(name string) string {
	if name == "" || s.imageBase == "" || strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return strings.TrimSuffix(s.imageBase, "/") + "/" + name
}
