package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// PlaceCacheAdapter stores geocoding matches as JSON in a generic CacheProvider
type PlaceCacheAdapter struct {
	cacheProvider ports.CacheProvider
	metrics       ports.MetricsCollector
	cacheType     string
}

// NewPlaceCacheAdapter creates a place cache on top of a generic cache provider.
// Hits and misses are reported to metrics under cacheType.
func NewPlaceCacheAdapter(cacheProvider ports.CacheProvider, metrics ports.MetricsCollector, cacheType string) ports.PlaceCache {
	return &PlaceCacheAdapter{
		cacheProvider: cacheProvider,
		metrics:       metrics,
		cacheType:     cacheType,
	}
}

// Get retrieves a place from cache
func (p *PlaceCacheAdapter) Get(ctx context.Context, key string) (*ports.Place, error) {
	data, err := p.cacheProvider.Get(ctx, key)
	if err != nil {
		if errors.IsNotFoundError(err) {
			p.metrics.RecordCacheMiss(p.cacheType)
		}
		return nil, err
	}

	var place ports.Place
	if err := json.Unmarshal(data, &place); err != nil {
		p.metrics.RecordCacheMiss(p.cacheType)
		return nil, errors.NewMalformedResponseError("failed to deserialize cached place", err)
	}

	p.metrics.RecordCacheHit(p.cacheType)
	return &place, nil
}

// Set stores a place in cache
func (p *PlaceCacheAdapter) Set(ctx context.Context, key string, place *ports.Place, ttl time.Duration) error {
	if place == nil {
		return errors.NewValidationError("place cannot be nil")
	}

	data, err := json.Marshal(place)
	if err != nil {
		return errors.NewMalformedResponseError("failed to serialize place", err)
	}

	return p.cacheProvider.Set(ctx, key, data, ttl)
}
