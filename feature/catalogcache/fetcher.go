package catalogcache

import (
	"context"

	"kitinventory/feature/inventory"
	"kitinventory/feature/inventory/models"

	"go.uber.org/zap"
)

// CachingFetcher wraps a parts fetcher with the database cache. Cache misses
// fall through to the inner fetcher; complete results are written back.
type CachingFetcher struct {
	inner   inventory.PartsFetcher
	service *Service
	logger  *zap.Logger
}

// Wrap decorates the fetcher with the cache service.
func Wrap(inner inventory.PartsFetcher, service *Service, logger *zap.Logger) *CachingFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingFetcher{inner: inner, service: service, logger: logger}
}

// FetchParts serves the kit's parts from the cache when possible. Fetch
// results are best effort and may be partial; an empty result is never
// cached, so a kit whose fetch failed outright is retried on reselection.
func (f *CachingFetcher) FetchParts(ctx context.Context, kitID int) models.PartMap {
	if parts, ok := f.service.Load(ctx, kitID); ok {
		f.logger.Debug("parts served from cache", zap.Int("kit_id", kitID))
		return parts
	}

	parts := f.inner.FetchParts(ctx, kitID)
	if len(parts) == 0 {
		return parts
	}

	if err := f.service.Store(ctx, kitID, parts); err != nil {
		f.logger.Warn("failed to cache parts list",
			zap.Int("kit_id", kitID),
			zap.Error(err),
		)
	}
	return parts
}
