package inventory

import (
	"context"
	"fmt"

	"kitinventory/core/catalog"
	"kitinventory/feature/inventory/models"

	"go.uber.org/zap"
)

// PartsFetcher retrieves the full part collection for a kit. Implementations
// never fail: on trouble they return whatever they could accumulate.
type PartsFetcher interface {
	FetchParts(ctx context.Context, kitID int) models.PartMap
}

// Fetcher retrieves and merges paginated part data from the catalog service.
type Fetcher struct {
	api           catalog.API
	kitCategory   string
	thumbnailPath string
	logger        *zap.Logger
}

// NewFetcher creates a fetcher over the given catalog API.
func NewFetcher(api catalog.API, cfg catalog.Config, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		api:           api,
		kitCategory:   cfg.KitCategory,
		thumbnailPath: cfg.ThumbnailPath,
		logger:        logger,
	}
}

// FetchParts pages through the kit's parts list and merges every page into
// one part collection. The result is always a valid, possibly empty, map.
//
// Pages are fetched sequentially starting at 1. The total page count is read
// once, from page 1's response, and drives the rest of the loop. A page with
// a non-OK status contributes nothing and paging continues; note that when
// page 1 itself is non-OK the page count is never raised above its initial
// value of 1, so no further pages are attempted even if more exist. A
// transport failure aborts the remaining pages and the accumulated partial
// result is returned. Within the map, later pages win on duplicate ids.
func (f *Fetcher) FetchParts(ctx context.Context, kitID int) models.PartMap {
	parts := make(models.PartMap)

	for page, pages := 1, 1; page <= pages; page++ {
		resp, err := f.api.PartsList(ctx, kitID, page)
		if err != nil {
			f.logger.Warn("parts fetch aborted, returning partial result",
				zap.Int("kit_id", kitID),
				zap.Int("page", page),
				zap.Error(err),
			)
			break
		}

		if resp.Status != catalog.StatusOK {
			f.logger.Warn("skipping parts page with non-OK status",
				zap.Int("kit_id", kitID),
				zap.Int("page", page),
				zap.String("status", resp.Status),
			)
			continue
		}

		if page == 1 {
			pages = resp.CPages
		}

		for _, rec := range resp.Results {
			part, err := models.PartFromTicket(rec, f.thumbnailPath)
			if err != nil {
				f.logger.Warn("skipping malformed catalog record",
					zap.Int("kit_id", kitID),
					zap.Int("page", page),
					zap.Error(err),
				)
				continue
			}
			parts.Put(part)
		}
	}

	return parts
}

// SearchKits queries the catalog for kits matching the fulltext query.
// Unlike part fetching, search is user-initiated and failures are surfaced.
func (f *Fetcher) SearchKits(ctx context.Context, text string) ([]models.Kit, error) {
	resp, err := f.api.Search(ctx, f.kitCategory, text)
	if err != nil {
		return nil, err
	}
	if resp.Status != catalog.StatusOK {
		return nil, fmt.Errorf("catalog search returned status %q", resp.Status)
	}

	kits := make([]models.Kit, 0, len(resp.Results))
	for _, rec := range resp.Results {
		kit, err := models.KitFromTicket(rec, f.thumbnailPath)
		if err != nil {
			f.logger.Warn("skipping malformed search record", zap.Error(err))
			continue
		}
		kits = append(kits, kit)
	}
	return kits, nil
}
