package inventory

import (
	"context"
	"errors"
	"sync"

	"kitinventory/feature/inventory/models"
	"kitinventory/feature/inventory/reconcile"

	"go.uber.org/zap"
)

// ErrUnknownPart is returned when a count adjustment names a part id that is
// not in the live collection.
var ErrUnknownPart = errors.New("part not in the selected kit")

// Controller owns the single user session: the selected kit and its live,
// editable part collection. All mutation happens synchronously under one
// lock; the only suspending operation is the parts fetch, which runs as a
// cancellable task keyed by a selection generation so a late result for a
// superseded kit is discarded instead of overwriting newer state.
type Controller struct {
	service *Service
	fetcher PartsFetcher
	logger  *zap.Logger

	mu         sync.Mutex
	selected   *models.Kit
	parts      models.PartMap
	generation uint64
	cancel     context.CancelFunc
}

// NewController creates a session controller.
func NewController(service *Service, fetcher PartsFetcher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		service: service,
		fetcher: fetcher,
		logger:  logger,
	}
}

// SelectKit makes the kit the active selection and starts fetching its parts
// list. Any in-flight fetch for a previous selection is cancelled and its
// result, should it still arrive, is dropped. The live part collection is
// cleared immediately so stale parts are never shown for the new kit.
//
// The returned channel closes once the fetch has resolved (applied or
// discarded), which callers may use to wait for the collection.
func (c *Controller) SelectKit(ctx context.Context, kit models.Kit) <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.generation++
	gen := c.generation
	selected := kit
	c.selected = &selected
	c.parts = make(models.PartMap)

	done := make(chan struct{})
	go func() {
		defer close(done)
		parts := c.fetcher.FetchParts(fetchCtx, kit.ID)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.generation {
			c.logger.Info("discarding parts fetch for superseded selection",
				zap.Int("kit_id", kit.ID),
			)
			return
		}
		c.parts = parts
	}()
	return done
}

// ClearSelection drops the selected kit and its part collection. Any
// in-flight fetch is cancelled.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.selected = nil
	c.parts = nil
}

// SelectedKit returns a copy of the active kit, or nil if none is selected.
func (c *Controller) SelectedKit() *models.Kit {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected == nil {
		return nil
	}
	kit := *c.selected
	return &kit
}

// Parts returns a snapshot of the live part collection.
func (c *Controller) Parts() models.PartMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parts.Clone()
}

// AdjustCount applies a single increment (delta > 0) or decrement (delta < 0)
// to the part and returns the updated part together with its classified
// delta against the expected count. Decrements at zero are clamped no-ops.
func (c *Controller) AdjustCount(id int, delta int) (models.Part, reconcile.Delta, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := reconcile.New(c.parts, c.logger)

	var part models.Part
	var ok bool
	if delta >= 0 {
		part, ok = r.Increment(id)
	} else {
		part, ok = r.Decrement(id)
	}
	if !ok {
		return models.Part{}, reconcile.Delta{}, ErrUnknownPart
	}

	return part, reconcile.Classify(part), nil
}

// Register snapshots the current selection into one acquisition event. The
// selection is kept so the collector can correct a miscount and re-register;
// clearing is an explicit ClearSelection call.
func (c *Controller) Register(meta models.Metadata) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.service.RegisterAcquisition(meta, c.selected, c.parts)
}
