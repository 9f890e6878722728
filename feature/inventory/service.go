package inventory

import (
	"context"
	"errors"
	"sync"
	"time"

	"kitinventory/feature/inventory/aggregate"
	"kitinventory/feature/inventory/eventlog"
	"kitinventory/feature/inventory/models"

	"go.uber.org/zap"
)

// ErrNoKitSelected is returned by RegisterAcquisition when no kit has been
// chosen. The event log is left untouched in that case.
var ErrNoKitSelected = errors.New("no kit selected")

// Service owns the event log for one collectible system and registers
// acquisitions against it.
type Service struct {
	log     *eventlog.Log
	fetcher *Fetcher
	system  string
	logger  *zap.Logger

	ids eventIDSource
}

// NewService creates an inventory service for the given system name.
func NewService(log *eventlog.Log, fetcher *Fetcher, system string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		log:     log,
		fetcher: fetcher,
		system:  system,
		logger:  logger,
	}
}

// System returns the configured collectible system name.
func (s *Service) System() string {
	return s.system
}

// SearchKits queries the catalog for kits matching the fulltext query.
func (s *Service) SearchKits(ctx context.Context, text string) ([]models.Kit, error) {
	return s.fetcher.SearchKits(ctx, text)
}

// RegisterAcquisition builds one acquisition event from the selected kit, its
// reconciled part collection, and the form metadata, and appends it to the
// event log. The event carries a deep copy of the parts so later edits to the
// live collection cannot retroactively alter history.
//
// It returns ErrNoKitSelected, without appending anything, when kit is nil.
func (s *Service) RegisterAcquisition(meta models.Metadata, kit *models.Kit, parts models.PartMap) (int64, error) {
	if kit == nil {
		return 0, ErrNoKitSelected
	}

	event := models.AcquisitionEvent{
		ID:        s.ids.next(),
		Date:      time.Now(),
		EventType: models.EventTypeAcquisition,
		System:    s.system,
		Metadata:  meta,
		Kit:       *kit,
		Parts:     parts.Clone(),
	}
	s.log.Append(event)

	s.logger.Info("acquisition registered",
		zap.Int64("event_id", event.ID),
		zap.String("system", event.System),
		zap.Int("kit_id", kit.ID),
		zap.Int("pieces", event.Parts.TotalCount()),
	)
	return event.ID, nil
}

// Summary recomputes the per-system summaries from the full event log.
func (s *Service) Summary() map[string]models.SystemSummary {
	return aggregate.Aggregate(s.log.Events())
}

// Events returns the event log contents in append order.
func (s *Service) Events() []models.AcquisitionEvent {
	return s.log.Events()
}

// eventIDSource issues event ids derived from the creation time. Ids must
// strictly increase even when two registrations land in the same clock tick.
type eventIDSource struct {
	mu   sync.Mutex
	last int64
}

func (s *eventIDSource) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixNano()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
