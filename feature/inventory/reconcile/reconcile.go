package reconcile

import (
	"fmt"

	"kitinventory/feature/inventory/models"

	"go.uber.org/zap"
)

// DeltaKind classifies a part's actual count against its expected count.
type DeltaKind string

const (
	// DeltaBalanced means the actual count matches the expected count.
	DeltaBalanced DeltaKind = "balanced"
	// DeltaMissing means the actual count is below the expected count.
	DeltaMissing DeltaKind = "missing"
	// DeltaExtra means the actual count is above the expected count.
	DeltaExtra DeltaKind = "extra"
)

// Delta is the classified difference between actual and expected count.
type Delta struct {
	Kind DeltaKind `json:"kind"`
	// Magnitude is the absolute difference. Zero when balanced.
	Magnitude int `json:"magnitude"`
}

// String renders the delta the way the part list displays it. A balanced
// delta renders as the empty string.
func (d Delta) String() string {
	switch d.Kind {
	case DeltaMissing:
		return fmt.Sprintf("%d missing", d.Magnitude)
	case DeltaExtra:
		return fmt.Sprintf("%d extra", d.Magnitude)
	default:
		return ""
	}
}

// Classify computes the delta for a single part.
func Classify(p models.Part) Delta {
	switch {
	case p.Count < p.ExpectedCount:
		return Delta{Kind: DeltaMissing, Magnitude: p.ExpectedCount - p.Count}
	case p.Count > p.ExpectedCount:
		return Delta{Kind: DeltaExtra, Magnitude: p.Count - p.ExpectedCount}
	default:
		return Delta{Kind: DeltaBalanced}
	}
}

// Reconciler adjusts actual part counts in a live part collection. Every
// mutation replaces the map entry with a new Part value carrying the updated
// count; no other field is ever touched.
type Reconciler struct {
	parts  models.PartMap
	logger *zap.Logger
}

// New creates a reconciler over the given part collection.
func New(parts models.PartMap, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{parts: parts, logger: logger}
}

// Increment raises the actual count of the part by one. There is no upper
// bound. It reports false if the part id is not in the collection.
func (r *Reconciler) Increment(id int) (models.Part, bool) {
	p, ok := r.parts[id]
	if !ok {
		return models.Part{}, false
	}
	p.Count++
	r.parts.Put(p)
	return p, true
}

// Decrement lowers the actual count of the part by one. A decrement at zero
// is a no-op: the count is clamped, the attempt is logged, and no error is
// surfaced. It reports false if the part id is not in the collection.
func (r *Reconciler) Decrement(id int) (models.Part, bool) {
	p, ok := r.parts[id]
	if !ok {
		return models.Part{}, false
	}
	if p.Count <= 0 {
		r.logger.Info("decrement ignored, count already at zero",
			zap.Int("part_id", id),
		)
		return p, true
	}
	p.Count--
	r.parts.Put(p)
	return p, true
}

// Delta classifies the part's current count against its expected count.
// An unknown part id reports false.
func (r *Reconciler) Delta(id int) (Delta, bool) {
	p, ok := r.parts[id]
	if !ok {
		return Delta{}, false
	}
	return Classify(p), true
}
