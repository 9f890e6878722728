package eventlog

import (
	"kitinventory/feature/inventory/models"
)

// Log is the append-only, ordered sequence of acquisition events. It is the
// system of record: summaries are always recomputed from it, never stored.
//
// Events are never edited or removed after creation. The log holds events in
// call order; no reordering and no deduplication takes place.
type Log struct {
	events []models.AcquisitionEvent
}

// New creates an empty event log.
func New() *Log {
	return &Log{}
}

// Append adds an event to the end of the log.
func (l *Log) Append(event models.AcquisitionEvent) {
	l.events = append(l.events, event)
}

// Events returns the events in append order. The returned slice is a copy so
// callers cannot reorder or truncate the log; the events themselves are
// treated as immutable by convention and hold snapshot part maps.
func (l *Log) Events() []models.AcquisitionEvent {
	out := make([]models.AcquisitionEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of events in the log.
func (l *Log) Len() int {
	return len(l.events)
}
