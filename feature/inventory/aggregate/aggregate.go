package aggregate

import (
	"kitinventory/feature/inventory/models"
)

// Aggregate reduces an ordered event sequence into per-system summaries.
//
// It is a pure function: it never mutates its input and running it twice over
// the same sequence yields identical results. For every acquisition event,
// grouped by system:
//
//   - Kits grows by one per event.
//   - Pieces grows by the sum of part counts in the event's snapshot.
//   - PieceTypes is the number of distinct part ids seen for the system
//     across all events processed so far.
//
// Events with an unrecognized event type are skipped, so future event kinds
// can be added to the log without breaking existing summaries.
func Aggregate(events []models.AcquisitionEvent) map[string]models.SystemSummary {
	summaries := make(map[string]models.SystemSummary)
	seenParts := make(map[string]map[int]struct{})

	for _, event := range events {
		if event.EventType != models.EventTypeAcquisition {
			continue
		}

		summary := summaries[event.System]
		summary.Kits++
		summary.Pieces += event.Parts.TotalCount()

		seen := seenParts[event.System]
		if seen == nil {
			seen = make(map[int]struct{})
			seenParts[event.System] = seen
		}
		for id := range event.Parts {
			seen[id] = struct{}{}
		}
		summary.PieceTypes = len(seen)

		summaries[event.System] = summary
	}

	return summaries
}
