package aggregate

import (
	"testing"
	"time"

	"kitinventory/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acquisition(id int64, system string, parts models.PartMap) models.AcquisitionEvent {
	return models.AcquisitionEvent{
		ID:        id,
		Date:      time.Now(),
		EventType: models.EventTypeAcquisition,
		System:    system,
		Parts:     parts,
	}
}

func TestAggregate_Empty(t *testing.T) {
	summaries := Aggregate(nil)
	assert.Empty(t, summaries)
}

func TestAggregate_SingleEvent(t *testing.T) {
	events := []models.AcquisitionEvent{
		acquisition(1, "fischertechnik", models.PartMap{
			1: {ID: 1, Count: 4},
			2: {ID: 2, Count: 6},
		}),
	}

	summaries := Aggregate(events)
	require.Contains(t, summaries, "fischertechnik")

	s := summaries["fischertechnik"]
	assert.Equal(t, 1, s.Kits)
	assert.Equal(t, 10, s.Pieces)
	assert.Equal(t, 2, s.PieceTypes)
}

func TestAggregate_TwoKits(t *testing.T) {
	// Kit A: 10 pieces over 4 distinct types; kit B: 6 pieces, 2 of its 4
	// types already seen with kit A.
	events := []models.AcquisitionEvent{
		acquisition(1, "fischertechnik", models.PartMap{
			1: {ID: 1, Count: 1},
			2: {ID: 2, Count: 2},
			3: {ID: 3, Count: 3},
			4: {ID: 4, Count: 4},
		}),
		acquisition(2, "fischertechnik", models.PartMap{
			3: {ID: 3, Count: 1},
			4: {ID: 4, Count: 1},
			5: {ID: 5, Count: 2},
			6: {ID: 6, Count: 2},
		}),
	}

	summaries := Aggregate(events)
	s := summaries["fischertechnik"]
	assert.Equal(t, 2, s.Kits)
	assert.Equal(t, 16, s.Pieces)
	assert.Equal(t, 6, s.PieceTypes)
}

func TestAggregate_GroupsBySystem(t *testing.T) {
	events := []models.AcquisitionEvent{
		acquisition(1, "fischertechnik", models.PartMap{1: {ID: 1, Count: 2}}),
		acquisition(2, "meccano", models.PartMap{1: {ID: 1, Count: 7}}),
	}

	summaries := Aggregate(events)
	assert.Equal(t, models.SystemSummary{Pieces: 2, PieceTypes: 1, Kits: 1}, summaries["fischertechnik"])
	assert.Equal(t, models.SystemSummary{Pieces: 7, PieceTypes: 1, Kits: 1}, summaries["meccano"])
}

func TestAggregate_IgnoresUnknownEventTypes(t *testing.T) {
	events := []models.AcquisitionEvent{
		acquisition(1, "fischertechnik", models.PartMap{1: {ID: 1, Count: 2}}),
		{
			ID:        2,
			EventType: "disposal",
			System:    "fischertechnik",
			Parts:     models.PartMap{9: {ID: 9, Count: 100}},
		},
	}

	summaries := Aggregate(events)
	s := summaries["fischertechnik"]
	assert.Equal(t, 1, s.Kits)
	assert.Equal(t, 2, s.Pieces)
	assert.Equal(t, 1, s.PieceTypes)
}

func TestAggregate_Idempotent(t *testing.T) {
	events := []models.AcquisitionEvent{
		acquisition(1, "fischertechnik", models.PartMap{
			1: {ID: 1, Count: 3},
			2: {ID: 2, Count: 4},
		}),
		acquisition(2, "fischertechnik", models.PartMap{
			2: {ID: 2, Count: 1},
			3: {ID: 3, Count: 5},
		}),
	}

	first := Aggregate(events)
	second := Aggregate(events)
	assert.Equal(t, first, second)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	parts := models.PartMap{1: {ID: 1, Count: 3}}
	events := []models.AcquisitionEvent{acquisition(1, "fischertechnik", parts)}

	_ = Aggregate(events)

	assert.Equal(t, 3, parts[1].Count)
	assert.Equal(t, models.EventTypeAcquisition, events[0].EventType)
}
