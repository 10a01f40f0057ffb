package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedChecklist is a generated (and possibly edited) packing list stored
// together with the trip it was generated for.
type SavedChecklist struct {
	ID        uuid.UUID
	Trip      TripRequest
	Items     []PackingItem
	CreatedAt time.Time
}

// ChecklistSummary is the list view of a SavedChecklist: trip header plus
// how many of its items are packed.
type ChecklistSummary struct {
	ID          uuid.UUID
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Weather     Weather
	ItemCount   int
	PackedCount int
	CreatedAt   time.Time
}
