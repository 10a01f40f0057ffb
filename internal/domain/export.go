package domain

import "github.com/google/uuid"

// ExportRow is one line of a flattened checklist export: the trip header
// repeated on every item row. A checklist with no items contributes a single
// row with empty item fields.
type ExportRow struct {
	ChecklistID uuid.UUID
	Destination string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Weather     Weather
	Category    Category
	Item        string
	Quantity    int
	Packed      bool
}
