// Package packing derives a packing list from trip parameters.
// It is a pure lookup-and-merge over the static template tables in catalog.go:
// no I/O, no shared mutable state, safe to call from any number of goroutines.
package packing

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pkordes/packlist/backend/internal/domain"
)

// Generate builds the packing list for req.
//
// Items are merged from the essentials, the weather band, and each activity
// in req.Activities order, keeping the first item seen for every name.
// Clothing quantities scale with trip length; everything else is 1.
// The result is stably sorted by category.
//
// Returns domain.ErrConfiguration if req.Weather is not a known band.
// Unknown activities are ignored.
func Generate(req domain.TripRequest) ([]domain.PackingItem, error) {
	weather, ok := weatherItems[req.Weather]
	if !ok {
		return nil, fmt.Errorf("%w: unknown weather band %q", domain.ErrConfiguration, req.Weather)
	}

	var (
		items []domain.PackingItem
		seen  = make(map[string]struct{})
	)
	add := func(templates []domain.ItemTemplate) {
		for _, t := range templates {
			if _, dup := seen[t.Name]; dup {
				continue
			}
			seen[t.Name] = struct{}{}
			items = append(items, domain.PackingItem{
				ID:       uuid.New(),
				Name:     t.Name,
				Category: t.Category,
				Quantity: 1,
			})
		}
	}

	add(essentials)
	add(weather)
	for _, a := range req.Activities {
		add(activityItems[a]) // nil for unknown activities
	}

	clothing := ClothingQuantity(TripDays(req.StartDate, req.EndDate))
	for i := range items {
		if items[i].Category == domain.CategoryClothing {
			items[i].Quantity = clothing
		}
	}

	SortByCategory(items)
	return items, nil
}

// SortByCategory stably sorts items by category name using English collation.
// Items within a category keep their relative order.
func SortByCategory(items []domain.PackingItem) {
	// A Collator keeps internal buffers, so each call gets its own.
	c := collate.New(language.English)
	slices.SortStableFunc(items, func(a, b domain.PackingItem) int {
		return c.CompareString(string(a.Category), string(b.Category))
	})
}

// TripDays returns the number of whole days from start to end, comparing
// calendar dates only. Time of day and location offsets are discarded.
// The result is zero for same-day trips and negative when end is before start.
//
// The difference is taken in Unix seconds rather than with time.Sub, whose
// Duration saturates at roughly 292 years.
func TripDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix() - s.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// ClothingQuantity returns how many of each clothing item to pack for a trip
// of days length: one per two days, rounded up, never less than one.
func ClothingQuantity(days int) int {
	if days <= 0 {
		return 1
	}
	return (days + 1) / 2
}
