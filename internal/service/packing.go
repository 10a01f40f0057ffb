// Package service contains the business logic for the packing list API.
// Services validate inputs, enforce business rules, and orchestrate the
// generator and repo calls. No SQL lives here.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/packlist/backend/internal/domain"
	"github.com/pkordes/packlist/backend/internal/packing"
)

// PackingService generates packing lists from trip parameters.
type PackingService struct{}

// NewPackingService constructs a PackingService.
func NewPackingService() *PackingService {
	return &PackingService{}
}

// Generate validates req and returns its packing list.
// Returns domain.ErrValidation for a blank destination, missing dates, or an
// end date before the start date. An unknown weather band is left to the
// generator, which fails with domain.ErrConfiguration.
func (s *PackingService) Generate(_ context.Context, req domain.TripRequest) ([]domain.PackingItem, error) {
	if err := validateTrip(req); err != nil {
		return nil, fmt.Errorf("service.PackingService.Generate: %w", err)
	}
	items, err := packing.Generate(req)
	if err != nil {
		return nil, fmt.Errorf("service.PackingService.Generate: %w", err)
	}
	return items, nil
}

// validateTrip enforces the field rules shared by Generate and Save.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Both dates must be set.
//   - EndDate must not be before StartDate; same-day trips are fine.
func validateTrip(req domain.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if packing.TripDays(req.StartDate, req.EndDate) < 0 {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}

// validateWeather rejects a band the generator has no table for. Save needs
// it because a saved list never passes through the generator.
func validateWeather(w domain.Weather) error {
	if !packing.IsWeather(w) {
		return fmt.Errorf("%w: unknown weather band %q", domain.ErrConfiguration, w)
	}
	return nil
}
