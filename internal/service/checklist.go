package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/packlist/backend/internal/domain"
	"github.com/pkordes/packlist/backend/internal/repo"
)

// ChecklistService implements business logic for saved checklists.
type ChecklistService struct {
	repo repo.ChecklistRepo
}

// NewChecklistService constructs a ChecklistService backed by the provided repo.
func NewChecklistService(r repo.ChecklistRepo) *ChecklistService {
	return &ChecklistService{repo: r}
}

// Save validates the trip and its items, then persists them as a new checklist.
// Items are stored in the order given.
func (s *ChecklistService) Save(ctx context.Context, trip domain.TripRequest, items []domain.PackingItem) (domain.SavedChecklist, error) {
	if err := validateTrip(trip); err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("service.ChecklistService.Save: %w", err)
	}
	if err := validateWeather(trip.Weather); err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("service.ChecklistService.Save: %w", err)
	}
	if err := validateItems(items); err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("service.ChecklistService.Save: %w", err)
	}

	result, err := s.repo.Create(ctx, domain.SavedChecklist{Trip: trip, Items: items})
	if err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("service.ChecklistService.Save: %w", err)
	}
	return result, nil
}

// GetByID returns a checklist with all of its items.
func (s *ChecklistService) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedChecklist, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.SavedChecklist{}, fmt.Errorf("service.ChecklistService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of checklist summaries and the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ChecklistService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.ChecklistSummary, int64, error) {
	summaries, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ChecklistService.ListPaged: %w", err)
	}
	if summaries == nil {
		summaries = []domain.ChecklistSummary{}
	}
	return summaries, total, nil
}

// Delete removes a checklist and its items.
func (s *ChecklistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ChecklistService.Delete: %w", err)
	}
	return nil
}

// TogglePacked marks an unpacked item packed, or a packed one unpacked.
func (s *ChecklistService) TogglePacked(ctx context.Context, checklistID, itemID uuid.UUID) (domain.PackingItem, error) {
	result, err := s.repo.TogglePacked(ctx, checklistID, itemID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.ChecklistService.TogglePacked: %w", err)
	}
	return result, nil
}

// SetQuantity changes how many of an item to pack.
// Returns domain.ErrValidation if quantity is less than 1.
func (s *ChecklistService) SetQuantity(ctx context.Context, checklistID, itemID uuid.UUID, quantity int) (domain.PackingItem, error) {
	if quantity < 1 {
		return domain.PackingItem{}, fmt.Errorf("service.ChecklistService.SetQuantity: %w: quantity must be at least 1", domain.ErrValidation)
	}
	result, err := s.repo.SetQuantity(ctx, checklistID, itemID, quantity)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.ChecklistService.SetQuantity: %w", err)
	}
	return result, nil
}

// RemoveItem deletes one item from a checklist.
func (s *ChecklistService) RemoveItem(ctx context.Context, checklistID, itemID uuid.UUID) error {
	if err := s.repo.DeleteItem(ctx, checklistID, itemID); err != nil {
		return fmt.Errorf("service.ChecklistService.RemoveItem: %w", err)
	}
	return nil
}

// validateItems checks the invariants a generated list starts with, since a
// saved list may have been edited by the client in between:
//   - every name is non-empty and unique within the list,
//   - every non-nil id is unique within the list,
//   - every quantity is at least 1.
//
// Ids only need to be unique per checklist, so saving the same generated
// list twice is allowed.
func validateItems(items []domain.PackingItem) error {
	seen := make(map[string]struct{}, len(items))
	ids := make(map[uuid.UUID]struct{}, len(items))
	for i, it := range items {
		if it.ID != uuid.Nil {
			if _, dup := ids[it.ID]; dup {
				return fmt.Errorf("%w: items[%d]: duplicate id %s", domain.ErrValidation, i, it.ID)
			}
			ids[it.ID] = struct{}{}
		}
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return fmt.Errorf("%w: items[%d]: name is required", domain.ErrValidation, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: items[%d]: duplicate item %q", domain.ErrValidation, i, name)
		}
		seen[name] = struct{}{}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: items[%d]: quantity must be at least 1", domain.ErrValidation, i)
		}
	}
	return nil
}
