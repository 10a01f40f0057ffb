package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/packlist/backend/internal/domain"
	"github.com/pkordes/packlist/backend/internal/repo"
)

const exportDateLayout = "2006-01-02"

// ExportService flattens a saved checklist into printable rows.
type ExportService struct {
	checklists repo.ChecklistRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(checklists repo.ChecklistRepo) *ExportService {
	return &ExportService{checklists: checklists}
}

// Export returns one ExportRow per item of the checklist, in stored order
// (which is category order for generated lists).
// A checklist with no items contributes one row with empty item fields.
func (s *ExportService) Export(ctx context.Context, id uuid.UUID) ([]domain.ExportRow, error) {
	c, err := s.checklists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	header := domain.ExportRow{
		ChecklistID: c.ID,
		Destination: c.Trip.Destination,
		StartDate:   c.Trip.StartDate.Format(exportDateLayout),
		EndDate:     c.Trip.EndDate.Format(exportDateLayout),
		Weather:     c.Trip.Weather,
	}

	if len(c.Items) == 0 {
		return []domain.ExportRow{header}, nil
	}

	rows := make([]domain.ExportRow, 0, len(c.Items))
	for _, it := range c.Items {
		row := header
		row.Category = it.Category
		row.Item = it.Name
		row.Quantity = it.Quantity
		row.Packed = it.Packed
		rows = append(rows, row)
	}
	return rows, nil
}
