package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/packlist/backend/internal/domain"
	"github.com/pkordes/packlist/backend/internal/service"
)

// ---- helpers ---------------------------------------------------------------

func checklistFixtureExport(items ...domain.PackingItem) domain.SavedChecklist {
	return domain.SavedChecklist{
		ID: uuid.New(),
		Trip: domain.TripRequest{
			Destination: "Reykjavik",
			StartDate:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
			Weather:     domain.WeatherCold,
		},
		Items:     items,
		CreatedAt: time.Now(),
	}
}

func exportServiceReturning(c domain.SavedChecklist, err error) *service.ExportService {
	return service.NewExportService(&mockChecklistRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.SavedChecklist, error) {
			return c, err
		},
	})
}

// ---- Export ----------------------------------------------------------------

func TestExportService_Export_OneRowPerItem(t *testing.T) {
	c := checklistFixtureExport(
		domain.PackingItem{ID: uuid.New(), Name: "Heavy Winter Coat", Category: domain.CategoryClothing, Quantity: 1, Packed: true},
		domain.PackingItem{ID: uuid.New(), Name: "Thermal Underwear", Category: domain.CategoryClothing, Quantity: 2},
	)
	svc := exportServiceReturning(c, nil)

	rows, err := svc.Export(context.Background(), c.ID)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, c.ID, rows[0].ChecklistID)
	assert.Equal(t, "Reykjavik", rows[0].Destination)
	assert.Equal(t, "2025-02-10", rows[0].StartDate)
	assert.Equal(t, "2025-02-14", rows[0].EndDate)
	assert.Equal(t, domain.WeatherCold, rows[0].Weather)
	assert.Equal(t, "Heavy Winter Coat", rows[0].Item)
	assert.True(t, rows[0].Packed)
	assert.Equal(t, "Thermal Underwear", rows[1].Item)
	assert.Equal(t, 2, rows[1].Quantity)
	assert.False(t, rows[1].Packed)
}

func TestExportService_Export_NoItems_SingleHeaderRow(t *testing.T) {
	c := checklistFixtureExport()
	svc := exportServiceReturning(c, nil)

	rows, err := svc.Export(context.Background(), c.ID)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Reykjavik", rows[0].Destination)
	assert.Empty(t, rows[0].Item)
	assert.Empty(t, rows[0].Category)
	assert.Zero(t, rows[0].Quantity)
}

func TestExportService_Export_NotFound(t *testing.T) {
	svc := exportServiceReturning(domain.SavedChecklist{}, domain.ErrNotFound)

	rows, err := svc.Export(context.Background(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, rows)
}
