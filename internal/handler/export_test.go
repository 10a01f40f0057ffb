package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/packlist/backend/internal/domain"
	"github.com/pkordes/packlist/backend/internal/handler"
)

// mockExportServicer is a test double for handler.ChecklistExporter.
type mockExportServicer struct {
	export func(ctx context.Context, id uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, id uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, id)
}

// compile-time check: mockExportServicer must satisfy handler.ChecklistExporter.
var _ handler.ChecklistExporter = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func newExportHTTPHandler(svc handler.ChecklistExporter) http.Handler {
	return handler.NewServer(nil, nil, svc).Routes()
}

// exportRowFixture returns a fully-populated domain.ExportRow for testing.
func exportRowFixture(id uuid.UUID) domain.ExportRow {
	return domain.ExportRow{
		ChecklistID: id,
		Destination: "Banff, Canada",
		StartDate:   "2025-01-10",
		EndDate:     "2025-01-17",
		Weather:     domain.WeatherCold,
		Category:    domain.CategorySportsGear,
		Item:        "Ski Goggles",
		Quantity:    1,
		Packed:      true,
	}
}

func exportReturning(rows []domain.ExportRow) *mockExportServicer {
	return &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
			return rows, nil
		},
	}
}

// ---- GET /checklists/{id}/export (JSON) ----------------------------------

func TestExportChecklist_DefaultJSON(t *testing.T) {
	id := uuid.New()
	svc := exportReturning([]domain.ExportRow{exportRowFixture(id)})

	req := httptest.NewRequest(http.MethodGet, "/checklists/"+id.String()+"/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var rows []handler.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, id.String(), rows[0].ChecklistID)
	assert.Equal(t, "Sports Gear", rows[0].Category)
	assert.Equal(t, "Ski Goggles", rows[0].Item)
	assert.True(t, rows[0].Packed)
}

func TestExportChecklist_JSON_EmptyChecklist_OmitsItemFields(t *testing.T) {
	id := uuid.New()
	svc := exportReturning([]domain.ExportRow{{
		ChecklistID: id,
		Destination: "Nowhere",
		StartDate:   "2025-01-10",
		EndDate:     "2025-01-10",
		Weather:     domain.WeatherMild,
	}})

	req := httptest.NewRequest(http.MethodGet, "/checklists/"+id.String()+"/export?format=json", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.NotContains(t, rows[0], "item")
	assert.NotContains(t, rows[0], "category")
	assert.NotContains(t, rows[0], "quantity")
}

// ---- GET /checklists/{id}/export (CSV) -----------------------------------

func TestExportChecklist_CSV_HeaderAndRows(t *testing.T) {
	id := uuid.New()
	second := exportRowFixture(id)
	second.Item = "Heavy Winter Coat"
	second.Category = domain.CategoryClothing
	second.Quantity = 4
	second.Packed = false
	svc := exportReturning([]domain.ExportRow{exportRowFixture(id), second})

	req := httptest.NewRequest(http.MethodGet, "/checklists/"+id.String()+"/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 data rows")
	assert.Equal(t, "checklist_id", records[0][0])
	// Destination contains a comma and must survive quoting.
	assert.Equal(t, []string{id.String(), "Banff, Canada", "2025-01-10", "2025-01-17", "cold", "Sports Gear", "Ski Goggles", "1", "true"}, records[1])
	assert.Equal(t, "4", records[2][7])
	assert.Equal(t, "false", records[2][8])
}

func TestExportChecklist_CSV_EmptyChecklist_BlankItemColumns(t *testing.T) {
	id := uuid.New()
	svc := exportReturning([]domain.ExportRow{{ChecklistID: id, Destination: "Nowhere", Weather: domain.WeatherMild}})

	req := httptest.NewRequest(http.MethodGet, "/checklists/"+id.String()+"/export?format=csv", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], ",mild,,,,"), "got %q", lines[1])
}

// ---- errors ----------------------------------------------------------------

func TestExportChecklist_400_UnknownFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/checklists/"+uuid.NewString()+"/export?format=pdf", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(&mockExportServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportChecklist_404(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context, _ uuid.UUID) ([]domain.ExportRow, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/checklists/"+uuid.NewString()+"/export", nil)
	rec := httptest.NewRecorder()
	newExportHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
