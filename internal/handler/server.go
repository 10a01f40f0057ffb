// Package handler implements the HTTP handlers for the packing list API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, packing.go, checklist.go, export.go) but share the same Server struct.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/packlist/backend/internal/domain"
)

// PackingGenerator defines the generation operation the packing handler depends on.
type PackingGenerator interface {
	Generate(ctx context.Context, req domain.TripRequest) ([]domain.PackingItem, error)
}

// ChecklistServicer defines the business operations the checklist handlers
// depend on. Defined here, in the consumer package, so handler tests can
// inject a mock without touching the database.
type ChecklistServicer interface {
	Save(ctx context.Context, trip domain.TripRequest, items []domain.PackingItem) (domain.SavedChecklist, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedChecklist, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.ChecklistSummary, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TogglePacked(ctx context.Context, checklistID, itemID uuid.UUID) (domain.PackingItem, error)
	SetQuantity(ctx context.Context, checklistID, itemID uuid.UUID, quantity int) (domain.PackingItem, error)
	RemoveItem(ctx context.Context, checklistID, itemID uuid.UUID) error
}

// ChecklistExporter defines the export operation the export handler depends on.
type ChecklistExporter interface {
	Export(ctx context.Context, id uuid.UUID) ([]domain.ExportRow, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	packing    PackingGenerator
	checklists ChecklistServicer
	export     ChecklistExporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(packing PackingGenerator, checklists ChecklistServicer, export ChecklistExporter) *Server {
	return &Server{packing: packing, checklists: checklists, export: export}
}

// Routes returns a router serving every endpoint. The write middlewares wrap
// only the endpoints that generate or modify data; main.go passes the rate
// limiter here.
func (s *Server) Routes(write ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/catalog", s.GetCatalog)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.With(write...).Post("/packing-lists", s.GeneratePackingList)

	r.Route("/checklists", func(r chi.Router) {
		r.Get("/", s.ListChecklists)
		r.With(write...).Post("/", s.CreateChecklist)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetChecklist)
			r.Get("/export", s.ExportChecklist)
			r.With(write...).Delete("/", s.DeleteChecklist)

			r.Route("/items/{itemID}", func(r chi.Router) {
				r.Use(write...)
				r.Patch("/", s.UpdateChecklistItem)
				r.Delete("/", s.DeleteChecklistItem)
				r.Post("/toggle", s.ToggleChecklistItem)
			})
		})
	})

	return r
}
