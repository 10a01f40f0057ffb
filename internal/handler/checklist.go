package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/packlist/backend/internal/domain"
)

// CreateChecklist handles POST /checklists.
func (s *Server) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	var body CreateChecklistRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	if body.Trip == nil {
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error", "trip is required")
		return
	}

	created, err := s.checklists.Save(r.Context(), tripToDomain(*body.Trip), itemsToDomain(body.Items))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, http.StatusCreated, checklistToResponse(created))
}

// ListChecklists handles GET /checklists.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListChecklists(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	summaries, total, err := s.checklists.ListPaged(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	data := make([]ChecklistSummary, len(summaries))
	for i, cs := range summaries {
		data[i] = summaryToResponse(cs)
	}
	writeJSON(w, r, http.StatusOK, ChecklistPage{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetChecklist handles GET /checklists/{id}.
func (s *Server) GetChecklist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := s.checklists.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "checklist not found")
		return
	}

	writeJSON(w, r, http.StatusOK, checklistToResponse(c))
}

// DeleteChecklist handles DELETE /checklists/{id}.
func (s *Server) DeleteChecklist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.checklists.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "checklist not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleChecklistItem handles POST /checklists/{id}/items/{itemID}/toggle.
func (s *Server) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := pathItemIDs(w, r)
	if !ok {
		return
	}

	it, err := s.checklists.TogglePacked(r.Context(), id, itemID)
	if err != nil {
		writeServiceError(w, r, err, "item not found")
		return
	}

	writeJSON(w, r, http.StatusOK, itemToResponse(it))
}

// UpdateChecklistItem handles PATCH /checklists/{id}/items/{itemID}.
// Only quantity can be changed; packed is flipped with the toggle endpoint.
func (s *Server) UpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := pathItemIDs(w, r)
	if !ok {
		return
	}

	var body UpdateItemRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	if body.Quantity == nil {
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error", "quantity is required")
		return
	}

	it, err := s.checklists.SetQuantity(r.Context(), id, itemID, *body.Quantity)
	if err != nil {
		writeServiceError(w, r, err, "item not found")
		return
	}

	writeJSON(w, r, http.StatusOK, itemToResponse(it))
}

// DeleteChecklistItem handles DELETE /checklists/{id}/items/{itemID}.
func (s *Server) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	id, itemID, ok := pathItemIDs(w, r)
	if !ok {
		return
	}

	if err := s.checklists.RemoveItem(r.Context(), id, itemID); err != nil {
		writeServiceError(w, r, err, "item not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- request helpers --------------------------------------------------------

// pathUUID parses the named URL parameter, answering 400 if it is not a UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func pathItemIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return id, itemID, true
}

// queryInt returns nil when the parameter is absent.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("invalid " + name + ": must be an integer")
	}
	return &n, nil
}
