package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/packlist/backend/internal/domain"
)

// Trip is the JSON shape of domain.TripRequest. Dates are "YYYY-MM-DD".
type Trip struct {
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"start_date"`
	EndDate     *openapi_types.Date `json:"end_date"`
	Weather     string              `json:"weather"`
	Activities  []string            `json:"activities"`
}

// Item is the JSON shape of domain.PackingItem.
type Item struct {
	ID       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Quantity int                `json:"quantity"`
	Packed   bool               `json:"packed"`
}

// PackingList is the response of POST /packing-lists.
type PackingList struct {
	Items []Item `json:"items"`
}

// CreateChecklistRequest is the body of POST /checklists.
type CreateChecklistRequest struct {
	Trip  *Trip  `json:"trip"`
	Items []Item `json:"items"`
}

// Checklist is a saved checklist with all of its items.
type Checklist struct {
	ID        openapi_types.UUID `json:"id"`
	Trip      Trip               `json:"trip"`
	Items     []Item             `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
}

// ChecklistSummary is one entry of GET /checklists.
type ChecklistSummary struct {
	ID          openapi_types.UUID `json:"id"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Weather     string             `json:"weather"`
	ItemCount   int                `json:"item_count"`
	PackedCount int                `json:"packed_count"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ChecklistPage is the response of GET /checklists.
type ChecklistPage struct {
	Data       []ChecklistSummary `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// UpdateItemRequest is the body of PATCH /checklists/{id}/items/{itemID}.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}

// Catalog lists the values a client may put in a Trip.
type Catalog struct {
	Weather    []string `json:"weather"`
	Activities []string `json:"activities"`
}

// errBodyTooLarge is returned by decodeJSON when the MaxBodySize middleware
// cut the body short.
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// writeDecodeError responds 413 for oversized bodies and 400 for anything else.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, r, http.StatusRequestEntityTooLarge, "request_too_large", err.Error())
		return
	}
	writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

// --- mapping helpers --------------------------------------------------------

// tripToDomain converts a Trip body into a domain.TripRequest.
// Missing dates become zero times, which the service rejects.
func tripToDomain(t Trip) domain.TripRequest {
	req := domain.TripRequest{
		Destination: t.Destination,
		Weather:     domain.Weather(t.Weather),
		Activities:  make([]domain.Activity, len(t.Activities)),
	}
	if t.StartDate != nil {
		req.StartDate = t.StartDate.Time
	}
	if t.EndDate != nil {
		req.EndDate = t.EndDate.Time
	}
	for i, a := range t.Activities {
		req.Activities[i] = domain.Activity(a)
	}
	return req
}

func tripToResponse(t domain.TripRequest) Trip {
	start := openapi_types.Date{Time: t.StartDate}
	end := openapi_types.Date{Time: t.EndDate}
	resp := Trip{
		Destination: t.Destination,
		StartDate:   &start,
		EndDate:     &end,
		Weather:     string(t.Weather),
		Activities:  make([]string, len(t.Activities)),
	}
	for i, a := range t.Activities {
		resp.Activities[i] = string(a)
	}
	return resp
}

func itemsToDomain(items []Item) []domain.PackingItem {
	out := make([]domain.PackingItem, len(items))
	for i, it := range items {
		out[i] = domain.PackingItem{
			ID:       it.ID,
			Name:     it.Name,
			Category: domain.Category(it.Category),
			Quantity: it.Quantity,
			Packed:   it.Packed,
		}
	}
	return out
}

func itemToResponse(it domain.PackingItem) Item {
	return Item{
		ID:       it.ID,
		Name:     it.Name,
		Category: string(it.Category),
		Quantity: it.Quantity,
		Packed:   it.Packed,
	}
}

func itemsToResponse(items []domain.PackingItem) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = itemToResponse(it)
	}
	return out
}

func checklistToResponse(c domain.SavedChecklist) Checklist {
	return Checklist{
		ID:        c.ID,
		Trip:      tripToResponse(c.Trip),
		Items:     itemsToResponse(c.Items),
		CreatedAt: c.CreatedAt,
	}
}

func summaryToResponse(s domain.ChecklistSummary) ChecklistSummary {
	return ChecklistSummary{
		ID:          s.ID,
		Destination: s.Destination,
		StartDate:   openapi_types.Date{Time: s.StartDate},
		EndDate:     openapi_types.Date{Time: s.EndDate},
		Weather:     string(s.Weather),
		ItemCount:   s.ItemCount,
		PackedCount: s.PackedCount,
		CreatedAt:   s.CreatedAt,
	}
}
