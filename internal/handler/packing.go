package handler

import (
	"net/http"

	"github.com/pkordes/packlist/backend/internal/packing"
)

// GeneratePackingList handles POST /packing-lists.
// The body is a Trip; the response is the generated items, grouped by category.
// Nothing is stored; POST /checklists saves a list.
func (s *Server) GeneratePackingList(w http.ResponseWriter, r *http.Request) {
	var body Trip
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	items, err := s.packing.Generate(r.Context(), tripToDomain(body))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, r, http.StatusOK, PackingList{Items: itemsToResponse(items)})
}

// GetCatalog handles GET /catalog.
// Lists the weather bands and activities the generator knows about.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	var c Catalog
	for _, wb := range packing.WeatherBands() {
		c.Weather = append(c.Weather, string(wb))
	}
	for _, a := range packing.Activities() {
		c.Activities = append(c.Activities, string(a))
	}
	writeJSON(w, r, http.StatusOK, c)
}
