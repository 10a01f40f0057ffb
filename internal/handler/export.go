package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/packlist/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"checklist_id", "destination", "start_date", "end_date", "weather",
	"category", "item", "quantity", "packed",
}

// ExportRow is the JSON shape of one export line. Item fields are omitted for
// the header-only row of an empty checklist.
type ExportRow struct {
	ChecklistID string `json:"checklist_id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Weather     string `json:"weather"`
	Category    string `json:"category,omitempty"`
	Item        string `json:"item,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Packed      bool   `json:"packed"`
}

// ExportChecklist handles GET /checklists/{id}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportChecklist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeError(w, r, http.StatusBadRequest, "bad_request", "format must be json or csv")
		return
	}

	rows, err := s.export.Export(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "checklist not found")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}

	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowToResponse(row))
	}
	writeJSON(w, r, http.StatusOK, out)
}

// writeCSV encodes rows into a buffer first so a Content-Length can be sent.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func exportRowToResponse(r domain.ExportRow) ExportRow {
	return ExportRow{
		ChecklistID: r.ChecklistID.String(),
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Weather:     string(r.Weather),
		Category:    string(r.Category),
		Item:        r.Item,
		Quantity:    r.Quantity,
		Packed:      r.Packed,
	}
}

// exportRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// The header-only row of an empty checklist leaves quantity and packed blank.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	quantity, packed := "", ""
	if r.Item != "" {
		quantity = strconv.Itoa(r.Quantity)
		packed = strconv.FormatBool(r.Packed)
	}
	return []string{
		r.ChecklistID.String(),
		r.Destination,
		r.StartDate,
		r.EndDate,
		string(r.Weather),
		string(r.Category),
		r.Item,
		quantity,
		packed,
	}
}
