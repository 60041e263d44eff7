package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"armario-probador/dressup"
	"armario-probador/models"
	"armario-probador/service"
)

// maxExportBody bounds the JSON outfit a client may post
const maxExportBody = 64 << 10

// ExportController handles outfit screenshots
type ExportController struct {
	exportService service.ExportServiceInterface
}

// NewExportController creates a new ExportController
func NewExportController(exportService service.ExportServiceInterface) *ExportController {
	return &ExportController{exportService: exportService}
}

// Export handles POST /dressup/export
// Returns the outfit as image/png; 503 when no rasterizer is available
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.OutfitExportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxExportBody)).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	png, err := c.exportService.Export(r.Context(), req)
	switch {
	case errors.Is(err, dressup.ErrExportUnavailable):
		log.Printf("⚠️  Export unavailable: %v", err)
		http.Error(w, dressup.UserMessage(err), http.StatusServiceUnavailable)
		return
	case err != nil:
		log.Printf("❌ Export failed: %v", err)
		http.Error(w, dressup.UserMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="dressup.png"`)
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
