package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"armario-probador/dressup"
	"armario-probador/models"
	"armario-probador/repository"
	"armario-probador/service"
	"armario-probador/templates"
	"armario-probador/utils"
)

// ModelImageURL is where the page and the render view load the model from
const ModelImageURL = "/dressup/model.png"

// DressupController handles the dress-up page and the catalog behind it
type DressupController struct {
	reader          repository.WardrobeReader
	exportService   service.ExportServiceInterface
	modelImagePath  string
	dragThresholdPx float64
}

// NewDressupController creates a new DressupController. modelImagePath may be
// empty, in which case the drawn mannequin is served.
func NewDressupController(
	reader repository.WardrobeReader,
	exportService service.ExportServiceInterface,
	modelImagePath string,
	dragThresholdPx float64,
) *DressupController {
	return &DressupController{
		reader:          reader,
		exportService:   exportService,
		modelImagePath:  modelImagePath,
		dragThresholdPx: dragThresholdPx,
	}
}

// Page handles GET /dressup
func (c *DressupController) Page(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := c.reader.ListActive(r.Context(), "")
	if err != nil {
		log.Printf("❌ Failed to list wardrobe: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list wardrobe: %v", err), http.StatusInternalServerError)
		return
	}

	page := models.DressupPage{
		Title:           "Probador",
		ModelImage:      ModelImageURL,
		DragThresholdPx: c.dragThresholdPx,
		Groups:          groupByLayer(items),
	}

	var buf bytes.Buffer
	if err := templates.RenderDressup(&buf, page); err != nil {
		log.Printf("❌ Failed to render dress-up page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Catalog handles GET /dressup/catalog?layer=top
func (c *DressupController) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var layer string
	if q := r.URL.Query().Get("layer"); q != "" {
		mapped, ok := utils.MapGarmentToLayer(q)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown layer: %s", q), http.StatusBadRequest)
			return
		}
		layer = mapped
	}

	items, err := c.reader.ListActive(r.Context(), layer)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list wardrobe: %v", err), http.StatusInternalServerError)
		return
	}

	catalog := make([]dressup.CatalogItem, 0, len(items))
	for _, item := range items {
		catalog = append(catalog, utils.ToCatalogItem(item))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// RenderOutfit handles GET /dressup/render?l=top|/dressup/items/T1/image
// It shows the model area with the given layers only; the Chrome rasterizer
// screenshots this page.
func (c *DressupController) RenderOutfit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var requested []models.OutfitLayer
	for _, l := range r.URL.Query()["l"] {
		layer, ref, ok := strings.Cut(l, "|")
		if !ok {
			http.Error(w, fmt.Sprintf("invalid layer parameter: %s", l), http.StatusBadRequest)
			return
		}
		requested = append(requested, models.OutfitLayer{SourceRef: ref, Layer: layer})
	}

	view := service.BuildOutfitView(c.exportService.Outfit(requested), ModelImageURL)

	var buf bytes.Buffer
	if err := templates.RenderOutfit(&buf, view); err != nil {
		log.Printf("❌ Failed to render outfit: %v", err)
		http.Error(w, "Failed to render outfit", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// ModelImage handles GET /dressup/model.png
func (c *DressupController) ModelImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.modelImagePath != "" {
		http.ServeFile(w, r, c.modelImagePath)
		return
	}

	data, err := service.SilhouettePNG(service.OutfitWidth, service.OutfitHeight)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to draw model: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

// groupByLayer splits items (already in stack order) into one group per layer
func groupByLayer(items []models.WardrobeItem) []models.CatalogGroup {
	var groups []models.CatalogGroup
	for _, item := range items {
		if len(groups) == 0 || groups[len(groups)-1].Layer != item.Layer {
			groups = append(groups, models.CatalogGroup{
				Layer: item.Layer,
				Title: utils.MapLayerToTitle(item.Layer),
			})
		}
		g := &groups[len(groups)-1]
		g.Items = append(g.Items, utils.ToCatalogItem(item))
	}
	return groups
}
