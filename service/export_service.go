package service

import (
	"context"
	"log"

	"armario-probador/dressup"
	"armario-probador/models"
	"armario-probador/utils"
)

// ExportServiceInterface defines the contract for outfit export
type ExportServiceInterface interface {
	Outfit(layers []models.OutfitLayer) []dressup.PlacedLayer
	Export(ctx context.Context, req models.OutfitExportRequest) ([]byte, error)
}

// ExportService turns an outfit posted by the browser into a PNG.
// Implements ExportServiceInterface
type ExportService struct {
	rasterizer dressup.Rasterizer
}

// NewExportService creates a new ExportService. A nil rasterizer makes every
// export fail with dressup.ErrExportUnavailable.
func NewExportService(rasterizer dressup.Rasterizer) *ExportService {
	return &ExportService{rasterizer: rasterizer}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// Outfit replays the requested layers through a fresh engine, so the result
// holds at most one layer per category (the last one wins) and stack order
// comes from the server's registry. Only item image refs served by this
// server are kept; anything else is dropped.
func (s *ExportService) Outfit(layers []models.OutfitLayer) []dressup.PlacedLayer {
	return s.replay(layers).Layers()
}

func (s *ExportService) replay(layers []models.OutfitLayer) *dressup.Engine {
	engine := dressup.NewEngine(dressup.NewMemorySurface(OutfitBounds))
	for _, l := range layers {
		code, size, err := utils.ParseItemImageRef(l.SourceRef)
		if err != nil {
			log.Printf("⚠️  Dropping %s layer with foreign source %q", l.Layer, l.SourceRef)
			continue
		}
		engine.Place(utils.BuildItemImageRef(code, size), dressup.ParseLayer(l.Layer))
	}
	return engine
}

// Export rasterizes the outfit. Errors are dressup.ErrExportUnavailable or
// dressup.ErrExportFailed.
func (s *ExportService) Export(ctx context.Context, req models.OutfitExportRequest) ([]byte, error) {
	engine := s.replay(req.Layers)
	log.Printf("📸 Exporting outfit with %d layers (%d requested)", engine.Len(), len(req.Layers))
	return dressup.NewControls(engine, s.rasterizer).Export(ctx)
}
