package service

import (
	"armario-probador/dressup"
	"armario-probador/models"
)

// Size of the model area in the page and in exported images, in CSS pixels
const (
	OutfitWidth  = 400
	OutfitHeight = 600
)

// OutfitBounds is the model area rectangle used for server-side engines
var OutfitBounds = dressup.Rect{Left: 0, Top: 0, Right: OutfitWidth, Bottom: OutfitHeight}

// BuildOutfitView converts placed layers into template data, back to front
func BuildOutfitView(layers []dressup.PlacedLayer, modelImage string) models.OutfitView {
	sorted := make([]dressup.PlacedLayer, len(layers))
	copy(sorted, layers)
	dressup.SortByStack(sorted)

	view := models.OutfitView{ModelImage: modelImage}
	for _, pl := range sorted {
		view.Layers = append(view.Layers, models.OutfitViewLayer{
			SourceRef:    pl.SourceRef,
			Layer:        string(pl.Layer),
			ZIndex:       pl.StackOrder,
			LeftPercent:  pl.Anchor.CenterXPercent,
			TopPercent:   pl.Anchor.CenterYPercent,
			WidthPercent: pl.Anchor.WidthPercent,
		})
	}
	return view
}
