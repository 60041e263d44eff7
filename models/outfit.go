package models

// OutfitLayer is one placed garment in an export or render request.
type OutfitLayer struct {
	SourceRef string `json:"sourceRef"`
	Layer     string `json:"layer"`
}

// OutfitExportRequest is the body of POST /dressup/export
type OutfitExportRequest struct {
	Layers []OutfitLayer `json:"layers"`
}

// OutfitView is the data passed to the outfit template.
// Layers are already in stack order (back to front).
type OutfitView struct {
	ModelImage string
	Layers     []OutfitViewLayer
}

// OutfitViewLayer is a placed layer with its CSS placement precomputed
type OutfitViewLayer struct {
	SourceRef    string
	Layer        string
	ZIndex       int
	LeftPercent  float64
	TopPercent   float64
	WidthPercent float64
}
