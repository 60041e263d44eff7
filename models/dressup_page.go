package models

import "armario-probador/dressup"

// DressupPage is the data passed to the dress-up page template
type DressupPage struct {
	Title           string
	ModelImage      string
	DragThresholdPx float64
	Groups          []CatalogGroup
}

// CatalogGroup is one catalog section, one per layer category
type CatalogGroup struct {
	Layer string
	Title string
	Items []dressup.CatalogItem
}
