package utils

import (
	"strings"

	"armario-probador/dressup"
	"armario-probador/models"
)

// garmentLayers maps garment words used in file names to layer categories.
// Keys are lowercase.
var garmentLayers = map[string]dressup.LayerCategory{
	"zapatos":     dressup.LayerShoe,
	"zapato":      dressup.LayerShoe,
	"tenis":       dressup.LayerShoe,
	"botas":       dressup.LayerShoe,
	"shoes":       dressup.LayerShoe,
	"pantalon":    dressup.LayerBottom,
	"pantalón":    dressup.LayerBottom,
	"falda":       dressup.LayerBottom,
	"short":       dressup.LayerBottom,
	"bottoms":     dressup.LayerBottom,
	"camiseta":    dressup.LayerTop,
	"blusa":       dressup.LayerTop,
	"buso":        dressup.LayerTop,
	"tops":        dressup.LayerTop,
	"chaqueta":    dressup.LayerOuterlayer,
	"abrigo":      dressup.LayerOuterlayer,
	"outer":       dressup.LayerOuterlayer,
	"accesorio":   dressup.LayerAccessory,
	"pañoleta":    dressup.LayerAccessory,
	"gorro":       dressup.LayerAccessory,
	"sombrero":    dressup.LayerAccessory,
	"accessories": dressup.LayerAccessory,
}

// MapGarmentToLayer maps a category name or garment word to its layer category.
// Input is normalized to lowercase before mapping.
// Returns false when the word is not known.
func MapGarmentToLayer(word string) (string, bool) {
	l := dressup.ParseLayer(word)
	if l == "" {
		return "", false
	}
	if dressup.DefaultRegistry.Has(l) {
		return string(l), true
	}
	if mapped, ok := garmentLayers[string(l)]; ok {
		return string(mapped), true
	}
	return "", false
}

// MapLayerToTitle returns the display heading for a layer category
func MapLayerToTitle(layer string) string {
	switch dressup.LayerCategory(layer) {
	case dressup.LayerShoe:
		return "Zapatos"
	case dressup.LayerBottom:
		return "Partes de abajo"
	case dressup.LayerTop:
		return "Partes de arriba"
	case dressup.LayerOuterlayer:
		return "Abrigos"
	case dressup.LayerAccessory:
		return "Accesorios"
	}
	if layer == "" {
		return ""
	}
	return strings.ToUpper(layer[:1]) + layer[1:]
}

// ToCatalogItem maps a wardrobe item to what the dress-up page shows.
// Both image refs point at the item image endpoint.
func ToCatalogItem(item models.WardrobeItem) dressup.CatalogItem {
	return dressup.CatalogItem{
		ID:        item.Code,
		Name:      item.Name,
		SourceRef: BuildItemImageRef(item.Code, SizeMedium),
		ThumbRef:  BuildItemImageRef(item.Code, SizeThumb),
		Layer:     dressup.ParseLayer(item.Layer),
	}
}
