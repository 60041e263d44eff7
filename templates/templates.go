// Package templates holds the HTML served by the dress-up page and rendered
// by the export rasterizer.
package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed *.html
var files embed.FS

var (
	dressupTmpl = template.Must(template.ParseFS(files, "dressup.html"))
	outfitTmpl  = template.Must(template.ParseFS(files, "outfit.html"))
)

// RenderDressup writes the dress-up page
func RenderDressup(w io.Writer, data interface{}) error {
	return dressupTmpl.Execute(w, data)
}

// RenderOutfit writes the model area with the given layers only
func RenderOutfit(w io.Writer, data interface{}) error {
	return outfitTmpl.Execute(w, data)
}
