//go:build js && wasm

// Package dom binds the dressup engine and its input adapters to the browser
// DOM through syscall/js.
package dom

import (
	"fmt"
	"syscall/js"

	"armario-probador/dressup"
)

const layerClass = "clothing-layer"

var (
	jsGlobal   = js.Global()
	jsDocument = jsGlobal.Get("document")
	jsWindow   = jsGlobal.Get("window")
)

// rectOf reads getBoundingClientRect into a dressup.Rect.
func rectOf(el js.Value) dressup.Rect {
	r := el.Call("getBoundingClientRect")
	return dressup.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Right:  r.Get("right").Float(),
		Bottom: r.Get("bottom").Float(),
	}
}

// ModelArea is the model silhouette element. Placed layers are absolutely
// positioned <img> children tagged with data-layer.
type ModelArea struct {
	el js.Value
}

// NewModelArea wraps el.
func NewModelArea(el js.Value) *ModelArea {
	return &ModelArea{el: el}
}

func (m *ModelArea) Bounds() dressup.Rect { return rectOf(m.el) }

func (m *ModelArea) Append(pl dressup.PlacedLayer) {
	img := jsDocument.Call("createElement", "img")
	img.Set("src", pl.SourceRef)
	img.Get("classList").Call("add", layerClass)
	img.Get("dataset").Set("layer", string(pl.Layer))

	st := img.Get("style")
	st.Set("zIndex", pl.StackOrder)
	st.Set("position", "absolute")
	st.Set("left", fmt.Sprintf("%g%%", pl.Anchor.CenterXPercent))
	st.Set("top", fmt.Sprintf("%g%%", pl.Anchor.CenterYPercent))
	st.Set("transform", "translate(-50%, -50%)")
	st.Set("width", fmt.Sprintf("%g%%", pl.Anchor.WidthPercent))
	if !pl.Anchor.Interactive {
		st.Set("pointerEvents", "none")
	}
	m.el.Call("appendChild", img)
}

func (m *ModelArea) Remove(layer dressup.LayerCategory) bool {
	// Compared in Go rather than through an attribute selector so that odd
	// category labels never reach querySelector.
	nodes := m.el.Call("querySelectorAll", "."+layerClass)
	removed := false
	for i := 0; i < nodes.Length(); i++ {
		n := nodes.Index(i)
		if n.Get("dataset").Get("layer").String() == string(layer) {
			n.Call("remove")
			removed = true
		}
	}
	return removed
}
