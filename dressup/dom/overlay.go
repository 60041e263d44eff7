//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"armario-probador/dressup"
)

const previewSizePx = 80

// Overlay draws floating previews on document.body and locks page scrolling
// through touch-action.
type Overlay struct {
	body js.Value
}

// NewOverlay returns an overlay on document.body.
func NewOverlay() *Overlay {
	return &Overlay{body: jsDocument.Get("body")}
}

func (o *Overlay) SpawnPreview(sourceRef string, at dressup.Point) dressup.PreviewHandle {
	img := jsDocument.Call("createElement", "img")
	img.Set("src", sourceRef)
	img.Set("className", "touch-floating")
	st := img.Get("style")
	st.Set("position", "fixed")
	st.Set("width", fmt.Sprintf("%dpx", previewSizePx))
	st.Set("height", "auto")
	st.Set("pointerEvents", "none")
	st.Set("zIndex", 1000)
	o.body.Call("appendChild", img)

	p := &preview{el: img}
	p.MoveTo(at)
	return p
}

func (o *Overlay) SetScrollLocked(locked bool) {
	v := ""
	if locked {
		v = "none"
	}
	o.body.Get("style").Set("touchAction", v)
}

type preview struct {
	el js.Value
}

// MoveTo centers the preview on p. Until the image has loaded its height is
// unknown, so it is treated as square.
func (p *preview) MoveTo(at dressup.Point) {
	w := p.el.Get("width").Float()
	if w == 0 {
		w = previewSizePx
	}
	h := p.el.Get("height").Float()
	if h == 0 {
		h = w
	}
	st := p.el.Get("style")
	st.Set("left", fmt.Sprintf("%gpx", at.X-w/2))
	st.Set("top", fmt.Sprintf("%gpx", at.Y-h/2))
}

func (p *preview) Remove() {
	p.el.Call("remove")
}
