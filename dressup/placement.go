package dressup

import (
	"sort"
	"strings"
)

// Placer places an item on the model. Both input adapters depend on this
// rather than on Engine so they can be tested in isolation.
type Placer interface {
	Place(sourceRef string, layer LayerCategory) bool
}

// Engine keeps at most one PlacedLayer per category and mirrors every change
// onto its Surface.
//
// Engine is not safe for concurrent use. In the browser every input handler
// runs to completion on the event loop; on the server each request owns its
// own Engine.
type Engine struct {
	surface  Surface
	registry Registry
	anchor   Anchor
	placed   map[LayerCategory]PlacedLayer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r Registry) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithAnchor replaces DefaultAnchor for every layer the engine places.
func WithAnchor(a Anchor) EngineOption {
	return func(e *Engine) { e.anchor = a }
}

// NewEngine returns an engine drawing into surface.
func NewEngine(surface Surface, opts ...EngineOption) *Engine {
	e := &Engine{
		surface:  surface,
		registry: DefaultRegistry,
		anchor:   DefaultAnchor,
		placed:   make(map[LayerCategory]PlacedLayer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ Placer = (*Engine)(nil)

// Place shows sourceRef in the given category, replacing whatever occupied it.
// A call missing either argument is a no-op and returns false.
func (e *Engine) Place(sourceRef string, layer LayerCategory) bool {
	sourceRef = strings.TrimSpace(sourceRef)
	layer = ParseLayer(string(layer))
	if sourceRef == "" || layer == "" {
		Logger().Debug("dressup: place ignored, missing payload",
			"sourceRef", sourceRef, "layer", string(layer))
		return false
	}

	// The old element leaves the surface before the new one arrives, so the
	// surface never holds two children for one category.
	e.surface.Remove(layer)
	delete(e.placed, layer)

	pl := PlacedLayer{
		SourceRef:  sourceRef,
		Layer:      layer,
		StackOrder: e.registry.PriorityOf(layer),
		Anchor:     e.anchor,
	}
	e.surface.Append(pl)
	e.placed[layer] = pl

	Logger().Info("dressup: placed", "layer", string(layer), "stackOrder", pl.StackOrder)
	return true
}

// ResetAll removes every placed layer.
func (e *Engine) ResetAll() {
	for layer := range e.placed {
		e.surface.Remove(layer)
		delete(e.placed, layer)
	}
	Logger().Info("dressup: reset")
}

// Layer returns the item placed in category c, if any.
func (e *Engine) Layer(c LayerCategory) (PlacedLayer, bool) {
	pl, ok := e.placed[ParseLayer(string(c))]
	return pl, ok
}

// Len returns the number of placed layers.
func (e *Engine) Len() int { return len(e.placed) }

// Layers returns a snapshot of the placed layers, back to front.
func (e *Engine) Layers() []PlacedLayer {
	out := make([]PlacedLayer, 0, len(e.placed))
	for _, pl := range e.placed {
		out = append(out, pl)
	}
	SortByStack(out)
	return out
}

// SortByStack orders layers back to front: by StackOrder, then by category
// name so that equal priorities render deterministically.
func SortByStack(layers []PlacedLayer) {
	sort.SliceStable(layers, func(i, j int) bool {
		if layers[i].StackOrder != layers[j].StackOrder {
			return layers[i].StackOrder < layers[j].StackOrder
		}
		return layers[i].Layer < layers[j].Layer
	})
}
