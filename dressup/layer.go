// Package dressup implements the layered clothing placement engine of the
// fitting room and the two input adapters that feed it: native pointer
// drag-and-drop and threshold-gated touch dragging.
//
// Nothing in this package touches a display directly. Rendering goes through
// [Surface] and [Overlay], so the engine and both adapters run the same way in
// the browser, on the server and in tests.
package dressup

import (
	"sort"
	"strings"
)

// LayerCategory is a clothing slot. Each category holds at most one item on
// the model at a time.
type LayerCategory string

const (
	LayerShoe       LayerCategory = "shoe"
	LayerBottom     LayerCategory = "bottom"
	LayerTop        LayerCategory = "top"
	LayerOuterlayer LayerCategory = "outerlayer"
	LayerAccessory  LayerCategory = "accessory"
)

// DefaultPriority is the stack order given to categories a registry does not know.
const DefaultPriority = 2

// Registry maps a category to its stacking priority. Higher values render on top.
type Registry map[LayerCategory]int

// DefaultRegistry holds the built-in clothing categories.
var DefaultRegistry = Registry{
	LayerShoe:       1,
	LayerBottom:     2,
	LayerTop:        3,
	LayerOuterlayer: 4,
	LayerAccessory:  5,
}

// PriorityOf returns the stacking priority of c, or DefaultPriority when c is
// not registered.
func (r Registry) PriorityOf(c LayerCategory) int {
	if p, ok := r[c]; ok {
		return p
	}
	return DefaultPriority
}

// Known returns the registered categories ordered back to front.
func (r Registry) Known() []LayerCategory {
	out := make([]LayerCategory, 0, len(r))
	for c := range r {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := r[out[i]], r[out[j]]
		if pi != pj {
			return pi < pj
		}
		return out[i] < out[j]
	})
	return out
}

// Has reports whether c is registered.
func (r Registry) Has(c LayerCategory) bool {
	_, ok := r[c]
	return ok
}

// PriorityOf looks c up in DefaultRegistry.
func PriorityOf(c LayerCategory) int {
	return DefaultRegistry.PriorityOf(c)
}

// ParseLayer normalizes a category label coming from markup, a file name or a
// request body. It does not validate against a registry: unknown labels stay
// usable and stack at DefaultPriority.
func ParseLayer(s string) LayerCategory {
	return LayerCategory(strings.ToLower(strings.TrimSpace(s)))
}

func (c LayerCategory) String() string { return string(c) }
