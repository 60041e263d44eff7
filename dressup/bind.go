package dressup

import "strconv"

// ItemIDs hands out keys for catalog elements that arrive without one. Keys
// are never reused, so an element inserted later cannot take the key of one
// that is already bound.
type ItemIDs struct {
	n int
}

// Next returns a fresh key.
func (g *ItemIDs) Next() string {
	g.n++
	return "item-" + strconv.Itoa(g.n)
}

// bindGuard remembers which elements already carry listeners so that
// re-initializing the page never attaches a second set.
type bindGuard struct {
	items  map[string]struct{}
	target bool
}

func (g *bindGuard) item(key string) bool {
	if g.items == nil {
		g.items = make(map[string]struct{})
	}
	if _, ok := g.items[key]; ok {
		return false
	}
	g.items[key] = struct{}{}
	return true
}

func (g *bindGuard) dropTarget() bool {
	if g.target {
		return false
	}
	g.target = true
	return true
}

// bindItems calls attach for every item not seen before and returns how many
// were attached.
func (g *bindGuard) bindItems(items []CatalogItem, attach func(CatalogItem)) int {
	n := 0
	for _, it := range items {
		if !g.item(it.key()) {
			continue
		}
		attach(it)
		n++
	}
	return n
}
