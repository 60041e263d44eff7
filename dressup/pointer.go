package dressup

// Transfer formats written on drag start and read back on drop.
const (
	FormatSource = "src"
	FormatLayer  = "layer"
)

// DataTransfer carries the drag payload between drag start and drop.
type DataTransfer interface {
	SetData(format, value string)
	GetData(format string) string
}

// MapTransfer is a DataTransfer backed by a map.
type MapTransfer map[string]string

func (t MapTransfer) SetData(format, value string) { t[format] = value }
func (t MapTransfer) GetData(format string) string { return t[format] }

// PointerAdapter turns native drag-and-drop into placements.
type PointerAdapter struct {
	placer Placer
	guard  bindGuard
}

// NewPointerAdapter returns an adapter placing through p.
func NewPointerAdapter(p Placer) *PointerAdapter {
	return &PointerAdapter{placer: p}
}

// DragStart records the item in the transfer payload.
func (a *PointerAdapter) DragStart(item CatalogItem, dt DataTransfer) {
	dt.SetData(FormatSource, item.SourceRef)
	dt.SetData(FormatLayer, string(item.Layer))
}

// DragOver reports whether the platform's default handling must be
// prevented. It always must: a target that lets the default run rejects the
// drop.
func (a *PointerAdapter) DragOver() bool {
	return true
}

// Drop places the item named by the payload. An incomplete payload is
// ignored.
func (a *PointerAdapter) Drop(dt DataTransfer) bool {
	return a.placer.Place(dt.GetData(FormatSource), ParseLayer(dt.GetData(FormatLayer)))
}

// BindItems calls attach once per item across any number of calls. attach is
// where the platform registers its drag-start listener.
func (a *PointerAdapter) BindItems(items []CatalogItem, attach func(CatalogItem)) int {
	return a.guard.bindItems(items, attach)
}

// BindTarget calls attach the first time only. attach registers the
// drag-over and drop listeners on the drop target.
func (a *PointerAdapter) BindTarget(attach func()) bool {
	if !a.guard.dropTarget() {
		return false
	}
	attach()
	return true
}
