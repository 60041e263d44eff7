package dressup

// Point is a position in device-independent pixels, relative to the viewport.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding rectangle in the same space as Point.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// ContainsStrict reports whether p lies strictly inside r. Points on an edge
// are outside.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.Left && p.X < r.Right && p.Y > r.Top && p.Y < r.Bottom
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Anchor describes where a placed layer sits inside the model area, as
// percentages of the area's size.
type Anchor struct {
	CenterXPercent float64
	CenterYPercent float64
	WidthPercent   float64
	Interactive    bool
}

// DefaultAnchor centers a layer over the model at 60% width and keeps it out
// of hit testing so it never swallows later drags or touches.
var DefaultAnchor = Anchor{
	CenterXPercent: 50,
	CenterYPercent: 50,
	WidthPercent:   60,
	Interactive:    false,
}

// CatalogItem is a selectable clothing asset.
type CatalogItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	SourceRef string        `json:"sourceRef"`
	ThumbRef  string        `json:"thumbRef"`
	Layer     LayerCategory `json:"layer"`
}

// key identifies an item for attach-once bookkeeping.
func (i CatalogItem) key() string {
	if i.ID != "" {
		return i.ID
	}
	return string(i.Layer) + "|" + i.SourceRef
}

// PlacedLayer is a clothing item currently shown on the model.
type PlacedLayer struct {
	SourceRef  string        `json:"sourceRef"`
	Layer      LayerCategory `json:"layer"`
	StackOrder int           `json:"stackOrder"`
	Anchor     Anchor        `json:"-"`
}

// Bounder exposes a bounding rectangle. Drop targets implement it.
type Bounder interface {
	Bounds() Rect
}

// Surface is the part of the display the engine draws placed layers into.
// Children are addressed by category; Append must honor StackOrder no matter
// the order in which layers arrive.
type Surface interface {
	Bounder
	Append(layer PlacedLayer)
	Remove(layer LayerCategory) bool
}

// PreviewHandle is a floating preview following a touch point.
type PreviewHandle interface {
	MoveTo(p Point)
	Remove()
}

// Overlay provides the transient visuals of a touch drag.
type Overlay interface {
	SpawnPreview(sourceRef string, at Point) PreviewHandle
	SetScrollLocked(locked bool)
}

// MemorySurface is an in-process Surface. The server uses it to normalize
// outfits before export and tests use it in place of a real display.
type MemorySurface struct {
	Rect     Rect
	children []PlacedLayer
}

// NewMemorySurface returns an empty surface with the given bounds.
func NewMemorySurface(bounds Rect) *MemorySurface {
	return &MemorySurface{Rect: bounds}
}

func (s *MemorySurface) Bounds() Rect { return s.Rect }

func (s *MemorySurface) Append(layer PlacedLayer) {
	s.children = append(s.children, layer)
}

func (s *MemorySurface) Remove(layer LayerCategory) bool {
	for i, c := range s.children {
		if c.Layer == layer {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the current children in append order.
func (s *MemorySurface) Children() []PlacedLayer {
	out := make([]PlacedLayer, len(s.children))
	copy(out, s.children)
	return out
}
