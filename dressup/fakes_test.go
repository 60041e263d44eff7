package dressup

type placeCall struct {
	ref   string
	layer LayerCategory
}

// recordingPlacer records calls and reports them as placed when both fields
// are present.
type recordingPlacer struct {
	calls []placeCall
}

func (p *recordingPlacer) Place(ref string, layer LayerCategory) bool {
	p.calls = append(p.calls, placeCall{ref, layer})
	return ref != "" && layer != ""
}

type fixedBounds Rect

func (b fixedBounds) Bounds() Rect { return Rect(b) }

type fakePreview struct {
	at      []Point
	removed bool
}

func (p *fakePreview) MoveTo(pt Point) { p.at = append(p.at, pt) }
func (p *fakePreview) Remove()         { p.removed = true }

type fakeOverlay struct {
	spawned  []*fakePreview
	spawnRef []string
	locks    []bool
}

func (o *fakeOverlay) SpawnPreview(ref string, at Point) PreviewHandle {
	p := &fakePreview{at: []Point{at}}
	o.spawned = append(o.spawned, p)
	o.spawnRef = append(o.spawnRef, ref)
	return p
}

func (o *fakeOverlay) SetScrollLocked(locked bool) { o.locks = append(o.locks, locked) }

func (o *fakeOverlay) locked() bool {
	return len(o.locks) > 0 && o.locks[len(o.locks)-1]
}
