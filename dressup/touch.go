package dressup

import "math"

// DefaultDragThresholdPx is how far a touch must travel along either axis
// before it counts as a drag rather than a tap or scroll.
const DefaultDragThresholdPx = 12.0

// TouchState is the phase of a touch gesture.
type TouchState int

const (
	TouchIdle TouchState = iota
	TouchArmed
	TouchDragging
	TouchDropped
	TouchCancelled
)

func (s TouchState) String() string {
	switch s {
	case TouchIdle:
		return "idle"
	case TouchArmed:
		return "armed"
	case TouchDragging:
		return "dragging"
	case TouchDropped:
		return "dropped"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TouchKind is the type of a touch event.
type TouchKind int

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (k TouchKind) String() string {
	switch k {
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case TouchCancel:
		return "touchcancel"
	default:
		return "unknown"
	}
}

// TouchEvent is a platform touch event reduced to what the gesture needs.
// Points lists the tracked touches; only the first is consulted. Item is the
// catalog item under a touch-start, nil otherwise.
type TouchEvent struct {
	Kind   TouchKind
	Points []Point
	Item   *CatalogItem
}

// TouchSession is the state of the gesture in progress.
type TouchSession struct {
	State       TouchState
	Active      bool
	Dragging    bool
	Start       Point
	Current     Point
	SourceRef   string
	SourceLayer LayerCategory
	ThresholdPx float64
}

// neutral returns the resting session for the given threshold.
func neutral(threshold float64) TouchSession {
	return TouchSession{State: TouchIdle, ThresholdPx: threshold}
}

// Effect is a side effect requested by a transition.
type Effect uint8

const (
	EffectPreventDefault Effect = 1 << iota
	EffectSpawnPreview
	EffectMovePreview
	EffectRemovePreview
	EffectLockScroll
	EffectUnlockScroll
	EffectPlace
)

// Has reports whether every bit of o is set in e.
func (e Effect) Has(o Effect) bool { return e&o == o }

// Transition is the result of feeding one event to a session.
type Transition struct {
	Next    TouchSession
	Outcome TouchState // TouchDropped or TouchCancelled when the gesture ended
	Effects Effect

	// SourceRef and Layer carry the placement payload when EffectPlace is set,
	// since Next has already been reset to neutral.
	SourceRef string
	Layer     LayerCategory
	At        Point
}

// Step advances a gesture by one event. It is pure: every side effect is
// returned in the Transition for the caller to apply. target is only
// consulted when a drag ends.
func Step(s TouchSession, ev TouchEvent, target Rect) Transition {
	threshold := s.ThresholdPx
	if threshold <= 0 {
		threshold = DefaultDragThresholdPx
	}
	same := Transition{Next: s, Outcome: s.State}

	switch ev.Kind {
	case TouchStart:
		if s.State != TouchIdle || ev.Item == nil || len(ev.Points) == 0 {
			return same
		}
		p := ev.Points[0]
		return Transition{
			Next: TouchSession{
				State:       TouchArmed,
				Active:      true,
				Start:       p,
				Current:     p,
				SourceRef:   ev.Item.SourceRef,
				SourceLayer: ev.Item.Layer,
				ThresholdPx: threshold,
			},
			Outcome: TouchArmed,
		}

	case TouchMove:
		if !s.Active || len(ev.Points) == 0 {
			return same
		}
		next := s
		next.Current = ev.Points[0]
		t := Transition{Next: next, Outcome: next.State, At: next.Current}

		if !s.Dragging {
			dx := math.Abs(next.Current.X - s.Start.X)
			dy := math.Abs(next.Current.Y - s.Start.Y)
			if dx <= threshold && dy <= threshold {
				// Still ambiguous: let the page scroll.
				return t
			}
			t.Next.Dragging = true
			t.Next.State = TouchDragging
			t.Outcome = TouchDragging
			t.Effects |= EffectSpawnPreview | EffectLockScroll
		}
		t.Effects |= EffectMovePreview | EffectPreventDefault
		return t

	case TouchEnd, TouchCancel:
		if !s.Active {
			return same
		}
		t := Transition{Next: neutral(threshold), Outcome: TouchIdle, At: s.Current}
		if !s.Dragging {
			return t
		}
		t.Effects |= EffectRemovePreview | EffectUnlockScroll
		if ev.Kind == TouchCancel {
			t.Outcome = TouchCancelled
			return t
		}
		t.Outcome = TouchDropped
		if target.ContainsStrict(s.Current) {
			t.Effects |= EffectPlace
			t.SourceRef = s.SourceRef
			t.Layer = s.SourceLayer
		}
		return t
	}
	return same
}

// TouchAdapter runs the gesture state machine against real collaborators: it
// places through a Placer, hit tests against the drop target's bounds and
// draws the floating preview through an Overlay.
type TouchAdapter struct {
	placer  Placer
	target  Bounder
	overlay Overlay

	session TouchSession
	preview PreviewHandle
	guard   bindGuard
}

// TouchOption configures a TouchAdapter.
type TouchOption func(*TouchAdapter)

// WithDragThreshold overrides DefaultDragThresholdPx. Non-positive values are
// ignored.
func WithDragThreshold(px float64) TouchOption {
	return func(a *TouchAdapter) {
		if px > 0 {
			a.session.ThresholdPx = px
		}
	}
}

// NewTouchAdapter returns an idle adapter. overlay may be nil, in which case
// no preview is drawn and scrolling is never locked.
func NewTouchAdapter(p Placer, target Bounder, overlay Overlay, opts ...TouchOption) *TouchAdapter {
	a := &TouchAdapter{
		placer:  p,
		target:  target,
		overlay: overlay,
		session: neutral(DefaultDragThresholdPx),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Session returns a copy of the gesture state.
func (a *TouchAdapter) Session() TouchSession { return a.session }

// Handle feeds ev to the gesture and applies the resulting effects. It returns
// true when the platform's default handling (scrolling) must be prevented.
func (a *TouchAdapter) Handle(ev TouchEvent) bool {
	var target Rect
	if ev.Kind == TouchEnd && a.session.Dragging && a.target != nil {
		target = a.target.Bounds()
	}

	prev := a.session.State
	t := Step(a.session, ev, target)
	a.session = t.Next
	a.apply(t)

	if prev != t.Outcome {
		Logger().Debug("dressup: touch transition",
			"event", ev.Kind.String(), "from", prev.String(), "to", t.Outcome.String())
	}
	return t.Effects.Has(EffectPreventDefault)
}

func (a *TouchAdapter) apply(t Transition) {
	if t.Effects.Has(EffectSpawnPreview) && a.overlay != nil {
		a.preview = a.overlay.SpawnPreview(t.Next.SourceRef, t.At)
	}
	if t.Effects.Has(EffectLockScroll) && a.overlay != nil {
		a.overlay.SetScrollLocked(true)
	}
	if t.Effects.Has(EffectMovePreview) && a.preview != nil {
		a.preview.MoveTo(t.At)
	}
	if t.Effects.Has(EffectPlace) {
		a.placer.Place(t.SourceRef, t.Layer)
	}
	if t.Effects.Has(EffectRemovePreview) && a.preview != nil {
		a.preview.Remove()
		a.preview = nil
	}
	if t.Effects.Has(EffectUnlockScroll) && a.overlay != nil {
		a.overlay.SetScrollLocked(false)
	}
}

// BindItems calls attach once per item across any number of calls. attach is
// where the platform registers the four touch listeners on the item.
func (a *TouchAdapter) BindItems(items []CatalogItem, attach func(CatalogItem)) int {
	return a.guard.bindItems(items, attach)
}
