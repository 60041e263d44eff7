//go:build js && wasm

package dom

import (
	"context"
	"strconv"
	"syscall/js"

	"armario-probador/dressup"
)

// Element ids and classes the page markup provides.
const (
	ModelAreaID    = "modelArea"
	ItemSelector   = ".item"
	ResetButtonID  = "resetBtn"
	ExportButtonID = "screenshotBtn"
	ExportPath     = "/dressup/export"
	ExportFilename = "dressup.png"
)

// App owns the engine and both adapters for one page.
type App struct {
	model    js.Value
	engine   *dressup.Engine
	pointer  *dressup.PointerAdapter
	touch    *dressup.TouchAdapter
	controls *dressup.Controls
	ids      dressup.ItemIDs

	// js.Func values stay referenced for the page lifetime; listeners are
	// never removed.
	funcs []js.Func
}

// Init wires the page. It returns nil when the page has no model area.
func Init() *App {
	model := jsDocument.Call("getElementById", ModelAreaID)
	if model.IsNull() {
		dressup.Logger().Warn("dressup: no model area on page", "id", ModelAreaID)
		return nil
	}

	area := NewModelArea(model)
	engine := dressup.NewEngine(area)

	var opts []dressup.TouchOption
	if v := model.Get("dataset").Get("dragThreshold"); v.Type() == js.TypeString {
		if px, err := strconv.ParseFloat(v.String(), 64); err == nil {
			opts = append(opts, dressup.WithDragThreshold(px))
		}
	}

	a := &App{
		model:    model,
		engine:   engine,
		pointer:  dressup.NewPointerAdapter(engine),
		touch:    dressup.NewTouchAdapter(engine, area, NewOverlay(), opts...),
		controls: dressup.NewControls(engine, NewServerRasterizer(ExportPath)),
	}
	a.Bind()
	a.bindButtons()
	a.expose()
	return a
}

// Bind attaches listeners to every catalog item on the page and to the model
// area. It is safe to call again after the catalog markup changes; elements
// already bound are skipped.
func (a *App) Bind() {
	items, els := a.queryItems()

	a.pointer.BindTarget(func() {
		a.on(a.model, "dragover", nil, func(e js.Value) {
			if a.pointer.DragOver() {
				e.Call("preventDefault")
			}
		})
		a.on(a.model, "drop", nil, func(e js.Value) {
			e.Call("preventDefault")
			a.pointer.Drop(transfer{dt: e.Get("dataTransfer")})
		})
	})

	a.pointer.BindItems(items, func(it dressup.CatalogItem) {
		el := els[it.ID]
		a.on(el, "dragstart", nil, func(e js.Value) {
			a.pointer.DragStart(it, transfer{dt: e.Get("dataTransfer")})
		})
	})

	passive := map[string]interface{}{"passive": true}
	active := map[string]interface{}{"passive": false}
	a.touch.BindItems(items, func(it dressup.CatalogItem) {
		el := els[it.ID]
		item := it
		// touchstart stays passive so the browser may begin scrolling; the
		// decision to block it is made on the first move.
		a.on(el, "touchstart", passive, func(e js.Value) {
			a.touch.Handle(dressup.TouchEvent{Kind: dressup.TouchStart, Points: firstTouch(e), Item: &item})
		})
		a.on(el, "touchmove", active, func(e js.Value) {
			if a.touch.Handle(dressup.TouchEvent{Kind: dressup.TouchMove, Points: firstTouch(e)}) {
				e.Call("preventDefault")
			}
		})
		a.on(el, "touchend", passive, func(js.Value) {
			a.touch.Handle(dressup.TouchEvent{Kind: dressup.TouchEnd})
		})
		a.on(el, "touchcancel", passive, func(js.Value) {
			a.touch.Handle(dressup.TouchEvent{Kind: dressup.TouchCancel})
		})
	})
}

func (a *App) bindButtons() {
	if btn := jsDocument.Call("getElementById", ResetButtonID); !btn.IsNull() {
		a.on(btn, "click", nil, func(js.Value) { a.controls.Reset() })
	}
	if btn := jsDocument.Call("getElementById", ExportButtonID); !btn.IsNull() {
		a.on(btn, "click", nil, func(js.Value) {
			a.controls.ExportAsync(context.Background(), func(png []byte, err error) {
				if err != nil {
					dressup.Logger().Warn("dressup: screenshot", "error", err)
					alert(dressup.UserMessage(err))
					return
				}
				download(png, ExportFilename)
			})
		})
	}
}

// expose publishes a small debugging API on window.
func (a *App) expose() {
	place := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return false
		}
		return a.engine.Place(args[0].String(), dressup.ParseLayer(args[1].String()))
	})
	rebind := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		a.Bind()
		return nil
	})
	a.funcs = append(a.funcs, place, rebind)
	jsWindow.Set("placeClothingOnModel", place)
	jsWindow.Set("dressupRebind", rebind)
}

// queryItems reads every catalog element on the page. Elements without a
// data-id get a generated one, written back so later passes see the same key.
func (a *App) queryItems() ([]dressup.CatalogItem, map[string]js.Value) {
	nodes := jsDocument.Call("querySelectorAll", ItemSelector)
	items := make([]dressup.CatalogItem, 0, nodes.Length())
	els := make(map[string]js.Value, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		it := itemOf(el)
		if it.ID == "" {
			it.ID = a.ids.Next()
			el.Get("dataset").Set("id", it.ID)
		}
		items = append(items, it)
		els[it.ID] = el
	}
	return items, els
}

func itemOf(el js.Value) dressup.CatalogItem {
	ds := el.Get("dataset")
	str := func(v js.Value) string {
		if v.Type() != js.TypeString {
			return ""
		}
		return v.String()
	}
	thumb := str(el.Get("src"))
	src := str(ds.Get("src"))
	if src == "" {
		src = thumb
	}
	return dressup.CatalogItem{
		ID:        str(ds.Get("id")),
		Name:      str(el.Get("alt")),
		SourceRef: src,
		ThumbRef:  thumb,
		Layer:     dressup.ParseLayer(str(ds.Get("layer"))),
	}
}

// firstTouch returns the first tracked touch, or nothing when the list is
// empty (touchend carries no active touches).
func firstTouch(e js.Value) []dressup.Point {
	touches := e.Get("touches")
	if touches.IsUndefined() || touches.Length() == 0 {
		return nil
	}
	t := touches.Index(0)
	return []dressup.Point{{X: t.Get("clientX").Float(), Y: t.Get("clientY").Float()}}
}

func (a *App) on(el js.Value, event string, opts map[string]interface{}, fn func(e js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	a.funcs = append(a.funcs, f)
	if opts != nil {
		el.Call("addEventListener", event, f, opts)
		return
	}
	el.Call("addEventListener", event, f)
}
