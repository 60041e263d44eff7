//go:build js && wasm

package dom

import "syscall/js"

// transfer wraps a DragEvent's dataTransfer.
type transfer struct {
	dt js.Value
}

func (t transfer) SetData(format, value string) {
	if t.dt.IsUndefined() || t.dt.IsNull() {
		return
	}
	t.dt.Call("setData", format, value)
}

func (t transfer) GetData(format string) string {
	if t.dt.IsUndefined() || t.dt.IsNull() {
		return ""
	}
	return t.dt.Call("getData", format).String()
}
