//go:build js && wasm

// Command wasm is the browser half of the dress-up page. Build with
//
//	GOOS=js GOARCH=wasm go build -o static/dressup.wasm ./cmd/wasm
//
// and serve it next to wasm_exec.js from the Go distribution.
package main

import (
	"log/slog"
	"os"

	"armario-probador/dressup"
	"armario-probador/dressup/dom"
)

func main() {
	// stderr is routed to the browser console by wasm_exec.js
	dressup.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if dom.Init() == nil {
		return
	}
	// Keep the Go runtime alive for the event listeners.
	select {}
}
