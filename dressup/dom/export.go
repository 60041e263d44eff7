//go:build js && wasm

package dom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"syscall/js"

	"armario-probador/dressup"
	"armario-probador/models"
)

// ServerRasterizer asks the server to rasterize the outfit.
type ServerRasterizer struct {
	endpoint string
	client   *http.Client
}

// NewServerRasterizer posts to path on the page's own origin.
func NewServerRasterizer(path string) *ServerRasterizer {
	origin := jsWindow.Get("location").Get("origin").String()
	return &ServerRasterizer{endpoint: origin + path, client: http.DefaultClient}
}

func (r *ServerRasterizer) Rasterize(ctx context.Context, layers []dressup.PlacedLayer) ([]byte, error) {
	req := models.OutfitExportRequest{Layers: make([]models.OutfitLayer, 0, len(layers))}
	for _, l := range layers {
		req.Layers = append(req.Layers, models.OutfitLayer{SourceRef: l.SourceRef, Layer: string(l.Layer)})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode outfit: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build export request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dressup.ErrExportUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return nil, dressup.ErrExportUnavailable
	case resp.StatusCode != http.StatusOK:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("export endpoint returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return io.ReadAll(resp.Body)
}

// revokeDelayMs is how long an exported image's object URL stays valid.
const revokeDelayMs = 10000

// download saves data under filename through a temporary object URL.
func download(data []byte, filename string) {
	arr := jsGlobal.Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	blob := jsGlobal.Get("Blob").New([]interface{}{arr}, map[string]interface{}{"type": "image/png"})
	url := jsGlobal.Get("URL").Call("createObjectURL", blob)

	link := jsDocument.Call("createElement", "a")
	link.Set("download", filename)
	link.Set("href", url)
	link.Call("click")

	// The browser reads the URL after click returns.
	var revoke js.Func
	revoke = js.FuncOf(func(js.Value, []js.Value) interface{} {
		jsGlobal.Get("URL").Call("revokeObjectURL", url)
		revoke.Release()
		return nil
	})
	jsWindow.Call("setTimeout", revoke, revokeDelayMs)
}

func alert(msg string) {
	jsWindow.Call("alert", msg)
}
