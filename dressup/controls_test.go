package dressup

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestControlsReset(t *testing.T) {
	e, _ := newTestEngine()
	c := NewControls(e, nil)
	e.Place("t", LayerTop)
	e.Place("s", LayerShoe)
	c.Reset()
	if e.Len() != 0 {
		t.Errorf("Len() after Reset = %d", e.Len())
	}
}

func TestControlsExportUnavailable(t *testing.T) {
	e, _ := newTestEngine()
	e.Place("t", LayerTop)
	c := NewControls(e, nil)

	_, err := c.Export(context.Background())
	if !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("Export() error = %v, want ErrExportUnavailable", err)
	}
	if e.Len() != 1 {
		t.Error("failed export changed placement state")
	}
}

func TestControlsExportFailed(t *testing.T) {
	e, _ := newTestEngine()
	boom := errors.New("boom")
	c := NewControls(e, RasterizerFunc(func(context.Context, []PlacedLayer) ([]byte, error) {
		return nil, boom
	}))

	_, err := c.Export(context.Background())
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("Export() error = %v, want ErrExportFailed", err)
	}
	if errors.Is(err, ErrExportUnavailable) {
		t.Error("failure reported as unavailable")
	}
}

func TestControlsExportPassesThroughUnavailable(t *testing.T) {
	e, _ := newTestEngine()
	c := NewControls(e, RasterizerFunc(func(context.Context, []PlacedLayer) ([]byte, error) {
		return nil, ErrExportUnavailable
	}))
	if _, err := c.Export(context.Background()); !errors.Is(err, ErrExportUnavailable) {
		t.Errorf("Export() error = %v, want ErrExportUnavailable", err)
	}
}

func TestControlsExportEmptyImage(t *testing.T) {
	e, _ := newTestEngine()
	c := NewControls(e, RasterizerFunc(func(context.Context, []PlacedLayer) ([]byte, error) {
		return nil, nil
	}))
	if _, err := c.Export(context.Background()); !errors.Is(err, ErrExportFailed) {
		t.Errorf("Export() error = %v, want ErrExportFailed", err)
	}
}

func TestControlsExportLayersBackToFront(t *testing.T) {
	e, _ := newTestEngine()
	e.Place("acc", LayerAccessory)
	e.Place("shoe", LayerShoe)
	e.Place("top", LayerTop)

	var got []PlacedLayer
	c := NewControls(e, RasterizerFunc(func(_ context.Context, layers []PlacedLayer) ([]byte, error) {
		got = layers
		return []byte{1}, nil
	}))
	img, err := c.Export(context.Background())
	if err != nil || len(img) != 1 {
		t.Fatalf("Export() = %v, %v", img, err)
	}
	want := []LayerCategory{LayerShoe, LayerTop, LayerAccessory}
	for i, l := range want {
		if got[i].Layer != l {
			t.Errorf("layers[%d] = %q, want %q", i, got[i].Layer, l)
		}
	}
}

func TestControlsExportAsyncUsesSnapshot(t *testing.T) {
	e, _ := newTestEngine()
	e.Place("top", LayerTop)

	release := make(chan struct{})
	seen := make(chan int, 1)
	c := NewControls(e, RasterizerFunc(func(_ context.Context, layers []PlacedLayer) ([]byte, error) {
		<-release
		seen <- len(layers)
		return []byte("png"), nil
	}))

	done := make(chan error, 1)
	c.ExportAsync(context.Background(), func(_ []byte, err error) { done <- err })

	// Placement continues while the export is in flight.
	e.Place("shoe", LayerShoe)
	e.Place("bottom", LayerBottom)
	close(release)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ExportAsync error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ExportAsync never finished")
	}
	if n := <-seen; n != 1 {
		t.Errorf("rasterizer saw %d layers, want 1", n)
	}
}

func TestUserMessage(t *testing.T) {
	if UserMessage(nil) != "" {
		t.Error("UserMessage(nil) not empty")
	}
	un := UserMessage(ErrExportUnavailable)
	failed := UserMessage(ErrExportFailed)
	if un == "" || failed == "" || un == failed {
		t.Errorf("messages must differ: %q / %q", un, failed)
	}
	if UserMessage(errors.New("other")) != failed {
		t.Error("unknown errors should read as a failure")
	}
}
