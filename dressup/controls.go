package dressup

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrExportUnavailable means no rasterizer can be reached. Nothing was
	// attempted.
	ErrExportUnavailable = errors.New("dressup: export unavailable")

	// ErrExportFailed means the rasterizer ran and did not produce an image.
	ErrExportFailed = errors.New("dressup: export failed")
)

// Rasterizer turns the placed layers into an image. Layers arrive back to
// front. It returns PNG bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, layers []PlacedLayer) ([]byte, error)
}

// RasterizerFunc adapts a function to Rasterizer.
type RasterizerFunc func(ctx context.Context, layers []PlacedLayer) ([]byte, error)

func (f RasterizerFunc) Rasterize(ctx context.Context, layers []PlacedLayer) ([]byte, error) {
	return f(ctx, layers)
}

// Controls are the session-wide actions: reset and export.
type Controls struct {
	engine     *Engine
	rasterizer Rasterizer
}

// NewControls returns controls over engine. rasterizer may be nil; exports
// then fail with ErrExportUnavailable.
func NewControls(engine *Engine, rasterizer Rasterizer) *Controls {
	return &Controls{engine: engine, rasterizer: rasterizer}
}

// Reset clears the model.
func (c *Controls) Reset() {
	c.engine.ResetAll()
}

// Export rasterizes the outfit as it is right now.
func (c *Controls) Export(ctx context.Context) ([]byte, error) {
	return c.export(ctx, c.engine.Layers())
}

// ExportAsync snapshots the outfit, then rasterizes it on its own goroutine
// and reports through done. Placements made after the call do not affect the
// result.
func (c *Controls) ExportAsync(ctx context.Context, done func([]byte, error)) {
	layers := c.engine.Layers()
	go func() {
		done(c.export(ctx, layers))
	}()
}

func (c *Controls) export(ctx context.Context, layers []PlacedLayer) ([]byte, error) {
	if c.rasterizer == nil {
		return nil, ErrExportUnavailable
	}
	img, err := c.rasterizer.Rasterize(ctx, layers)
	if err != nil {
		if errors.Is(err, ErrExportUnavailable) || errors.Is(err, ErrExportFailed) {
			Logger().Warn("dressup: export", "error", err)
			return nil, err
		}
		Logger().Warn("dressup: export failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrExportFailed)
	}
	Logger().Info("dressup: exported", "layers", len(layers), "bytes", len(img))
	return img, nil
}

// UserMessage returns the text shown to the user for an export error, or ""
// for nil.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExportUnavailable):
		return "Screenshot is not available right now."
	default:
		return "Screenshot failed. Please try again."
	}
}
