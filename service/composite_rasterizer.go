package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"armario-probador/dressup"
)

// LayerImageLoader resolves a placed layer's source reference to an image
type LayerImageLoader interface {
	LoadLayerImage(ctx context.Context, sourceRef string) (image.Image, error)
}

// CompositeRasterizer draws the outfit with imaging, without a browser:
// the model silhouette first, then each layer scaled to its anchor
// width and centered on its anchor point.
// Implements dressup.Rasterizer
type CompositeRasterizer struct {
	loader     LayerImageLoader
	modelImage string // file path, optional
	width      int
	height     int
}

// NewCompositeRasterizer creates a CompositeRasterizer. modelImage is a path
// to the silhouette and may be empty.
func NewCompositeRasterizer(loader LayerImageLoader, modelImage string) *CompositeRasterizer {
	return &CompositeRasterizer{
		loader:     loader,
		modelImage: modelImage,
		width:      OutfitWidth,
		height:     OutfitHeight,
	}
}

// Ensure CompositeRasterizer implements dressup.Rasterizer
var _ dressup.Rasterizer = (*CompositeRasterizer)(nil)

// Rasterize renders layers (back to front) into a PNG
func (r *CompositeRasterizer) Rasterize(ctx context.Context, layers []dressup.PlacedLayer) ([]byte, error) {
	images := make([]image.Image, len(layers))
	g, gctx := errgroup.WithContext(ctx)
	for i, pl := range layers {
		i, pl := i, pl
		g.Go(func() error {
			img, err := r.loader.LoadLayerImage(gctx, pl.SourceRef)
			if err != nil {
				return fmt.Errorf("failed to load layer %s: %w", pl.Layer, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	canvas := imaging.New(r.width, r.height, color.White)
	canvas = imaging.OverlayCenter(canvas, r.model(), 1.0)

	for i, pl := range layers {
		canvas = r.draw(canvas, images[i], pl.Anchor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// model returns the silhouette fitted to the canvas, falling back to the
// drawn mannequin
func (r *CompositeRasterizer) model() image.Image {
	if r.modelImage != "" {
		img, err := imaging.Open(r.modelImage)
		if err == nil {
			return imaging.Fit(img, r.width, r.height, imaging.Lanczos)
		}
		log.Printf("⚠️  Warning: failed to open model image %s: %v", r.modelImage, err)
	}
	return Silhouette(r.width, r.height)
}

func (r *CompositeRasterizer) draw(canvas *image.NRGBA, img image.Image, a dressup.Anchor) *image.NRGBA {
	if a.WidthPercent <= 0 {
		a = dressup.DefaultAnchor
	}
	w := int(float64(r.width) * a.WidthPercent / 100)
	if w < 1 {
		w = 1
	}
	layer := imaging.Resize(img, w, 0, imaging.Lanczos)
	b := layer.Bounds()

	cx := int(float64(r.width) * a.CenterXPercent / 100)
	cy := int(float64(r.height) * a.CenterYPercent / 100)
	return imaging.Overlay(canvas, layer, image.Pt(cx-b.Dx()/2, cy-b.Dy()/2), 1.0)
}
