package service

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var silhouetteColor = color.NRGBA{R: 0xd9, G: 0xd4, B: 0xce, A: 0xff}

// drawSilhouette draws a plain mannequin on a transparent canvas. It is the
// model shown when no MODEL_IMAGE is installed. Proportions are relative to
// the canvas, with garments centered at mid-height.
func drawSilhouette(width, height int) *gg.Context {
	w, h := float64(width), float64(height)
	cx := w / 2

	dc := gg.NewContext(width, height)
	dc.SetColor(silhouetteColor)

	// head and neck
	dc.DrawCircle(cx, h*0.12, h*0.07)
	dc.Fill()
	dc.DrawRectangle(cx-w*0.04, h*0.18, w*0.08, h*0.05)
	dc.Fill()

	// torso
	dc.DrawRoundedRectangle(cx-w*0.18, h*0.22, w*0.36, h*0.33, w*0.06)
	dc.Fill()

	// arms
	dc.SetLineCapRound()
	dc.SetLineWidth(w * 0.07)
	dc.DrawLine(cx-w*0.2, h*0.26, cx-w*0.27, h*0.52)
	dc.DrawLine(cx+w*0.2, h*0.26, cx+w*0.27, h*0.52)
	dc.Stroke()

	// legs
	dc.SetLineWidth(w * 0.1)
	dc.DrawLine(cx-w*0.09, h*0.56, cx-w*0.1, h*0.9)
	dc.DrawLine(cx+w*0.09, h*0.56, cx+w*0.1, h*0.9)
	dc.Stroke()

	return dc
}

// Silhouette returns the default mannequin as an image
func Silhouette(width, height int) image.Image {
	return drawSilhouette(width, height).Image()
}

// SilhouettePNG returns the default mannequin encoded as PNG
func SilhouettePNG(width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := drawSilhouette(width, height).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode silhouette: %w", err)
	}
	return buf.Bytes(), nil
}
