package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ImageRenderer draws into an offscreen square canvas with square
// pixels, for rendering finished patterns to PNG
type ImageRenderer struct {
	surface
}

// NewImageRenderer allocates a size by size pixel surface
func NewImageRenderer(size int) *ImageRenderer {
	if size < 16 {
		size = 16
	}
	r := &ImageRenderer{}
	r.canvas = NewCanvas(size, size)
	return r
}

// Present is a no-op, the canvas already holds the finished frame
func (r *ImageRenderer) Present() {}

// Snapshot copies the current frame into a standard RGBA image
func (r *ImageRenderer) Snapshot() *image.RGBA {
	w := r.canvas.Width()
	h := r.canvas.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := r.canvas.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
		}
	}
	return img
}

// WritePNG encodes the current frame as a PNG stream
func (r *ImageRenderer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Snapshot()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
