package projector

import (
	"image/color"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

// newTestImage builds an image whose size matches its raster.
func newTestImage(id int, x, y float64, r *Raster) *DraggableImage {
	return &DraggableImage{
		id:       ImageID(id),
		size:     Size{Width: float64(r.Width()), Height: float64(r.Height())},
		position: Pt(x, y),
		raster:   r,
	}
}

// newTestRegistry wraps images, which must have ids equal to their index.
func newTestRegistry(images ...*DraggableImage) *Registry {
	return &Registry{images: images, viewport: Sz(800, 600)}
}

// gradientRaster returns a raster whose pixels vary with position, so
// coordinate mapping mistakes show up in comparisons.
func gradientRaster(w, h int, seed byte) *Raster {
	r := NewRaster(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			r.data[i+0] = byte(x*7) + seed
			r.data[i+1] = byte(y*13) ^ seed
			r.data[i+2] = byte(x*y) + seed*3
			r.data[i+3] = byte(x+y) | 0x40
		}
	}
	return r
}

func assertNRGBA(t *testing.T, r *Raster, x, y int, want color.NRGBA) {
	t.Helper()
	if got := r.NRGBAAt(x, y); got != want {
		t.Errorf("pixel(%d,%d) = %v, want %v", x, y, got, want)
	}
}
