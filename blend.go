package projector

import (
	"fmt"
	"image"

	"github.com/gogpu/projector/internal/blend"
)

// Blend computes the multiplicative blend of a and b inside region.
//
// The output is sized to the floor of the region's span and belongs at
// region.Origin() on the pixel grid. Output pixel (x, y) combines, for
// each source, the raster pixel at
//
//	(floor(region.Left) - floor(pos.X) + x, floor(region.Top) - floor(pos.Y) + y)
//
// which is the pixel the surface shows there, since rasters are placed at
// the floor of their position. A sample outside a raster reads as
// transparent black. Per pixel:
//
//	out.C = round(c1/255 * c2/255 * 255)   for C in R, G, B
//	out.A = max(a1, a2)
//
// in byte (sRGB) space. Blend is a pure function of its inputs: it writes
// only the returned raster. It returns ErrDegenerateRegion when the region
// has no whole pixel or a non-finite extent.
func Blend(region Rect, a, b *DraggableImage) (*Raster, error) {
	w, h, ok := region.PixelSize()
	if !ok || !isFinite(region.Left) || !isFinite(region.Top) {
		return nil, fmt.Errorf("%w: %gx%g at (%g, %g)",
			ErrDegenerateRegion, region.Width(), region.Height(), region.Left, region.Top)
	}

	out := NewRaster(w, h)
	offA := localOffset(region, a.position)
	offB := localOffset(region, b.position)

	stride := w * 4
	rowA := make([]byte, stride)
	rowB := make([]byte, stride)
	for y := 0; y < h; y++ {
		sampleRow(rowA, a.raster, offA.X, offA.Y+y)
		sampleRow(rowB, b.raster, offB.X, offB.Y+y)
		blend.MultiplyRow(out.data[y*stride:(y+1)*stride], rowA, rowB)
	}
	return out, nil
}

// localOffset maps the region's pixel origin into a raster placed at pos.
func localOffset(region Rect, pos Point) image.Point {
	return region.Origin().Sub(snap(pos))
}

// sampleRow fills dst with len(dst)/4 pixels of r starting at local (x0, y).
// Pixels outside r are transparent black.
func sampleRow(dst []byte, r *Raster, x0, y int) {
	clear(dst)
	if r == nil || y < 0 || y >= r.height {
		return
	}
	n := len(dst) / 4
	from := max(0, -x0)
	to := min(n, r.width-x0)
	if from >= to {
		return
	}
	src := (y*r.width + x0 + from) * 4
	copy(dst[from*4:to*4], r.data[src:src+(to-from)*4])
}
