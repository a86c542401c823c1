package projector

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectOf returns the rectangle covered by an image of the given size whose
// top-left corner is at pos.
func RectOf(pos Point, size Size) Rect {
	return Rect{
		Left:   pos.X,
		Top:    pos.Y,
		Right:  pos.X + size.Width,
		Bottom: pos.Y + size.Height,
	}
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Intersect returns the shared rectangle of r and s.
//
// Rectangles that merely touch along an edge intersect under this rule and
// yield a zero-width or zero-height region. Callers that need pixels must
// check PixelSize.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	if r.Right < s.Left || r.Left > s.Right || r.Bottom < s.Top || r.Top > s.Bottom {
		return Rect{}, false
	}
	return Rect{
		Left:   math.Max(r.Left, s.Left),
		Top:    math.Max(r.Top, s.Top),
		Right:  math.Min(r.Right, s.Right),
		Bottom: math.Min(r.Bottom, s.Bottom),
	}, true
}

// PixelSize returns the whole-pixel extent of r, using floor of the span.
// ok is false when either extent is not positive or not finite.
func (r Rect) PixelSize() (w, h int, ok bool) {
	fw, fh := r.Width(), r.Height()
	if !isFinite(fw) || !isFinite(fh) {
		return 0, 0, false
	}
	w, h = int(math.Floor(fw)), int(math.Floor(fh))
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// Origin returns the top-left corner snapped down to the pixel grid.
func (r Rect) Origin() image.Point {
	return snap(Point{X: r.Left, Y: r.Top})
}

// snap converts a viewport position to the pixel holding it.
func snap(p Point) image.Point {
	return image.Point{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
