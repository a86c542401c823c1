package projector

import "math"

// Layout defaults.
const (
	// DefaultNominalSize is the image edge length reserved as layout
	// headroom when spreading images across the viewport.
	DefaultNominalSize = 350.0

	// DefaultMaxSpacingX caps the horizontal step between images.
	DefaultMaxSpacingX = 300.0

	// DefaultMaxSpacingY caps the vertical step between images.
	DefaultMaxSpacingY = 150.0

	// DefaultTopMargin is the y offset of the first image.
	DefaultTopMargin = 50.0

	// DefaultNudgeStep is the distance an arrow key moves an image.
	DefaultNudgeStep = 1.0
)

// LayoutConfig holds the constants of the staggered initial layout.
type LayoutConfig struct {
	NominalSize float64
	MaxSpacingX float64
	MaxSpacingY float64
	TopMargin   float64
}

// DefaultLayout returns the default layout constants.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		NominalSize: DefaultNominalSize,
		MaxSpacingX: DefaultMaxSpacingX,
		MaxSpacingY: DefaultMaxSpacingY,
		TopMargin:   DefaultTopMargin,
	}
}

// Positions returns the staggered diagonal starting positions of n images
// in a viewport:
//
//	spacingX = min(MaxSpacingX, max(1, W - S) / max(1, n-1))
//	spacingY = min(MaxSpacingY, max(1, H - S) / max(1, n-1))
//	x_i = min(i * spacingX, W - S)
//	y_i = min(TopMargin + i * spacingY, H - S)
//
// where S is NominalSize. No invariant holds once dragging starts.
func (c LayoutConfig) Positions(n int, viewport Size) []Point {
	if n <= 0 {
		return nil
	}
	maxX := viewport.Width - c.NominalSize
	maxY := viewport.Height - c.NominalSize
	steps := math.Max(1, float64(n-1))
	spacingX := math.Min(c.MaxSpacingX, math.Max(1, maxX)/steps)
	spacingY := math.Min(c.MaxSpacingY, math.Max(1, maxY)/steps)

	out := make([]Point, n)
	for i := range out {
		fi := float64(i)
		out[i] = Point{
			X: math.Min(fi*spacingX, maxX),
			Y: math.Min(c.TopMargin+fi*spacingY, maxY),
		}
	}
	return out
}
