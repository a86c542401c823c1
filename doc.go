// Package projector composites draggable raster images in real time.
//
// # Overview
//
// projector models a fixed viewport holding several images the user can
// drag over one another. After every drag or nudge the viewport is
// recomposited in one of three modes:
//
//   - ModeStack: later images simply occlude earlier ones
//   - ModeNativeMultiply: the whole canvas is drawn with a multiply
//     composite operator, simulating stacked projector gels
//   - ModeExactOverlapBlend: for every pair of images, the exact per-pixel
//     multiplicative blend is computed only inside their overlap rectangle
//
// # Quick Start
//
//	import "github.com/gogpu/projector"
//
//	sess, err := projector.NewSession(ctx, sources, s,
//	    projector.WithViewport(projector.Size{Width: 800, Height: 600}),
//	    projector.WithMode(projector.ModeExactOverlapBlend),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Route host input to the drag controller.
//	c := sess.Controller()
//	c.PointerDown(0, projector.Pt(35, 42))
//	c.PointerMove(projector.Pt(135, 142))
//	c.PointerUp()
//
// # Architecture
//
// The package is organized into:
//   - Registry: the tracked images, their raster snapshots and initial layout
//   - DragController: the only writer of image positions
//   - Overlap and Blend: pure geometry and pixel functions
//   - Renderer: the only component that touches the display surface
//
// The display surface lives in the surface sub-package; byte-level
// compositing math lives in internal/blend.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at the top-left of the viewport
//   - X increases right
//   - Y increases down
//
// Rasters are captured at display resolution, so one raster pixel maps to
// one viewport unit.
//
// # Threading
//
// Everything runs on the caller's goroutine. Input handlers, rendering and
// blending are synchronous; only Loader suspends, while decoding sources.
package projector

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
