package projector

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/projector/surface"
)

// Mode selects the compositing strategy of the Renderer.
type Mode uint8

const (
	// ModeStack paints images back to front with plain alpha-over.
	ModeStack Mode = iota

	// ModeNativeMultiply paints every image over the whole canvas with
	// the surface's multiply composite operator.
	ModeNativeMultiply

	// ModeExactOverlapBlend paints the images stacked, then pins an exact
	// per-pixel Blend patch over each overlapping pair's region.
	ModeExactOverlapBlend
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModeStack:
		return "stack"
	case ModeNativeMultiply:
		return "multiply"
	case ModeExactOverlapBlend:
		return "overlap"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Next returns the mode after m in the toggle cycle
// stack -> multiply -> overlap -> stack.
func (m Mode) Next() Mode {
	switch m {
	case ModeStack:
		return ModeNativeMultiply
	case ModeNativeMultiply:
		return ModeExactOverlapBlend
	default:
		return ModeStack
	}
}

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("projector: unknown mode")

// ParseMode parses a mode name as produced by Mode.String. "project" and
// "blend" are accepted as aliases of multiply.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stack":
		return ModeStack, nil
	case "multiply", "project", "blend":
		return ModeNativeMultiply, nil
	case "overlap", "exact":
		return ModeExactOverlapBlend, nil
	default:
		return ModeStack, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Background colors offered by the session toggle.
var (
	BackgroundWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	BackgroundBlack = color.NRGBA{A: 255}
)

// Renderer redraws the viewport from the current image positions.
// It is the only component that touches the display surface.
type Renderer struct {
	surface    surface.Surface
	viewport   func() Size
	mode       Mode
	background color.NRGBA
	patches    map[int]struct{}
}

// NewRenderer creates a renderer painting into s. viewport is queried on
// every frame, since the viewport may change between frames; when nil the
// WithViewport size is used.
func NewRenderer(s surface.Surface, viewport func() Size, opts ...Option) *Renderer {
	o := buildOptions(opts)
	if viewport == nil {
		fixed := o.viewport
		viewport = func() Size { return fixed }
	}
	return &Renderer{
		surface:    s,
		viewport:   viewport,
		mode:       o.mode,
		background: o.background,
		patches:    make(map[int]struct{}),
	}
}

// Mode returns the current render mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// SetMode selects the render mode for subsequent frames.
func (r *Renderer) SetMode(m Mode) {
	r.mode = m
}

// Background returns the clear color.
func (r *Renderer) Background() color.NRGBA {
	return r.background
}

// SetBackground sets the clear color for subsequent frames.
func (r *Renderer) SetBackground(c color.Color) {
	r.background = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Surface returns the display surface.
func (r *Renderer) Surface() surface.Surface {
	return r.surface
}

// Render draws one frame of images in the current mode.
//
// With no images the surface is hidden instead of drawing an empty frame.
// The canvas is resized to the viewport on every call.
func (r *Renderer) Render(images []*DraggableImage) {
	if len(images) == 0 {
		r.hidePatches(nil)
		r.surface.SetVisible(false)
		return
	}

	w, h := r.viewport().Pixels()
	r.surface.SetVisible(true)
	r.surface.Resize(w, h)
	r.surface.Clear(r.background)

	switch r.mode {
	case ModeNativeMultiply:
		r.hidePatches(nil)
		r.surface.SetCompositeOp(surface.CompositeMultiply)
		r.drawImages(images)
		r.surface.SetCompositeOp(surface.CompositeSourceOver)
	case ModeExactOverlapBlend:
		r.surface.SetCompositeOp(surface.CompositeSourceOver)
		r.drawImages(images)
		r.drawOverlapPatches(images)
	default:
		r.hidePatches(nil)
		r.surface.SetCompositeOp(surface.CompositeSourceOver)
		r.drawImages(images)
	}
}

func (r *Renderer) drawImages(images []*DraggableImage) {
	for _, img := range images {
		if img.raster == nil {
			continue
		}
		r.surface.DrawImage(img.raster.NRGBA(), snap(img.position))
	}
}

// drawOverlapPatches pins one blended patch per visibly overlapping pair
// and hides every slot left over from a previous frame.
func (r *Renderer) drawOverlapPatches(images []*DraggableImage) {
	live := make(map[int]struct{})
	for _, p := range Pairs(images) {
		patch, err := Blend(p.Region, p.A, p.B)
		if err != nil {
			Logger().Debug("projector: overlap skipped",
				"a", p.A.id, "b", p.B.id, "err", err)
			continue
		}
		r.surface.SetPatch(p.Slot, patch.NRGBA(), p.Region.Origin())
		live[p.Slot] = struct{}{}
	}
	r.hidePatches(live)
	r.patches = live
}

// hidePatches hides every tracked slot not present in keep.
func (r *Renderer) hidePatches(keep map[int]struct{}) {
	for slot := range r.patches {
		if _, ok := keep[slot]; !ok {
			r.surface.HidePatch(slot)
		}
	}
	if keep == nil {
		r.patches = make(map[int]struct{})
	}
}
