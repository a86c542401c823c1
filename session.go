package projector

import (
	"context"
	"image"

	"github.com/gogpu/projector/surface"
)

// Session wires a Registry, DragController and Renderer together for one
// view. It is created once per view and discarded when the view goes away.
//
// The render callback handed to the controller re-reads the current image
// state and redraws, so every pointer or key event that changes a position
// produces exactly one new frame.
type Session struct {
	registry   *Registry
	controller *DragController
	renderer   *Renderer
	viewport   Size
	black      bool
	frames     int
	failures   []error
}

// NewSession loads sources, lays them out and renders the first frame.
//
// Sources that fail to load are omitted and reported by Failures; the
// returned error is non-nil only when ctx ends during loading.
func NewSession(ctx context.Context, sources []Source, s surface.Surface, opts ...Option) (*Session, error) {
	o := buildOptions(opts)
	loader := o.loader
	if loader == nil {
		loader = NewLoader()
	}
	res, err := loader.LoadAll(ctx, sources, o.displaySize)
	if err != nil {
		return nil, err
	}
	sess := NewSessionFromSnapshots(res.Snapshots, s, opts...)
	sess.failures = res.Failures
	return sess, nil
}

// NewSessionFromSnapshots builds a session from already captured rasters
// and renders the first frame.
func NewSessionFromSnapshots(snapshots []Snapshot, s surface.Surface, opts ...Option) *Session {
	o := buildOptions(opts)
	sess := &Session{
		viewport: o.viewport,
		black:    o.background == BackgroundBlack,
	}
	sess.registry = NewRegistry(snapshots, o.viewport, opts...)
	sess.renderer = NewRenderer(s, sess.Viewport, opts...)
	sess.controller = NewDragController(sess.registry, sess.Render, opts...)

	Logger().Info("projector: session created",
		"images", sess.registry.Len(),
		"mode", sess.renderer.Mode().String(),
		"viewport_w", o.viewport.Width, "viewport_h", o.viewport.Height)

	sess.Render()
	return sess
}

// Registry returns the session's images.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Controller returns the drag controller host input is routed to.
func (s *Session) Controller() *DragController {
	return s.controller
}

// Renderer returns the session's renderer.
func (s *Session) Renderer() *Renderer {
	return s.renderer
}

// Failures returns the load errors of omitted sources.
func (s *Session) Failures() []error {
	return s.failures
}

// Frames returns how many frames have been rendered.
func (s *Session) Frames() int {
	return s.frames
}

// Render redraws the viewport from the current state. It is the render
// callback invoked by the drag controller.
func (s *Session) Render() {
	s.frames++
	s.renderer.Render(s.registry.Images())
}

// Viewport returns the current viewport size.
func (s *Session) Viewport() Size {
	return s.viewport
}

// SetViewport changes the viewport size and redraws. Image positions are
// left untouched.
func (s *Session) SetViewport(v Size) {
	s.viewport = v
	s.Render()
}

// Mode returns the current render mode.
func (s *Session) Mode() Mode {
	return s.renderer.Mode()
}

// SetMode switches the render mode and redraws.
func (s *Session) SetMode(m Mode) {
	s.renderer.SetMode(m)
	s.Render()
}

// ToggleMode advances to the next render mode, redraws and returns it.
func (s *Session) ToggleMode() Mode {
	m := s.renderer.Mode().Next()
	s.SetMode(m)
	return m
}

// ToggleBackground flips the background between white and black, redraws
// and reports whether it is now black.
func (s *Session) ToggleBackground() bool {
	s.black = !s.black
	if s.black {
		s.renderer.SetBackground(BackgroundBlack)
	} else {
		s.renderer.SetBackground(BackgroundWhite)
	}
	s.Render()
	return s.black
}

// Stack moves every image to the origin and redraws once.
func (s *Session) Stack() {
	s.controller.Stack()
}

// Export flattens the images for saving; see ExportComposite.
func (s *Session) Export() (*Raster, error) {
	return ExportComposite(s.registry.Images())
}

// Snapshot returns the presented pixels of the display surface.
func (s *Session) Snapshot() *image.RGBA {
	return s.renderer.Surface().Snapshot()
}
