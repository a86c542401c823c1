package projector

import (
	"context"
	"testing"

	"github.com/gogpu/projector/surface"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	snaps := []Snapshot{
		{Name: "red", Raster: NewSolidRaster(10, 10, red)},
		{Name: "blue", Raster: NewSolidRaster(10, 10, blue)},
	}
	opts = append([]Option{WithViewport(Sz(100, 100))}, opts...)
	return NewSessionFromSnapshots(snaps, surface.NewImageSurface(0, 0), opts...)
}

func TestSessionRendersFirstFrame(t *testing.T) {
	s := newTestSession(t)
	if s.Frames() != 1 {
		t.Errorf("frames = %d, want 1", s.Frames())
	}
	if s.Registry().Len() != 2 {
		t.Errorf("images = %d, want 2", s.Registry().Len())
	}
	snap := s.Snapshot()
	if snap.Rect.Dx() != 100 || snap.Rect.Dy() != 100 {
		t.Errorf("snapshot = %v, want 100x100", snap.Rect)
	}
}

func TestSessionDragRenders(t *testing.T) {
	s := newTestSession(t)
	img, _ := s.Registry().Image(0)
	p := img.Position().Add(Pt(1, 1))

	s.Controller().PointerDown(img.ID(), p)
	s.Controller().PointerMove(p.Add(Pt(4, 0)))
	s.Controller().PointerUp()
	s.Controller().KeyDown(KeyDown, ModNone)

	if s.Frames() != 3 {
		t.Errorf("frames = %d, want 3", s.Frames())
	}
}

func TestSessionToggles(t *testing.T) {
	s := newTestSession(t)
	if got := s.ToggleMode(); got != ModeNativeMultiply {
		t.Errorf("ToggleMode = %v, want multiply", got)
	}
	if got := s.ToggleMode(); got != ModeExactOverlapBlend || s.Mode() != ModeExactOverlapBlend {
		t.Errorf("ToggleMode = %v, want overlap", got)
	}
	if !s.ToggleBackground() || s.Renderer().Background() != BackgroundBlack {
		t.Error("first ToggleBackground should switch to black")
	}
	if s.ToggleBackground() || s.Renderer().Background() != BackgroundWhite {
		t.Error("second ToggleBackground should switch back to white")
	}
	if s.Frames() != 5 {
		t.Errorf("frames = %d, want 5", s.Frames())
	}
}

func TestSessionStackAndExport(t *testing.T) {
	s := newTestSession(t, WithMode(ModeExactOverlapBlend))
	s.Stack()
	for _, img := range s.Registry().Images() {
		if img.Position() != (Point{}) {
			t.Errorf("image %d at %v after Stack", img.ID(), img.Position())
		}
	}
	out, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	assertNRGBA(t, out, 5, 5, blue)
}

func TestSessionSetViewport(t *testing.T) {
	s := newTestSession(t)
	s.SetViewport(Sz(40, 30))
	if got := s.Snapshot().Rect.Size(); got.X != 40 || got.Y != 30 {
		t.Errorf("snapshot size = %v, want 40x30", got)
	}
}

func TestNewSessionReportsFailures(t *testing.T) {
	sources := []Source{
		ImageSource("ok", NewSolidRaster(4, 4, red)),
		BytesSource("bad", []byte("?")),
	}
	s, err := NewSession(context.Background(), sources, surface.NewImageSurface(0, 0),
		WithDisplaySize(Sz(4, 4)), WithViewport(Sz(50, 50)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Registry().Len() != 1 {
		t.Errorf("images = %d, want 1", s.Registry().Len())
	}
	if len(s.Failures()) != 1 {
		t.Errorf("failures = %v, want one", s.Failures())
	}
}

func TestNewSessionNoImagesHidesSurface(t *testing.T) {
	surf := surface.NewImageSurface(10, 10)
	s, err := NewSession(context.Background(), nil, surf)
	if err != nil {
		t.Fatal(err)
	}
	if surf.Visible() {
		t.Error("surface should be hidden without images")
	}
	if _, err := s.Export(); err == nil {
		t.Error("Export with no images should fail")
	}
}
