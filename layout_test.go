package projector

import (
	"math"
	"testing"
)

func TestLayoutFourImagesIn800x600(t *testing.T) {
	got := DefaultLayout().Positions(4, Sz(800, 600))
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	spacingX := math.Min(300, 450.0/3)
	spacingY := math.Min(150, 250.0/3)
	for i, p := range got {
		wantX := math.Min(float64(i)*spacingX, 450)
		wantY := math.Min(50+float64(i)*spacingY, 250)
		if p.X != wantX || p.Y != wantY {
			t.Errorf("image %d at %v, want (%v, %v)", i, p, wantX, wantY)
		}
	}
	if got[0] != Pt(0, 50) {
		t.Errorf("image 0 at %v, want (0, 50)", got[0])
	}
	if got[3] != Pt(450, 250) {
		t.Errorf("image 3 at %v, want (450, 250)", got[3])
	}
}

func TestLayoutSpacingCaps(t *testing.T) {
	// A wide viewport caps horizontal and vertical steps.
	got := DefaultLayout().Positions(3, Sz(4000, 4000))
	want := []Point{Pt(0, 50), Pt(300, 200), Pt(600, 350)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("image %d at %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLayoutSingleImage(t *testing.T) {
	got := DefaultLayout().Positions(1, Sz(800, 600))
	if len(got) != 1 || got[0] != Pt(0, 50) {
		t.Errorf("Positions(1) = %v, want [(0, 50)]", got)
	}
}

func TestLayoutSmallViewportClamps(t *testing.T) {
	// Viewport smaller than the nominal size: every origin clamps to W-S.
	got := DefaultLayout().Positions(3, Sz(300, 200))
	for i, p := range got {
		if p.X > -50 || p.Y > -150 {
			t.Errorf("image %d at %v exceeds clamp (-50, -150)", i, p)
		}
		if !p.IsFinite() {
			t.Errorf("image %d at non-finite %v", i, p)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := DefaultLayout().Positions(0, Sz(800, 600)); got != nil {
		t.Errorf("Positions(0) = %v, want nil", got)
	}
}

func TestLayoutCustomConstants(t *testing.T) {
	l := LayoutConfig{NominalSize: 100, MaxSpacingX: 10, MaxSpacingY: 20, TopMargin: 0}
	got := l.Positions(3, Sz(1000, 1000))
	want := []Point{Pt(0, 0), Pt(10, 20), Pt(20, 40)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("image %d at %v, want %v", i, got[i], want[i])
		}
	}
}
