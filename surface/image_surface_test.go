// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

var (
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
)

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", s.Width(), s.Height())
	}
	if !s.Visible() {
		t.Error("new surface should be visible")
	}
	if s.CompositeOp() != CompositeSourceOver {
		t.Errorf("default op = %v, want source-over", s.CompositeOp())
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.Clear(color.White)
	if got := rgbaAt(s.Image(), 3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want white", got)
	}
}

func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(4, 4)
	before := s.Image()
	s.Resize(4, 4)
	if s.Image() != before {
		t.Error("same-size resize should keep the backing image")
	}
	s.Resize(10, 6)
	if s.Width() != 10 || s.Height() != 6 {
		t.Errorf("size = %dx%d, want 10x6", s.Width(), s.Height())
	}
	if s.Image().Bounds() != image.Rect(0, 0, 10, 6) {
		t.Errorf("bounds = %v", s.Image().Bounds())
	}
}

func TestDrawImageSourceOver(t *testing.T) {
	s := NewImageSurface(20, 20)
	s.Clear(white)
	s.DrawImage(solid(10, 10, red), image.Pt(0, 0))
	s.DrawImage(solid(10, 10, blue), image.Pt(5, 5))

	out := s.Snapshot()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, color.RGBA{255, 0, 0, 255}},
		{7, 7, color.RGBA{0, 0, 255, 255}},
		{12, 12, color.RGBA{0, 0, 255, 255}},
		{17, 2, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := rgbaAt(out, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawImageMultiply(t *testing.T) {
	s := NewImageSurface(20, 20)
	s.Clear(white)
	s.SetCompositeOp(CompositeMultiply)
	s.DrawImage(solid(10, 10, red), image.Pt(0, 0))
	s.DrawImage(solid(10, 10, color.NRGBA{255, 0, 255, 255}), image.Pt(5, 5))

	out := s.Snapshot()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, color.RGBA{255, 0, 0, 255}},
		{7, 7, color.RGBA{255, 0, 0, 255}},
		{12, 12, color.RGBA{255, 0, 255, 255}},
		{17, 2, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := rgbaAt(out, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawImageClipsNegativeOrigin(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.DrawImage(solid(10, 10, red), image.Pt(-5, -5))
	out := s.Snapshot()
	if got := rgbaAt(out, 4, 4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel(4,4) = %v, want red", got)
	}
	if got := rgbaAt(out, 5, 5); got.A != 0 {
		t.Errorf("pixel(5,5) = %v, want transparent", got)
	}
}

func TestDrawImageFullyOutside(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.DrawImage(solid(5, 5, red), image.Pt(50, 50))
	s.DrawImage(solid(5, 5, red), image.Pt(-50, 0))
	for _, v := range s.Image().Pix {
		if v != 0 {
			t.Fatal("drawing outside the canvas modified it")
		}
	}
}

func TestDrawImageGenericSource(t *testing.T) {
	s := NewImageSurface(4, 4)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+1] = 255
		src.Pix[i+3] = 255
	}
	s.DrawImage(src, image.Pt(1, 1))
	if got := rgbaAt(s.Image(), 2, 2); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel = %v, want green", got)
	}
}

func TestPatchesReplaceCanvas(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(white)
	s.SetPatch(3, solid(2, 2, color.NRGBA{0, 0, 0, 255}), image.Pt(4, 4))
	s.SetPatch(1, solid(1, 1, color.NRGBA{0, 0, 0, 0}), image.Pt(0, 0))

	if got := s.PatchSlots(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("PatchSlots() = %v, want [1 3]", got)
	}

	out := s.Snapshot()
	if got := rgbaAt(out, 5, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("patched pixel = %v, want black", got)
	}
	// Transparent patch pixels replace, they do not blend.
	if got := rgbaAt(out, 0, 0); got != (color.RGBA{}) {
		t.Errorf("transparent patch pixel = %v, want zero", got)
	}
	// Canvas itself is untouched.
	if got := rgbaAt(s.Image(), 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("canvas pixel = %v, want white", got)
	}

	s.HidePatch(3)
	if _, _, ok := s.Patch(3); ok {
		t.Error("slot 3 should be empty after HidePatch")
	}
	out = s.Snapshot()
	if got := rgbaAt(out, 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel after HidePatch = %v, want white", got)
	}
}

func TestSetPatchCopiesSource(t *testing.T) {
	s := NewImageSurface(4, 4)
	src := solid(1, 1, red)
	s.SetPatch(0, src, image.Pt(0, 0))
	src.Pix[0] = 0
	img, _, _ := s.Patch(0)
	if img.Pix[0] != 255 {
		t.Error("patch should not alias the caller's image")
	}
}

func TestHiddenSurfaceSnapshot(t *testing.T) {
	s := NewImageSurface(3, 3)
	s.Clear(white)
	s.SetVisible(false)
	for _, v := range s.Snapshot().Pix {
		if v != 0 {
			t.Fatal("hidden surface should present nothing")
		}
	}
}

func TestCompositeOpString(t *testing.T) {
	if CompositeMultiply.String() != "multiply" {
		t.Errorf("String() = %q", CompositeMultiply.String())
	}
	if CompositeOp(7).String() != "unknown" {
		t.Errorf("String() = %q", CompositeOp(7).String())
	}
}
