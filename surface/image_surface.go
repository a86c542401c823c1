// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"sort"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/projector/internal/blend"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// The canvas is stored premultiplied, as image.RGBA requires. Sources are
// expected in straight alpha; *image.NRGBA sources take a row-at-a-time
// fast path, anything else is converted first.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	s.Clear(color.White)
//	s.SetCompositeOp(surface.CompositeMultiply)
//	s.DrawImage(img, image.Pt(10, 20))
//	out := s.Snapshot()
type ImageSurface struct {
	width   int
	height  int
	img     *image.RGBA
	op      CompositeOp
	visible bool
	patches map[int]patch
}

type patch struct {
	img *image.NRGBA
	at  image.Point
}

// NewImageSurface creates a new visible CPU surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageSurface{
		width:   width,
		height:  height,
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		visible: true,
		patches: make(map[int]patch),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Resize changes the canvas dimensions. The backing image is reallocated
// only when the size actually changes.
func (s *ImageSurface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// SetVisible shows or hides the surface.
func (s *ImageSurface) SetVisible(visible bool) {
	s.visible = visible
}

// Visible reports whether the surface is shown.
func (s *ImageSurface) Visible() bool {
	return s.visible
}

// Clear fills the entire canvas with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = rgba.R
		pix[i+1] = rgba.G
		pix[i+2] = rgba.B
		pix[i+3] = rgba.A
	}
}

// SetCompositeOp sets the operator used by DrawImage.
func (s *ImageSurface) SetCompositeOp(op CompositeOp) {
	s.op = op
}

// CompositeOp returns the current operator.
func (s *ImageSurface) CompositeOp() CompositeOp {
	return s.op
}

// DrawImage composites img onto the canvas at the given position.
func (s *ImageSurface) DrawImage(img image.Image, at image.Point) {
	if img == nil {
		return
	}
	src := toNRGBA(img)
	s.compositeNRGBA(s.img, src, at, s.blendOp())
}

// SetPatch stores a copy of img in slot.
func (s *ImageSurface) SetPatch(slot int, img image.Image, at image.Point) {
	if img == nil {
		s.HidePatch(slot)
		return
	}
	src := toNRGBA(img)
	if src == img {
		cp := image.NewNRGBA(src.Rect)
		copy(cp.Pix, src.Pix)
		src = cp
	}
	s.patches[slot] = patch{img: src, at: at}
}

// HidePatch removes the patch in slot.
func (s *ImageSurface) HidePatch(slot int) {
	delete(s.patches, slot)
}

// PatchSlots returns the occupied patch slots in ascending order.
func (s *ImageSurface) PatchSlots() []int {
	slots := make([]int, 0, len(s.patches))
	for slot := range s.patches {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

// Patch returns the image and position stored in slot.
func (s *ImageSurface) Patch(slot int) (*image.NRGBA, image.Point, bool) {
	p, ok := s.patches[slot]
	if !ok {
		return nil, image.Point{}, false
	}
	return p.img, p.at, true
}

// Snapshot returns a copy of the presented surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if !s.visible {
		return result
	}
	copy(result.Pix, s.img.Pix)
	for _, slot := range s.PatchSlots() {
		p := s.patches[slot]
		s.compositeNRGBA(result, p.img, p.at, blend.OpCopy)
	}
	return result
}

// Image returns the underlying canvas without patches.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) blendOp() blend.Op {
	if s.op == CompositeMultiply {
		return blend.OpMultiply
	}
	return blend.OpSourceOver
}

// compositeNRGBA composites src onto dst row by row, clipping to dst.
func (s *ImageSurface) compositeNRGBA(dst *image.RGBA, src *image.NRGBA, at image.Point, op blend.Op) {
	sb := src.Rect
	target := image.Rectangle{Min: at, Max: at.Add(sb.Size())}.Intersect(dst.Rect)
	if target.Empty() {
		return
	}
	w := target.Dx() * 4
	for y := target.Min.Y; y < target.Max.Y; y++ {
		sx := sb.Min.X + target.Min.X - at.X
		sy := sb.Min.Y + y - at.Y
		si := src.PixOffset(sx, sy)
		di := dst.PixOffset(target.Min.X, y)
		blend.CompositeRow(op, dst.Pix[di:di+w], src.Pix[si:si+w])
	}
}

// toNRGBA returns img as straight-alpha NRGBA, converting when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(n, n.Rect, img, b.Min, xdraw.Src)
	return n
}
