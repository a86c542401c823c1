// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// CompositeOp selects how DrawImage combines source pixels with the
// surface contents.
type CompositeOp uint8

const (
	// CompositeSourceOver draws later images on top of earlier ones.
	CompositeSourceOver CompositeOp = iota
	// CompositeMultiply multiplies source and destination colors.
	CompositeMultiply
)

// String returns the canvas-style operator name.
func (op CompositeOp) String() string {
	switch op {
	case CompositeSourceOver:
		return "source-over"
	case CompositeMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// Surface is the display target the renderer paints into.
//
// A Surface has a base canvas, redrawn from scratch every frame, and a set
// of patch slots: small images pinned at a position on top of the canvas
// that persist until replaced or hidden. This mirrors a canvas element with
// one overlay element per image pair.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Resize sets the canvas dimensions. Canvas contents are undefined
	// after a resize until the next Clear.
	Resize(width, height int)

	// SetVisible shows or hides the whole surface, patches included.
	SetVisible(visible bool)

	// Visible reports whether the surface is shown.
	Visible() bool

	// Clear fills the canvas with c, ignoring the composite operator.
	Clear(c color.Color)

	// SetCompositeOp sets the operator used by subsequent DrawImage calls.
	SetCompositeOp(op CompositeOp)

	// DrawImage composites img onto the canvas with its origin at at.
	// Pixels outside the canvas are clipped.
	DrawImage(img image.Image, at image.Point)

	// SetPatch places img in the given slot, replacing the canvas pixels
	// underneath it when the surface is presented.
	SetPatch(slot int, img image.Image, at image.Point)

	// HidePatch removes the patch in slot, if any.
	HidePatch(slot int)

	// Snapshot returns the presented pixels: the canvas with every patch
	// applied, or a fully transparent image when the surface is hidden.
	// The returned image is a copy.
	Snapshot() *image.RGBA
}
