// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the display target for projector's renderer.
//
// A Surface has two layers:
//
//   - a base canvas, cleared and redrawn every frame with a selectable
//     composite operator (source-over or multiply)
//   - patch slots, small images pinned on top of the canvas that replace
//     the pixels beneath them until hidden
//
// # Surface Types
//
//   - ImageSurface: CPU-based rendering to *image.RGBA
//
// # Registry
//
// Backends register a Factory by name. The built-in "image" backend is
// always present:
//
//	s, err := surface.New("image", 800, 600)
//
// Hosts with their own presentation layer register additional names and
// select them from configuration.
package surface
