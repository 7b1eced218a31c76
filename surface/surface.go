// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the floating-point render surface written by the
// rasterizer and read by the display converter, together with the pixel pen
// used to write it.
package surface

import "github.com/inkwell2d/inkwell/color"

// Surface is a two-dimensional array of linear premultiplied colors.
//
// The zero value is not usable; create surfaces with New. Surface is not safe
// for concurrent use; during rendering each task owns its target exclusively.
type Surface struct {
	width  int
	height int
	pix    []color.Color
	dirty  bool
}

// New creates a surface of the given size filled with transparent black.
// Non-positive dimensions are clamped to 1.
func New(width, height int) *Surface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]color.Color, width*height),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Blank reports whether the surface has never been written.
// A blank surface converts to a fully transparent display surface without
// touching its pixels.
func (s *Surface) Blank() bool { return !s.dirty }

// At returns the pixel at (x, y), or transparent black outside the surface.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.Color{}
	}
	return s.pix[y*s.width+x]
}

// Set writes the pixel at (x, y). Writes outside the surface are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
	s.dirty = true
}

// Row returns the pixels of row y as a shared slice.
// It returns nil when y is outside the surface.
func (s *Surface) Row(y int) []color.Color {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.pix[y*s.width : (y+1)*s.width]
}

// Clear resets every pixel to transparent black and marks the surface blank.
func (s *Surface) Clear() {
	clear(s.pix)
	s.dirty = false
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c color.Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
	s.dirty = true
}

// ByteSize returns the display-format footprint of the surface:
// 4 bytes per pixel, the unit used for cache accounting.
func (s *Surface) ByteSize() int64 {
	return 4 * int64(s.width) * int64(s.height)
}
