// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"image"
	"image/color"
)

// Surface is a premultiplied 8-bit ARGB32 surface in a host pixel format,
// the unit blitted by the host compositor. Surfaces are created transparent.
//
// Surface is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	stride int
	pix    []byte
	format PixelFormat
}

// NewSurface creates a transparent surface. Non-positive dimensions are
// clamped to 1.
func NewSurface(width, height int, format PixelFormat) *Surface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Surface{
		width:  width,
		height: height,
		stride: width * 4,
		pix:    make([]byte, width*height*4),
		format: format,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the row stride in bytes.
func (s *Surface) Stride() int { return s.stride }

// Format returns the surface pixel format.
func (s *Surface) Format() PixelFormat { return s.format }

// Pix returns the raw pixel bytes in the surface format.
func (s *Surface) Pix() []byte { return s.pix }

// ByteSize returns the pixel buffer size in bytes.
func (s *Surface) ByteSize() int64 { return int64(len(s.pix)) }

// offset returns the byte offset of pixel (x, y), or -1 outside the surface.
func (s *Surface) offset(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.stride + x*4
}

// At returns the premultiplied channels of pixel (x, y); zero outside.
func (s *Surface) At(x, y int) (r, g, b, a uint8) {
	i := s.offset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}
	ro, go_, bo, ao := s.format.Offsets()
	return s.pix[i+ro], s.pix[i+go_], s.pix[i+bo], s.pix[i+ao]
}

// Set writes the premultiplied channels of pixel (x, y); ignored outside.
func (s *Surface) Set(x, y int, r, g, b, a uint8) {
	i := s.offset(x, y)
	if i < 0 {
		return
	}
	ro, go_, bo, ao := s.format.Offsets()
	s.pix[i+ro] = r
	s.pix[i+go_] = g
	s.pix[i+bo] = b
	s.pix[i+ao] = a
}

// Fill sets every pixel to the premultiplied channels.
func (s *Surface) Fill(r, g, b, a uint8) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.Set(x, y, r, g, b, a)
		}
	}
}

// RGBA copies the surface into a standard *image.RGBA, reordering channels
// as needed. Used for host handoff and tests.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	ro, go_, bo, ao := s.format.Offsets()
	for y := 0; y < s.height; y++ {
		src := s.pix[y*s.stride : y*s.stride+s.width*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+s.width*4]
		for x := 0; x < s.width; x++ {
			si, di := x*4, x*4
			dst[di+0] = src[si+ro]
			dst[di+1] = src[si+go_]
			dst[di+2] = src[si+bo]
			dst[di+3] = src[si+ao]
		}
	}
	return img
}

// SetRGBA writes a standard color into pixel (x, y), premultiplying.
func (s *Surface) SetRGBA(x, y int, c color.RGBA) {
	cr := uint16(c.R) * uint16(c.A) / 255
	cg := uint16(c.G) * uint16(c.A) / 255
	cb := uint16(c.B) * uint16(c.A) / 255
	s.Set(x, y, uint8(cr), uint8(cg), uint8(cb), c.A)
}

// PaintDiagnostic marks the surface as failed for the user: a corner-to-
// corner cross, a solid border, and a dashed border inset by four pixels.
func (s *Surface) PaintDiagnostic() {
	const ink = 255
	w, h := s.width, s.height

	// Cross.
	s.strokeLine(0, 0, w-1, h-1, ink)
	s.strokeLine(w-1, 0, 0, h-1, ink)

	// Solid border.
	for x := 0; x < w; x++ {
		s.Set(x, 0, 0, 0, 0, ink)
		s.Set(x, h-1, 0, 0, 0, ink)
	}
	for y := 0; y < h; y++ {
		s.Set(0, y, 0, 0, 0, ink)
		s.Set(w-1, y, 0, 0, 0, ink)
	}

	// Dashed inset border, dash pattern {2, 2}.
	if w > 8 && h > 8 {
		dash := func(i int) bool { return i%4 < 2 }
		for x := 4; x < w-4; x++ {
			if dash(x - 4) {
				s.Set(x, 4, 0, 0, 0, ink)
				s.Set(x, h-5, 0, 0, 0, ink)
			}
		}
		for y := 4; y < h-4; y++ {
			if dash(y - 4) {
				s.Set(4, y, 0, 0, 0, ink)
				s.Set(w-5, y, 0, 0, 0, ink)
			}
		}
	}
}

// strokeLine draws a one-pixel opaque black line between two points.
func (s *Surface) strokeLine(x0, y0, x1, y1 int, alpha uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.Set(x0, y0, 0, 0, 0, alpha)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
