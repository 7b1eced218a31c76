// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"fmt"

	"github.com/inkwell2d/inkwell/color"
	"github.com/inkwell2d/inkwell/surface"
)

var (
	// ErrSurfaceUnavailable reports a nil or unreadable render surface.
	ErrSurfaceUnavailable = errors.New("display: render surface unavailable")
	// ErrSizeMismatch reports a render surface whose size differs from the
	// requested display size.
	ErrSizeMismatch = errors.New("display: surface size mismatch")
)

// Convert turns a floating-point render surface into a premultiplied 8-bit
// display surface of the given size and format, applying the gamma curve per
// channel.
//
// A blank render surface converts to a fully transparent display surface
// without reading pixels. A nil source or a size mismatch returns a fresh
// transparent surface together with the error, so callers can still show
// something in the tile's place.
func Convert(src *surface.Surface, width, height int, format PixelFormat, gamma color.Gamma) (*Surface, error) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("display: invalid target geometry %dx%d", width, height))
	}
	dst := NewSurface(width, height, format)
	if src == nil {
		return dst, ErrSurfaceUnavailable
	}
	if src.Width() != width || src.Height() != height {
		return dst, fmt.Errorf("%w: render %dx%d, display %dx%d",
			ErrSizeMismatch, src.Width(), src.Height(), width, height)
	}
	if src.Blank() {
		return dst, nil
	}

	ro, go_, bo, ao := format.Offsets()
	for y := 0; y < height; y++ {
		row := src.Row(y)
		out := dst.pix[y*dst.stride : (y+1)*dst.stride]
		for x, c := range row {
			c = c.Premultiply().Clamp()
			i := x * 4
			out[i+ro] = gamma.Convert8(c.R)
			out[i+go_] = gamma.Convert8(c.G)
			out[i+bo] = gamma.Convert8(c.B)
			out[i+ao] = uint8(c.A*255.0 + 0.5)
		}
	}
	return dst, nil
}
