// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display provides the 8-bit premultiplied surfaces handed to the
// host compositor, the conversion from floating-point render surfaces into
// them, and a small software draw context used by the canvas compositor.
package display

import "encoding/binary"

// PixelFormat describes the byte layout of a 4-byte premultiplied pixel.
type PixelFormat uint8

const (
	// FormatAlphaStart puts the alpha channel in byte 0.
	FormatAlphaStart PixelFormat = 1 << iota
	// FormatBGR stores the color channels in blue, green, red order.
	FormatBGR
)

// HostFormat returns the ARGB32 layout matching host endianness, so the
// pixel reads as a native 0xAARRGGBB word: big-endian hosts lead with alpha
// and run RGB; little-endian hosts run BGRA in memory.
func HostFormat() PixelFormat {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0201 {
		// Little-endian.
		return FormatBGR
	}
	return FormatAlphaStart
}

// Offsets returns the byte offset of each channel within a pixel.
func (f PixelFormat) Offsets() (r, g, b, a int) {
	switch {
	case f&FormatAlphaStart != 0 && f&FormatBGR != 0:
		return 3, 2, 1, 0
	case f&FormatAlphaStart != 0:
		return 1, 2, 3, 0
	case f&FormatBGR != 0:
		return 2, 1, 0, 3
	default:
		return 0, 1, 2, 3
	}
}

// AlphaOffset returns the byte offset of the alpha channel.
func (f PixelFormat) AlphaOffset() int {
	_, _, _, a := f.Offsets()
	return a
}
