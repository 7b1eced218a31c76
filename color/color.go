// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package color provides the linear floating-point color model used by the
// renderer, the blend methods applied by the pixel pen, and the gamma curves
// applied during display conversion.
//
// All channels are stored in linear space. Colors held in render surfaces are
// alpha-premultiplied.
package color

// Color is a linear RGBA color with float64 channels.
type Color struct {
	R, G, B, A float64
}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// Black is opaque black.
var Black = Color{0, 0, 0, 1}

// Transparent is fully transparent black.
var Transparent = Color{}

// RGB returns an opaque color with the given channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given channels.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Scale multiplies all four channels by k.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A * k}
}

// Premultiply multiplies the color channels by alpha.
func (c Color) Premultiply() Color {
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// Clamp limits every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
