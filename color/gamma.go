// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package color

import "math"

// gammaLUTSize gives 12-bit precision, more than sufficient for 8-bit output.
const gammaLUTSize = 4096

// Gamma converts linear float channels to 8-bit display values through a
// configurable power curve. A lookup table replaces the per-pixel math.Pow
// call; at 4096 entries the table is exact for every reachable 8-bit output.
//
// A zero-value or exponent-1.0 Gamma is the identity curve and skips the
// table entirely.
type Gamma struct {
	exponent float64
	lut      *[gammaLUTSize]uint8
}

// NewGamma builds a curve with the given display gamma exponent.
// Typical values are 2.2 for consumer displays and 1.0 for no correction.
func NewGamma(exponent float64) Gamma {
	if exponent <= 0 || exponent == 1.0 {
		return Gamma{exponent: 1.0}
	}
	g := Gamma{exponent: exponent, lut: new([gammaLUTSize]uint8)}
	inv := 1.0 / exponent
	for i := range g.lut {
		linear := float64(i) / float64(gammaLUTSize-1)
		v := int(math.Pow(linear, inv)*255.0 + 0.5)
		if v > 255 {
			v = 255
		}
		g.lut[i] = uint8(v)
	}
	return g
}

// Exponent returns the display gamma exponent (1.0 for identity).
func (g Gamma) Exponent() float64 {
	if g.exponent == 0 {
		return 1.0
	}
	return g.exponent
}

// Convert8 maps a linear channel value in [0, 1] to an 8-bit display value,
// clamping out-of-range input.
func (g Gamma) Convert8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		if g.lut == nil {
			return 255
		}
		return g.lut[gammaLUTSize-1]
	}
	if g.lut == nil {
		return uint8(v*255.0 + 0.5)
	}
	return g.lut[int(v*float64(gammaLUTSize-1)+0.5)]
}

// ConvertSlow is the reference implementation of Convert8 using math.Pow.
// Used for testing and verification only.
func (g Gamma) ConvertSlow(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	exp := g.Exponent()
	s := int(math.Pow(v, 1.0/exp)*255.0 + 0.5)
	if s > 255 {
		s = 255
	}
	return uint8(s)
}
