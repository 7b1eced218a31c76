// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "golang.org/x/image/math/f64"

// Matrix is a 3×2 affine transform over row vectors:
//
//	x' = x*M00 + y*M10 + M20
//	y' = x*M01 + y*M11 + M21
type Matrix struct {
	M00, M01 float64
	M10, M11 float64
	M20, M21 float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{M00: 1, M11: 1}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{M00: 1, M11: 1, M20: x, M21: y}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{M00: sx, M11: sy}
}

// Transform applies the matrix to v.
func (m Matrix) Transform(v Vector) Vector {
	return Vector{
		v[0]*m.M00 + v[1]*m.M10 + m.M20,
		v[0]*m.M01 + v[1]*m.M11 + m.M21,
	}
}

// Mul returns the composition "m then o":
// (m.Mul(o)).Transform(v) == o.Transform(m.Transform(v)).
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		M00: m.M00*o.M00 + m.M01*o.M10,
		M01: m.M00*o.M01 + m.M01*o.M11,
		M10: m.M10*o.M00 + m.M11*o.M10,
		M11: m.M10*o.M01 + m.M11*o.M11,
		M20: m.M20*o.M00 + m.M21*o.M10 + o.M20,
		M21: m.M20*o.M01 + m.M21*o.M11 + o.M21,
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Matrix{M00: 1, M11: 1}
}

// Aff3 returns the equivalent golang.org/x/image affine matrix
// (row-major top two rows of the 3×3 form, operating on column vectors).
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
	}
}
