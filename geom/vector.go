// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the vector, matrix, and rectangle types shared by
// the rasterizer and the tile cache.
package geom

import "golang.org/x/image/math/f64"

// Vector is a 2D point or direction in user space.
// It aliases f64.Vec2 so values interoperate with golang.org/x/image;
// components are accessed by index (v[0] is x, v[1] is y).
type Vector = f64.Vec2

// VectorInt is a 2D point in integer pixel coordinates.
type VectorInt [2]int

// Add returns v + o.
func (v VectorInt) Add(o VectorInt) VectorInt {
	return VectorInt{v[0] + o[0], v[1] + o[1]}
}

// Sub returns v - o.
func (v VectorInt) Sub(o VectorInt) VectorInt {
	return VectorInt{v[0] - o[0], v[1] - o[1]}
}
