// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package contour implements the polyspan contour rasterizer: scan
// conversion of vector contours into sorted per-pixel coverage marks, and the
// blitter that paints those marks onto a surface with coverage-based
// antialiasing, two winding rules, and inversion.
package contour

import "github.com/inkwell2d/inkwell/geom"

// Winding selects the mapping from accumulated signed coverage to alpha.
type Winding uint8

const (
	// WindingNonZero treats any non-zero crossing count as inside.
	WindingNonZero Winding = iota
	// WindingEvenOdd treats odd crossing counts as inside.
	WindingEvenOdd
)

// ChunkType tags a contour-building primitive.
type ChunkType uint8

const (
	// ChunkClose closes the current subpath.
	ChunkClose ChunkType = iota
	// ChunkMove starts a new subpath at P1.
	ChunkMove
	// ChunkLine draws a line to P1.
	ChunkLine
	// ChunkConic draws a quadratic curve to P1 with control point PP0.
	ChunkConic
	// ChunkCubic draws a cubic curve to P1 with control points PP0 and PP1.
	ChunkCubic
)

// Chunk is one contour-building primitive. Points are in user space.
type Chunk struct {
	Type     ChunkType
	P1       geom.Vector
	PP0, PP1 geom.Vector
}

// List is an ordered sequence of chunks describing a 2D path.
type List []Chunk

// MoveTo appends a subpath start.
func (l *List) MoveTo(x, y float64) {
	*l = append(*l, Chunk{Type: ChunkMove, P1: geom.Vector{x, y}})
}

// LineTo appends a line segment.
func (l *List) LineTo(x, y float64) {
	*l = append(*l, Chunk{Type: ChunkLine, P1: geom.Vector{x, y}})
}

// ConicTo appends a quadratic curve with control point (cx, cy).
func (l *List) ConicTo(x, y, cx, cy float64) {
	*l = append(*l, Chunk{Type: ChunkConic, P1: geom.Vector{x, y}, PP0: geom.Vector{cx, cy}})
}

// CubicTo appends a cubic curve with control points (cx0, cy0) and (cx1, cy1).
func (l *List) CubicTo(x, y, cx0, cy0, cx1, cy1 float64) {
	*l = append(*l, Chunk{
		Type: ChunkCubic,
		P1:   geom.Vector{x, y},
		PP0:  geom.Vector{cx0, cy0},
		PP1:  geom.Vector{cx1, cy1},
	})
}

// Close appends a subpath close.
func (l *List) Close() {
	*l = append(*l, Chunk{Type: ChunkClose})
}

// BuildPolyspan feeds the chunk list through the transform into the polyspan.
func BuildPolyspan(chunks List, m geom.Matrix, out *Polyspan) {
	for _, c := range chunks {
		switch c.Type {
		case ChunkClose:
			out.Close()
		case ChunkMove:
			p1 := m.Transform(c.P1)
			out.MoveTo(p1[0], p1[1])
		case ChunkLine:
			p1 := m.Transform(c.P1)
			out.LineTo(p1[0], p1[1])
		case ChunkConic:
			p1 := m.Transform(c.P1)
			pp0 := m.Transform(c.PP0)
			out.ConicTo(p1[0], p1[1], pp0[0], pp0[1])
		case ChunkCubic:
			p1 := m.Transform(c.P1)
			pp0 := m.Transform(c.PP0)
			pp1 := m.Transform(c.PP1)
			out.CubicTo(p1[0], p1[1], pp0[0], pp0[1], pp1[0], pp1[1])
		}
	}
}
