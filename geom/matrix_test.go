// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"math"
	"testing"
)

func vecNear(a, b Vector, tol float64) bool {
	return math.Abs(a[0]-b[0]) < tol && math.Abs(a[1]-b[1]) < tol
}

// TestMatrixTransform tests point transforms.
func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Vector
		want Vector
	}{
		{"identity", Identity(), Vector{3, 4}, Vector{3, 4}},
		{"translate", Translate(10, -5), Vector{1, 2}, Vector{11, -3}},
		{"scale", Scale(2, 3), Vector{1, 2}, Vector{2, 6}},
		{"flip x", Matrix{M00: -1, M11: 1, M20: 4}, Vector{1, 2}, Vector{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Transform(tt.in); !vecNear(got, tt.want, 1e-12) {
				t.Errorf("Transform(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestMatrixMul verifies the composition order: m then o.
func TestMatrixMul(t *testing.T) {
	m := Scale(2, 2)
	o := Translate(10, 20)
	v := Vector{1, 1}

	got := m.Mul(o).Transform(v)
	want := o.Transform(m.Transform(v))
	if !vecNear(got, want, 1e-12) {
		t.Errorf("m.Mul(o).Transform = %v, want %v", got, want)
	}
	if want != (Vector{12, 22}) {
		t.Errorf("scale then translate = %v, want {12 22}", want)
	}
}

// TestMatrixIsIdentity tests the exact identity check.
func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
}
