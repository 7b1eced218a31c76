// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"testing"

	"github.com/inkwell2d/inkwell/color"
)

// TestSurfaceBlank tests the blank flag driving the conversion shortcut.
func TestSurfaceBlank(t *testing.T) {
	s := New(4, 4)
	if !s.Blank() {
		t.Error("fresh surface must be blank")
	}
	s.Set(1, 1, color.White)
	if s.Blank() {
		t.Error("written surface must not be blank")
	}
	s.Clear()
	if !s.Blank() {
		t.Error("cleared surface must be blank again")
	}
}

// TestSurfaceBounds tests out-of-range access.
func TestSurfaceBounds(t *testing.T) {
	s := New(2, 2)
	s.Set(-1, 0, color.White)
	s.Set(0, -1, color.White)
	s.Set(2, 0, color.White)
	s.Set(0, 2, color.White)
	if !s.Blank() {
		t.Error("out-of-range writes must be ignored")
	}
	if got := s.At(5, 5); got != (color.Color{}) {
		t.Errorf("At outside = %+v, want transparent", got)
	}
	if s.Row(-1) != nil || s.Row(2) != nil {
		t.Error("Row outside must return nil")
	}
}

// TestSurfaceClampsSize tests the minimum-size clamp.
func TestSurfaceClampsSize(t *testing.T) {
	s := New(0, -3)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.Width(), s.Height())
	}
}

// TestSurfaceByteSize tests the cache accounting unit.
func TestSurfaceByteSize(t *testing.T) {
	if got := New(64, 64).ByteSize(); got != 4*64*64 {
		t.Errorf("ByteSize = %d, want %d", got, 4*64*64)
	}
}
