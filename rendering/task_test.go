// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendering

import (
	"math"
	"testing"

	"github.com/inkwell2d/inkwell/geom"
	"github.com/inkwell2d/inkwell/surface"
)

// TestTaskRunBindsSubTasks tests target inheritance and transform
// composition down the tree.
func TestTaskRunBindsSubTasks(t *testing.T) {
	target := surface.New(8, 8)

	var gotTransform geom.Matrix
	var gotTarget *surface.Surface
	leaf := NewTask("leaf")
	leaf.RunFunc = func(task *Task) error {
		gotTransform = task.Transformation
		gotTarget = task.TargetSurface
		task.UsedRect = geom.NewRectInt(1, 1, 3, 3)
		return nil
	}

	root := NewTransformTask(geom.Scale(2, 2), leaf)
	root.TargetSurface = target
	root.TargetRect = geom.NewRectInt(0, 0, 8, 8)
	root.SourceRect = geom.NewRect(0, 0, 1, 1)

	if err := root.Run(); err != nil {
		t.Fatal(err)
	}
	if gotTarget != target {
		t.Error("sub-task did not inherit the target surface")
	}
	if math.Abs(gotTransform.M00-2) > 1e-12 {
		t.Errorf("leaf transformation M00 = %v, want 2", gotTransform.M00)
	}
	if root.UsedRect != geom.NewRectInt(1, 1, 3, 3) {
		t.Errorf("root UsedRect = %+v, want union of children", root.UsedRect)
	}
}

// TestTaskCloneRecursive tests tree independence after cloning.
func TestTaskCloneRecursive(t *testing.T) {
	leaf := NewTask("leaf")
	root := NewTask("root")
	root.Sub = []*Task{leaf}

	clone := root.CloneRecursive()
	clone.Sub[0].Desc = "changed"
	clone.TargetSurface = surface.New(1, 1)

	if leaf.Desc != "leaf" {
		t.Error("clone shares sub-task nodes with the original")
	}
	if root.TargetSurface != nil {
		t.Error("clone shares the target binding with the original")
	}
	if (*Task)(nil).CloneRecursive() != nil {
		t.Error("cloning nil must return nil")
	}
}

// TestBoundsTransformation tests the source-to-target pixel mapping.
func TestBoundsTransformation(t *testing.T) {
	m := BoundsTransformation(geom.NewRect(0, 0, 2, 2), geom.NewRectInt(0, 0, 64, 64))

	tests := []struct {
		name string
		in   geom.Vector
		want geom.Vector
	}{
		{"origin", geom.Vector{0, 0}, geom.Vector{0, 0}},
		{"center", geom.Vector{1, 1}, geom.Vector{32, 32}},
		{"corner", geom.Vector{2, 2}, geom.Vector{64, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Transform(tt.in)
			if math.Abs(got[0]-tt.want[0]) > 1e-9 || math.Abs(got[1]-tt.want[1]) > 1e-9 {
				t.Errorf("Transform(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	// An offset target rect shifts the mapping.
	m = BoundsTransformation(geom.NewRect(0, 0, 1, 1), geom.NewRectInt(64, 128, 128, 192))
	if got := m.Transform(geom.Vector{0, 0}); got != (geom.Vector{64, 128}) {
		t.Errorf("offset origin = %v, want {64 128}", got)
	}

	// Degenerate source falls back to identity.
	if m := BoundsTransformation(geom.Rect{}, geom.NewRectInt(0, 0, 4, 4)); !m.IsIdentity() {
		t.Error("degenerate source must map to identity")
	}
}
