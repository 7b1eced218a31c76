// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rendering provides the render task tree, completion events, and
// the worker-pool task runner that executes task trees off the UI thread.
package rendering

import (
	"errors"

	"github.com/inkwell2d/inkwell/geom"
	"github.com/inkwell2d/inkwell/surface"
)

// ErrNoTarget is returned by a task run without a bound target surface.
var ErrNoTarget = errors.New("rendering: task has no target surface")

// RunFunc renders one task node. The node's sub-tasks have already run.
type RunFunc func(t *Task) error

// Task is a node in a render task tree.
//
// The root of a tree carries the target binding: the surface to render into,
// the pixel rectangle within it, and the user-space region it shows.
// Sub-tasks inherit any binding they do not set themselves, and their
// transformations compose with their ancestors'.
//
// Trees are cloned with CloneRecursive before each execution, so a running
// tree is owned by exactly one goroutine.
type Task struct {
	// Desc names the task for logging.
	Desc string

	// TargetSurface is the surface this task renders into.
	TargetSurface *surface.Surface

	// TargetRect is the pixel region of TargetSurface covered by this task.
	TargetRect geom.RectInt

	// SourceRect is the user-space region mapped onto TargetRect.
	SourceRect geom.Rect

	// Transformation is a user-space pre-transform, composed with the
	// transformations of enclosing tasks at run time.
	Transformation geom.Matrix

	// UsedRect is set by Run to the pixel region actually touched.
	UsedRect geom.RectInt

	// Sub holds the child tasks, run before this node.
	Sub []*Task

	// RunFunc renders this node. A nil RunFunc node only groups children.
	RunFunc RunFunc
}

// NewTask creates an empty task with an identity transformation.
func NewTask(desc string) *Task {
	return &Task{Desc: desc, Transformation: geom.Identity()}
}

// CloneRecursive returns an independent copy of the tree. Node fields are
// copied shallowly; the referenced contour data and run functions are
// immutable and shared.
func (t *Task) CloneRecursive() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if len(t.Sub) > 0 {
		c.Sub = make([]*Task, len(t.Sub))
		for i, s := range t.Sub {
			c.Sub[i] = s.CloneRecursive()
		}
	}
	return &c
}

// Run executes the tree depth-first: each sub-task inherits the unbound
// parts of this node's target binding and composes its transformation, runs,
// and then this node's own RunFunc runs.
func (t *Task) Run() error {
	for _, s := range t.Sub {
		if s.TargetSurface == nil {
			s.TargetSurface = t.TargetSurface
			s.TargetRect = t.TargetRect
			s.SourceRect = t.SourceRect
		}
		s.Transformation = s.Transformation.Mul(t.Transformation)
		if err := s.Run(); err != nil {
			return err
		}
		t.UsedRect = t.UsedRect.Union(s.UsedRect)
	}
	if t.RunFunc != nil {
		return t.RunFunc(t)
	}
	return nil
}

// NewTransformTask wraps sub in a node that applies m before the enclosing
// transformation. Used by the scheduler to flip documents whose bounds are
// swapped along an axis.
func NewTransformTask(m geom.Matrix, sub *Task) *Task {
	t := NewTask("transform")
	t.Transformation = m
	t.Sub = []*Task{sub}
	return t
}

// BoundsTransformation returns the matrix mapping the user-space source
// rectangle onto the pixel target rectangle.
func BoundsTransformation(source geom.Rect, target geom.RectInt) geom.Matrix {
	sw, sh := source.Width(), source.Height()
	if sw == 0 || sh == 0 {
		return geom.Identity()
	}
	ppuX := float64(target.Width()) / sw
	ppuY := float64(target.Height()) / sh
	return geom.Matrix{
		M00: ppuX,
		M11: ppuY,
		M20: float64(target.MinX) - source.MinX*ppuX,
		M21: float64(target.MinY) - source.MinY*ppuY,
	}
}
