// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendering

import (
	"github.com/inkwell2d/inkwell/color"
	"github.com/inkwell2d/inkwell/contour"
)

// ContourParams carries the styling of a contour leaf task.
type ContourParams struct {
	Invert    bool
	Antialias bool
	Winding   contour.Winding
	Color     color.Color
	Opacity   float64
	Blend     color.BlendMethod
}

// NewContourTask creates a leaf task that rasterizes a contour into the
// task's target surface, mapping the task's source rectangle onto its target
// rectangle and applying the composed task transformation first.
//
// The chunk list is shared across clones and must not be mutated after the
// task is built.
func NewContourTask(chunks contour.List, params ContourParams) *Task {
	t := NewTask("contour")
	t.RunFunc = func(t *Task) error {
		if t.TargetSurface == nil {
			return ErrNoTarget
		}
		m := t.Transformation.Mul(BoundsTransformation(t.SourceRect, t.TargetRect))
		used := contour.RenderContour(
			t.TargetSurface, chunks,
			params.Invert, params.Antialias, params.Winding,
			m, params.Color, params.Opacity, params.Blend,
		)
		t.UsedRect = t.UsedRect.Union(used)
		return nil
	}
	return t
}
