// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package contour

import (
	"github.com/inkwell2d/inkwell/color"
	"github.com/inkwell2d/inkwell/geom"
	"github.com/inkwell2d/inkwell/surface"
)

// RenderPolyspan paints a sorted polyspan onto the target surface.
//
// Coverage accumulates left to right along each scan line: each pixel with
// marks is drawn from the running cover minus its own area sum, and the gap
// up to the next mark on the same line is filled from the running cover
// alone. With invert set, everything the contour does not reach inside the
// window is filled instead. The pen visits each pixel at most once per call.
func RenderPolyspan(
	target *surface.Surface,
	span *Polyspan,
	invert, antialias bool,
	winding Winding,
	col color.Color,
	opacity float64,
	blend color.BlendMethod,
) {
	pen := surface.NewAlphaPen(target, opacity, blend)
	pen.SetValue(col)

	window := span.Window()
	covers := span.Covers()

	if len(covers) == 0 {
		// No marks at all.
		if invert {
			pen.MoveTo(window.MinX, window.MinY)
			pen.PutBlock(window.MaxY-window.MinY, window.MaxX-window.MinX)
		}
		return
	}

	if invert {
		// Fill the area above the first mark, then the strip to its left.
		pen.MoveTo(window.MinX, window.MinY)
		pen.PutBlock(covers[0].Y-window.MinY, window.MaxX-window.MinX)

		pen.MoveTo(window.MinX, covers[0].Y)
		if l := covers[0].X - window.MinX; l > 0 {
			pen.PutHLine(l)
		}
	}

	cover := 0.0
	x, y := 0, 0
	i := 0
	for {
		y = covers[i].Y
		x = covers[i].X
		pen.MoveTo(x, y)

		area := covers[i].Area
		cover += covers[i].Cover

		// Accumulate every mark sharing this pixel.
		for i++; i < len(covers); i++ {
			if covers[i].Y != y || covers[i].X != x {
				break
			}
			area += covers[i].Area
			cover += covers[i].Cover
		}

		// Draw the pixel from its covered area.
		if area != 0 {
			alpha := ExtractAlpha(cover-area, winding)
			if invert {
				alpha = 1 - alpha
			}
			if antialias {
				if alpha > 0 {
					pen.PutValueAlpha(alpha)
				}
			} else if alpha >= 0.5 {
				pen.PutValue()
			}
			pen.IncX()
			x++
		}

		if i == len(covers) {
			break
		}

		// No more live pixels on this line; go to the next.
		if covers[i].Y != y {
			if invert {
				pen.PutHLine(window.MaxX - x)
				pen.MoveTo(window.MinX, covers[i].Y)
				pen.PutHLine(covers[i].X - window.MinX)
			}
			cover = 0
			continue
		}

		// Fill the span to the next mark from the running cover.
		if x < covers[i].X {
			alpha := ExtractAlpha(cover, winding)
			if invert {
				alpha = 1 - alpha
			}
			if antialias {
				if alpha > 0 {
					pen.PutHLineAlpha(covers[i].X-x, alpha)
				}
			} else if alpha >= 0.5 {
				pen.PutHLine(covers[i].X - x)
			}
		}
	}

	if invert {
		// Finish the current line, then everything below.
		pen.PutHLine(window.MaxX - x)
		pen.MoveTo(window.MinX, y+1)
		pen.PutBlock(window.MaxY-y-1, window.MaxX-window.MinX)
	}
}

// RenderContour rasterizes a chunk list through a transform onto the target
// in one call: build, sort, blit. It returns the pixel rectangle actually
// touched, which is the whole surface for inverted fills.
func RenderContour(
	target *surface.Surface,
	chunks List,
	invert, antialias bool,
	winding Winding,
	m geom.Matrix,
	col color.Color,
	opacity float64,
	blend color.BlendMethod,
) geom.RectInt {
	var span Polyspan
	if err := span.Init(0, 0, target.Width(), target.Height()); err != nil {
		return geom.RectInt{}
	}
	BuildPolyspan(chunks, m, &span)
	span.SortMarks()
	RenderPolyspan(target, &span, invert, antialias, winding, col, opacity, blend)
	if invert {
		return geom.NewRectInt(0, 0, target.Width(), target.Height())
	}
	return span.CalcBounds()
}
