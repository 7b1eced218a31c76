// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package contour

import (
	"errors"
	"math"
	"slices"

	"github.com/inkwell2d/inkwell/geom"
)

// ErrEmptyWindow is returned by Init when the clipping window is degenerate.
// A polyspan in this state silently discards all further path input.
var ErrEmptyWindow = errors.New("contour: empty polyspan window")

// maxSubdivision bounds the recursion of adaptive curve flattening.
const maxSubdivision = 16

// flattenTolerance is the maximum distance, in pixels, from a curve's control
// polygon to its chord before the curve is emitted as a line.
const flattenTolerance = 0.5

// CoverMark is one scan-line crossing's contribution to a single pixel.
//
// Cover is the signed vertical extent of the crossing within the pixel; Area
// is the signed area between the crossing and the pixel's left edge
// (Cover-weighted mean of the entry and exit x fractions). For a closed
// contour the covers along any scan line inside the window sum to zero.
type CoverMark struct {
	X, Y  int
	Area  float64
	Cover float64
}

// Polyspan scan-converts a contour into sorted per-pixel coverage marks.
//
// Lifecycle: create per render, set the clipping window with Init, build the
// path with MoveTo/LineTo/ConicTo/CubicTo/Close, freeze with SortMarks, read
// through Window and Covers, discard.
type Polyspan struct {
	window geom.RectInt
	valid  bool

	marks   []CoverMark
	cur     CoverMark
	curOpen bool

	penX, penY     float64
	startX, startY float64

	clipTS  []float64
	splitTS []float64
}

// NewPolyspan creates a polyspan with the given clipping window.
// It returns ErrEmptyWindow for a degenerate rectangle; the returned polyspan
// is still usable as a sink that discards input.
func NewPolyspan(minx, miny, maxx, maxy int) (*Polyspan, error) {
	p := &Polyspan{}
	return p, p.Init(minx, miny, maxx, maxy)
}

// Init sets the clipping window and clears all marks and pen state.
func (p *Polyspan) Init(minx, miny, maxx, maxy int) error {
	p.window = geom.NewRectInt(minx, miny, maxx, maxy)
	p.marks = p.marks[:0]
	p.cur = CoverMark{}
	p.curOpen = false
	p.penX, p.penY = 0, 0
	p.startX, p.startY = 0, 0
	p.valid = p.window.Valid()
	if !p.valid {
		return ErrEmptyWindow
	}
	return nil
}

// Window returns the clipping window in pixel coordinates.
func (p *Polyspan) Window() geom.RectInt { return p.window }

// Covers returns the mark sequence. The slice is shared; callers must not
// modify it. Call SortMarks first to freeze the order.
func (p *Polyspan) Covers() []CoverMark {
	p.flush()
	return p.marks
}

// MoveTo starts a new subpath at (x, y) in pixel coordinates.
func (p *Polyspan) MoveTo(x, y float64) {
	p.penX, p.penY = x, y
	p.startX, p.startY = x, y
}

// LineTo draws a line from the pen to (x, y).
func (p *Polyspan) LineTo(x, y float64) {
	x0, y0 := p.penX, p.penY
	p.penX, p.penY = x, y
	if p.valid {
		p.drawLine(x0, y0, x, y)
	}
}

// ConicTo draws a quadratic curve to (x, y) with control point (cx, cy),
// flattening adaptively to within half a pixel.
func (p *Polyspan) ConicTo(x, y, cx, cy float64) {
	p.subdivideConic(p.penX, p.penY, cx, cy, x, y, 0)
}

// CubicTo draws a cubic curve to (x, y) with control points (cx0, cy0) and
// (cx1, cy1), flattening adaptively to within half a pixel.
func (p *Polyspan) CubicTo(x, y, cx0, cy0, cx1, cy1 float64) {
	p.subdivideCubic(p.penX, p.penY, cx0, cy0, cx1, cy1, x, y, 0)
}

// Close draws a line back to the subpath start if the pen is not already
// there.
func (p *Polyspan) Close() {
	if p.penX != p.startX || p.penY != p.startY {
		p.LineTo(p.startX, p.startY)
	}
}

// SortMarks freezes the mark sequence in (y, x) order. The sort is stable, so
// marks at equal positions keep path order and accumulate identically
// regardless of how the blitter groups them.
func (p *Polyspan) SortMarks() {
	p.flush()
	slices.SortStableFunc(p.marks, func(a, b CoverMark) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
}

// CalcBounds returns the tight pixel rectangle enclosing all marks, or an
// empty rectangle if there are none.
func (p *Polyspan) CalcBounds() geom.RectInt {
	p.flush()
	if len(p.marks) == 0 {
		return geom.RectInt{}
	}
	b := geom.NewRectInt(p.marks[0].X, p.marks[0].Y, p.marks[0].X+1, p.marks[0].Y+1)
	for _, m := range p.marks[1:] {
		b.MinX = min(b.MinX, m.X)
		b.MinY = min(b.MinY, m.Y)
		b.MaxX = max(b.MaxX, m.X+1)
		b.MaxY = max(b.MaxY, m.Y+1)
	}
	return b
}

// ExtractAlpha maps accumulated signed coverage to a coverage value in [0, 1].
// NonZero saturates at one winding; EvenOdd is a triangle wave reaching 1 at
// odd units, so it is 2-periodic in the crossing count.
func ExtractAlpha(cover float64, winding Winding) float64 {
	cover = math.Abs(cover)
	switch winding {
	case WindingEvenOdd:
		cover = math.Mod(cover, 2)
		if cover > 1 {
			cover = 2 - cover
		}
	default:
		if cover > 1 {
			cover = 1
		}
	}
	return cover
}

// flush appends the accumulating mark, if any, to the mark list.
func (p *Polyspan) flush() {
	if p.curOpen {
		if p.cur.Cover != 0 || p.cur.Area != 0 {
			p.marks = append(p.marks, p.cur)
		}
		p.curOpen = false
	}
}

// movePen retargets the accumulating mark to pixel (x, y), flushing the
// previous pixel's contribution when the position changes.
func (p *Polyspan) movePen(x, y int) {
	if p.curOpen && p.cur.X == x && p.cur.Y == y {
		return
	}
	p.flush()
	p.cur = CoverMark{X: x, Y: y}
	p.curOpen = true
}

// drawLine clips a segment to the window and emits coverage. The portion
// outside the vertical range is discarded; portions outside the horizontal
// range are pinned to the window border so their winding still reaches the
// row's accumulation.
func (p *Polyspan) drawLine(x0, y0, x1, y1 float64) {
	if y0 == y1 {
		return
	}
	wy0, wy1 := float64(p.window.MinY), float64(p.window.MaxY)
	dy := y1 - y0
	t0, t1 := 0.0, 1.0
	if dy > 0 {
		if y1 <= wy0 || y0 >= wy1 {
			return
		}
		if y0 < wy0 {
			t0 = (wy0 - y0) / dy
		}
		if y1 > wy1 {
			t1 = (wy1 - y0) / dy
		}
	} else {
		if y0 <= wy0 || y1 >= wy1 {
			return
		}
		if y0 > wy1 {
			t0 = (wy1 - y0) / dy
		}
		if y1 < wy0 {
			t1 = (wy0 - y0) / dy
		}
	}
	if t0 >= t1 {
		return
	}

	dx := x1 - x0
	ax, ay := x0+t0*dx, y0+t0*dy
	bx, by := x0+t1*dx, y0+t1*dy

	wx0, wx1 := float64(p.window.MinX), float64(p.window.MaxX)
	sdx, sdy := bx-ax, by-ay

	ts := append(p.clipTS[:0], 0, 1)
	if sdx != 0 {
		for _, wx := range [2]float64{wx0, wx1} {
			if t := (wx - ax) / sdx; t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
		slices.Sort(ts)
	}
	p.clipTS = ts

	for i := 0; i+1 < len(ts); i++ {
		ta, tb := ts[i], ts[i+1]
		if tb-ta <= 0 {
			continue
		}
		xa, ya := ax+ta*sdx, ay+ta*sdy
		xb, yb := ax+tb*sdx, ay+tb*sdy
		switch xm := (xa + xb) / 2; {
		case xm < wx0:
			p.emitSegment(wx0, ya, wx0, yb)
		case xm > wx1:
			p.emitSegment(wx1, ya, wx1, yb)
		default:
			p.emitSegment(xa, ya, xb, yb)
		}
	}
}

// emitSegment walks a window-clipped segment pixel by pixel, splitting at
// every pixel boundary it crosses. Each sub-span lands in the pixel
// containing its midpoint, which resolves ties at integer boundaries toward
// the pixel whose interior the motion enters.
func (p *Polyspan) emitSegment(x0, y0, x1, y1 float64) {
	if y0 == y1 {
		return
	}
	wx0, wx1 := float64(p.window.MinX), float64(p.window.MaxX)
	x0 = math.Min(math.Max(x0, wx0), wx1)
	x1 = math.Min(math.Max(x1, wx0), wx1)

	dx, dy := x1-x0, y1-y0

	ts := append(p.splitTS[:0], 0, 1)
	yl, yh := math.Min(y0, y1), math.Max(y0, y1)
	for k := math.Floor(yl) + 1; k < yh; k++ {
		if k > yl {
			ts = append(ts, (k-y0)/dy)
		}
	}
	if dx != 0 {
		xl, xh := math.Min(x0, x1), math.Max(x0, x1)
		for k := math.Floor(xl) + 1; k < xh; k++ {
			if k > xl {
				ts = append(ts, (k-x0)/dx)
			}
		}
	}
	slices.Sort(ts)
	p.splitTS = ts

	for i := 0; i+1 < len(ts); i++ {
		ta, tb := ts[i], ts[i+1]
		if tb-ta <= 0 {
			continue
		}
		xa, ya := x0+ta*dx, y0+ta*dy
		xb, yb := x0+tb*dx, y0+tb*dy

		row := int(math.Floor((ya + yb) / 2))
		row = min(max(row, p.window.MinY), p.window.MaxY-1)
		px := int(math.Floor((xa + xb) / 2))
		px = min(max(px, p.window.MinX), p.window.MaxX-1)

		cover := yb - ya
		fxa := math.Min(math.Max(xa-float64(px), 0), 1)
		fxb := math.Min(math.Max(xb-float64(px), 0), 1)

		p.movePen(px, row)
		p.cur.Cover += cover
		p.cur.Area += cover * (fxa + fxb) / 2
	}
}

func (p *Polyspan) subdivideConic(x0, y0, cx, cy, x1, y1 float64, depth int) {
	if depth >= maxSubdivision || conicFlat(x0, y0, cx, cy, x1, y1) {
		p.LineTo(x1, y1)
		return
	}
	q0x, q0y := (x0+cx)/2, (y0+cy)/2
	q1x, q1y := (cx+x1)/2, (cy+y1)/2
	mx, my := (q0x+q1x)/2, (q0y+q1y)/2
	p.subdivideConic(x0, y0, q0x, q0y, mx, my, depth+1)
	p.subdivideConic(mx, my, q1x, q1y, x1, y1, depth+1)
}

func (p *Polyspan) subdivideCubic(x0, y0, cx0, cy0, cx1, cy1, x1, y1 float64, depth int) {
	if depth >= maxSubdivision || cubicFlat(x0, y0, cx0, cy0, cx1, cy1, x1, y1) {
		p.LineTo(x1, y1)
		return
	}
	m01x, m01y := (x0+cx0)/2, (y0+cy0)/2
	m12x, m12y := (cx0+cx1)/2, (cy0+cy1)/2
	m23x, m23y := (cx1+x1)/2, (cy1+y1)/2
	m012x, m012y := (m01x+m12x)/2, (m01y+m12y)/2
	m123x, m123y := (m12x+m23x)/2, (m12y+m23y)/2
	mx, my := (m012x+m123x)/2, (m012y+m123y)/2
	p.subdivideCubic(x0, y0, m01x, m01y, m012x, m012y, mx, my, depth+1)
	p.subdivideCubic(mx, my, m123x, m123y, m23x, m23y, x1, y1, depth+1)
}

// conicFlat reports whether the control point lies within the flattening
// tolerance of the chord.
func conicFlat(x0, y0, cx, cy, x1, y1 float64) bool {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-12 {
		ex, ey := cx-x0, cy-y0
		return ex*ex+ey*ey < flattenTolerance*flattenTolerance
	}
	cross := (cx-x0)*dy - (cy-y0)*dx
	return cross*cross/lenSq < flattenTolerance*flattenTolerance
}

// cubicFlat reports whether both control points lie within the flattening
// tolerance of the chord.
func cubicFlat(x0, y0, cx0, cy0, cx1, cy1, x1, y1 float64) bool {
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	tolSq := flattenTolerance * flattenTolerance
	if lenSq < 1e-12 {
		e0x, e0y := cx0-x0, cy0-y0
		e1x, e1y := cx1-x1, cy1-y1
		return e0x*e0x+e0y*e0y < tolSq && e1x*e1x+e1y*e1y < tolSq
	}
	c0 := (cx0-x0)*dy - (cy0-y0)*dx
	c1 := (cx1-x0)*dy - (cy1-y0)*dx
	return c0*c0/lenSq < tolSq && c1*c1/lenSq < tolSq
}
