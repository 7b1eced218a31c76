// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/inkwell2d/inkwell/geom"
)

// Operator selects the compositing rule of a draw context.
type Operator uint8

const (
	// OpSourceOver is standard premultiplied source-over compositing.
	OpSourceOver Operator = iota
	// OpAdd sums the premultiplied channels, saturating at 255.
	OpAdd
)

// ctxState is the saveable part of a draw context.
type ctxState struct {
	dx, dy int
	clip   geom.RectInt
	op     Operator
	sr     uint8
	sg     uint8
	sb     uint8
	sa     uint8
}

// Context is a minimal software draw context over a display surface: an
// integer translation, a clip rectangle, a source color and a compositing
// operator. It covers exactly what the canvas compositor needs.
//
// Context is not safe for concurrent use.
type Context struct {
	target *Surface
	state  ctxState
	stack  []ctxState
}

// NewContext creates a context targeting s, clipped to the whole surface,
// with an opaque black source and source-over compositing.
func NewContext(s *Surface) *Context {
	return &Context{
		target: s,
		state: ctxState{
			clip: geom.RectInt{MaxX: s.width, MaxY: s.height},
			sa:   255,
		},
	}
}

// Target returns the surface the context draws into.
func (c *Context) Target() *Surface { return c.target }

// Save pushes the current translation, clip, source and operator.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the state saved by the matching Save. Without a matching
// Save it resets to the initial state.
func (c *Context) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
		return
	}
	c.state = ctxState{
		clip: geom.RectInt{MaxX: c.target.width, MaxY: c.target.height},
		sa:   255,
	}
}

// Translate shifts the origin of subsequent drawing by (dx, dy).
func (c *Context) Translate(dx, dy int) {
	c.state.dx += dx
	c.state.dy += dy
}

// ClipRect intersects the clip with a rectangle in user coordinates.
func (c *Context) ClipRect(r geom.RectInt) {
	c.state.clip = c.state.clip.Intersect(r.Translate(geom.VectorInt{c.state.dx, c.state.dy}))
}

// Clip returns the current clip rectangle in device coordinates.
func (c *Context) Clip() geom.RectInt { return c.state.clip }

// SetOperator selects the compositing operator.
func (c *Context) SetOperator(op Operator) { c.state.op = op }

// SetSourceRGBA sets the source color from straight-alpha float channels.
func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.state.sa = clamp255(a * 255.0)
	c.state.sr = clamp255(r * a * 255.0)
	c.state.sg = clamp255(g * a * 255.0)
	c.state.sb = clamp255(b * a * 255.0)
}

// FillRect fills a rectangle in user coordinates with the source color.
func (c *Context) FillRect(r geom.RectInt) {
	dev := r.Translate(geom.VectorInt{c.state.dx, c.state.dy}).Intersect(c.state.clip)
	if !dev.Valid() {
		return
	}
	s := c.state
	for y := dev.MinY; y < dev.MaxY; y++ {
		for x := dev.MinX; x < dev.MaxX; x++ {
			c.blend(x, y, s.sr, s.sg, s.sb, s.sa)
		}
	}
}

// Paint fills the whole clip with the source color.
func (c *Context) Paint() {
	s := c.state
	dev := s.clip
	for y := dev.MinY; y < dev.MaxY; y++ {
		for x := dev.MinX; x < dev.MaxX; x++ {
			c.blend(x, y, s.sr, s.sg, s.sb, s.sa)
		}
	}
}

// PaintSurface composites src with its top-left corner at (x, y) in user
// coordinates.
func (c *Context) PaintSurface(src *Surface, x, y int) {
	c.PaintSurfaceAlpha(src, x, y, 1.0)
}

// PaintSurfaceAlpha composites src at (x, y) faded by alpha.
// Alpha outside [0, 1] is clamped.
func (c *Context) PaintSurfaceAlpha(src *Surface, x, y int, alpha float64) {
	if src == nil {
		return
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	x += c.state.dx
	y += c.state.dy
	area := geom.RectInt{MinX: x, MinY: y, MaxX: x + src.width, MaxY: y + src.height}
	dev := area.Intersect(c.state.clip)
	if !dev.Valid() {
		return
	}
	fade := uint32(alpha*255.0 + 0.5)
	for dy := dev.MinY; dy < dev.MaxY; dy++ {
		for dx := dev.MinX; dx < dev.MaxX; dx++ {
			sr, sg, sb, sa := src.At(dx-x, dy-y)
			if fade < 255 {
				sr = uint8(uint32(sr) * fade / 255)
				sg = uint8(uint32(sg) * fade / 255)
				sb = uint8(uint32(sb) * fade / 255)
				sa = uint8(uint32(sa) * fade / 255)
			}
			c.blend(dx, dy, sr, sg, sb, sa)
		}
	}
}

// PaintImageScaled scales img to a w by h rectangle at (x, y) in user
// coordinates with nearest-neighbor sampling and composites it. Used by the
// canvas status strip to stretch one cell per frame across the window width.
func (c *Context) PaintImageScaled(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	x += c.state.dx
	y += c.state.dy
	area := geom.RectInt{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
	dev := area.Intersect(c.state.clip)
	for dy := dev.MinY; dy < dev.MaxY; dy++ {
		row := scaled.Pix[(dy-y)*scaled.Stride:]
		for dx := dev.MinX; dx < dev.MaxX; dx++ {
			i := (dx - x) * 4
			c.blend(dx, dy, row[i], row[i+1], row[i+2], row[i+3])
		}
	}
}

// blend writes one premultiplied source pixel at device (x, y) through the
// current operator.
func (c *Context) blend(x, y int, sr, sg, sb, sa uint8) {
	dr, dg, db, da := c.target.At(x, y)
	switch c.state.op {
	case OpAdd:
		c.target.Set(x, y,
			sat8(uint32(dr)+uint32(sr)),
			sat8(uint32(dg)+uint32(sg)),
			sat8(uint32(db)+uint32(sb)),
			sat8(uint32(da)+uint32(sa)))
	default:
		inv := 255 - uint32(sa)
		c.target.Set(x, y,
			uint8(uint32(sr)+uint32(dr)*inv/255),
			uint8(uint32(sg)+uint32(dg)*inv/255),
			uint8(uint32(sb)+uint32(db)*inv/255),
			uint8(uint32(sa)+uint32(da)*inv/255))
	}
}

func sat8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
