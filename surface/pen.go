// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/inkwell2d/inkwell/color"

// AlphaPen is a mutable cursor over a surface bundling position, source
// color, opacity, and blend method. Every write bounds-checks against the
// surface, so callers may run the pen off any edge safely.
//
// The source color is premultiplied once when set; per-pixel coverage scales
// the blend amount, not the color.
type AlphaPen struct {
	surface *Surface
	x, y    int
	src     color.Color
	opacity float64
	blend   color.BlendFunc
}

// NewAlphaPen creates a pen over s with the given opacity and blend method.
func NewAlphaPen(s *Surface, opacity float64, method color.BlendMethod) *AlphaPen {
	return &AlphaPen{
		surface: s,
		opacity: opacity,
		blend:   method.Get(),
	}
}

// SetValue sets the source color. The color is stored premultiplied.
func (p *AlphaPen) SetValue(c color.Color) {
	p.src = c.Premultiply()
}

// MoveTo positions the pen at (x, y) in surface coordinates.
func (p *AlphaPen) MoveTo(x, y int) {
	p.x, p.y = x, y
}

// IncX advances the pen one pixel to the right.
func (p *AlphaPen) IncX() {
	p.x++
}

// Position returns the current pen position.
func (p *AlphaPen) Position() (x, y int) {
	return p.x, p.y
}

// PutValue blends the source color into the current pixel at full coverage.
func (p *AlphaPen) PutValue() {
	p.putPixel(p.x, p.y, p.opacity)
}

// PutValueAlpha blends the source color into the current pixel scaled by the
// coverage alpha.
func (p *AlphaPen) PutValueAlpha(alpha float64) {
	p.putPixel(p.x, p.y, p.opacity*alpha)
}

// PutHLine fills length pixels rightward from the current position at full
// coverage. The pen does not move.
func (p *AlphaPen) PutHLine(length int) {
	p.hline(length, p.opacity)
}

// PutHLineAlpha fills length pixels rightward from the current position at
// the given coverage. The pen does not move.
func (p *AlphaPen) PutHLineAlpha(length int, alpha float64) {
	p.hline(length, p.opacity*alpha)
}

// PutBlock fills a height×width block whose top-left corner is the current
// position. The pen does not move.
func (p *AlphaPen) PutBlock(height, width int) {
	for dy := 0; dy < height; dy++ {
		y := p.y + dy
		for dx := 0; dx < width; dx++ {
			p.putPixel(p.x+dx, y, p.opacity)
		}
	}
}

func (p *AlphaPen) hline(length int, amount float64) {
	y := p.y
	for dx := 0; dx < length; dx++ {
		p.putPixel(p.x+dx, y, amount)
	}
}

func (p *AlphaPen) putPixel(x, y int, amount float64) {
	s := p.surface
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	if amount <= 0 {
		return
	}
	if amount > 1 {
		amount = 1
	}
	i := y*s.width + x
	s.pix[i] = p.blend(s.pix[i], p.src, amount)
	s.dirty = true
}
