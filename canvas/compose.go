// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	stdcolor "image/color"
	"math"
	"slices"

	"github.com/inkwell2d/inkwell/display"
	"github.com/inkwell2d/inkwell/geom"
)

// Draw composites the cached tiles of the onion frames into the display
// context, then strokes the frame border and the timeline status strip.
// Call from the UI thread with the expose rectangle in display coordinates.
func (c *Canvas) Draw(ctx *display.Context, exposeRect geom.RectInt) {
	c.mu.Lock()
	c.drawQueued = false
	c.mu.Unlock()

	windowOffset := c.area.WindowOffset()
	windowRect := c.area.WindowRect()
	expose := exposeRect.
		Translate(geom.VectorInt{-windowOffset[0], -windowOffset[1]}).
		Intersect(windowRect)
	if !expose.Valid() {
		return
	}

	// Schedule whatever the view is missing before painting what we have.
	c.EnqueueRender()

	status := make(StatusMap)
	c.RenderStatus(status)

	// Hold the mutex while painting so tiles cannot be evicted mid-paint.
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.onionFrames) == 0 {
		return
	}

	ctx.Save()
	defer ctx.Restore()
	ctx.Translate(windowOffset[0], windowOffset[1])

	frames := slices.Clone(c.onionFrames)
	useOnion := len(frames) > 1 || math.Abs(frames[0].Alpha-1) > 1e-6

	if useOnion {
		c.tuneCurrentAlpha(frames)

		onion := display.NewSurface(expose.Width(), expose.Height(), c.cfg.Format)
		octx := display.NewContext(onion)
		octx.Translate(-expose.MinX, -expose.MinY)
		octx.SetOperator(display.OpAdd)
		for _, f := range frames {
			c.paintFrameTiles(octx, f.ID, f.Alpha)
		}
		ctx.PaintSurface(onion, expose.MinX, expose.MinY)
	} else {
		for _, f := range frames {
			c.paintFrameTiles(ctx, f.ID, 1.0)
		}
	}

	c.strokeBorder(ctx)
	c.drawStatusStrip(ctx, status)
}

// paintFrameTiles paints every converted tile of a frame, clipped to its
// rectangle, at the given alpha. The mutex must be already locked.
func (c *Canvas) paintFrameTiles(ctx *display.Context, id FrameID, alpha float64) {
	for _, t := range c.tiles[id] {
		if t.Display == nil {
			continue
		}
		ctx.Save()
		ctx.ClipRect(t.Rect)
		ctx.PaintSurfaceAlpha(t.Display, t.Rect.MinX, t.Rect.MinY, alpha)
		ctx.Restore()
	}
}

// tuneCurrentAlpha renormalizes the current frame's alpha so the additive
// onion stack reaches full opacity in 8-bit math: a one-pixel probe measures
// the accumulated alpha and the current frame's share grows until the probe
// saturates. Iterations are capped because the increment can round to zero.
func (c *Canvas) tuneCurrentAlpha(frames []FrameDesc) {
	white := display.NewSurface(1, 1, c.cfg.Format)
	white.Fill(255, 255, 255, 255)

	probe := display.NewSurface(1, 1, c.cfg.Format)
	pctx := display.NewContext(probe)
	pctx.SetOperator(display.OpAdd)
	for _, f := range frames[:len(frames)-1] {
		pctx.PaintSurfaceAlpha(white, 0, 0, f.Alpha)
	}
	baseR, baseG, baseB, baseA := probe.At(0, 0)

	cur := &frames[len(frames)-1]
	for i := 0; i < 32; i++ {
		p := display.NewSurface(1, 1, c.cfg.Format)
		p.Set(0, 0, baseR, baseG, baseB, baseA)
		px := display.NewContext(p)
		px.SetOperator(display.OpAdd)
		px.PaintSurfaceAlpha(white, 0, 0, cur.Alpha)
		_, _, _, a := p.At(0, 0)
		if a >= 255 {
			break
		}
		cur.Alpha += float64(255-a) / 128.0
	}
}

// strokeBorder draws a one-pixel black border just outside the rendered
// frame region.
func (c *Canvas) strokeBorder(ctx *display.Context) {
	w, h := c.currentFrame.Width, c.currentFrame.Height
	ctx.SetSourceRGBA(0, 0, 0, 1)
	ctx.FillRect(geom.NewRectInt(-1, -1, w+1, 0))
	ctx.FillRect(geom.NewRectInt(-1, h, w+1, h+1))
	ctx.FillRect(geom.NewRectInt(-1, 0, 0, h))
	ctx.FillRect(geom.NewRectInt(w, 0, w+1, h))
}

// drawStatusStrip draws one colored cell per timeline frame along the bottom
// edge: white for none, gray for partial, yellow for in-process, black for
// done.
func (c *Canvas) drawStatusStrip(ctx *display.Context, status StatusMap) {
	if len(status) == 0 {
		return
	}
	ids := make([]FrameID, 0, len(status))
	for id := range status {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b FrameID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	strip := image.NewRGBA(image.Rect(0, 0, len(ids), 1))
	for i, id := range ids {
		strip.SetRGBA(i, 0, statusColor(status[id]))
	}

	w := c.currentFrame.Width
	cell := max(w/len(ids), 1)
	ctx.PaintImageScaled(strip, 0, c.currentFrame.Height, w, cell)
}

func statusColor(s FrameStatus) stdcolor.RGBA {
	switch s {
	case StatusPartiallyDone:
		return stdcolor.RGBA{R: 128, G: 128, B: 128, A: 255}
	case StatusInProcess:
		return stdcolor.RGBA{R: 255, G: 255, A: 255}
	case StatusDone:
		return stdcolor.RGBA{A: 255}
	default:
		return stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}
