// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/inkwell2d/inkwell"
	"github.com/inkwell2d/inkwell/display"
	"github.com/inkwell2d/inkwell/geom"
	"github.com/inkwell2d/inkwell/rendering"
	"github.com/inkwell2d/inkwell/surface"
)

// Canvas is the tile cache and render scheduler. It keeps tiles covering the
// visible viewport and a neighborhood of frames rendered within a memory
// budget, evicting distant frames and prefetching neighbors when idle.
//
// All exported methods are safe for concurrent use. A single mutex protects
// the tile map, the size counter, and the onion-frame state; it is never held
// while calling into the task runner or while converting pixels.
type Canvas struct {
	mu       sync.Mutex
	cfg      Config
	eval     Evaluator
	area     WorkArea
	renderer *rendering.Renderer
	post     Poster

	tiles         map[FrameID][]*Tile
	tilesSize     int64
	onionFrames   []FrameDesc
	visibleFrames map[FrameID]struct{}
	currentFrame  FrameID
	frameDuration Time
	drawQueued    bool
}

// pendingTask is a task built under the mutex, dispatched after release.
type pendingTask struct {
	task *rendering.Task
	ev   *rendering.Event
}

// New creates a cache over the given scene evaluator, work area, task runner
// and UI poster.
func New(eval Evaluator, area WorkArea, renderer *rendering.Renderer, post Poster, cfg Config) *Canvas {
	return &Canvas{
		cfg:           cfg.withDefaults(),
		eval:          eval,
		area:          area,
		renderer:      renderer,
		post:          post,
		tiles:         make(map[FrameID][]*Tile),
		visibleFrames: make(map[FrameID]struct{}),
	}
}

// TilesSize returns the cache size in bytes.
func (c *Canvas) TilesSize() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tilesSize
}

// OnionFrames returns a copy of the current onion-frame schedule.
// The last entry is the current frame.
func (c *Canvas) OnionFrames() []FrameDesc {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.onionFrames)
}

// CurrentFrame returns the frame id of the current view.
func (c *Canvas) CurrentFrame() FrameID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentFrame
}

// buildOnionFrames recomputes currentFrame, frameDuration, onionFrames and
// visibleFrames from the work area and evaluator.
// The mutex must be already locked.
func (c *Canvas) buildOnionFrames() {
	w, h := c.area.Size()
	baseTime := c.area.Time()
	enabled, past, future := c.area.OnionSkin()
	past = max(past, 0)
	future = max(future, 0)

	c.currentFrame = FrameID{Time: baseTime, Width: w, Height: h}
	if num, den := c.eval.FrameRate(); num > 0 && den > 0 {
		c.frameDuration = NewTime(int64(den), int64(num))
	} else {
		c.frameDuration = Time{}
	}
	t0, t1 := c.eval.TimeRange()

	c.onionFrames = c.onionFrames[:0]
	if enabled && !c.frameDuration.IsZero() && (past > 0 || future > 0) {
		const baseAlpha, currentAlpha = 1.0, 0.5
		for i := past; i > 0; i-- {
			t := baseTime.Sub(c.frameDuration.MulInt(int64(i)))
			alpha := baseAlpha + float64(past-i+1)/float64(past+1)
			if t.Cmp(t0) >= 0 && t.Cmp(t1) <= 0 {
				c.onionFrames = append(c.onionFrames,
					FrameDesc{ID: FrameID{Time: t, Width: w, Height: h}, Alpha: alpha})
			}
		}
		for i := future; i > 0; i-- {
			t := baseTime.Add(c.frameDuration.MulInt(int64(i)))
			alpha := baseAlpha + float64(future-i+1)/float64(future+1)
			if t.Cmp(t0) >= 0 && t.Cmp(t1) <= 0 {
				c.onionFrames = append(c.onionFrames,
					FrameDesc{ID: FrameID{Time: t, Width: w, Height: h}, Alpha: alpha})
			}
		}
		c.onionFrames = append(c.onionFrames,
			FrameDesc{ID: c.currentFrame, Alpha: baseAlpha + 1.0 + currentAlpha})

		sum := 0.0
		for _, f := range c.onionFrames {
			sum += f.Alpha
		}
		if sum > 1 {
			for i := range c.onionFrames {
				c.onionFrames[i].Alpha /= sum
			}
		}
	} else {
		c.onionFrames = append(c.onionFrames, FrameDesc{ID: c.currentFrame, Alpha: 1})
	}

	clear(c.visibleFrames)
	for _, f := range c.onionFrames {
		c.visibleFrames[f.ID] = struct{}{}
	}
}

// insertTile adds a tile to its frame's list and grows the size counter.
// The mutex must be already locked.
func (c *Canvas) insertTile(tile *Tile) {
	c.tiles[tile.Frame] = append(c.tiles[tile.Frame], tile)
	c.tilesSize += tile.ByteSize()
}

// eraseTile detaches a tile's buffers and shrinks the size counter. A still
// pending event is collected for cancellation outside the mutex.
// The mutex must be already locked.
func (c *Canvas) eraseTile(tile *Tile, events *[]*rendering.Event) {
	if tile.Event != nil {
		*events = append(*events, tile.Event)
	}
	c.tilesSize -= tile.ByteSize()
	tile.Event = nil
	tile.Surface = nil
	tile.Display = nil
}

// enqueueRenderFrame diffs the visible viewport against the frame's cached
// tiles and creates a tile task for every missing grid-aligned rectangle.
// It reports whether anything was scheduled.
// The mutex must be already locked.
func (c *Canvas) enqueueRenderFrame(id FrameID, pending *[]pendingTask) bool {
	step := c.cfg.TileGridStep
	windowRect := c.area.WindowRect()
	w, h := c.area.Size()
	fullRect := geom.NewRectInt(0, 0, w, h)

	// Find the regions not covered yet.
	rects := []geom.RectInt{windowRect}
	for _, t := range c.tiles[id] {
		rects = geom.SubtractRect(rects, t.Rect)
	}
	rects = geom.MergeRects(rects)
	if len(rects) == 0 {
		return false
	}

	// Flip transform when the document corners are swapped along an axis.
	tl, br := c.eval.Bounds()
	flip := geom.Identity()
	flipped := false
	if tl[0] > br[0] {
		flip.M00, flip.M20 = -1, tl[0]+br[0]
		tl[0], br[0] = br[0], tl[0]
		flipped = true
	}
	if tl[1] > br[1] {
		flip.M11, flip.M21 = -1, tl[1]+br[1]
		tl[1], br[1] = br[1], tl[1]
		flipped = true
	}

	task := c.eval.TaskAtTime(id.Time)
	if task != nil && flipped {
		task = rendering.NewTransformTask(flip, task)
	}
	if task == nil {
		task = rendering.NewTask("blank")
	}

	// User-space size of one pixel.
	pw := (br[0] - tl[0]) / float64(w)
	ph := (br[1] - tl[1]) / float64(h)

	for _, r := range rects {
		r = geom.RectInt{
			MinX: geom.IntFloor(r.MinX, step),
			MinY: geom.IntFloor(r.MinY, step),
			MaxX: geom.IntCeil(r.MaxX, step),
			MaxY: geom.IntCeil(r.MaxY, step),
		}.Intersect(fullRect)
		if !r.Valid() {
			continue
		}

		tileTask := task.CloneRecursive()
		tileTask.TargetSurface = surface.New(r.Width(), r.Height())
		tileTask.TargetRect = geom.NewRectInt(0, 0, r.Width(), r.Height())
		tileTask.SourceRect = geom.NewRect(
			tl[0]+float64(r.MinX)*pw, tl[1]+float64(r.MinY)*ph,
			tl[0]+float64(r.MaxX)*pw, tl[1]+float64(r.MaxY)*ph)

		tile := &Tile{Frame: id, Rect: r, Surface: tileTask.TargetSurface}
		ev := rendering.NewEvent()
		tile.Event = ev
		ev.OnFinish(func(ok bool) { c.onTileFinished(ok, tile) })

		c.insertTile(tile)
		*pending = append(*pending, pendingTask{task: tileTask, ev: ev})
	}
	return true
}

// EnqueueRender schedules rendering for every missing region of the onion
// frames, evicts distant frames over the hard limit, and prefetches neighbor
// frames while the cache is below the soft limit and nothing is pending.
// Idempotent; call whenever the view may need new tiles.
func (c *Canvas) EnqueueRender() {
	var pending []pendingTask
	var cancel []*rendering.Event

	c.mu.Lock()
	windowRect := c.area.WindowRect()
	c.buildOnionFrames()

	if windowRect.Valid() {
		enqueued := 0
		for _, f := range c.onionFrames {
			if c.enqueueRenderFrame(f.ID, &pending) {
				enqueued++
			}
		}

		c.removeExtraTiles(&cancel)

		for _, list := range c.tiles {
			for _, t := range list {
				if t.Event != nil {
					enqueued++
				}
			}
		}

		// Speculative prefetch: walk outward from the current frame,
		// alternating directions by weighted step count.
		if !c.frameDuration.IsZero() {
			t0, t1 := c.eval.TimeRange()
			future, past := 0, 0
			frameSize := rectByteSize(windowRect)
			for c.tilesSize+frameSize < c.cfg.SoftLimit && enqueued < 1 {
				futureTime := c.currentFrame.Time.Add(c.frameDuration.MulInt(int64(future)))
				futureExists := futureTime.Cmp(t0) >= 0 && futureTime.Cmp(t1) <= 0
				pastTime := c.currentFrame.Time.Sub(c.frameDuration.MulInt(int64(past)))
				pastExists := pastTime.Cmp(t0) >= 0 && pastTime.Cmp(t1) <= 0
				if !futureExists && !pastExists {
					break
				}
				if !pastExists || (futureExists &&
					c.cfg.WeightFuture*float64(future) < c.cfg.WeightPast*float64(past)) {
					id := FrameID{Time: futureTime, Width: c.currentFrame.Width, Height: c.currentFrame.Height}
					if c.enqueueRenderFrame(id, &pending) {
						enqueued++
					}
					future++
				} else {
					id := FrameID{Time: pastTime, Width: c.currentFrame.Width, Height: c.currentFrame.Height}
					if c.enqueueRenderFrame(id, &pending) {
						enqueued++
					}
					past++
				}
			}
		}
	}
	c.mu.Unlock()

	for _, p := range pending {
		c.renderer.EnqueueTask(p.task, p.ev, false)
	}
	c.renderer.Cancel(cancel)
}

// removeExtraTiles evicts non-visible frames, heaviest first, until the
// cache fits the hard limit. The mutex must be already locked.
func (c *Canvas) removeExtraTiles(events *[]*rendering.Event) {
	if c.tilesSize <= c.cfg.HardLimit {
		c.dropEmptyFrames()
		return
	}

	type frameWeight struct {
		id     FrameID
		weight float64
	}
	var victims []frameWeight

	currentZoom := math.Sqrt(float64(c.currentFrame.Width) * float64(c.currentFrame.Height))
	for id := range c.tiles {
		if _, visible := c.visibleFrames[id]; visible {
			continue
		}
		weight := 0.0
		if !c.frameDuration.IsZero() {
			df := id.Time.Sub(c.currentFrame.Time).Seconds() / c.frameDuration.Seconds()
			if df > 0 {
				weight += df * c.cfg.WeightFuture
			} else {
				weight += df * c.cfg.WeightPast
			}
		}
		if currentZoom > 0 {
			zoomStep := math.Log(math.Sqrt(float64(id.Width)*float64(id.Height)) / currentZoom)
			if zoomStep > 0 {
				weight += zoomStep * c.cfg.WeightZoomIn
			} else {
				weight += zoomStep * c.cfg.WeightZoomOut
			}
		}
		victims = append(victims, frameWeight{id: id, weight: weight})
	}

	slices.SortFunc(victims, func(a, b frameWeight) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		case a.id.Less(b.id):
			return -1
		case b.id.Less(a.id):
			return 1
		default:
			return 0
		}
	})

	for _, v := range victims {
		if c.tilesSize <= c.cfg.HardLimit {
			break
		}
		list := c.tiles[v.id]
		i := 0
		for ; i < len(list) && c.tilesSize > c.cfg.HardLimit; i++ {
			c.eraseTile(list[i], events)
		}
		c.tiles[v.id] = list[i:]
	}
	c.dropEmptyFrames()

	if c.tilesSize > c.cfg.HardLimit {
		inkwell.Logger().Debug("cache over hard limit, all frames visible",
			slog.Int64("size", c.tilesSize),
			slog.Int64("hard_limit", c.cfg.HardLimit))
	}
}

// dropEmptyFrames removes frames whose tile list became empty.
// The mutex must be already locked.
func (c *Canvas) dropEmptyFrames() {
	for id, list := range c.tiles {
		if len(list) == 0 {
			delete(c.tiles, id)
		}
	}
}

// WaitRender blocks until every tile of every onion frame has finished.
func (c *Canvas) WaitRender() {
	var events []*rendering.Event
	c.mu.Lock()
	for _, f := range c.onionFrames {
		for _, t := range c.tiles[f.ID] {
			if t.Event != nil {
				events = append(events, t.Event)
			}
		}
	}
	c.mu.Unlock()
	for _, ev := range events {
		ev.Wait()
	}
}

// ClearRender cancels all outstanding work and drops every tile.
func (c *Canvas) ClearRender() {
	var cancel []*rendering.Event
	c.mu.Lock()
	for _, list := range c.tiles {
		for _, t := range list {
			c.eraseTile(t, &cancel)
		}
	}
	clear(c.tiles)
	c.mu.Unlock()
	c.renderer.Cancel(cancel)
}

// calcFrameStatus classifies how much of the viewport the frame's finished
// tiles cover. The mutex must be already locked.
func (c *Canvas) calcFrameStatus(id FrameID, windowRect geom.RectInt) FrameStatus {
	list, ok := c.tiles[id]
	if !ok || len(list) == 0 {
		return StatusNone
	}

	rects := []geom.RectInt{windowRect}
	for _, t := range list {
		if t.Event != nil {
			return StatusInProcess
		}
		if t.Display != nil {
			rects = geom.SubtractRect(rects, t.Rect)
		}
	}
	rects = geom.MergeRects(rects)

	if len(rects) == 1 && rects[0] == windowRect {
		return StatusNone
	}
	if len(rects) == 0 {
		return StatusDone
	}
	return StatusPartiallyDone
}

// RenderStatus fills out with the status of the current frame and of every
// whole frame in the timeline at the current viewport size.
func (c *Canvas) RenderStatus(out StatusMap) {
	c.mu.Lock()
	defer c.mu.Unlock()

	windowRect := c.area.WindowRect()
	clear(out)

	out[c.currentFrame] = c.calcFrameStatus(c.currentFrame, windowRect)

	if c.frameDuration.IsZero() {
		return
	}
	t0, t1 := c.eval.TimeRange()
	frame := t0.Sub(c.currentFrame.Time).FloorDiv(c.frameDuration)
	for {
		t := c.currentFrame.Time.Add(c.frameDuration.MulInt(frame))
		if t.Cmp(t1) > 0 {
			break
		}
		if frame != 0 && t.Cmp(t0) >= 0 {
			id := FrameID{Time: t, Width: c.currentFrame.Width, Height: c.currentFrame.Height}
			out[id] = c.calcFrameStatus(id, windowRect)
		}
		frame++
	}
}

// onTileFinished handles a tile completion. It may run on any worker
// goroutine. An already evicted tile is recognized by its cleared fields and
// the notification is dropped.
func (c *Canvas) onTileFinished(success bool, tile *Tile) {
	c.mu.Lock()
	if tile.Event == nil && tile.Surface == nil && tile.Display == nil {
		c.mu.Unlock()
		return
	}
	tile.Event = nil
	src := tile.Surface
	tile.Surface = nil
	rect := tile.Rect
	c.mu.Unlock()

	// Conversion runs without the cache mutex; the callback's reference
	// keeps the tile alive even if it is evicted meanwhile.
	if success {
		disp, err := display.Convert(src, rect.Width(), rect.Height(), c.cfg.Format, c.cfg.Gamma)
		if err != nil {
			inkwell.Logger().Warn("tile conversion failed",
				slog.Any("frame", tile.Frame.Time),
				slog.Any("error", err))
			disp.PaintDiagnostic()
		}
		c.mu.Lock()
		tile.Display = disp
		c.mu.Unlock()
	}

	c.post.Post(c.onPostTileFinished)
}

// onPostTileFinished runs on the UI thread after a tile completion: when
// nothing is pending anymore it re-enters EnqueueRender so more speculative
// frames can be scheduled, and requests a redraw once.
func (c *Canvas) onPostTileFinished() {
	allFinished := true
	c.mu.Lock()
scan:
	for _, list := range c.tiles {
		for _, t := range list {
			if t.Event != nil {
				allFinished = false
				break scan
			}
		}
	}
	queueDraw := !c.drawQueued
	if queueDraw {
		c.drawQueued = true
	}
	c.mu.Unlock()

	if allFinished {
		c.EnqueueRender()
	}
	if queueDraw {
		c.area.QueueDraw()
	}
}
