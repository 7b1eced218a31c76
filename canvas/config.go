// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/inkwell2d/inkwell/color"
	"github.com/inkwell2d/inkwell/display"
	"github.com/inkwell2d/inkwell/geom"
	"github.com/inkwell2d/inkwell/rendering"
)

// Evaluator turns scene times into render task trees. Implemented by the
// document model; the cache never inspects the scene itself.
type Evaluator interface {
	// TaskAtTime returns a fresh task tree rendering the scene at t, or nil
	// when there is nothing to render. The tree must be safe to clone.
	TaskAtTime(t Time) *rendering.Task

	// Bounds returns the user-space corners mapped to the viewport's
	// top-left and bottom-right. Swapped components request a flip.
	Bounds() (tl, br geom.Vector)

	// TimeRange returns the inclusive timeline bounds.
	TimeRange() (t0, t1 Time)

	// FrameRate returns the frame rate as a rational num/den frames
	// per second. A non-positive rate disables frame stepping.
	FrameRate() (num, den int)
}

// WorkArea is the view the cache renders for: viewport geometry, current
// scene time, onion-skin settings, and the redraw request.
type WorkArea interface {
	// Size returns the full rendered frame size in pixels.
	Size() (w, h int)

	// WindowRect returns the visible part of the frame in pixels.
	WindowRect() geom.RectInt

	// WindowOffset returns the frame origin in display coordinates.
	WindowOffset() geom.VectorInt

	// Time returns the current scene time.
	Time() Time

	// OnionSkin returns whether onion skinning is enabled and how many
	// past and future neighbor frames to overlay.
	OnionSkin() (enabled bool, past, future int)

	// QueueDraw asks the host to schedule a redraw.
	QueueDraw()
}

// Poster schedules a function on the UI thread. Deferred completion
// handling goes through it so the cache stays event-loop agnostic.
type Poster interface {
	Post(fn func())
}

// PosterFunc adapts a function to the Poster interface.
type PosterFunc func(fn func())

// Post calls f(fn).
func (f PosterFunc) Post(fn func()) { f(fn) }

const (
	// DefaultTileGridStep is the tile grid alignment in pixels.
	DefaultTileGridStep = 64

	// DefaultSoftLimit stops speculative prefetch.
	DefaultSoftLimit = 512 << 20

	// DefaultHardMargin above the soft limit triggers eviction.
	DefaultHardMargin = 128 << 20
)

// Config carries the cache tunables. The zero value means defaults.
type Config struct {
	// SoftLimit is the cache size at which speculative frames stop being
	// enqueued, in bytes.
	SoftLimit int64

	// HardLimit is the cache size eviction reduces the cache to, in bytes.
	// Zero means SoftLimit plus 128 MiB.
	HardLimit int64

	// Eviction weights; a higher weight makes a frame a preferred victim.
	WeightFuture  float64
	WeightPast    float64
	WeightZoomIn  float64
	WeightZoomOut float64

	// TileGridStep is the tile alignment in pixels. Zero means 64.
	TileGridStep int

	// Gamma is the display gamma curve applied during conversion.
	Gamma color.Gamma

	// Format is the display pixel layout. The zero value selects the
	// host-endianness layout.
	Format display.PixelFormat
}

func (c Config) withDefaults() Config {
	if c.SoftLimit <= 0 {
		c.SoftLimit = DefaultSoftLimit
	}
	if c.HardLimit <= 0 {
		c.HardLimit = c.SoftLimit + DefaultHardMargin
	}
	if c.WeightFuture <= 0 {
		c.WeightFuture = 1
	}
	if c.WeightPast <= 0 {
		c.WeightPast = 2
	}
	if c.WeightZoomIn <= 0 {
		c.WeightZoomIn = 1024
	}
	if c.WeightZoomOut <= 0 {
		c.WeightZoomOut = 1024
	}
	if c.TileGridStep <= 0 {
		c.TileGridStep = DefaultTileGridStep
	}
	if c.Format == 0 {
		c.Format = display.HostFormat()
	}
	return c
}
