// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

// FrameID identifies one rendered frame: a scene time at a viewport size.
// Frames at the same time but different sizes are cached independently.
type FrameID struct {
	Time   Time
	Width  int
	Height int
}

// Less orders frame ids lexicographically by (time, width, height).
func (id FrameID) Less(o FrameID) bool {
	if c := id.Time.Cmp(o.Time); c != 0 {
		return c < 0
	}
	if id.Width != o.Width {
		return id.Width < o.Width
	}
	return id.Height < o.Height
}

// FrameDesc parameterizes one layer of the onion-skin composition.
type FrameDesc struct {
	ID    FrameID
	Alpha float64
}

// FrameStatus classifies how much of a frame's viewport is cached,
// for the timeline status strip.
type FrameStatus int

const (
	// StatusNone means no usable tiles exist for the frame.
	StatusNone FrameStatus = iota
	// StatusPartiallyDone means some but not all of the viewport is cached.
	StatusPartiallyDone
	// StatusInProcess means at least one tile render is still in flight.
	StatusInProcess
	// StatusDone means cached tiles cover the whole viewport.
	StatusDone
)

// String returns the status name.
func (s FrameStatus) String() string {
	switch s {
	case StatusPartiallyDone:
		return "partial"
	case StatusInProcess:
		return "in-process"
	case StatusDone:
		return "done"
	default:
		return "none"
	}
}

// StatusMap holds the per-frame status snapshot consumed by the timeline.
type StatusMap map[FrameID]FrameStatus
