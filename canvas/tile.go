// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/inkwell2d/inkwell/display"
	"github.com/inkwell2d/inkwell/geom"
	"github.com/inkwell2d/inkwell/rendering"
	"github.com/inkwell2d/inkwell/surface"
)

// Tile is the unit of caching: one grid-aligned rectangle of one frame.
//
// While the render is in flight, Event is set and Surface holds the raw
// float target. After completion, Event and Surface are cleared and Display
// holds the converted pixels. An evicted tile has all three cleared; a late
// completion callback recognizes that state and drops the notification.
//
// Tile fields are protected by the owning cache's mutex.
type Tile struct {
	Frame   FrameID
	Rect    geom.RectInt
	Surface *surface.Surface
	Display *display.Surface
	Event   *rendering.Event
}

// ByteSize returns the display-format footprint of the tile rectangle,
// the unit of cache accounting.
func (t *Tile) ByteSize() int64 {
	return rectByteSize(t.Rect)
}

func rectByteSize(r geom.RectInt) int64 {
	return 4 * int64(r.Width()) * int64(r.Height())
}
