// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Rect is an axis-aligned rectangle in user-space coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect returns the rectangle spanning the two corners.
func NewRect(minx, miny, maxx, maxy float64) Rect {
	return Rect{MinX: minx, MinY: miny, MaxX: maxx, MaxY: maxy}
}

// Valid reports whether the rectangle has positive area.
func (r Rect) Valid() bool {
	return r.MinX < r.MaxX && r.MinY < r.MaxY
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// RectInt is an axis-aligned rectangle in integer pixel coordinates.
// Min is inclusive, Max is exclusive, matching image.Rectangle conventions.
type RectInt struct {
	MinX, MinY int
	MaxX, MaxY int
}

// NewRectInt returns the rectangle spanning the two corners.
func NewRectInt(minx, miny, maxx, maxy int) RectInt {
	return RectInt{MinX: minx, MinY: miny, MaxX: maxx, MaxY: maxy}
}

// Valid reports whether the rectangle has positive area.
func (r RectInt) Valid() bool {
	return r.MinX < r.MaxX && r.MinY < r.MaxY
}

// Width returns MaxX - MinX.
func (r RectInt) Width() int { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r RectInt) Height() int { return r.MaxY - r.MinY }

// Translate returns the rectangle shifted by v.
func (r RectInt) Translate(v VectorInt) RectInt {
	return RectInt{r.MinX + v[0], r.MinY + v[1], r.MaxX + v[0], r.MaxY + v[1]}
}

// Intersect returns the intersection of r and o.
// The result is not Valid when the rectangles do not overlap.
func (r RectInt) Intersect(o RectInt) RectInt {
	return RectInt{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r RectInt) Union(o RectInt) RectInt {
	if !r.Valid() {
		return o
	}
	if !o.Valid() {
		return r
	}
	return RectInt{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Overlaps reports whether r and o share any area.
func (r RectInt) Overlaps(o RectInt) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r RectInt) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// IntFloor rounds x down to a multiple of base. Base must be positive.
func IntFloor(x, base int) int {
	m := x % base
	if m < 0 {
		return x - base - m
	}
	return x - m
}

// IntCeil rounds x up to a multiple of base. Base must be positive.
func IntCeil(x, base int) int {
	m := x % base
	if m > 0 {
		return x + base - m
	}
	return x - m
}

// SubtractRect removes sub from every rectangle in rects, splitting
// intersecting rectangles into up to four remainders. Degenerate entries
// are dropped. The input slice is reused.
func SubtractRect(rects []RectInt, sub RectInt) []RectInt {
	if !sub.Valid() {
		return rects
	}
	out := rects[:0]
	var pending []RectInt
	add := func(r RectInt) {
		if r.Valid() {
			pending = append(pending, r)
		}
	}
	for _, r := range rects {
		if !r.Overlaps(sub) {
			add(r)
			continue
		}
		// Split into the bands around the intersection.
		if r.MinY < sub.MinY {
			add(RectInt{r.MinX, r.MinY, r.MaxX, sub.MinY})
		}
		if sub.MaxY < r.MaxY {
			add(RectInt{r.MinX, sub.MaxY, r.MaxX, r.MaxY})
		}
		midMinY := max(r.MinY, sub.MinY)
		midMaxY := min(r.MaxY, sub.MaxY)
		if r.MinX < sub.MinX {
			add(RectInt{r.MinX, midMinY, sub.MinX, midMaxY})
		}
		if sub.MaxX < r.MaxX {
			add(RectInt{sub.MaxX, midMinY, r.MaxX, midMaxY})
		}
	}
	return append(out, pending...)
}

// MergeRects coalesces rectangles that share a full edge, repeating until no
// further merge is possible. Degenerate entries are dropped.
func MergeRects(rects []RectInt) []RectInt {
	out := rects[:0]
	for _, r := range rects {
		if r.Valid() {
			out = append(out, r)
		}
	}
	for {
		merged := false
		for i := 0; i < len(out) && !merged; i++ {
			for j := i + 1; j < len(out); j++ {
				if m, ok := mergePair(out[i], out[j]); ok {
					out[i] = m
					out[j] = out[len(out)-1]
					out = out[:len(out)-1]
					merged = true
					break
				}
			}
		}
		if !merged {
			return out
		}
	}
}

// mergePair combines two rectangles when their union is itself a rectangle:
// equal vertical extent with touching or overlapping horizontal spans, or the
// transposed case.
func mergePair(a, b RectInt) (RectInt, bool) {
	if a.MinY == b.MinY && a.MaxY == b.MaxY &&
		a.MinX <= b.MaxX && b.MinX <= a.MaxX {
		return RectInt{min(a.MinX, b.MinX), a.MinY, max(a.MaxX, b.MaxX), a.MaxY}, true
	}
	if a.MinX == b.MinX && a.MaxX == b.MaxX &&
		a.MinY <= b.MaxY && b.MinY <= a.MaxY {
		return RectInt{a.MinX, min(a.MinY, b.MinY), a.MaxX, max(a.MaxY, b.MaxY)}, true
	}
	return RectInt{}, false
}
