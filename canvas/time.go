// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas provides the tile cache and render scheduler behind the
// interactive canvas: it keeps the visible viewport and a neighborhood of
// animation frames rendered within a memory budget, and composites the cached
// tiles with onion skinning on redraw.
package canvas

import "fmt"

// Time is an exact timestamp in seconds, stored as a reduced rational so
// frame times computed from a rational frame rate compare exactly and can
// serve as map keys. The zero value is zero seconds.
type Time struct {
	num int64
	den int64
}

// NewTime returns num/den seconds in canonical form.
// It panics when den is zero.
func NewTime(num, den int64) Time {
	if den == 0 {
		panic("canvas: zero time denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Time{num: num, den: den}
}

// Seconds returns the time as a float.
func (t Time) Seconds() float64 {
	if t.den == 0 {
		return 0
	}
	return float64(t.num) / float64(t.den)
}

// IsZero reports whether t is zero seconds.
func (t Time) IsZero() bool { return t.num == 0 }

func (t Time) canon() (num, den int64) {
	if t.den == 0 {
		return 0, 1
	}
	return t.num, t.den
}

// Add returns t + o.
func (t Time) Add(o Time) Time {
	a, b := t.canon()
	c, d := o.canon()
	return NewTime(a*d+c*b, b*d)
}

// Sub returns t - o.
func (t Time) Sub(o Time) Time {
	a, b := t.canon()
	c, d := o.canon()
	return NewTime(a*d-c*b, b*d)
}

// MulInt returns t scaled by an integer factor.
func (t Time) MulInt(n int64) Time {
	a, b := t.canon()
	return NewTime(a*n, b)
}

// Cmp compares t and o, returning -1, 0 or +1.
func (t Time) Cmp(o Time) int {
	a, b := t.canon()
	c, d := o.canon()
	l, r := a*d, c*b
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// FloorDiv returns floor(t / o) for non-zero o.
func (t Time) FloorDiv(o Time) int64 {
	a, b := t.canon()
	c, d := o.canon()
	if c == 0 {
		panic("canvas: time division by zero")
	}
	num, den := a*d, b*c
	if den < 0 {
		num, den = -num, -den
	}
	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	return q
}

// String formats the time for logging.
func (t Time) String() string {
	num, den := t.canon()
	if den == 1 {
		return fmt.Sprintf("%ds", num)
	}
	return fmt.Sprintf("%d/%ds", num, den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
