// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"math"
	"testing"
)

// TestNewTimeCanonical tests reduction and sign normalization, which make
// equal times comparable with == and usable as map keys.
func TestNewTimeCanonical(t *testing.T) {
	tests := []struct {
		name string
		a, b Time
	}{
		{"reduced", NewTime(2, 4), NewTime(1, 2)},
		{"negative denominator", NewTime(1, -2), NewTime(-1, 2)},
		{"both negative", NewTime(-4, -8), NewTime(1, 2)},
		{"integer", NewTime(48, 24), NewTime(2, 1)},
		{"zero", NewTime(0, 5), Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a != tt.b {
				t.Errorf("%v != %v", tt.a, tt.b)
			}
			m := map[Time]int{tt.a: 1}
			if m[tt.b] != 1 {
				t.Errorf("%v and %v are distinct map keys", tt.a, tt.b)
			}
		})
	}
}

// TestNewTimeZeroDenominator tests the panic on an invalid rate.
func TestNewTimeZeroDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTime(1, 0) did not panic")
		}
	}()
	NewTime(1, 0)
}

// TestTimeArithmetic tests Add, Sub and MulInt over mixed denominators.
func TestTimeArithmetic(t *testing.T) {
	if got := NewTime(1, 24).Add(NewTime(1, 12)); got != NewTime(1, 8) {
		t.Errorf("1/24 + 1/12 = %v, want 1/8s", got)
	}
	if got := NewTime(1, 2).Sub(NewTime(1, 3)); got != NewTime(1, 6) {
		t.Errorf("1/2 - 1/3 = %v, want 1/6s", got)
	}
	if got := NewTime(1, 24).MulInt(-48); got != NewTime(-2, 1) {
		t.Errorf("1/24 * -48 = %v, want -2s", got)
	}
	// The zero value behaves as zero seconds.
	if got := (Time{}).Add(NewTime(3, 4)); got != NewTime(3, 4) {
		t.Errorf("0 + 3/4 = %v", got)
	}
	if !(Time{}).IsZero() || NewTime(1, 24).IsZero() {
		t.Error("IsZero misclassified")
	}
}

// TestTimeCmp tests exact ordering across denominators.
func TestTimeCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b Time
		want int
	}{
		{"equal", NewTime(2, 4), NewTime(1, 2), 0},
		{"less", NewTime(1, 24), NewTime(1, 12), -1},
		{"greater", NewTime(-1, 24), NewTime(-1, 12), 1},
		{"zero value", Time{}, NewTime(-1, 2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cmp(tt.b); got != tt.want {
				t.Errorf("(%v).Cmp(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestTimeFloorDiv tests flooring toward minus infinity, which the timeline
// walk relies on for times before the range start.
func TestTimeFloorDiv(t *testing.T) {
	step := NewTime(1, 24)
	tests := []struct {
		name string
		t    Time
		want int64
	}{
		{"exact", NewTime(7, 24), 7},
		{"positive remainder", NewTime(5, 48), 2},
		{"negative exact", NewTime(-1, 24), -1},
		{"negative remainder", NewTime(-1, 48), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.FloorDiv(step); got != tt.want {
				t.Errorf("(%v).FloorDiv(%v) = %d, want %d", tt.t, step, got, tt.want)
			}
		})
	}
	if got := NewTime(1, 1).FloorDiv(NewTime(-1, 2)); got != -2 {
		t.Errorf("1s / -1/2s = %d, want -2", got)
	}
}

// TestTimeSecondsString spot-checks the float view and formatting.
func TestTimeSecondsString(t *testing.T) {
	if got := NewTime(1, 24).Seconds(); math.Abs(got-1.0/24) > 1e-15 {
		t.Errorf("Seconds = %v", got)
	}
	if got := NewTime(2, 1).String(); got != "2s" {
		t.Errorf("String = %q, want 2s", got)
	}
	if got := NewTime(-1, 24).String(); got != "-1/24s" {
		t.Errorf("String = %q, want -1/24s", got)
	}
}

// TestFrameIDLess tests the lexicographic frame ordering.
func TestFrameIDLess(t *testing.T) {
	a := FrameID{Time: NewTime(1, 24), Width: 640, Height: 480}
	b := FrameID{Time: NewTime(1, 12), Width: 320, Height: 240}
	c := FrameID{Time: NewTime(1, 24), Width: 640, Height: 481}

	if !a.Less(b) || b.Less(a) {
		t.Error("time must order before size")
	}
	if !a.Less(c) || c.Less(a) {
		t.Error("equal times must fall back to size ordering")
	}
	if a.Less(a) {
		t.Error("Less must be irreflexive")
	}
}
