// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package contour

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inkwell2d/inkwell/geom"
)

// TestExtractAlpha tests both winding rules.
func TestExtractAlpha(t *testing.T) {
	tests := []struct {
		name    string
		cover   float64
		winding Winding
		want    float64
	}{
		{"nonzero half", 0.5, WindingNonZero, 0.5},
		{"nonzero negative", -0.5, WindingNonZero, 0.5},
		{"nonzero saturates", 3.0, WindingNonZero, 1.0},
		{"nonzero zero", 0, WindingNonZero, 0},
		{"evenodd one winding", 1.0, WindingEvenOdd, 1.0},
		{"evenodd two windings", 2.0, WindingEvenOdd, 0.0},
		{"evenodd one and a half", 1.5, WindingEvenOdd, 0.5},
		{"evenodd three", 3.0, WindingEvenOdd, 1.0},
		{"evenodd negative", -1.5, WindingEvenOdd, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAlpha(tt.cover, tt.winding)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ExtractAlpha(%v, %v) = %v, want %v",
					tt.cover, tt.winding, got, tt.want)
			}
		})
	}
}

// TestExtractAlphaEvenOddPeriodic checks 2-periodicity in the crossing count.
func TestExtractAlphaEvenOddPeriodic(t *testing.T) {
	for c := -4.0; c <= 4.0; c += 0.125 {
		a := ExtractAlpha(c, WindingEvenOdd)
		b := ExtractAlpha(c+2, WindingEvenOdd)
		if math.Abs(a-b) > 1e-12 {
			t.Fatalf("ExtractAlpha(%v) = %v, ExtractAlpha(%v) = %v", c, a, c+2, b)
		}
	}
}

// TestPolyspanEmptyWindow tests the degenerate-window sink behavior.
func TestPolyspanEmptyWindow(t *testing.T) {
	p, err := NewPolyspan(0, 0, 0, 5)
	if !errors.Is(err, ErrEmptyWindow) {
		t.Fatalf("NewPolyspan error = %v, want ErrEmptyWindow", err)
	}
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	p.Close()
	p.SortMarks()
	if got := len(p.Covers()); got != 0 {
		t.Errorf("degenerate polyspan emitted %d marks", got)
	}
}

// TestPolyspanSquareMarks tests the exact mark set for an axis-aligned square.
func TestPolyspanSquareMarks(t *testing.T) {
	p, err := NewPolyspan(0, 0, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	p.MoveTo(0, 0)
	p.LineTo(2, 0)
	p.LineTo(2, 2)
	p.LineTo(0, 2)
	p.Close()
	p.SortMarks()

	// The right edge lies on the window border and is pinned into the last
	// pixel column with a full x fraction; the left edge contributes pure
	// cover. Horizontal edges emit nothing.
	want := []CoverMark{
		{X: 0, Y: 0, Area: 0, Cover: -1},
		{X: 1, Y: 0, Area: 1, Cover: 1},
		{X: 0, Y: 1, Area: 0, Cover: -1},
		{X: 1, Y: 1, Area: 1, Cover: 1},
	}
	if diff := cmp.Diff(want, p.Covers()); diff != "" {
		t.Errorf("marks mismatch (-want +got):\n%s", diff)
	}
}

// TestPolyspanTriangleMarks tests the unit right triangle of the single
// pixel case: the diagonal contributes half the pixel area.
func TestPolyspanTriangleMarks(t *testing.T) {
	p, err := NewPolyspan(0, 0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(0, 1)
	p.Close()
	p.SortMarks()

	covers := p.Covers()
	area, cover := 0.0, 0.0
	for _, m := range covers {
		if m.X != 0 || m.Y != 0 {
			t.Fatalf("mark outside pixel (0,0): %+v", m)
		}
		area += m.Area
		cover += m.Cover
	}
	if math.Abs(cover) > 1e-12 {
		t.Errorf("closed contour cover sum = %v, want 0", cover)
	}
	if math.Abs(area-0.5) > 1e-12 {
		t.Errorf("triangle area sum = %v, want 0.5", area)
	}
}

// TestPolyspanScanlineCoverSum checks that covers along each scan line of a
// fully interior closed contour sum to zero.
func TestPolyspanScanlineCoverSum(t *testing.T) {
	p, err := NewPolyspan(0, 0, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	p.MoveTo(1.3, 1.2)
	p.LineTo(6.7, 2.1)
	p.LineTo(4.2, 6.8)
	p.Close()
	p.SortMarks()

	sums := map[int]float64{}
	for _, m := range p.Covers() {
		sums[m.Y] += m.Cover
	}
	for y, s := range sums {
		if math.Abs(s) > 1e-9 {
			t.Errorf("scan line %d cover sum = %v, want 0", y, s)
		}
	}
}

// TestPolyspanCalcBounds checks the bounds contain every mark.
func TestPolyspanCalcBounds(t *testing.T) {
	p, err := NewPolyspan(0, 0, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	p.MoveTo(2.5, 3.5)
	p.ConicTo(12.5, 4.5, 8, -2)
	p.LineTo(5, 14.2)
	p.Close()
	p.SortMarks()

	b := p.CalcBounds()
	for _, m := range p.Covers() {
		if !b.Contains(m.X, m.Y) {
			t.Errorf("mark (%d,%d) outside bounds %+v", m.X, m.Y, b)
		}
	}
	window := p.Window()
	if b.Intersect(window) != b {
		t.Errorf("bounds %+v escape window %+v", b, window)
	}
}

// TestPolyspanTranslationEquivariance builds the same path directly and
// through an integer translation; the marks must shift exactly.
func TestPolyspanTranslationEquivariance(t *testing.T) {
	// Dyadic coordinates keep the translated arithmetic bit-identical.
	var chunks List
	chunks.MoveTo(1.25, 0.75)
	chunks.ConicTo(4.375, 5.125, 3.0, 0.25)
	chunks.CubicTo(0.875, 3.875, 3.125, 6.0, 0.125, 5.25)
	chunks.Close()

	const dx, dy = 3, 2

	base, err := NewPolyspan(0, 0, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	BuildPolyspan(chunks, geom.Identity(), base)
	base.SortMarks()

	moved, err := NewPolyspan(dx, dy, 8+dx, 8+dy)
	if err != nil {
		t.Fatal(err)
	}
	BuildPolyspan(chunks, geom.Translate(dx, dy), moved)
	moved.SortMarks()

	got := moved.Covers()
	want := base.Covers()
	if len(got) != len(want) {
		t.Fatalf("mark count %d, want %d", len(got), len(want))
	}
	for i := range want {
		w := want[i]
		g := got[i]
		if g.X != w.X+dx || g.Y != w.Y+dy ||
			math.Abs(g.Area-w.Area) > 1e-9 || math.Abs(g.Cover-w.Cover) > 1e-9 {
			t.Fatalf("mark %d = %+v, want %+v shifted by (%d,%d)", i, g, w, dx, dy)
		}
	}
}

// TestPolyspanWindowPinning checks that geometry outside the horizontal
// window range still contributes winding at the border.
func TestPolyspanWindowPinning(t *testing.T) {
	p, err := NewPolyspan(0, 0, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	// Rectangle sticking far out on the left; covers pixel column 0 only.
	p.MoveTo(-5, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 2)
	p.LineTo(-5, 2)
	p.Close()
	p.SortMarks()

	for _, m := range p.Covers() {
		if m.X < 0 || m.X >= 2 || m.Y < 0 || m.Y >= 2 {
			t.Fatalf("mark outside window: %+v", m)
		}
	}

	// Per scan line: pinned left edge cover cancels the interior right edge.
	sums := map[int]float64{}
	for _, m := range p.Covers() {
		sums[m.Y] += m.Cover
	}
	for y := 0; y < 2; y++ {
		if math.Abs(sums[y]) > 1e-12 {
			t.Errorf("scan line %d cover sum = %v, want 0", y, sums[y])
		}
	}
}

// TestPolyspanCurveFlattening checks a curve emits more than one segment and
// stays within its hull.
func TestPolyspanCurveFlattening(t *testing.T) {
	p, err := NewPolyspan(0, 0, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	p.MoveTo(1, 8)
	p.ConicTo(15, 8, 8, 0)
	p.LineTo(1, 8)
	p.SortMarks()

	covers := p.Covers()
	if len(covers) < 4 {
		t.Fatalf("curve flattened to too few marks: %d", len(covers))
	}
	for _, m := range covers {
		if m.Y > 8 {
			t.Errorf("mark %+v below the curve hull", m)
		}
	}
}
