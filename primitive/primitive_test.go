// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package primitive

import (
	"testing"

	"github.com/vangdfang/libcutter/geom"
)

type recorder struct {
	moves  []geom.Point
	cuts   []geom.Point
	curves [][4]geom.Point
}

func (r *recorder) MoveTo(p geom.Point) bool {
	r.moves = append(r.moves, p)
	return true
}

func (r *recorder) CutTo(p geom.Point) bool {
	r.cuts = append(r.cuts, p)
	return true
}

func (r *recorder) CurveTo(p0, p1, p2, p3 geom.Point) bool {
	r.curves = append(r.curves, [4]geom.Point{p0, p1, p2, p3})
	return true
}

// S4 — SVG quadratic to cubic.
func TestQuadraticElevation(t *testing.T) {
	var rec recorder
	q0 := geom.Pt(0, 0)
	q1 := geom.Pt(6, 9)
	q2 := geom.Pt(12, 0)
	Quadratic(&rec, q0, q1, q2)

	if len(rec.curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(rec.curves))
	}
	c := rec.curves[0]
	wantC1 := geom.Pt(4, 6)
	wantC2 := geom.Pt(8, 6)
	if !geom.Near(c[1], wantC1) {
		t.Errorf("C1 = %v, want %v", c[1], wantC1)
	}
	if !geom.Near(c[2], wantC2) {
		t.Errorf("C2 = %v, want %v", c[2], wantC2)
	}
	if !geom.Near(c[0], q0) || !geom.Near(c[3], q2) {
		t.Errorf("endpoints = %v, %v, want %v, %v", c[0], c[3], q0, q2)
	}
}

// S5 — SVG close_path.
func TestClosePath(t *testing.T) {
	var rec recorder
	last := geom.Pt(1, 1)
	ClosePath(&rec, last)

	if len(rec.cuts) != 1 {
		t.Fatalf("got %d cuts, want 1", len(rec.cuts))
	}
	if !geom.Near(rec.cuts[0], last) {
		t.Errorf("close cut = %v, want %v", rec.cuts[0], last)
	}
}

// S6 — SVG rectangle without radii.
func TestRectangleNoRadii(t *testing.T) {
	var rec recorder
	start := Rectangle(&rec, 0, 0, 2, 3, 0, 0)

	wantStart := geom.Pt(0, 0)
	if !geom.Near(start, wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if len(rec.moves) != 1 || !geom.Near(rec.moves[0], wantStart) {
		t.Fatalf("moves = %v, want [%v]", rec.moves, wantStart)
	}
	wantCuts := []geom.Point{
		geom.Pt(2, 0), geom.Pt(2, 3), geom.Pt(0, 3), geom.Pt(0, 0),
	}
	if len(rec.cuts) != len(wantCuts) {
		t.Fatalf("got %d cuts, want %d", len(rec.cuts), len(wantCuts))
	}
	for i, c := range wantCuts {
		if !geom.Near(rec.cuts[i], c) {
			t.Errorf("cut %d = %v, want %v", i, rec.cuts[i], c)
		}
	}
}

func TestRectangleRoundedTracesCorners(t *testing.T) {
	var rec recorder
	Rectangle(&rec, 0, 0, 10, 10, 2, 2)

	if len(rec.moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(rec.moves))
	}
	if len(rec.curves) == 0 {
		t.Error("expected rounded corners to emit curve segments")
	}
}

func TestRectangleClampsOversizedRadii(t *testing.T) {
	var rec recorder
	// rx, ry larger than half the side must clamp to w/2, h/2.
	Rectangle(&rec, 0, 0, 4, 4, 100, 100)
	if len(rec.curves) == 0 {
		t.Error("expected clamped rounded rectangle to still trace arcs")
	}
}

// Ellipse tessellation emits exactly 4 curve_to calls (invariant 4).
func TestEllipseEmitsFourCurves(t *testing.T) {
	var rec recorder
	Ellipse(&rec, 5, 5, 3, 2)
	if len(rec.curves) != 4 {
		t.Fatalf("got %d curves, want 4", len(rec.curves))
	}
	if len(rec.moves) != 0 {
		t.Errorf("Ellipse must not emit a move_to, got %d", len(rec.moves))
	}
	// right -> top -> left -> bottom, each segment continuous with the last.
	for i := 1; i < len(rec.curves); i++ {
		if !geom.Near(rec.curves[i][0], rec.curves[i-1][3]) {
			t.Errorf("segment %d does not continue from segment %d", i, i-1)
		}
	}
	first := rec.curves[0][0]
	want := geom.Pt(8, 5)
	if !geom.Near(first, want) {
		t.Errorf("first segment starts at %v, want %v", first, want)
	}
}

func TestLineEmitsCut(t *testing.T) {
	var rec recorder
	end := geom.Pt(3, 4)
	Line(&rec, end)
	if len(rec.cuts) != 1 || !geom.Near(rec.cuts[0], end) {
		t.Errorf("cuts = %v, want [%v]", rec.cuts, end)
	}
}
