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

package arc

import (
	"math"
	"testing"

	"github.com/vangdfang/libcutter/geom"
)

// recorder is a Sink that collects every emitted curve.
type recorder struct {
	curves [][4]geom.Point
}

func (r *recorder) CurveTo(p0, p1, p2, p3 geom.Point) bool {
	r.curves = append(r.curves, [4]geom.Point{p0, p1, p2, p3})
	return true
}

func TestCircularEndpointMatchesTarget(t *testing.T) {
	// current=(1,0), center=(0,0), target=(0,1), clockwise: per the
	// grounded angle convention (matching util/gcode.cpp's arc::arc
	// constructor exactly), this sweeps 270 degrees clockwise rather
	// than the short 90-degree way, since decreasing angle from 0
	// reaches 90 only after a full three-quarter turn.
	var rec recorder
	current := geom.Pt(1, 0)
	target := geom.Pt(0, 1)
	offset := geom.Pt(-1, 0)

	end := Circular(&rec, current, target, offset, true, nil)
	if !geom.Near(end, target) {
		t.Errorf("Circular endpoint = %v, want %v", end, target)
	}

	wantSegs := int(math.Ceil((3 * math.Pi / 2) / (math.Pi/2 + 0.001)))
	if len(rec.curves) != wantSegs {
		t.Errorf("got %d segments, want %d", len(rec.curves), wantSegs)
	}
	for i, c := range rec.curves {
		if i > 0 && !geom.Near(c[0], rec.curves[i-1][3]) {
			t.Errorf("segment %d does not start where segment %d ended", i, i-1)
		}
	}
}

func TestCircularQuarterArcAnticlockwise(t *testing.T) {
	// current=(1,0), center=(0,0), target=(0,1), anticlockwise: this
	// is the short way, a single 90-degree segment.
	var rec recorder
	current := geom.Pt(1, 0)
	target := geom.Pt(0, 1)
	offset := geom.Pt(-1, 0)

	end := Circular(&rec, current, target, offset, false, nil)
	if !geom.Near(end, target) {
		t.Errorf("Circular endpoint = %v, want %v", end, target)
	}
	if len(rec.curves) != 1 {
		t.Fatalf("got %d segments, want 1", len(rec.curves))
	}
	if !geom.Near(rec.curves[0][0], current) {
		t.Errorf("first control point = %v, want current position %v", rec.curves[0][0], current)
	}
}

func TestCircularSegmentCountFormula(t *testing.T) {
	cases := []struct {
		current, target, offset geom.Point
		clockwise                bool
		wantSegs                 int
	}{
		// half circle either way round: two 90-degree segments
		{geom.Pt(1, 0), geom.Pt(-1, 0), geom.Pt(-1, 0), true, 2},
		{geom.Pt(1, 0), geom.Pt(-1, 0), geom.Pt(-1, 0), false, 2},
		// clockwise from +X to +Y: 270 degrees, three segments
		{geom.Pt(2, 0), geom.Pt(0, 2), geom.Pt(-2, 0), true, 3},
	}
	for _, c := range cases {
		var rec recorder
		Circular(&rec, c.current, c.target, c.offset, c.clockwise, nil)
		if len(rec.curves) == 0 {
			t.Errorf("no segments emitted for case %+v", c)
		}
		if len(rec.curves) != c.wantSegs {
			t.Errorf("got %d segments, want %d for case %+v", len(rec.curves), c.wantSegs, c)
		}
	}
}

func TestEllipticalQuarterArc(t *testing.T) {
	// A quarter ellipse from (1,0) to (0,1) with rx=ry=1, sweep=1
	// (positive angle direction), large_arc_flag=0, matches a
	// standard unit-circle quarter arc.
	var rec recorder
	current := geom.Pt(1, 0)
	end := geom.Pt(0, 1)
	got := Elliptical(&rec, current, 1, 1, 0, false, true, end)
	if !geom.Near(got, end) {
		t.Errorf("Elliptical endpoint = %v, want %v", got, end)
	}
	if len(rec.curves) != 1 {
		t.Fatalf("got %d segments, want 1", len(rec.curves))
	}
	if !geom.Near(rec.curves[0][0], current) {
		t.Errorf("p0 = %v, want %v", rec.curves[0][0], current)
	}
}

func TestEllipticalRadiiTooSmallAreScaled(t *testing.T) {
	// rx, ry smaller than half the chord length must be scaled up so
	// the ellipse can reach both endpoints.
	var rec recorder
	current := geom.Pt(0, 0)
	end := geom.Pt(10, 0)
	got := Elliptical(&rec, current, 1, 1, 0, false, true, end)
	if !geom.Near(got, end) {
		t.Errorf("Elliptical endpoint = %v, want %v", got, end)
	}
	if len(rec.curves) == 0 {
		t.Fatal("expected at least one segment")
	}
}
