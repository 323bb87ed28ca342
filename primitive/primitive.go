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

// Package primitive normalizes higher-order SVG-level shapes (rounded
// rectangles, ellipses, quadratic curves, closed paths, lines) into
// the move/cut/curve stream the Cutter understands. It is stateless:
// all position bookkeeping belongs to the caller (the SVG render
// state), these functions just compute geometry and forward to a
// sink.
package primitive

import (
	"github.com/vangdfang/libcutter/arc"
	"github.com/vangdfang/libcutter/geom"
)

// kappa is the control-point offset fraction for approximating a
// quarter circle of a unit radius with one cubic Bezier.
const kappa = 0.55228475

// Sink receives the normalized move/cut/curve primitives.
type Sink interface {
	MoveTo(p geom.Point) bool
	CutTo(p geom.Point) bool
	CurveTo(p0, p1, p2, p3 geom.Point) bool
}

// Quadratic elevates a quadratic Bezier with endpoints q0, q2 and
// control q1 to a cubic and emits it as a single curve_to.
func Quadratic(sink Sink, q0, q1, q2 geom.Point) bool {
	c1 := q0.Add(q1.Sub(q0).Mul(2.0 / 3.0))
	c2 := q2.Add(q1.Sub(q2).Mul(2.0 / 3.0))
	return sink.CurveTo(q0, c1, c2, q2)
}

// Ellipse emits the four cubic Bezier quarters approximating an
// ellipse centered at (cx, cy) with radii rx, ry, starting at
// (cx+rx, cy) and proceeding counter-clockwise: right, top, left,
// bottom. It deliberately does not emit an initial move_to; the first
// segment's p0 is (cx+rx, cy), so a device that cuts from its own
// current position only traces the ellipse correctly if the caller
// has already positioned there. This is an intentionally preserved
// quirk, not a bug fix target.
func Ellipse(sink Sink, cx, cy, rx, ry float64) bool {
	kx := rx * kappa
	ky := ry * kappa

	right := geom.Pt(cx+rx, cy)
	top := geom.Pt(cx, cy+ry)
	left := geom.Pt(cx-rx, cy)
	bottom := geom.Pt(cx, cy-ry)

	ok := sink.CurveTo(right, geom.Pt(cx+rx, cy+ky), geom.Pt(cx+kx, cy+ry), top)
	ok = sink.CurveTo(top, geom.Pt(cx-kx, cy+ry), geom.Pt(cx-rx, cy+ky), left) && ok
	ok = sink.CurveTo(left, geom.Pt(cx-rx, cy-ky), geom.Pt(cx-kx, cy-ry), bottom) && ok
	ok = sink.CurveTo(bottom, geom.Pt(cx+kx, cy-ry), geom.Pt(cx+rx, cy-ky), right) && ok
	return ok
}

// Rectangle traces the perimeter of a (possibly rounded) rectangle
// with corner x,y, size w,h, and corner radii rx, ry. Radii larger
// than half the corresponding side are clamped. When either radius is
// positive, corners are traced by reusing the elliptical arc
// approximator (large_arc_flag=0, sweep_flag=1) rather than
// special-cased geometry, matching the original renderer's
// render_rect_callback. It returns the starting point, for the
// caller to use as the close-path target.
func Rectangle(sink Sink, x, y, w, h, rx, ry float64) geom.Point {
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}

	if rx > 0 || ry > 0 {
		start := geom.Pt(x+rx, y)
		sink.MoveTo(start)

		pos := geom.Pt(x+w-rx, y)
		sink.CutTo(pos)
		pos = arc.Elliptical(sink, pos, rx, ry, 0, false, true, geom.Pt(x+w, y+ry))

		pos = geom.Pt(x+w, y+h-ry)
		sink.CutTo(pos)
		pos = arc.Elliptical(sink, pos, rx, ry, 0, false, true, geom.Pt(x+w-rx, y+h))

		pos = geom.Pt(x+rx, y+h)
		sink.CutTo(pos)
		pos = arc.Elliptical(sink, pos, rx, ry, 0, false, true, geom.Pt(x, y+h-ry))

		pos = geom.Pt(x, y+ry)
		sink.CutTo(pos)
		arc.Elliptical(sink, pos, rx, ry, 0, false, true, start)

		ClosePath(sink, start)
		return start
	}

	start := geom.Pt(x, y)
	sink.MoveTo(start)
	sink.CutTo(geom.Pt(x+w, y))
	sink.CutTo(geom.Pt(x+w, y+h))
	sink.CutTo(geom.Pt(x, y+h))
	ClosePath(sink, start)
	return start
}

// ClosePath emits a cut to lastMovedTo, closing the current subpath.
// It does not change lastMovedTo.
func ClosePath(sink Sink, lastMovedTo geom.Point) bool {
	return sink.CutTo(lastMovedTo)
}

// Line emits a straight cut to end.
func Line(sink Sink, end geom.Point) bool {
	return sink.CutTo(end)
}
