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

// Package arc approximates circular and elliptical arcs with chains
// of cubic Bezier segments, each subtending at most 90 degrees, and
// emits them directly to a sink rather than accumulating an owned
// buffer of segments.
package arc

import (
	"log/slog"
	"math"

	"github.com/vangdfang/libcutter/geom"
)

// k is the control-point offset factor for approximating a circular
// arc of half-width a with one cubic Bezier: distance k*r*tan(a) along
// the tangent at each endpoint.
const k = 4.0 * (math.Sqrt2 - 1) / 3

// Sink receives the cubic Bezier segments the approximators emit. Both
// cutter.Cutter and svgrender.State satisfy this structurally.
type Sink interface {
	CurveTo(p0, p1, p2, p3 geom.Point) bool
}

// closureTolerance is the distance within which the final emitted
// segment endpoint must fall of the caller-supplied target before a
// mismatch is logged.
const closureTolerance = 1e-6

// Circular approximates a circular arc with center current+offset and
// emits it as a chain of curve_to calls to sink. It follows the
// G-code G2/G3 convention: offset is the vector from the current
// point to the arc's center, and clockwise selects handedness. It
// returns the final endpoint emitted (which should equal target
// within closureTolerance; a mismatch is logged, not treated as an
// error).
func Circular(sink Sink, current, target, offset geom.Point, clockwise bool, log *slog.Logger) geom.Point {
	if log == nil {
		log = slog.Default()
	}

	center := current.Add(offset)
	cvec := offset.Mul(-1) // vector from center to current point
	tvec := target.Sub(center)
	radius := cvec.Length()

	arcWidth := math.Abs(angleBetween(cvec, tvec))
	if clockwise {
		if a := angleBetween(cvec, tvec); a > 0 {
			arcWidth = math.Abs(a - 2*math.Pi)
		}
	} else {
		if a := angleBetween(cvec, tvec); a < 0 {
			arcWidth = math.Abs(a + 2*math.Pi)
		}
	}

	xAxis := geom.Pt(radius, 0)
	crot := angleBetween(xAxis, cvec)

	pos := current
	srot := 0.0
	rem := arcWidth
	for rem > math.Pi/2 {
		pos = circularSegment(sink, center, radius, crot, math.Pi/2, srot, clockwise)
		rem -= math.Pi / 2
		srot += math.Pi / 2
	}
	pos = circularSegment(sink, center, radius, crot, rem, srot, clockwise)

	if pos.Sub(target).Length() > closureTolerance {
		log.Warn("arc closure mismatch", "end", pos, "target", target)
	}
	return pos
}

// angleBetween is the signed angle from vec1 to vec2, in (-2*pi, 2*pi).
func angleBetween(vec1, vec2 geom.Point) float64 {
	return math.Atan2(vec2.Y, vec2.X) - math.Atan2(vec1.Y, vec1.X)
}

// circularSegment emits one cubic Bezier approximating a sub-90-degree
// arc of angular width swidth, starting at rotation srot from the arc's
// initial direction, and returns its endpoint.
func circularSegment(sink Sink, center geom.Point, radius, crot, swidth, srot float64, clockwise bool) geom.Point {
	a := swidth / 2
	var pt1, pt2, pt3, pt4 geom.Point
	var rot float64

	if clockwise {
		pt1 = geom.Pt(radius*math.Cos(a), radius*math.Sin(a))
		pt4 = geom.Pt(pt1.X, -pt1.Y)
		pt3 = geom.Pt(pt4.X+k*math.Tan(a)*pt1.Y, pt4.Y+k*math.Tan(a)*pt1.X)
		pt2 = geom.Pt(pt3.X, -pt3.Y)
		rot = crot - a - srot
	} else {
		pt4 = geom.Pt(radius*math.Cos(a), radius*math.Sin(a))
		pt1 = geom.Pt(pt4.X, -pt4.Y)
		pt2 = geom.Pt(pt1.X+k*math.Tan(a)*pt4.Y, pt1.Y+k*math.Tan(a)*pt4.X)
		pt3 = geom.Pt(pt2.X, -pt2.Y)
		rot = srot + crot + a
	}

	r := geom.Rotate(rot)
	p1 := geom.Apply(r, pt1).Add(center)
	p2 := geom.Apply(r, pt2).Add(center)
	p3 := geom.Apply(r, pt3).Add(center)
	p4 := geom.Apply(r, pt4).Add(center)

	sink.CurveTo(p1, p2, p3, p4)
	return p4
}

// Elliptical approximates an SVG elliptical arc from current to end
// with radii rx, ry, rotated xAxisRotationDeg degrees from the x-axis,
// following the large-arc and sweep flags of the SVG 1.1 path grammar.
// It implements the Appendix F.6.5 endpoint-to-center conversion and
// emits a chain of curve_to calls to sink, each p0 equal to the
// current running position (current for the first segment, the
// previous segment's endpoint after that). It returns the final
// endpoint.
func Elliptical(sink Sink, current geom.Point, rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, end geom.Point) geom.Point {
	rx = math.Abs(rx)
	ry = math.Abs(ry)

	rad := xAxisRotationDeg * math.Pi / 180
	sinTh, cosTh := math.Sincos(rad)

	delta := geom.Div(current.Sub(end), 2)
	dx1 := cosTh*delta.X + sinTh*delta.Y
	dy1 := -sinTh*delta.X + cosTh*delta.Y

	pr1 := rx * rx
	pr2 := ry * ry
	px := dx1 * dx1
	py := dy1 * dy1
	if check := px/pr1 + py/pr2; check > 1 {
		s := math.Sqrt(check)
		rx *= s
		ry *= s
	}

	a00 := cosTh / rx
	a01 := sinTh / rx
	a10 := -sinTh / ry
	a11 := cosTh / ry
	pt0 := geom.Pt(a00*current.X+a01*current.Y, a10*current.X+a11*current.Y)
	pt1 := geom.Pt(a00*end.X+a01*end.Y, a10*end.X+a11*end.Y)

	d := geom.SquaredNorm(pt1.Sub(pt0))
	sfactorSq := 1/d - 0.25
	if sfactorSq < 0 {
		sfactorSq = 0
	}
	sfactor := math.Sqrt(sfactorSq)
	if sweep == largeArc {
		sfactor = -sfactor
	}
	center := geom.Pt(
		0.5*(pt0.X+pt1.X)-sfactor*(pt1.Y-pt0.Y),
		0.5*(pt0.Y+pt1.Y)+sfactor*(pt1.X-pt0.X),
	)

	th0 := math.Atan2(pt0.Y-center.Y, pt0.X-center.X)
	th1 := math.Atan2(pt1.Y-center.Y, pt1.X-center.X)
	thArc := th1 - th0
	if thArc < 0 && sweep {
		thArc += 2 * math.Pi
	} else if thArc > 0 && !sweep {
		thArc -= 2 * math.Pi
	}

	nSegs := int(math.Ceil(math.Abs(thArc / (math.Pi/2 + 0.001))))
	if nSegs < 1 {
		nSegs = 1
	}

	scaleRotate := func(p geom.Point) geom.Point {
		scaled := geom.Pt(rx*p.X, ry*p.Y)
		return geom.Apply(geom.Rotate(rad), scaled)
	}

	pos := current
	for i := 0; i < nSegs; i++ {
		a0 := th0 + float64(i)*thArc/float64(nSegs)
		a1 := th0 + float64(i+1)*thArc/float64(nSegs)
		thHalf := 0.5 * (a1 - a0)
		t := (8.0 / 3.0) * math.Sin(thHalf*0.5) * math.Sin(thHalf*0.5) / math.Sin(thHalf)

		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		unit0 := center.Add(geom.Pt(c0, s0))
		unit3 := center.Add(geom.Pt(c1, s1))
		unit1 := unit0.Add(geom.Pt(-s0, c0).Mul(t))
		unit2 := unit3.Sub(geom.Pt(-s1, c1).Mul(t))

		p1 := scaleRotate(unit1)
		p2 := scaleRotate(unit2)
		p3 := scaleRotate(unit3)

		sink.CurveTo(pos, p1, p2, p3)
		pos = p3
	}
	return pos
}
