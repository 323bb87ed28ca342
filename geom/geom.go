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

// Package geom provides the 2D point, vector, and affine transform
// primitives shared by the arc approximator, the primitive normalizer,
// the G-code interpreter and the SVG render state.
package geom

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point is a location or a displacement in the XY plane.
type Point = vec.Vec2

// Affine is an affine transform, applied to a Point p as L*p + t where
// L = [[A,C],[B,D]] and t = (E,F). Composition is right-multiplicative:
// for transforms P (parent) and C (child), C.Then(P) gives the transform
// that applies C first and P second.
type Affine = matrix.Matrix

// Identity is the affine transform that leaves every point unchanged.
var Identity = matrix.Identity

// Pt constructs a Point from its coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Div returns p scaled by 1/s. Unlike Mul, division is not provided by
// the upstream vector type, since most callers of a scaled vector in
// this codebase already have the scale factor as a multiplicand.
func Div(p Point, s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// SquaredNorm returns the squared Euclidean length of p, avoiding the
// square root for callers that only need a comparison.
func SquaredNorm(p Point) float64 {
	return p.X*p.X + p.Y*p.Y
}

// Near reports whether a and b are within 1e-6 of each other, the same
// tolerance the arc approximator uses for its closure check. The tests
// use it for endpoint matching.
func Near(a, b Point) bool {
	const epsilon = 1e-6
	return a.Sub(b).Length() < epsilon
}

// Apply transforms p by a, in user space to device space direction.
func Apply(a Affine, p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// ApplyLinear applies only the 2x2 linear part of a to a vector,
// ignoring translation. Used when transforming directions or radii
// rather than positions.
func ApplyLinear(a Affine, v Point) Point {
	return Point{
		X: a[0]*v.X + a[2]*v.Y,
		Y: a[1]*v.X + a[3]*v.Y,
	}
}

// Rotate returns the affine transform that rotates by theta radians
// about the origin.
func Rotate(theta float64) Affine {
	s, c := math.Sincos(theta)
	return Affine{c, s, -s, c, 0, 0}
}

// Translate returns the affine transform that translates by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}
