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

// Package cutter defines the abstract XY cutter capability that the
// G-code interpreter and the SVG render state drive, and provides two
// implementations: Simulator (a raster preview) and RealDevice (a
// step-count command stream).
package cutter

import "github.com/vangdfang/libcutter/geom"

// Cutter is the capability exposed to the path geometry engine. All
// motion operations report success; implementations must return false
// if called before Start or after Stop.
type Cutter interface {
	// Start transitions the device to running. Motion calls before the
	// first Start are no-ops that return false.
	Start() bool

	// Stop ends the session. Motion calls after Stop return false.
	Stop() bool

	// MoveTo performs a pen-up rapid move to p (device inches).
	MoveTo(p geom.Point) bool

	// CutTo performs a pen-down straight cut to p (device inches).
	CutTo(p geom.Point) bool

	// CurveTo performs a pen-down cubic Bezier cut from p0, with
	// controls p1 and p2, to p3. Callers must ensure p0 equals the
	// cutter's current position; implementations are not required to
	// verify this.
	CurveTo(p0, p1, p2, p3 geom.Point) bool
}
