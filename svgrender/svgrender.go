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

// Package svgrender bridges a stream of already-parsed SVG rendering
// events to a cutter.Cutter. It owns the current point, the last
// move_to target, the affine transform, and the paper padding offset;
// the geometry itself is delegated to the arc and primitive packages.
package svgrender

import (
	"log/slog"

	"seehuhn.de/go/pdf/graphics"

	"github.com/vangdfang/libcutter/arc"
	"github.com/vangdfang/libcutter/cutter"
	"github.com/vangdfang/libcutter/geom"
	"github.com/vangdfang/libcutter/primitive"
)

// State is the SVG render state: current point, last moved-to point,
// affine transform, and paper padding, bridging SVG callback events to
// a borrowed Cutter.
//
// A State is not safe for concurrent use.
type State struct {
	transform    geom.Affine
	currentPos   geom.Point
	lastMovedTo  geom.Point
	paperPadding float64
	device       cutter.Cutter
	log          *slog.Logger
}

// New creates a render state targeting device, with paperPadding
// inches added to every output y coordinate. A nil logger defaults to
// slog.Default().
func New(device cutter.Cutter, paperPadding float64, log *slog.Logger) *State {
	if log == nil {
		log = slog.Default()
	}
	return &State{
		transform:    geom.Identity,
		paperPadding: paperPadding,
		device:       device,
		log:          log,
	}
}

// CurPosn returns the current point, in SVG user coordinates.
func (s *State) CurPosn() geom.Point { return s.currentPos }

// LastMovedTo returns the most recent move_to target.
func (s *State) LastMovedTo() geom.Point { return s.lastMovedTo }

// ApplyTransform maps a user-space point to device inches: apply the
// current affine, divide by 100 (the SVG user unit is 1/100 inch),
// then add paperPadding to y.
func (s *State) ApplyTransform(p geom.Point) geom.Point {
	q := geom.Apply(s.transform, p)
	q = geom.Div(q, 100)
	q.Y += s.paperPadding
	return q
}

// SetTransform replaces the current affine transform with
// {linear=[[a,c],[b,d]], translation=(e,f)}. It does not compose with
// the prior transform: a nested SVG <g transform=...> simply discards
// whatever transform was active at entry. This is retained exactly as
// the original renderer behaves (see the open question on nested
// transform composition); it is not fixed here.
func (s *State) SetTransform(a, b, c, d, e, f float64) {
	s.transform = geom.Affine{a, b, c, d, e, f}
}

// MoveTo sets last_moved_to and current_position to p, then forwards
// a transformed move to the device.
func (s *State) MoveTo(p geom.Point) bool {
	s.lastMovedTo = p
	s.currentPos = p
	return s.device.MoveTo(s.ApplyTransform(p))
}

// CutTo sets current_position to p, then forwards a transformed cut
// to the device.
func (s *State) CutTo(p geom.Point) bool {
	s.currentPos = p
	return s.device.CutTo(s.ApplyTransform(p))
}

// CurveTo transforms all four points and forwards the curve to the
// device, setting current_position to p3. p0 is transformed and
// passed through even though it is expected to already equal the
// current position; the caller (arc and primitive helpers) is
// responsible for that invariant.
func (s *State) CurveTo(p0, p1, p2, p3 geom.Point) bool {
	a := s.ApplyTransform(p0)
	b := s.ApplyTransform(p1)
	c := s.ApplyTransform(p2)
	d := s.ApplyTransform(p3)
	s.currentPos = p3
	return s.device.CurveTo(a, b, c, d)
}

// ClosePath cuts to last_moved_to without changing it.
func (s *State) ClosePath() bool {
	return primitive.ClosePath(s, s.lastMovedTo)
}

// Line cuts a straight line to end.
func (s *State) Line(end geom.Point) bool {
	return primitive.Line(s, end)
}

// Quadratic elevates a quadratic Bezier with control q1 from the
// current position to q2 and emits it.
func (s *State) Quadratic(q1, q2 geom.Point) bool {
	return primitive.Quadratic(s, s.currentPos, q1, q2)
}

// Ellipse emits the four-quadrant cubic approximation of an ellipse
// centered at (cx, cy) with radii rx, ry. No move_to is emitted first;
// see primitive.Ellipse's documentation for this intentionally
// preserved quirk.
func (s *State) Ellipse(cx, cy, rx, ry float64) bool {
	ok := primitive.Ellipse(s, cx, cy, rx, ry)
	s.currentPos = geom.Pt(cx+rx, cy)
	return ok
}

// Rectangle traces a (possibly rounded) rectangle's perimeter and
// closes it, updating last_moved_to and current_position to match.
func (s *State) Rectangle(x, y, w, h, rx, ry float64) bool {
	start := primitive.Rectangle(s, x, y, w, h, rx, ry)
	s.lastMovedTo = start
	s.currentPos = start
	return true
}

// Arc traces an elliptical arc from the current position to end,
// reusing the SVG endpoint-to-center conversion.
func (s *State) Arc(rx, ry, xAxisRotationDeg float64, largeArc, sweep bool, end geom.Point) bool {
	pos := arc.Elliptical(s, s.currentPos, rx, ry, xAxisRotationDeg, largeArc, sweep, end)
	s.currentPos = pos
	return true
}

// The following methods satisfy the remainder of the SVG driver's
// callback table (original_source/util/svg_render.hpp). They are
// no-ops that succeed: the cutter core ignores visual style, viewport
// metadata, and text/image content (spec Non-goals).

// BeginGroup and EndGroup bracket a <g> element. Grouping carries no
// geometric effect here; see SetTransform's documentation for why a
// correctly-composing transform stack is not implemented.
func (s *State) BeginGroup(opacity float64) bool { return true }
func (s *State) EndGroup(opacity float64) bool   { return true }

func (s *State) BeginElement() bool { return true }
func (s *State) EndElement() bool   { return true }

func (s *State) SetColor(r, g, b uint8) bool                       { return true }
func (s *State) SetStrokeWidth(width float64) bool                 { return true }
func (s *State) SetFillOpacity(opacity float64) bool                { return true }
func (s *State) SetFillPaint(paint string) bool                     { return true }
func (s *State) SetFillRule(evenOdd bool) bool                      { return true }
func (s *State) SetViewportDimension(width, height float64) bool    { return true }
func (s *State) ApplyViewBox(minX, minY, width, height float64) bool { return true }
func (s *State) SetOpacity(opacity float64) bool                    { return true }
func (s *State) SetFontFamily(family string) bool                   { return true }
func (s *State) SetFontSize(size float64) bool                      { return true }
func (s *State) SetFontStyle(style string) bool                     { return true }
func (s *State) SetFontWeight(weight uint) bool                     { return true }
func (s *State) SetStrokeDashArray(dashes []float64) bool            { return true }
func (s *State) SetStrokeDashOffset(offset float64) bool             { return true }
func (s *State) SetStrokeLineCap(cap graphics.LineCapStyle) bool     { return true }
func (s *State) SetStrokeLineJoin(join graphics.LineJoinStyle) bool  { return true }
func (s *State) SetStrokeMiterLimit(limit float64) bool              { return true }
func (s *State) SetStrokeOpacity(opacity float64) bool                { return true }
func (s *State) SetStrokePaint(paint string) bool                    { return true }
func (s *State) SetTextAnchor(anchor string) bool                    { return true }

// RenderLine, RenderPath: the geometry for a rendered line or path was
// already emitted through MoveTo/CutTo/CurveTo/Arc during traversal;
// these finalize callbacks have nothing left to do.
func (s *State) RenderLine(x1, y1, x2, y2 float64) bool { return true }
func (s *State) RenderPath() bool                       { return true }

// RenderText and RenderImage are Non-goals (text rendering, images).
func (s *State) RenderText(x, y float64, utf8 string) bool { return true }
func (s *State) RenderImage(data []byte, dataWidth, dataHeight int, x, y, width, height float64) bool {
	return true
}
