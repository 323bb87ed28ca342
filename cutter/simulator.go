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

package cutter

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/vangdfang/libcutter/geom"
)

const (
	// simulatorDPI is the internal device resolution, dots per inch,
	// for both axes.
	simulatorDPI = 100

	// defaultMediaWidthIn and defaultMediaHeightIn are the simulator's
	// canvas dimensions when none are given to NewSimulator.
	defaultMediaWidthIn  = 6
	defaultMediaHeightIn = 12
)

// Simulator is a reference Cutter back-end that renders the motion
// stream to an in-memory raster image instead of driving hardware. It
// converts between device inches and internal DPI-scaled pixels the
// same way a real plotter converts inches to steps.
type Simulator struct {
	widthIn, heightIn float64
	dpi               float64

	running  bool
	rast     *vector.Rasterizer
	current  geom.Point // internal (pixel) coordinates
	hasStart bool       // whether rast has seen a MoveTo since the last Start
}

// NewSimulator creates a Simulator with the default 6x12 inch media
// size, matching the reference device's default canvas.
func NewSimulator() *Simulator {
	return NewSimulatorSize(defaultMediaWidthIn, defaultMediaHeightIn)
}

// NewSimulatorSize creates a Simulator with the given media size in
// inches.
func NewSimulatorSize(widthIn, heightIn float64) *Simulator {
	s := &Simulator{
		widthIn:  widthIn,
		heightIn: heightIn,
		dpi:      simulatorDPI,
	}
	w, h := s.pixelDims()
	s.rast = vector.NewRasterizer(w, h)
	return s
}

func (s *Simulator) pixelDims() (int, int) {
	return int(s.widthIn * s.dpi), int(s.heightIn * s.dpi)
}

// toInternal converts device inches to internal pixel coordinates,
// flipping y so that row 0 is the top of the image while the cutter's
// coordinate space keeps positive y up.
func (s *Simulator) toInternal(p geom.Point) geom.Point {
	w, h := s.pixelDims()
	_ = w
	return geom.Pt(p.X*s.dpi, float64(h)-p.Y*s.dpi)
}

// Start begins a simulation session; the rasterizer buffer is cleared
// so that WriteImage shows only this session's path.
func (s *Simulator) Start() bool {
	w, h := s.pixelDims()
	s.rast.Reset(w, h)
	s.running = true
	s.hasStart = false
	s.current = geom.Pt(0, 0)
	return true
}

// Stop ends the session. The accumulated path is not drawn here;
// callers that want a raster image call WriteImage before or after
// Stop.
func (s *Simulator) Stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	return true
}

func (s *Simulator) MoveTo(p geom.Point) bool {
	if !s.running {
		return false
	}
	ip := s.toInternal(p)
	s.rast.MoveTo(float32(ip.X), float32(ip.Y))
	s.current = ip
	s.hasStart = true
	return true
}

func (s *Simulator) CutTo(p geom.Point) bool {
	if !s.running {
		return false
	}
	if !s.hasStart {
		s.rast.MoveTo(float32(s.current.X), float32(s.current.Y))
		s.hasStart = true
	}
	ip := s.toInternal(p)
	s.rast.LineTo(float32(ip.X), float32(ip.Y))
	s.current = ip
	return true
}

func (s *Simulator) CurveTo(p0, p1, p2, p3 geom.Point) bool {
	if !s.running {
		return false
	}
	if !s.hasStart {
		ip0 := s.toInternal(p0)
		s.rast.MoveTo(float32(ip0.X), float32(ip0.Y))
		s.hasStart = true
	}
	ip1 := s.toInternal(p1)
	ip2 := s.toInternal(p2)
	ip3 := s.toInternal(p3)
	s.rast.CubeTo(float32(ip1.X), float32(ip1.Y), float32(ip2.X), float32(ip2.Y), float32(ip3.X), float32(ip3.Y))
	s.current = ip3
	return true
}

// WriteImage encodes the accumulated cut path as a PNG, stroked path
// only (no fill), matching the original simulator's preview of the
// tool path rather than a filled render.
func (s *Simulator) WriteImage(w io.Writer) error {
	width, height := s.pixelDims()
	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	s.rast.Draw(alpha, alpha.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := alpha.AlphaAt(x, y).A
			if a > 0 {
				img.Set(x, y, color.RGBA{R: 250, G: 50, B: 50, A: a})
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return png.Encode(w, img)
}
