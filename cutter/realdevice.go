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
	"fmt"
	"io"
	"log/slog"

	"github.com/vangdfang/libcutter/geom"
)

// RealDevice is a Cutter back-end that converts device inches to
// integer step counts and writes a textual command stream to an
// underlying writer. The wire protocol, framing and any encryption a
// concrete device requires live outside this engine (§1, out of
// scope); RealDevice only performs the inches-to-steps conversion and
// the running-state bookkeeping common to every back-end.
type RealDevice struct {
	w            io.Writer
	stepsPerInch float64
	running      bool
	log          *slog.Logger
}

// NewRealDevice creates a RealDevice that writes step commands to w,
// converting inches at stepsPerInch. A nil logger defaults to
// slog.Default().
func NewRealDevice(w io.Writer, stepsPerInch float64, log *slog.Logger) *RealDevice {
	if log == nil {
		log = slog.Default()
	}
	return &RealDevice{w: w, stepsPerInch: stepsPerInch, log: log}
}

func (d *RealDevice) toSteps(p geom.Point) (int64, int64) {
	return int64(p.X*d.stepsPerInch + 0.5), int64(p.Y*d.stepsPerInch + 0.5)
}

func (d *RealDevice) Start() bool {
	d.running = true
	_, err := fmt.Fprintln(d.w, "START")
	if err != nil {
		d.log.Error("real device start failed", "error", err)
		return false
	}
	return true
}

func (d *RealDevice) Stop() bool {
	if !d.running {
		return false
	}
	d.running = false
	_, err := fmt.Fprintln(d.w, "STOP")
	return err == nil
}

func (d *RealDevice) MoveTo(p geom.Point) bool {
	if !d.running {
		return false
	}
	x, y := d.toSteps(p)
	_, err := fmt.Fprintf(d.w, "MOVE %d %d\n", x, y)
	return err == nil
}

func (d *RealDevice) CutTo(p geom.Point) bool {
	if !d.running {
		return false
	}
	x, y := d.toSteps(p)
	_, err := fmt.Fprintf(d.w, "CUT %d %d\n", x, y)
	return err == nil
}

func (d *RealDevice) CurveTo(p0, p1, p2, p3 geom.Point) bool {
	if !d.running {
		return false
	}
	x1, y1 := d.toSteps(p1)
	x2, y2 := d.toSteps(p2)
	x3, y3 := d.toSteps(p3)
	_, err := fmt.Fprintf(d.w, "CURVE %d %d %d %d %d %d\n", x1, y1, x2, y2, x3, y3)
	return err == nil
}
