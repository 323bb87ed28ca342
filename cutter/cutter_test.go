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
	"bytes"
	"testing"

	"github.com/vangdfang/libcutter/geom"
)

func TestRealDeviceRejectsMotionBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	d := NewRealDevice(&buf, 1000, nil)
	if d.MoveTo(geom.Pt(1, 1)) {
		t.Error("MoveTo before Start should return false")
	}
	if d.CutTo(geom.Pt(1, 1)) {
		t.Error("CutTo before Start should return false")
	}
}

func TestRealDeviceRejectsMotionAfterStop(t *testing.T) {
	var buf bytes.Buffer
	d := NewRealDevice(&buf, 1000, nil)
	d.Start()
	d.Stop()
	if d.MoveTo(geom.Pt(1, 1)) {
		t.Error("MoveTo after Stop should return false")
	}
}

func TestRealDeviceStepConversion(t *testing.T) {
	var buf bytes.Buffer
	d := NewRealDevice(&buf, 1000, nil)
	d.Start()
	d.MoveTo(geom.Pt(1.5, 2.0))
	want := "START\nMOVE 1500 2000\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSimulatorRejectsMotionBeforeStart(t *testing.T) {
	s := NewSimulator()
	if s.MoveTo(geom.Pt(1, 1)) {
		t.Error("MoveTo before Start should return false")
	}
}

func TestSimulatorAcceptsMotionWhileRunning(t *testing.T) {
	s := NewSimulator()
	s.Start()
	if !s.MoveTo(geom.Pt(1, 1)) {
		t.Error("MoveTo while running should return true")
	}
	if !s.CutTo(geom.Pt(2, 1)) {
		t.Error("CutTo while running should return true")
	}
	s.Stop()
	if s.CutTo(geom.Pt(3, 1)) {
		t.Error("CutTo after Stop should return false")
	}
}

func TestSimulatorWriteImageProducesPNG(t *testing.T) {
	s := NewSimulator()
	s.Start()
	s.MoveTo(geom.Pt(0, 0))
	s.CutTo(geom.Pt(1, 1))
	s.Stop()

	var buf bytes.Buffer
	if err := s.WriteImage(&buf); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PNG output")
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Error("output does not start with PNG signature")
	}
}
