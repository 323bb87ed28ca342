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

// Package gcode tokenizes and interprets a line-oriented G-code
// subset (G0-G3, G20/21, G90/91, M0-M2, N line numbers) and drives a
// cutter.Cutter accordingly.
package gcode

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"unicode"

	"github.com/vangdfang/libcutter/arc"
	"github.com/vangdfang/libcutter/cutter"
	"github.com/vangdfang/libcutter/geom"
)

// mmPerInch converts millimeters to inches.
const mmPerInch = 25.4

// Kind classifies the result of parsing one line, replacing the
// original driver's throw-based halt signaling with an explicit
// result the caller's loop matches on.
type Kind int

const (
	// Continue means the line was processed (or was a no-op); the
	// caller should read the next line.
	Continue Kind = iota
	// Halt means an M0, M1 or M2 was seen; the caller should stop
	// reading lines. This is not an error.
	Halt
	// Errored means the line could not be processed due to an
	// unrecoverable condition (currently unused by ParseLine itself;
	// reserved for file-level I/O failures surfaced through ParseFile).
	Errored
)

// Outcome is the result of parsing one line or one file.
type Outcome struct {
	Kind Kind
	Err  error
}

// Interpreter holds G-code interpreter state: current position, unit
// system, addressing mode, and pen state, plus a borrowed Cutter.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	CurrentPosition geom.Point
	UnitsMetric     bool
	Absolute        bool
	PenDown         bool

	device cutter.Cutter
	log    *slog.Logger
}

// NewInterpreter creates an Interpreter targeting device, with units
// metric, absolute addressing, and pen up, matching the reference
// implementation's defaults. A nil logger defaults to slog.Default().
func NewInterpreter(device cutter.Cutter, log *slog.Logger) *Interpreter {
	if log == nil {
		log = slog.Default()
	}
	return &Interpreter{
		UnitsMetric: true,
		Absolute:    true,
		device:      device,
		log:         log,
	}
}

// docToInternal converts a value in document units to inches: divide
// by 25.4 when metric, otherwise pass through unchanged.
func (p *Interpreter) docToInternal(v float64) float64 {
	if p.UnitsMetric {
		return v / mmPerInch
	}
	return v
}

// getXY computes the target point from codes, defaulting each axis to
// the current position when its letter is absent.
func (p *Interpreter) getXY(codes map[byte]float64) geom.Point {
	target := p.CurrentPosition
	if v, ok := codes['X']; ok {
		target.X = p.docToInternal(v)
	}
	if v, ok := codes['Y']; ok {
		target.Y = p.docToInternal(v)
	}
	return target
}

// getVector computes the (I, J) offset vector from codes.
func (p *Interpreter) getVector(codes map[byte]float64) geom.Point {
	return geom.Pt(p.docToInternal(codes['I']), p.docToInternal(codes['J']))
}

// processZ updates PenDown from a Z code if present. Pen state is
// advisory only: it does not select between move_to and cut_to, the
// G-command alone does that (see the interpreter's G0 vs G1/G2/G3
// handling).
func (p *Interpreter) processZ(codes map[byte]float64) {
	v, ok := codes['Z']
	if !ok {
		return
	}
	z := p.docToInternal(v)
	p.PenDown = z < 0
}

// ParseLine tokenizes and dispatches a single line of G-code.
func (p *Interpreter) ParseLine(line string) Outcome {
	codes := tokenize(line, p.log)

	if _, ok := codes['G']; ok {
		return p.processG(codes)
	}
	if _, ok := codes['N']; ok {
		p.log.Debug("skipping line number")
		return Outcome{Kind: Continue}
	}
	if _, ok := codes['M']; ok {
		return p.processM(codes)
	}
	p.log.Debug("unhandled command", "line", line)
	return Outcome{Kind: Continue}
}

func (p *Interpreter) processG(codes map[byte]float64) Outcome {
	code := int(codes['G'] + 0.5)
	p.log.Debug("processing G code", "code", code)

	switch code {
	case 0:
		p.processZ(codes)
		target := p.getXY(codes)
		p.device.MoveTo(target)
		p.CurrentPosition = target
	case 1:
		p.processZ(codes)
		target := p.getXY(codes)
		p.device.CutTo(target)
		p.CurrentPosition = target
	case 2:
		p.processZ(codes)
		target := p.getXY(codes)
		offset := p.getVector(codes)
		p.CurrentPosition = arc.Circular(p.device, p.CurrentPosition, target, offset, true, p.log)
	case 3:
		p.processZ(codes)
		target := p.getXY(codes)
		offset := p.getVector(codes)
		p.CurrentPosition = arc.Circular(p.device, p.CurrentPosition, target, offset, false, p.log)
	case 20:
		p.log.Info("switching to imperial units")
		p.UnitsMetric = false
	case 21:
		p.log.Info("switching to metric units")
		p.UnitsMetric = true
	case 90:
		p.log.Info("using absolute coordinates")
		p.Absolute = true
	case 91:
		p.log.Info("relative coordinates requested but not supported")
	default:
		p.log.Debug("unhandled G command", "code", code)
	}
	return Outcome{Kind: Continue}
}

func (p *Interpreter) processM(codes map[byte]float64) Outcome {
	code := int(codes['M'] + 0.5)
	p.log.Debug("processing M code", "code", code)

	switch code {
	case 0, 1, 2:
		p.log.Info("program halted")
		return Outcome{Kind: Halt}
	default:
		p.log.Debug("unhandled M command", "code", code)
	}
	return Outcome{Kind: Continue}
}

// ParseFile reads newline-separated G-code from r and interprets each
// line in turn, stopping at the first Halt or at end of input.
// I/O errors are surfaced to the caller, not recovered.
func (p *Interpreter) ParseFile(r io.Reader) Outcome {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		outcome := p.ParseLine(scanner.Text())
		if outcome.Kind == Halt {
			return outcome
		}
	}
	if err := scanner.Err(); err != nil {
		return Outcome{Kind: Errored, Err: err}
	}
	p.log.Info("parse complete")
	return Outcome{Kind: Continue}
}

// tokenize scans one line of G-code into a code letter -> value map.
// Later occurrences of the same letter overwrite earlier ones.
// Comments (";" to end of line, "(...)" not nested) are skipped.
// Fragments that cannot be tokenized are logged and skipped.
func tokenize(line string, log *slog.Logger) map[byte]float64 {
	codes := make(map[byte]float64)
	parenDepth := 0

	for i := 0; i < len(line); i++ {
		c := line[i]

		if parenDepth > 0 {
			if c == ')' {
				parenDepth--
			}
			continue
		}
		if c == '(' {
			parenDepth++
			continue
		}
		if c == ';' {
			break
		}
		if unicode.IsSpace(rune(c)) {
			continue
		}
		if isAlpha(c) {
			key := c
			j := i + 1
			for j < len(line) && isNumberChar(line[j]) {
				j++
			}
			if j > i+1 {
				if v, err := strconv.ParseFloat(line[i+1:j], 64); err == nil {
					codes[key] = v
					i = j - 1
					continue
				}
			}
		}
		log.Debug("did not understand G-code fragment", "line", line, "offset", i)
	}
	return codes
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// errUnparseable names the condition tokenize logs for a fragment it
// cannot parse. tokenize logs rather than returns it, and nothing else
// in the package or its tests references it.
var errUnparseable = fmt.Errorf("could not parse G-code fragment")
