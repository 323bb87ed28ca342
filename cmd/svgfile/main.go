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

// Command svgfile drives a cutter from the path, rect, ellipse, circle
// and line elements of an SVG document, either against a simulator
// that writes a PNG preview or against a real device.
//
// The SVG walker here is deliberately minimal: it understands the
// element and transform vocabulary the reference cutter firmware
// understood, not the full SVG specification (text, images, clipping,
// CSS and style sheets are out of scope).
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vangdfang/libcutter/cutter"
	"github.com/vangdfang/libcutter/geom"
	"github.com/vangdfang/libcutter/svgrender"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("svgfile", flag.ContinueOnError)
	var (
		simPNG       = fs.String("sim", "", "write a simulator preview PNG to this path instead of driving a real device")
		devicePath   = fs.String("device", "", "write real-device step commands to this path (default: stdout)")
		stepsPerInch = fs.Float64("steps-per-inch", 1000, "real device step resolution")
		width        = fs.Float64("width", 6, "simulator media width, inches")
		height       = fs.Float64("height", 12, "simulator media height, inches")
		padding      = fs.Float64("padding", 0, "paper padding added to every y coordinate, inches")
		verbose      = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: svgfile [flags] <file.svg>")
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()

	var device cutter.Cutter
	var sim *cutter.Simulator
	if *simPNG != "" {
		sim = cutter.NewSimulatorSize(*width, *height)
		device = sim
	} else {
		out := os.Stdout
		if *devicePath != "" {
			df, err := os.Create(*devicePath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			defer df.Close()
			out = df
		}
		device = cutter.NewRealDevice(out, *stepsPerInch, log)
	}

	device.Start()
	state := svgrender.New(device, *padding, log)
	if err := walk(f, state, log); err != nil {
		device.Stop()
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	device.Stop()

	if sim != nil {
		pf, err := os.Create(*simPNG)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer pf.Close()
		if err := sim.WriteImage(pf); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

// walk decodes r as XML and drives state from the path, rect, circle,
// ellipse, line and g elements it finds.
func walk(r io.Reader, state *svgrender.State, log *slog.Logger) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if transform, ok := attr(start, "transform"); ok {
			applyTransformAttr(state, transform, log)
		}

		switch start.Name.Local {
		case "path":
			if d, ok := attr(start, "d"); ok {
				if err := runPath(state, d, log); err != nil {
					log.Warn("path parse error", "err", err)
				}
			}
		case "rect":
			x := attrFloat(start, "x", 0)
			y := attrFloat(start, "y", 0)
			w := attrFloat(start, "width", 0)
			h := attrFloat(start, "height", 0)
			rx := attrFloat(start, "rx", 0)
			ry := attrFloat(start, "ry", rx)
			state.Rectangle(x, y, w, h, rx, ry)
		case "circle":
			cx := attrFloat(start, "cx", 0)
			cy := attrFloat(start, "cy", 0)
			r := attrFloat(start, "r", 0)
			state.MoveTo(geom.Pt(cx+r, cy))
			state.Ellipse(cx, cy, r, r)
		case "ellipse":
			cx := attrFloat(start, "cx", 0)
			cy := attrFloat(start, "cy", 0)
			rx := attrFloat(start, "rx", 0)
			ry := attrFloat(start, "ry", 0)
			state.MoveTo(geom.Pt(cx+rx, cy))
			state.Ellipse(cx, cy, rx, ry)
		case "line":
			x1 := attrFloat(start, "x1", 0)
			y1 := attrFloat(start, "y1", 0)
			x2 := attrFloat(start, "x2", 0)
			y2 := attrFloat(start, "y2", 0)
			state.MoveTo(geom.Pt(x1, y1))
			state.Line(geom.Pt(x2, y2))
		}
	}
}

func attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrFloat(start xml.StartElement, name string, def float64) float64 {
	v, ok := attr(start, name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

// applyTransformAttr understands a single matrix(a,b,c,d,e,f),
// translate(x,y) or scale(sx,sy) transform function, matching the subset of SVG
// transform syntax the reference firmware emitted. As with
// svgrender.State.SetTransform, a nested transform replaces rather
// than composes with its parent.
func applyTransformAttr(state *svgrender.State, raw string, log *slog.Logger) {
	raw = strings.TrimSpace(raw)
	open := strings.Index(raw, "(")
	shut := strings.LastIndex(raw, ")")
	if open < 0 || shut < 0 || shut < open {
		return
	}
	name := strings.TrimSpace(raw[:open])
	nums := parseFloats(raw[open+1 : shut])

	switch name {
	case "matrix":
		if len(nums) != 6 {
			log.Warn("matrix transform needs 6 values", "got", len(nums))
			return
		}
		state.SetTransform(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
	case "translate":
		x := 0.0
		y := 0.0
		if len(nums) > 0 {
			x = nums[0]
		}
		if len(nums) > 1 {
			y = nums[1]
		}
		state.SetTransform(1, 0, 0, 1, x, y)
	case "scale":
		sx := 1.0
		sy := sx
		if len(nums) > 0 {
			sx = nums[0]
			sy = sx
		}
		if len(nums) > 1 {
			sy = nums[1]
		}
		state.SetTransform(sx, 0, 0, sy, 0, 0)
	default:
		log.Debug("unsupported transform function", "name", name)
	}
}

// runPath tokenizes an SVG path "d" attribute and drives state through
// its moveto/lineto/curveto/arc/close commands. Smooth curve variants
// (S, T) use the current point as the control point that SVG would
// reflect from the previous segment; no reflection is computed.
func runPath(state *svgrender.State, d string, log *slog.Logger) error {
	toks := tokenizePath(d)
	i := 0
	var cur geom.Point
	var subpathStart geom.Point

	next := func(n int) ([]float64, bool) {
		if i+n > len(toks.nums) {
			return nil, false
		}
		vals := toks.nums[i : i+n]
		i += n
		return vals, true
	}

	for _, cmd := range toks.cmds {
		rel := cmd.letter >= 'a' && cmd.letter <= 'z'
		letter := cmd.letter
		if rel {
			letter -= 'a' - 'A'
		}
		i = cmd.start

		resolve := func(x, y float64) geom.Point {
			if rel {
				return geom.Pt(cur.X+x, cur.Y+y)
			}
			return geom.Pt(x, y)
		}

		switch letter {
		case 'M':
			vals, ok := next(2)
			if !ok {
				return fmt.Errorf("M: expected 2 values")
			}
			cur = resolve(vals[0], vals[1])
			subpathStart = cur
			state.MoveTo(cur)
			for i+1 < cmd.end {
				vals, ok := next(2)
				if !ok {
					break
				}
				cur = resolve(vals[0], vals[1])
				state.Line(cur)
			}
		case 'L':
			for i+1 < cmd.end {
				vals, ok := next(2)
				if !ok {
					break
				}
				cur = resolve(vals[0], vals[1])
				state.Line(cur)
			}
		case 'H':
			for i < cmd.end {
				vals, ok := next(1)
				if !ok {
					break
				}
				x := vals[0]
				if rel {
					x += cur.X
				}
				cur = geom.Pt(x, cur.Y)
				state.Line(cur)
			}
		case 'V':
			for i < cmd.end {
				vals, ok := next(1)
				if !ok {
					break
				}
				y := vals[0]
				if rel {
					y += cur.Y
				}
				cur = geom.Pt(cur.X, y)
				state.Line(cur)
			}
		case 'C':
			for i+5 < cmd.end {
				vals, ok := next(6)
				if !ok {
					break
				}
				p1 := resolve(vals[0], vals[1])
				p2 := resolve(vals[2], vals[3])
				p3 := resolve(vals[4], vals[5])
				state.CurveTo(cur, p1, p2, p3)
				cur = p3
			}
		case 'S':
			for i+3 < cmd.end {
				vals, ok := next(4)
				if !ok {
					break
				}
				p2 := resolve(vals[0], vals[1])
				p3 := resolve(vals[2], vals[3])
				state.CurveTo(cur, cur, p2, p3)
				cur = p3
			}
		case 'Q':
			for i+3 < cmd.end {
				vals, ok := next(4)
				if !ok {
					break
				}
				q1 := resolve(vals[0], vals[1])
				q2 := resolve(vals[2], vals[3])
				state.Quadratic(q1, q2)
				cur = q2
			}
		case 'T':
			for i+1 < cmd.end {
				vals, ok := next(2)
				if !ok {
					break
				}
				q2 := resolve(vals[0], vals[1])
				state.Quadratic(cur, q2)
				cur = q2
			}
		case 'A':
			for i+6 < cmd.end {
				vals, ok := next(7)
				if !ok {
					break
				}
				rx, ry, rot := vals[0], vals[1], vals[2]
				largeArc := vals[3] != 0
				sweep := vals[4] != 0
				end := resolve(vals[5], vals[6])
				state.Arc(rx, ry, rot, largeArc, sweep, end)
				cur = end
			}
		case 'Z':
			state.ClosePath()
			cur = subpathStart
		default:
			log.Debug("unsupported path command", "letter", string(letter))
		}
	}
	return nil
}

type pathCommand struct {
	letter     byte
	start, end int // index range into the shared nums slice
}

type tokenizedPath struct {
	cmds []pathCommand
	nums []float64
}

// tokenizePath splits an SVG path "d" string into commands and a flat
// number list, in the style of a manual single-pass scanner: numbers
// may run together without separating whitespace (SVG allows
// "1.5-2.3" to mean two numbers split at the sign).
func tokenizePath(d string) tokenizedPath {
	var out tokenizedPath
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case isPathLetter(c):
			start := len(out.nums)
			i++
			for i < len(d) {
				for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\t' || d[i] == '\n' || d[i] == '\r') {
					i++
				}
				if i >= len(d) || !isNumberStart(d[i]) {
					break
				}
				j := scanNumber(d, i)
				if v, err := strconv.ParseFloat(d[i:j], 64); err == nil {
					out.nums = append(out.nums, v)
				}
				i = j
			}
			out.cmds = append(out.cmds, pathCommand{letter: c, start: start, end: len(out.nums)})
		default:
			i++
		}
	}
	return out
}

func isPathLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// scanNumber returns the end index of the number starting at i,
// handling a single leading sign, digits, at most one decimal point,
// and an optional exponent.
func scanNumber(d string, i int) int {
	j := i
	if j < len(d) && (d[j] == '-' || d[j] == '+') {
		j++
	}
	sawDot := false
	for j < len(d) {
		c := d[j]
		if c >= '0' && c <= '9' {
			j++
			continue
		}
		if c == '.' && !sawDot {
			sawDot = true
			j++
			continue
		}
		break
	}
	if j < len(d) && (d[j] == 'e' || d[j] == 'E') {
		k := j + 1
		if k < len(d) && (d[k] == '-' || d[k] == '+') {
			k++
		}
		if k < len(d) && d[k] >= '0' && d[k] <= '9' {
			for k < len(d) && d[k] >= '0' && d[k] <= '9' {
				k++
			}
			j = k
		}
	}
	if j == i {
		j++ // always make progress
	}
	return j
}

// parseFloats parses a comma/space separated list of floats, used for
// transform function arguments.
func parseFloats(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
