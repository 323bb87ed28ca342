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

// Command gcodefile drives a cutter from a G-code file, either against
// a simulator that writes a PNG preview or against a real device over
// a textual step-command stream.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vangdfang/libcutter/cutter"
	"github.com/vangdfang/libcutter/gcode"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("gcodefile", flag.ContinueOnError)
	var (
		simPNG       = fs.String("sim", "", "write a simulator preview PNG to this path instead of driving a real device")
		devicePath   = fs.String("device", "", "write real-device step commands to this path (default: stdout)")
		stepsPerInch = fs.Float64("steps-per-inch", 1000, "real device step resolution")
		width        = fs.Float64("width", 6, "simulator media width, inches")
		height       = fs.Float64("height", 12, "simulator media height, inches")
		verbose      = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gcodefile [flags] <file.gcode>")
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
	in := gcode.NewInterpreter(device, log)
	outcome := in.ParseFile(f)
	device.Stop()

	if outcome.Kind == gcode.Errored {
		fmt.Fprintln(os.Stderr, outcome.Err)
		return 1
	}

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
