// This file is part of TinyCanvas.
//
// TinyCanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyCanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyCanvas.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/tinycanvas/curated"
	"github.com/jetsetilly/tinycanvas/hardware"
	"github.com/jetsetilly/tinycanvas/hardware/controller"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/logger"
	"github.com/jetsetilly/tinycanvas/modalflag"
	"github.com/jetsetilly/tinycanvas/performance"
	"github.com/jetsetilly/tinycanvas/statsview"
	"github.com/jetsetilly/tinycanvas/userinput"
	"github.com/jetsetilly/tinycanvas/userinput/easyterm/ansi"
	"github.com/jetsetilly/tinycanvas/version"
)

// the number of steps to run after every keypress. generous enough for the
// largest possible burst (a full canvas fill) to complete.
const stepsPerKey = 70000

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// pixelEcho prints every emitted pixel to the terminal, in the pixel's own
// colour where possible. It is the only place the picture exists: the engine
// itself keeps no image.
type pixelEcho struct{}

func (p *pixelEcho) SetPixel(ev paint.Event) {
	pen, ok := ansi.Pens[ev.Colour.String()]
	if !ok {
		pen = ansi.NormalPen
	}
	fmt.Printf("  %s%s%s\r\n", pen, ev, ansi.NormalPen)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	stats := md.AddBool("statsview", false, "run the statsview server")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("unavailable feature: %s", "statsview")
		}
		statsview.Launch(os.Stdout)
	}

	cvs := hardware.NewCanvas()
	cvs.AttachRenderer(&pixelEcho{})

	kb, err := userinput.NewKeyboard()
	if err != nil {
		return err
	}
	defer kb.CleanUp()

	fmt.Printf("%s. 'q' to quit, 'x' to reset\r\n", version.ApplicationName)
	fmt.Printf("%s\r\n", cvs)

	for ev := range kb.Events() {
		switch {
		case ev.Quit:
			return nil

		case ev.Reset:
			cvs.Reset()

		default:
			// hold the levels for one step and release, letting any burst
			// run to completion
			cvs.SetInput(ev.State)
			cvs.Step()
			cvs.SetInput(controller.State{Present: true})
			for i := 0; i < stepsPerKey; i++ {
				cvs.Step()
			}
		}

		snap := cvs.Mailbox.Peek()
		fmt.Printf("%s [sample (%d,%d) status %#02x]\r\n", cvs, snap.X, snap.Y, snap.Status)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through the profiler (cpu, mem, trace, all)")
	busPoll := md.AddBool("bus", false, "poll the sample register over the bus while running")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, *duration, *busPoll)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	vrs, rev, release := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, vrs)
	if *revision && !release {
		fmt.Println(rev)
	}

	return nil
}
