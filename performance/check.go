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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/tinycanvas/curated"
	"github.com/jetsetilly/tinycanvas/hardware"
	"github.com/jetsetilly/tinycanvas/hardware/i2c"
)

// checking the timer channel is relatively expensive so it is only polled
// every checkBrake steps.
const checkBrake = 1000

// Check the performance of the paint engine.
//
// The canvas is driven by the autopilot for the specified duration and the
// achieved step rate reported. When busPoll is true a second goroutine reads
// the sample register over the bus as fast as it can, exercising the clock
// domain crossing in the way a real deployment would.
//
// A cpu, memory or execution trace profile is created as defined by the
// profile argument.
func Check(output io.Writer, profile Profile, duration string, busPoll bool) error {
	cvs := hardware.NewCanvas()

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var steps int
	var reads int

	runner := func() error {
		// expires once the measurement period has elapsed
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// the bus poller counts its own transactions and reports the total
		// when stopped
		var stopBus chan bool
		var busReads chan int

		if busPoll {
			stopBus = make(chan bool)
			busReads = make(chan int)

			go func() {
				m := i2c.NewMaster(cvs.Protocol)
				n := 0
				for {
					select {
					case <-stopBus:
						busReads <- n
						return
					default:
						if _, err := m.ReadSample(); err == nil {
							n++
						}
					}
				}
			}()
		}

		pilot := &autopilot{}
		brake := 0

		for {
			cvs.SetInput(pilot.next())
			cvs.Step()
			steps++

			brake++
			if brake >= checkBrake {
				brake = 0
				select {
				case <-timerChan:
					if busPoll {
						stopBus <- true
						reads = <-busReads
					}
					return nil
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "canvas", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(steps) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f steps per second (%d steps in %.2f seconds)\n", rate, steps, dur.Seconds())))
	if busPoll {
		output.Write([]byte(fmt.Sprintf("%d bus transactions (%.0f per second)\n", reads, float64(reads)/dur.Seconds())))
	}

	return nil
}
