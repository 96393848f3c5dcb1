// This file is part of Gopher80.
//
// Gopher80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher80.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher80/comloader"
	"github.com/jetsetilly/gopher80/cpm"
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware"
)

// ClockHz is the clock speed of the silicon 8080 this emulation is measured
// against.
const ClockHz = 2000000

// the termination condition is only checked every PerformanceBrake
// instructions. polling the timer channel is expensive relative to an
// instruction step.
const PerformanceBrake = 1000

// Check the performance of the emulator using the supplied program.
//
// Emulation will run for the specified duration against a dead console and
// the effective clock speed is reported. Profiling output is created as
// defined by the cpuprofile and memprofile arguments.
//
// If the program terminates before the duration has elapsed the measurement
// covers the shorter, actual run.
func Check(output io.Writer, ld *comloader.Loader, duration string, cpuprofile bool, memprofile bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	sys := hardware.NewCPM(nil)
	cpm.Setup(sys, ld)

	// total cycles returned by the core during the measurement
	var cycles uint64

	// the timer expires through this channel
	timerChan := make(chan bool, 1)

	var elapsed time.Duration

	runner := func() error {
		startTime := time.Now()
		defer func() {
			elapsed = time.Since(startTime)
		}()

		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0

		for {
			serviced, err := cpm.ServiceBDOS(sys, nil)
			if err != nil {
				return err
			}
			if serviced {
				continue
			}

			if cpm.Finished(sys) {
				return nil
			}

			cycles += uint64(sys.Step())

			brake++
			if brake >= PerformanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return nil
				default:
				}
			}
		}
	}

	err = runProfiler(cpuprofile, memprofile, runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// calculate effective clock speed
	secs := elapsed.Seconds()
	mhz := float64(cycles) / secs / 1e6
	ratio := float64(cycles) / secs / ClockHz

	output.Write([]byte(fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1fx silicon\n",
		mhz, cycles, secs, ratio)))

	return nil
}
