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

package hardware

import (
	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/hardware/memory"
	"github.com/jetsetilly/gopher80/hardware/ports"
)

// CPM is the main container for the emulated components of the machine: an
// 8080, 64KiB of RAM and whatever the machine builder has put on the I/O
// port bus.
type CPM struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewCPM creates a new machine and everything associated with the hardware.
// The bus argument attaches peripherals to the I/O ports; nil is a machine
// with nothing connected.
func NewCPM(bus ports.Bus) *CPM {
	sys := &CPM{}
	sys.Mem = memory.NewRAM()
	sys.CPU = cpu.NewCPU(sys.Mem, bus)
	return sys
}

// Reset the machine: CPU to its power-on state and memory zeroed.
func (sys *CPM) Reset() {
	sys.CPU.Reset()
	sys.Mem.Clear()
}

// Step the machine forward one instruction. Returns the number of clock
// cycles consumed.
func (sys *CPM) Step() int {
	return sys.CPU.ExecuteInstruction()
}
