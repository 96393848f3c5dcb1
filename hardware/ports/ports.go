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

// Package ports defines the I/O port bus consumed by the CPU.
//
// The 8080 has a 256 port I/O space separate from memory, reached only by
// the IN and OUT instructions. What sits behind the ports is entirely the
// machine builder's business; the CPU just presents a port number and, for
// OUT, the value of the accumulator.
//
// The Bus interface is the only capability the CPU consumes from outside
// its own state and memory. A machine with no peripherals can attach a nil
// Bus: IN then reads 0xFF, the open bus pulled high, and OUT is a sink.
package ports

// Bus is the I/O port bus. Implementations must not re-enter the CPU's
// step function.
type Bus interface {
	// Input is called on the IN instruction; its return value is placed in
	// the accumulator.
	Input(port uint8) uint8

	// Output is called on the OUT instruction with the value of the
	// accumulator.
	Output(port uint8, value uint8)
}

// OpenBus reads as 0xFF on every port and discards all writes. The value a
// real 8080 reads from a floating data bus.
const OpenBus = 0xff
