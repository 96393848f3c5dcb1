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

// Package hardware assembles the emulated machine: the 8080 itself, the
// flat 64KiB of RAM and the I/O port bus.
//
// The machine is deliberately anonymous. The 8080 appeared in hundreds of
// boxes and the only thing this emulation assumes about its surroundings is
// what CP/M assumed: a processor, memory from 0x0000 to 0xFFFF, and a
// console reachable through the BDOS (see the cpm package). Peripherals on
// the port bus are supplied by the driver.
//
// The machine is single-threaded and purely synchronous. One call to Step()
// executes one instruction; the caller chooses when to call and what to do
// with the returned cycle count.
package hardware
