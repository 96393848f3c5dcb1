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

// Package execution records the result of the most recently executed
// instruction: where it was fetched from, its opcode and its cycle count.
// The CPU tests use it to check which opcode was executed last.
package execution

import "fmt"

// Result records the details of one executed instruction.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// the opcode byte itself
	Opcode uint8

	// number of clock cycles the instruction consumed
	Cycles int
}

func (r Result) String() string {
	return fmt.Sprintf("%#04x: %#02x (%d cycles)", r.Address, r.Opcode, r.Cycles)
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	r.Address = 0
	r.Opcode = 0
	r.Cycles = 0
}
