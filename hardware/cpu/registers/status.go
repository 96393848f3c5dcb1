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

package registers

import "strings"

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// The flags are stored as individual bools. The packed byte form, with the
// layout `S Z 0 AC 0 P 1 CY`, only ever exists on the stack as the low half
// of the PSW. The Value() and FromValue() functions convert between the two
// forms and are the only places where the fixed bits (bit 1 always set, bits
// 3 and 5 always clear) need to be considered.
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}

	s.WriteRune('0')

	if sr.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}

	s.WriteRune('0')

	if sr.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}

	s.WriteRune('1')

	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state. The packed Value() of a reset status
// register is 0x02, the fixed bit alone.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack as the low byte of the PSW. The fixed bits are asserted
// here: bit 1 is always set, bits 3 and 5 always clear.
func (sr StatusRegister) Value() uint8 {
	var v uint8 = 0x02

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack by POP PSW, for
// example) to the StatusRegister struct receiver. The fixed bits in the
// argument are ignored, which is what re-asserts them on the next Value().
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}

// SetResult sets the Sign, Zero and Parity flags from an 8-bit result. These
// three flags are always set together and always by the same rule; the
// arithmetic flags CY and AC are operation specific and are handled in the
// cpu package.
func (sr *StatusRegister) SetResult(result uint8) {
	sr.Sign = result&0x80 == 0x80
	sr.Zero = result == 0
	sr.Parity = parity(result)
}

// parity returns true when the number of set bits in v is even.
func parity(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}
