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

package cpu

// The accumulator operations and their flag effects. The rules here are the
// ones that validate against CPUDIAG and 8080EXM; several of them differ
// from the Z80 and from what informal references claim, most notably the AC
// behaviour of ANA and DAA.

// add performs A := A + rhs + carryIn and updates all five flags. carryIn
// must be 0 or 1.
func (mc *CPU) add(rhs uint8, carryIn uint8) {
	lhs := mc.A.Value()
	full := uint16(lhs) + uint16(rhs) + uint16(carryIn)
	result := uint8(full)

	mc.Status.SetResult(result)
	mc.Status.Carry = full > 0xff
	mc.Status.AuxCarry = (lhs&0x0f)+(rhs&0x0f)+carryIn > 0x0f

	mc.A.Load(result)
}

// compare computes A - rhs - borrowIn for the flags alone and returns the
// 8-bit result without storing it. CMP and CPI use it directly; sub stores
// the result as well.
//
// The auxiliary carry is a borrow from bit 4: the nibble subtraction is
// widened to int so that the sign of the difference is observable.
func (mc *CPU) compare(rhs uint8, borrowIn uint8) uint8 {
	lhs := mc.A.Value()
	result := lhs - rhs - borrowIn

	mc.Status.SetResult(result)
	mc.Status.Carry = uint16(lhs) < uint16(rhs)+uint16(borrowIn)
	mc.Status.AuxCarry = int(lhs&0x0f)-int(rhs&0x0f)-int(borrowIn) < 0

	return result
}

// sub performs A := A - rhs - borrowIn and updates all five flags. borrowIn
// must be 0 or 1.
func (mc *CPU) sub(rhs uint8, borrowIn uint8) {
	mc.A.Load(mc.compare(rhs, borrowIn))
}

// and performs A := A & rhs. CY is cleared. AC takes bit 3 of the OR of the
// two operands, the documented behaviour of the 8080 (the Z80 always sets
// its half-carry for AND).
func (mc *CPU) and(rhs uint8) {
	lhs := mc.A.Value()
	mc.Status.AuxCarry = (lhs|rhs)&0x08 == 0x08

	result := lhs & rhs
	mc.Status.SetResult(result)
	mc.Status.Carry = false

	mc.A.Load(result)
}

// or performs A := A | rhs. CY and AC are cleared.
func (mc *CPU) or(rhs uint8) {
	result := mc.A.Value() | rhs
	mc.Status.SetResult(result)
	mc.Status.Carry = false
	mc.Status.AuxCarry = false
	mc.A.Load(result)
}

// xor performs A := A ^ rhs. CY and AC are cleared.
func (mc *CPU) xor(rhs uint8) {
	result := mc.A.Value() ^ rhs
	mc.Status.SetResult(result)
	mc.Status.Carry = false
	mc.Status.AuxCarry = false
	mc.A.Load(result)
}

// daa decimal-adjusts the accumulator after a BCD addition.
//
// The order of events matters and is easy to get wrong:
//
//  1. a low-nibble correction of 0x06 applies when AC is set or the low
//     nibble exceeds 9
//  2. a high-nibble correction of 0x60 applies when CY is set or A exceeds
//     0x99, and only that correction can set CY. CY is never cleared by DAA
//  3. AC reports the carry out of bit 3 during the adjustment itself
func (mc *CPU) daa() {
	a := mc.A.Value()

	var correction uint8
	newCarry := mc.Status.Carry

	if mc.Status.AuxCarry || a&0x0f > 0x09 {
		correction |= 0x06
	}
	if mc.Status.Carry || a > 0x99 {
		correction |= 0x60
		newCarry = true
	}

	mc.Status.AuxCarry = (a&0x0f)+(correction&0x0f) > 0x0f

	a += correction
	mc.Status.SetResult(a)
	mc.Status.Carry = newCarry
	mc.A.Load(a)
}

// inr increments the value named by the 3-bit register field. CY is not
// affected; AC is the carry out of the low nibble.
func (mc *CPU) inr(field uint8) {
	v := mc.regRead(field)
	result := v + 1

	mc.Status.AuxCarry = v&0x0f == 0x0f
	mc.Status.SetResult(result)

	mc.regWrite(field, result)
}

// dcr decrements the value named by the 3-bit register field. CY is not
// affected; AC is the borrow into the low nibble.
func (mc *CPU) dcr(field uint8) {
	v := mc.regRead(field)
	result := v - 1

	mc.Status.AuxCarry = v&0x0f == 0x00
	mc.Status.SetResult(result)

	mc.regWrite(field, result)
}

// dad performs HL := HL + rp. Only CY is affected.
func (mc *CPU) dad(rp uint8) {
	full := uint32(mc.HL()) + uint32(mc.pairRead(rp))
	mc.Status.Carry = full > 0xffff
	mc.setHL(uint16(full))
}
