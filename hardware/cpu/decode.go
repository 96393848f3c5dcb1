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

// The 8080 opcode map names registers, register pairs and conditions with
// small bit-fields embedded in the opcode byte. The functions in this file
// resolve those fields. They are shared by every instruction family and are
// pure over the CPU state and the field value.

// 3-bit register field values. regM names the memory byte addressed by HL
// rather than a register; reads and writes of regM go through the memory
// bus.
const (
	regB = 0x00
	regC = 0x01
	regD = 0x02
	regE = 0x03
	regH = 0x04
	regL = 0x05
	regM = 0x06
	regA = 0x07
)

// regRead resolves a 3-bit register field to its current value.
func (mc *CPU) regRead(field uint8) uint8 {
	switch field & 0x07 {
	case regB:
		return mc.B.Value()
	case regC:
		return mc.C.Value()
	case regD:
		return mc.D.Value()
	case regE:
		return mc.E.Value()
	case regH:
		return mc.H.Value()
	case regL:
		return mc.L.Value()
	case regM:
		return mc.mem.Read(mc.HL())
	case regA:
		return mc.A.Value()
	}
	panic("impossible register field")
}

// regWrite stores a value through a 3-bit register field.
func (mc *CPU) regWrite(field uint8, val uint8) {
	switch field & 0x07 {
	case regB:
		mc.B.Load(val)
	case regC:
		mc.C.Load(val)
	case regD:
		mc.D.Load(val)
	case regE:
		mc.E.Load(val)
	case regH:
		mc.H.Load(val)
	case regL:
		mc.L.Load(val)
	case regM:
		mc.mem.Write(mc.HL(), val)
	case regA:
		mc.A.Load(val)
	}
}

// pairRead resolves a 2-bit register pair field: BC, DE, HL or SP.
func (mc *CPU) pairRead(rp uint8) uint16 {
	switch rp & 0x03 {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	case 3:
		return mc.SP.Address()
	}
	panic("impossible register pair field")
}

// pairWrite stores a 16-bit value through a 2-bit register pair field.
func (mc *CPU) pairWrite(rp uint8, val uint16) {
	switch rp & 0x03 {
	case 0:
		mc.setBC(val)
	case 1:
		mc.setDE(val)
	case 2:
		mc.setHL(val)
	case 3:
		mc.SP.Load(val)
	}
}

// stackPairRead is the variant of pairRead used by PUSH. Field value 3 names
// the PSW rather than SP.
func (mc *CPU) stackPairRead(rp uint8) uint16 {
	if rp&0x03 == 3 {
		return mc.psw()
	}
	return mc.pairRead(rp)
}

// stackPairWrite is the variant of pairWrite used by POP. Field value 3
// names the PSW rather than SP.
func (mc *CPU) stackPairWrite(rp uint8, val uint16) {
	if rp&0x03 == 3 {
		mc.setPSW(val)
		return
	}
	mc.pairWrite(rp, val)
}

// condition evaluates a 3-bit condition field against the current flags:
// NZ, Z, NC, C, PO, PE, P, M for values 0 to 7.
func (mc *CPU) condition(ccc uint8) bool {
	switch ccc & 0x07 {
	case 0:
		return !mc.Status.Zero
	case 1:
		return mc.Status.Zero
	case 2:
		return !mc.Status.Carry
	case 3:
		return mc.Status.Carry
	case 4:
		return !mc.Status.Parity
	case 5:
		return mc.Status.Parity
	case 6:
		return !mc.Status.Sign
	case 7:
		return mc.Status.Sign
	}
	panic("impossible condition field")
}
