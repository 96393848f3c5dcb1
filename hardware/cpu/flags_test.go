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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/test"
)

// the reference flag rules, written independently of the implementation in
// the cpu package. the exhaustive tests below compare the CPU against these
// for every operand combination.

func oracleParity(v uint8) bool {
	n := 0
	for i := 0; i < 8; i++ {
		if v&(1<<i) != 0 {
			n++
		}
	}
	return n%2 == 0
}

// oracleFlags packs the expected flag byte from individual flag values.
func oracleFlags(result uint8, ac bool, cy bool) uint8 {
	var f uint8 = 0x02
	if result&0x80 != 0 {
		f |= 0x80
	}
	if result == 0 {
		f |= 0x40
	}
	if ac {
		f |= 0x10
	}
	if oracleParity(result) {
		f |= 0x04
	}
	if cy {
		f |= 0x01
	}
	return f
}

func TestAddFlagsExhaustive(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	// ADC B covers ADD when the carry in is zero: every (a, b, cin)
	// combination goes through the same flag rules
	mem.putInstructions(0x0000, 0x88) // ADC B

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for cin := 0; cin <= 1; cin++ {
				mc.PC.Load(0x0000)
				mc.A.Load(uint8(a))
				mc.B.Load(uint8(b))
				mc.Status.Reset()
				mc.Status.Carry = cin == 1

				mc.ExecuteInstruction()

				full := a + b + cin
				result := uint8(full)
				ac := (a&0x0f)+(b&0x0f)+cin > 0x0f

				if mc.A.Value() != result {
					t.Fatalf("ADC result wrong for (%#02x, %#02x, %d): %#02x", a, b, cin, mc.A.Value())
				}

				expected := oracleFlags(result, ac, full > 0xff)
				if mc.Status.Value() != expected {
					t.Fatalf("ADC flags wrong for (%#02x, %#02x, %d): %#02x  - wanted %#02x",
						a, b, cin, mc.Status.Value(), expected)
				}
			}
		}
	}
}

func TestSubFlagsExhaustive(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	mem.putInstructions(0x0000, 0x98) // SBB B

	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for bin := 0; bin <= 1; bin++ {
				mc.PC.Load(0x0000)
				mc.A.Load(uint8(a))
				mc.B.Load(uint8(b))
				mc.Status.Reset()
				mc.Status.Carry = bin == 1

				mc.ExecuteInstruction()

				result := uint8(a - b - bin)
				cy := a < b+bin
				ac := (a & 0x0f) < (b&0x0f)+bin

				if mc.A.Value() != result {
					t.Fatalf("SBB result wrong for (%#02x, %#02x, %d): %#02x", a, b, bin, mc.A.Value())
				}

				expected := oracleFlags(result, ac, cy)
				if mc.Status.Value() != expected {
					t.Fatalf("SBB flags wrong for (%#02x, %#02x, %d): %#02x  - wanted %#02x",
						a, b, bin, mc.Status.Value(), expected)
				}
			}
		}
	}
}

// oracleDAA implements the decimal adjust rule directly from the documented
// behaviour, for comparison against the CPU.
func oracleDAA(a uint8, cy bool, ac bool) (uint8, bool, bool) {
	var correction uint8
	newCY := cy

	if ac || a&0x0f > 0x09 {
		correction |= 0x06
	}
	if cy || a > 0x99 {
		correction |= 0x60
		newCY = true
	}

	newAC := (a&0x0f)+(correction&0x0f) > 0x0f

	return a + correction, newCY, newAC
}

func TestDecimalAdjustExhaustive(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	mem.putInstructions(0x0000, 0x27) // DAA

	for a := 0; a <= 0xff; a++ {
		for cy := 0; cy <= 1; cy++ {
			for ac := 0; ac <= 1; ac++ {
				mc.PC.Load(0x0000)
				mc.A.Load(uint8(a))
				mc.Status.Reset()
				mc.Status.Carry = cy == 1
				mc.Status.AuxCarry = ac == 1

				mc.ExecuteInstruction()

				result, newCY, newAC := oracleDAA(uint8(a), cy == 1, ac == 1)

				if mc.A.Value() != result {
					t.Fatalf("DAA result wrong for (%#02x, %d, %d): %#02x  - wanted %#02x",
						a, cy, ac, mc.A.Value(), result)
				}

				expected := oracleFlags(result, newAC, newCY)
				if mc.Status.Value() != expected {
					t.Fatalf("DAA flags wrong for (%#02x, %d, %d): %#02x  - wanted %#02x",
						a, cy, ac, mc.Status.Value(), expected)
				}
			}
		}
	}
}

func TestIncrementDecrementFlags(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	// INR and DCR never touch CY, whatever its state
	mc.Status.Carry = true

	mc.B.Load(0x0f)
	mem.putInstructions(0x0000, 0x04) // INR B
	test.Equate(t, mc.ExecuteInstruction(), 5)
	test.Equate(t, mc.B.Value(), 0x10)
	test.Equate(t, mc.Status.AuxCarry, true)
	test.Equate(t, mc.Status.Carry, true)

	// the nibble carry is only about the low nibble
	mc.PC.Load(0x0000)
	mc.B.Load(0x10)
	test.Equate(t, mc.ExecuteInstruction(), 5)
	test.Equate(t, mc.Status.AuxCarry, false)

	// 0xFF wraps to zero without touching CY
	mc.Status.Carry = false
	mc.PC.Load(0x0000)
	mc.B.Load(0xff)
	test.Equate(t, mc.ExecuteInstruction(), 5)
	test.Equate(t, mc.B.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, false)

	// DCR: the borrow into the low nibble
	mc.C.Load(0x10)
	mem.putInstructions(0x0010, 0x0d) // DCR C
	mc.PC.Load(0x0010)
	test.Equate(t, mc.ExecuteInstruction(), 5)
	test.Equate(t, mc.C.Value(), 0x0f)
	test.Equate(t, mc.Status.AuxCarry, true)

	mc.PC.Load(0x0010)
	mc.C.Load(0x0f)
	test.Equate(t, mc.ExecuteInstruction(), 5)
	test.Equate(t, mc.Status.AuxCarry, false)

	// DCR of zero wraps to 0xFF without touching CY
	mc.Status.Carry = false
	mc.PC.Load(0x0010)
	mc.C.Load(0x00)
	test.Equate(t, mc.ExecuteInstruction(), 5)
	test.Equate(t, mc.C.Value(), 0xff)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.AuxCarry, true)
}

func TestIncrementMemory(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	mc.H.Load(0x20)
	mc.L.Load(0x00)
	mem.Write(0x2000, 0x41)

	mem.putInstructions(0x0000, 0x34, 0x35) // INR M; DCR M

	// memory operands cost ten cycles
	test.Equate(t, mc.ExecuteInstruction(), 10)
	mem.assert(t, 0x2000, 0x42)

	test.Equate(t, mc.ExecuteInstruction(), 10)
	mem.assert(t, 0x2000, 0x41)
}

func TestLogicalAuxCarry(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	// ANA takes AC from bit 3 of the OR of the operands. 0x08 | 0x01 has
	// bit 3 set even though the result does not
	mc.A.Load(0x08)
	mc.B.Load(0x01)
	mc.Status.Carry = true
	mem.putInstructions(0x0000, 0xa0) // ANA B

	test.Equate(t, mc.ExecuteInstruction(), 4)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.AuxCarry, true)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Zero, true)

	// neither operand with bit 3: AC clear
	mc.PC.Load(0x0000)
	mc.A.Load(0x07)
	mc.B.Load(0x03)
	test.Equate(t, mc.ExecuteInstruction(), 4)
	test.Equate(t, mc.Status.AuxCarry, false)

	// ORA and XRA clear both CY and AC
	mc.Status.Carry = true
	mc.Status.AuxCarry = true
	mem.putInstructions(0x0001, 0xb0) // ORA B
	test.Equate(t, mc.ExecuteInstruction(), 4)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.AuxCarry, false)

	mc.Status.Carry = true
	mc.Status.AuxCarry = true
	mem.putInstructions(0x0002, 0xa8) // XRA B
	test.Equate(t, mc.ExecuteInstruction(), 4)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.AuxCarry, false)
}

func TestCompareLeavesAccumulator(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	mc.A.Load(0x10)
	mc.B.Load(0x20)
	mem.putInstructions(0x0000,
		0xb8,       // CMP B
		0xfe, 0x10, // CPI 0x10
	)

	test.Equate(t, mc.ExecuteInstruction(), 4)
	test.Equate(t, mc.A.Value(), 0x10)
	test.Equate(t, mc.Status.Carry, true) // 0x10 < 0x20

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x10)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, false)
}

func TestDoubleAdd(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	// DAD only ever touches CY. park something in the other flags first
	mc.Status.Zero = true
	mc.Status.Sign = true

	mc.H.Load(0xf0)
	mc.L.Load(0x00)
	mc.B.Load(0x10)
	mc.C.Load(0x01)

	mem.putInstructions(0x0000, 0x09, 0x29) // DAD B; DAD H

	test.Equate(t, mc.ExecuteInstruction(), 10)
	test.Equate(t, mc.HL(), 0x0001)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Sign, true)

	// DAD H doubles HL. no carry this time
	test.Equate(t, mc.ExecuteInstruction(), 10)
	test.Equate(t, mc.HL(), 0x0002)
	test.Equate(t, mc.Status.Carry, false)
}

func TestImmediateArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	mem.putInstructions(0x0000,
		0x3e, 0x10, // MVI A,0x10
		0xc6, 0x22, // ADI 0x22
		0xce, 0x00, // ACI 0
		0xd6, 0x02, // SUI 2
		0xde, 0x00, // SBI 0
		0xe6, 0xf0, // ANI 0xF0
		0xf6, 0x0f, // ORI 0x0F
		0xee, 0xff, // XRI 0xFF
	)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x32)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x32)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x30)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x30)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x30)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x3f)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0xc0)
}

func TestArithmeticMemoryOperand(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem, nil)

	mc.H.Load(0x20)
	mc.L.Load(0x00)
	mem.Write(0x2000, 0x01)
	mc.A.Load(0x41)

	mem.putInstructions(0x0000, 0x86, 0x96) // ADD M; SUB M

	// the memory operand costs seven cycles instead of four
	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x42)

	test.Equate(t, mc.ExecuteInstruction(), 7)
	test.Equate(t, mc.A.Value(), 0x41)
}
