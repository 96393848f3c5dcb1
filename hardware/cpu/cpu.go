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

import (
	"fmt"

	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/hardware/cpu/registers"
	"github.com/jetsetilly/gopher80/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher80/hardware/ports"
)

// CPU implements the Intel 8080. Register logic is implemented by the types
// in the registers sub-package.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer

	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	Status registers.StatusRegister

	// the interrupt enable flip-flop. EI and DI toggle it; with no
	// interrupt controller in this machine nothing else consults it
	INTE bool

	// set by the HLT instruction. while set, ExecuteInstruction() returns
	// without fetching. cleared only by Reset()
	Halted bool

	// details of the most recently executed instruction
	LastResult execution.Result

	mem cpubus.Memory

	// the I/O port bus. a nil bus reads as open bus (0xFF) and swallows
	// writes
	bus ports.Bus
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The bus argument may be nil for a machine with no peripherals.
func NewCPU(mem cpubus.Memory, bus ports.Bus) *CPU {
	mc := &CPU{
		mem: mem,
		bus: bus,
		A:   registers.NewRegister(0, "A"),
		B:   registers.NewRegister(0, "B"),
		C:   registers.NewRegister(0, "C"),
		D:   registers.NewRegister(0, "D"),
		E:   registers.NewRegister(0, "E"),
		H:   registers.NewRegister(0, "H"),
		L:   registers.NewRegister(0, "L"),
		PC:  registers.NewProgramCounter(0),
		SP:  registers.NewStackPointer(0),
	}
	mc.Status = registers.NewStatusRegister()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s A=%s BC=%#04x DE=%#04x HL=%#04x %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A, mc.BC(), mc.DE(), mc.HL(),
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. The reset state is the documented
// power-on state: everything zero, flags showing nothing but the fixed bit.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.Status.Reset()
	mc.INTE = false
	mc.Halted = false
	mc.LastResult.Reset()
}

// register pairs are views of two 8-bit registers, high byte first.

// BC returns the B and C registers as a 16-bit pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B.Value())<<8 | uint16(mc.C.Value())
}

// DE returns the D and E registers as a 16-bit pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D.Value())<<8 | uint16(mc.E.Value())
}

// HL returns the H and L registers as a 16-bit pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H.Value())<<8 | uint16(mc.L.Value())
}

func (mc *CPU) setBC(v uint16) {
	mc.B.Load(uint8(v >> 8))
	mc.C.Load(uint8(v))
}

func (mc *CPU) setDE(v uint16) {
	mc.D.Load(uint8(v >> 8))
	mc.E.Load(uint8(v))
}

func (mc *CPU) setHL(v uint16) {
	mc.H.Load(uint8(v >> 8))
	mc.L.Load(uint8(v))
}

// the PSW is an ephemeral 16-bit view of the accumulator and the flags. it
// exists only on the stack, between PUSH PSW and POP PSW.
func (mc *CPU) psw() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
}

func (mc *CPU) setPSW(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.Status.FromValue(uint8(v))
}

// fetch8 reads the byte at PC and advances PC.
func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// fetch16 reads a little-endian word at PC and advances PC by two.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// read16 reads a little-endian word. the second byte is read from
// address+1, wrapping at the top of memory.
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// write16 writes a little-endian word. the second byte is written to
// address+1, wrapping at the top of memory.
func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

// push16 stores a word on the stack. SP is decremented by two before the
// store.
func (mc *CPU) push16(v uint16) {
	mc.SP.Add(0xfffe)
	mc.write16(mc.SP.Address(), v)
}

// pop16 retrieves a word from the stack. SP is incremented by two after the
// load.
func (mc *CPU) pop16() uint16 {
	v := mc.read16(mc.SP.Address())
	mc.SP.Add(2)
	return v
}

// ExecuteInstruction fetches, decodes and executes one instruction,
// returning the number of clock cycles it consumed. If the CPU is halted no
// fetch takes place and the four cycles of an idle machine cycle are
// returned.
//
// Every one of the 256 opcodes has a defined effect. The undocumented
// aliases present on the die are honoured: 0x08, 0x10, 0x18, 0x20, 0x28,
// 0x30 and 0x38 are NOPs, 0xCB is JMP, 0xDD, 0xED and 0xFD are CALL and
// 0xD9 is RET.
func (mc *CPU) ExecuteInstruction() int {
	if mc.Halted {
		return 4
	}

	address := mc.PC.Address()
	opcode := mc.fetch8()

	// the common bit-fields of the opcode byte
	ddd := (opcode >> 3) & 0x07
	sss := opcode & 0x07
	rp := (opcode >> 4) & 0x03

	cycles := 4

	// peel off the two big uniform blocks before dispatching on the
	// individual opcode: MOV occupies the whole of 0x40-0x7F except HLT and
	// the register ALU operations the whole of 0x80-0xBF
	switch {
	case opcode >= 0x40 && opcode <= 0x7f && opcode != 0x76:
		// MOV D,S
		mc.regWrite(ddd, mc.regRead(sss))
		if ddd == regM || sss == regM {
			cycles = 7
		} else {
			cycles = 5
		}

	case opcode >= 0x80 && opcode <= 0xbf:
		// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP S
		val := mc.regRead(sss)
		switch ddd {
		case 0:
			mc.add(val, 0)
		case 1:
			mc.add(val, mc.carryIn())
		case 2:
			mc.sub(val, 0)
		case 3:
			mc.sub(val, mc.carryIn())
		case 4:
			mc.and(val)
		case 5:
			mc.xor(val)
		case 6:
			mc.or(val)
		case 7:
			mc.compare(val, 0)
		}
		if sss == regM {
			cycles = 7
		} else {
			cycles = 4
		}

	default:
		cycles = mc.executeOpcode(opcode, ddd, rp)
	}

	mc.LastResult = execution.Result{
		Address: address,
		Opcode:  opcode,
		Cycles:  cycles,
	}

	return cycles
}

// carryIn returns the carry flag as the 0 or 1 used by ADC and SBB.
func (mc *CPU) carryIn() uint8 {
	if mc.Status.Carry {
		return 1
	}
	return 0
}

// executeOpcode handles every opcode outside the MOV and register ALU
// blocks. Returns the cycle count.
func (mc *CPU) executeOpcode(opcode uint8, ddd uint8, rp uint8) int {
	switch opcode {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		// NOP. 0x00 is the official encoding, the others are aliases
		return 4

	case 0x76:
		// HLT
		mc.Halted = true
		return 7

	case 0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e:
		// MVI D,#
		mc.regWrite(ddd, mc.fetch8())
		if ddd == regM {
			return 10
		}
		return 7

	case 0x01, 0x11, 0x21, 0x31:
		// LXI RP,#
		mc.pairWrite(rp, mc.fetch16())
		return 10

	case 0x3a:
		// LDA a
		mc.A.Load(mc.mem.Read(mc.fetch16()))
		return 13

	case 0x32:
		// STA a
		mc.mem.Write(mc.fetch16(), mc.A.Value())
		return 13

	case 0x2a:
		// LHLD a
		address := mc.fetch16()
		mc.L.Load(mc.mem.Read(address))
		mc.H.Load(mc.mem.Read(address + 1))
		return 16

	case 0x22:
		// SHLD a
		address := mc.fetch16()
		mc.mem.Write(address, mc.L.Value())
		mc.mem.Write(address+1, mc.H.Value())
		return 16

	case 0x0a:
		// LDAX BC
		mc.A.Load(mc.mem.Read(mc.BC()))
		return 7

	case 0x1a:
		// LDAX DE
		mc.A.Load(mc.mem.Read(mc.DE()))
		return 7

	case 0x02:
		// STAX BC
		mc.mem.Write(mc.BC(), mc.A.Value())
		return 7

	case 0x12:
		// STAX DE
		mc.mem.Write(mc.DE(), mc.A.Value())
		return 7

	case 0xeb:
		// XCHG
		hl := mc.HL()
		mc.setHL(mc.DE())
		mc.setDE(hl)
		return 4

	case 0xc6:
		// ADI #
		mc.add(mc.fetch8(), 0)
		return 7

	case 0xce:
		// ACI #
		mc.add(mc.fetch8(), mc.carryIn())
		return 7

	case 0xd6:
		// SUI #
		mc.sub(mc.fetch8(), 0)
		return 7

	case 0xde:
		// SBI #
		mc.sub(mc.fetch8(), mc.carryIn())
		return 7

	case 0xe6:
		// ANI #
		mc.and(mc.fetch8())
		return 7

	case 0xee:
		// XRI #
		mc.xor(mc.fetch8())
		return 7

	case 0xf6:
		// ORI #
		mc.or(mc.fetch8())
		return 7

	case 0xfe:
		// CPI #
		mc.compare(mc.fetch8(), 0)
		return 7

	case 0x04, 0x0c, 0x14, 0x1c, 0x24, 0x2c, 0x34, 0x3c:
		// INR D
		mc.inr(ddd)
		if ddd == regM {
			return 10
		}
		return 5

	case 0x05, 0x0d, 0x15, 0x1d, 0x25, 0x2d, 0x35, 0x3d:
		// DCR D
		mc.dcr(ddd)
		if ddd == regM {
			return 10
		}
		return 5

	case 0x03, 0x13, 0x23, 0x33:
		// INX RP. no flag effect
		mc.pairWrite(rp, mc.pairRead(rp)+1)
		return 5

	case 0x0b, 0x1b, 0x2b, 0x3b:
		// DCX RP. no flag effect
		mc.pairWrite(rp, mc.pairRead(rp)-1)
		return 5

	case 0x09, 0x19, 0x29, 0x39:
		// DAD RP
		mc.dad(rp)
		return 10

	case 0x27:
		// DAA
		mc.daa()
		return 4

	case 0x07:
		// RLC
		a := mc.A.Value()
		mc.Status.Carry = a&0x80 == 0x80
		mc.A.Load(a<<1 | a>>7)
		return 4

	case 0x0f:
		// RRC
		a := mc.A.Value()
		mc.Status.Carry = a&0x01 == 0x01
		mc.A.Load(a>>1 | a<<7)
		return 4

	case 0x17:
		// RAL
		a := mc.A.Value()
		mc.A.Load(a<<1 | mc.carryIn())
		mc.Status.Carry = a&0x80 == 0x80
		return 4

	case 0x1f:
		// RAR
		a := mc.A.Value()
		mc.A.Load(a>>1 | mc.carryIn()<<7)
		mc.Status.Carry = a&0x01 == 0x01
		return 4

	case 0x2f:
		// CMA. no flag effect
		mc.A.Load(^mc.A.Value())
		return 4

	case 0x3f:
		// CMC
		mc.Status.Carry = !mc.Status.Carry
		return 4

	case 0x37:
		// STC
		mc.Status.Carry = true
		return 4

	case 0xc3, 0xcb:
		// JMP a. 0xCB is an alias
		mc.PC.Load(mc.fetch16())
		return 10

	case 0xc2, 0xca, 0xd2, 0xda, 0xe2, 0xea, 0xf2, 0xfa:
		// Jccc a. the operand is consumed whether the jump is taken or not
		// and the cost is ten cycles either way
		address := mc.fetch16()
		if mc.condition(ddd) {
			mc.PC.Load(address)
		}
		return 10

	case 0xcd, 0xdd, 0xed, 0xfd:
		// CALL a. 0xDD, 0xED and 0xFD are aliases
		address := mc.fetch16()
		mc.push16(mc.PC.Address())
		mc.PC.Load(address)
		return 17

	case 0xc4, 0xcc, 0xd4, 0xdc, 0xe4, 0xec, 0xf4, 0xfc:
		// Cccc a. the operand is always consumed
		address := mc.fetch16()
		if mc.condition(ddd) {
			mc.push16(mc.PC.Address())
			mc.PC.Load(address)
			return 17
		}
		return 11

	case 0xc9, 0xd9:
		// RET. 0xD9 is an alias
		mc.PC.Load(mc.pop16())
		return 10

	case 0xc0, 0xc8, 0xd0, 0xd8, 0xe0, 0xe8, 0xf0, 0xf8:
		// Rccc
		if mc.condition(ddd) {
			mc.PC.Load(mc.pop16())
			return 11
		}
		return 5

	case 0xc7, 0xcf, 0xd7, 0xdf, 0xe7, 0xef, 0xf7, 0xff:
		// RST n. the target address is the n field scaled by eight, which
		// is the field in place
		mc.push16(mc.PC.Address())
		mc.PC.Load(uint16(opcode & 0x38))
		return 11

	case 0xe9:
		// PCHL
		mc.PC.Load(mc.HL())
		return 5

	case 0xc5, 0xd5, 0xe5, 0xf5:
		// PUSH RP. field value 3 is the PSW
		mc.push16(mc.stackPairRead(rp))
		return 11

	case 0xc1, 0xd1, 0xe1, 0xf1:
		// POP RP. field value 3 is the PSW, with the fixed flag bits
		// re-asserted by the status register conversion
		mc.stackPairWrite(rp, mc.pop16())
		return 10

	case 0xe3:
		// XTHL
		top := mc.read16(mc.SP.Address())
		mc.write16(mc.SP.Address(), mc.HL())
		mc.setHL(top)
		return 18

	case 0xf9:
		// SPHL
		mc.SP.Load(mc.HL())
		return 5

	case 0xdb:
		// IN p
		port := mc.fetch8()
		if mc.bus != nil {
			mc.A.Load(mc.bus.Input(port))
		} else {
			mc.A.Load(ports.OpenBus)
		}
		return 10

	case 0xd3:
		// OUT p
		port := mc.fetch8()
		if mc.bus != nil {
			mc.bus.Output(port, mc.A.Value())
		}
		return 10

	case 0xfb:
		// EI
		mc.INTE = true
		return 4

	case 0xf3:
		// DI
		mc.INTE = false
		return 4
	}

	// nothing is left in the opcode map but if the dispatch above ever
	// develops a hole, treat it as the silicon does: a NOP
	return 4
}
