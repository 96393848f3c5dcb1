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

// Package cpu implements the Intel 8080. The hard part of the 8080 is not
// the instruction set, which is small, but the flag rules: the auxiliary
// carry in particular behaves differently for addition, subtraction,
// increment, AND and decimal adjust, and several published references
// disagree with the silicon. The rules in this package are the ones that
// pass the CPUDIAG and 8080EXM validation programs.
//
// ExecuteInstruction() executes exactly one instruction and returns the
// number of clock cycles consumed, which is everything a driver needs to
// meter execution speed. The CPU never suspends and ExecuteInstruction()
// never fails: all 256 opcodes have defined behaviour, including the
// undocumented aliases, and all memory and stack accesses wrap modulo the
// 64KiB address space.
//
// Instruction timing is accurate to the instruction. Timing below that, the
// individual machine cycles within an instruction, is not modelled.
package cpu
