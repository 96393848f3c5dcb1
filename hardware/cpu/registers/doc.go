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

// Package registers implements the registers of the 8080: the seven general
// purpose 8-bit registers (Register), the 16-bit program counter and stack
// pointer (ProgramCounter, StackPointer) and the flags (StatusRegister).
//
// The register pairs BC, DE and HL are not types of their own. The 8080
// treats the pairing as a view of two 8-bit registers and so does the cpu
// package, which composes and splits pairs at the point of use.
package registers
