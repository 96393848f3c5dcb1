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

// Package cpubus defines the operations for the memory system when accessed
// from the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// The 8080 address space is a flat 64KiB with every address populated, so
// unlike buses with mapped or missing regions there is no error return.
// Addresses wrap modulo 2^16 by construction of the uint16 type.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
