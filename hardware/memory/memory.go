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

package memory

// RAMSize is the size of the 8080 address space. There are no sparse or
// mapped regions; every address is backed by a byte.
const RAMSize = 0x10000

// RAM is the flat 64KiB memory of the machine. It implements the
// cpubus.Memory interface.
type RAM struct {
	ram []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Memory
// is zeroed.
func NewRAM() *RAM {
	return &RAM{
		ram: make([]uint8, RAMSize),
	}
}

// Read a byte from the specified address.
func (mem *RAM) Read(address uint16) uint8 {
	return mem.ram[address]
}

// Write a byte to the specified address.
func (mem *RAM) Write(address uint16, data uint8) {
	mem.ram[address] = data
}

// Clear sets every byte in memory to zero.
func (mem *RAM) Clear() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
}
