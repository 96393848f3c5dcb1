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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/hardware/memory"
	"github.com/jetsetilly/gopher80/test"
)

func TestRAM(t *testing.T) {
	mem := memory.NewRAM()

	// fresh memory is zeroed
	test.Equate(t, mem.Read(0x0000), 0)
	test.Equate(t, mem.Read(0xffff), 0)

	mem.Write(0x0100, 0xc3)
	test.Equate(t, mem.Read(0x0100), 0xc3)

	// both ends of the address space are real memory
	mem.Write(0x0000, 0x76)
	mem.Write(0xffff, 0xab)
	test.Equate(t, mem.Read(0x0000), 0x76)
	test.Equate(t, mem.Read(0xffff), 0xab)

	mem.Clear()
	test.Equate(t, mem.Read(0x0100), 0)
	test.Equate(t, mem.Read(0xffff), 0)
}
