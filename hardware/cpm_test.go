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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher80/hardware"
	"github.com/jetsetilly/gopher80/test"
)

func TestNewCPM(t *testing.T) {
	sys := hardware.NewCPM(nil)

	// the machine comes up in the documented power-on state
	test.Equate(t, sys.CPU.PC.Address(), 0)
	test.Equate(t, sys.CPU.SP.Address(), 0)
	test.Equate(t, sys.CPU.Status.Value(), 0x02)
	test.Equate(t, sys.Mem.Read(0x0000), 0)
}

func TestStep(t *testing.T) {
	sys := hardware.NewCPM(nil)

	// MVI A,0x42; HLT
	sys.Mem.Write(0x0000, 0x3e)
	sys.Mem.Write(0x0001, 0x42)
	sys.Mem.Write(0x0002, 0x76)

	test.Equate(t, sys.Step(), 7)
	test.Equate(t, sys.CPU.A.Value(), 0x42)

	test.Equate(t, sys.Step(), 7)
	test.Equate(t, sys.CPU.Halted, true)

	// a halted machine spins at four cycles
	test.Equate(t, sys.Step(), 4)
}

func TestReset(t *testing.T) {
	sys := hardware.NewCPM(nil)

	sys.Mem.Write(0x0100, 0xff)
	sys.CPU.PC.Load(0x0100)
	sys.CPU.A.Load(0x42)

	sys.Reset()

	test.Equate(t, sys.CPU.PC.Address(), 0)
	test.Equate(t, sys.CPU.A.Value(), 0)
	test.Equate(t, sys.Mem.Read(0x0100), 0)
}
