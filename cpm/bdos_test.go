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

package cpm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher80/comloader"
	"github.com/jetsetilly/gopher80/cpm"
	"github.com/jetsetilly/gopher80/hardware"
	"github.com/jetsetilly/gopher80/test"
)

// mockConsole records output and serves input from a prepared queue.
type mockConsole struct {
	output strings.Builder
	input  []uint8
}

func (con *mockConsole) Write(p []byte) (int, error) {
	con.output.Write(p)
	return len(p), nil
}

func (con *mockConsole) ReadByte() uint8 {
	if len(con.input) == 0 {
		return 0x1a
	}
	v := con.input[0]
	con.input = con.input[1:]
	return v
}

func (con *mockConsole) InputWaiting() bool {
	return len(con.input) > 0
}

// setup builds a machine with the supplied program at the default load
// offset.
func setup(t *testing.T, program ...uint8) *hardware.CPM {
	t.Helper()

	sys := hardware.NewCPM(nil)

	ld := comloader.Loader{
		Filename: "program.com",
		Offset:   cpm.DefaultLoadOffset,
		Data:     program,
	}
	cpm.Setup(sys, &ld)

	return sys
}

func TestSetup(t *testing.T) {
	sys := setup(t, 0x76)

	// zero page vectors
	test.Equate(t, sys.Mem.Read(cpm.WarmBoot), 0x76)
	test.Equate(t, sys.Mem.Read(cpm.BDOSEntry), 0xc9)

	// stack and entry point
	test.Equate(t, sys.CPU.SP.Address(), 0xf000)
	test.Equate(t, sys.CPU.PC.Address(), 0x0100)

	// the program image
	test.Equate(t, sys.Mem.Read(0x0100), 0x76)
}

func TestWriteCharacter(t *testing.T) {
	con := &mockConsole{}

	// MVI C,2; MVI E,'G'; CALL 5; HLT
	sys := setup(t,
		0x0e, 0x02,
		0x1e, 'G',
		0xcd, 0x05, 0x00,
		0x76,
	)

	test.ExpectedSuccess(t, cpm.Run(sys, con))
	test.Equate(t, con.output.String(), "G")
	test.Equate(t, sys.CPU.Halted, true)
}

func TestWriteString(t *testing.T) {
	con := &mockConsole{}

	// MVI C,9; LXI D,0x010b; CALL 5; JMP 0; "HELLO$"
	sys := setup(t,
		0x0e, 0x09,
		0x11, 0x0b, 0x01,
		0xcd, 0x05, 0x00,
		0xc3, 0x00, 0x00,
		'H', 'E', 'L', 'L', 'O', '$',
	)

	test.ExpectedSuccess(t, cpm.Run(sys, con))
	test.Equate(t, con.output.String(), "HELLO\n")

	// termination was the warm boot heuristic, not a halt
	test.Equate(t, sys.CPU.Halted, false)
	test.Equate(t, sys.CPU.PC.Address(), uint16(cpm.WarmBoot))
}

func TestConsoleInput(t *testing.T) {
	con := &mockConsole{input: []uint8{'x'}}

	// MVI C,1; CALL 5; STA 0x0200; HLT
	sys := setup(t,
		0x0e, 0x01,
		0xcd, 0x05, 0x00,
		0x32, 0x00, 0x02,
		0x76,
	)

	test.ExpectedSuccess(t, cpm.Run(sys, con))

	// the character is returned in A (stored to 0x0200), copied to L and
	// echoed to the console
	test.Equate(t, sys.Mem.Read(0x0200), uint8('x'))
	test.Equate(t, sys.CPU.L.Value(), uint8('x'))
	test.Equate(t, con.output.String(), "x")
}

func TestConsoleStatus(t *testing.T) {
	// MVI C,11; CALL 5; STA 0x0200; HLT
	program := []uint8{
		0x0e, 0x0b,
		0xcd, 0x05, 0x00,
		0x32, 0x00, 0x02,
		0x76,
	}

	// no input waiting
	sys := setup(t, program...)
	test.ExpectedSuccess(t, cpm.Run(sys, &mockConsole{}))
	test.Equate(t, sys.Mem.Read(0x0200), 0x00)

	// input waiting
	sys = setup(t, program...)
	test.ExpectedSuccess(t, cpm.Run(sys, &mockConsole{input: []uint8{'x'}}))
	test.Equate(t, sys.Mem.Read(0x0200), 0xff)
}

func TestDirectIO(t *testing.T) {
	con := &mockConsole{}

	// MVI C,6; MVI E,'d'; CALL 5; HLT
	sys := setup(t,
		0x0e, 0x06,
		0x1e, 'd',
		0xcd, 0x05, 0x00,
		0x76,
	)

	test.ExpectedSuccess(t, cpm.Run(sys, con))
	test.Equate(t, con.output.String(), "d")

	// an input request against a console with no input waiting returns
	// zero without blocking. MVI C,6; MVI E,0xFF; CALL 5; STA 0x0200; HLT
	sys = setup(t,
		0x0e, 0x06,
		0x1e, 0xff,
		0xcd, 0x05, 0x00,
		0x32, 0x00, 0x02,
		0x76,
	)

	test.ExpectedSuccess(t, cpm.Run(sys, &mockConsole{}))
	test.Equate(t, sys.Mem.Read(0x0200), 0x00)
}

func TestUnhandledFunction(t *testing.T) {
	con := &mockConsole{}

	// MVI C,13 (disk reset); CALL 5; HLT. accepted, ignored, returns
	sys := setup(t,
		0x0e, 0x0d,
		0xcd, 0x05, 0x00,
		0x76,
	)

	test.ExpectedSuccess(t, cpm.Run(sys, con))
	test.Equate(t, con.output.String(), "")
	test.Equate(t, sys.CPU.Halted, true)
}

func TestNilConsole(t *testing.T) {
	// console input against a nil console: the read gives the CP/M
	// end-of-file character and the echo is discarded
	sys := setup(t,
		0x0e, 0x01,
		0xcd, 0x05, 0x00,
		0x32, 0x00, 0x02,
		0x76,
	)

	test.ExpectedSuccess(t, cpm.Run(sys, nil))
	test.Equate(t, sys.Mem.Read(0x0200), 0x1a)
}
