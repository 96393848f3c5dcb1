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

package cpm

import (
	"io"

	"github.com/jetsetilly/gopher80/comloader"
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware"
	"github.com/jetsetilly/gopher80/logger"
)

// the fixed addresses of the CP/M zero page and the default stack.
const (
	// the warm boot vector. a program jumping here has finished
	WarmBoot = 0x0000

	// the BDOS call gate. CP/M programs CALL this address with a function
	// number in C
	BDOSEntry = 0x0005

	// transient programs load here by convention
	DefaultLoadOffset = 0x0100

	// the default stack, just below the top of the 64KiB
	StackTop = 0xf000
)

// the BDOS function numbers serviced by the shim.
const (
	fnConsoleInput  = 1  // C_READ: wait for a character, echo it
	fnConsoleOutput = 2  // C_WRITE: write the character in E
	fnDirectIO      = 6  // C_RAWIO: unbuffered console I/O
	fnPrintString   = 9  // C_WRITESTR: write from DE until '$'
	fnConsoleStatus = 11 // C_STAT: is a character waiting?
)

// sentinel error for a console that failed during a BDOS call.
const ConsoleError = "cpm: console: %v"

// Console is the host side of the CP/M console device. A nil Console
// discards output, never has input waiting and reads as end-of-file.
type Console interface {
	io.Writer

	// ReadByte blocks until a byte of input is available.
	ReadByte() uint8

	// InputWaiting returns true when ReadByte() will not block.
	InputWaiting() bool
}

// Setup prepares the machine for a CP/M transient program: the zero page
// vectors, the stack and the program image itself. On return the machine is
// ready for Run().
//
// A HLT is placed at the warm boot vector so that a program jumping there
// terminates even when the driver loop heuristic is not in play; a RET at
// the BDOS entry means a raw, unintercepted CALL 5 returns gracefully.
func Setup(sys *hardware.CPM, ld *comloader.Loader) {
	sys.Mem.Write(WarmBoot, 0x76)
	sys.Mem.Write(BDOSEntry, 0xc9)
	sys.CPU.SP.Load(StackTop)

	ld.CopyTo(sys.Mem)
	sys.CPU.PC.Load(ld.Offset)

	logger.Logf("cpm", "loaded %s (%d bytes, sha1 %s) at %#04x",
		ld.Filename, len(ld.Data), ld.Hash, ld.Offset)
}

// ServiceBDOS intercepts the BDOS call gate. If PC is at the gate the
// requested function is performed against the supplied console, the RET is
// simulated, and true is returned; the CPU never sees the call. Otherwise
// nothing happens and false is returned.
//
// The interception replaces the instruction step for that iteration of the
// driver loop: call it before every Step().
func ServiceBDOS(sys *hardware.CPM, con Console) (bool, error) {
	if sys.CPU.PC.Address() != BDOSEntry {
		return false, nil
	}

	var err error

	switch sys.CPU.C.Value() {
	case fnConsoleInput:
		v := readByte(con)
		err = writeByte(con, v)
		returnByte(sys, v)

	case fnConsoleOutput:
		err = writeByte(con, sys.CPU.E.Value())

	case fnDirectIO:
		switch e := sys.CPU.E.Value(); e {
		case 0xff:
			// input request. never blocks: a zero result means no
			// character was ready
			if con != nil && con.InputWaiting() {
				returnByte(sys, readByte(con))
			} else {
				returnByte(sys, 0x00)
			}
		default:
			err = writeByte(con, e)
		}

	case fnPrintString:
		// write from DE until the '$' terminator. the terminator is
		// followed by a newline on the host, which keeps successive
		// messages of the classic test suites legible
		address := sys.CPU.DE()
		for sys.Mem.Read(address) != '$' {
			if err = writeByte(con, sys.Mem.Read(address)); err != nil {
				break
			}
			address++
		}
		if err == nil {
			err = writeByte(con, '\n')
		}

	case fnConsoleStatus:
		if con != nil && con.InputWaiting() {
			returnByte(sys, 0xff)
		} else {
			returnByte(sys, 0x00)
		}

	default:
		// every other BDOS function is accepted and ignored
		logger.Logf("bdos", "unhandled function %d", sys.CPU.C.Value())
	}

	// simulate the RET the real BDOS would end with
	lo := sys.Mem.Read(sys.CPU.SP.Address())
	hi := sys.Mem.Read(sys.CPU.SP.Address() + 1)
	sys.CPU.SP.Add(2)
	sys.CPU.PC.Load(uint16(hi)<<8 | uint16(lo))

	if err != nil {
		return true, curated.Errorf(ConsoleError, err)
	}

	return true, nil
}

// Finished returns true once the program has terminated: a halted CPU or a
// jump to the warm boot vector. The warm boot check is a driver heuristic
// for CP/M semantics, not a property of the processor.
func Finished(sys *hardware.CPM) bool {
	return sys.CPU.Halted || sys.CPU.PC.Address() == WarmBoot
}

// Run the machine until the program terminates. The console may be nil, in
// which case the program runs against a dead console.
func Run(sys *hardware.CPM, con Console) error {
	for {
		serviced, err := ServiceBDOS(sys, con)
		if err != nil {
			return err
		}
		if serviced {
			continue
		}

		if Finished(sys) {
			return nil
		}

		sys.Step()
	}
}

// returnByte places a BDOS byte result where programs expect to find it:
// the accumulator, with the customary copy in L.
func returnByte(sys *hardware.CPM, v uint8) {
	sys.CPU.A.Load(v)
	sys.CPU.L.Load(v)
}

func readByte(con Console) uint8 {
	if con == nil {
		// a dead console reads as the CP/M end-of-file character
		return 0x1a
	}
	return con.ReadByte()
}

func writeByte(con Console, v uint8) error {
	if con == nil {
		return nil
	}
	_, err := con.Write([]byte{v})
	return err
}
