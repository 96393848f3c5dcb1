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

//go:build !windows
// +build !windows

package console

import (
	"os"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Console connects the CP/M console device to the host terminal.
//
// CP/M console input is a byte at a time with no line discipline, so when
// standard input is a terminal it is switched into cbreak mode for the
// duration: no buffering, no local echo (the BDOS does its own). CleanUp()
// restores the terminal and must be called before the process exits.
//
// When standard input is not a terminal (a pipe, a redirected file) the
// attribute juggling is skipped and input is read as-is.
type Console struct {
	input  *os.File
	output *os.File

	// terminal attributes on entry, for restoration by CleanUp()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// whether input is a terminal that has been switched to cbreak mode
	cbreak bool

	// bytes arrive on this channel from the read goroutine. closed when
	// input reaches end-of-file
	pending chan uint8
}

// NewConsole is the preferred method of initialisation for the Console
// type. The console attaches to standard input and standard output.
func NewConsole() (*Console, error) {
	con := &Console{
		input:   os.Stdin,
		output:  os.Stdout,
		pending: make(chan uint8, 8),
	}

	// if input is a terminal, prepare and apply the cbreak attributes.
	// Tcgetattr failing means input is not a terminal, which is fine
	if err := termios.Tcgetattr(con.input.Fd(), &con.canAttr); err == nil {
		con.cbreakAttr = con.canAttr
		termios.Cfmakecbreak(&con.cbreakAttr)
		con.cbreakAttr.Lflag &^= syscall.ECHO

		if err := termios.Tcsetattr(con.input.Fd(), termios.TCIFLUSH, &con.cbreakAttr); err != nil {
			return nil, err
		}
		con.cbreak = true
	}

	// the read goroutine. ends at end-of-file; for a terminal in cbreak
	// mode that is the process lifetime
	go func() {
		b := make([]byte, 1)
		for {
			n, err := con.input.Read(b)
			if n > 0 {
				con.pending <- b[0]
			}
			if err != nil {
				close(con.pending)
				return
			}
		}
	}()

	return con, nil
}

// CleanUp restores the terminal attributes changed by NewConsole().
func (con *Console) CleanUp() {
	if con.cbreak {
		_ = termios.Tcsetattr(con.input.Fd(), termios.TCIFLUSH, &con.canAttr)
		con.cbreak = false
	}
}

// Write sends bytes to the host terminal. Implements the cpm.Console
// interface (via io.Writer).
func (con *Console) Write(p []byte) (int, error) {
	return con.output.Write(p)
}

// ReadByte blocks until a byte of input is available. At end-of-file it
// returns the CP/M end-of-file character. Implements the cpm.Console
// interface.
func (con *Console) ReadByte() uint8 {
	v, ok := <-con.pending
	if !ok {
		return 0x1a
	}
	return v
}

// InputWaiting returns true when ReadByte() will not block. Implements the
// cpm.Console interface.
func (con *Console) InputWaiting() bool {
	return len(con.pending) > 0
}
