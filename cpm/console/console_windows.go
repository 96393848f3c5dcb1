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

//go:build windows
// +build windows

package console

import (
	"os"
)

// Console on windows is line buffered. Without termios there is no cbreak
// mode; interactive programs that poll the console will see input a line at
// a time.
type Console struct {
	input  *os.File
	output *os.File

	pending chan uint8
}

// NewConsole is the preferred method of initialisation for the Console
// type.
func NewConsole() (*Console, error) {
	con := &Console{
		input:   os.Stdin,
		output:  os.Stdout,
		pending: make(chan uint8, 8),
	}

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

// CleanUp does nothing on windows.
func (con *Console) CleanUp() {
}

// Write sends bytes to the host terminal.
func (con *Console) Write(p []byte) (int, error) {
	return con.output.Write(p)
}

// ReadByte blocks until a byte of input is available.
func (con *Console) ReadByte() uint8 {
	v, ok := <-con.pending
	if !ok {
		return 0x1a
	}
	return v
}

// InputWaiting returns true when ReadByte() will not block.
func (con *Console) InputWaiting() bool {
	return len(con.pending) > 0
}
