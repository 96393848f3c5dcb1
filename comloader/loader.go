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

package comloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"

	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/memory/cpubus"
)

// sentinel errors for the loader. use with curated.Is().
const (
	// returned when the file cannot be read at all.
	FileUnavailable = "comloader: file unavailable: %v"

	// returned when the image does not fit in memory at the requested
	// offset.
	ImageTooLarge = "comloader: image too large: %d bytes at offset %#04x"
)

// Loader is used to specify the program image to load into the machine.
// CP/M transient programs are raw binary with no header; the entire file is
// the image.
type Loader struct {
	// filename of the program to load
	Filename string

	// address the image will be copied to. CP/M convention is 0x0100
	Offset uint16

	// copy of the loaded data. valid after a successful call to Load()
	Data []byte

	// SHA1 hash of the loaded data, in printable form. valid after a
	// successful call to Load(). useful for identifying which build of a
	// test suite produced a log
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, offset uint16) Loader {
	return Loader{
		Filename: filename,
		Offset:   offset,
	}
}

// Load reads the program file. The data is checked for size against the
// memory remaining above the load offset but memory is not touched;
// CopyTo() does that.
func (ld *Loader) Load() error {
	data, err := ioutil.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(FileUnavailable, err)
	}

	if len(data) > 0x10000-int(ld.Offset) {
		return curated.Errorf(ImageTooLarge, len(data), ld.Offset)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}

// CopyTo writes the loaded image into memory starting at the load offset.
// No memory outside the loaded range is modified.
//
// Load() must have been called successfully beforehand.
func (ld *Loader) CopyTo(mem cpubus.Memory) {
	for i, b := range ld.Data {
		mem.Write(ld.Offset+uint16(i), b)
	}
}
