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
	"github.com/jetsetilly/gopher80/hardware/ports"
	"github.com/jetsetilly/gopher80/logger"
)

// IOBus is the port bus of the standard CP/M machine. CP/M programs talk to
// the world through the BDOS, not the ports, so nothing is connected: reads
// return the open bus value and writes go nowhere. Every access is logged
// because a program touching the ports is usually a program that expects
// hardware this machine does not have.
type IOBus struct{}

// NewIOBus is the preferred method of initialisation for the IOBus type.
func NewIOBus() *IOBus {
	return &IOBus{}
}

// Input implements the ports.Bus interface.
func (b *IOBus) Input(port uint8) uint8 {
	logger.Logf("ports", "IN %#02x -> %#02x (nothing connected)", port, uint8(ports.OpenBus))
	return ports.OpenBus
}

// Output implements the ports.Bus interface.
func (b *IOBus) Output(port uint8, value uint8) {
	logger.Logf("ports", "OUT %#02x <- %#02x (nothing connected)", port, value)
}
