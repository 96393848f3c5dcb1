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

// Package memory implements the 64KiB address space of the 8080 machine.
//
// The 8080 in this machine sees a single flat bank of RAM. Compare to
// systems where the CPU bus maps to different chips at different addresses;
// here there is only the one type and the cpubus.Memory interface exists so
// that the cpu package and tests are not tied to the concrete RAM type.
package memory
