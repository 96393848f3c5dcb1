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

// Package performance measures the emulator. The core reports the cycle
// cost of every instruction it executes, so running a program flat out for
// a fixed wall-clock period and summing the returned cycles gives the
// effective emulated clock speed, reported both in MHz and as a multiple
// of the 2 MHz silicon.
//
// The Check() function can also run the measurement under the Go CPU and
// memory profilers for closer study.
package performance
