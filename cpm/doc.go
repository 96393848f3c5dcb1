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

// Package cpm is just enough of CP/M to run transient programs: the zero
// page vectors, the default stack, and a shim for the console functions of
// the BDOS.
//
// A real CP/M system jumps through address 0x0005 into the BDOS. This
// package intercepts the program counter at that address instead, performs
// the requested function on the host, and simulates the RET. The processor
// never executes BDOS code because there is none; the one byte at 0x0005 is
// a RET for the benefit of programs that CALL 5 without the shim in place.
//
// Only the console functions are implemented. Everything CPUDIAG, 8080EXM
// and their relatives need is function 2 (write character) and function 9
// (write string); interactive programs additionally get functions 1, 6 and
// 11 backed by the raw-mode console in the console sub-package. Disk
// functions are accepted and ignored, with a log entry.
package cpm
