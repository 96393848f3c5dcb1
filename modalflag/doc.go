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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). A program mode can be thought of as a sub-command of the
// program, with its own set of flags and arguments.
//
// For this project the top level modes are RUN, PERFORMANCE and VERSION,
// with RUN being the default. That is:
//
//	gopher80 program.com
//
// is equivalent to:
//
//	gopher80 run program.com
//
// Flags for each mode are added with the AddBool(), AddString(), etc.
// functions, which mirror the equivalent functions in the flag package.
// Help messages (-help) are built from the registered flags and the
// available sub-modes automatically.
package modalflag
