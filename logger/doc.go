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

// Package logger is the central log for the entire application. There is no
// need for individual packages to keep their own logs.
//
// New entries are made with the Log() and Logf() functions. The tag argument
// groups entries by the sub-system they originate from; for example, the
// BDOS shim logs unhandled function calls with the tag "bdos" and the driver
// logs open-bus port accesses with the tag "ports".
//
// Identical entries arriving one after the other are folded into a single
// entry with a repeat count, which stops a program hammering an unconnected
// port from flooding the log.
//
// The log is in-memory and capped. It can be dumped with Write() or Tail()
// and echoed to a writer as entries arrive with SetEcho().
package logger
