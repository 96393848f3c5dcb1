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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher80/logger"
	"github.com/jetsetilly/gopher80/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	logger.Log("bdos", "unhandled function")
	logger.Log("bdos", "unhandled function")
	logger.Log("bdos", "unhandled function")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "bdos: unhandled function (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "line one")
	logger.Log("test", "line two")
	logger.Log("test", "line three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: line two\ntest: line three\n")

	// asking for more entries than exist is not an error
	s.Reset()
	logger.Tail(s, 100)
	test.Equate(t, s.String(), "test: line one\ntest: line two\ntest: line three\n")
}
