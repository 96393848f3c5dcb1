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

// Package version records the version number of the project as a whole.
package version

import "fmt"

// The name to use when referring to the application.
const ApplicationName = "Gopher80"

// if number is empty then no version number was given at build time. set
// with:
//
//	-ldflags "-X github.com/jetsetilly/gopher80/version.number=..."
var number string

// revision contains the vcs revision. if the source has been modified but not
// committed then the string will be suffixed with "+dirty". set through
// ldflags in the same way as number.
var revision string

// Version contains the current version number of the project.
//
// If the version string is "unreleased" then it means that the project has
// been built without a version number set through ldflags.
var Version string

func init() {
	if number == "" {
		if revision == "" {
			Version = "unreleased"
		} else {
			Version = fmt.Sprintf("unreleased (%s)", revision)
		}
	} else {
		Version = number
	}
}
