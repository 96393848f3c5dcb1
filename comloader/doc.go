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

// Package comloader reads program images from the host filesystem and
// copies them into machine memory.
//
// The only format is the raw binary of a CP/M .COM file: no header, no
// relocation, the file is the bytes. The loader fails in exactly two ways,
// an unreadable file or an image that does not fit above the load offset,
// and both are curated errors the driver can test for.
package comloader
