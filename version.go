// seehuhn.de/go/bounds - tight bounding boxes for vector graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bounds

// Version is the human-readable version of the library.
const Version = "0.9.0 alpha 1"

// A VersionInfo describes a library version in a form suitable for
// programmatic comparison.
type VersionInfo struct {
	Major        int
	Minor        int
	Revision     int
	ReleaseLevel string // "alpha", "beta", "candidate" or "final"
	Serial       int
}

// Info describes the current library version. It agrees with Version.
var Info = VersionInfo{
	Major:        0,
	Minor:        9,
	Revision:     0,
	ReleaseLevel: "alpha",
	Serial:       1,
}

// Hex packs the version into a single integer such that later versions
// compare numerically larger. The layout follows the convention of
// CPython's sys.hexversion: one byte each for major, minor and
// revision, one nibble for the release level and one for the serial.
// The current version packs to 0x000900a1.
func (v VersionInfo) Hex() uint32 {
	var level uint32
	switch v.ReleaseLevel {
	case "alpha":
		level = 0xa
	case "beta":
		level = 0xb
	case "candidate":
		level = 0xc
	default:
		level = 0xf
	}
	return uint32(v.Major)<<24 |
		uint32(v.Minor)<<16 |
		uint32(v.Revision)<<8 |
		level<<4 |
		uint32(v.Serial)&0xf
}
