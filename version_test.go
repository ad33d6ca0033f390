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

import "testing"

func TestVersionHex(t *testing.T) {
	if got := Info.Hex(); got != 0x000900a1 {
		t.Errorf("expected 0x000900a1, got %#08x", got)
	}

	// later versions must compare numerically larger
	ordered := []VersionInfo{
		{Major: 0, Minor: 9, Revision: 0, ReleaseLevel: "alpha", Serial: 1},
		{Major: 0, Minor: 9, Revision: 0, ReleaseLevel: "beta", Serial: 1},
		{Major: 0, Minor: 9, Revision: 1, ReleaseLevel: "alpha", Serial: 1},
		{Major: 0, Minor: 10, Revision: 0, ReleaseLevel: "alpha", Serial: 1},
		{Major: 1, Minor: 0, Revision: 0, ReleaseLevel: "candidate", Serial: 1},
		{Major: 1, Minor: 0, Revision: 0, ReleaseLevel: "final"},
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Hex() >= ordered[i].Hex() {
			t.Errorf("%v should compare below %v", ordered[i-1], ordered[i])
		}
	}
}
