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

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const epsilon = 1e-6

func boxNear(a, b BoundingBox) bool {
	if a.IsEmpty() != b.IsEmpty() {
		return false
	}
	if a.IsEmpty() {
		return true
	}
	return math.Abs(a.Left-b.Left) < epsilon &&
		math.Abs(a.Right-b.Right) < epsilon &&
		math.Abs(a.Bottom-b.Bottom) < epsilon &&
		math.Abs(a.Top-b.Top) < epsilon
}

func box(left, right, bottom, top float64) BoundingBox {
	return BoundingBox{Left: left, Right: right, Bottom: bottom, Top: top, nonempty: true}
}

func TestEmptyBox(t *testing.T) {
	var b BoundingBox
	if !b.IsEmpty() {
		t.Error("zero value should be empty")
	}
	if b.ContainsPoint(vec.Vec2{X: 0, Y: 0}) {
		t.Error("empty box should contain no points")
	}
	if _, ok := b.Rect(); ok {
		t.Error("empty box should have no rect")
	}

	b.Extend(vec.Vec2{X: 2, Y: -3})
	if b.IsEmpty() {
		t.Error("box should be non-empty after Extend")
	}
	if want := box(2, 2, -3, -3); b != want {
		t.Errorf("expected %v, got %v", want, b)
	}
}

func TestExtend(t *testing.T) {
	var b BoundingBox
	points := []vec.Vec2{
		{X: 1, Y: 1},
		{X: -2, Y: 5},
		{X: 3, Y: 0},
		{X: 0, Y: -1},
	}
	for _, p := range points {
		before := b
		b.Extend(p)
		if !b.ContainsPoint(p) {
			t.Errorf("box %v does not contain %v", b, p)
		}
		if !b.Contains(before) {
			t.Errorf("Extend shrank box from %v to %v", before, b)
		}
	}
	if want := box(-2, 3, -1, 5); b != want {
		t.Errorf("expected %v, got %v", want, b)
	}
}

func TestUnion(t *testing.T) {
	a := box(0, 2, 0, 1)
	b := box(1, 5, -2, 0.5)
	var empty BoundingBox

	if got := a.Union(b); got != box(0, 5, -2, 1) {
		t.Errorf("wrong union: %v", got)
	}
	if got := a.Union(b); got != b.Union(a) {
		t.Errorf("union is not commutative: %v != %v", got, b.Union(a))
	}

	c := box(-4, -3, 2, 8)
	if left, right := a.Union(b).Union(c), a.Union(b.Union(c)); left != right {
		t.Errorf("union is not associative: %v != %v", left, right)
	}

	// the empty box is the identity element
	if got := a.Union(empty); got != a {
		t.Errorf("union with empty box changed %v to %v", a, got)
	}
	if got := empty.Union(a); got != a {
		t.Errorf("union with empty box changed %v to %v", a, got)
	}
	if got := empty.Union(empty); !got.IsEmpty() {
		t.Errorf("union of empty boxes should be empty, got %v", got)
	}
}

func TestContains(t *testing.T) {
	outer := box(0, 10, 0, 10)
	inner := box(2, 8, 3, 7)
	var empty BoundingBox

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.Contains(outer) {
		t.Error("box should contain itself")
	}
	if !outer.Contains(empty) {
		t.Error("every box should contain the empty box")
	}
	if !empty.Contains(empty) {
		t.Error("the empty box should contain itself")
	}
	if empty.Contains(inner) {
		t.Error("the empty box should contain no non-empty box")
	}

	straddling := box(5, 15, 5, 8)
	if outer.Contains(straddling) {
		t.Error("partial overlap should not count as containment")
	}

	if !outer.ContainsX(5) || outer.ContainsX(11) {
		t.Error("wrong ContainsX")
	}
	if !outer.ContainsY(0) || outer.ContainsY(-1) {
		t.Error("wrong ContainsY")
	}
	if empty.ContainsX(0) || empty.ContainsY(0) {
		t.Error("the empty box should contain no coordinates")
	}
}

func TestRect(t *testing.T) {
	b := box(-1, 2, 0.5, 3)
	r, ok := b.Rect()
	if !ok {
		t.Fatal("non-empty box should convert to a rect")
	}
	if r.LLx != -1 || r.LLy != 0.5 || r.URx != 2 || r.URy != 3 {
		t.Errorf("wrong rect: %v", r)
	}
}

func TestOutline(t *testing.T) {
	b := box(1, 4, 2, 6)
	outline := b.Outline()

	// the outline of a box must measure back to the same box
	m := NewMeasurer()
	if got := m.MeasureData(outline); got != b {
		t.Errorf("expected %v, got %v", b, got)
	}

	wantCmds := []path.Command{
		path.CmdMoveTo,
		path.CmdLineTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdClose,
	}
	if len(outline.Cmds) != len(wantCmds) {
		t.Fatalf("expected %d commands, got %d", len(wantCmds), len(outline.Cmds))
	}
	for i, cmd := range wantCmds {
		if outline.Cmds[i] != cmd {
			t.Errorf("command %d: expected %v, got %v", i, cmd, outline.Cmds[i])
		}
	}

	var empty BoundingBox
	if got := empty.Outline(); len(got.Cmds) != 0 {
		t.Errorf("empty box should yield an empty outline, got %d commands", len(got.Cmds))
	}
}
