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

// Package bounds computes tight axis-aligned bounding boxes for vector
// path geometry under an affine transform.
//
// "Tight" means the returned box encloses exactly the points of the
// rendered curves, not merely their control points: interior extrema of
// Bézier segments and elliptical arcs are located in closed form and
// included in the box.
package bounds

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// A BoundingBox is an axis-aligned rectangle enclosing some geometry.
// Bottom and Top refer to the numerically smaller and larger y values.
//
// The zero value is the empty box, which contains no points and is the
// identity element for Union. A non-empty box always satisfies
// Left <= Right and Bottom <= Top. Boxes only ever grow: Extend and
// Union never shrink a box.
type BoundingBox struct {
	Left, Right float64
	Bottom, Top float64

	nonempty bool
}

// FromPoint returns the degenerate box containing just the point p.
func FromPoint(p vec.Vec2) BoundingBox {
	return BoundingBox{
		Left:     p.X,
		Right:    p.X,
		Bottom:   p.Y,
		Top:      p.Y,
		nonempty: true,
	}
}

// IsEmpty reports whether the box contains no points at all. A
// zero-area box at a single point is not empty.
func (b BoundingBox) IsEmpty() bool {
	return !b.nonempty
}

// Extend grows the box as needed to include the point p.
func (b *BoundingBox) Extend(p vec.Vec2) {
	if !b.nonempty {
		*b = FromPoint(p)
		return
	}
	b.Left = min(b.Left, p.X)
	b.Right = max(b.Right, p.X)
	b.Bottom = min(b.Bottom, p.Y)
	b.Top = max(b.Top, p.Y)
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if !b.nonempty {
		return other
	}
	if !other.nonempty {
		return b
	}
	return BoundingBox{
		Left:     min(b.Left, other.Left),
		Right:    max(b.Right, other.Right),
		Bottom:   min(b.Bottom, other.Bottom),
		Top:      max(b.Top, other.Top),
		nonempty: true,
	}
}

// ContainsPoint reports whether p lies within the closed rectangle of b.
func (b BoundingBox) ContainsPoint(p vec.Vec2) bool {
	return b.nonempty &&
		b.Left <= p.X && p.X <= b.Right &&
		b.Bottom <= p.Y && p.Y <= b.Top
}

// ContainsX reports whether x lies within the horizontal extent of b.
func (b BoundingBox) ContainsX(x float64) bool {
	return b.nonempty && b.Left <= x && x <= b.Right
}

// ContainsY reports whether y lies within the vertical extent of b.
func (b BoundingBox) ContainsY(y float64) bool {
	return b.nonempty && b.Bottom <= y && y <= b.Top
}

// Contains reports whether every point of other lies within the closed
// rectangle of b. The empty box is contained in every box.
func (b BoundingBox) Contains(other BoundingBox) bool {
	if !other.nonempty {
		return true
	}
	return b.nonempty &&
		b.Left <= other.Left && other.Right <= b.Right &&
		b.Bottom <= other.Bottom && other.Top <= b.Top
}

// Rect converts the box to a rect.Rect. The second return value is
// false for the empty box, which has no rect.Rect equivalent.
func (b BoundingBox) Rect() (rect.Rect, bool) {
	if !b.nonempty {
		return rect.Rect{}, false
	}
	return rect.Rect{
		LLx: b.Left,
		LLy: b.Bottom,
		URx: b.Right,
		URy: b.Top,
	}, true
}

// Outline returns the boundary of the box as a closed rectangular path,
// for example to draw the box around the measured geometry. The empty
// box yields an empty path.
func (b BoundingBox) Outline() *path.Data {
	if !b.nonempty {
		return &path.Data{}
	}
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: b.Left, Y: b.Bottom}).
		LineTo(vec.Vec2{X: b.Right, Y: b.Bottom}).
		LineTo(vec.Vec2{X: b.Right, Y: b.Top}).
		LineTo(vec.Vec2{X: b.Left, Y: b.Top}).
		Close()
}

// hullBox returns the box of the given points. For a Bézier segment
// this is the loose control-point box which always contains the curve.
func hullBox(pts ...vec.Vec2) BoundingBox {
	var b BoundingBox
	for _, p := range pts {
		b.Extend(p)
	}
	return b
}
