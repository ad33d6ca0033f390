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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// The functions in this file construct and apply affine transforms in
// the (a, b, c, d, e, f) layout of matrix.Matrix:
//
//	[ a  c  e ]
//	[ b  d  f ]
//	[ 0  0  1 ]
//
// The constructors mirror the shortcut forms of the SVG "transform"
// attribute. Angles are in radians.

// Translate returns the transform moving points by (tx, ty).
func Translate(tx, ty float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, tx, ty}
}

// Rotate returns the transform rotating points by theta about the
// origin.
func Rotate(theta float64) matrix.Matrix {
	sin, cos := math.Sincos(theta)
	return matrix.Matrix{cos, sin, -sin, cos, 0, 0}
}

// Scale returns the transform scaling points by sx horizontally and sy
// vertically.
func Scale(sx, sy float64) matrix.Matrix {
	return matrix.Matrix{sx, 0, 0, sy, 0, 0}
}

// SkewX returns the transform shearing points parallel to the x-axis,
// displacing each point by y·tan(theta).
func SkewX(theta float64) matrix.Matrix {
	return matrix.Matrix{1, 0, math.Tan(theta), 1, 0, 0}
}

// SkewY returns the transform shearing points parallel to the y-axis,
// displacing each point by x·tan(theta).
func SkewY(theta float64) matrix.Matrix {
	return matrix.Matrix{1, math.Tan(theta), 0, 1, 0, 0}
}

// Compose returns the transform equivalent to applying inner first and
// outer second. Composition is associative, with matrix.Identity as
// the neutral element.
func Compose(outer, inner matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// Apply maps the point p through the transform m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of m to a vector.
// Translation is irrelevant for direction vectors.
func applyLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// isFinite reports whether all six components of m are finite.
func isFinite(m matrix.Matrix) bool {
	for _, c := range m {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
