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

	"seehuhn.de/go/geom/vec"
)

// rootEpsilon excludes derivative roots this close to the ends of the
// parameter interval. The curve endpoints are always included
// separately, so such roots carry no extra information.
const rootEpsilon = 1e-9

// quadPoint evaluates the quadratic Bézier curve
// B(t) = (1-t)²·p0 + 2(1-t)t·p1 + t²·p2.
func quadPoint(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

// cubePoint evaluates the cubic Bézier curve
// B(t) = (1-t)³·p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³·p3.
func cubePoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).
		Add(p1.Mul(3 * omt2 * t)).
		Add(p2.Mul(3 * omt * t2)).
		Add(p3.Mul(t2 * t))
}

// extendQuad grows box to the tight bounds of a quadratic Bézier
// segment. The caller must already have included the endpoints.
//
// The derivative B'(t) = 2(1-t)·(p1-p0) + 2t·(p2-p1) vanishes per axis
// at t = (p0-p1) / (p0-2·p1+p2).
func extendQuad(box *BoundingBox, p0, p1, p2 vec.Vec2) {
	if denom := p0.X - 2*p1.X + p2.X; denom != 0 {
		if t := (p0.X - p1.X) / denom; rootEpsilon < t && t < 1-rootEpsilon {
			box.Extend(quadPoint(p0, p1, p2, t))
		}
	}
	if denom := p0.Y - 2*p1.Y + p2.Y; denom != 0 {
		if t := (p0.Y - p1.Y) / denom; rootEpsilon < t && t < 1-rootEpsilon {
			box.Extend(quadPoint(p0, p1, p2, t))
		}
	}
}

// extendCube grows box to the tight bounds of a cubic Bézier segment.
// The caller must already have included the endpoints. Each axis
// contributes up to two interior extrema.
func extendCube(box *BoundingBox, p0, p1, p2, p3 vec.Vec2) {
	t1, t2 := cubicExtrema(p0.X, p1.X, p2.X, p3.X)
	if !math.IsNaN(t1) {
		box.Extend(cubePoint(p0, p1, p2, p3, t1))
	}
	if !math.IsNaN(t2) {
		box.Extend(cubePoint(p0, p1, p2, p3, t2))
	}
	t1, t2 = cubicExtrema(p0.Y, p1.Y, p2.Y, p3.Y)
	if !math.IsNaN(t1) {
		box.Extend(cubePoint(p0, p1, p2, p3, t1))
	}
	if !math.IsNaN(t2) {
		box.Extend(cubePoint(p0, p1, p2, p3, t2))
	}
}

// cubicExtrema returns the parameters strictly inside (0, 1) where the
// cubic with the given control ordinates has a vanishing derivative.
// Missing roots are NaN.
//
// With the successive differences q0 = c1-c0, q1 = c2-c1, q2 = c3-c2
// the derivative of the Bernstein cubic is the quadratic
// 3(q0-2·q1+q2)·t² + 6(q1-q0)·t + 3·q0.
func cubicExtrema(c0, c1, c2, c3 float64) (float64, float64) {
	q0 := c1 - c0
	q1 := c2 - c1
	q2 := c3 - c2
	return solveQuadratic(3*(q0-2*q1+q2), 6*(q1-q0), 3*q0)
}

// solveQuadratic returns the real roots of a·t² + b·t + c = 0 that lie
// strictly inside (0, 1). Missing roots are NaN.
func solveQuadratic(a, b, c float64) (float64, float64) {
	if math.Abs(a) < rootEpsilon {
		// The quadratic term vanishes; at most a linear root remains.
		if math.Abs(b) < rootEpsilon {
			return math.NaN(), math.NaN()
		}
		return interiorRoot(-c / b), math.NaN()
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		// complex roots, no real extremum
		return math.NaN(), math.NaN()
	}

	// Citardauq form: computing the root where b and the radical have
	// the same sign first avoids catastrophic cancellation.
	q := math.Sqrt(disc)
	if b < 0 {
		q = -q
	}
	q = -(b + q) / 2
	if q == 0 {
		// b = 0 and disc = 0, double root at t = 0
		return math.NaN(), math.NaN()
	}
	return interiorRoot(q / a), interiorRoot(c / q)
}

// interiorRoot keeps t when it lies strictly inside (0, 1) and returns
// NaN otherwise. Roots within rootEpsilon of the interval ends are
// treated as endpoints.
func interiorRoot(t float64) float64 {
	if t > rootEpsilon && t < 1-rootEpsilon {
		return t
	}
	return math.NaN()
}
