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

// arcCenter converts an elliptical arc from the SVG endpoint form to
// center form, following the implementation notes in appendix B.2.4 of
// the SVG specification. The radii are forced positive and silently
// scaled up when no ellipse with the given radii passes through both
// endpoints. The returned radii are the corrected values.
//
// theta1 is the angle of the start point on the ellipse, and delta the
// sweep towards the end point: positive when sweep is set, negative
// otherwise, with 0 < |delta| < 2π.
func arcCenter(p0 vec.Vec2, rx, ry, phi float64, largeArc, sweep bool, p1 vec.Vec2) (center vec.Vec2, crx, cry, theta1, delta float64) {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	sinPhi, cosPhi := math.Sincos(phi)

	// midpoint of the chord in the rotated frame
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	xm := cosPhi*dx + sinPhi*dy
	ym := -sinPhi*dx + cosPhi*dy

	// Scale the radii up if the endpoints are too far apart for any
	// ellipse with the given radii to reach both.
	ratio := xm*xm/(rx*rx) + ym*ym/(ry*ry)
	if ratio > 1 {
		s := math.Sqrt(ratio)
		rx *= s
		ry *= s
	}

	// center in the rotated frame; the sign of the root selects
	// between the two candidate centers
	num := rx*rx*ry*ry - rx*rx*ym*ym - ry*ry*xm*xm
	den := rx*rx*ym*ym + ry*ry*xm*xm
	sq := num / den
	if sq < 0 {
		sq = 0 // rounding noise after the radius correction
	}
	coef := math.Sqrt(sq)
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * ym / ry
	cyp := -coef * ry * xm / rx

	// rotate and translate back
	center = vec.Vec2{
		X: cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2,
	}

	// start and sweep angles; the wraparound adjustment makes the
	// sweep direction match the flag
	theta1 = math.Atan2((ym-cyp)/ry, (xm-cxp)/rx)
	delta = math.Atan2((-ym-cyp)/ry, (-xm-cxp)/rx) - theta1
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return center, rx, ry, theta1, delta
}

// angleNorm returns theta reduced to [0, 2π).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// onSweep reports whether theta lies strictly inside the range swept
// from theta1 over delta, accounting for sweep direction and
// wraparound.
func onSweep(theta, theta1, delta float64) bool {
	if delta < 0 {
		theta1, delta = theta1+delta, -delta
	}
	t := angleNorm(theta - theta1)
	return 0 < t && t < delta
}

// extendArc grows box to the tight bounds of an elliptical arc segment
// as seen through the transform m. The caller must already have
// included the transformed endpoints and ruled out zero radii.
//
// In center form the arc is c + u·cosθ + v·sinθ with the rotated
// semi-axis vectors u = (rx·cosφ, rx·sinφ) and v = (-ry·sinφ, ry·cosφ);
// for the identity transform the evaluation reduces to
//
//	x(θ) = cx + rx·cosθ·cosφ - ry·sinθ·sinφ
//	y(θ) = cy + rx·cosθ·sinφ + ry·sinθ·cosφ
//
// An affine map preserves this form, so mapping u and v through the
// linear part of m gives the transformed arc directly, and its per-axis
// extrema lie at θ = atan2 of the mapped axis components (plus the
// half-turn repetition of the arctangent).
func extendArc(box *BoundingBox, m matrix.Matrix, p0 vec.Vec2, rx, ry, phi float64, largeArc, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return // SVG omits arcs with coincident endpoints
	}
	center, rx, ry, theta1, delta := arcCenter(p0, rx, ry, phi, largeArc, sweep, p1)

	sinPhi, cosPhi := math.Sincos(phi)
	u := applyLinear(m, vec.Vec2{X: rx * cosPhi, Y: rx * sinPhi})
	v := applyLinear(m, vec.Vec2{X: -ry * sinPhi, Y: ry * cosPhi})
	c := Apply(m, center)

	pos := func(theta float64) vec.Vec2 {
		sinT, cosT := math.Sincos(theta)
		return c.Add(u.Mul(cosT)).Add(v.Mul(sinT))
	}

	// The arc endpoints reproduce p0 and p1 up to floating point
	// error; including them keeps the box consistent with the center
	// parameterization used for the extrema.
	box.Extend(pos(theta1))
	box.Extend(pos(theta1 + delta))

	thetaX := math.Atan2(v.X, u.X)
	thetaY := math.Atan2(v.Y, u.Y)
	for _, theta := range [4]float64{thetaX, thetaX + math.Pi, thetaY, thetaY + math.Pi} {
		if onSweep(theta, theta1, delta) {
			box.Extend(pos(theta))
		}
	}
}
