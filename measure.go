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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// continuityEpsilon is the largest gap between the end of one segment
// and the start of the next which still counts as a connected path.
const continuityEpsilon = 1e-9

// A Segment is one piece of a path. The concrete types are Line,
// QuadraticBezier, CubicBezier and EllipticalArc.
type Segment interface {
	start() vec.Vec2
	end() vec.Vec2
}

// A Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 vec.Vec2
}

func (s Line) start() vec.Vec2 { return s.P0 }
func (s Line) end() vec.Vec2   { return s.P1 }

// A QuadraticBezier is a quadratic Bézier segment from P0 to P2 with
// control point P1.
type QuadraticBezier struct {
	P0, P1, P2 vec.Vec2
}

func (s QuadraticBezier) start() vec.Vec2 { return s.P0 }
func (s QuadraticBezier) end() vec.Vec2   { return s.P2 }

// A CubicBezier is a cubic Bézier segment from P0 to P3 with control
// points P1 and P2.
type CubicBezier struct {
	P0, P1, P2, P3 vec.Vec2
}

func (s CubicBezier) start() vec.Vec2 { return s.P0 }
func (s CubicBezier) end() vec.Vec2   { return s.P3 }

// An EllipticalArc is an arc segment from P0 to P1 in the endpoint
// parameterization of SVG path data: semi-axes Rx and Ry, the x-axis
// rotated by Phi radians, and the LargeArc and Sweep flags selecting
// one of the four candidate arcs through the endpoints.
//
// Out-of-range parameters are handled the way SVG renderers do: the
// signs of Rx and Ry are ignored, too-small radii are scaled up until
// the arc can reach both endpoints, a zero radius degrades the arc to a
// straight line, and coincident endpoints make it disappear.
type EllipticalArc struct {
	P0       vec.Vec2
	Rx, Ry   float64
	Phi      float64
	LargeArc bool
	Sweep    bool
	P1       vec.Vec2
}

func (s EllipticalArc) start() vec.Vec2 { return s.P0 }
func (s EllipticalArc) end() vec.Vec2   { return s.P1 }

// A MalformedPathError reports input which does not describe valid
// geometry. Index is the position of the offending segment, or -1 when
// the problem is not tied to a single segment.
type MalformedPathError struct {
	Index  int
	Reason string
}

func (e *MalformedPathError) Error() string {
	if e.Index < 0 {
		return "bounds: " + e.Reason
	}
	return fmt.Sprintf("bounds: segment %d: %s", e.Index, e.Reason)
}

// A Measurer computes bounding boxes of path geometry. All coordinates
// are mapped through CTM before they are measured.
//
// A Measurer holds no other state and is safe for concurrent use.
type Measurer struct {
	CTM matrix.Matrix
}

// NewMeasurer returns a Measurer with the identity transform.
func NewMeasurer() *Measurer {
	return &Measurer{CTM: matrix.Identity}
}

// MeasureSegments returns the tight bounding box of a connected run of
// segments. Each segment must start within continuityEpsilon of where
// the previous one ended; a larger gap or a non-finite CTM yields a
// *MalformedPathError, and the box accumulated so far is discarded.
//
// An empty slice yields the empty box.
func (m *Measurer) MeasureSegments(segs []Segment) (BoundingBox, error) {
	if !isFinite(m.CTM) {
		return BoundingBox{}, &MalformedPathError{Index: -1, Reason: "non-finite transform"}
	}

	var box BoundingBox
	for i, seg := range segs {
		if i > 0 {
			gap := seg.start().Sub(segs[i-1].end())
			if gap.Length() > continuityEpsilon {
				return BoundingBox{}, &MalformedPathError{Index: i, Reason: "segment does not continue path"}
			}
		}
		m.measureSegment(&box, seg)
	}
	return box, nil
}

// measureSegment grows box by the bounds of a single segment.
//
// For Bézier segments the box of the transformed control points bounds
// the curve by convexity. When the accumulated box already covers it,
// the extrema computation is skipped.
func (m *Measurer) measureSegment(box *BoundingBox, seg Segment) {
	switch s := seg.(type) {
	case Line:
		box.Extend(Apply(m.CTM, s.P0))
		box.Extend(Apply(m.CTM, s.P1))

	case QuadraticBezier:
		p0 := Apply(m.CTM, s.P0)
		p1 := Apply(m.CTM, s.P1)
		p2 := Apply(m.CTM, s.P2)
		box.Extend(p0)
		box.Extend(p2)
		if box.Contains(hullBox(p0, p1, p2)) {
			return
		}
		extendQuad(box, p0, p1, p2)

	case CubicBezier:
		p0 := Apply(m.CTM, s.P0)
		p1 := Apply(m.CTM, s.P1)
		p2 := Apply(m.CTM, s.P2)
		p3 := Apply(m.CTM, s.P3)
		box.Extend(p0)
		box.Extend(p3)
		if box.Contains(hullBox(p0, p1, p2, p3)) {
			return
		}
		extendCube(box, p0, p1, p2, p3)

	case EllipticalArc:
		box.Extend(Apply(m.CTM, s.P0))
		box.Extend(Apply(m.CTM, s.P1))
		if s.Rx == 0 || s.Ry == 0 {
			return // the arc degrades to the chord
		}
		extendArc(box, m.CTM, s.P0, s.Rx, s.Ry, s.Phi, s.LargeArc, s.Sweep, s.P1)
	}
}

// MeasureData returns the tight bounding box of a path in builder form.
// Unlike MeasureSegments this cannot fail: path.Data is connected by
// construction.
//
// The point of a bare moveto is included in the box, and a closepath
// contributes the implicit straight line back to the start of the
// subpath.
func (m *Measurer) MeasureData(p *path.Data) BoundingBox {
	var box BoundingBox
	var current, subpathStart vec.Vec2

	coords := p.Coords
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = coords[0]
			subpathStart = current
			coords = coords[1:]
			box.Extend(Apply(m.CTM, current))
		case path.CmdLineTo:
			m.measureSegment(&box, Line{current, coords[0]})
			current = coords[0]
			coords = coords[1:]
		case path.CmdQuadTo:
			m.measureSegment(&box, QuadraticBezier{current, coords[0], coords[1]})
			current = coords[1]
			coords = coords[2:]
		case path.CmdCubeTo:
			m.measureSegment(&box, CubicBezier{current, coords[0], coords[1], coords[2]})
			current = coords[2]
			coords = coords[3:]
		case path.CmdClose:
			if current != subpathStart {
				m.measureSegment(&box, Line{current, subpathStart})
				current = subpathStart
			}
		}
	}
	return box
}

// MeasurePath returns the tight bounding box of a path given as an
// iterator.
func (m *Measurer) MeasurePath(p path.Path) BoundingBox {
	var box BoundingBox
	var current, subpathStart vec.Vec2

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpathStart = current
			box.Extend(Apply(m.CTM, current))
		case path.CmdLineTo:
			m.measureSegment(&box, Line{current, pts[0]})
			current = pts[0]
		case path.CmdQuadTo:
			m.measureSegment(&box, QuadraticBezier{current, pts[0], pts[1]})
			current = pts[1]
		case path.CmdCubeTo:
			m.measureSegment(&box, CubicBezier{current, pts[0], pts[1], pts[2]})
			current = pts[2]
		case path.CmdClose:
			if current != subpathStart {
				m.measureSegment(&box, Line{current, subpathStart})
				current = subpathStart
			}
		}
	}
	return box
}
