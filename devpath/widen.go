// seehuhn.de/go/region - banded regions and device paths
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

package devpath

import (
	"fmt"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/region"
)

// DefaultMiterLimit is the miter limit used when Pen.MiterLimit is zero.
const DefaultMiterLimit = 10.0

// Pen describes how lines are widened by [Path.Widen].
type Pen struct {
	Width      int                    // line width in device units (>0)
	Cap        graphics.LineCapStyle  // LineCapButt (flat), LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // maximal miter length relative to half the width; 0 means DefaultMiterLimit
	Cosmetic   bool                   // cosmetic pens have no width and cannot be widened
}

// NewPen returns a geometric pen of the given width, with round caps and
// round joins.
func NewPen(width int) Pen {
	return Pen{
		Width: width,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
	}
}

// WithCap returns a copy of the pen with the given cap style.
func (pen Pen) WithCap(c graphics.LineCapStyle) Pen {
	pen.Cap = c
	return pen
}

// WithJoin returns a copy of the pen with the given join style.
func (pen Pen) WithJoin(j graphics.LineJoinStyle) Pen {
	pen.Join = j
	return pen
}

// WithMiterLimit returns a copy of the pen with the given miter limit.
func (pen Pen) WithMiterLimit(limit float64) Pen {
	pen.MiterLimit = limit
	return pen
}

func (pen Pen) validate() error {
	if pen.Cosmetic {
		return ErrCosmeticPen
	}
	if pen.Width < 1 {
		return fmt.Errorf("width %d: %w", pen.Width, ErrInvalidPen)
	}
	switch pen.Cap {
	case graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare:
		// pass
	default:
		return fmt.Errorf("line cap %s: %w", pen.Cap, ErrInvalidPen)
	}
	switch pen.Join {
	case graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel:
		// pass
	default:
		return fmt.Errorf("line join %s: %w", pen.Join, ErrInvalidPen)
	}
	if math.IsNaN(pen.MiterLimit) || pen.MiterLimit < 0 {
		return fmt.Errorf("miter limit %g: %w", pen.MiterLimit, ErrInvalidPen)
	}
	return nil
}

// Widen replaces the path by the outline of the area covered when the
// path is drawn with the given pen.  Filling the new path with the
// nonzero winding rule gives the pixels of the stroked line.
//
// The pen width W is split into an inner half Win = W/2 (rounded down)
// and an outer half Wout = W - Win.  Every open figure becomes one closed
// figure: the offset line on one side, followed by the offset line on the
// other side in reverse.  Closed figures become two closed figures, one
// for each side of the line.  For self-intersecting closed figures with
// very sharp angles, the two rings can cancel under the non-zero rule and
// leave pixels on the centre line uncovered.
//
// The path must be closed and remains closed.  If an error is returned,
// the path is unchanged.
func (p *Path) Widen(pen Pen) error {
	if p.state != Closed {
		return ErrNotClosed
	}
	if err := pen.validate(); err != nil {
		return err
	}

	points, types := p.points, p.types
	if !p.isFlat() {
		var err error
		points, types, err = flatten(points, types)
		if err != nil {
			return err
		}
	}
	strokes, err := splitStrokes(points, types)
	if err != nil {
		region.Logger().Warn("widen: malformed path", "error", err)
		return err
	}

	s := newStroker(pen)
	for _, st := range strokes {
		s.addStroke(points[st.start:st.end], st.closed)
	}
	if len(s.points) > maxEntries {
		return ErrTooLarge
	}

	p.points, p.types = s.points, s.types
	p.newStroke = true
	region.Logger().Debug("widen",
		"width", pen.Width,
		"cap", pen.Cap.String(),
		"join", pen.Join.String(),
		"strokes", len(strokes),
		"entries", len(p.points))
	return nil
}

// strokeRange is a figure of a flat path, given as a range of entries.
type strokeRange struct {
	start, end int
	closed     bool
}

// splitStrokes finds the figures of a flat path.
func splitStrokes(points []image.Point, types []Type) ([]strokeRange, error) {
	var res []strokeRange
	for i, t := range types {
		switch t.Kind() {
		case Move:
			res = append(res, strokeRange{start: i, end: i + 1})
		case Line:
			if len(res) == 0 || types[i-1].Closes() {
				return nil, fmt.Errorf("entry %d: figure does not start with a move: %w",
					i, ErrMalformedPath)
			}
			res[len(res)-1].end = i + 1
		default:
			return nil, fmt.Errorf("entry %d has type %s: %w", i, t, ErrMalformedPath)
		}
		if t.Closes() {
			res[len(res)-1].closed = true
		}
	}
	return res, nil
}

// stroker computes the outlines of widened figures.
type stroker struct {
	win, wout  float64 // the two halves of the pen width
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64

	pts  []image.Point // the current figure, without repeated points
	up   []image.Point // offset line on the side where the start cap ends
	down []image.Point // offset line on the other side

	points []image.Point // the output path
	types  []Type
}

func newStroker(pen Pen) *stroker {
	win := pen.Width / 2
	limit := pen.MiterLimit
	if limit == 0 {
		limit = DefaultMiterLimit
	}
	return &stroker{
		win:        float64(win),
		wout:       float64(pen.Width - win),
		cap:        pen.Cap,
		join:       pen.Join,
		miterLimit: limit,
	}
}

// addStroke appends the outline of one figure to the output.
func (s *stroker) addStroke(figure []image.Point, closed bool) {
	s.pts = s.pts[:0]
	for _, pt := range figure {
		if len(s.pts) == 0 || s.pts[len(s.pts)-1] != pt {
			s.pts = append(s.pts, pt)
		}
	}
	if closed && len(s.pts) > 1 && s.pts[0] == s.pts[len(s.pts)-1] {
		s.pts = s.pts[:len(s.pts)-1]
	}

	pts := s.pts
	n := len(pts)
	switch {
	case n == 0:
		return
	case n == 1:
		// A figure without extent has no direction; only round caps
		// produce output.
		if s.cap == graphics.LineCapRound {
			r := (s.win + s.wout) / 2
			dot := appendArc(nil, toVec(pts[0]), r, 0, 2*math.Pi)
			s.addFigure(dot)
		}
		return
	case n == 2:
		closed = false
	}

	s.up = s.up[:0]
	s.down = s.down[:0]
	for j := range n {
		if !closed && (j == 0 || j == n-1) {
			s.addCap(j)
		} else {
			s.addJoin(pts[(j+n-1)%n], pts[j], pts[(j+1)%n])
		}
	}

	slices.Reverse(s.down)
	if closed {
		s.addFigure(s.up)
		s.addFigure(s.down)
	} else {
		s.addFigure(append(s.up, s.down...))
	}
}

// addCap adds the cap at the end point j of the current open figure.
func (s *stroker) addCap(j int) {
	var o, a image.Point
	if j == 0 {
		o, a = s.pts[0], s.pts[1]
	} else {
		o, a = s.pts[j], s.pts[j-1]
	}

	// theta is the direction from the end point into the line
	theta := math.Atan2(float64(a.Y-o.Y), float64(a.X-o.X))
	u := unit(theta)
	n := unit(theta + math.Pi/2)
	ov := toVec(o)

	switch s.cap {
	case graphics.LineCapSquare:
		s.up = appendPoint(s.up, ov.Add(n.Sub(u).Mul(s.wout)))
		s.up = appendPoint(s.up, ov.Sub(n.Add(u).Mul(s.win)))
	case graphics.LineCapRound:
		c := ov.Add(n.Mul((s.wout - s.win) / 2))
		s.up = appendArc(s.up, c, (s.win+s.wout)/2, theta+math.Pi/2, math.Pi)
	default:
		s.up = appendPoint(s.up, ov.Add(n.Mul(s.wout)))
		s.up = appendPoint(s.up, ov.Sub(n.Mul(s.win)))
	}
}

// addJoin adds the offset points for the interior vertex o, which is
// reached from a and continues towards b.
func (s *stroker) addJoin(a, o, b image.Point) {
	theta := math.Atan2(float64(o.Y-a.Y), float64(o.X-a.X))
	turn := math.Atan2(float64(b.Y-o.Y), float64(b.X-o.X)) - theta
	if turn > math.Pi {
		turn -= 2 * math.Pi
	} else if turn <= -math.Pi {
		turn += 2 * math.Pi
	}

	// alpha is the angle between the two segments at o, signed so that
	// alpha > 0 means that the up side is on the inside of the turn.
	var alpha float64
	if turn > 0 {
		alpha = turn - math.Pi
	} else {
		alpha = turn + math.Pi
	}
	if alpha == 0 {
		// the line exactly reverses its direction
		return
	}

	join := s.join
	if join == graphics.LineJoinMiter && s.miterLimit < math.Abs(1/math.Sin(alpha/2)) {
		join = graphics.LineJoinBevel
	}

	inside, outside := &s.down, &s.up
	sign := 1.0
	if alpha > 0 {
		inside, outside = &s.up, &s.down
		sign = -1
	}
	ov := toVec(o)
	n1 := unit(theta + math.Pi/2)
	n2 := unit(theta + alpha + math.Pi/2)

	*inside = appendPoint(*inside, ov.Add(n1.Mul(sign*s.win)))
	*inside = appendPoint(*inside, ov.Sub(n2.Mul(sign*s.win)))

	switch join {
	case graphics.LineJoinMiter:
		miter := math.Abs(s.wout / math.Sin(math.Abs(alpha)/2))
		*outside = appendPoint(*outside, ov.Add(unit(theta+alpha/2).Mul(miter)))
	case graphics.LineJoinRound:
		*outside = appendArc(*outside, ov, s.wout, theta-sign*math.Pi/2, turn)
	default:
		*outside = appendPoint(*outside, ov.Sub(n1.Mul(sign*s.wout)))
		*outside = appendPoint(*outside, ov.Add(n2.Mul(sign*s.wout)))
	}
}

// addFigure appends pts to the output as a closed figure.
func (s *stroker) addFigure(pts []image.Point) {
	first := true
	for _, pt := range pts {
		if !first && s.points[len(s.points)-1] == pt {
			continue
		}
		t := Line
		if first {
			t = Move
			first = false
		}
		s.points = append(s.points, pt)
		s.types = append(s.types, t)
	}
	if !first {
		s.types[len(s.types)-1] |= Close
	}
}

// appendPoint appends v, rounded to the device grid, unless it coincides
// with the last point of dst.
func appendPoint(dst []image.Point, v vec.Vec2) []image.Point {
	pt := roundVec(v)
	if len(dst) > 0 && dst[len(dst)-1] == pt {
		return dst
	}
	return append(dst, pt)
}

// unit returns the unit vector in direction a.
func unit(a float64) vec.Vec2 {
	return vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}
