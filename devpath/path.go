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

// Package devpath records drawing paths in integer device coordinates and
// converts them into regions or into the outlines of stroked lines.
//
// A [Path] is an ordered list of entries.  Each entry is a point together
// with a [Type]: a move starts a new figure, a line entry adds a straight
// segment, and Bezier entries come in runs of three (two control points and
// the end point of a cubic curve).  The Close bit on the last entry of a
// figure connects the figure back to its starting point.
//
// Paths go through three states.  [Path.Begin] starts recording, segments
// are added while the path is [Open], and [Path.End] finalizes the path.
// Only a [Closed] path can be flattened, filled or widened.
package devpath

import (
	"fmt"
	"image"
	"iter"
	"slices"
)

// Type describes the role of a path entry.  The values match the point
// types used in exported path data.
type Type uint8

// These are the entry types.  Close may be combined with Line and Bezier.
const (
	Close  Type = 0x01 // the figure is closed after this entry
	Line   Type = 0x02 // straight segment to the point
	Bezier Type = 0x04 // control point or end point of a cubic curve
	Move   Type = 0x06 // start of a new figure
)

// Kind returns t without the Close bit.
func (t Type) Kind() Type {
	return t &^ Close
}

// Closes reports whether the Close bit is set.
func (t Type) Closes() bool {
	return t&Close != 0
}

func (t Type) String() string {
	var s string
	switch t.Kind() {
	case Move:
		s = "move"
	case Line:
		s = "line"
	case Bezier:
		s = "bezier"
	default:
		return fmt.Sprintf("Type(%#x)", uint8(t))
	}
	if t.Closes() {
		s += "+close"
	}
	return s
}

// State is the recording state of a path.
type State int

// These are the possible path states.
const (
	Null   State = iota // empty, not recording
	Open                // accepting new segments
	Closed              // finalized, read-only
)

func (s State) String() string {
	switch s {
	case Null:
		return "null"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// initialEntries is the capacity allocated for the first entry of a path.
const initialEntries = 16

// Path is a recorded drawing path.
//
// The zero value is an empty path in state Null.
type Path struct {
	state     State
	points    []image.Point
	types     []Type
	pos       image.Point // current position
	newStroke bool        // the next line or curve must start a new figure
}

// Begin discards the current contents of the path and starts recording.
func (p *Path) Begin() {
	p.points = p.points[:0]
	p.types = p.types[:0]
	p.state = Open
	p.newStroke = true
}

// End finalizes the path.  The path must be open.
func (p *Path) End() error {
	if p.state != Open {
		return ErrNotOpen
	}
	p.state = Closed
	return nil
}

// Abort discards the contents of the path and resets it to state Null.
func (p *Path) Abort() {
	p.points = p.points[:0]
	p.types = p.types[:0]
	p.state = Null
	p.newStroke = true
}

// State returns the recording state of the path.
func (p *Path) State() State {
	return p.state
}

// Len returns the number of entries in the path.
func (p *Path) Len() int {
	return len(p.points)
}

// Position returns the current position, i.e. the point where the next
// line or curve segment starts.
func (p *Path) Position() image.Point {
	return p.pos
}

// Entries iterates over the points and types of the path entries.
// The path must not be modified during iteration.
func (p *Path) Entries() iter.Seq2[image.Point, Type] {
	return func(yield func(image.Point, Type) bool) {
		for i, pt := range p.points {
			if !yield(pt, p.types[i]) {
				return
			}
		}
	}
}

// Points returns a copy of the entry points.
func (p *Path) Points() []image.Point {
	return slices.Clone(p.points)
}

// Types returns a copy of the entry types.
func (p *Path) Types() []Type {
	return slices.Clone(p.types)
}

// Bounds returns the range of the entry points.  Min holds the smallest
// and Max the largest coordinates which occur.  For an empty path, the
// zero rectangle is returned.
func (p *Path) Bounds() image.Rectangle {
	if len(p.points) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: p.points[0], Max: p.points[0]}
	for _, pt := range p.points[1:] {
		b.Min.X = min(b.Min.X, pt.X)
		b.Min.Y = min(b.Min.Y, pt.Y)
		b.Max.X = max(b.Max.X, pt.X)
		b.Max.Y = max(b.Max.Y, pt.Y)
	}
	return b
}

// Clone returns a deep copy of the path, including its state.
func (p *Path) Clone() *Path {
	return &Path{
		state:     p.state,
		points:    slices.Clone(p.points),
		types:     slices.Clone(p.types),
		pos:       p.pos,
		newStroke: p.newStroke,
	}
}

// reserve makes room for n more entries, so that the following appends
// cannot fail.  The buffers grow by doubling.
func (p *Path) reserve(n int) error {
	need := len(p.points) + n
	if need > maxEntries {
		return ErrTooLarge
	}
	if need <= cap(p.points) && need <= cap(p.types) {
		return nil
	}
	c := max(cap(p.points), initialEntries)
	for c < need {
		c *= 2
	}
	c = min(c, maxEntries)
	p.points = slices.Grow(p.points, c-len(p.points))
	p.types = slices.Grow(p.types, c-len(p.types))
	return nil
}

// add appends entries of type t.  Space must have been reserved.
func (p *Path) add(t Type, pts ...image.Point) {
	p.points = append(p.points, pts...)
	for range pts {
		p.types = append(p.types, t)
	}
}

// startNewStroke adds a move to the current position, unless the next
// segment can continue the current figure.
func (p *Path) startNewStroke() {
	n := len(p.points)
	if !p.newStroke && n > 0 && !p.types[n-1].Closes() && p.points[n-1] == p.pos {
		return
	}
	p.newStroke = false
	p.add(Move, p.pos)
}

// MoveTo sets the current position.  The move entry is only recorded
// once a line or curve is drawn from this position.
func (p *Path) MoveTo(pt image.Point) error {
	if p.state != Open {
		return ErrNotOpen
	}
	p.newStroke = true
	p.pos = pt
	return nil
}

// LineTo adds a straight segment from the current position to pt.
func (p *Path) LineTo(pt image.Point) error {
	return p.PolylineTo([]image.Point{pt})
}

// PolylineTo adds straight segments from the current position through
// all the given points.
func (p *Path) PolylineTo(pts []image.Point) error {
	if p.state != Open {
		return ErrNotOpen
	}
	if len(pts) == 0 {
		return nil
	}
	if err := p.reserve(len(pts) + 1); err != nil {
		return err
	}
	p.startNewStroke()
	p.add(Line, pts...)
	p.pos = pts[len(pts)-1]
	return nil
}

// PolyBezierTo adds cubic Bezier curves starting at the current position.
// The number of points must be a multiple of three; every group of three
// gives two control points and an end point.
func (p *Path) PolyBezierTo(pts []image.Point) error {
	if p.state != Open {
		return ErrNotOpen
	}
	if len(pts)%3 != 0 {
		return fmt.Errorf("%d Bezier points: %w", len(pts), ErrInvalidPoints)
	}
	if len(pts) == 0 {
		return nil
	}
	if err := p.reserve(len(pts) + 1); err != nil {
		return err
	}
	p.startNewStroke()
	p.add(Bezier, pts...)
	p.pos = pts[len(pts)-1]
	return nil
}

// PolyBezier adds a new figure made of cubic Bezier curves.  The first
// point is the start of the figure, followed by groups of three points for
// each curve.  The current position is not changed.
func (p *Path) PolyBezier(pts []image.Point) error {
	if p.state != Open {
		return ErrNotOpen
	}
	if len(pts) < 4 || (len(pts)-1)%3 != 0 {
		return fmt.Errorf("%d Bezier points: %w", len(pts), ErrInvalidPoints)
	}
	if err := p.reserve(len(pts)); err != nil {
		return err
	}
	p.add(Move, pts[0])
	p.add(Bezier, pts[1:]...)
	return nil
}

// Polyline adds a new open figure through the given points.
// The current position is not changed.
func (p *Path) Polyline(pts []image.Point) error {
	return p.PolyPolyline(pts, []int{len(pts)})
}

// Polygon adds a closed figure with the given vertices.
// The current position is not changed.
func (p *Path) Polygon(pts []image.Point) error {
	return p.PolyPolygon(pts, []int{len(pts)})
}

// PolyPolyline adds one open figure per entry of counts.  The figures use
// consecutive runs of pts; every figure needs at least two points.
func (p *Path) PolyPolyline(pts []image.Point, counts []int) error {
	return p.addFigures(pts, counts, false)
}

// PolyPolygon adds one closed figure per entry of counts.  The figures use
// consecutive runs of pts; every figure needs at least two points.
func (p *Path) PolyPolygon(pts []image.Point, counts []int) error {
	return p.addFigures(pts, counts, true)
}

func (p *Path) addFigures(pts []image.Point, counts []int, closed bool) error {
	if p.state != Open {
		return ErrNotOpen
	}
	total := 0
	for _, c := range counts {
		if c < 2 {
			return fmt.Errorf("figure with %d points: %w", c, ErrInvalidPoints)
		}
		total += c
	}
	if total != len(pts) {
		return fmt.Errorf("%d points for %d figure points: %w", len(pts), total, ErrInvalidPoints)
	}
	if err := p.reserve(total); err != nil {
		return err
	}

	for _, c := range counts {
		p.add(Move, pts[0])
		p.add(Line, pts[1:c]...)
		if closed {
			p.types[len(p.types)-1] |= Close
		}
		pts = pts[c:]
	}
	return nil
}

// PolyDraw adds a sequence of points with explicit entry types.
// Allowed types are Move, Line, Line|Close and runs of three Bezier
// entries, where the last entry of a run may carry the Close bit.
// On error, the path is unchanged.
func (p *Path) PolyDraw(pts []image.Point, types []Type) error {
	if p.state != Open {
		return ErrNotOpen
	}
	if len(pts) != len(types) {
		return fmt.Errorf("%d points for %d types: %w", len(pts), len(types), ErrInvalidPoints)
	}
	for i := 0; i < len(types); i++ {
		switch types[i] {
		case Move, Line, Line | Close:
			// pass
		case Bezier:
			if i+2 < len(types) && types[i+1] == Bezier && types[i+2].Kind() == Bezier {
				i += 2
				continue
			}
			return fmt.Errorf("incomplete curve at index %d: %w", i, ErrInvalidPoints)
		default:
			return fmt.Errorf("entry type %s at index %d: %w", types[i], i, ErrInvalidPoints)
		}
	}
	// Every entry may need a move in front of it, in the worst case.
	if err := p.reserve(2 * len(pts)); err != nil {
		return err
	}

	for i := 0; i < len(pts); i++ {
		switch types[i].Kind() {
		case Move:
			p.newStroke = true
			p.pos = pts[i]
		case Line:
			p.startNewStroke()
			p.add(Line, pts[i])
			p.pos = pts[i]
		case Bezier:
			p.startNewStroke()
			p.add(Bezier, pts[i:i+3]...)
			p.pos = pts[i+2]
			i += 2
		}
		if types[i].Closes() {
			p.closeFigure()
		}
	}
	return nil
}

// CloseFigure closes the current figure by setting the Close bit on the
// most recent entry.  No point is added.  The next segment starts a new
// figure at the start point of the closed figure.
func (p *Path) CloseFigure() error {
	if p.state != Open {
		return ErrNotOpen
	}
	if len(p.points) > 0 {
		p.closeFigure()
	}
	return nil
}

func (p *Path) closeFigure() {
	n := len(p.points)
	p.types[n-1] |= Close
	p.newStroke = true
	for i := n - 1; i >= 0; i-- {
		if p.types[i] == Move {
			p.pos = p.points[i]
			break
		}
	}
}
