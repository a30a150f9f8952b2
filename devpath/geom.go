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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendGeom records the segments of a floating point path.
// Coordinates are rounded to the device grid, and quadratic curves are
// converted to cubic Bezier curves.
//
// The path must be open.  If an error is returned, the path is unchanged.
func (p *Path) AppendGeom(g path.Path) error {
	if p.state != Open {
		return ErrNotOpen
	}

	// checkpoint for rolling back partial appends
	n := len(p.points)
	var lastType Type
	if n > 0 {
		lastType = p.types[n-1]
	}
	pos, newStroke := p.pos, p.newStroke

	err := p.appendGeom(g)
	if err != nil {
		p.points = p.points[:n]
		p.types = p.types[:n]
		if n > 0 {
			p.types[n-1] = lastType
		}
		p.pos, p.newStroke = pos, newStroke
	}
	return err
}

func (p *Path) appendGeom(g path.Path) error {
	var cur, start vec.Vec2
	for cmd, pts := range g {
		var err error
		switch cmd {
		case path.CmdMoveTo:
			cur, start = pts[0], pts[0]
			err = p.MoveTo(roundVec(cur))
		case path.CmdLineTo:
			cur = pts[0]
			err = p.LineTo(roundVec(cur))
		case path.CmdQuadTo:
			c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			cur = pts[1]
			err = p.PolyBezierTo([]image.Point{roundVec(c1), roundVec(c2), roundVec(cur)})
		case path.CmdCubeTo:
			cur = pts[2]
			err = p.PolyBezierTo([]image.Point{roundVec(pts[0]), roundVec(pts[1]), roundVec(cur)})
		case path.CmdClose:
			err = p.CloseFigure()
			cur = start
		default:
			err = fmt.Errorf("path command %d: %w", cmd, ErrMalformedPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Geom returns the path as floating point path data.
// Figures with the Close bit set end with a close command.
func (p *Path) Geom() *path.Data {
	d := &path.Data{}
	for i := 0; i < len(p.points); i++ {
		t := p.types[i]
		switch t.Kind() {
		case Move:
			d = d.MoveTo(toVec(p.points[i]))
		case Line:
			d = d.LineTo(toVec(p.points[i]))
		case Bezier:
			if i+2 >= len(p.points) {
				// incomplete curves cannot be recorded through the
				// public interface
				return d
			}
			d = d.CubeTo(toVec(p.points[i]), toVec(p.points[i+1]), toVec(p.points[i+2]))
			i += 2
			t = p.types[i]
		}
		if t.Closes() {
			d = d.Close()
		}
	}
	return d
}
