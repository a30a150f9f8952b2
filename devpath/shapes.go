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
	"image"
	"math"
	"slices"
)

// kappa is the relative distance of the control points from the end
// points, for a cubic Bezier curve approximating a quarter ellipse.
const kappa = 0.55428475

// Rectangle adds r as a closed figure.  The figure runs counter-clockwise
// on the screen, starting at the top-right corner, unless clockwise is set.
// The current position is not changed.
//
// Filling the resulting figure covers exactly the pixels of r.
func (p *Path) Rectangle(r image.Rectangle, clockwise bool) error {
	if p.state != Open {
		return ErrNotOpen
	}
	r = r.Canon()
	pts := []image.Point{
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
	}
	if clockwise {
		slices.Reverse(pts)
	}
	if err := p.reserve(len(pts)); err != nil {
		return err
	}
	p.add(Move, pts[0])
	p.add(Line, pts[1:]...)
	p.closeShape()
	return nil
}

// Ellipse adds the ellipse inscribed in r as a closed figure made of
// four Bezier curves.  The figure starts at the right-most point and runs
// counter-clockwise on the screen, unless clockwise is set.
func (p *Path) Ellipse(r image.Rectangle, clockwise bool) error {
	if p.state != Open {
		return ErrNotOpen
	}
	r = r.Canon()
	w := float64(r.Dx()) / 2
	h := float64(r.Dy()) / 2
	cw := roundInt(w * (1 - kappa))
	ch := roundInt(h * (1 - kappa))
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	pts := []image.Point{
		{X: x1, Y: y0 + roundInt(h)},
		// top right quarter
		{X: x1, Y: y0 + ch},
		{X: x1 - cw, Y: y0},
		{X: x0 + roundInt(w), Y: y0},
		// top left quarter
		{X: x0 + cw, Y: y0},
		{X: x0, Y: y0 + ch},
		{X: x0, Y: y0 + roundInt(h)},
		// bottom left quarter
		{X: x0, Y: y1 - ch},
		{X: x0 + cw, Y: y1},
		{X: x0 + roundInt(w), Y: y1},
		// bottom right quarter
		{X: x1 - cw, Y: y1},
		{X: x1, Y: y1 - ch},
		{X: x1, Y: y1 - roundInt(h)},
	}
	if clockwise {
		slices.Reverse(pts)
	}
	if err := p.reserve(len(pts)); err != nil {
		return err
	}
	p.add(Move, pts[0])
	p.add(Bezier, pts[1:]...)
	p.closeShape()
	return nil
}

// RoundRect adds a rectangle with rounded corners as a closed figure.
// The corners are quarters of an ellipse of width ew and height eh.  If
// either dimension is zero, a plain rectangle is added.
func (p *Path) RoundRect(r image.Rectangle, ew, eh int, clockwise bool) error {
	if p.state != Open {
		return ErrNotOpen
	}
	r = r.Canon()
	ew = min(r.Dx(), max(ew, -ew))
	eh = min(r.Dy(), max(eh, -eh))
	if ew == 0 || eh == 0 {
		return p.Rectangle(r, clockwise)
	}

	w := float64(ew) / 2
	h := float64(eh) / 2
	rw, rh := roundInt(w), roundInt(h)
	cw := roundInt(w * (1 - kappa))
	ch := roundInt(h * (1 - kappa))
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	pts := []image.Point{
		{X: x1, Y: y0 + rh},
		// top right corner
		{X: x1, Y: y0 + ch},
		{X: x1 - cw, Y: y0},
		{X: x1 - rw, Y: y0},
		// top edge
		{X: x0 + rw, Y: y0},
		// top left corner
		{X: x0 + cw, Y: y0},
		{X: x0, Y: y0 + ch},
		{X: x0, Y: y0 + rh},
		// left edge
		{X: x0, Y: y1 - rh},
		// bottom left corner
		{X: x0, Y: y1 - ch},
		{X: x0 + cw, Y: y1},
		{X: x0 + rw, Y: y1},
		// bottom edge
		{X: x1 - rw, Y: y1},
		// bottom right corner
		{X: x1 - cw, Y: y1},
		{X: x1, Y: y1 - ch},
		{X: x1, Y: y1 - rh},
	}
	if clockwise {
		slices.Reverse(pts)
	}
	if err := p.reserve(len(pts)); err != nil {
		return err
	}

	// The edges are the same for both orientations, since the pattern
	// of curves and lines is symmetric.
	p.add(Move, pts[0])
	p.add(Bezier, pts[1:4]...)
	p.add(Line, pts[4])
	p.add(Bezier, pts[5:8]...)
	p.add(Line, pts[8])
	p.add(Bezier, pts[9:12]...)
	p.add(Line, pts[12])
	p.add(Bezier, pts[13:16]...)
	p.closeShape()
	return nil
}

// roundInt rounds x to the nearest integer, with halves rounded away from
// zero.
func roundInt(x float64) int {
	return int(math.Round(x))
}

// closeShape closes the figure of a shape.  Unlike CloseFigure, the
// current position is not changed.
func (p *Path) closeShape() {
	pos := p.pos
	p.closeFigure()
	p.pos = pos
}
