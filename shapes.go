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

package region

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
)

// NewRoundRect returns a region covering a rectangle with rounded corners.
// The corners of the rectangle are (l, t) and (r, b); ew and eh give the
// width and height of the ellipse used for the corners.
//
// Like a filled rounded rectangle on the device, the region excludes the
// last column and the last row of the rectangle.  If the corner ellipse is
// less than two units wide or high, the region is a plain rectangle.
func NewRoundRect(l, t, r, b, ew, eh int) *Region {
	if l > r {
		l, r = r, l
	}
	if t > b {
		t, b = b, t
	}
	r--
	b--

	ew = min(r-l, abs(ew))
	eh = min(b-t, abs(eh))
	if ew < 2 || eh < 2 {
		return NewRect(l, t, r, b)
	}

	// Compute the horizontal extent of every row of the corner ellipse,
	// using Zingl's integer ellipse algorithm for the lower half.
	lefts := make([]int, eh)
	rights := make([]int, eh)
	set := make([]bool, eh)

	a := int64(ew - 1)
	bb := int64(eh - 1)
	asq := 8 * a * a
	bsq := 8 * bb * bb
	dx := 4 * bb * bb * (1 - a)
	dy := 4 * a * a * (1 + bb%2)
	e := dx + dy + a*a*(bb%2)

	x := 0
	y := eh / 2
	lefts[y], rights[y], set[y] = l, r, true
	for x <= ew/2 {
		e2 := 2 * e
		if e2 >= dx {
			x++
			dx += bsq
			e += dx
		}
		if e2 <= dy {
			y++
			if y >= eh {
				break
			}
			dy += asq
			e += dy
			lefts[y], rights[y], set[y] = l+x, r-x, true
		}
	}
	for i := eh/2 + 1; i < eh; i++ {
		if !set[i] {
			lefts[i], rights[i] = lefts[i-1], rights[i-1]
		}
	}
	for i := range eh / 2 {
		lefts[i], rights[i] = lefts[eh-1-i], rights[eh-1-i]
	}

	out := newBuilder(eh)
	prevBand := 0
	for i := range eh {
		var top, bottom int
		switch {
		case i < eh/2:
			top = t + i
			bottom = top + 1
		case i == eh/2:
			// the middle row extends over the straight sides
			top = t + eh/2
			bottom = b - eh + i + 1
		default:
			top = b - eh + i
			bottom = top + 1
		}
		if lefts[i] >= rights[i] || top >= bottom {
			continue
		}
		curBand := len(out.rects)
		out.add(lefts[i], top, rights[i], bottom)
		prevBand = out.coalesce(prevBand, curBand)
	}

	reg := &Region{}
	if err := out.install(reg); err != nil {
		// eh rectangles always fit
		panic(err)
	}
	return reg
}

// NewEllipse returns a region covering the ellipse inscribed in the
// rectangle with corners (l, t) and (r, b).
func NewEllipse(l, t, r, b int) *Region {
	return NewRoundRect(l, t, r, b, r-l, b-t)
}

// Frame sets reg to a frame along the inside of the border of src.  The
// vertical parts of the frame are x units wide, the horizontal parts are y
// units high.
func (reg *Region) Frame(src *Region, x, y int) error {
	x, y = abs(x), abs(y)
	if len(src.rects) == 0 {
		reg.clear()
		return nil
	}

	// The points which stay inside src when shifted by up to x units
	// horizontally and y units vertically form the inner area.
	inner := &Region{}
	tmp := &Region{}
	inner.Offset(src, -x, 0)
	tmp.Offset(src, x, 0)
	if err := inner.intersect(inner, tmp); err != nil {
		return err
	}
	tmp.Offset(src, 0, -y)
	if err := inner.intersect(inner, tmp); err != nil {
		return err
	}
	tmp.Offset(src, 0, y)
	if err := inner.intersect(inner, tmp); err != nil {
		return err
	}
	return reg.subtract(src, inner)
}

// Mirror sets reg to the mirror image of src, reflected horizontally so
// that the x-coordinate x maps to width-x.
func (reg *Region) Mirror(src *Region, width int) {
	n := len(src.rects)
	rects := make([]image.Rectangle, n, max(n, defaultRects))
	for start := 0; start < n; {
		end := bandEnd(src.rects, start)
		for i := range end - start {
			s := src.rects[end-1-i]
			rects[start+i] = image.Rectangle{
				Min: image.Point{X: width - s.Max.X, Y: s.Min.Y},
				Max: image.Point{X: width - s.Min.X, Y: s.Max.Y},
			}
		}
		start = end
	}

	var ext image.Rectangle
	if n > 0 {
		ext = image.Rectangle{
			Min: image.Point{X: width - src.extents.Max.X, Y: src.extents.Min.Y},
			Max: image.Point{X: width - src.extents.Min.X, Y: src.extents.Max.Y},
		}
	}
	reg.rects = rects
	reg.extents = ext
}

// FromRects returns the union of the given rectangles, after applying the
// transformation m.  Empty rectangles are ignored.
//
// If m is the identity (or the zero matrix), the rectangles are used as
// they are.  Otherwise every rectangle is mapped to a quadrilateral which
// is scan converted using the nonzero winding rule; transformed
// coordinates are rounded to the nearest integer.
func FromRects(m matrix.Matrix, rects []image.Rectangle) (*Region, error) {
	reg := &Region{}
	identity := m == matrix.Identity || m == matrix.Matrix{}

	for _, r := range rects {
		if r.Empty() {
			continue
		}
		if identity {
			if err := reg.AddRect(r); err != nil {
				return nil, err
			}
			continue
		}

		quad := []image.Point{
			transform(m, r.Min.X, r.Min.Y),
			transform(m, r.Max.X, r.Min.Y),
			transform(m, r.Max.X, r.Max.Y),
			transform(m, r.Min.X, r.Max.Y),
		}
		piece, err := FromPolygons([][]image.Point{quad}, NonZero, nil)
		if err != nil {
			return nil, err
		}
		if err := reg.union(reg, piece); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// transform applies m to the point (x, y) and rounds the result.
func transform(m matrix.Matrix, x, y int) image.Point {
	fx, fy := float64(x), float64(y)
	return image.Point{
		X: int(math.Round(m[0]*fx + m[2]*fy + m[4])),
		Y: int(math.Round(m[1]*fx + m[3]*fy + m[5])),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
