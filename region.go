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
	"fmt"
	"image"
	"iter"
	"slices"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// defaultRects is the initial capacity of a rectangle buffer.  Buffers are
// never compacted below this size.
const defaultRects = 4

// Kind classifies a region by its number of rectangles.
type Kind int

// These are the possible values of Kind.
const (
	Empty   Kind = iota + 1 // no rectangles
	Simple                  // exactly one rectangle
	Complex                 // more than one rectangle
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Simple:
		return "simple"
	case Complex:
		return "complex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Region is an area of the integer plane, stored as a banded list of
// half-open rectangles.
//
// The zero value is an empty region, ready to use.  A Region must not be
// copied by value after first use; use [Region.Copy] instead.
type Region struct {
	rects   []image.Rectangle // the bands, top to bottom; len is the rectangle count
	extents image.Rectangle   // bounding box of rects; zero if the region is empty
}

// New returns a new, empty region.
func New() *Region {
	return &Region{}
}

// NewRect returns a region consisting of the single rectangle with corners
// (l, t) and (r, b).  The corners may be given in any order.
func NewRect(l, t, r, b int) *Region {
	reg := &Region{}
	reg.SetRect(l, t, r, b)
	return reg
}

// SetRect replaces the contents of reg with the rectangle with corners
// (l, t) and (r, b).  Reversed coordinates are swapped.  If the rectangle
// has zero width or height, the region becomes empty.
func (reg *Region) SetRect(l, t, r, b int) {
	if l > r {
		l, r = r, l
	}
	if t > b {
		t, b = b, t
	}
	if l == r || t == b {
		reg.clear()
		return
	}
	box := image.Rectangle{Min: image.Point{X: l, Y: t}, Max: image.Point{X: r, Y: b}}
	if cap(reg.rects) == 0 {
		reg.rects = make([]image.Rectangle, 0, defaultRects)
	}
	reg.rects = append(reg.rects[:0], box)
	reg.extents = box
	reg.compact()
}

// clear makes reg empty.  A small rectangle buffer is kept for reuse.
func (reg *Region) clear() {
	reg.rects = reg.rects[:0]
	reg.extents = image.Rectangle{}
	reg.compact()
}

// Copy replaces the contents of reg with a copy of src.
func (reg *Region) Copy(src *Region) {
	if reg == src {
		return
	}
	reg.rects = append(reg.rects[:0], src.rects...)
	reg.extents = src.extents
	reg.compact()
}

// Offset sets reg to the region src, shifted by (dx, dy).
// Source and destination may be the same region.
func (reg *Region) Offset(src *Region, dx, dy int) {
	reg.Copy(src)
	if dx == 0 && dy == 0 || len(reg.rects) == 0 {
		return
	}
	d := image.Point{X: dx, Y: dy}
	for i := range reg.rects {
		reg.rects[i] = reg.rects[i].Add(d)
	}
	reg.extents = reg.extents.Add(d)
}

// setExtents recomputes the bounding box from the rectangle list.  The top
// comes from the first band and the bottom from the last band; left and
// right need a pass over all rectangles.
func (reg *Region) setExtents() {
	if len(reg.rects) == 0 {
		reg.extents = image.Rectangle{}
		return
	}
	first := reg.rects[0]
	last := reg.rects[len(reg.rects)-1]
	ext := image.Rectangle{
		Min: image.Point{X: first.Min.X, Y: first.Min.Y},
		Max: image.Point{X: first.Max.X, Y: last.Max.Y},
	}
	for _, r := range reg.rects[1:] {
		ext.Min.X = min(ext.Min.X, r.Min.X)
		ext.Max.X = max(ext.Max.X, r.Max.X)
	}
	reg.extents = ext
}

// compact shrinks the rectangle buffer if it is more than twice as large
// as needed.  Buffers never shrink below defaultRects entries.
func (reg *Region) compact() {
	want := max(len(reg.rects), defaultRects)
	if cap(reg.rects) > 2*want {
		reg.rects = append(make([]image.Rectangle, 0, want), reg.rects...)
	}
}

// Equal reports whether reg and other consist of the same list of
// rectangles.
//
// This compares the stored decomposition, not the covered area.  Two
// regions which cover the same points, but which were built by different
// sequences of operations, can in principle compare unequal.
func (reg *Region) Equal(other *Region) bool {
	if len(reg.rects) != len(other.rects) {
		return false
	}
	if len(reg.rects) == 0 {
		return true
	}
	if reg.extents != other.extents {
		return false
	}
	return slices.Equal(reg.rects, other.rects)
}

// Kind returns the classification of the region.
func (reg *Region) Kind() Kind {
	switch len(reg.rects) {
	case 0:
		return Empty
	case 1:
		return Simple
	default:
		return Complex
	}
}

// IsEmpty reports whether the region contains no points.
func (reg *Region) IsEmpty() bool {
	return len(reg.rects) == 0
}

// NumRects returns the number of rectangles in the region.
func (reg *Region) NumRects() int {
	return len(reg.rects)
}

// Bounds returns the bounding box of the region.
// For an empty region, the zero rectangle is returned.
func (reg *Region) Bounds() image.Rectangle {
	return reg.extents
}

// BBox returns the bounding box of the region in floating point
// coordinates.  LLx/LLy hold the minimum device coordinates, URx/URy the
// maximum ones.
func (reg *Region) BBox() rect.Rect {
	return rect.Rect{
		LLx: float64(reg.extents.Min.X),
		LLy: float64(reg.extents.Min.Y),
		URx: float64(reg.extents.Max.X),
		URy: float64(reg.extents.Max.Y),
	}
}

// Rects returns a copy of the rectangle list, in band order.
func (reg *Region) Rects() []image.Rectangle {
	return slices.Clone(reg.rects)
}

// All iterates over the rectangles of the region, in band order.
// The region must not be modified during iteration.
func (reg *Region) All() iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		for _, r := range reg.rects {
			if !yield(r) {
				return
			}
		}
	}
}

func (reg *Region) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "region %s [", reg.extents)
	for i, r := range reg.rects {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.String())
	}
	b.WriteString("]")
	return b.String()
}

// builder accumulates the rectangles of a region under construction.
// The first failure is kept in err and all later additions are ignored.
type builder struct {
	rects []image.Rectangle
	err   error
}

func newBuilder(size int) *builder {
	return &builder{rects: make([]image.Rectangle, 0, max(size, defaultRects))}
}

// add appends the rectangle (l, t)-(r, b).  When the buffer is full, its
// capacity is doubled.
func (b *builder) add(l, t, r, bot int) {
	if b.err != nil {
		return
	}
	n := len(b.rects)
	if n >= maxRects {
		b.err = ErrTooLarge
		return
	}
	if n == cap(b.rects) {
		buf := make([]image.Rectangle, n, min(max(2*n, defaultRects), maxRects))
		copy(buf, b.rects)
		b.rects = buf
	}
	b.rects = append(b.rects, image.Rectangle{
		Min: image.Point{X: l, Y: t},
		Max: image.Point{X: r, Y: bot},
	})
}

// coalesce merges the band starting at curStart into the band starting at
// prevStart, if the two bands are vertically adjacent and have the same
// horizontal structure.  The return value is the start of the last band in
// the buffer, to be used as prevStart in the next call.
//
// The rectangles from curStart onwards may form more than one band; only
// the first of these is merged.
func (b *builder) coalesce(prevStart, curStart int) int {
	rects := b.rects
	end := len(rects)
	if curStart >= end {
		return curStart
	}

	bandTop := rects[curStart].Min.Y
	curNum := 0
	for i := curStart; i < end && rects[i].Min.Y == bandTop; i++ {
		curNum++
	}

	lastStart := curStart
	if curStart+curNum != end {
		lastStart = end - 1
		for rects[lastStart-1].Min.Y == rects[lastStart].Min.Y {
			lastStart--
		}
	}

	prevNum := curStart - prevStart
	if curNum != prevNum || rects[prevStart].Max.Y != bandTop {
		return lastStart
	}
	for i := range prevNum {
		p, c := rects[prevStart+i], rects[curStart+i]
		if p.Min.X != c.Min.X || p.Max.X != c.Max.X {
			return lastStart
		}
	}

	bottom := rects[curStart].Max.Y
	for i := prevStart; i < curStart; i++ {
		rects[i].Max.Y = bottom
	}
	b.rects = append(rects[:curStart], rects[curStart+curNum:]...)
	if lastStart == curStart {
		return prevStart
	}
	return lastStart - curNum
}

// install moves the rectangles collected by b into reg and recomputes the
// extents.  If b has failed, reg is left unchanged and the error is
// returned.
func (b *builder) install(reg *Region) error {
	if b.err != nil {
		return b.err
	}
	reg.rects = b.rects
	reg.setExtents()
	reg.compact()
	return nil
}
