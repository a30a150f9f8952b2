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
	"cmp"
	"fmt"
	"image"
	"math"
	"slices"
)

// FillRule specifies the rule for determining interior points of
// self-intersecting and nested contours.
type FillRule int

const (
	// EvenOdd fills the points where a ray to infinity crosses the
	// outline an odd number of times.
	EvenOdd FillRule = iota + 1

	// NonZero fills the points with non-zero winding number.
	NonZero
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "evenodd"
	case NonZero:
		return "nonzero"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// bresenham is the integer state for stepping the x position of an edge
// from one scanline to the next.
type bresenham struct {
	x     int // x position on the current scanline
	d     int // decision variable
	m, m1 int // whole steps per scanline; m1 is m moved one unit away from zero
	incr1 int // change of d for a step by m1
	incr2 int // change of d for a step by m
}

// init prepares stepping along an edge which covers dy > 0 scanlines from
// x-position x1 to x-position x2.
func (b *bresenham) init(dy, x1, x2 int) {
	dx := x2 - x1
	b.x = x1
	b.m = dx / dy
	if dx < 0 {
		b.m1 = b.m - 1
		b.incr1 = -2*dx + 2*dy*b.m1
		b.incr2 = -2*dx + 2*dy*b.m
		b.d = 2*b.m*dy - 2*dx - 2*dy
	} else {
		b.m1 = b.m + 1
		b.incr1 = 2*dx - 2*dy*b.m1
		b.incr2 = 2*dx - 2*dy*b.m
		b.d = -2*b.m*dy + 2*dx
	}
}

// step advances to the next scanline.
func (b *bresenham) step() {
	var big bool
	if b.m1 > 0 {
		big = b.d > 0
	} else {
		big = b.d >= 0
	}
	if big {
		b.x += b.m1
		b.d += b.incr1
	} else {
		b.x += b.m
		b.d += b.incr2
	}
}

// edge is a non-horizontal polygon edge.
type edge struct {
	ymin, ymax int       // first and last scanline covered by the edge
	bres       bresenham // x position
	clockwise  bool      // the edge runs downwards
}

// scanConverter holds the state of a single call to FromPolygons.
// Edges live in the edges arena and are referred to by index.
type scanConverter struct {
	edges   []edge  // edge table, sorted by ymin and then by starting x
	active  []int32 // active edges, sorted by current x
	winding []int32 // active edges where the winding number becomes zero or non-zero
	out     *builder
}

// FromPolygons converts a set of polygons into a region.
//
// Each contour is a list of vertices; the last vertex is implicitly
// connected to the first.  Contours with fewer than three vertices
// contribute nothing.  The contours may intersect themselves and each
// other.  Interior points are determined using the given fill rule; any
// value other than NonZero selects the even-odd rule.
//
// A pixel row y is covered from x0 to x1 if the outline crosses the
// scanline y at x0 and x1, with crossing positions computed by integer
// edge stepping.  If clip is not nil, the result is restricted to the clip
// rectangle.
//
// Vertex coordinates must lie in the range [-MaxCoord, MaxCoord].
func FromPolygons(contours [][]image.Point, rule FillRule, clip *image.Rectangle) (*Region, error) {
	if clip != nil {
		c := clip.Canon()
		clip = &c
	}

	if r, ok := axisAlignedRect(contours); ok {
		reg := &Region{}
		reg.SetRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
		if clip != nil {
			if err := reg.intersect(reg, &Region{rects: []image.Rectangle{*clip}, extents: *clip}); err != nil {
				return nil, err
			}
		}
		return reg, nil
	}

	s := &scanConverter{}
	ymin, ymax, err := s.buildEdgeTable(contours, clip)
	if err != nil {
		return nil, err
	}
	if clip != nil {
		ymax = min(ymax, clip.Max.Y)
	}

	s.out = newBuilder(len(s.edges))
	if len(s.edges) > 0 {
		s.sweep(ymin, ymax, rule == NonZero, clip)
	}

	reg := &Region{}
	if err := s.out.install(reg); err != nil {
		return nil, err
	}
	if clip != nil && len(reg.rects) > 0 && !reg.extents.In(*clip) {
		if err := reg.intersect(reg, &Region{rects: []image.Rectangle{*clip}, extents: *clip}); err != nil {
			return nil, err
		}
	}

	Logger().Debug("scan conversion",
		"contours", len(contours),
		"edges", len(s.edges),
		"rule", rule,
		"rects", len(reg.rects))
	return reg, nil
}

// axisAlignedRect checks whether the input is a single axis-aligned
// rectangle, given as four vertices or as five vertices with the last one
// repeating the first.
func axisAlignedRect(contours [][]image.Point) (image.Rectangle, bool) {
	if len(contours) != 1 {
		return image.Rectangle{}, false
	}
	p := contours[0]
	if !(len(p) == 4 || len(p) == 5 && p[4] == p[0]) {
		return image.Rectangle{}, false
	}
	if !(p[0].Y == p[1].Y && p[1].X == p[2].X && p[2].Y == p[3].Y && p[3].X == p[0].X ||
		p[0].X == p[1].X && p[1].Y == p[2].Y && p[2].X == p[3].X && p[3].Y == p[0].Y) {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: p[0], Max: p[2]}.Canon(), true
}

// buildEdgeTable records all non-horizontal edges of the contours and
// returns the range of scanlines covered by them.
func (s *scanConverter) buildEdgeTable(contours [][]image.Point, clip *image.Rectangle) (ymin, ymax int, err error) {
	ymin, ymax = math.MaxInt, math.MinInt

	n := 0
	for _, c := range contours {
		n += len(c)
	}
	s.edges = make([]edge, 0, n)

	total := 0 // number of (edge, scanline) pairs
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		for _, p := range c {
			if p.X < -MaxCoord || p.X > MaxCoord || p.Y < -MaxCoord || p.Y > MaxCoord {
				return 0, 0, fmt.Errorf("vertex %v: %w", p, ErrRange)
			}
		}
		prev := c[len(c)-1]
		for _, cur := range c {
			top, bottom := prev, cur
			clockwise := true
			if prev.Y > cur.Y {
				top, bottom = cur, prev
				clockwise = false
			}
			prev = cur

			if top.Y == bottom.Y {
				continue
			}
			if clip != nil && (top.Y >= clip.Max.Y || bottom.Y <= clip.Min.Y) {
				continue
			}

			dy := bottom.Y - top.Y
			e := edge{
				ymin:      top.Y,
				ymax:      bottom.Y - 1,
				clockwise: clockwise,
			}
			e.bres.init(dy, top.X, bottom.X)
			s.edges = append(s.edges, e)

			if clip != nil {
				dy = min(bottom.Y, clip.Max.Y) - max(top.Y, clip.Min.Y)
			}
			if total > math.MaxInt-dy {
				return 0, 0, ErrTooLarge
			}
			total += dy

			ymin = min(ymin, top.Y)
			ymax = max(ymax, bottom.Y)
		}
	}

	slices.SortStableFunc(s.edges, func(a, b edge) int {
		if c := cmp.Compare(a.ymin, b.ymin); c != 0 {
			return c
		}
		return cmp.Compare(a.bres.x, b.bres.x)
	})
	return ymin, ymax, nil
}

// sweep walks the scanlines from ymin to ymax-1 and emits the covered
// spans of each scanline.
func (s *scanConverter) sweep(ymin, ymax int, nonZero bool, clip *image.Rectangle) {
	next := 0 // first edge of the edge table not yet activated
	prevBand, curBand := 0, 0

	for y := ymin; y < ymax; y++ {
		if next < len(s.edges) && s.edges[next].ymin == y {
			for next < len(s.edges) && s.edges[next].ymin == y {
				s.activate(int32(next))
				next++
			}
			if nonZero {
				s.computeWinding()
			}
		}

		if clip == nil || y >= clip.Min.Y {
			if nonZero {
				s.emitNonZero(y)
			} else {
				s.emitEvenOdd(y)
			}
		}

		changed := s.nextScanline(y)
		if nonZero && changed {
			s.computeWinding()
		}

		if len(s.out.rects) > 0 {
			prevBand = s.out.coalesce(prevBand, curBand)
			curBand = len(s.out.rects)
		}
		if s.out.err != nil {
			return
		}
	}
}

// activate inserts edge e into the active list, before the first active
// edge whose x position is not smaller.
func (s *scanConverter) activate(e int32) {
	x := s.edges[e].bres.x
	pos := len(s.active)
	for i, a := range s.active {
		if s.edges[a].bres.x >= x {
			pos = i
			break
		}
	}
	s.active = slices.Insert(s.active, pos, e)
}

// nextScanline removes the edges which end on scanline y, steps the
// remaining edges to the next scanline and restores the x order of the
// active list.  The return value reports whether the active list changed
// other than by stepping.
func (s *scanConverter) nextScanline(y int) bool {
	changed := false

	j := 0
	for _, e := range s.active {
		if s.edges[e].ymax == y {
			changed = true
			continue
		}
		s.edges[e].bres.step()
		s.active[j] = e
		j++
	}
	s.active = s.active[:j]

	for i := 1; i < len(s.active); i++ {
		e := s.active[i]
		x := s.edges[e].bres.x
		k := i
		for k > 0 && s.edges[s.active[k-1]].bres.x > x {
			s.active[k] = s.active[k-1]
			k--
		}
		if k != i {
			s.active[k] = e
			changed = true
		}
	}
	return changed
}

// computeWinding selects the active edges where the winding number
// changes between zero and non-zero.  These edges alternately start and
// end a span.
func (s *scanConverter) computeWinding() {
	s.winding = s.winding[:0]
	outside := true
	w := 0
	for _, e := range s.active {
		if s.edges[e].clockwise {
			w++
		} else {
			w--
		}
		if outside == (w != 0) {
			s.winding = append(s.winding, e)
			outside = !outside
		}
	}
}

func (s *scanConverter) emitEvenOdd(y int) {
	for i := 0; i+1 < len(s.active); i += 2 {
		left := s.edges[s.active[i]].bres.x
		right := s.edges[s.active[i+1]].bres.x
		s.addSpan(y, left, right)
	}
}

func (s *scanConverter) emitNonZero(y int) {
	for i := 0; i+1 < len(s.winding); i += 2 {
		left := s.edges[s.winding[i]].bres.x
		right := s.edges[s.winding[i+1]].bres.x
		s.addSpan(y, left, right)
	}
}

// addSpan adds the span [left, right) on scanline y.  Spans are generated
// left to right, and a span which touches or overlaps the previous span of
// the same scanline is merged into it.
func (s *scanConverter) addSpan(y, left, right int) {
	if left >= right {
		return
	}
	out := s.out
	if n := len(out.rects); n > 0 {
		last := &out.rects[n-1]
		if last.Min.Y == y && last.Max.X >= left {
			last.Max.X = max(last.Max.X, right)
			return
		}
	}
	out.add(left, y, right, y+1)
}
