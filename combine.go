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
)

// Op selects the boolean operation performed by [Region.Combine].
type Op int

// These are the supported operations.
const (
	And  Op = iota + 1 // points in both regions
	Or                 // points in either region
	Xor                // points in exactly one of the regions
	Diff               // points in the first region but not in the second
	Copy               // the points of the first region
)

func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	case Diff:
		return "diff"
	case Copy:
		return "copy"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Combine sets reg to the result of applying op to a and b.
// For [Copy], b is ignored and may be nil.
//
// The receiver may be the same region as a or b.  If an error is
// returned, reg is unchanged.
func (reg *Region) Combine(a, b *Region, op Op) error {
	var err error
	switch op {
	case Copy:
		reg.Copy(a)
	case And:
		err = reg.intersect(a, b)
	case Or:
		err = reg.union(a, b)
	case Xor:
		err = reg.xor(a, b)
	case Diff:
		err = reg.subtract(a, b)
	default:
		return fmt.Errorf("region: invalid combine operation %d", int(op))
	}
	if err != nil {
		return err
	}
	Logger().Debug("combine", "op", op, "rects", len(reg.rects))
	return nil
}

// AddRect adds the rectangle r to the region.
func (reg *Region) AddRect(r image.Rectangle) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	return reg.union(reg, &Region{rects: []image.Rectangle{r}, extents: r})
}

func (reg *Region) intersect(a, b *Region) error {
	if len(a.rects) == 0 || len(b.rects) == 0 || !a.extents.Overlaps(b.extents) {
		reg.clear()
		return nil
	}
	if len(a.rects) == 1 && b.extents.In(a.extents) {
		reg.Copy(b)
		return nil
	}
	if len(b.rects) == 1 && a.extents.In(b.extents) {
		reg.Copy(a)
		return nil
	}

	out := regionOp(a, b, intersectOverlap, nil, nil)
	return out.install(reg)
}

func (reg *Region) union(a, b *Region) error {
	if a == b || len(b.rects) == 0 {
		reg.Copy(a)
		return nil
	}
	if len(a.rects) == 0 {
		reg.Copy(b)
		return nil
	}
	if len(a.rects) == 1 && b.extents.In(a.extents) {
		reg.Copy(a)
		return nil
	}
	if len(b.rects) == 1 && a.extents.In(b.extents) {
		reg.Copy(b)
		return nil
	}

	ext := a.extents.Union(b.extents)
	out := regionOp(a, b, unionOverlap, unionNonOverlap, unionNonOverlap)
	if out.err != nil {
		return out.err
	}
	reg.rects = out.rects
	reg.extents = ext
	reg.compact()
	return nil
}

// subtract sets reg to m minus s.
func (reg *Region) subtract(m, s *Region) error {
	if len(m.rects) == 0 || len(s.rects) == 0 || !m.extents.Overlaps(s.extents) {
		reg.Copy(m)
		return nil
	}
	if m == s {
		reg.clear()
		return nil
	}

	out := regionOp(m, s, subtractOverlap, subtractNonOverlap, nil)
	return out.install(reg)
}

func (reg *Region) xor(a, b *Region) error {
	var ab, ba Region
	if err := ab.subtract(a, b); err != nil {
		return err
	}
	if err := ba.subtract(b, a); err != nil {
		return err
	}
	return reg.union(&ab, &ba)
}

// overlapFunc emits the rectangles for a band covered by both inputs.
// r1 and r2 are the rectangles of the two input bands; the output
// rectangles span the rows top to bottom.
type overlapFunc func(out *builder, r1, r2 []image.Rectangle, top, bottom int)

// nonOverlapFunc emits the rectangles for a band covered by only one input.
type nonOverlapFunc func(out *builder, r []image.Rectangle, top, bottom int)

// bandEnd returns the index one past the band which starts at index i.
func bandEnd(rects []image.Rectangle, i int) int {
	top := rects[i].Min.Y
	j := i + 1
	for j < len(rects) && rects[j].Min.Y == top {
		j++
	}
	return j
}

// regionOp sweeps over the bands of a and b from top to bottom.  Each
// vertical interval where the set of contributing bands does not change is
// passed to overlap, if both regions contribute, or to nonOverlap1 or
// nonOverlap2 if only a or only b contributes.  A nil handler emits
// nothing.  After each output band, an attempt is made to merge it with the
// band above.
//
// The result is collected in a new buffer, so that a and b are unchanged
// while the sweep runs.
func regionOp(a, b *Region, overlap overlapFunc, nonOverlap1, nonOverlap2 nonOverlapFunc) *builder {
	out := newBuilder(2 * max(len(a.rects), len(b.rects)))

	r1, r2 := a.rects, b.rects
	i1, i2 := 0, 0

	// ybot is the bottom of the interval handled last, ytop the top of
	// the next interval where both regions overlap.
	ybot := min(a.extents.Min.Y, b.extents.Min.Y)
	prevBand := 0

	for i1 < len(r1) && i2 < len(r2) {
		end1 := bandEnd(r1, i1)
		end2 := bandEnd(r2, i2)

		var ytop int
		curBand := len(out.rects)
		switch {
		case r1[i1].Min.Y < r2[i2].Min.Y:
			top := max(r1[i1].Min.Y, ybot)
			bot := min(r1[i1].Max.Y, r2[i2].Min.Y)
			if top != bot && nonOverlap1 != nil {
				nonOverlap1(out, r1[i1:end1], top, bot)
			}
			ytop = r2[i2].Min.Y
		case r2[i2].Min.Y < r1[i1].Min.Y:
			top := max(r2[i2].Min.Y, ybot)
			bot := min(r2[i2].Max.Y, r1[i1].Min.Y)
			if top != bot && nonOverlap2 != nil {
				nonOverlap2(out, r2[i2:end2], top, bot)
			}
			ytop = r1[i1].Min.Y
		default:
			ytop = r1[i1].Min.Y
		}
		if len(out.rects) != curBand {
			prevBand = out.coalesce(prevBand, curBand)
		}

		ybot = min(r1[i1].Max.Y, r2[i2].Max.Y)
		curBand = len(out.rects)
		if ybot > ytop {
			overlap(out, r1[i1:end1], r2[i2:end2], ytop, ybot)
		}
		if len(out.rects) != curBand {
			prevBand = out.coalesce(prevBand, curBand)
		}

		if r1[i1].Max.Y == ybot {
			i1 = end1
		}
		if r2[i2].Max.Y == ybot {
			i2 = end2
		}
	}

	curBand := len(out.rects)
	switch {
	case i1 < len(r1) && nonOverlap1 != nil:
		for i1 < len(r1) {
			end1 := bandEnd(r1, i1)
			nonOverlap1(out, r1[i1:end1], max(r1[i1].Min.Y, ybot), r1[i1].Max.Y)
			i1 = end1
		}
	case i2 < len(r2) && nonOverlap2 != nil:
		for i2 < len(r2) {
			end2 := bandEnd(r2, i2)
			nonOverlap2(out, r2[i2:end2], max(r2[i2].Min.Y, ybot), r2[i2].Max.Y)
			i2 = end2
		}
	}
	if len(out.rects) != curBand {
		out.coalesce(prevBand, curBand)
	}

	return out
}

// intersectOverlap emits the intervals covered by both bands.
func intersectOverlap(out *builder, r1, r2 []image.Rectangle, top, bottom int) {
	i, j := 0, 0
	for i < len(r1) && j < len(r2) {
		left := max(r1[i].Min.X, r2[j].Min.X)
		right := min(r1[i].Max.X, r2[j].Max.X)
		if left < right {
			out.add(left, top, right, bottom)
		}

		// Advance whichever rectangle ends first.  If both end at the
		// same place, advance both.
		switch {
		case r1[i].Max.X < r2[j].Max.X:
			i++
		case r2[j].Max.X < r1[i].Max.X:
			j++
		default:
			i++
			j++
		}
	}
}

// unionNonOverlap copies the intervals of a band.
func unionNonOverlap(out *builder, r []image.Rectangle, top, bottom int) {
	for _, rr := range r {
		out.add(rr.Min.X, top, rr.Max.X, bottom)
	}
}

// unionOverlap emits the union of the intervals of both bands.  Touching
// and overlapping intervals are merged.
func unionOverlap(out *builder, r1, r2 []image.Rectangle, top, bottom int) {
	merge := func(r image.Rectangle) {
		n := len(out.rects)
		if n > 0 {
			last := &out.rects[n-1]
			if last.Min.Y == top && last.Max.Y == bottom && last.Max.X >= r.Min.X {
				last.Max.X = max(last.Max.X, r.Max.X)
				return
			}
		}
		out.add(r.Min.X, top, r.Max.X, bottom)
	}

	i, j := 0, 0
	for i < len(r1) && j < len(r2) {
		if r1[i].Min.X < r2[j].Min.X {
			merge(r1[i])
			i++
		} else {
			merge(r2[j])
			j++
		}
	}
	for ; i < len(r1); i++ {
		merge(r1[i])
	}
	for ; j < len(r2); j++ {
		merge(r2[j])
	}
}

// subtractNonOverlap copies the minuend intervals of a band where the
// subtrahend is absent.
func subtractNonOverlap(out *builder, r []image.Rectangle, top, bottom int) {
	for _, rr := range r {
		out.add(rr.Min.X, top, rr.Max.X, bottom)
	}
}

// subtractOverlap emits the intervals of the minuend band m which are not
// covered by the subtrahend band s.
func subtractOverlap(out *builder, m, s []image.Rectangle, top, bottom int) {
	i, j := 0, 0
	left := m[0].Min.X // left fence: everything left of it is done

	nextMinuend := func() {
		i++
		if i < len(m) {
			left = m[i].Min.X
		}
	}

	for i < len(m) && j < len(s) {
		switch {
		case s[j].Max.X <= left:
			// subtrahend entirely to the left of the fence
			j++
		case s[j].Min.X <= left:
			// subtrahend covers the fence, move it to the right
			left = s[j].Max.X
			if left >= m[i].Max.X {
				nextMinuend()
			} else {
				j++
			}
		case s[j].Min.X < m[i].Max.X:
			// subtrahend splits the minuend
			out.add(left, top, s[j].Min.X, bottom)
			left = s[j].Max.X
			if left >= m[i].Max.X {
				nextMinuend()
			} else {
				j++
			}
		default:
			// subtrahend is right of the minuend
			if m[i].Max.X > left {
				out.add(left, top, m[i].Max.X, bottom)
			}
			nextMinuend()
		}
	}
	for i < len(m) {
		out.add(left, top, m[i].Max.X, bottom)
		nextMinuend()
	}
}
