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
	"sort"
)

// Contains reports whether the point p lies inside the region.
func (reg *Region) Contains(p image.Point) bool {
	if !p.In(reg.extents) {
		return false
	}
	rects := reg.rects

	// The bottoms of the bands increase from band to band, so a binary
	// search finds the first rectangle which extends below p.
	i := sort.Search(len(rects), func(i int) bool { return rects[i].Max.Y > p.Y })
	if i == len(rects) || rects[i].Min.Y > p.Y {
		return false
	}
	band := rects[i:bandEnd(rects, i)]
	j := sort.Search(len(band), func(j int) bool { return band[j].Max.X > p.X })
	return j < len(band) && band[j].Min.X <= p.X
}

// Overlaps reports whether any point of the rectangle r lies inside the
// region.
func (reg *Region) Overlaps(r image.Rectangle) bool {
	r = r.Canon()
	if !r.Overlaps(reg.extents) {
		return false
	}
	rects := reg.rects
	i := sort.Search(len(rects), func(i int) bool { return rects[i].Max.Y > r.Min.Y })
	for i < len(rects) && rects[i].Min.Y < r.Max.Y {
		end := bandEnd(rects, i)
		for _, rr := range rects[i:end] {
			if rr.Min.X >= r.Max.X {
				break
			}
			if rr.Max.X > r.Min.X {
				return true
			}
		}
		i = end
	}
	return false
}
