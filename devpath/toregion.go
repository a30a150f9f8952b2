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

	"seehuhn.de/go/region"
)

// ToRegion returns the region covered by filling the path with the given
// fill rule.  Every figure is treated as closed, whether or not its Close
// bit is set.  Curves are flattened first.
//
// The path must be closed.  It is not modified.
func (p *Path) ToRegion(rule region.FillRule) (*region.Region, error) {
	return p.toRegion(rule, nil)
}

// ToRegionClip is like ToRegion, but only the part of the region inside
// clip is computed.  Scanlines outside clip are skipped entirely.
func (p *Path) ToRegionClip(rule region.FillRule, clip image.Rectangle) (*region.Region, error) {
	return p.toRegion(rule, &clip)
}

func (p *Path) toRegion(rule region.FillRule, clip *image.Rectangle) (*region.Region, error) {
	if p.state != Closed {
		return nil, ErrNotClosed
	}
	points, types := p.points, p.types
	if !p.isFlat() {
		var err error
		points, types, err = flatten(points, types)
		if err != nil {
			return nil, err
		}
	}
	return region.FromPolygons(contours(points, types), rule, clip)
}

// FillRegion is like ToRegion, but flattens the path in place first.
// The path stays closed.
func (p *Path) FillRegion(rule region.FillRule) (*region.Region, error) {
	if err := p.Flatten(); err != nil {
		return nil, err
	}
	return p.ToRegion(rule)
}

// contours splits a flat entry list into polygons at every move entry.
// The returned slices share memory with points.
func contours(points []image.Point, types []Type) [][]image.Point {
	var res [][]image.Point
	start := 0
	for i := 1; i <= len(points); i++ {
		if i == len(points) || types[i].Kind() == Move {
			if i-start > 1 {
				res = append(res, points[start:i])
			}
			start = i
		}
	}
	return res
}
