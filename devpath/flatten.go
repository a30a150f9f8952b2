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
)

// Flatten replaces every Bezier curve in the path by straight line
// segments.  Move entries and Close bits are preserved; the Close bit of a
// curve is transferred to the last line segment replacing it.
// The path must be closed.  Flattening a path without curves has no
// effect.
func (p *Path) Flatten() error {
	if p.state != Closed {
		return ErrNotClosed
	}
	if p.isFlat() {
		return nil
	}
	pts, types, err := flatten(p.points, p.types)
	if err != nil {
		return err
	}
	p.points, p.types = pts, types
	return nil
}

// Flattened returns a flattened copy of the path.  The path must be
// closed; it is not modified.
func (p *Path) Flattened() (*Path, error) {
	if p.state != Closed {
		return nil, ErrNotClosed
	}
	q := p.Clone()
	if err := q.Flatten(); err != nil {
		return nil, err
	}
	return q, nil
}

// isFlat reports whether the path contains no Bezier entries.
func (p *Path) isFlat() bool {
	for _, t := range p.types {
		if t.Kind() == Bezier {
			return false
		}
	}
	return true
}

// flatten returns new point and type lists where Bezier runs are replaced
// by line entries.
func flatten(points []image.Point, types []Type) ([]image.Point, []Type, error) {
	outPts := make([]image.Point, 0, 2*len(points))
	outTypes := make([]Type, 0, 2*len(points))

	for i := 0; i < len(points); {
		t := types[i]
		if t.Kind() != Bezier {
			outPts = append(outPts, points[i])
			outTypes = append(outTypes, t)
			i++
			continue
		}

		if i == 0 || i+2 >= len(points) || types[i+1].Kind() != Bezier || types[i+2].Kind() != Bezier {
			return nil, nil, fmt.Errorf("incomplete curve at index %d: %w", i, ErrInvalidPoints)
		}
		n := len(outPts)
		outPts = appendCubic(outPts, toVec(points[i-1]), toVec(points[i]),
			toVec(points[i+1]), toVec(points[i+2]))
		for range len(outPts) - n {
			outTypes = append(outTypes, Line)
		}
		if types[i+2].Closes() {
			outTypes[len(outTypes)-1] |= Close
		}
		if len(outPts) > maxEntries {
			return nil, nil, ErrTooLarge
		}
		i += 3
	}
	return outPts, outTypes, nil
}
