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

package testcases

import (
	"fmt"
	"image"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/devpath"
)

// DevicePath records the geometry of the test case as a closed device path.
func (tc TestCase) DevicePath() (*devpath.Path, error) {
	p := &devpath.Path{}
	p.Begin()
	if err := p.AppendGeom(tc.Path); err != nil {
		p.Abort()
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	if err := p.End(); err != nil {
		return nil, err
	}
	return p, nil
}

// Region applies the operation of the test case to its path and returns
// the resulting region, clipped to the canvas.
func (tc TestCase) Region() (*region.Region, error) {
	p, err := tc.DevicePath()
	if err != nil {
		return nil, err
	}

	rule := region.NonZero
	switch op := tc.Op.(type) {
	case Fill:
		if op.Rule == EvenOdd {
			rule = region.EvenOdd
		}
	case Stroke:
		pen := devpath.Pen{
			Width:      op.Width,
			Cap:        op.Cap,
			Join:       op.Join,
			MiterLimit: op.MiterLimit,
		}
		if err := p.Widen(pen); err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
	default:
		return nil, fmt.Errorf("%s: unknown operation %T", tc.Name, tc.Op)
	}

	canvas := image.Rect(0, 0, tc.Width, tc.Height)
	return p.ToRegionClip(rule, canvas)
}
