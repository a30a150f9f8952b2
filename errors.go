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

import "errors"

const (
	// MaxRects is the largest number of rectangles a single region may
	// hold.
	MaxRects = 1 << 26

	// MaxCoord is the largest absolute value of a polygon vertex
	// coordinate accepted by the scan converter.
	MaxCoord = 1 << 30
)

// maxRects is the limit enforced by the region builder.  It equals MaxRects
// except in tests.
var maxRects = MaxRects

var (
	// ErrTooLarge indicates that an operation would need more than
	// MaxRects rectangles, or that the coordinates of a polygon span more
	// scanlines than can be processed.  The destination region is left
	// unchanged.
	ErrTooLarge = errors.New("region: too many rectangles")

	// ErrRange indicates a polygon vertex outside the range
	// [-MaxCoord, MaxCoord].
	ErrRange = errors.New("region: coordinate out of range")
)
