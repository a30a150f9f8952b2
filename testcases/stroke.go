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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 8,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinMiter,
		},
	},
	{
		Name:   "line_round",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 8,
			Cap:   graphics.LineCapRound,
			Join:  graphics.LineJoinRound,
		},
	},
	{
		Name:   "line_square",
		Path:   horizontalLine(10, 32, 54),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 8,
			Cap:   graphics.LineCapSquare,
			Join:  graphics.LineJoinMiter,
		},
	},
	{
		Name:   "line_odd_width",
		Path:   polyline(false, pt(10, 12), pt(54, 52)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 5,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinMiter,
		},
	},
	{
		Name:   "corner_miter",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "corner_round",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 8,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinRound,
		},
	},
	{
		Name:   "corner_bevel",
		Path:   corner(10, 50, 32, 14, 54, 50),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 8,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinBevel,
		},
	},
	{
		// the sharp corner exceeds the miter limit and is beveled
		Name:   "corner_miter_limit",
		Path:   corner(10, 54, 32, 10, 40, 54),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 2,
		},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 6,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinMiter,
		},
	},
	{
		Name:   "dot",
		Path:   polyline(false, pt(32, 32), pt(32, 32)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width: 12,
			Cap:   graphics.LineCapRound,
			Join:  graphics.LineJoinRound,
		},
	},
}

// horizontalLine builds a horizontal line segment.
func horizontalLine(x1, y, x2 float64) path.Path {
	return polyline(false, pt(x1, y), pt(x2, y))
}

// corner builds a path with two line segments meeting at a corner.
func corner(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polyline(false, pt(x1, y1), pt(x2, y2), pt(x3, y3))
}
