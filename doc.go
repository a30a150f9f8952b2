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

// Package region implements areas of the integer device plane as banded
// lists of rectangles, together with boolean set operations on such areas
// and scan conversion of polygons into regions.
//
// A [Region] stores its area as a sequence of half-open rectangles.
// Rectangles with the same top and bottom form a band; bands are sorted
// top to bottom, the rectangles inside a band are sorted left to right and
// never touch.  Vertically adjacent bands with identical horizontal
// structure are always merged, so every operation leaves the region in the
// smallest decomposition the construction algorithm can reach.
//
// Device paths, which are converted into regions for filling and clipping,
// live in the sub-package seehuhn.de/go/region/devpath.
package region

//go:generate go run ./testcases/export
