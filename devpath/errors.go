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

import "errors"

// MaxEntries is the largest number of entries a path may hold.
const MaxEntries = 1 << 26

// maxEntries is the limit actually enforced; tests lower it.
var maxEntries = MaxEntries

var (
	// ErrNotOpen is returned when segments are added to a path which is
	// not recording.
	ErrNotOpen = errors.New("devpath: path is not open")

	// ErrNotClosed is returned when a path which has not been finalized
	// is flattened, filled or widened.
	ErrNotClosed = errors.New("devpath: path is not closed")

	// ErrInvalidPoints indicates a point list which does not fit the
	// requested segment types, for example a Bezier run whose length is
	// not a multiple of three.
	ErrInvalidPoints = errors.New("devpath: invalid point list")

	// ErrMalformedPath indicates a path where a figure does not begin
	// with a move entry.
	ErrMalformedPath = errors.New("devpath: malformed path")

	// ErrCosmeticPen is returned when a cosmetic pen is used for
	// widening.  Only geometric pens have a width.
	ErrCosmeticPen = errors.New("devpath: cosmetic pen cannot be widened")

	// ErrInvalidPen indicates an unsupported pen width, cap, join or
	// miter limit.
	ErrInvalidPen = errors.New("devpath: invalid pen")

	// ErrTooLarge is returned when a path would exceed MaxEntries entries.
	ErrTooLarge = errors.New("devpath: too many path entries")
)
