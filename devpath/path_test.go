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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build records a path using fn and finalizes it.
func build(t testing.TB, fn func(p *Path)) *Path {
	t.Helper()
	p := &Path{}
	p.Begin()
	fn(p)
	require.NoError(t, p.End())
	return p
}

func TestStates(t *testing.T) {
	var p Path
	assert.Equal(t, Null, p.State())
	assert.ErrorIs(t, p.LineTo(image.Pt(1, 1)), ErrNotOpen)
	assert.ErrorIs(t, p.End(), ErrNotOpen)
	assert.ErrorIs(t, p.CloseFigure(), ErrNotOpen)

	p.Begin()
	assert.Equal(t, Open, p.State())
	require.NoError(t, p.LineTo(image.Pt(1, 1)))
	require.NoError(t, p.End())
	assert.Equal(t, Closed, p.State())

	assert.ErrorIs(t, p.LineTo(image.Pt(2, 2)), ErrNotOpen)
	assert.ErrorIs(t, p.MoveTo(image.Pt(2, 2)), ErrNotOpen)
	assert.ErrorIs(t, p.End(), ErrNotOpen)
	assert.Equal(t, 2, p.Len())

	p.Abort()
	assert.Equal(t, Null, p.State())
	assert.Equal(t, 0, p.Len())
}

func TestBeginDiscards(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.Polygon([]image.Point{{0, 0}, {10, 0}, {0, 10}}))
	})
	require.Equal(t, 3, p.Len())

	p.Begin()
	assert.Equal(t, Open, p.State())
	assert.Equal(t, 0, p.Len())
}

func TestMoveToDeferred(t *testing.T) {
	p := &Path{}
	p.Begin()
	require.NoError(t, p.MoveTo(image.Pt(1, 1)))
	assert.Equal(t, 0, p.Len())
	require.NoError(t, p.MoveTo(image.Pt(5, 5)))
	require.NoError(t, p.LineTo(image.Pt(10, 5)))

	assert.Equal(t, []image.Point{{5, 5}, {10, 5}}, p.Points())
	assert.Equal(t, []Type{Move, Line}, p.Types())
	assert.Equal(t, image.Pt(10, 5), p.Position())

	// a line from the end of the figure continues it
	require.NoError(t, p.LineTo(image.Pt(20, 5)))
	assert.Equal(t, 3, p.Len())

	// an explicit move always starts a new figure
	require.NoError(t, p.MoveTo(image.Pt(20, 5)))
	require.NoError(t, p.LineTo(image.Pt(30, 5)))
	assert.Equal(t, []Type{Move, Line, Line, Move, Line}, p.Types())
}

func TestImplicitStart(t *testing.T) {
	p := &Path{}
	p.Begin()
	require.NoError(t, p.LineTo(image.Pt(3, 4)))
	assert.Equal(t, []image.Point{{0, 0}, {3, 4}}, p.Points())
	assert.Equal(t, []Type{Move, Line}, p.Types())
}

func TestCloseFigure(t *testing.T) {
	p := &Path{}
	p.Begin()
	require.NoError(t, p.CloseFigure())
	assert.Equal(t, 0, p.Len())

	require.NoError(t, p.MoveTo(image.Pt(0, 0)))
	require.NoError(t, p.PolylineTo([]image.Point{{10, 0}, {10, 10}}))
	require.NoError(t, p.CloseFigure())
	assert.Equal(t, image.Pt(0, 0), p.Position())

	require.NoError(t, p.LineTo(image.Pt(5, 5)))
	assert.Equal(t, []Type{Move, Line, Line | Close, Move, Line}, p.Types())
	assert.Equal(t, []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}, {5, 5}}, p.Points())
}

func TestPolyBezierTo(t *testing.T) {
	p := &Path{}
	p.Begin()
	require.NoError(t, p.MoveTo(image.Pt(0, 0)))

	err := p.PolyBezierTo([]image.Point{{0, 10}, {10, 10}})
	assert.ErrorIs(t, err, ErrInvalidPoints)
	assert.Equal(t, 0, p.Len())

	require.NoError(t, p.PolyBezierTo(nil))
	assert.Equal(t, 0, p.Len())

	require.NoError(t, p.PolyBezierTo([]image.Point{{0, 10}, {10, 10}, {10, 0}}))
	assert.Equal(t, []Type{Move, Bezier, Bezier, Bezier}, p.Types())
	assert.Equal(t, image.Pt(10, 0), p.Position())
}

func TestPolyBezier(t *testing.T) {
	p := &Path{}
	p.Begin()

	for _, n := range []int{0, 1, 3, 5} {
		err := p.PolyBezier(make([]image.Point, n))
		assert.ErrorIs(t, err, ErrInvalidPoints, "%d points", n)
	}
	assert.Equal(t, 0, p.Len())

	pts := []image.Point{{1, 1}, {1, 10}, {10, 10}, {10, 1}, {20, 1}, {20, 20}, {30, 30}}
	require.NoError(t, p.PolyBezier(pts))
	assert.Equal(t, pts, p.Points())
	assert.Equal(t, Move, p.Types()[0])
	for _, tp := range p.Types()[1:] {
		assert.Equal(t, Bezier, tp)
	}
	assert.Equal(t, image.Pt(0, 0), p.Position())
}

func TestPolygon(t *testing.T) {
	p := &Path{}
	p.Begin()

	assert.ErrorIs(t, p.Polygon([]image.Point{{1, 1}}), ErrInvalidPoints)
	assert.ErrorIs(t, p.PolyPolygon([]image.Point{{1, 1}, {2, 2}, {3, 3}}, []int{2, 2}), ErrInvalidPoints)
	assert.ErrorIs(t, p.PolyPolyline([]image.Point{{1, 1}, {2, 2}}, []int{2, 0}), ErrInvalidPoints)
	assert.Equal(t, 0, p.Len())

	pts := []image.Point{{0, 0}, {10, 0}, {0, 10}, {20, 0}, {30, 0}}
	require.NoError(t, p.PolyPolygon(pts, []int{3, 2}))
	assert.Equal(t, pts, p.Points())
	assert.Equal(t, []Type{Move, Line, Line | Close, Move, Line | Close}, p.Types())

	p.Begin()
	require.NoError(t, p.Polyline(pts[:3]))
	assert.Equal(t, []Type{Move, Line, Line}, p.Types())
}

func TestPolyDraw(t *testing.T) {
	p := &Path{}
	p.Begin()

	pts := []image.Point{{0, 0}, {10, 0}, {10, 10}, {20, 10}, {30, 0}, {40, 10}}
	types := []Type{Move, Line, Bezier, Bezier, Bezier | Close, Line}
	require.NoError(t, p.PolyDraw(pts, types))

	assert.Equal(t,
		[]image.Point{{0, 0}, {10, 0}, {10, 10}, {20, 10}, {30, 0}, {0, 0}, {40, 10}},
		p.Points())
	assert.Equal(t,
		[]Type{Move, Line, Bezier, Bezier, Bezier | Close, Move, Line},
		p.Types())
	assert.Equal(t, image.Pt(40, 10), p.Position())
}

func TestPolyDrawInvalid(t *testing.T) {
	cases := []struct {
		name  string
		pts   int
		types []Type
	}{
		{"short curve", 3, []Type{Move, Bezier, Bezier}},
		{"closed move", 2, []Type{Move | Close, Line}},
		{"close inside curve", 4, []Type{Move, Bezier, Bezier | Close, Bezier}},
		{"unknown type", 2, []Type{Move, 0x08}},
		{"length mismatch", 3, []Type{Move, Line}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Path{}
			p.Begin()
			require.NoError(t, p.LineTo(image.Pt(5, 5)))
			before := p.Clone()

			err := p.PolyDraw(make([]image.Point, c.pts), c.types)
			assert.ErrorIs(t, err, ErrInvalidPoints)
			assert.Equal(t, before.Points(), p.Points())
			assert.Equal(t, before.Types(), p.Types())
			assert.Equal(t, before.Position(), p.Position())
		})
	}
}

// setMaxEntries lowers the path size limit for the duration of a test.
func setMaxEntries(t *testing.T, n int) {
	t.Helper()
	old := maxEntries
	maxEntries = n
	t.Cleanup(func() { maxEntries = old })
}

func TestPathTooLarge(t *testing.T) {
	setMaxEntries(t, 16)

	var p Path
	p.Begin()
	require.NoError(t, p.MoveTo(image.Pt(0, 0)))
	require.NoError(t, p.PolylineTo([]image.Point{{10, 0}, {10, 10}}))
	require.Equal(t, 3, p.Len())
	before, beforeTypes := p.Points(), p.Types()

	var pts []image.Point
	var types []Type
	for i := range 14 {
		pts = append(pts, image.Pt(i, 20))
		types = append(types, Line)
	}

	err := p.PolylineTo(pts)
	assert.ErrorIs(t, err, ErrTooLarge)
	err = p.PolyDraw(pts, types)
	assert.ErrorIs(t, err, ErrTooLarge)

	assert.Equal(t, before, p.Points())
	assert.Equal(t, beforeTypes, p.Types())
	assert.Equal(t, image.Pt(10, 10), p.Position())
	assert.Equal(t, Open, p.State())

	// the path is still usable
	require.NoError(t, p.PolylineTo(pts[:4]))
	require.NoError(t, p.End())
	assert.Equal(t, 7, p.Len())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "line+close", (Line | Close).String())
	assert.Equal(t, "bezier", Bezier.String())
	assert.Equal(t, "Type(0x8)", Type(0x08).String())

	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestAccessors(t *testing.T) {
	var empty Path
	assert.Equal(t, image.Rectangle{}, empty.Bounds())

	p := build(t, func(p *Path) {
		require.NoError(t, p.Polygon([]image.Point{{-3, 2}, {10, 0}, {4, 7}}))
	})
	assert.Equal(t, image.Rect(-3, 0, 10, 7), p.Bounds())

	pts := p.Points()
	pts[0] = image.Pt(100, 100)
	assert.Equal(t, image.Pt(-3, 2), p.Points()[0])

	var seen []image.Point
	for pt, tp := range p.Entries() {
		if tp.Closes() {
			break
		}
		seen = append(seen, pt)
	}
	assert.Equal(t, []image.Point{{-3, 2}, {10, 0}}, seen)

	q := p.Clone()
	q.Begin()
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, Closed, p.State())
}
