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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func curvePath(t testing.TB) *Path {
	return build(t, func(p *Path) {
		require.NoError(t, p.MoveTo(image.Pt(0, 0)))
		require.NoError(t, p.PolyBezierTo([]image.Point{{0, 100}, {100, 100}, {100, 0}}))
		require.NoError(t, p.CloseFigure())
		require.NoError(t, p.MoveTo(image.Pt(200, 0)))
		require.NoError(t, p.LineTo(image.Pt(300, 0)))
		require.NoError(t, p.PolyBezierTo([]image.Point{{300, 50}, {250, 50}, {250, 80}}))
	})
}

func TestFlatten(t *testing.T) {
	p := curvePath(t)
	require.NoError(t, p.Flatten())
	assert.Equal(t, Closed, p.State())

	pts, types := p.Points(), p.Types()
	var moves []image.Point
	var closes []int
	for i, tp := range types {
		assert.NotEqual(t, Bezier, tp.Kind(), "entry %d", i)
		if tp.Kind() == Move {
			moves = append(moves, pts[i])
		}
		if tp.Closes() {
			closes = append(closes, i)
		}
	}
	assert.Equal(t, []image.Point{{0, 0}, {200, 0}}, moves)
	require.Len(t, closes, 1)
	assert.Equal(t, image.Pt(100, 0), pts[closes[0]])
	assert.Equal(t, Move, types[closes[0]+1])
	assert.Equal(t, image.Pt(250, 80), pts[len(pts)-1])
	assert.Equal(t, Line, types[len(types)-1])
}

func TestFlattenIdempotent(t *testing.T) {
	p := curvePath(t)
	require.NoError(t, p.Flatten())
	q := p.Clone()
	require.NoError(t, q.Flatten())
	assert.Equal(t, p.Points(), q.Points())
	assert.Equal(t, p.Types(), q.Types())
}

func TestFlattened(t *testing.T) {
	p := curvePath(t)
	before := p.Types()

	q, err := p.Flattened()
	require.NoError(t, err)
	assert.Equal(t, before, p.Types())
	assert.Greater(t, q.Len(), p.Len())

	p.Begin()
	_, err = p.Flattened()
	assert.ErrorIs(t, err, ErrNotClosed)
	assert.ErrorIs(t, p.Flatten(), ErrNotClosed)
}

// TestFlattenAccuracy checks that the polyline stays close to the curve.
func TestFlattenTooLarge(t *testing.T) {
	p := curvePath(t)
	q, err := p.Flattened()
	require.NoError(t, err)
	require.Greater(t, q.Len(), p.Len())

	before, beforeTypes := p.Points(), p.Types()
	setMaxEntries(t, p.Len())
	err = p.Flatten()
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, before, p.Points())
	assert.Equal(t, beforeTypes, p.Types())
}

func TestFlattenAccuracy(t *testing.T) {
	ctrl := [4]vec.Vec2{{X: 10, Y: 10}, {X: 40, Y: 300}, {X: 300, Y: -200}, {X: 330, Y: 90}}
	p := build(t, func(p *Path) {
		require.NoError(t, p.PolyBezier([]image.Point{
			{10, 10}, {40, 300}, {300, -200}, {330, 90},
		}))
	})
	require.NoError(t, p.Flatten())

	curve := make([]vec.Vec2, 2001)
	for i := range curve {
		curve[i] = bezierAt(ctrl, float64(i)/float64(len(curve)-1))
	}
	dist := func(v vec.Vec2) float64 {
		d := math.Inf(1)
		for _, c := range curve {
			d = min(d, v.Sub(c).Length())
		}
		return d
	}

	pts := p.Points()
	for i, pt := range pts {
		assert.LessOrEqual(t, dist(toVec(pt)), 1.0, "vertex %d %v", i, pt)
		if i > 0 {
			mid := toVec(pts[i-1]).Add(toVec(pt)).Mul(0.5)
			assert.LessOrEqual(t, dist(mid), 2.0, "segment %d", i)
		}
	}
}

func TestFlattenDegenerate(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.MoveTo(image.Pt(5, 5)))
		require.NoError(t, p.PolyBezierTo([]image.Point{{5, 5}, {5, 5}, {5, 5}}))
	})
	require.NoError(t, p.Flatten())
	assert.Equal(t, []image.Point{{5, 5}, {5, 5}}, p.Points())
	assert.Equal(t, []Type{Move, Line}, p.Types())
}

func TestFlattenDepth(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.PolyBezier([]image.Point{
			{0, 0}, {0, 1 << 24}, {1 << 24, 1 << 24}, {1 << 24, 0},
		}))
	})
	require.NoError(t, p.Flatten())
	assert.LessOrEqual(t, p.Len(), 1+1<<maxDepth)
}

func bezierAt(c [4]vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return c[0].Mul(s * s * s).
		Add(c[1].Mul(3 * s * s * t)).
		Add(c[2].Mul(3 * s * t * t)).
		Add(c[3].Mul(t * t * t))
}
