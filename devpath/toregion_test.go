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

	"seehuhn.de/go/region"
)

func TestToRegionSquare(t *testing.T) {
	for _, closeFigure := range []bool{true, false} {
		p := build(t, func(p *Path) {
			require.NoError(t, p.MoveTo(image.Pt(0, 0)))
			require.NoError(t, p.PolylineTo([]image.Point{{10, 0}, {10, 10}, {0, 10}}))
			if closeFigure {
				require.NoError(t, p.CloseFigure())
			}
		})
		for _, rule := range []region.FillRule{region.EvenOdd, region.NonZero} {
			reg, err := p.ToRegion(rule)
			require.NoError(t, err)
			assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 10, 10)}, reg.Rects())
		}
		assert.Equal(t, 4, p.Len())
		assert.Equal(t, Closed, p.State())
	}
}

func TestToRegionState(t *testing.T) {
	var p Path
	_, err := p.ToRegion(region.NonZero)
	assert.ErrorIs(t, err, ErrNotClosed)

	p.Begin()
	require.NoError(t, p.LineTo(image.Pt(10, 10)))
	_, err = p.ToRegion(region.NonZero)
	assert.ErrorIs(t, err, ErrNotClosed)
	_, err = p.FillRegion(region.NonZero)
	assert.ErrorIs(t, err, ErrNotClosed)
}

func TestToRegionFigures(t *testing.T) {
	p := build(t, func(p *Path) {
		pts := []image.Point{
			{0, 0}, {10, 0}, {10, 10}, {0, 10},
			{20, 0}, {30, 0}, {30, 10}, {20, 10},
		}
		require.NoError(t, p.PolyPolygon(pts, []int{4, 4}))
	})
	reg, err := p.ToRegion(region.NonZero)
	require.NoError(t, err)
	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(20, 0, 30, 10)}, reg.Rects())
}

func TestToRegionFillRule(t *testing.T) {
	// a pentagram: the center has winding number 2
	p := build(t, func(p *Path) {
		require.NoError(t, p.Polygon([]image.Point{
			{50, 0}, {79, 90}, {2, 34}, {98, 34}, {21, 90},
		}))
	})
	nonZero, err := p.ToRegion(region.NonZero)
	require.NoError(t, err)
	evenOdd, err := p.ToRegion(region.EvenOdd)
	require.NoError(t, err)

	center := image.Pt(50, 50)
	assert.True(t, nonZero.Contains(center))
	assert.False(t, evenOdd.Contains(center))
	assert.True(t, nonZero.Contains(image.Pt(50, 10)))
	assert.True(t, evenOdd.Contains(image.Pt(50, 10)))

	diff := region.New()
	require.NoError(t, diff.Combine(evenOdd, nonZero, region.Diff))
	assert.True(t, diff.IsEmpty())
}

func TestToRegionDegenerate(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.MoveTo(image.Pt(5, 5)))
		require.NoError(t, p.LineTo(image.Pt(5, 5)))
		require.NoError(t, p.MoveTo(image.Pt(0, 0)))
		require.NoError(t, p.LineTo(image.Pt(10, 10)))
	})
	reg, err := p.ToRegion(region.NonZero)
	require.NoError(t, err)
	assert.True(t, reg.IsEmpty())
}

func TestToRegionClip(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.Polygon([]image.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}))
	})
	reg, err := p.ToRegionClip(region.NonZero, image.Rect(50, 50, 200, 200))
	require.NoError(t, err)
	assert.Equal(t, []image.Rectangle{image.Rect(50, 50, 100, 100)}, reg.Rects())

	reg, err = p.ToRegionClip(region.NonZero, image.Rect(200, 200, 300, 300))
	require.NoError(t, err)
	assert.True(t, reg.IsEmpty())
}

func TestFillRegion(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.Ellipse(image.Rect(0, 0, 60, 40), false))
	})
	want, err := p.ToRegion(region.EvenOdd)
	require.NoError(t, err)
	require.False(t, p.isFlat())

	got, err := p.FillRegion(region.EvenOdd)
	require.NoError(t, err)
	assert.True(t, p.isFlat())
	assert.Equal(t, Closed, p.State())
	assert.True(t, want.Equal(got))
}
