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

	"seehuhn.de/go/region"
)

func TestRectangle(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.Rectangle(image.Rect(0, 0, 10, 20), false))
		require.NoError(t, p.Rectangle(image.Rectangle{Min: image.Pt(10, 20), Max: image.Pt(0, 0)}, true))
	})

	assert.Equal(t, []image.Point{
		{10, 0}, {0, 0}, {0, 20}, {10, 20},
		{10, 20}, {0, 20}, {0, 0}, {10, 0},
	}, p.Points())
	assert.Equal(t, []Type{
		Move, Line, Line, Line | Close,
		Move, Line, Line, Line | Close,
	}, p.Types())
	assert.Equal(t, image.Pt(0, 0), p.Position())
}

func TestRectangleRegion(t *testing.T) {
	for _, clockwise := range []bool{false, true} {
		p := build(t, func(p *Path) {
			require.NoError(t, p.Rectangle(image.Rect(3, 4, 13, 24), clockwise))
		})
		for _, rule := range []region.FillRule{region.EvenOdd, region.NonZero} {
			reg, err := p.ToRegion(rule)
			require.NoError(t, err)
			assert.Equal(t, []image.Rectangle{image.Rect(3, 4, 13, 24)}, reg.Rects(),
				"clockwise=%t %s", clockwise, rule)
		}
	}
}

func TestEllipse(t *testing.T) {
	r := image.Rect(0, 0, 100, 50)
	p := build(t, func(p *Path) {
		require.NoError(t, p.Ellipse(r, false))
	})

	types := p.Types()
	require.Len(t, types, 13)
	assert.Equal(t, Move, types[0])
	for _, tp := range types[1:12] {
		assert.Equal(t, Bezier, tp)
	}
	assert.Equal(t, Bezier|Close, types[12])
	assert.Equal(t, image.Pt(100, 25), p.Points()[0])
	assert.Equal(t, r, p.Bounds())

	reg, err := p.ToRegion(region.NonZero)
	require.NoError(t, err)
	assert.True(t, reg.Bounds().In(r), "bounds %v", reg.Bounds())
	assert.True(t, reg.Contains(image.Pt(50, 25)))
	assert.True(t, reg.Contains(image.Pt(1, 25)))
	assert.False(t, reg.Contains(image.Pt(2, 2)))
	assert.False(t, reg.Contains(image.Pt(97, 47)))

	want := math.Pi * 50 * 25
	assert.InEpsilon(t, want, float64(area(reg)), 0.03)
}

func TestEllipseOrientation(t *testing.T) {
	r := image.Rect(10, 10, 70, 40)
	var regs []*region.Region
	for _, clockwise := range []bool{false, true} {
		p := build(t, func(p *Path) {
			require.NoError(t, p.Ellipse(r, clockwise))
		})
		reg, err := p.ToRegion(region.NonZero)
		require.NoError(t, err)
		regs = append(regs, reg)
	}
	assert.True(t, regs[0].Equal(regs[1]), "%v != %v", regs[0], regs[1])
}

func TestRoundRect(t *testing.T) {
	p := build(t, func(p *Path) {
		require.NoError(t, p.RoundRect(image.Rect(0, 0, 40, 30), 10, 8, false))
	})
	assert.Equal(t, []Type{
		Move,
		Bezier, Bezier, Bezier, Line,
		Bezier, Bezier, Bezier, Line,
		Bezier, Bezier, Bezier, Line,
		Bezier, Bezier, Bezier | Close,
	}, p.Types())
	assert.Equal(t, image.Rect(0, 0, 40, 30), p.Bounds())

	reg, err := p.ToRegion(region.NonZero)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), reg.Bounds())
	for _, pt := range []image.Point{{20, 15}, {20, 0}, {0, 15}, {39, 15}, {20, 29}} {
		assert.True(t, reg.Contains(pt), "%v", pt)
	}
	for _, pt := range []image.Point{{0, 0}, {39, 0}, {0, 29}, {39, 29}} {
		assert.False(t, reg.Contains(pt), "%v", pt)
	}
}

func TestRoundRectFlat(t *testing.T) {
	for _, e := range [][2]int{{0, 10}, {10, 0}} {
		p := build(t, func(p *Path) {
			require.NoError(t, p.RoundRect(image.Rect(0, 0, 40, 30), e[0], e[1], false))
		})
		assert.Equal(t, []Type{Move, Line, Line, Line | Close}, p.Types())
	}
}

// area returns the number of pixels in reg.
func area(reg *region.Region) int {
	n := 0
	for r := range reg.All() {
		n += r.Dx() * r.Dy()
	}
	return n
}
