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

	"seehuhn.de/go/geom/vec"
)

const (
	// flatness is the maximal distance, in device units, between a curve
	// and the line segments which replace it.
	flatness = 1.0

	// maxDepth limits the recursive subdivision of a single curve to
	// 2^maxDepth line segments.
	maxDepth = 8
)

// appendCubic appends the end points of a polyline approximating the cubic
// Bezier curve p0, p1, p2, p3 to dst.  The start point p0 is not appended.
// Points which coincide with the previously appended point are skipped,
// except for the final end point.
func appendCubic(dst []image.Point, p0, p1, p2, p3 vec.Vec2) []image.Point {
	n := len(dst)
	dst = subdivide(dst, p0, p1, p2, p3, 0)

	// remove duplicates introduced by rounding
	last := roundVec(p0)
	j := n
	for i := n; i < len(dst); i++ {
		if dst[i] == last && i != len(dst)-1 {
			continue
		}
		dst[j] = dst[i]
		last = dst[i]
		j++
	}
	return dst[:j]
}

// subdivide splits the curve at t=1/2 until the control points lie within
// the flatness tolerance of the chord.
func subdivide(dst []image.Point, p0, p1, p2, p3 vec.Vec2, depth int) []image.Point {
	if depth >= maxDepth || isFlat(p0, p1, p2, p3) {
		return append(dst, roundVec(p3))
	}

	p01 := p0.Add(p1).Mul(0.5)
	p12 := p1.Add(p2).Mul(0.5)
	p23 := p2.Add(p3).Mul(0.5)
	p012 := p01.Add(p12).Mul(0.5)
	p123 := p12.Add(p23).Mul(0.5)
	mid := p012.Add(p123).Mul(0.5)

	dst = subdivide(dst, p0, p01, p012, mid, depth+1)
	return subdivide(dst, mid, p123, p23, p3, depth+1)
}

// isFlat reports whether both control points are within the flatness
// tolerance of the chord from p0 to p3.
func isFlat(p0, p1, p2, p3 vec.Vec2) bool {
	d := p3.Sub(p0)
	l := d.Length()
	if l < 1e-9 {
		return p1.Sub(p0).Length() < flatness && p2.Sub(p0).Length() < flatness
	}
	return math.Abs(cross(p1.Sub(p0), d)) < flatness*l &&
		math.Abs(cross(p2.Sub(p0), d)) < flatness*l
}

// arcPart returns a cubic Bezier curve approximating the arc of the
// circle with center c and radius r from angle a0 to angle a1.  The angles
// must differ by at most π/2.
func arcPart(c vec.Vec2, r, a0, a1 float64) (p0, p1, p2, p3 vec.Vec2) {
	u0 := vec.Vec2{X: math.Cos(a0), Y: math.Sin(a0)}
	u1 := vec.Vec2{X: math.Cos(a1), Y: math.Sin(a1)}
	half := (a1 - a0) / 2
	var k float64
	if math.Abs(half) > 1e-8 {
		k = 4.0 / 3.0 * (1 - math.Cos(half)) / math.Sin(half)
	}
	t0 := vec.Vec2{X: -u0.Y, Y: u0.X}
	t1 := vec.Vec2{X: -u1.Y, Y: u1.X}

	p0 = c.Add(u0.Mul(r))
	p1 = c.Add(u0.Add(t0.Mul(k)).Mul(r))
	p2 = c.Add(u1.Sub(t1.Mul(k)).Mul(r))
	p3 = c.Add(u1.Mul(r))
	return
}

// appendArc appends a polyline approximating the arc of the circle with
// center c and radius r, starting at angle a0 and turning by sweep.
// Both end points of the arc are appended.
func appendArc(dst []image.Point, c vec.Vec2, r, a0, sweep float64) []image.Point {
	start := roundVec(c.Add(vec.Vec2{X: math.Cos(a0), Y: math.Sin(a0)}.Mul(r)))
	if len(dst) == 0 || dst[len(dst)-1] != start {
		dst = append(dst, start)
	}

	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	for i := range n {
		b0 := a0 + sweep*float64(i)/float64(n)
		b1 := a0 + sweep*float64(i+1)/float64(n)
		p0, p1, p2, p3 := arcPart(c, r, b0, b1)
		dst = appendCubic(dst, p0, p1, p2, p3)
	}
	return dst
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func roundVec(v vec.Vec2) image.Point {
	return image.Point{X: roundInt(v.X), Y: roundInt(v.Y)}
}
