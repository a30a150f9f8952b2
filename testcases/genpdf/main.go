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

// Command genpdf draws the test cases for visual inspection.
// Every PDF shows the rectangles of the computed region in gray,
// with the outline of the original path on top.  Optionally, the PDFs
// are rendered to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/region"
	"seehuhn.de/go/region/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	png := flag.Bool("png", false, "also render PNG files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			reg, err := tc.Region()
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(tc, reg, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *png {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, reg *region.Region, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; device coordinates have y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(0.6))
	for r := range reg.All() {
		page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	}
	if !reg.IsEmpty() {
		page.Fill()

		// bounding box of the region
		bbox := reg.BBox()
		frame := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
		if !frame.Covers(bbox) {
			fmt.Fprintf(os.Stderr, "%s: region bounds %s exceed the page\n", tc.Name, reg.Bounds())
		}
		page.SetStrokeColor(color.DeviceGray(0.35))
		page.SetLineWidth(0.5)
		page.Rectangle(bbox.LLx, bbox.LLy, bbox.Dx(), bbox.Dy())
		page.Stroke()
	}

	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(0.25)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	drawn := false
	var cur, start vec.Vec2
	for cmd, pts := range tc.Path {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
			cur, start = pts[0], pts[0]
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
			cur = pts[0]
		case path.CmdQuadTo:
			// PDF has no quadratic curves
			c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			cur = pts[1]
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			cur = pts[2]
		case path.CmdClose:
			page.ClosePath()
			cur = start
		}
		drawn = true
	}
	if drawn {
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
