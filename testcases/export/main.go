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

// Command export writes all test cases, together with the regions
// computed for them, to testdata/ for use by other implementations.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/region"
	"seehuhn.de/go/region/testcases"
)

func main() {
	format := flag.String("format", "json", "output format (json or yaml)")
	outDir := flag.String("o", "testdata", "output directory")
	verbose := flag.Bool("v", false, "log region operations")
	flag.Parse()

	if *verbose {
		region.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*format, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(format, outDir string) error {
	var out struct {
		TestCases []exportTestCase `json:"testcases" yaml:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			etc, err := toExport(category, tc)
			if err != nil {
				return err
			}
			out.TestCases = append(out.TestCases, etc)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(outDir, "testcases."+format))
	if err != nil {
		return err
	}
	err = encode(f, format, out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type exportTestCase struct {
	Name       string          `json:"name" yaml:"name"`
	Width      int             `json:"width" yaml:"width"`
	Height     int             `json:"height" yaml:"height"`
	Path       []exportSegment `json:"path" yaml:"path"`
	Op         string          `json:"op" yaml:"op"`
	FillRule   string          `json:"fill_rule,omitempty" yaml:"fill_rule,omitempty"`
	LineWidth  int             `json:"line_width,omitempty" yaml:"line_width,omitempty"`
	LineCap    string          `json:"line_cap,omitempty" yaml:"line_cap,omitempty"`
	LineJoin   string          `json:"line_join,omitempty" yaml:"line_join,omitempty"`
	MiterLimit float64         `json:"miter_limit,omitempty" yaml:"miter_limit,omitempty"`
	Kind       string          `json:"kind" yaml:"kind"`
	Rects      [][4]int        `json:"rects" yaml:"rects,flow"`
}

type exportSegment struct {
	Cmd string      `json:"cmd" yaml:"cmd"`
	Pts [][]float64 `json:"pts" yaml:"pts,flow"`
}

func toExport(category string, tc testcases.TestCase) (exportTestCase, error) {
	etc := exportTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToExport(tc.Path),
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		etc.Op = "fill"
		etc.FillRule = op.Rule.String()
	case testcases.Stroke:
		etc.Op = "stroke"
		etc.LineWidth = op.Width
		etc.LineCap = op.Cap.String()
		etc.LineJoin = op.Join.String()
		etc.MiterLimit = op.MiterLimit
	}

	reg, err := tc.Region()
	if err != nil {
		return etc, err
	}
	etc.Kind = reg.Kind().String()
	etc.Rects = [][4]int{}
	for r := range reg.All() {
		etc.Rects = append(etc.Rects, [4]int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y})
	}
	return etc, nil
}

func pathToExport(p path.Path) []exportSegment {
	var segs []exportSegment
	for cmd, pts := range p {
		seg := exportSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
