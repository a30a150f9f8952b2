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

package region

import (
	"bytes"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	tri := []image.Point{{0, 0}, {10, 0}, {0, 10}}
	_, err := FromPolygons([][]image.Point{tri}, NonZero, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scan conversion")
	assert.Contains(t, buf.String(), "rects=10")

	buf.Reset()
	reg := New()
	require.NoError(t, reg.Combine(NewRect(0, 0, 10, 10), NewRect(20, 0, 30, 10), Or))
	assert.Contains(t, buf.String(), "msg=combine")
	assert.Contains(t, buf.String(), "rects=2")

	SetLogger(nil)
	buf.Reset()
	_, err = FromPolygons([][]image.Point{tri}, NonZero, nil)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
