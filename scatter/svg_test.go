// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/aclements/go-qcplot/plot"
)

func TestWriteSVG(t *testing.T) {
	var points []Point
	for i := 0; i < 9; i++ {
		points = append(points, Point{Name: fmt.Sprintf("base%d", i), X: float64(i), Y: float64(i % 3), Group: "cluster"})
	}
	points = append(points, Point{Name: "far", X: 100, Y: 0})
	p := testPlot(t, &plot.Config{ID: "svg", Title: "spread", XLab: "size", YLab: "rate"}, points)

	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 0, 400, 300); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output does not look like SVG: %.80q", buf.String())
	}
}

func TestWriteSVGLog(t *testing.T) {
	silenceWarnings(t)

	points := []Point{
		{Name: "a", X: 1, Y: 1},
		{Name: "b", X: 10, Y: 2},
		{Name: "c", X: 100, Y: 3},
		{Name: "dropped", X: -5, Y: 4},
	}
	p := testPlot(t, &plot.Config{ID: "log", XLog: true}, points)

	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 0, 400, 300); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output does not look like SVG: %.80q", buf.String())
	}
}

func TestWriteSVGNoDrawablePoints(t *testing.T) {
	silenceWarnings(t)

	points := []Point{{Name: "neg", X: -1, Y: 1}}
	p := testPlot(t, &plot.Config{ID: "empty", XLog: true}, points)

	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 0, 400, 300); err == nil {
		t.Error("want an error when every point is dropped")
	}
}
