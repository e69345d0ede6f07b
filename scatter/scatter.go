// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatter renders scatter plots for generated QC reports.
//
// A Plot holds one or more datasets of named (x, y) points and the
// configuration they share. Rendering a dataset produces a plot.Figure
// with one trace per point. Along the way the package picks a bounded
// set of points to annotate with text labels, preferring statistical
// outliers when there are too many natural candidates, and collapses
// visually identical points into deduplicated legend entries.
package scatter

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/aclements/go-qcplot/plot"
)

// Warning is the logger for reporting conditions that don't prevent
// the production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[scatter] ", log.Lshortfile)

// Point is a single scatter point.
type Point struct {
	// Name labels the point. It is the hover text, the text used
	// when the point is annotated, and the name collected into the
	// point's legend entry. Required.
	Name string

	// X and Y locate the point. When the plot's x axis is
	// categorical, X is an index into the category list.
	X, Y float64

	// Color is a CSS color for the marker. Empty means the plot
	// default.
	Color string

	// Group prefixes the legend entry of the points sharing this
	// point's style.
	Group string

	// MarkerSize, MarkerLineWidth, and Opacity override the marker
	// style for this point. Nil means the plot default. An explicit
	// zero is meaningful and distinct from nil, for the legend as
	// well as for drawing.
	MarkerSize      *float64
	MarkerLineWidth *float64
	Opacity         *float64

	// Annotate permits outlier selection to label this point. Nil
	// means true. Points with Annotate set to false are also left
	// out of the statistics that define what an outlier is.
	Annotate *bool

	// HideInLegend keeps this point from representing its style in
	// the legend. Its name still appears in the entry of a visible
	// point with the same style.
	HideInLegend bool

	// Annotation is the text drawn next to the point. A pre-set
	// annotation survives outlier selection untouched and counts
	// toward the annotation cap.
	Annotation string
}

// annotatable reports whether outlier selection may consider p.
func (p *Point) annotatable() bool {
	return p.Annotate == nil || *p.Annotate
}

// Dataset is one point collection of a Plot. Plots with several
// datasets render them as switchable views sharing one configuration.
type Dataset struct {
	// Label names the dataset. New fills in empty labels from the
	// plot configuration.
	Label  string
	Points []Point
}

// NewDataset returns a dataset holding points. Every point must have a
// name and finite coordinates; anything else indicates a bug in the
// caller's data preparation and is rejected here, before rendering.
func NewDataset(label string, points []Point) (*Dataset, error) {
	for i := range points {
		p := &points[i]
		if p.Name == "" {
			return nil, fmt.Errorf("point %d: missing name", i)
		}
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("point %d (%s): coordinates must be finite, have (%v, %v)", i, p.Name, p.X, p.Y)
		}
	}
	return &Dataset{Label: label, Points: points}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Plot is a scatter plot: datasets plus shared configuration.
type Plot struct {
	Config   *plot.Config
	Datasets []*Dataset
}

// New assembles a plot. It requires a valid configuration and at least
// one dataset, and fills in missing dataset labels from the config's
// data labels, falling back to "Dataset N".
func New(cfg *plot.Config, datasets ...*Dataset) (*Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(datasets) == 0 {
		return nil, fmt.Errorf("plot %s: no datasets", cfg.ID)
	}
	for i, ds := range datasets {
		if ds.Label == "" && i < len(cfg.DataLabels) {
			ds.Label = cfg.DataLabels[i]
		}
		if ds.Label == "" {
			ds.Label = fmt.Sprintf("Dataset %d", i+1)
		}
	}
	return &Plot{Config: cfg, Datasets: datasets}, nil
}

// DatasetID returns the identifier that keys dataset i's exported data
// files. Single-dataset plots use the plot ID itself.
func (p *Plot) DatasetID(i int) string {
	if len(p.Datasets) == 1 {
		return p.Config.ID
	}
	return fmt.Sprintf("%s_%d", p.Config.ID, i+1)
}
