// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides the shared plot configuration and the
// JSON-serializable figure model consumed by the report renderer.
//
// A Figure mirrors the structure expected by plotly-style JavaScript
// renderers: a flat list of traces plus a layout. Plot packages such
// as scatter build Figures; this package only defines the model and
// the configuration that shapes it.
package plot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHeight is the figure height in pixels when the configuration
// doesn't set one. Renderers may add to it, for example to make room
// for legend entries.
const DefaultHeight = 500

// Config describes a plot. The zero value is usable except for ID,
// which is required and keys the plot's section and data files in the
// report.
type Config struct {
	// ID uniquely identifies the plot within a report.
	ID string `yaml:"id"`
	// Title is the plot title shown above the figure.
	Title string `yaml:"title"`

	// XLab and YLab are the axis titles.
	XLab string `yaml:"xlab"`
	YLab string `yaml:"ylab"`

	// XLog and YLog switch an axis to a log10 scale.
	XLog bool `yaml:"xlog"`
	YLog bool `yaml:"ylog"`

	// Axis bounds. Nil leaves the bound to the renderer's autorange.
	XMin *float64 `yaml:"xmin"`
	XMax *float64 `yaml:"xmax"`
	YMin *float64 `yaml:"ymin"`
	YMax *float64 `yaml:"ymax"`

	// XSuffix and YSuffix are appended to every tick label, e.g. "%".
	XSuffix string `yaml:"xsuffix"`
	YSuffix string `yaml:"ysuffix"`

	// Width and Height are the figure dimensions in pixels. Zero
	// means the renderer default (responsive width, DefaultHeight).
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Square forces width = height.
	Square bool `yaml:"square"`

	// Categories labels a discrete x axis. Point x values index into
	// it: 0 is the first category.
	Categories []string `yaml:"categories"`

	// TTLabel overrides the default coordinate lines of the hover
	// tooltip. It is a plotly template fragment, so %{x} and %{y}
	// refer to the hovered point.
	TTLabel string `yaml:"tt_label"`

	// HideLegend drops the legend entirely.
	HideLegend bool `yaml:"hide_legend"`

	// Default marker style for every point of every dataset. Nil
	// means the plot type's own default. Points may override these
	// individually.
	MarkerSize      *float64 `yaml:"marker_size"`
	MarkerLineWidth *float64 `yaml:"marker_line_width"`
	Opacity         *float64 `yaml:"opacity"`

	// DataLabels names the plot's datasets, in order. Datasets
	// beyond the list are named "Dataset N".
	DataLabels []string `yaml:"data_labels"`
}

// LoadConfig reads a YAML plot configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plot config: %w", err)
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing plot config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plot config %s: %v", path, err)
	}
	return cfg, nil
}

// Validate checks that cfg can key a plot.
func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("plot config is missing an id")
	}
	return nil
}
