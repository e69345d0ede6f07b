// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "encoding/json"

// Figure is one renderable plot: a list of traces and the layout they
// share. Its JSON form is what the report page hands to the renderer.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// JSON returns the figure serialized for embedding in a report page.
func (f *Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// Trace is a single rendering primitive. Scatter plots emit one trace
// per point, so X, Y, and Text are singleton slices there, but the
// model allows multi-point traces.
type Trace struct {
	Type string `json:"type"`

	X []float64 `json:"x"`
	Y []float64 `json:"y"`

	// Name is the legend label of the trace.
	Name string `json:"name,omitempty"`
	// Text is the per-point hover and annotation text.
	Text []string `json:"text,omitempty"`

	// Mode selects the plotly drawing mode, e.g. "markers" or
	// "markers+text" for annotated points.
	Mode string `json:"mode,omitempty"`

	ShowLegend bool `json:"showlegend"`

	Marker   Marker    `json:"marker"`
	TextFont *TextFont `json:"textfont,omitempty"`

	// HoverTemplate formats the tooltip. %{text}, %{x}, and %{y}
	// refer to the hovered point.
	HoverTemplate string `json:"hovertemplate,omitempty"`
}

// Marker is the point style of a trace. Size and Opacity are always
// serialized: zero is a meaningful value for both.
type Marker struct {
	Color   string     `json:"color,omitempty"`
	Size    float64    `json:"size"`
	Opacity float64    `json:"opacity"`
	Line    MarkerLine `json:"line"`
}

// MarkerLine is the border drawn around a marker.
type MarkerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color,omitempty"`
}

// TextFont styles a trace's annotation text.
type TextFont struct {
	Size int `json:"size,omitempty"`
}

// Layout is the figure-level geometry and axis configuration.
type Layout struct {
	Title      *Title `json:"title,omitempty"`
	ShowLegend bool   `json:"showlegend"`

	Height int `json:"height,omitempty"`
	Width  int `json:"width,omitempty"`

	// HoverDistance is the snap distance for tooltips in pixels.
	// -1 means the nearest point always shows its tooltip.
	HoverDistance int `json:"hoverdistance,omitempty"`

	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
}

// Title is a plot or axis title. Plotly accepts a bare string too, but
// the object form is the one current renderers document.
type Title struct {
	Text string `json:"text,omitempty"`
}

// Axis configures one layout axis.
type Axis struct {
	Title *Title `json:"title,omitempty"`
	// Type is "log" for a log10 axis. Empty means linear (or
	// whatever the renderer infers).
	Type string `json:"type,omitempty"`

	// TickMode "array" places ticks at TickVals labeled TickText.
	// Categorical axes use this to label integer positions.
	TickMode string    `json:"tickmode,omitempty"`
	TickVals []float64 `json:"tickvals,omitempty"`
	TickText []string  `json:"ticktext,omitempty"`

	// Range fixes the axis bounds. A nil element leaves that bound
	// to the renderer.
	Range []*float64 `json:"range,omitempty"`

	TickSuffix string `json:"ticksuffix,omitempty"`
}

// NewFigure returns a figure with no traces and a layout derived from
// cfg: dimensions, titles, axis scales and bounds, and category ticks.
// The trace list starts empty but non-nil, so even a figure that never
// receives a trace marshals with a "data" array.
func NewFigure(cfg *Config) *Figure {
	fig := &Figure{Data: []Trace{}, Layout: Layout{
		ShowLegend:    !cfg.HideLegend,
		Height:        cfg.Height,
		Width:         cfg.Width,
		HoverDistance: -1,
	}}
	if fig.Layout.Height == 0 {
		fig.Layout.Height = DefaultHeight
	}
	if cfg.Square && fig.Layout.Width == 0 {
		fig.Layout.Width = fig.Layout.Height
	}
	if cfg.Title != "" {
		fig.Layout.Title = &Title{cfg.Title}
	}

	fig.Layout.XAxis = axis(cfg.XLab, cfg.XLog, cfg.XMin, cfg.XMax, cfg.XSuffix)
	fig.Layout.YAxis = axis(cfg.YLab, cfg.YLog, cfg.YMin, cfg.YMax, cfg.YSuffix)

	if len(cfg.Categories) > 0 {
		vals := make([]float64, len(cfg.Categories))
		for i := range vals {
			vals[i] = float64(i)
		}
		fig.Layout.XAxis.TickMode = "array"
		fig.Layout.XAxis.TickVals = vals
		fig.Layout.XAxis.TickText = cfg.Categories
	}
	return fig
}

func axis(label string, log bool, min, max *float64, suffix string) Axis {
	ax := Axis{TickSuffix: suffix}
	if label != "" {
		ax.Title = &Title{label}
	}
	if log {
		ax.Type = "log"
	}
	if min != nil || max != nil {
		ax.Range = []*float64{min, max}
	}
	return ax
}
