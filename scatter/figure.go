// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import "github.com/aclements/go-qcplot/plot"

// Marker style defaults. Points and the plot configuration may
// override each of them.
const (
	defaultMarkerColor = "rgba(124, 181, 236, .5)"
	defaultMarkerSize  = 10
	defaultLineWidth   = 1
	defaultOpacity     = 1

	// fadedLineColor replaces marker borders when any point is
	// annotated, so the borders don't clutter the labels.
	fadedLineColor = "rgba(0, 0, 0, .2)"

	annotationFontSize = 8

	// legendEntryHeight is the extra figure height per legend entry.
	legendEntryHeight = 5
)

// defaultTTLabel is the coordinate part of the hover tooltip.
const defaultTTLabel = "<br><b>X</b>: %{x}<br><b>Y</b>: %{y}"

// Figure renders dataset i (in the order the datasets were given to
// New) as a plotly-shaped figure.
//
// The figure carries one trace per point, in point order. Points are
// first run through SelectOutliers; the dataset's own points are left
// untouched, so rendering is repeatable. Traces of annotated points
// switch to "markers+text" mode, and a single annotation anywhere in
// the dataset fades every marker border. The layout grows by
// legendEntryHeight for each legend entry shown.
func (p *Plot) Figure(i int) *plot.Figure {
	ds := p.Datasets[i]
	fig := plot.NewFigure(p.Config)

	points := SelectOutliers(ds.Points)
	nAnnotated := 0
	for j := range points {
		if points[j].Annotation != "" {
			nAnnotated++
		}
	}

	legend := buildLegend(points, fig.Layout.ShowLegend)
	hover := p.hoverTemplate()
	base := p.baseMarker()

	shown := 0
	for j := range points {
		pt := &points[j]

		marker := base
		if pt.Color != "" {
			marker.Color = pt.Color
		}
		if pt.MarkerSize != nil {
			marker.Size = *pt.MarkerSize
		}
		if pt.MarkerLineWidth != nil {
			marker.Line.Width = *pt.MarkerLineWidth
		}
		if pt.Opacity != nil {
			marker.Opacity = *pt.Opacity
		}
		if nAnnotated > 0 {
			marker.Line.Color = fadedLineColor
		}

		text := pt.Annotation
		mode := "markers"
		if text == "" {
			text = pt.Name
		} else {
			mode = "markers+text"
		}

		if legend[j].ShowInLegend {
			shown++
		}
		fig.Data = append(fig.Data, plot.Trace{
			Type:          "scatter",
			X:             []float64{pt.X},
			Y:             []float64{pt.Y},
			Name:          legend[j].Label,
			Text:          []string{text},
			Mode:          mode,
			ShowLegend:    legend[j].ShowInLegend,
			Marker:        marker,
			TextFont:      &plot.TextFont{Size: annotationFontSize},
			HoverTemplate: hover,
		})
	}

	fig.Layout.Height += legendEntryHeight * shown
	return fig
}

// baseMarker is the marker every trace starts from: the package
// defaults overridden by the plot-wide configuration.
func (p *Plot) baseMarker() plot.Marker {
	m := plot.Marker{
		Color:   defaultMarkerColor,
		Size:    defaultMarkerSize,
		Opacity: defaultOpacity,
		Line:    plot.MarkerLine{Width: defaultLineWidth},
	}
	if p.Config.MarkerSize != nil {
		m.Size = *p.Config.MarkerSize
	}
	if p.Config.MarkerLineWidth != nil {
		m.Line.Width = *p.Config.MarkerLineWidth
	}
	if p.Config.Opacity != nil {
		m.Opacity = *p.Config.Opacity
	}
	return m
}

func (p *Plot) hoverTemplate() string {
	tt := p.Config.TTLabel
	if tt == "" {
		tt = defaultTTLabel
	}
	return "<b>%{text}</b>" + tt + "<extra></extra>"
}
