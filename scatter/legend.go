// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"sort"
	"strings"
)

// maxLegendWidth is the longest legend label emitted before cropping.
const maxLegendWidth = 60

// legendKey identifies points that look identical on the plot: same
// color, marker size, marker line width, and group. An unset size or
// width is distinct from an explicit zero, so presence is part of the
// key.
type legendKey struct {
	color        string
	size         float64
	sizeSet      bool
	lineWidth    float64
	lineWidthSet bool
	group        string
}

func (p *Point) legendKey() legendKey {
	k := legendKey{color: p.Color, group: p.Group}
	if p.MarkerSize != nil {
		k.size, k.sizeSet = *p.MarkerSize, true
	}
	if p.MarkerLineWidth != nil {
		k.lineWidth, k.lineWidthSet = *p.MarkerLineWidth, true
	}
	return k
}

// LegendDecision is the legend outcome for one point. Decisions align
// by index with the points they were computed from.
type LegendDecision struct {
	// ShowInLegend marks the point as its style's representative:
	// the one point whose trace appears in the legend.
	ShowInLegend bool
	// Label is the trace name. For a representative it lists every
	// distinct point name sharing the style; for everything else it
	// is the point's own name.
	Label string
}

// BuildLegend deduplicates the legend: points sharing a style collapse
// into a single entry, carried by the first of them in point order.
//
// An entry's label is the sorted, comma-separated list of the distinct
// names sharing the style, prefixed with the style's group when there
// is one, and cropped to maxLegendWidth characters. Hidden points
// never carry an entry but their names still count toward the label of
// the style they share. The result depends only on the input, so
// re-running it changes nothing.
func BuildLegend(points []Point) []LegendDecision {
	return buildLegend(points, true)
}

// buildLegend is BuildLegend with the plot-level legend toggle: with
// showLegend false no point is a representative and every label is the
// point's own name.
func buildLegend(points []Point, showLegend bool) []LegendDecision {
	names := make(map[legendKey]map[string]bool)
	for i := range points {
		k := points[i].legendKey()
		if names[k] == nil {
			names[k] = make(map[string]bool)
		}
		names[k][points[i].Name] = true
	}

	decisions := make([]LegendDecision, len(points))
	seen := make(map[legendKey]bool)
	for i := range points {
		p := &points[i]
		decisions[i].Label = p.Name
		if !showLegend || p.HideInLegend {
			continue
		}
		k := p.legendKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		decisions[i].ShowInLegend = true
		decisions[i].Label = legendLabel(k.group, names[k])
	}
	return decisions
}

func legendLabel(group string, names map[string]bool) string {
	list := make([]string, 0, len(names))
	for name := range names {
		list = append(list, name)
	}
	sort.Strings(list)
	label := strings.Join(list, ", ")
	if group != "" {
		label = group + ": " + label
	}
	if r := []rune(label); len(r) > maxLegendWidth {
		label = string(r[:maxLegendWidth]) + "..."
	}
	return label
}
