// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// WriteSVG renders dataset i as a flat SVG image of the given pixel
// size.
//
// The flat rendering is a static preview of the figure: one mark per
// point, palette colors by group when any point has one, and text tags
// on annotated points. It has no legend; the report's legend table
// carries that information. A log axis plots log10-transformed values,
// dropping points that are not positive on that axis.
func (p *Plot) WriteSVG(w io.Writer, i, width, height int) error {
	ds := p.Datasets[i]
	points := SelectOutliers(ds.Points)

	var (
		xs, ys        []float64
		groups, annos []string
		grouped       bool
		annotated     bool
		dropped       int
	)
	for j := range points {
		pt := &points[j]
		x, y := pt.X, pt.Y
		if p.Config.XLog {
			if x <= 0 {
				dropped++
				continue
			}
			x = math.Log10(x)
		}
		if p.Config.YLog {
			if y <= 0 {
				dropped++
				continue
			}
			y = math.Log10(y)
		}
		xs = append(xs, x)
		ys = append(ys, y)
		groups = append(groups, pt.Group)
		annos = append(annos, pt.Annotation)
		grouped = grouped || pt.Group != ""
		annotated = annotated || pt.Annotation != ""
	}
	if dropped > 0 {
		Warning.Printf("%s: dropped %d non-positive points from the log-scale rendering", p.DatasetID(i), dropped)
	}
	if len(xs) == 0 {
		return fmt.Errorf("dataset %s: no drawable points", p.DatasetID(i))
	}

	tab := new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("group", groups).
		Add("annotation", annos).
		Done()

	plt := gg.NewPlot(tab)
	if p.Config.Title != "" {
		plt.Add(gg.Title(p.Config.Title))
	}
	plt.Add(gg.AxisLabel("x", p.svgAxisLabel("X", p.Config.XLab, p.Config.XLog)))
	plt.Add(gg.AxisLabel("y", p.svgAxisLabel("Y", p.Config.YLab, p.Config.YLog)))
	plt.SetScale("x", p.svgScale(p.Config.XMin, p.Config.XMax, p.Config.XLog, p.Config.Categories))
	plt.SetScale("y", p.svgScale(p.Config.YMin, p.Config.YMax, p.Config.YLog, nil))

	layer := gg.LayerPoints{X: "x", Y: "y"}
	if grouped {
		layer.Color = "group"
	}
	plt.Add(layer)

	if annotated {
		tagged := table.Filter(tab, func(annotation string) bool { return annotation != "" }, "annotation")
		plt.Save()
		plt.SetData(tagged)
		plt.Add(gg.LayerTags{X: "x", Y: "y", Label: "annotation"})
		plt.Restore()
	}

	return plt.WriteSVG(w, width, height)
}

func (p *Plot) svgAxisLabel(def, lab string, log bool) string {
	if lab == "" {
		lab = def
	}
	if log {
		lab = "log10 " + lab
	}
	return lab
}

// svgScale builds the axis scale: fixed bounds from the configuration
// and, for a categorical x axis, tick labels looked up from the
// category list.
func (p *Plot) svgScale(min, max *float64, log bool, categories []string) gg.Scaler {
	s := gg.NewLinearScaler()
	if min != nil && (!log || *min > 0) {
		v := *min
		if log {
			v = math.Log10(v)
		}
		s.SetMin(v)
	}
	if max != nil && (!log || *max > 0) {
		v := *max
		if log {
			v = math.Log10(v)
		}
		s.SetMax(v)
	}
	if len(categories) > 0 && !log {
		s.SetFormatter(func(v float64) string {
			idx := int(math.Round(v))
			if idx < 0 || idx >= len(categories) || math.Abs(v-float64(idx)) > 1e-6 {
				return ""
			}
			return categories[idx]
		})
	}
	return s
}
