// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// Table returns dataset i as a table with a Name, an X, and a Y
// column, one row per point, in point order. This is the record set
// the report exports next to the rendered plot.
func (p *Plot) Table(i int) *table.Table {
	ds := p.Datasets[i]
	names := make([]string, len(ds.Points))
	xs := make([]float64, len(ds.Points))
	ys := make([]float64, len(ds.Points))
	for j := range ds.Points {
		names[j] = ds.Points[j].Name
		xs[j] = ds.Points[j].X
		ys[j] = ds.Points[j].Y
	}
	return new(table.Builder).Add("Name", names).Add("X", xs).Add("Y", ys).Done()
}

// Summary returns one row per dataset with the mean, minimum, and
// maximum of both axes. The report shows it as the plot's overview
// table. Column names follow the aggregate convention of ggstat:
// "mean X", "min X", and so on.
func (p *Plot) Summary() *table.Table {
	gs := make([]table.Grouping, len(p.Datasets))
	for i, ds := range p.Datasets {
		gs[i] = table.NewBuilder(p.Table(i)).AddConst("Dataset", ds.Label).Done()
	}
	g := table.Concat(gs...)
	g = ggstat.Agg("Dataset")(
		ggstat.AggMean("X"), ggstat.AggMin("X"), ggstat.AggMax("X"),
		ggstat.AggMean("Y"), ggstat.AggMin("Y"), ggstat.AggMax("Y"),
	).F(g)
	return g.Table(table.RootGroupID)
}
