// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report assembles rendered plots into a self-contained HTML
// report and exports the tables behind them as data files.
package report

import (
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-qcplot/internal/datafile"
	"github.com/aclements/go-qcplot/scatter"
)

// Warning is the logger for reporting conditions that don't prevent
// the production of a report, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[report] ", log.Lshortfile)

// Report is an ordered collection of plots published under unique IDs.
type Report struct {
	// Title heads the report page. Empty means a generic title.
	Title string

	plots []*scatter.Plot
	used  map[string]bool
}

// New returns an empty report.
func New(title string) *Report {
	return &Report{Title: title, used: make(map[string]bool)}
}

// Add registers p with the report and returns the ID it was published
// under. IDs key report sections and data file names, so a plot whose
// ID is already taken is renamed with a numeric suffix; the rename is
// written back to the plot's configuration.
func (r *Report) Add(p *scatter.Plot) string {
	id := p.Config.ID
	if r.used[id] {
		base := id
		for n := 1; r.used[id]; n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		Warning.Printf("duplicate plot id %q renamed to %q", base, id)
		p.Config.ID = id
	}
	r.used[id] = true
	r.plots = append(r.plots, p)
	return id
}

// WriteData writes the tables behind every plot under dir: one file of
// {Name, X, Y} records per dataset, named by dataset ID, plus one
// "<id>_summary" file per plot with the per-dataset axis aggregates.
func (r *Report) WriteData(dir string, format datafile.Format) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, p := range r.plots {
		for i := range p.Datasets {
			if _, err := datafile.WriteFile(dir, p.DatasetID(i), p.Table(i), format); err != nil {
				return err
			}
		}
		if _, err := datafile.WriteFile(dir, p.Config.ID+"_summary", p.Summary(), format); err != nil {
			return err
		}
	}
	return nil
}
