// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/aclements/go-qcplot/internal/datafile"
	"github.com/aclements/go-qcplot/plot"
	"github.com/aclements/go-qcplot/scatter"
)

const htmlReport = `
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
  margin: 16px auto;
  max-width: 960px;
}
h1 {
  font-weight: normal;
}
h2 {
  font-weight: normal;
  border-bottom: 1px solid #ddd;
  padding-bottom: 4px;
}
p.generated {
  color: #777;
}
div.switch button {
  margin-right: 4px;
}
div.switch button.active {
  font-weight: bold;
}
table {
  border-spacing: 0;
  border-collapse: collapse;
}
table>tbody>tr>td, table>tbody>tr>th, table>thead>tr>th {
  padding: 6px 10px;
  vertical-align: top;
  line-height: 1.4;
}
table.lined>tbody>tr>td, table.lined>tbody>tr>th {
  border-top: 1px solid #ddd;
}
table.lined>thead>tr>th {
  vertical-align: bottom;
  border-bottom: 2px solid #ddd;
}
th {
  text-align: left;
}
details {
  margin: 8px 0;
}
details>summary {
  cursor: pointer;
  color: #337ab7;
}
    </style>
    <script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
    <script>
var qcplots = {};
function registerPlot(id, figures) {
  qcplots[id] = figures;
  Plotly.newPlot(id + "-figure", figures[0].data, figures[0].layout, {responsive: true});
}
function showDataset(id, i, button) {
  var fig = qcplots[id][i];
  Plotly.react(id + "-figure", fig.data, fig.layout, {responsive: true});
  var buttons = button.parentNode.getElementsByTagName("button");
  for (var j = 0; j < buttons.length; j++) {
    buttons[j].className = j == i ? "active" : "";
  }
}
    </script>
  </head>
  <body>
    <h1>{{.Title}}</h1>
    <p class="generated">Generated {{.Date}}</p>
    {{range .Sections}}{{$sec := .}}
    <div class="plot-section" id="{{.ID}}">
      <h2>{{.Title}}</h2>
      {{if .DataLabels}}
      <div class="switch">
        {{range $i, $label := .DataLabels}}
        <button {{if eq $i 0}}class="active" {{end}}onclick="showDataset({{$sec.ID}}, {{$i}}, this)">{{$label}}</button>
        {{end}}
      </div>
      {{end}}
      <div class="figure" id="{{.ID}}-figure"></div>
      <script>registerPlot({{.ID}}, {{.FiguresJSON}});</script>
      {{if .Summary.Rows}}
      <details>
        <summary>Summary</summary>
        <table class="lined">
          <thead><tr>{{range .Summary.Cols}}<th>{{.}}</th>{{end}}</tr></thead>
          <tbody>
            {{range .Summary.Rows}}
            <tr>{{range .}}<td>{{fmtCell .}}</td>{{end}}</tr>
            {{end}}
          </tbody>
        </table>
      </details>
      {{end}}
      {{range .Legends}}
      {{if .Entries}}
      <details>
        <summary>Legend{{if $sec.DataLabels}} ({{.Label}}){{end}}</summary>
        <ul>{{range .Entries}}<li>{{.}}</li>{{end}}</ul>
      </details>
      {{end}}
      {{end}}
    </div>
    {{end}}
  </body>
</html>
`

var htmlFuncs = template.FuncMap(map[string]interface{}{
	// fmtCell renders a summary cell. The template escapes the
	// result, so this only normalizes the value's text form.
	"fmtCell": func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f, 'g', 6, 64)
		}
		return toString(v)
	},
})

var htmlTemplate = template.Must(template.New("report").Funcs(htmlFuncs).Parse(htmlReport))

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}

type htmlData struct {
	Title    string
	Date     string
	Sections []htmlSection
}

type htmlSection struct {
	ID    string
	Title string
	// DataLabels is empty for single-dataset plots; otherwise one
	// label per dataset, shown as switcher buttons.
	DataLabels  []string
	FiguresJSON template.JS
	Summary     htmlTable
	Legends     []htmlLegend
}

type htmlTable struct {
	Cols []string
	Rows [][]interface{}
}

type htmlLegend struct {
	Label   string
	Entries []string
}

// WriteHTML renders the report page: one section per plot in the order
// they were added, each with its figures embedded as JSON for the
// plotly renderer, the per-dataset summary table, and the legend
// entries.
func (r *Report) WriteHTML(w io.Writer) error {
	data := htmlData{
		Title: r.Title,
		Date:  time.Now().Format("02 Jan 15:04 2006"),
	}
	if data.Title == "" {
		data.Title = "QC report"
	}
	for _, p := range r.plots {
		sec, err := buildSection(p)
		if err != nil {
			return err
		}
		data.Sections = append(data.Sections, sec)
	}
	return htmlTemplate.Execute(w, data)
}

func buildSection(p *scatter.Plot) (htmlSection, error) {
	sec := htmlSection{ID: p.Config.ID, Title: p.Config.Title}
	if sec.Title == "" {
		sec.Title = sec.ID
	}

	figs := make([]*plot.Figure, len(p.Datasets))
	for i := range p.Datasets {
		figs[i] = p.Figure(i)
	}
	b, err := json.Marshal(figs)
	if err != nil {
		return sec, err
	}
	sec.FiguresJSON = template.JS(b)

	if len(p.Datasets) > 1 {
		for _, ds := range p.Datasets {
			sec.DataLabels = append(sec.DataLabels, ds.Label)
		}
	}

	cols, rows := datafile.Cells(p.Summary())
	sec.Summary = htmlTable{Cols: cols, Rows: rows}

	if !p.Config.HideLegend {
		for _, ds := range p.Datasets {
			legend := htmlLegend{Label: ds.Label}
			for _, d := range scatter.BuildLegend(ds.Points) {
				if d.ShowInLegend {
					legend.Entries = append(legend.Entries, d.Label)
				}
			}
			sec.Legends = append(sec.Legends, legend)
		}
	}
	return sec, nil
}
