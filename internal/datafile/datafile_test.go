// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datafile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
	"gopkg.in/yaml.v3"
)

func testTable() *table.Table {
	return new(table.Builder).
		Add("Name", []string{"alpha", "beta"}).
		Add("X", []float64{1.5, -2.25}).
		Add("Y", []float64{3.5, 0.25}).
		Done()
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"tsv", "json", "yaml"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", name, err)
		}
		if f.Ext() != name {
			t.Errorf("ParseFormat(%q).Ext() = %q", name, f.Ext())
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(\"csv\") succeeded")
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testTable(), TSV); err != nil {
		t.Fatal(err)
	}
	want := "Name\tX\tY\nalpha\t1.5\t3.5\nbeta\t-2.25\t0.25\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

// wantRows is testTable flattened to rows of dynamically typed cells,
// the shape both JSON and YAML decode back into.
var wantRows = []map[string]interface{}{
	{"Name": "alpha", "X": 1.5, "Y": 3.5},
	{"Name": "beta", "X": -2.25, "Y": 0.25},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testTable(), JSON); err != nil {
		t.Fatal(err)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, wantRows) {
		t.Errorf("got %v, want %v", got, wantRows)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, testTable(), YAML); err != nil {
		t.Fatal(err)
	}
	var got []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, buf.String())
	}
	if !reflect.DeepEqual(got, wantRows) {
		t.Errorf("got %v, want %v", got, wantRows)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(new(bytes.Buffer), testTable(), Format("xml")); err == nil {
		t.Error("Write with an unknown format succeeded")
	}
}

func TestCells(t *testing.T) {
	cols, rows := Cells(testTable())
	if want := []string{"Name", "X", "Y"}; !reflect.DeepEqual(cols, want) {
		t.Errorf("cols %v, want %v", cols, want)
	}
	want := [][]interface{}{
		{"alpha", 1.5, 3.5},
		{"beta", -2.25, 0.25},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows %v, want %v", rows, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(dir, "stats", testTable(), TSV)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "stats.tsv"); path != want {
		t.Errorf("path %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Errorf("file content %q", data)
	}

	if _, err := WriteFile(filepath.Join(dir, "missing"), "stats", testTable(), TSV); err == nil {
		t.Error("WriteFile into a missing directory succeeded")
	}
}
