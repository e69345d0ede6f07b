// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datafile writes plot tables to files next to the rendered
// report, so the numbers behind each plot stay available to other
// tools.
//
// Tables serialize to TSV (the default, one header line and one line
// per row, preserving column order), or to JSON and YAML as a list of
// row objects keyed by column name.
package datafile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/aclements/go-gg/table"
	"gopkg.in/yaml.v3"
)

// Format is a data file flavor.
type Format string

const (
	TSV  Format = "tsv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat parses a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case TSV, JSON, YAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown data file format %q (want tsv, json, or yaml)", s)
}

// Ext returns f's file extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Write serializes t to w in format f.
func Write(w io.Writer, t *table.Table, f Format) error {
	switch f {
	case TSV:
		return writeTSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	}
	return fmt.Errorf("unknown data file format %q", f)
}

// WriteFile writes t to dir/name.ext and returns the path it wrote.
func WriteFile(dir, name string, t *table.Table, f Format) (string, error) {
	path := filepath.Join(dir, name+"."+f.Ext())
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	err = Write(file, t, f)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Cells flattens t into its column names and one row of cell values
// per table row, preserving column order.
func Cells(t *table.Table) (cols []string, rows [][]interface{}) {
	cols = t.Columns()
	vals := columnValues(t)
	rows = make([][]interface{}, t.Len())
	for i := range rows {
		row := make([]interface{}, len(cols))
		for j := range cols {
			row[j] = vals[j].Index(i).Interface()
		}
		rows[i] = row
	}
	return cols, rows
}

func writeTSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cols, rows := Cells(t)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = fmt.Sprint(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, t *table.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rowMaps(t))
}

func writeYAML(w io.Writer, t *table.Table) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(rowMaps(t)); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func columnValues(t *table.Table) []reflect.Value {
	vals := make([]reflect.Value, len(t.Columns()))
	for j, name := range t.Columns() {
		vals[j] = reflect.ValueOf(t.Column(name))
	}
	return vals
}

// rowMaps flattens t into one map per row. The maps keep every cell's
// dynamic type, so numbers stay numbers in JSON and YAML output.
func rowMaps(t *table.Table) []map[string]interface{} {
	cols, rows := Cells(t)
	maps := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		m := make(map[string]interface{}, len(cols))
		for j, name := range cols {
			m[name] = row[j]
		}
		maps[i] = m
	}
	return maps
}
