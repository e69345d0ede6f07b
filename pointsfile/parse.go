// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointsfile reads textual scatter dataset files.
//
// A points file holds one dataset: configuration lines followed by one
// line per point. Blank lines and lines starting with "#" are ignored.
// Configuration lines have the form
//
//	key: value
//
// where key is "label" (the dataset label) or a point option (see
// below) that becomes the default for every point in the file.
// Point lines have the form
//
//	name x y [option=value ...]
//
// with x and y as floats. Options are color, group, marker_size,
// marker_line_width, opacity, annotate, hide_in_legend, and
// annotation. Names and option values cannot contain whitespace;
// points needing that must be built through the scatter API instead.
package pointsfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/aclements/go-qcplot/scatter"
)

// File is the parsed form of a points file.
type File struct {
	// Label names the dataset built from this file. Empty if the
	// file doesn't say.
	Label string

	// Points are the file's points in file order, with file-level
	// defaults already applied.
	Points []scatter.Point
}

var configRe = regexp.MustCompile(`^([a-z][a-z_]*):(?:[ \t]+(.*))?$`)

// Parse parses a points file from r. Errors carry the 1-based line
// number they were found on.
func Parse(r io.Reader) (*File, error) {
	file := new(File)
	var defaults scatter.Point

	lineno := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Configuration lines.
		if m := configRe.FindStringSubmatch(line); m != nil {
			if err := setConfig(file, &defaults, m[1], strings.TrimSpace(m[2])); err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno, err)
			}
			continue
		}

		// Point lines.
		pt, err := parsePoint(line, defaults)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		file.Points = append(file.Points, pt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

// ParseFile parses the points file at path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

func setConfig(file *File, defaults *scatter.Point, key, val string) error {
	if key == "label" {
		file.Label = val
		return nil
	}
	if key == "annotation" {
		return fmt.Errorf("annotation cannot be a file-level default")
	}
	return setOption(defaults, key, val)
}

func parsePoint(line string, defaults scatter.Point) (scatter.Point, error) {
	pt := defaults
	f := strings.Fields(line)
	if len(f) < 3 {
		return pt, fmt.Errorf("point line needs at least name, x, and y: %q", line)
	}
	pt.Name = f[0]
	var err error
	if pt.X, err = strconv.ParseFloat(f[1], 64); err != nil {
		return pt, fmt.Errorf("bad x %q", f[1])
	}
	if pt.Y, err = strconv.ParseFloat(f[2], 64); err != nil {
		return pt, fmt.Errorf("bad y %q", f[2])
	}
	for _, opt := range f[3:] {
		i := strings.Index(opt, "=")
		if i < 0 {
			return pt, fmt.Errorf("bad option %q (want option=value)", opt)
		}
		if err := setOption(&pt, opt[:i], opt[i+1:]); err != nil {
			return pt, err
		}
	}
	return pt, nil
}

func setOption(p *scatter.Point, key, val string) error {
	switch key {
	case "color":
		p.Color = val
	case "group":
		p.Group = val
	case "annotation":
		p.Annotation = val
	case "marker_size":
		return parseFloatOption(&p.MarkerSize, key, val)
	case "marker_line_width":
		return parseFloatOption(&p.MarkerLineWidth, key, val)
	case "opacity":
		return parseFloatOption(&p.Opacity, key, val)
	case "annotate":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("bad annotate value %q", val)
		}
		p.Annotate = &b
	case "hide_in_legend":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("bad hide_in_legend value %q", val)
		}
		p.HideInLegend = b
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

func parseFloatOption(dst **float64, key, val string) error {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("bad %s value %q", key, val)
	}
	*dst = &v
	return nil
}
