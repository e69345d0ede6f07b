// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qcscatter renders a scatter plot report from points files.
//
// Each input file holds one dataset in the points file format (see
// package pointsfile): optional "key: value" configuration lines
// followed by one "name x y [option=value ...]" line per point. The
// datasets become one scatter plot rendered into an HTML report,
// together with the data files behind it and, optionally, flat SVG
// previews.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-qcplot/internal/datafile"
	"github.com/aclements/go-qcplot/plot"
	"github.com/aclements/go-qcplot/pointsfile"
	"github.com/aclements/go-qcplot/report"
	"github.com/aclements/go-qcplot/scatter"
)

func main() {
	log.SetPrefix("qcscatter: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagConfig     = flag.String("c", "", "read plot configuration from YAML `file`")
		flagOut        = flag.String("o", "qc_report", "write the report to `dir`")
		flagFormat     = flag.String("format", "tsv", "write data files in `format` (tsv, json, or yaml)")
		flagSVG        = flag.Bool("svg", false, "also write a flat SVG preview per dataset")
		flagTitle      = flag.String("title", "", "report and plot `title`")
		flagID         = flag.String("id", "", "plot `id` (default: the config id or the first input name)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	format, err := datafile.ParseFormat(*flagFormat)
	if err != nil {
		log.Fatal(err)
	}

	cfg := new(plot.Config)
	if *flagConfig != "" {
		cfg, err = plot.LoadConfig(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *flagTitle != "" {
		cfg.Title = *flagTitle
	}

	// Parse the input datasets.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var datasets []*scatter.Dataset
	for i, path := range paths {
		var file *pointsfile.File
		if path == "-" {
			file, err = pointsfile.Parse(os.Stdin)
			if err != nil {
				log.Fatalf("stdin: %v", err)
			}
		} else {
			file, err = pointsfile.ParseFile(path)
			if err != nil {
				log.Fatal(err)
			}
		}
		label := file.Label
		if label == "" && path != "-" && i >= len(cfg.DataLabels) {
			label = baseName(path)
		}
		ds, err := scatter.NewDataset(label, file.Points)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		datasets = append(datasets, ds)
	}

	cfg.ID = plotID(cfg.ID, *flagID, paths[0])

	sp, err := scatter.New(cfg, datasets...)
	if err != nil {
		log.Fatal(err)
	}

	rep := report.New(cfg.Title)
	rep.Add(sp)

	// Write the report and its data files.
	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}
	htmlPath := filepath.Join(*flagOut, "report.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := rep.WriteHTML(f); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	if err := rep.WriteData(filepath.Join(*flagOut, "data"), format); err != nil {
		log.Fatal(err)
	}

	if *flagSVG {
		width, height := cfg.Width, cfg.Height
		if width == 0 {
			width = 700
		}
		if height == 0 {
			height = plot.DefaultHeight
		}
		for i := range sp.Datasets {
			path := filepath.Join(*flagOut, sp.DatasetID(i)+".svg")
			f, err := os.Create(path)
			if err != nil {
				log.Fatal(err)
			}
			err = sp.WriteSVG(f, i, width, height)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				log.Fatal(err)
			}
		}
	}
}

// plotID resolves the plot identifier. An explicit -id flag overrides
// the configuration, like -title does; with neither, the identifier
// derives from the first input's name, or is "scatter" when reading
// stdin.
func plotID(cfgID, flagID, firstPath string) string {
	if flagID != "" {
		return flagID
	}
	if cfgID != "" {
		return cfgID
	}
	if firstPath != "-" {
		return sanitizeID(baseName(firstPath))
	}
	return "scatter"
}

// baseName returns path's file name without its extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

var idBadRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// sanitizeID turns s into something usable as an HTML id and a file
// name stem.
func sanitizeID(s string) string {
	s = idBadRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "scatter"
	}
	return s
}
