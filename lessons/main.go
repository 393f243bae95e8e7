// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lessons draws the charts for the data visualization
// lessons.
//
// Usage:
//
//	lessons [flags] <lesson>...
//
// Each lesson builds small tables, applies the relational operators
// from package table (sort, aggregate, filter, join), and writes
// the resulting charts as SVG files into the output directory. With
// -table, lessons print the tables they compute instead of drawing
// them. The lesson "all" runs every lesson.
//
// The sample data is built in; -data replaces it with a YAML file in
// the format described by package dataset.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/vislessons/charts/dataset"
	"github.com/vislessons/charts/table"
)

type lesson struct {
	name string
	desc string
	run  func(e *env) error
}

var lessons []lesson

func registerLesson(name, desc string, run func(e *env) error) {
	lessons = append(lessons, lesson{name, desc, run})
}

// env is the state shared by every lesson in one invocation.
type env struct {
	ctx     context.Context
	lesson  string
	data    *dataset.Set
	outDir  string
	tables  bool
	regions string
	seed    int64
	w       io.Writer
	status  *StatusReporter
}

func main() {
	log.SetPrefix("lessons: ")
	log.SetFlags(0)

	var (
		flagOut     = flag.String("o", "Graphs", "write charts to `dir`")
		flagTable   = flag.Bool("table", false, "print tables instead of drawing charts")
		flagData    = flag.String("data", "", "read datasets from YAML `file` instead of the built-in data")
		flagRegions = flag.String("regions", "", "GeoJSON `file or URL` of regions for the choropleth lesson")
		flagSeed    = flag.Int64("seed", 1, "random `seed` for synthetic data")
	)
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [flags] <lesson>...\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(w, "\nLessons:\n")
		for _, l := range lessons {
			fmt.Fprintf(w, "  %-12s %s\n", l.name, l.desc)
		}
		fmt.Fprintf(w, "  %-12s %s\n", "all", "run every lesson")
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Resolve lesson names before doing any work.
	var todo []lesson
	for _, arg := range flag.Args() {
		if arg == "all" {
			todo = append(todo, lessons...)
			continue
		}
		l, ok := findLesson(arg)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown lesson %q\n", arg)
			flag.Usage()
			os.Exit(2)
		}
		todo = append(todo, l)
	}

	e := &env{
		ctx:     context.Background(),
		data:    dataset.Builtin(),
		outDir:  *flagOut,
		tables:  *flagTable,
		regions: *flagRegions,
		seed:    *flagSeed,
		w:       os.Stdout,
	}
	if *flagData != "" {
		f, err := os.Open(*flagData)
		if err != nil {
			log.Fatal(err)
		}
		e.data, err = dataset.Parse(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", *flagData, err)
		}
	}
	if !e.tables {
		if err := os.MkdirAll(e.outDir, 0777); err != nil {
			log.Fatal(err)
		}
	}

	e.status = NewStatusReporter()
	defer e.status.Stop()
	for i, l := range todo {
		e.lesson = fmt.Sprintf("[%d/%d] %s", i+1, len(todo), l.name)
		e.status.Progress(e.lesson)
		if err := l.run(e); err != nil {
			e.status.Stop()
			log.Fatalf("%s: %v", l.name, err)
		}
	}
}

func findLesson(name string) (lesson, bool) {
	for _, l := range lessons {
		if l.name == name {
			return l, true
		}
	}
	return lesson{}, false
}

func (e *env) table(name string) (*table.Table, error) {
	return e.data.Table(name)
}

// show prints t under a heading when running in table mode.
func (e *env) show(title string, t *table.Table) {
	if !e.tables {
		return
	}
	fmt.Fprintf(e.w, "# %s\n", title)
	table.Fprint(e.w, t)
	fmt.Fprintf(e.w, "\n")
}

// save renders p into name.svg in the output directory. It does
// nothing in table mode.
func (e *env) save(name string, p *gg.Plot, width, height int) error {
	if e.tables {
		return nil
	}
	path := filepath.Join(e.outDir, name+".svg")
	e.status.Progress(e.lesson + ": rendering " + name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.WriteSVG(f, width, height); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.status.Message("wrote " + path)
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
