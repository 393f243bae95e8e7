// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset supplies the sample tables used by the lessons.
//
// Datasets are described in YAML:
//
//	datasets:
//	  cities:
//	    columns:
//	      - name: City
//	        kind: string
//	        values: [Chicago, Houston]
//	      - name: Population
//	        kind: int
//	        values: [2716000, 2328000]
//
// kind is one of "string", "int", or "float". The built-in datasets
// are embedded in the binary; Parse reads a replacement set.
package dataset

import (
	_ "embed"
	"fmt"
	"io"
	"sort"

	"github.com/vislessons/charts/table"
	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var builtin []byte

// A Set is a collection of named tables.
type Set struct {
	tables map[string]*table.Table
}

type fileFormat struct {
	Datasets map[string]struct {
		Columns []columnFormat `yaml:"columns"`
	} `yaml:"datasets"`
}

type columnFormat struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Values yaml.Node `yaml:"values"`
}

// Builtin returns the datasets embedded in this package.
func Builtin() *Set {
	s, err := parse(builtin)
	if err != nil {
		panic("dataset: bad built-in datasets: " + err.Error())
	}
	return s
}

// Parse reads a YAML dataset description from r.
func Parse(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Set, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	s := &Set{tables: make(map[string]*table.Table)}
	for name, ds := range f.Datasets {
		var b table.Builder
		for _, col := range ds.Columns {
			vals, err := decodeValues(&col)
			if err != nil {
				return nil, fmt.Errorf("dataset %s: column %q: %w", name, col.Name, err)
			}
			b.Add(col.Name, vals)
		}
		t, err := b.Done()
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", name, err)
		}
		s.tables[name] = t
	}
	return s, nil
}

func decodeValues(col *columnFormat) (interface{}, error) {
	switch col.Kind {
	case "string":
		var xs []string
		err := col.Values.Decode(&xs)
		return xs, err
	case "int":
		var xs []int64
		err := col.Values.Decode(&xs)
		return xs, err
	case "float":
		var xs []float64
		err := col.Values.Decode(&xs)
		return xs, err
	}
	return nil, fmt.Errorf("unknown kind %q", col.Kind)
}

// Names returns the names of the datasets in s, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the dataset called name.
func (s *Set) Table(name string) (*table.Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("no dataset %q", name)
	}
	return t, nil
}
