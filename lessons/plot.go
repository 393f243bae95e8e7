// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/gg"
	"github.com/vislessons/charts/table"
)

// bar describes one bar of a bar chart.
type bar struct {
	pos   float64 // center on the x axis
	width float64
	fill  string
	value float64
	panel string // facet, or "" for none
}

// barTable turns bars into a table that LayerArea draws as
// rectangles: each bar is two points at its left and right edges,
// in its own group so neighboring bars are not joined.
func barTable(valueCol string, bars []bar) *table.Table {
	n := 2 * len(bars)
	pos := make([]float64, 0, n)
	ids := make([]int, 0, n)
	fills := make([]string, 0, n)
	vals := make([]float64, 0, n)
	panels := make([]string, 0, n)
	for i, b := range bars {
		for _, dx := range []float64{-b.width / 2, b.width / 2} {
			pos = append(pos, b.pos+dx)
			ids = append(ids, i)
			fills = append(fills, b.fill)
			vals = append(vals, b.value)
			panels = append(panels, b.panel)
		}
	}
	return new(table.Builder).
		Add("position", pos).
		Add("bar", ids).
		Add("fill", fills).
		Add(valueCol, vals).
		Add("panel", panels).
		MustDone()
}

// barPlot returns a plot with one bar per row of t. Bars are labeled
// by column label, sized by numeric column value, and colored by
// fill(i) for row i (or by label if fill is nil).
func barPlot(t *table.Table, label, value string, fill func(i int) string) (*gg.Plot, error) {
	labels, err := t.Strings(label)
	if err != nil {
		return nil, err
	}
	vals, err := t.Floats(value)
	if err != nil {
		return nil, err
	}
	bars := make([]bar, len(labels))
	for i := range labels {
		f := labels[i]
		if fill != nil {
			f = fill(i)
		}
		bars[i] = bar{pos: float64(i), width: 0.8, fill: f, value: vals[i]}
	}
	p := newBarPlot(barTable(value, bars), value)
	p.Add(gg.AxisLabel("x", label+" ("+joinLabels(labels)+")"))
	return p, nil
}

func newBarPlot(t *table.Table, value string) *gg.Plot {
	p := gg.NewPlot(t.Grouping())
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.GroupBy("bar")
	p.Add(gg.LayerArea{
		X:     "position",
		Upper: value,
		Fill:  "fill",
	})
	p.Add(gg.AxisLabel("y", value))
	return p
}

// joinLabels lists bar labels left to right, since the x axis of a
// bar plot is numeric.
func joinLabels(labels []string) string {
	s := ""
	for i, l := range labels {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d=%s", i, l)
	}
	return s
}
