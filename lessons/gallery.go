// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/vislessons/charts/table"
)

func init() {
	registerLesson("gallery", "line, scatter, 2-D histogram, stack, hexbin, and triangle color plots", lessonGallery)
}

func lessonGallery(e *env) error {
	for _, step := range []func(*env) error{
		galleryLines,
		galleryScatter,
		galleryHist2D,
		galleryStack,
		galleryHexbin,
		galleryTriColor,
	} {
		if err := step(e); err != nil {
			return err
		}
	}
	return nil
}

// sineWaves returns a dense sine wave and two sparser copies offset
// above and below it, distinguished by the "series" column.
func sineWaves() *table.Table {
	var xs, ys []float64
	var series []string
	add := func(name string, n int, offset float64) {
		for _, x := range vec.Linspace(0, 10, n) {
			xs = append(xs, x)
			ys = append(ys, 4+math.Sin(2*x)+offset)
			series = append(series, name)
		}
	}
	add("Sample Points", 25, 2.5)
	add("Sine Wave", 100, 0)
	add("Another Sample", 25, -2.5)
	return new(table.Builder).Add("x", xs).Add("y", ys).Add("series", series).MustDone()
}

func galleryLines(e *env) error {
	t := sineWaves()
	samples, err := table.Filter(t, "series", table.NotEqual(table.S("Sine Wave")))
	if err != nil {
		return err
	}
	e.show("line plot", t)

	p := gg.NewPlot(t.Grouping())
	p.Add(gg.LayerLines{X: "x", Y: "y", Color: "series"})
	p.SetData(samples.Grouping())
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "series"})
	p.Add(gg.Title("Line Plot of Sine Function"))
	return e.save("lineplot", p, 800, 400)
}

// scatterPoints returns n points scattered normally around (4, 4),
// each with a random size and color value.
func scatterPoints(r *rand.Rand, n int) *table.Table {
	dist := stats.NormalDist{Mu: 4, Sigma: 2}
	xs, ys := make([]float64, n), make([]float64, n)
	sizes, colors := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = dist.Rand(r)
		ys[i] = dist.Rand(r)
	}
	for i := range sizes {
		sizes[i] = 15 + 65*r.Float64()
		colors[i] = 15 + 65*r.Float64()
	}
	return new(table.Builder).
		Add("x", xs).
		Add("y", ys).
		Add("size", sizes).
		Add("color", colors).
		MustDone()
}

func galleryScatter(e *env) error {
	t := scatterPoints(rand.New(rand.NewSource(e.seed)), 24)
	e.show("scatter plot", t)

	p := gg.NewPlot(t.Grouping())
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "color", Size: "size"})
	p.Add(gg.Title("Scatter Plot of Random Data"))
	return e.save("scatterplot", p, 800, 400)
}

// correlated returns n points with x standard normal and y = 1.2x
// plus a smaller normal error.
func correlated(r *rand.Rand, n int) *table.Table {
	unit := stats.NormalDist{Mu: 0, Sigma: 1}
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = unit.Rand(r)
		ys[i] = 1.2*xs[i] + unit.Rand(r)/3
	}
	return new(table.Builder).Add("x", xs).Add("y", ys).MustDone()
}

// binCounts assigns each point of t to a cell with cell(x, y), drops
// points with no cell (cell returns ok == false), counts the points
// per cell, and returns the cells with their centers from
// center(cell). The result has columns "x", "y", and "count".
func binCounts(t *table.Table, cell func(x, y float64) (int, bool), center func(int) (x, y float64)) (*table.Table, error) {
	xs, err := t.Floats("x")
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats("y")
	if err != nil {
		return nil, err
	}
	var cells []int
	for i := range xs {
		if c, ok := cell(xs[i], ys[i]); ok {
			cells = append(cells, c)
		}
	}
	ct, err := new(table.Builder).Add("cell", cells).Done()
	if err != nil {
		return nil, err
	}
	counts, err := table.Aggregate(ct, "cell", "cell", table.Count)
	if err != nil {
		return nil, err
	}

	ids, err := counts.Ints("cell")
	if err != nil {
		return nil, err
	}
	n, err := counts.Column("count")
	if err != nil {
		return nil, err
	}
	cx, cy := make([]float64, len(ids)), make([]float64, len(ids))
	for i, id := range ids {
		cx[i], cy[i] = center(int(id))
	}
	return new(table.Builder).Add("x", cx).Add("y", cy).Add("count", n).Done()
}

// Both density plots cover [-lim, lim] on each axis.
const lim = 3

// squareBins returns cell functions for an n×n grid over
// [-lim, lim]².
func squareBins(n int) (cell func(x, y float64) (int, bool), center func(int) (x, y float64)) {
	w := 2.0 * lim / float64(n)
	cell = func(x, y float64) (int, bool) {
		i, j := int(math.Floor((x+lim)/w)), int(math.Floor((y+lim)/w))
		if i < 0 || i >= n || j < 0 || j >= n {
			return 0, false
		}
		return j*n + i, true
	}
	center = func(c int) (x, y float64) {
		i, j := c%n, c/n
		return -lim + (float64(i)+0.5)*w, -lim + (float64(j)+0.5)*w
	}
	return
}

func galleryHist2D(e *env) error {
	pts := correlated(rand.New(rand.NewSource(e.seed)), 5000)
	cell, center := squareBins(30)
	bins, err := binCounts(pts, cell, center)
	if err != nil {
		return err
	}
	e.show("2-D histogram", bins)

	p := gg.NewPlot(bins.Grouping())
	p.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "count"})
	p.Add(gg.Title("2D Histogram of Correlated Data"))
	return e.save("hist2d", p, 800, 400)
}

// hexBins returns cell functions for pointy-top hexagons, gridsize
// of which span [-lim, lim] horizontally. Cells are numbered from
// axial coordinates (q, r).
func hexBins(gridsize int) (cell func(x, y float64) (int, bool), center func(int) (x, y float64)) {
	size := 2 * lim / float64(gridsize) / math.Sqrt(3)
	const stride = 1 << 12
	const bias = stride / 2
	cell = func(x, y float64) (int, bool) {
		if x < -lim || x > lim || y < -lim || y > lim {
			return 0, false
		}
		q := (math.Sqrt(3)/3*x - y/3) / size
		r := (2.0 / 3 * y) / size
		qi, ri := hexRound(q, r)
		return (qi+bias)*stride + (ri + bias), true
	}
	center = func(c int) (x, y float64) {
		q, r := float64(c/stride-bias), float64(c%stride-bias)
		return size * math.Sqrt(3) * (q + r/2), size * 1.5 * r
	}
	return
}

// hexRound rounds fractional axial coordinates to the nearest hexagon.
func hexRound(q, r float64) (int, int) {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return int(rq), int(rr)
}

func galleryHexbin(e *env) error {
	pts := correlated(rand.New(rand.NewSource(e.seed)), 5000)
	cell, center := hexBins(30)
	bins, err := binCounts(pts, cell, center)
	if err != nil {
		return err
	}
	e.show("hexbin", bins)

	p := gg.NewPlot(bins.Grouping())
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "count"})
	p.Add(gg.Title("Hexbin Plot of Correlated Data"))
	return e.save("hexbin", p, 800, 400)
}

// stackLayers returns the stacked extents of three groups over x.
func stackLayers() *table.Table {
	xs := []float64{0, 2, 4, 6, 8}
	groups := []struct {
		name string
		ys   []float64
	}{
		{"Group A", []float64{1, 1.25, 2, 2.75, 3}},
		{"Group B", []float64{1, 1, 1, 1, 1}},
		{"Group C", []float64{2, 1, 2, 1, 2}},
	}
	var x, lower, upper []float64
	var group []string
	base := make([]float64, len(xs))
	for _, g := range groups {
		for i := range xs {
			x = append(x, xs[i])
			group = append(group, g.name)
			lower = append(lower, base[i])
			base[i] += g.ys[i]
			upper = append(upper, base[i])
		}
	}
	return new(table.Builder).
		Add("x", x).
		Add("group", group).
		Add("lower", lower).
		Add("upper", upper).
		MustDone()
}

func galleryStack(e *env) error {
	t := stackLayers()
	e.show("stack plot", t)

	p := gg.NewPlot(t.Grouping())
	p.Add(gg.LayerArea{X: "x", Upper: "upper", Lower: "lower", Fill: "group"})
	p.Add(gg.Title("Stack Plot of Group Data"))
	return e.save("stackplot", p, 800, 400)
}

// surface samples (1 - x/2 + x⁵ + y³)·exp(-x² - y²) at n random
// points in [-lim, lim]².
func surface(r *rand.Rand, n int) *table.Table {
	xs, ys, zs := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range xs {
		xs[i] = -lim + 2*lim*r.Float64()
	}
	for i := range ys {
		ys[i] = -lim + 2*lim*r.Float64()
	}
	for i := range zs {
		x, y := xs[i], ys[i]
		zs[i] = (1 - x/2 + math.Pow(x, 5) + math.Pow(y, 3)) * math.Exp(-x*x-y*y)
	}
	return new(table.Builder).Add("x", xs).Add("y", ys).Add("z", zs).MustDone()
}

func galleryTriColor(e *env) error {
	t := surface(rand.New(rand.NewSource(e.seed)), 256)
	e.show("triangular color plot", t)

	p := gg.NewPlot(t.Grouping())
	p.Add(gg.LayerPoints{X: "x", Y: "y", Color: "z"})
	p.Add(gg.AxisLabel("x", "X-axis"), gg.AxisLabel("y", "Y-axis"))
	p.Add(gg.Title("Triangular Color Plot of Function Values"))
	return e.save("triangular_color_plot", p, 800, 400)
}
