// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/vislessons/charts/dataset"
	"github.com/vislessons/charts/table"
)

func init() {
	registerLesson("compare", "grouped bars of quarterly sales per product", lessonCompare)
	registerLesson("sorting", "city populations before and after sorting", lessonSorting)
	registerLesson("aggregation", "city populations summed by state", lessonAggregation)
	registerLesson("filtering", "cities with more than 3 million people", lessonFiltering)
	registerLesson("merge", "city population joined with city area", lessonMerge)
	registerLesson("choropleth", "state population joined with region boundaries", lessonChoropleth)
}

// filterThreshold is the population above which the filtering
// lesson keeps a city.
const filterThreshold = 3000000

func lessonCompare(e *env) error {
	sales, err := e.table("quarterly_sales")
	if err != nil {
		return err
	}
	e.show("quarterly sales", sales)

	quarters, err := sales.Strings("Quarter")
	if err != nil {
		return err
	}
	products, err := sales.Strings("Product")
	if err != nil {
		return err
	}
	vals, err := sales.Floats("Sales")
	if err != nil {
		return err
	}

	plot := newBarPlot(barTable("Sales [units]", compareBars(quarters, products, vals)), "Sales [units]")
	plot.Add(gg.FacetX{Col: "panel"})
	plot.Add(gg.AxisLabel("x", "Quarters"), gg.Title("Sales by quarter and product"))
	return e.save("graph_comparison", plot, 1200, 450)
}

// compareBars lays out grouped sales bars twice: a poorly designed
// panel where every product has the same fill, and a well designed
// panel colored by product. Within a quarter, each product's bar sits
// beside the others.
func compareBars(quarters, products []string, vals []float64) []bar {
	const width = 0.25
	qidx, pidx := indexer(), indexer()
	for i := range quarters {
		qidx(quarters[i])
		pidx(products[i])
	}
	np := float64(pidx(""))
	var bars []bar
	for _, panel := range []string{"poorly designed", "well designed"} {
		for i := range quarters {
			q, p := float64(qidx(quarters[i])), float64(pidx(products[i]))
			fill := products[i]
			if panel == "poorly designed" {
				fill = "sales"
			}
			bars = append(bars, bar{
				pos:   q + (p-(np-1)/2)*width,
				width: width,
				fill:  fill,
				value: vals[i],
				panel: panel,
			})
		}
	}
	return bars
}

// indexer returns a function that numbers distinct strings in the
// order it first sees them. Calling it with "" returns the count
// seen so far without recording anything.
func indexer() func(string) int {
	idx := make(map[string]int)
	return func(s string) int {
		if s == "" {
			return len(idx)
		}
		i, ok := idx[s]
		if !ok {
			i = len(idx)
			idx[s] = i
		}
		return i
	}
}

func lessonSorting(e *env) error {
	cities, err := e.table("city_population_unsorted")
	if err != nil {
		return err
	}
	sorted, err := table.Sort(cities, "Population", true)
	if err != nil {
		return err
	}
	e.show("population of cities (before sorting)", cities)
	e.show("population of cities (after sorting)", sorted)

	for _, panel := range []struct {
		name, title string
		t           *table.Table
	}{
		{"sorting_before", "Population of Cities (Before Sorting)", cities},
		{"sorting_after", "Population of Cities (After Sorting)", sorted},
	} {
		p, err := barPlot(panel.t, "City", "Population", nil)
		if err != nil {
			return err
		}
		p.Add(gg.Title(panel.title))
		if err := e.save(panel.name, p, 600, 400); err != nil {
			return err
		}
	}
	return nil
}

func lessonAggregation(e *env) error {
	cities, err := e.table("state_cities")
	if err != nil {
		return err
	}
	states, err := table.Aggregate(cities, "State", "Population", table.Sum)
	if err != nil {
		return err
	}
	e.show("population of cities (non-aggregated)", cities)
	e.show("total population by state (aggregated)", states)

	p, err := barPlot(cities, "City", "Population", nil)
	if err != nil {
		return err
	}
	p.Add(gg.Title("Population of Cities (Non-Aggregated)"))
	if err := e.save("aggregation_cities", p, 600, 400); err != nil {
		return err
	}

	p, err = barPlot(states, "State", "Population", nil)
	if err != nil {
		return err
	}
	p.Add(gg.Title("Total Population by State (Aggregated)"))
	return e.save("aggregation_states", p, 600, 400)
}

func lessonFiltering(e *env) error {
	cities, err := e.table("city_population")
	if err != nil {
		return err
	}
	big, err := table.Filter(cities, "Population", table.GreaterThan(table.I(filterThreshold)))
	if err != nil {
		return err
	}
	e.show("population of cities (before filtering)", cities)
	e.show(fmt.Sprintf("cities with population greater than %d (after filtering)", filterThreshold), big)

	// Highlight the kept cities against the full set.
	kept, err := big.Column("City")
	if err != nil {
		return err
	}
	names, err := cities.Column("City")
	if err != nil {
		return err
	}
	isKept := table.In(kept...)
	highlight := func(i int) string {
		if isKept(names[i]) {
			return "kept"
		}
		return "dropped"
	}

	p, err := barPlot(cities, "City", "Population", nil)
	if err != nil {
		return err
	}
	p.Add(gg.Title("Population of Cities (Before Filtering)"))
	if err := e.save("filtering_before", p, 600, 400); err != nil {
		return err
	}
	p, err = barPlot(cities, "City", "Population", highlight)
	if err != nil {
		return err
	}
	p.Add(gg.Title("Cities with Population Greater than 3 Million (After Filtering)"))
	return e.save("filtering_after", p, 600, 400)
}

func lessonMerge(e *env) error {
	pop, err := e.table("city_population")
	if err != nil {
		return err
	}
	area, err := e.table("city_areas")
	if err != nil {
		return err
	}
	merged, err := table.Join(pop, area, "City")
	if err != nil {
		return err
	}
	e.show("merged population and area", merged)

	// Population and area have different units, so draw them in
	// side-by-side panels with independent y scales.
	cities, err := merged.Strings("City")
	if err != nil {
		return err
	}
	var bars []bar
	for _, metric := range []string{"Population", "Area (sq mi)"} {
		vals, err := merged.Floats(metric)
		if err != nil {
			return err
		}
		for i, v := range vals {
			bars = append(bars, bar{pos: float64(i), width: 0.7, fill: cities[i], value: v, panel: metric})
		}
	}
	p := newBarPlot(barTable("value", bars), "value")
	p.Add(gg.FacetX{Col: "panel", SplitYScales: true})
	p.Add(gg.AxisLabel("x", "City ("+joinLabels(cities)+")"), gg.Title("Population and Area of Cities"))
	return e.save("merge", p, 900, 400)
}

func lessonChoropleth(e *env) error {
	pop, err := e.table("state_population")
	if err != nil {
		return err
	}

	var regions *table.Table
	switch {
	case e.regions == "":
		// Without boundary data, every state is its own region.
		names, err := pop.Column("name")
		if err != nil {
			return err
		}
		regions, err = new(table.Builder).Add("name", names).Done()
		if err != nil {
			return err
		}
	case isURL(e.regions):
		regions, err = dataset.FetchRegions(e.ctx, e.regions)
	default:
		var f *os.File
		f, err = os.Open(e.regions)
		if err != nil {
			return err
		}
		regions, err = dataset.Regions(f)
		f.Close()
	}
	if err != nil {
		return err
	}

	states, err := table.Join(regions, pop, "name")
	if err != nil {
		return err
	}
	if dropped := regions.Len() - states.Len(); dropped > 0 {
		e.status.Message(fmt.Sprintf("%d regions have no population data", dropped))
	}
	states, err = table.Sort(states, "population", true)
	if err != nil {
		return err
	}
	e.show("population by state (in millions)", states)

	p, err := barPlot(states, "name", "population", nil)
	if err != nil {
		return err
	}
	p.Add(gg.Title("US States by Population (in millions)"))
	return e.save("us_states_population", p, 1200, 500)
}
