// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/stats"
	"github.com/vislessons/charts/table"
)

func init() {
	registerLesson("energy", "household energy consumption by month and temperature", lessonEnergy)
}

const consumption = "Consumption (kWh)"

func lessonEnergy(e *env) error {
	usage, err := e.table("household_energy")
	if err != nil {
		return err
	}
	e.show("monthly energy consumption of households", usage)

	totals, err := table.Aggregate(usage, "Household", consumption, table.Sum)
	if err != nil {
		return err
	}
	totals, err = table.Sort(totals, consumption, true)
	if err != nil {
		return err
	}
	e.show("yearly energy consumption per household", totals)

	p := gg.NewPlot(usage.Grouping())
	p.Add(gg.LayerLines{X: "Month", Y: consumption, Color: "Household"})
	p.Add(gg.LayerPoints{X: "Month", Y: consumption, Color: "Household"})
	p.Add(gg.AxisLabel("y", "Energy Consumption [kWh]"))
	p.Add(gg.Title("Monthly Energy Consumption of Households (2023)"))
	if err := e.save("monthly_energy_consumption_multiple_households", p, 1200, 600); err != nil {
		return err
	}

	bp, err := barPlot(totals, "Household", consumption, nil)
	if err != nil {
		return err
	}
	bp.Add(gg.Title("Yearly Energy Consumption per Household"))
	if err := e.save("yearly_energy_consumption", bp, 600, 400); err != nil {
		return err
	}

	temps := temperatureUsage(rand.New(rand.NewSource(e.seed)), 5)
	e.show("energy consumption vs. average temperature", temps)
	p = gg.NewPlot(temps.Grouping())
	p.Add(gg.LayerPoints{X: "Average Temperature (°C)", Y: consumption, Color: "Month"})
	p.Add(gg.AxisLabel("x", "Average Temperature [°C]"), gg.AxisLabel("y", "Energy Consumption [kWh]"))
	p.Add(gg.Title("Energy Consumption vs. Average Temperature"))
	return e.save("energy_consumption_vs_temperature", p, 1200, 600)
}

// temperatureUsage returns one row per month over the given number
// of years with a uniform random average temperature between 5 and
// 30 °C and a consumption of 15 kWh per degree plus normal noise.
func temperatureUsage(r *rand.Rand, years int) *table.Table {
	noise := stats.NormalDist{Mu: 0, Sigma: 10}
	n := 12 * years
	months := make([]int, n)
	temps := make([]float64, n)
	kwh := make([]float64, n)
	for i := range months {
		months[i] = i%12 + 1
		temps[i] = 5 + 25*r.Float64()
	}
	for i := range kwh {
		kwh[i] = temps[i]*15 + noise.Rand(r)
	}
	return new(table.Builder).
		Add("Month", months).
		Add("Average Temperature (°C)", temps).
		Add(consumption, kwh).
		MustDone()
}
