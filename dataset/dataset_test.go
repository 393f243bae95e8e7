// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vislessons/charts/table"
)

func TestBuiltin(t *testing.T) {
	s := Builtin()
	assert.Equal(t, []string{
		"city_areas",
		"city_population",
		"city_population_unsorted",
		"household_energy",
		"quarterly_sales",
		"state_cities",
		"state_population",
	}, s.Names())

	for _, test := range []struct {
		name string
		rows int
		cols []string
	}{
		{"city_population", 5, []string{"City", "Population"}},
		{"city_areas", 5, []string{"City", "Area (sq mi)"}},
		{"state_cities", 7, []string{"State", "City", "Population"}},
		{"quarterly_sales", 12, []string{"Quarter", "Product", "Sales"}},
		{"state_population", 50, []string{"name", "population"}},
		{"household_energy", 36, []string{"Month", "Household", "Consumption (kWh)"}},
	} {
		tab, err := s.Table(test.name)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.rows, tab.Len(), test.name)
		assert.Equal(t, test.cols, tab.Columns(), test.name)
	}

	k, err := mustTable(t, s, "city_areas").Kind("Area (sq mi)")
	require.NoError(t, err)
	assert.Equal(t, table.Float, k)

	_, err = s.Table("nope")
	assert.Error(t, err)
}

func mustTable(t *testing.T, s *Set, name string) *table.Table {
	tab, err := s.Table(name)
	require.NoError(t, err)
	return tab
}

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(`
datasets:
  small:
    columns:
      - {name: x, kind: float, values: [1, 2.5]}
      - {name: n, kind: int, values: [3, 4]}
`))
	require.NoError(t, err)
	tab := mustTable(t, s, "small")
	xs, err := tab.Floats("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5}, xs)
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, doc, want string
	}{
		{"kind", `
datasets:
  d:
    columns:
      - {name: x, kind: bool, values: [true]}
`, "unknown kind"},
		{"values", `
datasets:
  d:
    columns:
      - {name: x, kind: int, values: [a]}
`, "column \"x\""},
		{"ragged", `
datasets:
  d:
    columns:
      - {name: x, kind: int, values: [1]}
      - {name: y, kind: int, values: [1, 2]}
`, "dataset d"},
		{"syntax", "datasets: [", "yaml"},
	} {
		_, err := Parse(strings.NewReader(test.doc))
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: got %v, want error containing %q", test.name, err, test.want)
		}
	}
}

const statesJSON = `{"type":"FeatureCollection","features":[
{"type":"Feature","id":"01","properties":{"name":"Alabama","density":94.65},"geometry":null},
{"type":"Feature","id":2,"properties":{"name":"Alaska"},"geometry":null},
{"type":"Feature","id":"72","properties":{"name":"Puerto Rico"},"geometry":null}]}`

func TestRegions(t *testing.T) {
	tab, err := Regions(strings.NewReader(statesJSON))
	require.NoError(t, err)
	ids, _ := tab.Strings("id")
	names, _ := tab.Strings("name")
	assert.Equal(t, []string{"01", "2", "72"}, ids)
	assert.Equal(t, []string{"Alabama", "Alaska", "Puerto Rico"}, names)

	_, err = Regions(strings.NewReader(`{"type":"Feature"}`))
	assert.Error(t, err)
}

func TestFetchRegions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/states.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(statesJSON))
	}))
	defer srv.Close()

	tab, err := FetchRegions(context.Background(), srv.URL+"/states.json")
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Len())

	_, err = FetchRegions(context.Background(), srv.URL+"/missing.json")
	assert.Error(t, err)
}

func TestJoinPopulation(t *testing.T) {
	regions, err := Regions(strings.NewReader(statesJSON))
	require.NoError(t, err)
	pop := mustTable(t, Builtin(), "state_population")
	j, err := table.Join(regions, pop, "name")
	require.NoError(t, err)
	names, _ := j.Strings("name")
	assert.Equal(t, []string{"Alabama", "Alaska"}, names)
	assert.Equal(t, []string{"id", "name", "population"}, j.Columns())
}
