// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vislessons/charts/table"
)

// USStatesURL is the GeoJSON boundary file the choropleth lesson
// joins against.
const USStatesURL = "https://github.com/PublicaMundi/MappingAPI/raw/master/data/geojson/us-states.json"

type featureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		ID         json.RawMessage `json:"id"`
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"features"`
}

// Regions reads a GeoJSON FeatureCollection from r and returns a
// table with one row per feature and the string columns "id" and
// "name". Geometry is ignored.
func Regions(r io.Reader) (*table.Table, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("parsing GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("parsing GeoJSON: got %q, want FeatureCollection", fc.Type)
	}
	ids := make([]string, len(fc.Features))
	names := make([]string, len(fc.Features))
	for i, f := range fc.Features {
		var s string
		if err := json.Unmarshal(f.ID, &s); err == nil {
			ids[i] = s
		} else {
			ids[i] = strings.TrimSpace(string(f.ID))
		}
		names[i] = f.Properties.Name
	}
	return new(table.Builder).Add("id", ids).Add("name", names).Done()
}

// FetchRegions retrieves a GeoJSON document from url and parses it
// with Regions.
func FetchRegions(ctx context.Context, url string) (*table.Table, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return Regions(resp.Body)
}
