// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/maplibre/mlt-go/geometry"
	"github.com/maplibre/mlt-go/mbtiles"
	"github.com/maplibre/mlt-go/tile"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFeatures = []tile.Feature{
	{
		ID: 7, HasID: true,
		Geometry:   geometry.Geometry{Type: geometry.Point, Coordinates: [][]geometry.Vertex{{{X: 10, Y: 20}}}},
		Properties: map[string]any{"name": "harbour"},
	},
	{
		Geometry: geometry.Geometry{Type: geometry.LineString, Coordinates: [][]geometry.Vertex{
			{{X: 0, Y: 0}, {X: 5, Y: 5}},
		}},
		Properties: map[string]any{"class": "path"},
	},
}

func TestNewOutput(t *testing.T) {
	for _, kind := range []string{"", "text", "TEXT"} {
		out, err := newOutput(kind, nil)
		require.NoError(t, err)
		assert.IsType(t, text{}, out)
	}

	out, err := newOutput("json", &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, jsonOutput{}, out)

	_, err = newOutput("yaml", nil)
	assert.ErrorContains(t, err, `unimplemented output type "yaml"`)
}

func Test_jsonOutput_Features(t *testing.T) {
	var buf bytes.Buffer
	out, err := newOutput("json", &buf)
	require.NoError(t, err)

	out.Features("places", sampleFeatures)

	assert.JSONEq(t, `{
  "layer": "places",
  "features": [
    {"id": 7, "geometry": {"type": "Point", "coordinates": [[[10, 20]]]}, "properties": {"name": "harbour"}},
    {"geometry": {"type": "LineString", "coordinates": [[[0, 0], [5, 5]]]}, "properties": {"class": "path"}}
  ]
}`, buf.String())
}

func Test_jsonOutput_Geometry(t *testing.T) {
	var buf bytes.Buffer
	out, err := newOutput("json", &buf)
	require.NoError(t, err)

	out.Geometry("places", 1, geometry.Geometry{})
	out.Geometry("places", 0, sampleFeatures[0].Geometry)

	var first, second json.RawMessage
	dec := json.NewDecoder(&buf)
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.JSONEq(t, `{"layer": "places", "index": 1, "geometry": null}`, string(first))
	assert.JSONEq(t, `{"layer": "places", "index": 0, "geometry": {"type": "Point", "coordinates": [[[10, 20]]]}}`,
		string(second))
}

func Test_jsonOutput_Archive(t *testing.T) {
	var buf bytes.Buffer
	out := jsonOutput{enc: newEncoder(&buf)}

	out.TileIDs([]mbtiles.TileID{{Z: 0, X: 0, Y: 0}, {Z: 14, X: 8529, Y: 5975}})
	assert.JSONEq(t, `{"tiles": ["0/0/0", "14/8529/5975"]}`, buf.String())

	buf.Reset()
	out.Metadata(map[string]string{"name": "sample", "format": "mlt"})
	assert.JSONEq(t, `{"name": "sample", "format": "mlt"}`, buf.String())

	buf.Reset()
	out.Schema("places", arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Uint32, Nullable: true},
		{Name: "geometry_type", Type: arrow.BinaryTypes.String},
	}, nil))
	assert.JSONEq(t, `{"layer": "places", "fields": [
		{"name": "id", "type": "uint32", "nullable": true},
		{"name": "geometry_type", "type": "utf8", "nullable": false}
	]}`, buf.String())
}

func Test_textOutput_Features(t *testing.T) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()

	text{}.Features("places", sampleFeatures)

	got := buf.String()
	assert.Contains(t, got, "Layer places")
	assert.Contains(t, got, "POINT (10 20)")
	assert.Contains(t, got, "LINESTRING (0 0, 5 5)")
	assert.Contains(t, got, "harbour")
	assert.Regexp(t, `#\s+\| ID\s+\| Geometry\s+\| class\s+\| name`, got)
}

func Test_textOutput_TileIDs(t *testing.T) {
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	pterm.DisableColor()

	text{}.TileIDs([]mbtiles.TileID{{Z: 1, X: 0, Y: 1}, {Z: 1, X: 1, Y: 0}})

	got := buf.String()
	assert.Contains(t, got, "Tiles: 2")
	assert.Contains(t, got, "1/0/1")
	assert.Contains(t, got, "1/1/0")
}

func TestPropertyNames(t *testing.T) {
	assert.Equal(t, []string{"class", "name"}, propertyNames(sampleFeatures))
	assert.Empty(t, propertyNames(nil))
}
