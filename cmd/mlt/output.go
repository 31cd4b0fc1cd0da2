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
	"encoding/json"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/maplibre/mlt-go/geometry"
	"github.com/maplibre/mlt-go/mbtiles"
	"github.com/maplibre/mlt-go/tile"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

type Output interface {
	Layers(location string, tables []*tile.FeatureTable)
	Schema(layer string, schema *arrow.Schema)
	Features(layer string, features []tile.Feature)
	Geometry(layer string, index int, g geometry.Geometry)
	Metadata(map[string]string)
	TileIDs([]mbtiles.TileID)
	Text(string)
	Error(error)
}

func newOutput(kind string, w io.Writer) (Output, error) {
	switch strings.ToLower(kind) {
	case "", "text":
		return text{}, nil
	case "json":
		return jsonOutput{enc: newEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unimplemented output type %q", kind)
	}
}

type text struct{}

func (text) Layers(location string, tables []*tile.FeatureTable) {
	data := pterm.TableData{{"Layer", "Version", "Extent", "Features", "Properties"}}
	for _, t := range tables {
		data = append(data, []string{
			t.Name,
			strconv.Itoa(int(t.Version)),
			strconv.Itoa(t.Extent),
			strconv.Itoa(t.NumFeatures),
			strings.Join(t.PropertyNames(), ", "),
		})
	}

	pterm.Println(location)
	pterm.DefaultTable.
		WithBoxed(true).
		WithHasHeader(true).
		WithHeaderRowSeparator("-").
		WithData(data).Render()
}

func (text) Schema(layer string, schema *arrow.Schema) {
	fields := pterm.LeveledList{}
	for _, f := range schema.Fields() {
		nullable := ""
		if f.Nullable {
			nullable = " (nullable)"
		}
		fields = append(fields, pterm.LeveledListItem{
			Level: 0, Text: f.Name + ": " + f.Type.String() + nullable,
		})
	}

	node := putils.TreeFromLeveledList(fields)
	node.Text = "Layer " + layer
	pterm.DefaultTree.WithRoot(node).Render()
}

func propertyNames(features []tile.Feature) []string {
	names := map[string]struct{}{}
	for _, f := range features {
		for k := range f.Properties {
			names[k] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(names))
}

func (text) Features(layer string, features []tile.Feature) {
	props := propertyNames(features)
	data := pterm.TableData{append([]string{"#", "ID", "Geometry"}, props...)}
	for i, f := range features {
		id := ""
		if f.HasID {
			id = strconv.FormatInt(f.ID, 10)
		}

		row := []string{strconv.Itoa(i), id, f.Geometry.String()}
		for _, p := range props {
			if v, ok := f.Properties[p]; ok {
				row = append(row, fmt.Sprint(v))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}

	pterm.Println("Layer " + layer)
	pterm.DefaultTable.
		WithHasHeader(true).
		WithHeaderRowSeparator("-").
		WithData(data).Render()
}

func (text) Geometry(layer string, index int, g geometry.Geometry) {
	pterm.Println(g.String())
}

func (text) Metadata(md map[string]string) {
	data := pterm.TableData{{"Key", "Value"}}
	for _, k := range slices.Sorted(maps.Keys(md)) {
		data = append(data, []string{k, md[k]})
	}

	pterm.DefaultTable.
		WithBoxed(true).
		WithHasHeader(true).
		WithHeaderRowSeparator("-").
		WithData(data).Render()
}

func (text) TileIDs(ids []mbtiles.TileID) {
	list := pterm.LeveledList{}
	for _, id := range ids {
		list = append(list, pterm.LeveledListItem{Level: 0, Text: id.String()})
	}

	node := putils.TreeFromLeveledList(list)
	node.Text = "Tiles: " + strconv.Itoa(len(ids))
	pterm.DefaultTree.WithRoot(node).Render()
}

func (text) Text(val string) {
	pterm.Println(val)
}

func (text) Error(err error) {
	log.Fatal(err)
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc
}

type jsonOutput struct {
	enc *json.Encoder
}

type jsonLayer struct {
	Name       string   `json:"name"`
	Version    uint8    `json:"version"`
	Extent     int      `json:"extent"`
	Features   int      `json:"features"`
	Properties []string `json:"properties"`
}

type jsonGeometry struct {
	Type        string       `json:"type"`
	Coordinates [][][2]int32 `json:"coordinates"`
}

func toJSONGeometry(g geometry.Geometry) *jsonGeometry {
	if g.Coordinates == nil {
		return nil
	}

	coords := make([][][2]int32, len(g.Coordinates))
	for i, part := range g.Coordinates {
		coords[i] = make([][2]int32, len(part))
		for j, v := range part {
			coords[i][j] = [2]int32{v.X, v.Y}
		}
	}

	return &jsonGeometry{Type: g.Type.String(), Coordinates: coords}
}

type jsonFeature struct {
	ID         *int64         `json:"id,omitempty"`
	Geometry   *jsonGeometry  `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

func (j jsonOutput) write(v any) {
	if err := j.enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}

func (j jsonOutput) Layers(location string, tables []*tile.FeatureTable) {
	layers := make([]jsonLayer, len(tables))
	for i, t := range tables {
		layers[i] = jsonLayer{
			Name:       t.Name,
			Version:    t.Version,
			Extent:     t.Extent,
			Features:   t.NumFeatures,
			Properties: t.PropertyNames(),
		}
	}

	j.write(struct {
		Location string      `json:"location"`
		Layers   []jsonLayer `json:"layers"`
	}{location, layers})
}

func (j jsonOutput) Schema(layer string, schema *arrow.Schema) {
	type field struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Nullable bool   `json:"nullable"`
	}

	fields := make([]field, len(schema.Fields()))
	for i, f := range schema.Fields() {
		fields[i] = field{Name: f.Name, Type: f.Type.String(), Nullable: f.Nullable}
	}

	j.write(struct {
		Layer  string  `json:"layer"`
		Fields []field `json:"fields"`
	}{layer, fields})
}

func (j jsonOutput) Features(layer string, features []tile.Feature) {
	out := make([]jsonFeature, len(features))
	for i, f := range features {
		out[i] = jsonFeature{Geometry: toJSONGeometry(f.Geometry), Properties: f.Properties}
		if f.HasID {
			out[i].ID = &f.ID
		}
	}

	j.write(struct {
		Layer    string        `json:"layer"`
		Features []jsonFeature `json:"features"`
	}{layer, out})
}

func (j jsonOutput) Geometry(layer string, index int, g geometry.Geometry) {
	j.write(struct {
		Layer    string        `json:"layer"`
		Index    int           `json:"index"`
		Geometry *jsonGeometry `json:"geometry"`
	}{layer, index, toJSONGeometry(g)})
}

func (j jsonOutput) Metadata(md map[string]string) {
	j.write(md)
}

func (j jsonOutput) TileIDs(ids []mbtiles.TileID) {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	j.write(struct {
		Tiles []string `json:"tiles"`
	}{out})
}

func (j jsonOutput) Text(val string) {
	j.write(struct {
		Message string `json:"message"`
	}{val})
}

func (j jsonOutput) Error(err error) {
	j.write(struct {
		Error string `json:"error"`
	}{err.Error()})
}
