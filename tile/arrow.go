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

package tile

import (
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/maplibre/mlt-go/vector"
)

const (
	GeometryTypeField = "geometry_type"
	GeometryField     = "geometry"
)

var (
	vertexType = arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
		arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Int32},
	)
	// CoordinatesType holds a geometry as a list of vertex lists: one
	// list per point, line or ring.
	CoordinatesType = arrow.ListOf(arrow.ListOf(vertexType))
)

// ArrowSchema returns the schema ToArrow produces: the id column if
// present, the geometry type and coordinates if the table has geometry,
// then the properties in order. The table name and extent are kept as
// schema metadata.
func (t *FeatureTable) ArrowSchema() (*arrow.Schema, error) {
	geoms, err := t.Geometries()
	if err != nil {
		return nil, err
	}
	return t.arrowSchema(geoms != nil), nil
}

func (t *FeatureTable) arrowSchema(withGeometry bool) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(t.properties)+3)
	if t.ids != nil {
		fields = append(fields, arrow.Field{Name: t.ids.Name(), Type: t.ids.DataType(), Nullable: true})
	}
	if withGeometry {
		fields = append(fields,
			arrow.Field{Name: GeometryTypeField, Type: arrow.BinaryTypes.String},
			arrow.Field{Name: GeometryField, Type: CoordinatesType})
	}
	for _, p := range t.properties {
		fields = append(fields, arrow.Field{Name: p.Name(), Type: p.DataType(), Nullable: true})
	}

	md := arrow.NewMetadata(
		[]string{"mlt.name", "mlt.extent"},
		[]string{t.Name, strconv.Itoa(t.Extent)})
	return arrow.NewSchema(fields, &md)
}

// ToArrow copies the table into a record with one row per feature.
func (t *FeatureTable) ToArrow(mem memory.Allocator) (arrow.Record, error) {
	geoms, err := t.Geometries()
	if err != nil {
		return nil, err
	}

	bldr := array.NewRecordBuilder(mem, t.arrowSchema(geoms != nil))
	defer bldr.Release()

	col := 0
	if t.ids != nil {
		if err := vector.Append(bldr.Field(col), t.ids); err != nil {
			return nil, err
		}
		col++
	}

	if geoms != nil {
		types := bldr.Field(col).(*array.StringBuilder)
		coords := bldr.Field(col + 1).(*array.ListBuilder)
		parts := coords.ValueBuilder().(*array.ListBuilder)
		verts := parts.ValueBuilder().(*array.StructBuilder)
		xs := verts.FieldBuilder(0).(*array.Int32Builder)
		ys := verts.FieldBuilder(1).(*array.Int32Builder)

		types.Reserve(len(geoms))
		coords.Reserve(len(geoms))
		for _, g := range geoms {
			types.Append(g.Type.String())
			coords.Append(true)
			for _, part := range g.Coordinates {
				parts.Append(true)
				for _, v := range part {
					verts.Append(true)
					xs.Append(v.X)
					ys.Append(v.Y)
				}
			}
		}
		col += 2
	}

	for i, p := range t.properties {
		if err := vector.Append(bldr.Field(col+i), p); err != nil {
			return nil, err
		}
	}

	return bldr.NewRecord(), nil
}
