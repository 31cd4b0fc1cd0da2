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

// Package geometry rebuilds per feature coordinates from the topology
// offset buffers and vertex buffer of a decoded geometry column.
package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the wire code of a geometry type.
type Type uint8

const (
	Point Type = iota
	LineString
	Polygon
	MultiPoint
	MultiLineString
	MultiPolygon
)

var typeNames = [...]string{"Point", "LineString", "Polygon", "MultiPoint", "MultiLineString", "MultiPolygon"}

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a known geometry code.
func (t Type) Valid() bool { return int(t) < len(typeNames) }

// IsPolygonal reports whether t is Polygon or MultiPolygon.
func (t Type) IsPolygonal() bool { return t == Polygon || t == MultiPolygon }

// Vertex is a position in tile coordinates.
type Vertex struct {
	X, Y int32
}

// Geometry is one reconstructed feature geometry. Coordinates holds one
// single-vertex slice per point for Point and MultiPoint, one slice per
// line for LineString and MultiLineString, and the rings for Polygon and
// MultiPolygon, shells followed by their holes. Rings are closed.
type Geometry struct {
	Type        Type
	Coordinates [][]Vertex
}

// NumVertices returns the number of vertices across all parts.
func (g Geometry) NumVertices() int {
	var n int
	for _, part := range g.Coordinates {
		n += len(part)
	}
	return n
}

func writeVertices(b *strings.Builder, vs []Vertex) {
	b.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%d %d", v.X, v.Y)
	}
	b.WriteByte(')')
}

// String renders the geometry in a WKT like form. Multi polygons list
// their rings without polygon grouping.
func (g Geometry) String() string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(g.Type.String()))
	b.WriteByte(' ')

	switch g.Type {
	case Point, LineString:
		if len(g.Coordinates) == 0 {
			b.WriteString("EMPTY")
			break
		}
		writeVertices(&b, g.Coordinates[0])
	default:
		b.WriteByte('(')
		for i, part := range g.Coordinates {
			if i > 0 {
				b.WriteString(", ")
			}
			writeVertices(&b, part)
		}
		b.WriteByte(')')
	}

	return b.String()
}
