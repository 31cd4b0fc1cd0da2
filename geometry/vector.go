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

package geometry

import "slices"

// Kind tells whether a Vector shares one geometry type across features.
type Kind uint8

const (
	Const Kind = iota
	Flat
)

// VertexKind selects how vertices are looked up in the vertex buffer.
type VertexKind uint8

const (
	// VertexPlain reads consecutive x,y pairs from VertexBuffer.
	VertexPlain VertexKind = iota
	// VertexDictionary reads an index from VertexOffsets and the x,y pair
	// at twice that index in VertexBuffer.
	VertexDictionary
	// VertexMortonDictionary reads an index from VertexOffsets and the
	// Morton code at that index in MortonCodes.
	VertexMortonDictionary
)

func (k VertexKind) String() string {
	switch k {
	case VertexPlain:
		return "plain"
	case VertexDictionary:
		return "dictionary"
	case VertexMortonDictionary:
		return "morton dictionary"
	}
	return "unknown"
}

// Topology holds the offset buffers of a geometry column. Each buffer is
// an exclusive prefix sum starting at zero, or nil when the column did not
// need it.
type Topology struct {
	GeometryOffsets []int32
	PartOffsets     []int32
	RingOffsets     []int32
}

// MortonSettings describes how Morton codes map back to coordinates.
type MortonSettings struct {
	NumBits         int
	CoordinateShift int
}

// Vector is a decoded geometry column. It is immutable once built.
type Vector struct {
	Kind          Kind
	NumGeometries int
	// Type is the geometry type of every feature of a Const vector.
	Type Type
	// Types holds one geometry type per feature of a Flat vector.
	Types []Type

	Topology      Topology
	VertexKind    VertexKind
	VertexOffsets []int32
	VertexBuffer  []int32
	MortonCodes   []uint32
	Morton        MortonSettings
}

// TypeAt returns the geometry type of feature i.
func (v *Vector) TypeAt(i int) Type {
	if v.Kind == Const {
		return v.Type
	}
	return v.Types[i]
}

// ContainsPolygon reports whether any feature is a Polygon or
// MultiPolygon. Line strings then take their vertex counts from the ring
// offsets instead of the part offsets.
func (v *Vector) ContainsPolygon() bool {
	if v.Kind == Const {
		return v.Type.IsPolygonal()
	}
	return slices.ContainsFunc(v.Types, Type.IsPolygonal)
}

// NumVertices returns the number of distinct vertices stored.
func (v *Vector) NumVertices() int {
	if v.VertexKind == VertexMortonDictionary {
		return len(v.MortonCodes)
	}
	return len(v.VertexBuffer) / 2
}
