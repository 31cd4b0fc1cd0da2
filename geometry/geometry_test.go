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

package geometry_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/geometry"
	"github.com/maplibre/mlt-go/internal/mlttest"
	"github.com/maplibre/mlt-go/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vertexDict = uint8(stream.DictionaryVertex)

func types(codes ...uint32) []byte { return mlttest.Plain(stream.Data, 0, codes...) }

func decodeColumn(t *testing.T, numFeatures int, streams ...[]byte) *geometry.Vector {
	t.Helper()

	buf := bytes.Join(streams, nil)
	buf = append(buf, 0xee)
	v, next, err := geometry.DecodeColumn(buf, 0, len(streams), numFeatures)
	require.NoError(t, err)
	assert.Equal(t, len(buf)-1, next)

	return v
}

func reconstruct(t *testing.T, numFeatures int, streams ...[]byte) []geometry.Geometry {
	t.Helper()

	geoms, err := decodeColumn(t, numFeatures, streams...).Geometries()
	require.NoError(t, err)
	require.Len(t, geoms, numFeatures)

	return geoms
}

func vs(xy ...int32) []geometry.Vertex {
	out := make([]geometry.Vertex, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geometry.Vertex{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestSinglePoint(t *testing.T) {
	v := decodeColumn(t, 1, types(0), mlttest.Signed(stream.Data, vertexDict, 10, 20))
	assert.Equal(t, geometry.Const, v.Kind)
	assert.Equal(t, geometry.Point, v.Type)
	assert.Equal(t, geometry.VertexPlain, v.VertexKind)
	assert.Nil(t, v.Topology.GeometryOffsets)
	assert.Nil(t, v.Topology.PartOffsets)
	assert.Nil(t, v.Topology.RingOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Geometry{{Type: geometry.Point, Coordinates: [][]geometry.Vertex{vs(10, 20)}}}, geoms)
}

func TestPolygonRingIsClosed(t *testing.T) {
	v := decodeColumn(t, 1,
		types(2),
		mlttest.Lengths(stream.LengthParts, 1),
		mlttest.Lengths(stream.LengthRings, 4),
		mlttest.ComponentwiseDelta(0, 0, 10, 0, 10, 10, 0, 10),
	)
	assert.Equal(t, []int32{0, 1}, v.Topology.PartOffsets)
	assert.Equal(t, []int32{0, 4}, v.Topology.RingOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	require.Len(t, geoms[0].Coordinates, 1)
	shell := geoms[0].Coordinates[0]
	assert.Len(t, shell, 5)
	assert.Equal(t, shell[0], shell[4])
	assert.Equal(t, vs(0, 0, 10, 0, 10, 10, 0, 10, 0, 0), shell)
}

func TestMultiLineString(t *testing.T) {
	v := decodeColumn(t, 1,
		types(4),
		mlttest.Lengths(stream.LengthGeometries, 2),
		mlttest.Lengths(stream.LengthParts, 2, 3),
		mlttest.ComponentwiseDelta(0, 0, 1, 1, 5, 5, 6, 6, 7, 7),
	)
	assert.Equal(t, []int32{0, 2}, v.Topology.GeometryOffsets)
	assert.Equal(t, []int32{0, 2, 5}, v.Topology.PartOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	require.Len(t, geoms[0].Coordinates, 2)
	assert.Equal(t, vs(0, 0, 1, 1), geoms[0].Coordinates[0])
	assert.Equal(t, vs(5, 5, 6, 6, 7, 7), geoms[0].Coordinates[1])
}

func TestMixedPointAndLineString(t *testing.T) {
	v := decodeColumn(t, 3,
		types(0, 1, 0),
		mlttest.Lengths(stream.LengthParts, 3),
		mlttest.Signed(stream.Data, vertexDict, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5),
	)
	assert.Equal(t, geometry.Flat, v.Kind)
	assert.Equal(t, []geometry.Type{geometry.Point, geometry.LineString, geometry.Point}, v.Types)
	assert.Equal(t, []int32{0, 1, 4, 5}, v.Topology.PartOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Geometry{
		{Type: geometry.Point, Coordinates: [][]geometry.Vertex{vs(1, 1)}},
		{Type: geometry.LineString, Coordinates: [][]geometry.Vertex{vs(2, 2, 3, 3, 4, 4)}},
		{Type: geometry.Point, Coordinates: [][]geometry.Vertex{vs(5, 5)}},
	}, geoms)
}

func TestMixedPolygonLineStringPoint(t *testing.T) {
	v := decodeColumn(t, 3,
		types(2, 1, 0),
		mlttest.Lengths(stream.LengthParts, 2),
		mlttest.Lengths(stream.LengthRings, 4, 3, 2),
		mlttest.Signed(stream.Data, vertexDict,
			0, 0, 9, 0, 9, 9, 0, 9,
			2, 2, 3, 2, 3, 3,
			20, 20, 30, 30,
			50, 50),
	)
	assert.Equal(t, []int32{0, 2, 3, 4}, v.Topology.PartOffsets)
	assert.Equal(t, []int32{0, 4, 7, 9, 10}, v.Topology.RingOffsets)
	assert.True(t, v.ContainsPolygon())

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, [][]geometry.Vertex{
		vs(0, 0, 9, 0, 9, 9, 0, 9, 0, 0),
		vs(2, 2, 3, 2, 3, 3, 2, 2),
	}, geoms[0].Coordinates)
	assert.Equal(t, [][]geometry.Vertex{vs(20, 20, 30, 30)}, geoms[1].Coordinates)
	assert.Equal(t, [][]geometry.Vertex{vs(50, 50)}, geoms[2].Coordinates)
}

func TestMixedMultiPolygonAndPoint(t *testing.T) {
	v := decodeColumn(t, 2,
		types(5, 0),
		mlttest.Lengths(stream.LengthGeometries, 2),
		mlttest.Lengths(stream.LengthParts, 1, 2),
		mlttest.Lengths(stream.LengthRings, 3, 3, 3),
		mlttest.Signed(stream.Data, vertexDict,
			0, 0, 4, 0, 0, 4,
			10, 10, 20, 10, 10, 20,
			12, 12, 13, 12, 12, 13,
			99, 99),
	)
	assert.Equal(t, []int32{0, 2, 3}, v.Topology.GeometryOffsets)
	assert.Equal(t, []int32{0, 1, 3, 4}, v.Topology.PartOffsets)
	assert.Equal(t, []int32{0, 3, 6, 9, 10}, v.Topology.RingOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, geometry.MultiPolygon, geoms[0].Type)
	assert.Equal(t, [][]geometry.Vertex{
		vs(0, 0, 4, 0, 0, 4, 0, 0),
		vs(10, 10, 20, 10, 10, 20, 10, 10),
		vs(12, 12, 13, 12, 12, 13, 12, 12),
	}, geoms[0].Coordinates)
	assert.Equal(t, [][]geometry.Vertex{vs(99, 99)}, geoms[1].Coordinates)
}

func TestMixedMultiPointAndLineString(t *testing.T) {
	v := decodeColumn(t, 2,
		types(3, 1),
		mlttest.Lengths(stream.LengthGeometries, 2),
		mlttest.Lengths(stream.LengthParts, 2),
		mlttest.Signed(stream.Data, vertexDict, 1, 2, 3, 4, 5, 6, 7, 8),
	)
	assert.Equal(t, []int32{0, 2, 3}, v.Topology.GeometryOffsets)
	assert.Equal(t, []int32{0, 1, 2, 4}, v.Topology.PartOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, [][]geometry.Vertex{vs(1, 2), vs(3, 4)}, geoms[0].Coordinates)
	assert.Equal(t, [][]geometry.Vertex{vs(5, 6, 7, 8)}, geoms[1].Coordinates)
}

func TestMixedMultiPointAndPolygon(t *testing.T) {
	v := decodeColumn(t, 2,
		types(3, 2),
		mlttest.Lengths(stream.LengthGeometries, 2),
		mlttest.Lengths(stream.LengthParts, 1),
		mlttest.Lengths(stream.LengthRings, 3),
		mlttest.Signed(stream.Data, vertexDict, 1, 1, 2, 2, 0, 0, 5, 0, 0, 5),
	)
	assert.Equal(t, []int32{0, 1, 2, 3}, v.Topology.PartOffsets)
	assert.Equal(t, []int32{0, 1, 2, 5}, v.Topology.RingOffsets)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, [][]geometry.Vertex{vs(1, 1), vs(2, 2)}, geoms[0].Coordinates)
	assert.Equal(t, [][]geometry.Vertex{vs(0, 0, 5, 0, 0, 5, 0, 0)}, geoms[1].Coordinates)
}

func TestConstTypeFromRuns(t *testing.T) {
	geoms := reconstruct(t, 3,
		mlttest.RLE(stream.Data, 0, 1, 1, 1),
		mlttest.RLE(stream.Length, uint8(stream.LengthParts), 2, 2, 2),
		mlttest.ComponentwiseDelta(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0),
	)
	for i, g := range geoms {
		assert.Equal(t, geometry.LineString, g.Type)
		assert.Equal(t, vs(int32(2*i), 0, int32(2*i+1), 0), g.Coordinates[0])
	}
}

func TestDictionaryVertices(t *testing.T) {
	v := decodeColumn(t, 1,
		types(1),
		mlttest.Lengths(stream.LengthParts, 3),
		mlttest.Plain(stream.Offset, uint8(stream.OffsetVertex), 1, 0, 1),
		mlttest.Signed(stream.Data, vertexDict, 5, 5, 7, 7),
	)
	assert.Equal(t, geometry.VertexDictionary, v.VertexKind)
	assert.Equal(t, 2, v.NumVertices())

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, vs(7, 7, 5, 5, 7, 7), geoms[0].Coordinates[0])
}

func TestMortonDictionaryVertices(t *testing.T) {
	v := decodeColumn(t, 3,
		types(0),
		mlttest.Plain(stream.Offset, uint8(stream.OffsetVertex), 1, 0, 1),
		mlttest.MortonVertices(4, 2, 3, 4, 5, 6),
	)
	assert.Equal(t, geometry.VertexMortonDictionary, v.VertexKind)
	assert.Equal(t, geometry.MortonSettings{NumBits: 4, CoordinateShift: 2}, v.Morton)

	geoms, err := v.Geometries()
	require.NoError(t, err)
	assert.Equal(t, vs(5, 6), geoms[0].Coordinates[0])
	assert.Equal(t, vs(3, 4), geoms[1].Coordinates[0])
	assert.Equal(t, vs(5, 6), geoms[2].Coordinates[0])
}

func TestTessellatedPolygonKeepsOutlines(t *testing.T) {
	geoms := reconstruct(t, 1,
		types(2),
		mlttest.Lengths(stream.LengthTriangles, 2),
		mlttest.Plain(stream.Offset, uint8(stream.OffsetIndex), 0, 1, 2, 0, 2, 3),
		mlttest.Lengths(stream.LengthParts, 1),
		mlttest.Lengths(stream.LengthRings, 4),
		mlttest.Signed(stream.Data, vertexDict, 0, 0, 1, 0, 1, 1, 0, 1),
	)
	assert.Equal(t, [][]geometry.Vertex{vs(0, 0, 1, 0, 1, 1, 0, 1, 0, 0)}, geoms[0].Coordinates)
}

func TestDecodeColumnErrors(t *testing.T) {
	tests := []struct {
		name        string
		numFeatures int
		streams     [][]byte
		err         error
	}{
		{"unknown flat type", 2, [][]byte{types(0, 9)}, mlt.ErrCorrupt},
		{"unknown const type", 1, [][]byte{types(6)}, mlt.ErrCorrupt},
		{"type count mismatch", 3, [][]byte{types(0, 1)}, mlt.ErrCorrupt},
		{"morton without offsets", 1, [][]byte{types(0), mlttest.MortonVertices(4, 0, 1, 1)}, mlt.ErrCorrupt},
		{"fastpfor vertices", 1, [][]byte{types(0), mlttest.Stream{
			Type: stream.Data, Subtype: vertexDict, Physical: stream.FastPFOR,
		}.Words([]uint32{20, 40})}, mlt.ErrNotImplemented},
		{"tessellation only", 1, [][]byte{
			types(2),
			mlttest.Lengths(stream.LengthTriangles, 1),
			mlttest.Plain(stream.Offset, uint8(stream.OffsetIndex), 0, 1, 2),
			mlttest.Signed(stream.Data, vertexDict, 0, 0, 1, 0, 1, 1),
		}, mlt.ErrNotImplemented},
		{"present stream", 1, [][]byte{types(0), mlttest.Booleans(stream.Present, true)}, mlt.ErrCorrupt},
		{"root lengths exhausted", 2, [][]byte{
			types(1, 1),
			mlttest.Lengths(stream.LengthParts, 2),
			mlttest.Signed(stream.Data, vertexDict, 0, 0, 1, 1, 2, 2, 3, 3),
		}, mlt.ErrCorrupt},
		{"ring lengths exhausted", 2, [][]byte{
			types(2, 0),
			mlttest.Lengths(stream.LengthParts, 2),
			mlttest.Lengths(stream.LengthRings, 4),
			mlttest.Signed(stream.Data, vertexDict, 0, 0),
		}, mlt.ErrCorrupt},
		{"multipoint lengths exceed vertices", 2, [][]byte{
			types(3, 3),
			mlttest.Lengths(stream.LengthGeometries, 20_000_000, 20_000_000),
			mlttest.Lengths(stream.LengthParts),
			mlttest.Lengths(stream.LengthRings),
		}, mlt.ErrCorrupt},
		{"multilinestring lengths exceed parts", 2, [][]byte{
			types(4, 4),
			mlttest.Lengths(stream.LengthGeometries, 1_000_000, 1_000_000),
			mlttest.Lengths(stream.LengthParts, 2),
			mlttest.Signed(stream.Data, vertexDict, 0, 0, 1, 1),
		}, mlt.ErrCorrupt},
		{"root lengths overflow", 2, [][]byte{
			types(3, 3),
			mlttest.Lengths(stream.LengthGeometries, math.MaxInt32, 2),
			mlttest.Signed(stream.Data, vertexDict, 0, 0),
		}, mlt.ErrCorrupt},
		{"negative root length", 2, [][]byte{
			types(3, 3),
			mlttest.Lengths(stream.LengthGeometries, math.MaxUint32, 1),
			mlttest.Signed(stream.Data, vertexDict, 0, 0),
		}, mlt.ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := geometry.DecodeColumn(bytes.Join(tt.streams, nil), 0, len(tt.streams), tt.numFeatures)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, _, err := geometry.DecodeColumn(nil, 0, 0, 0)
	assert.ErrorIs(t, err, mlt.ErrCorrupt)
}

func TestDecodeColumnRejectsOversizedTopology(t *testing.T) {
	// two multipoints claiming 2e7 points each with no vertices behind them
	buf := bytes.Join([][]byte{
		types(3, 3),
		mlttest.Lengths(stream.LengthGeometries, 20_000_000, 20_000_000),
		mlttest.Lengths(stream.LengthParts),
		mlttest.Lengths(stream.LengthRings),
	}, nil)

	v, _, err := geometry.DecodeColumn(buf, 0, 4, 2)
	require.ErrorIs(t, err, mlt.ErrCorrupt)
	assert.ErrorContains(t, err, "40000000 level 1 entries exceed the 0 lengths and vertices present")
	assert.Nil(t, v)
}

func TestGeometriesErrors(t *testing.T) {
	tests := []struct {
		name        string
		numFeatures int
		streams     [][]byte
	}{
		{"vertex buffer exhausted", 2, [][]byte{types(0), mlttest.Signed(stream.Data, vertexDict, 1, 1)}},
		{"vertex offset out of range", 1, [][]byte{
			types(0),
			mlttest.Plain(stream.Offset, uint8(stream.OffsetVertex), 3),
			mlttest.Signed(stream.Data, vertexDict, 1, 1),
		}},
		{"line longer than buffer", 1, [][]byte{
			types(1),
			mlttest.Lengths(stream.LengthParts, 1000),
			mlttest.Signed(stream.Data, vertexDict, 1, 1),
		}},
		{"multipoint without geometry offsets", 1, [][]byte{
			types(3),
			mlttest.Signed(stream.Data, vertexDict, 1, 1),
		}},
		{"polygon without rings", 1, [][]byte{
			types(2),
			mlttest.Lengths(stream.LengthParts, 0),
			mlttest.Lengths(stream.LengthRings),
			mlttest.Signed(stream.Data, vertexDict, 1, 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decodeColumn(t, tt.numFeatures, tt.streams...)
			_, err := v.Geometries()
			assert.ErrorIs(t, err, mlt.ErrCorrupt)
		})
	}
}

func TestGeometryString(t *testing.T) {
	assert.Equal(t, "POINT (10 20)",
		geometry.Geometry{Type: geometry.Point, Coordinates: [][]geometry.Vertex{vs(10, 20)}}.String())
	assert.Equal(t, "LINESTRING (0 0, 1 -1)",
		geometry.Geometry{Type: geometry.LineString, Coordinates: [][]geometry.Vertex{vs(0, 0, 1, -1)}}.String())
	assert.Equal(t, "POLYGON ((0 0, 1 0, 0 1, 0 0))",
		geometry.Geometry{Type: geometry.Polygon, Coordinates: [][]geometry.Vertex{vs(0, 0, 1, 0, 0, 1, 0, 0)}}.String())
	assert.Equal(t, "MULTIPOINT ((1 2), (3 4))",
		geometry.Geometry{Type: geometry.MultiPoint, Coordinates: [][]geometry.Vertex{vs(1, 2), vs(3, 4)}}.String())
	assert.Equal(t, "Type(7)", geometry.Type(7).String())
	assert.Equal(t, 4, geometry.Geometry{Coordinates: [][]geometry.Vertex{vs(1, 2), vs(3, 4, 5, 6, 7, 8)}}.NumVertices())
}
