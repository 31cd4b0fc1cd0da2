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

import (
	"fmt"
	"math"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/stream"
)

// DecodeColumn decodes a geometry column of numStreams streams starting
// at data[pos] and returns the vector and the offset after the column.
// Triangle and index buffers of pre-tessellated polygons are skipped.
func DecodeColumn(data []byte, pos, numStreams, numFeatures int) (*Vector, int, error) {
	if numStreams < 1 {
		return nil, pos, fmt.Errorf("%w: geometry: column without a geometry type stream", mlt.ErrCorrupt)
	}

	md, pos, err := stream.DecodeMetadata(data, pos)
	if err != nil {
		return nil, pos, err
	}

	v := &Vector{NumGeometries: numFeatures}
	if stream.VectorTypeOf(data, pos, md, numFeatures) == stream.Const {
		var t int32
		if t, pos, err = stream.DecodeConstIntStream(data, pos, md, false); err != nil {
			return nil, pos, err
		}
		if v.Type = Type(t); t < 0 || !v.Type.Valid() {
			return nil, pos, fmt.Errorf("%w: geometry: unknown geometry type %d", mlt.ErrCorrupt, t)
		}
		v.Kind = Const
	} else {
		var types []int32
		if types, pos, err = stream.DecodeIntStream(data, pos, md, false); err != nil {
			return nil, pos, err
		}
		if len(types) != numFeatures {
			return nil, pos, fmt.Errorf("%w: geometry: %d geometry types for %d features",
				mlt.ErrCorrupt, len(types), numFeatures)
		}
		v.Kind, v.Types = Flat, make([]Type, len(types))
		for i, t := range types {
			if v.Types[i] = Type(t); t < 0 || !v.Types[i].Valid() {
				return nil, pos, fmt.Errorf("%w: geometry: unknown geometry type %d for feature %d",
					mlt.ErrCorrupt, t, i)
			}
		}
	}

	var (
		topo       Topology
		morton     bool
		tessellate bool
	)
	for range numStreams - 1 {
		if md, pos, err = stream.DecodeMetadata(data, pos); err != nil {
			return nil, pos, err
		}

		switch md.PhysicalType {
		case stream.Length:
			var dst *[]int32
			switch md.LengthKind() {
			case stream.LengthGeometries:
				dst = &topo.GeometryOffsets
			case stream.LengthParts:
				dst = &topo.PartOffsets
			case stream.LengthRings:
				dst = &topo.RingOffsets
			default:
				tessellate = tessellate || md.LengthKind() == stream.LengthTriangles
				pos += md.ByteLength
				continue
			}

			if v.Kind == Const {
				*dst, pos, err = stream.DecodeLengthStreamToOffsets(data, pos, md)
			} else {
				*dst, pos, err = stream.DecodeIntStream(data, pos, md, false)
			}
		case stream.Offset:
			if md.OffsetKind() != stream.OffsetVertex {
				tessellate = tessellate || md.OffsetKind() == stream.OffsetIndex
				pos += md.ByteLength
				continue
			}
			v.VertexOffsets, pos, err = stream.DecodeIntStream(data, pos, md, false)
		case stream.Data:
			switch {
			case md.PhysicalTechnique == stream.FastPFOR:
				return nil, pos, fmt.Errorf("%w: geometry: FastPFOR coded vertex buffer", mlt.ErrNotImplemented)
			case md.IsMorton():
				morton = true
				v.Morton = MortonSettings{NumBits: md.NumBits, CoordinateShift: md.CoordinateShift}
				v.MortonCodes, pos, err = stream.DecodeMortonCodes(data, pos, md)
			case md.Dictionary() == stream.DictionaryVertex:
				v.VertexBuffer, pos, err = stream.DecodeIntStream(data, pos, md, true)
			default:
				return nil, pos, fmt.Errorf("%w: geometry: unexpected %s data stream", mlt.ErrCorrupt, md.Dictionary())
			}
		default:
			return nil, pos, fmt.Errorf("%w: geometry: unexpected %s stream", mlt.ErrCorrupt, md.PhysicalType)
		}
		if err != nil {
			return nil, pos, err
		}
	}

	if tessellate && topo.PartOffsets == nil {
		return nil, pos, fmt.Errorf("%w: geometry: tessellated polygons without outlines", mlt.ErrNotImplemented)
	}

	switch {
	case morton && len(v.VertexOffsets) == 0:
		return nil, pos, fmt.Errorf("%w: geometry: morton codes without vertex offsets", mlt.ErrCorrupt)
	case morton:
		v.VertexKind = VertexMortonDictionary
	case len(v.VertexOffsets) > 0:
		v.VertexKind = VertexDictionary
	default:
		v.VertexKind = VertexPlain
	}

	if v.Kind == Flat {
		vertices := len(v.VertexBuffer) / 2
		if len(v.VertexOffsets) > 0 {
			vertices = len(v.VertexOffsets)
		}
		if topo, err = deriveOffsets(v.Types, topo, vertices); err != nil {
			return nil, pos, err
		}
	}
	v.Topology = topo

	return v, pos, nil
}

// deriveOffsets turns the length streams of a mixed column into offset
// buffers. Length streams only carry entries for the geometry types that
// need them; every other geometry contributes an implicit length of one.
//
// Every derived part or ring either consumes an entry of a lower length
// stream or stands for a single point, so a level may hold at most
// vertices plus the remaining part and ring lengths.
func deriveOffsets(types []Type, lengths Topology, vertices int) (Topology, error) {
	var (
		topo  = lengths
		err   error
		limit = vertices + len(lengths.PartOffsets) + len(lengths.RingOffsets)
	)

	switch geom, part, ring := lengths.GeometryOffsets, lengths.PartOffsets, lengths.RingOffsets; {
	case geom != nil:
		if topo.GeometryOffsets, err = rootOffsets(types, geom, Polygon); err != nil {
			return topo, err
		}
		switch {
		case part != nil && ring != nil:
			if topo.PartOffsets, err = level1Offsets(types, topo.GeometryOffsets, part, false, limit); err != nil {
				return topo, err
			}
			topo.RingOffsets, err = level2Offsets(types, topo.GeometryOffsets, topo.PartOffsets, ring)
		case part != nil:
			topo.PartOffsets, err = level1LineOffsets(types, topo.GeometryOffsets, part, limit)
		}
	case part != nil && ring != nil:
		if topo.PartOffsets, err = rootOffsets(types, part, LineString); err != nil {
			return topo, err
		}
		topo.RingOffsets, err = level1Offsets(types, topo.PartOffsets, ring, true, limit)
	case part != nil:
		topo.PartOffsets, err = rootOffsets(types, part, Point)
	}

	return topo, err
}

type lengthReader struct {
	name    string
	lengths []int32
	next    int
}

func (r *lengthReader) read() (int32, error) {
	if r.next >= len(r.lengths) {
		return 0, fmt.Errorf("%w: geometry: %s lengths exhausted after %d entries",
			mlt.ErrCorrupt, r.name, len(r.lengths))
	}

	n := r.lengths[r.next]
	if n < 0 {
		return 0, fmt.Errorf("%w: geometry: negative %s length %d", mlt.ErrCorrupt, r.name, n)
	}
	r.next++

	return n, nil
}

// rootOffsets expands the first present length stream. Geometries whose
// type code exceeds threshold carry a length; the rest count as one.
func rootOffsets(types []Type, lengths []int32, threshold Type) ([]int32, error) {
	r := lengthReader{name: "root", lengths: lengths}
	out := make([]int32, len(types)+1)
	for i, t := range types {
		n := int32(1)
		if t > threshold {
			var err error
			if n, err = r.read(); err != nil {
				return nil, err
			}
		}
		if out[i] > math.MaxInt32-n {
			return nil, fmt.Errorf("%w: geometry: root lengths overflow at feature %d", mlt.ErrCorrupt, i)
		}
		out[i+1] = out[i] + n
	}

	return out, nil
}

func expandLevel(types []Type, root []int32, r *lengthReader, limit int, hasLength func(Type) bool) ([]int32, error) {
	if total := int(root[len(root)-1]); total > limit {
		return nil, fmt.Errorf("%w: geometry: %d %s entries exceed the %d lengths and vertices present",
			mlt.ErrCorrupt, total, r.name, limit)
	}

	out := make([]int32, 1, len(r.lengths)+1)
	for i, t := range types {
		for range root[i+1] - root[i] {
			n := int32(1)
			if hasLength(t) {
				var err error
				if n, err = r.read(); err != nil {
					return nil, err
				}
			}
			out = append(out, out[len(out)-1]+n)
		}
	}

	return out, nil
}

// level1Offsets expands the part or ring lengths below root. Polygons
// always carry lengths, line strings only when lineStrings is set.
func level1Offsets(types []Type, root, lengths []int32, lineStrings bool, limit int) ([]int32, error) {
	r := &lengthReader{name: "level 1", lengths: lengths}
	return expandLevel(types, root, r, limit, func(t Type) bool {
		return t.IsPolygonal() || (lineStrings && (t == LineString || t == MultiLineString))
	})
}

// level1LineOffsets is level1Offsets for columns without rings, where
// only line strings carry lengths.
func level1LineOffsets(types []Type, root, lengths []int32, limit int) ([]int32, error) {
	r := &lengthReader{name: "level 1", lengths: lengths}
	return expandLevel(types, root, r, limit, func(t Type) bool {
		return t == LineString || t == MultiLineString
	})
}

// level2Offsets expands ring lengths below the part offsets.
func level2Offsets(types []Type, root, level1, lengths []int32) ([]int32, error) {
	r := lengthReader{name: "level 2", lengths: lengths}
	out := make([]int32, 1, len(lengths)+1)
	k := 1
	for i, t := range types {
		for range root[i+1] - root[i] {
			if k >= len(level1) {
				return nil, fmt.Errorf("%w: geometry: part offsets exhausted at feature %d", mlt.ErrCorrupt, i)
			}
			parts := level1[k] - level1[k-1]
			k++

			if t == Point || t == MultiPoint {
				out = append(out, out[len(out)-1]+1)
				continue
			}
			for range parts {
				n, err := r.read()
				if err != nil {
					return nil, err
				}
				out = append(out, out[len(out)-1]+n)
			}
		}
	}

	return out, nil
}
