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
	"fmt"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/metadata"
	"github.com/maplibre/mlt-go/stream"
	"github.com/maplibre/mlt-go/varint"
	"github.com/maplibre/mlt-go/vector"
)

// column decodes the id column or a property column. A column's first
// stream may be a present stream, in which case the data streams hold
// only the non-null values.
type column struct {
	data        []byte
	col         metadata.Column
	numStreams  int
	numFeatures int
	present     vector.Bitmap
}

// absent is the all-null vector of a column that has no streams in this
// tile.
func absent(col metadata.Column, n int) vector.Vector {
	none := vector.Bitmap{}
	switch col.Type {
	case metadata.Boolean:
		return vector.NewConst(col.Name, false, n, none)
	case metadata.Int8, metadata.Int32:
		return vector.NewConst(col.Name, int32(0), n, none)
	case metadata.Uint8, metadata.Uint32:
		return vector.NewConst(col.Name, uint32(0), n, none)
	case metadata.Int64:
		return vector.NewConst(col.Name, int64(0), n, none)
	case metadata.Uint64:
		return vector.NewConst(col.Name, uint64(0), n, none)
	case metadata.Float:
		return vector.NewConst(col.Name, float32(0), n, none)
	case metadata.Double:
		return vector.NewConst(col.Name, float64(0), n, none)
	default:
		return vector.NewConst(col.Name, "", n, none)
	}
}

func decodeColumn(data []byte, pos int, col metadata.Column, numStreams, numFeatures int) (vector.Vector, int, error) {
	if numStreams == 0 {
		return absent(col, numFeatures), pos, nil
	}

	switch col.Type {
	case metadata.Struct:
		return nil, pos, fmt.Errorf("%w: tile: struct column %q", mlt.ErrNotImplemented, col.Name)
	case metadata.Int8, metadata.Uint8:
		return nil, pos, fmt.Errorf("%w: tile: 8-bit column %q", mlt.ErrNotImplemented, col.Name)
	}

	c := column{data: data, col: col, numStreams: numStreams, numFeatures: numFeatures}
	md, pos, err := c.header(pos)
	if err != nil {
		return nil, pos, err
	}

	if col.Type == metadata.String {
		return c.strings(pos)
	}
	if c.numStreams != 1 {
		return nil, pos, fmt.Errorf("%w: tile: %s column %q with %d data streams",
			mlt.ErrCorrupt, col.Type, col.Name, c.numStreams)
	}
	if md, pos, err = stream.DecodeMetadata(data, pos); err != nil {
		return nil, pos, err
	}

	switch col.Type {
	case metadata.Boolean:
		return c.booleans(pos, md)
	case metadata.Int32, metadata.Uint32:
		return c.ints(pos, md)
	case metadata.Int64, metadata.Uint64:
		return c.longs(pos, md)
	case metadata.Float:
		vals, next, err := stream.DecodeFloatStream(data, pos, md)
		return scatter(c, vals, next, err)
	case metadata.Double:
		vals, next, err := stream.DecodeDoubleStream(data, pos, md)
		return scatter(c, vals, next, err)
	}
	return nil, pos, fmt.Errorf("%w: tile: column %q of type %q", mlt.ErrInvalidArgument, col.Name, col.Type)
}

// header consumes the present stream if the column starts with one.
func (c *column) header(pos int) (*stream.Metadata, int, error) {
	md, next, err := stream.DecodeMetadata(c.data, pos)
	if err != nil || md.PhysicalType != stream.Present {
		return md, pos, err
	}

	if md.NumValues != c.numFeatures {
		return nil, pos, fmt.Errorf("%w: tile: column %q present stream covers %d of %d features",
			mlt.ErrCorrupt, c.col.Name, md.NumValues, c.numFeatures)
	}
	if c.present, next, err = stream.DecodeBooleanRLE(c.data, next, md); err != nil {
		return nil, pos, err
	}
	c.numStreams--

	return md, next, nil
}

// count is the number of non-null values the data streams hold.
func (c *column) count() int {
	if c.present == nil {
		return c.numFeatures
	}
	return c.present.Count(c.numFeatures)
}

func scatter[T vector.Scalar](c column, dense []T, next int, err error) (vector.Vector, int, error) {
	if err != nil {
		return nil, next, err
	}
	v, err := vector.Scatter(c.col.Name, dense, c.present, c.numFeatures)
	if err != nil {
		return nil, next, err
	}
	return v, next, nil
}

func (c *column) strings(pos int) (vector.Vector, int, error) {
	vals, next, err := decodeStrings(c.data, pos, c.numStreams, c.count())
	return scatter(*c, vals, next, err)
}

func (c *column) booleans(pos int, md *stream.Metadata) (vector.Vector, int, error) {
	if md.NumValues != c.count() {
		return nil, pos, fmt.Errorf("%w: tile: column %q has %d booleans for %d values",
			mlt.ErrCorrupt, c.col.Name, md.NumValues, c.count())
	}

	bits, next, err := stream.DecodeBooleanRLE(c.data, pos, md)
	if err != nil {
		return nil, pos, err
	}
	vals := make([]bool, md.NumValues)
	for i := range vals {
		vals[i] = vector.Bitmap(bits).Get(i)
	}
	return scatter(*c, vals, next, nil)
}

// dense reports whether the stream carries one value per feature, which
// allows the const and sequence shortcuts.
func (c *column) dense(md *stream.Metadata) bool {
	return c.present == nil && md.NumLogicalValues() == c.numFeatures
}

func (c *column) ints(pos int, md *stream.Metadata) (vector.Vector, int, error) {
	signed := c.col.Type.IsSigned()
	if c.dense(md) {
		switch stream.VectorTypeOf(c.data, pos, md, c.numFeatures) {
		case stream.Const:
			v, next, err := stream.DecodeConstIntStream(c.data, pos, md, signed)
			if err != nil {
				return nil, pos, err
			}
			if signed {
				return vector.NewConst(c.col.Name, v, c.numFeatures, nil), next, nil
			}
			return vector.NewConst(c.col.Name, uint32(v), c.numFeatures, nil), next, nil
		case stream.Sequence:
			base, delta, next, err := stream.DecodeSequenceIntStream(c.data, pos, md)
			if err != nil {
				return nil, pos, err
			}
			if signed {
				return vector.NewSequence(c.col.Name, base, delta, c.numFeatures), next, nil
			}
			return vector.NewSequence(c.col.Name, uint32(base), uint32(delta), c.numFeatures), next, nil
		}
	}

	vals, next, err := stream.DecodeIntStream(c.data, pos, md, signed)
	if err != nil || signed {
		return scatter(*c, vals, next, err)
	}
	unsigned := make([]uint32, len(vals))
	for i, v := range vals {
		unsigned[i] = uint32(v)
	}
	return scatter(*c, unsigned, next, nil)
}

func (c *column) longs(pos int, md *stream.Metadata) (vector.Vector, int, error) {
	signed := c.col.Type.IsSigned()
	if c.dense(md) {
		switch stream.VectorTypeOf(c.data, pos, md, c.numFeatures) {
		case stream.Const:
			v, next, err := stream.DecodeConstLongStream(c.data, pos, md, signed)
			if err != nil {
				return nil, pos, err
			}
			if signed {
				return vector.NewConst(c.col.Name, v, c.numFeatures, nil), next, nil
			}
			return vector.NewConst(c.col.Name, uint64(v), c.numFeatures, nil), next, nil
		case stream.Sequence:
			base, delta, next, err := stream.DecodeSequenceLongStream(c.data, pos, md)
			if err != nil {
				return nil, pos, err
			}
			if signed {
				return vector.NewSequence(c.col.Name, base, delta, c.numFeatures), next, nil
			}
			return vector.NewSequence(c.col.Name, uint64(base), uint64(delta), c.numFeatures), next, nil
		}
	}

	vals, next, err := stream.DecodeLongStream(c.data, pos, md, signed)
	if err != nil || signed {
		return scatter(*c, vals, next, err)
	}
	unsigned := make([]uint64, len(vals))
	for i, v := range vals {
		unsigned[i] = uint64(v)
	}
	return scatter(*c, unsigned, next, nil)
}

// skipColumn advances past a column without decoding it. Struct columns
// hold a shared dictionary followed by a stream count and streams per
// child.
func skipColumn(data []byte, pos int, col metadata.Column, numStreams int) (int, error) {
	if col.Type != metadata.Struct || numStreams == 0 {
		for range numStreams {
			var err error
			if pos, err = stream.Skip(data, pos); err != nil {
				return pos, err
			}
		}
		return pos, nil
	}

	for shared := false; !shared; {
		md, next, err := stream.DecodeMetadata(data, pos)
		if err != nil {
			return pos, err
		}
		if _, pos, err = stream.Payload(data, next, md); err != nil {
			return pos, err
		}
		shared = md.PhysicalType == stream.Data && md.Dictionary() == stream.DictionaryShared
	}

	for range col.Children {
		n, next, err := varint.Uint32(data, pos)
		if err != nil {
			return pos, err
		}
		if pos, err = skipColumn(data, next, metadata.Column{}, int(n)); err != nil {
			return pos, err
		}
	}
	return pos, nil
}
