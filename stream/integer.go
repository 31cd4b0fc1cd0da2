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

package stream

import (
	"fmt"
	"sync"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/internal/fastpfor"
	"github.com/maplibre/mlt-go/varint"
)

var decoders = sync.Pool{New: func() any { return fastpfor.NewDecoder() }}

func payloadEnd(data []byte, pos int, m *Metadata) (int, error) {
	end := pos + m.ByteLength
	if pos < 0 || m.ByteLength < 0 || end > len(data) {
		return pos, fmt.Errorf("%w: stream: %s payload at offset %d overruns %d bytes",
			mlt.ErrCorrupt, m.PhysicalType, pos, len(data))
	}
	return end, nil
}

// Payload returns the raw payload bytes of a stream.
func Payload(data []byte, pos int, m *Metadata) ([]byte, int, error) {
	end, err := payloadEnd(data, pos, m)
	if err != nil {
		return nil, pos, err
	}
	return data[pos:end], end, nil
}

func decodePhysical(data []byte, pos int, m *Metadata) ([]uint32, int, error) {
	end, err := payloadEnd(data, pos, m)
	if err != nil {
		return nil, pos, err
	}

	switch m.PhysicalTechnique {
	case Varint:
		vals, next, err := varint.Uint32s(data[:end], pos, m.NumValues)
		if err != nil {
			return nil, pos, err
		}
		if next != end {
			return nil, pos, fmt.Errorf("%w: stream: varint payload used %d of %d bytes",
				mlt.ErrCorrupt, next-pos, m.ByteLength)
		}
		return vals, end, nil
	case FastPFOR:
		d := decoders.Get().(*fastpfor.Decoder)
		defer decoders.Put(d)

		vals, err := d.DecodeBytes(data[pos:end], m.NumValues)
		if err != nil {
			return nil, pos, err
		}
		return vals, end, nil
	case ALP:
		return nil, pos, fmt.Errorf("%w: stream: physical technique %s", mlt.ErrNotImplemented, m.PhysicalTechnique)
	}

	return nil, pos, fmt.Errorf("%w: stream: integer %s stream without physical encoding",
		mlt.ErrCorrupt, m.PhysicalType)
}

func decodePhysicalLong(data []byte, pos int, m *Metadata) ([]uint64, int, error) {
	end, err := payloadEnd(data, pos, m)
	if err != nil {
		return nil, pos, err
	}

	switch m.PhysicalTechnique {
	case Varint:
		vals, next, err := varint.Uint64s(data[:end], pos, m.NumValues)
		if err != nil {
			return nil, pos, err
		}
		if next != end {
			return nil, pos, fmt.Errorf("%w: stream: varint payload used %d of %d bytes",
				mlt.ErrCorrupt, next-pos, m.ByteLength)
		}
		return vals, end, nil
	case FastPFOR, ALP:
		return nil, pos, fmt.Errorf("%w: stream: 64-bit values with %s", mlt.ErrNotImplemented, m.PhysicalTechnique)
	}

	return nil, pos, fmt.Errorf("%w: stream: integer %s stream without physical encoding",
		mlt.ErrCorrupt, m.PhysicalType)
}

func unsupported(m *Metadata) error {
	return fmt.Errorf("%w: stream: unsupported logical techniques %s+%s",
		mlt.ErrCorrupt, m.Technique1, m.Technique2)
}

// DecodeIntStream decodes a 32-bit integer stream whose payload starts at
// data[pos]. Values of unsigned streams are returned with their bit
// pattern preserved. The returned offset is pos plus the payload length.
func DecodeIntStream(data []byte, pos int, m *Metadata, signed bool) ([]int32, int, error) {
	raw, next, err := decodePhysical(data, pos, m)
	if err != nil {
		return nil, pos, err
	}

	vals, err := decodeInt32(raw, m, signed)
	if err != nil {
		return nil, pos, err
	}
	return vals, next, nil
}

func decodeInt32(raw []uint32, m *Metadata, signed bool) ([]int32, error) {
	switch m.Technique1 {
	case LogicalNone:
		if m.Technique2 != LogicalNone {
			return nil, unsupported(m)
		}
		if signed {
			return zigZag32(raw), nil
		}
		return reinterpret32(raw), nil
	case Delta:
		switch m.Technique2 {
		case LogicalNone:
		case RLE:
			var err error
			if raw, err = expandRLE(raw, m.Runs, m.NumRLEValues); err != nil {
				return nil, err
			}
		default:
			return nil, unsupported(m)
		}
		return zigZagDelta32(raw), nil
	case RLE:
		if m.Technique2 != LogicalNone {
			return nil, unsupported(m)
		}
		vals, err := expandRLE(raw, m.Runs, m.NumRLEValues)
		if err != nil {
			return nil, err
		}
		if signed {
			return zigZag32(vals), nil
		}
		return reinterpret32(vals), nil
	case Morton:
		codes, err := mortonCodes(raw, m)
		if err != nil {
			return nil, err
		}
		out := make([]int32, 0, 2*len(codes))
		for _, c := range codes {
			x, y := DecodeMorton(c, m.NumBits, m.CoordinateShift)
			out = append(out, x, y)
		}
		return out, nil
	case ComponentwiseDelta:
		if m.Technique2 != LogicalNone {
			return nil, unsupported(m)
		}
		if len(raw)%2 != 0 {
			return nil, fmt.Errorf("%w: stream: componentwise delta over %d values", mlt.ErrCorrupt, len(raw))
		}
		return componentwiseDelta(raw), nil
	case PseudoDecimal:
		return nil, fmt.Errorf("%w: stream: logical technique %s", mlt.ErrNotImplemented, m.Technique1)
	}

	return nil, unsupported(m)
}

// DecodeLongStream decodes a 64-bit integer stream. Only the NONE, DELTA
// and RLE logical techniques apply to 64-bit values.
func DecodeLongStream(data []byte, pos int, m *Metadata, signed bool) ([]int64, int, error) {
	raw, next, err := decodePhysicalLong(data, pos, m)
	if err != nil {
		return nil, pos, err
	}

	vals, err := decodeInt64(raw, m, signed)
	if err != nil {
		return nil, pos, err
	}
	return vals, next, nil
}

func decodeInt64(raw []uint64, m *Metadata, signed bool) ([]int64, error) {
	switch m.Technique1 {
	case LogicalNone:
		if m.Technique2 != LogicalNone {
			return nil, unsupported(m)
		}
		if signed {
			return zigZag64(raw), nil
		}
		return reinterpret64(raw), nil
	case Delta:
		switch m.Technique2 {
		case LogicalNone:
		case RLE:
			var err error
			if raw, err = expandRLE(raw, m.Runs, m.NumRLEValues); err != nil {
				return nil, err
			}
		default:
			return nil, unsupported(m)
		}
		return zigZagDelta64(raw), nil
	case RLE:
		if m.Technique2 != LogicalNone {
			return nil, unsupported(m)
		}
		vals, err := expandRLE(raw, m.Runs, m.NumRLEValues)
		if err != nil {
			return nil, err
		}
		if signed {
			return zigZag64(vals), nil
		}
		return reinterpret64(vals), nil
	case PseudoDecimal:
		return nil, fmt.Errorf("%w: stream: logical technique %s", mlt.ErrNotImplemented, m.Technique1)
	}

	return nil, unsupported(m)
}

// DecodeMortonCodes decodes the Morton codes of a vertex stream without
// splitting them into coordinates.
func DecodeMortonCodes(data []byte, pos int, m *Metadata) ([]uint32, int, error) {
	if !m.IsMorton() {
		return nil, pos, fmt.Errorf("%w: stream: %s stream is not morton encoded", mlt.ErrCorrupt, m.Technique1)
	}

	raw, next, err := decodePhysical(data, pos, m)
	if err != nil {
		return nil, pos, err
	}
	codes, err := mortonCodes(raw, m)
	if err != nil {
		return nil, pos, err
	}
	return codes, next, nil
}

func mortonCodes(raw []uint32, m *Metadata) ([]uint32, error) {
	switch m.Technique2 {
	case LogicalNone:
	case Delta:
		// sorted codes, so the deltas carry no zigzag
		var acc uint32
		for i, v := range raw {
			acc += v
			raw[i] = acc
		}
	default:
		return nil, unsupported(m)
	}
	return raw, nil
}

// DecodeLengthStreamToOffsets decodes a length stream into an offset
// buffer: NumLogicalValues+1 entries starting at zero, each the running
// total of the lengths before it.
func DecodeLengthStreamToOffsets(data []byte, pos int, m *Metadata) ([]int32, int, error) {
	raw, next, err := decodePhysical(data, pos, m)
	if err != nil {
		return nil, pos, err
	}

	var out []int32
	switch {
	case m.Technique1 == Delta && m.Technique2 == LogicalNone:
		// lengths are themselves delta coded
		out = make([]int32, len(raw)+1)
		var delta int32
		for i, v := range raw {
			delta += varint.ZigZag32(v)
			out[i+1] = out[i] + delta
		}
	case m.Technique1 == RLE && m.Technique2 == LogicalNone:
		lengths, err := expandRLE(raw, m.Runs, m.NumRLEValues)
		if err != nil {
			return nil, pos, err
		}
		out = prefixSum(lengths)
	case m.Technique1 == LogicalNone && m.Technique2 == LogicalNone:
		out = prefixSum(raw)
	case m.Technique1 == Delta && m.Technique2 == RLE:
		deltas, err := expandRLE(raw, m.Runs, m.NumRLEValues)
		if err != nil {
			return nil, pos, err
		}
		out = make([]int32, len(deltas)+1)
		var length int32
		for i, v := range deltas {
			length += varint.ZigZag32(v)
			out[i+1] = out[i] + length
		}
	default:
		return nil, pos, unsupported(m)
	}

	return out, next, nil
}

func prefixSum(lengths []uint32) []int32 {
	out := make([]int32, len(lengths)+1)
	for i, v := range lengths {
		out[i+1] = out[i] + int32(v)
	}
	return out
}
