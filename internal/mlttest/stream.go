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

package mlttest

import (
	"encoding/binary"
	"math"

	"github.com/maplibre/mlt-go/stream"
)

// ZigZag32 is the inverse of varint.ZigZag32.
func ZigZag32(v int32) uint32 { return uint32(v<<1) ^ uint32(v>>31) }

// ZigZag64 is the inverse of varint.ZigZag64.
func ZigZag64(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) }

// Varints appends the LEB128 encoding of each value.
func Varints(buf []byte, vals ...uint64) []byte {
	for _, v := range vals {
		buf = binary.AppendUvarint(buf, v)
	}
	return buf
}

func varints32(vals []uint32) []byte {
	var buf []byte
	for _, v := range vals {
		buf = binary.AppendUvarint(buf, uint64(v))
	}
	return buf
}

// EncodeMorton interleaves the low numBits bits of x and y, x taking the
// even bit positions.
func EncodeMorton(x, y uint32, numBits int) uint32 {
	var code uint32
	for i := range numBits {
		code |= (x & (1 << i)) << i
		code |= (y & (1 << i)) << (i + 1)
	}
	return code
}

// Stream describes the header of one encoded stream. NumValues and
// ByteLength are filled in by Encode.
type Stream struct {
	Type       stream.PhysicalType
	Subtype    uint8
	Technique1 stream.LogicalTechnique
	Technique2 stream.LogicalTechnique
	Physical   stream.PhysicalTechnique

	NumBits         int
	CoordinateShift int
	Runs            int
	NumRLEValues    int
}

// Encode writes the header for numValues physical values followed by
// the payload.
func (s Stream) Encode(numValues int, payload []byte) []byte {
	buf := []byte{
		byte(s.Type)<<4 | s.Subtype&0x0f,
		byte(s.Technique1)<<5 | byte(s.Technique2)<<2 | byte(s.Physical),
	}
	buf = Varints(buf, uint64(numValues), uint64(len(payload)))

	switch {
	case s.Technique1 == stream.Morton:
		buf = Varints(buf, uint64(s.NumBits), uint64(s.CoordinateShift))
	case (s.Technique1 == stream.RLE || s.Technique2 == stream.RLE) && s.Physical != stream.PhysicalNone:
		buf = Varints(buf, uint64(s.Runs), uint64(s.NumRLEValues))
	}

	return append(buf, payload...)
}

// Words encodes raw unsigned values with the stream's physical technique.
func (s Stream) Words(vals []uint32) []byte {
	if s.Physical == stream.FastPFOR {
		return s.Encode(len(vals), FastPFORBytes(vals))
	}
	s.Physical = stream.Varint
	return s.Encode(len(vals), varints32(vals))
}

// Plain encodes unsigned values with no logical technique.
func Plain(typ stream.PhysicalType, subtype uint8, vals ...uint32) []byte {
	return Stream{Type: typ, Subtype: subtype, Physical: stream.Varint}.Words(vals)
}

// Signed encodes zigzagged values with no logical technique.
func Signed(typ stream.PhysicalType, subtype uint8, vals ...int32) []byte {
	raw := make([]uint32, len(vals))
	for i, v := range vals {
		raw[i] = ZigZag32(v)
	}
	return Plain(typ, subtype, raw...)
}

// Delta encodes values as zigzagged differences.
func Delta(typ stream.PhysicalType, subtype uint8, vals ...int32) []byte {
	raw := make([]uint32, len(vals))
	var prev int32
	for i, v := range vals {
		raw[i] = ZigZag32(v - prev)
		prev = v
	}
	return Stream{Type: typ, Subtype: subtype, Technique1: stream.Delta, Physical: stream.Varint}.Words(raw)
}

// ComponentwiseDelta encodes interleaved x,y vertices with per axis
// zigzagged differences.
func ComponentwiseDelta(vals ...int32) []byte {
	raw := make([]uint32, len(vals))
	var px, py int32
	for i := 0; i+1 < len(vals); i += 2 {
		raw[i], raw[i+1] = ZigZag32(vals[i]-px), ZigZag32(vals[i+1]-py)
		px, py = vals[i], vals[i+1]
	}
	return Stream{
		Type: stream.Data, Subtype: uint8(stream.DictionaryVertex),
		Technique1: stream.ComponentwiseDelta, Physical: stream.Varint,
	}.Words(raw)
}

// Runs splits vals into run lengths and run values.
func Runs(vals []uint32) (lengths, values []uint32) {
	for i := 0; i < len(vals); {
		j := i
		for j < len(vals) && vals[j] == vals[i] {
			j++
		}
		lengths = append(lengths, uint32(j-i))
		values = append(values, vals[i])
		i = j
	}
	return lengths, values
}

// RLE encodes unsigned values as runs.
func RLE(typ stream.PhysicalType, subtype uint8, vals ...uint32) []byte {
	lengths, values := Runs(vals)
	return Stream{
		Type: typ, Subtype: subtype, Technique1: stream.RLE, Physical: stream.Varint,
		Runs: len(lengths), NumRLEValues: len(vals),
	}.Words(append(lengths, values...))
}

// DeltaRLE encodes values as runs of zigzagged differences.
func DeltaRLE(typ stream.PhysicalType, subtype uint8, vals ...int32) []byte {
	deltas := make([]uint32, len(vals))
	var prev int32
	for i, v := range vals {
		deltas[i] = ZigZag32(v - prev)
		prev = v
	}
	lengths, values := Runs(deltas)
	return Stream{
		Type: typ, Subtype: subtype, Technique1: stream.Delta, Technique2: stream.RLE,
		Physical: stream.Varint, Runs: len(lengths), NumRLEValues: len(vals),
	}.Words(append(lengths, values...))
}

// Lengths encodes a LENGTH stream of the given kind.
func Lengths(kind stream.LengthType, vals ...uint32) []byte {
	return Plain(stream.Length, uint8(kind), vals...)
}

// MortonVertices encodes x,y pairs as delta coded Morton codes.
func MortonVertices(numBits, shift int, xy ...int32) []byte {
	codes := make([]uint32, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		codes = append(codes, EncodeMorton(uint32(xy[i]+int32(shift)), uint32(xy[i+1]+int32(shift)), numBits))
	}
	deltas := make([]uint32, len(codes))
	var prev uint32
	for i, c := range codes {
		deltas[i] = c - prev
		prev = c
	}
	return Stream{
		Type: stream.Data, Subtype: uint8(stream.DictionaryMorton),
		Technique1: stream.Morton, Technique2: stream.Delta, Physical: stream.Varint,
		NumBits: numBits, CoordinateShift: shift,
	}.Words(deltas)
}

// ByteRLE encodes bytes in ORC byte run length encoding.
func ByteRLE(data []byte) []byte {
	var out []byte
	for i := 0; i < len(data); {
		run := 1
		for i+run < len(data) && data[i+run] == data[i] && run < 130 {
			run++
		}
		if run >= 3 {
			out = append(out, byte(run-3), data[i])
			i += run
			continue
		}

		j := i
		for j < len(data) && j-i < 128 {
			if j+2 < len(data) && data[j] == data[j+1] && data[j] == data[j+2] {
				break
			}
			j++
		}
		out = append(out, byte(256-(j-i)))
		out = append(out, data[i:j]...)
		i = j
	}
	return out
}

// Bits packs booleans least significant bit first.
func Bits(vals ...bool) []byte {
	out := make([]byte, (len(vals)+7)/8)
	for i, v := range vals {
		if v {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// Booleans encodes a boolean stream of the given type.
func Booleans(typ stream.PhysicalType, vals ...bool) []byte {
	return Stream{Type: typ, Technique1: stream.RLE}.Encode(len(vals), ByteRLE(Bits(vals...)))
}

// Floats encodes a little-endian float32 DATA stream.
func Floats(vals ...float32) []byte {
	buf := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return Stream{Type: stream.Data}.Encode(len(vals), buf)
}

// Doubles encodes a little-endian float64 DATA stream.
func Doubles(vals ...float64) []byte {
	buf := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return Stream{Type: stream.Data}.Encode(len(vals), buf)
}

// Longs encodes signed 64-bit values with no logical technique.
func Longs(typ stream.PhysicalType, signed bool, vals ...int64) []byte {
	raw := make([]uint64, len(vals))
	for i, v := range vals {
		if signed {
			raw[i] = ZigZag64(v)
		} else {
			raw[i] = uint64(v)
		}
	}
	return Stream{Type: typ, Physical: stream.Varint}.Encode(len(vals), Varints(nil, raw...))
}
