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

package stream_test

import (
	"math"
	"testing"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/internal/mlttest"
	"github.com/maplibre/mlt-go/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeInts(t *testing.T, buf []byte, signed bool) []int32 {
	t.Helper()

	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	vals, next, err := stream.DecodeIntStream(buf, pos, md, signed)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Len(t, vals, md.NumLogicalValues())

	return vals
}

func TestDecodeMetadata(t *testing.T) {
	buf := mlttest.Stream{
		Type: stream.Length, Subtype: uint8(stream.LengthRings),
		Technique1: stream.Delta, Technique2: stream.RLE, Physical: stream.Varint,
		Runs: 3, NumRLEValues: 300,
	}.Encode(6, make([]byte, 200))

	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf)-200, pos)
	assert.Equal(t, stream.Length, md.PhysicalType)
	assert.Equal(t, stream.LengthRings, md.LengthKind())
	assert.Equal(t, stream.Delta, md.Technique1)
	assert.Equal(t, stream.RLE, md.Technique2)
	assert.Equal(t, stream.Varint, md.PhysicalTechnique)
	assert.Equal(t, 6, md.NumValues)
	assert.Equal(t, 200, md.ByteLength)
	assert.Equal(t, 3, md.Runs)
	assert.Equal(t, 300, md.NumRLEValues)
	assert.True(t, md.IsRLE())
	assert.Equal(t, 300, md.NumLogicalValues())
	assert.Equal(t, "LENGTH/RINGS DELTA+RLE VARINT values=6 bytes=200", md.String())

	next, err := stream.Skip(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
}

func TestDecodeMetadataMorton(t *testing.T) {
	buf := mlttest.MortonVertices(8, 4, 1, 2, 3, 4)
	md, _, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	assert.True(t, md.IsMorton())
	assert.False(t, md.IsRLE())
	assert.Equal(t, stream.DictionaryMorton, md.Dictionary())
	assert.Equal(t, 8, md.NumBits)
	assert.Equal(t, 4, md.CoordinateShift)
	assert.Equal(t, 4, md.NumLogicalValues())
}

func TestDecodeMetadataPresentIgnoresRLEExtras(t *testing.T) {
	buf := mlttest.Booleans(stream.Present, true, false, true)
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, stream.Present, md.PhysicalType)
	assert.False(t, md.IsRLE())
	assert.Equal(t, 3, md.NumValues)
	assert.Equal(t, 4, pos)
}

func TestDecodeMetadataCorrupt(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"one byte", []byte{0x10}},
		{"unknown physical type", []byte{0x40, 0x02, 0, 0}},
		{"unknown length subtype", []byte{0x37, 0x02, 0, 0}},
		{"unknown logical technique", []byte{0x10, 0xc2, 0, 0}},
		{"missing byte length", []byte{0x10, 0x02, 0x01}},
		{"payload overruns", []byte{0x10, 0x02, 0x01, 0x05, 0x01}},
		{"morton too wide", mlttest.Stream{Type: stream.Data, Technique1: stream.Morton, NumBits: 17}.Encode(0, nil)},
		{"rle extras missing", []byte{0x10, 0x62, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := stream.DecodeMetadata(tt.buf, 0)
			assert.ErrorIs(t, err, mlt.ErrCorrupt)
		})
	}
}

func TestDecodeIntStream(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		signed bool
		want   []int32
	}{
		{"plain unsigned", mlttest.Plain(stream.Data, 0, 1, 300, 7), false, []int32{1, 300, 7}},
		{"plain signed", mlttest.Signed(stream.Data, 0, -1, 5, -300), true, []int32{-1, 5, -300}},
		{"delta", mlttest.Delta(stream.Data, 0, 10, 12, 9, 9, -4), true, []int32{10, 12, 9, 9, -4}},
		{"delta rle", mlttest.DeltaRLE(stream.Data, 0, 1, 2, 3, 4, 10, 16), true, []int32{1, 2, 3, 4, 10, 16}},
		{"rle unsigned", mlttest.RLE(stream.Data, 0, 4, 4, 4, 9), false, []int32{4, 4, 4, 9}},
		{"rle signed", mlttest.RLE(stream.Data, 0, 3, 3, 4), true, []int32{-2, -2, 2}},
		{"componentwise delta", mlttest.ComponentwiseDelta(10, 20, 12, 18, -5, 0), true,
			[]int32{10, 20, 12, 18, -5, 0}},
		{"fastpfor", mlttest.Stream{Type: stream.Data, Physical: stream.FastPFOR}.Words(
			[]uint32{1, 2, 3, 1 << 20}), false, []int32{1, 2, 3, 1 << 20}},
		{"unsigned keeps bit pattern", mlttest.Plain(stream.Data, 0, math.MaxUint32), false, []int32{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeInts(t, tt.buf, tt.signed))
		})
	}
}

func TestDecodeRLERuns(t *testing.T) {
	buf := mlttest.Stream{
		Type: stream.Data, Technique1: stream.RLE, Physical: stream.Varint,
		Runs: 2, NumRLEValues: 5,
	}.Words([]uint32{3, 2, 7, 9})
	assert.Equal(t, []int32{7, 7, 7, 9, 9}, decodeInts(t, buf, false))
}

func TestZeroDeltas(t *testing.T) {
	buf := mlttest.Stream{Type: stream.Data, Technique1: stream.Delta, Physical: stream.Varint}.
		Words(make([]uint32, 50))
	assert.Equal(t, make([]int32, 50), decodeInts(t, buf, true))

	buf = mlttest.Stream{Type: stream.Data, Technique1: stream.Delta, Physical: stream.FastPFOR}.
		Words(make([]uint32, 700))
	assert.Equal(t, make([]int32, 700), decodeInts(t, buf, true))
}

func TestMorton(t *testing.T) {
	for _, numBits := range []int{1, 4, 9, 16} {
		for _, shift := range []int{0, 3, 1000} {
			limit := int32(1)<<numBits - 1
			xy := []int32{0, 0, limit, 0, 0, limit, limit / 2, limit / 3, limit, limit}
			for i := range xy {
				xy[i] -= int32(shift)
			}

			buf := mlttest.MortonVertices(numBits, shift, xy...)
			assert.Equal(t, xy, decodeInts(t, buf, false), "bits=%d shift=%d", numBits, shift)
		}
	}

	x, y := stream.DecodeMorton(mlttest.EncodeMorton(0b1011, 0b0110, 4), 4, 0)
	assert.Equal(t, int32(0b1011), x)
	assert.Equal(t, int32(0b0110), y)
}

func TestDecodeMortonCodes(t *testing.T) {
	buf := mlttest.MortonVertices(4, 0, 1, 1, 2, 3)
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)

	codes, next, err := stream.DecodeMortonCodes(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Equal(t, []uint32{mlttest.EncodeMorton(1, 1, 4), mlttest.EncodeMorton(2, 3, 4)}, codes)

	plain := mlttest.Plain(stream.Data, 0, 1)
	md, pos, err = stream.DecodeMetadata(plain, 0)
	require.NoError(t, err)
	_, _, err = stream.DecodeMortonCodes(plain, pos, md)
	assert.ErrorIs(t, err, mlt.ErrCorrupt)
}

func TestDecodeLongStream(t *testing.T) {
	vals := []int64{0, -1, math.MinInt64, math.MaxInt64, 1 << 40}
	buf := mlttest.Longs(stream.Data, true, vals...)
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)

	got, next, err := stream.DecodeLongStream(buf, pos, md, true)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Equal(t, vals, got)
}

func TestDecodeLongStreamWrapsDelta(t *testing.T) {
	// MaxInt64 followed by a delta of one wraps to MinInt64
	raw := []uint64{mlttest.ZigZag64(math.MaxInt64), mlttest.ZigZag64(1), mlttest.ZigZag64(-1)}
	buf := mlttest.Stream{Type: stream.Data, Technique1: stream.Delta, Physical: stream.Varint}.
		Encode(len(raw), mlttest.Varints(nil, raw...))
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)

	got, _, err := stream.DecodeLongStream(buf, pos, md, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MaxInt64, math.MinInt64, math.MaxInt64}, got)
}

func TestDecodeLongStreamRejectsFastPFOR(t *testing.T) {
	buf := mlttest.Stream{Type: stream.Data, Physical: stream.FastPFOR}.Words([]uint32{1})
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)

	_, _, err = stream.DecodeLongStream(buf, pos, md, false)
	assert.ErrorIs(t, err, mlt.ErrNotImplemented)
}

func TestDecodeIntStreamErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		err  error
	}{
		{"physical none", mlttest.Stream{Type: stream.Data}.Encode(1, []byte{1}), mlt.ErrCorrupt},
		{"alp", mlttest.Stream{Type: stream.Data, Physical: stream.ALP}.Encode(1, []byte{1}), mlt.ErrNotImplemented},
		{"pde", mlttest.Stream{Type: stream.Data, Technique1: stream.PseudoDecimal, Physical: stream.Varint}.
			Words([]uint32{1}), mlt.ErrNotImplemented},
		{"byte length too long", mlttest.Stream{Type: stream.Data, Physical: stream.Varint}.
			Encode(1, []byte{1, 0}), mlt.ErrCorrupt},
		{"byte length too short", mlttest.Stream{Type: stream.Data, Physical: stream.Varint}.
			Encode(2, []byte{1}), mlt.ErrCorrupt},
		{"rle runs mismatch", mlttest.Stream{
			Type: stream.Data, Technique1: stream.RLE, Physical: stream.Varint, Runs: 2, NumRLEValues: 9,
		}.Words([]uint32{3, 2, 7, 9}), mlt.ErrCorrupt},
		{"rle odd values", mlttest.Stream{
			Type: stream.Data, Technique1: stream.RLE, Physical: stream.Varint, Runs: 2, NumRLEValues: 5,
		}.Words([]uint32{3, 2, 7}), mlt.ErrCorrupt},
		{"bad technique pair", mlttest.Stream{
			Type: stream.Data, Technique1: stream.RLE, Technique2: stream.Delta, Physical: stream.Varint,
			Runs: 1, NumRLEValues: 1,
		}.Words([]uint32{1, 1}), mlt.ErrCorrupt},
		{"componentwise odd length", mlttest.Stream{
			Type: stream.Data, Technique1: stream.ComponentwiseDelta, Physical: stream.Varint,
		}.Words([]uint32{1, 2, 3}), mlt.ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, pos, err := stream.DecodeMetadata(tt.buf, 0)
			require.NoError(t, err)
			_, next, err := stream.DecodeIntStream(tt.buf, pos, md, true)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, pos, next)
		})
	}
}

func TestDecodeLengthStreamToOffsets(t *testing.T) {
	lengths := []uint32{2, 2, 2, 5, 0, 1}
	want := []int32{0, 2, 4, 6, 11, 11, 12}

	deltaOfDelta := func() []byte {
		raw := make([]uint32, len(lengths))
		var prev int32
		for i, l := range lengths {
			raw[i] = mlttest.ZigZag32(int32(l) - prev)
			prev = int32(l)
		}
		return mlttest.Stream{Type: stream.Length, Technique1: stream.Delta, Physical: stream.Varint}.Words(raw)
	}

	tests := []struct {
		name string
		buf  []byte
	}{
		{"plain", mlttest.Lengths(stream.LengthParts, lengths...)},
		{"rle", mlttest.RLE(stream.Length, uint8(stream.LengthParts), lengths...)},
		{"delta", deltaOfDelta()},
		{"delta rle", mlttest.DeltaRLE(stream.Length, uint8(stream.LengthParts), 2, 2, 2, 5, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, pos, err := stream.DecodeMetadata(tt.buf, 0)
			require.NoError(t, err)
			got, next, err := stream.DecodeLengthStreamToOffsets(tt.buf, pos, md)
			require.NoError(t, err)
			assert.Equal(t, len(tt.buf), next)
			assert.Equal(t, want, got)
		})
	}
}

func TestVectorTypeOf(t *testing.T) {
	tests := []struct {
		name        string
		buf         []byte
		numFeatures int
		want        stream.VectorType
	}{
		{"single rle run", mlttest.RLE(stream.Data, 0, 5, 5, 5), 3, stream.Const},
		{"two rle runs", mlttest.RLE(stream.Data, 0, 5, 5, 6), 3, stream.Flat},
		{"single plain value", mlttest.Plain(stream.Data, 0, 5), 1, stream.Const},
		{"plain values", mlttest.Plain(stream.Data, 0, 5, 6), 2, stream.Flat},
		{"delta rle one run", mlttest.DeltaRLE(stream.Data, 0, 3, 6, 9, 12), 4, stream.Sequence},
		{"delta rle two unit runs", mlttest.Stream{
			Type: stream.Data, Technique1: stream.Delta, Technique2: stream.RLE, Physical: stream.Varint,
			Runs: 2, NumRLEValues: 4,
		}.Words([]uint32{1, 3, 2, 2}), 4, stream.Sequence},
		{"delta rle two other runs", mlttest.DeltaRLE(stream.Data, 0, 5, 6, 7, 8), 4, stream.Flat},
		{"delta rle wrong count", mlttest.DeltaRLE(stream.Data, 0, 3, 6, 9, 12), 5, stream.Flat},
		{"delta rle many runs", mlttest.DeltaRLE(stream.Data, 0, 1, 2, 4, 8), 4, stream.Flat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, pos, err := stream.DecodeMetadata(tt.buf, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stream.VectorTypeOf(tt.buf, pos, md, tt.numFeatures))
		})
	}
}

func TestConstAndSequence(t *testing.T) {
	buf := mlttest.RLE(stream.Data, 0, 7, 7, 7)
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	v, next, err := stream.DecodeConstIntStream(buf, pos, md, true)
	require.NoError(t, err)
	assert.Equal(t, int32(-4), v)
	assert.Equal(t, len(buf), next)

	buf = mlttest.Plain(stream.Data, 0, 42)
	md, pos, err = stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	v, _, err = stream.DecodeConstIntStream(buf, pos, md, false)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	buf = mlttest.DeltaRLE(stream.Data, 0, 3, 6, 9, 12)
	md, pos, err = stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	base, delta, next, err := stream.DecodeSequenceIntStream(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, int32(3), base)
	assert.Equal(t, int32(3), delta)
	assert.Equal(t, len(buf), next)

	buf = mlttest.DeltaRLE(stream.Data, 0, 1, 2, 3, 4)
	md, pos, err = stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	base, delta, _, err = stream.DecodeSequenceIntStream(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, int32(1), base)
	assert.Equal(t, int32(1), delta)

	raw := []uint64{3, mlttest.ZigZag64(1 << 40)}
	buf = mlttest.Stream{
		Type: stream.Data, Technique1: stream.Delta, Technique2: stream.RLE, Physical: stream.Varint,
		Runs: 1, NumRLEValues: 3,
	}.Encode(2, mlttest.Varints(nil, raw...))
	md, pos, err = stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	lbase, ldelta, _, err := stream.DecodeSequenceLongStream(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), lbase)
	assert.Equal(t, int64(1<<40), ldelta)

	buf = mlttest.Longs(stream.Data, true, -9)
	md, pos, err = stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	lv, _, err := stream.DecodeConstLongStream(buf, pos, md, true)
	require.NoError(t, err)
	assert.Equal(t, int64(-9), lv)
}

func TestByteRLE(t *testing.T) {
	data := []byte{1, 1, 1, 1, 1, 2, 3, 4, 4, 4, 9}
	enc := mlttest.ByteRLE(data)

	got, err := stream.DecodeByteRLE(enc, 0, len(enc), len(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// literal of two then run of five zeros
	got, err = stream.DecodeByteRLE([]byte{0xfe, 7, 8, 0x02, 0}, 0, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 8, 0, 0, 0, 0, 0}, got)

	_, err = stream.DecodeByteRLE([]byte{0xfe, 7}, 0, 2, 2)
	assert.ErrorIs(t, err, mlt.ErrCorrupt)
	_, err = stream.DecodeByteRLE([]byte{0x00}, 0, 1, 3)
	assert.ErrorIs(t, err, mlt.ErrCorrupt)
	_, err = stream.DecodeByteRLE([]byte{0x00, 1, 5}, 0, 3, 3)
	assert.ErrorIs(t, err, mlt.ErrCorrupt)
}

func TestDecodeBooleanRLE(t *testing.T) {
	vals := make([]bool, 70)
	for i := range vals {
		vals[i] = i%3 == 0 || i > 40
	}
	buf := mlttest.Booleans(stream.Present, vals...)
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)

	bits, next, err := stream.DecodeBooleanRLE(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Equal(t, mlttest.Bits(vals...), bits)
}

func TestFloatStreams(t *testing.T) {
	buf := mlttest.Floats(1.5, -2, float32(math.Inf(1)))
	md, pos, err := stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	floats, next, err := stream.DecodeFloatStream(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Equal(t, []float32{1.5, -2, float32(math.Inf(1))}, floats)

	buf = mlttest.Doubles(math.Pi, -0.25)
	md, pos, err = stream.DecodeMetadata(buf, 0)
	require.NoError(t, err)
	doubles, _, err := stream.DecodeDoubleStream(buf, pos, md)
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Pi, -0.25}, doubles)

	_, _, err = stream.DecodeFloatStream(buf, pos, md)
	assert.ErrorIs(t, err, mlt.ErrCorrupt)
}
