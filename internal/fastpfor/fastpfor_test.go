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

package fastpfor_test

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/internal/fastpfor"
	"github.com/maplibre/mlt-go/internal/mlttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outliers returns n small values with a sprinkling of wide ones so that
// blocks need exceptions from several width groups.
func outliers(rng *rand.Rand, n int) []uint32 {
	vals := make([]uint32, n)
	for i := range vals {
		switch r := rng.IntN(100); {
		case r < 2:
			vals[i] = rng.Uint32()
		case r < 5:
			vals[i] = 1<<20 + rng.Uint32N(1<<20)
		case r < 8:
			vals[i] = 1<<9 + rng.Uint32N(1<<9)
		default:
			vals[i] = rng.Uint32N(64)
		}
	}

	return vals
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	tests := []struct {
		name string
		vals []uint32
	}{
		{"empty", []uint32{}},
		{"variable byte only", []uint32{0, 1, 127, 128, 16384, 0xffffffff}},
		{"one block", outliers(rng, 256)},
		{"blocks and tail", outliers(rng, 1000)},
		{"all zero", make([]uint32, 512)},
		{"single bit exceptions", func() []uint32 {
			vals := make([]uint32, 256)
			for i := range vals {
				vals[i] = uint32(i % 4)
			}
			vals[17], vals[200] = 4, 7

			return vals
		}()},
		{"full width", func() []uint32 {
			vals := make([]uint32, 256)
			for i := range vals {
				vals[i] = 0xffffffff - uint32(i)
			}

			return vals
		}()},
		{"multiple pages", outliers(rng, 2*fastpfor.PageSize+300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := mlttest.FastPFOR(tt.vals)
			got, err := fastpfor.DecodeWords(words, len(tt.vals))
			require.NoError(t, err)
			assert.Equal(t, tt.vals, got)

			got, err = fastpfor.DecodeBytes(mlttest.FastPFORBytes(tt.vals), len(tt.vals))
			require.NoError(t, err)
			assert.Equal(t, tt.vals, got)
		})
	}
}

func TestDecoderReuse(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	dec := fastpfor.NewDecoder()
	for i := range 5 {
		vals := outliers(rng, 256*(i+1)+i)
		got, err := dec.DecodeWords(mlttest.FastPFOR(vals), len(vals))
		require.NoError(t, err)
		assert.Equal(t, vals, got, "iteration %d", i)
	}
}

func TestExceptionGroupAtInputEnd(t *testing.T) {
	// a single block whose only exception group is the last thing in the
	// stream: the final packed chunk of the group is shorter than a full
	// 32 value block and has to be read through the padded scratch.
	vals := make([]uint32, 256)
	for i := range vals {
		vals[i] = 1
	}
	vals[3] = 1 << 30
	vals[99] = 1<<30 + 5

	words := mlttest.FastPFOR(vals)
	got, err := fastpfor.DecodeWords(words, len(vals))
	require.NoError(t, err)
	assert.Equal(t, vals, got)
}

func TestHandPackedPage(t *testing.T) {
	// one block at bit width 1 holding i&1, exceptions of width 3 at
	// positions 0 and 255, then a variable byte tail of 5 and 300.
	words := []uint32{
		256,
		9,
		0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa,
		0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa,
		5,          // metadata bytes
		0x00040201, // b=1 cExcept=2 maxBits=4 pos=0
		0x000000ff, // pos=255
		1 << 2,     // exception group 3 present
		2,
		5 | 7<<3,
		0x00822c85,
	}

	want := make([]uint32, 258)
	for i := range 256 {
		want[i] = uint32(i & 1)
	}
	want[0] |= 5 << 1
	want[255] |= 7 << 1
	want[256], want[257] = 5, 300

	got, err := fastpfor.DecodeWords(words, len(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.EqualValues(t, 10, got[0])
	assert.EqualValues(t, 15, got[255])

	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}
	got, err = fastpfor.DecodeBytes(buf, len(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBytesToWords(t *testing.T) {
	assert.Equal(t, []uint32{0x01020304, 0x05060000},
		fastpfor.BytesToWords([]byte{1, 2, 3, 4, 5, 6}))
	assert.Empty(t, fastpfor.BytesToWords(nil))
}

func TestCorruptInput(t *testing.T) {
	metaWord := func(b ...byte) uint32 {
		var buf [4]byte
		copy(buf[:], b)

		return binary.LittleEndian.Uint32(buf[:])
	}

	tests := []struct {
		name      string
		words     []uint32
		numValues int
		msg       string
	}{
		{"empty input", nil, 4, "empty input"},
		{"packed length not block aligned", []uint32{100}, 100, "invalid packed length"},
		{"packed length exceeds count", []uint32{512}, 256, "invalid packed length"},
		{"count exceeds capacity", []uint32{0, 0}, 100, "cannot hold"},
		{"missing page", []uint32{256}, 256, "missing page header"},
		{"metadata offset out of range", []uint32{256, 50}, 256, "metadata offset"},
		{"exception width equal to base width",
			[]uint32{256, 1, 4, metaWord(0, 1, 0, 7), 0}, 256, "exception width"},
		{"exception group missing",
			[]uint32{256, 1, 4, metaWord(0, 1, 3, 7), 0}, 256, "exhausts exception group"},
		{"value count mismatch", mlttest.FastPFOR([]uint32{1, 2, 3}), 4, "decoded 3 values"},
		{"too many tail values", mlttest.FastPFOR([]uint32{1, 2, 3}), 2, "more than 2 values"},
		{"unterminated tail", []uint32{0, 0x00000001}, 1, "unterminated"},
		{"tail overflow", []uint32{0, 0x7f7f7f7f, 0x0000007f}, 1, "overflows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fastpfor.DecodeWords(tt.words, tt.numValues)
			require.ErrorIs(t, err, mlt.ErrCorrupt)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func ExampleDecodeBytes() {
	payload := mlttest.FastPFORBytes([]uint32{7, 7, 300})
	vals, err := fastpfor.DecodeBytes(payload, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(vals)
	// Output: [7 7 300]
}
