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

package vector_test

import (
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap(t *testing.T) {
	b := vector.Bitmap{0b1010_0101, 0b0000_0011}
	assert.True(t, b.Get(0))
	assert.False(t, b.Get(1))
	assert.True(t, b.Get(7))
	assert.True(t, b.Get(9))
	assert.False(t, b.Get(10))
	assert.False(t, b.Get(16))
	assert.False(t, b.Get(-1))

	assert.Equal(t, 0, b.Count(0))
	assert.Equal(t, 1, b.Count(1))
	assert.Equal(t, 4, b.Count(8))
	assert.Equal(t, 5, b.Count(9))
	assert.Equal(t, 6, b.Count(16))
	assert.Equal(t, 6, b.Count(100))
}

func TestScatter(t *testing.T) {
	present := vector.Bitmap{0b0000_1101}
	v, err := vector.Scatter("name", []string{"a", "b", "c"}, present, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, v.Len())
	assert.Equal(t, []string{"a", "", "b", "c", ""}, v.Values())
	assert.Equal(t, []any{"a", nil, "b", "c", nil},
		[]any{v.Value(0), v.Value(1), v.Value(2), v.Value(3), v.Value(4)})

	got, ok := v.Get(1)
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.True(t, v.IsNull(4))
	assert.True(t, v.IsNull(5))

	dense, err := vector.Scatter("n", []int32{1, 2}, nil, 2)
	require.NoError(t, err)
	assert.Nil(t, dense.Present())
	assert.False(t, dense.IsNull(1))
}

func TestScatterMismatch(t *testing.T) {
	tests := []struct {
		name    string
		dense   []int32
		present vector.Bitmap
		n       int
	}{
		{"missing values", []int32{1}, vector.Bitmap{0b11}, 2},
		{"extra values", []int32{1, 2, 3}, vector.Bitmap{0b11}, 2},
		{"short bitmap", []int32{1}, vector.Bitmap{0b1}, 9},
		{"dense count", []int32{1}, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vector.Scatter("col", tt.dense, tt.present, tt.n)
			assert.ErrorIs(t, err, mlt.ErrCorrupt)
		})
	}
}

func TestConstAndSequence(t *testing.T) {
	c := vector.NewConst("kind", "road", 3, vector.Bitmap{0b101})
	assert.Equal(t, "road", c.Value(0))
	assert.Nil(t, c.Value(1))
	assert.Equal(t, "road", c.Value(2))
	assert.Equal(t, `kind: const utf8[3] = road`, c.String())

	s := vector.NewSequence[uint64]("id", 10, 2, 4)
	for i, want := range []uint64{10, 12, 14, 16} {
		got, ok := s.Get(i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := s.Get(4)
	assert.False(t, ok)
	assert.Equal(t, arrow.PrimitiveTypes.Uint64, s.DataType())

	wrap := vector.NewSequence[int64]("id", math.MaxInt64, 1, 2)
	got, _ := wrap.Get(1)
	assert.Equal(t, int64(math.MinInt64), got)
}

func TestInt64(t *testing.T) {
	tests := []struct {
		v    vector.Vector
		want int64
		ok   bool
	}{
		{vector.NewFlat("a", []int32{-5}, nil), -5, true},
		{vector.NewFlat("a", []uint32{math.MaxUint32}, nil), math.MaxUint32, true},
		{vector.NewFlat("a", []uint64{7}, nil), 7, true},
		{vector.NewConst("a", int64(-9), 1, nil), -9, true},
		{vector.NewFlat("a", []string{"x"}, nil), 0, false},
		{vector.NewFlat("a", []int64{1}, vector.Bitmap{0}), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, ok := vector.Int64(tt.v, 0)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.DefaultAllocator)
	defer mem.AssertSize(t, 0)

	tests := []struct {
		v    vector.Vector
		want string
	}{
		{vector.NewFlat("b", []bool{true, false}, vector.Bitmap{0b01}), "[true (null)]"},
		{vector.NewFlat("i", []int32{-1, 2}, nil), "[-1 2]"},
		{vector.NewConst("u", uint32(4), 2, nil), "[4 4]"},
		{vector.NewSequence[int64]("l", 5, -1, 3), "[5 4 3]"},
		{vector.NewFlat("f", []float32{1.5}, nil), "[1.5]"},
		{vector.NewFlat("d", []float64{0.25}, nil), "[0.25]"},
		{vector.NewFlat("s", []string{"a", ""}, vector.Bitmap{0b01}), `["a" (null)]`},
	}

	for _, tt := range tests {
		t.Run(tt.v.Name(), func(t *testing.T) {
			arr, err := vector.ToArrow(mem, tt.v)
			require.NoError(t, err)
			defer arr.Release()

			assert.True(t, arrow.TypeEqual(tt.v.DataType(), arr.DataType()))
			assert.Equal(t, tt.want, arr.String())
		})
	}
}

func TestAppendMismatchedBuilder(t *testing.T) {
	b := array.NewInt32Builder(memory.DefaultAllocator)
	defer b.Release()

	err := vector.Append(b, vector.NewFlat("s", []string{"x"}, nil))
	assert.ErrorIs(t, err, mlt.ErrInvalidArgument)
}
