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

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/varint"
)

// expandRLE expands runs run lengths followed by runs values into
// numValues values.
func expandRLE[T uint32 | uint64](raw []T, runs, numValues int) ([]T, error) {
	if runs < 0 || 2*runs != len(raw) {
		return nil, fmt.Errorf("%w: stream: %d values cannot hold %d runs", mlt.ErrCorrupt, len(raw), runs)
	}

	var total uint64
	for _, n := range raw[:runs] {
		total += uint64(n)
		if total > uint64(numValues) {
			break
		}
	}
	if total != uint64(numValues) {
		return nil, fmt.Errorf("%w: stream: runs expand to more or fewer than %d values", mlt.ErrCorrupt, numValues)
	}

	out := make([]T, 0, numValues)
	for i, n := range raw[:runs] {
		v := raw[runs+i]
		for j := T(0); j < n; j++ {
			out = append(out, v)
		}
	}
	return out, nil
}

func reinterpret32(raw []uint32) []int32 {
	out := make([]int32, len(raw))
	for i, v := range raw {
		out[i] = int32(v)
	}
	return out
}

func reinterpret64(raw []uint64) []int64 {
	out := make([]int64, len(raw))
	for i, v := range raw {
		out[i] = int64(v)
	}
	return out
}

func zigZag32(raw []uint32) []int32 {
	out := make([]int32, len(raw))
	for i, v := range raw {
		out[i] = varint.ZigZag32(v)
	}
	return out
}

func zigZag64(raw []uint64) []int64 {
	out := make([]int64, len(raw))
	for i, v := range raw {
		out[i] = varint.ZigZag64(v)
	}
	return out
}

func zigZagDelta32(raw []uint32) []int32 {
	out := make([]int32, len(raw))
	var prev int32
	for i, v := range raw {
		prev += varint.ZigZag32(v)
		out[i] = prev
	}
	return out
}

func zigZagDelta64(raw []uint64) []int64 {
	out := make([]int64, len(raw))
	var prev int64
	for i, v := range raw {
		prev += varint.ZigZag64(v)
		out[i] = prev
	}
	return out
}

// componentwiseDelta undoes per axis delta coding of interleaved x,y values.
func componentwiseDelta(raw []uint32) []int32 {
	out := make([]int32, len(raw))
	var x, y int32
	for i := 0; i+1 < len(raw); i += 2 {
		x += varint.ZigZag32(raw[i])
		y += varint.ZigZag32(raw[i+1])
		out[i], out[i+1] = x, y
	}
	return out
}

func deinterleave(code uint32, numBits int) int32 {
	var c uint32
	for i := range numBits {
		c |= (code & (1 << (2 * i))) >> i
	}
	return int32(c)
}

// DecodeMorton splits a Z-order code into its x and y coordinates, each
// numBits wide, and removes the coordinate shift applied by the encoder.
func DecodeMorton(code uint32, numBits, coordinateShift int) (x, y int32) {
	x = deinterleave(code, numBits) - int32(coordinateShift)
	y = deinterleave(code>>1, numBits) - int32(coordinateShift)
	return x, y
}
