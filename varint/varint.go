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

// Package varint decodes the LEB128 style variable length integers used
// throughout MapLibre Tiles: seven payload bits per byte, least significant
// group first, with the high bit of each byte set while more bytes follow.
//
// Every function takes the buffer and a cursor and returns the cursor just
// past the consumed bytes.
package varint

import (
	"fmt"

	"github.com/maplibre/mlt-go"
)

const (
	// MaxLen32 is the maximum encoded length of a 32-bit value.
	MaxLen32 = 5
	// MaxLen64 is the maximum encoded length of a 64-bit value.
	MaxLen64 = 10
)

// Uint32 decodes one value starting at data[pos].
func Uint32(data []byte, pos int) (uint32, int, error) {
	var v uint32
	for i := 0; i < MaxLen32; i++ {
		if pos+i >= len(data) {
			return 0, pos, fmt.Errorf("%w: varint: truncated at offset %d", mlt.ErrCorrupt, pos+i)
		}
		b := data[pos+i]
		if i == MaxLen32-1 && b > 0x0f {
			return 0, pos, fmt.Errorf("%w: varint: value at offset %d overflows 32 bits", mlt.ErrCorrupt, pos)
		}
		v |= uint32(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, pos + i + 1, nil
		}
	}

	// unreachable: the fifth byte either terminates or fails the overflow check
	return 0, pos, fmt.Errorf("%w: varint: value at offset %d overflows 32 bits", mlt.ErrCorrupt, pos)
}

// Uint64 decodes one value starting at data[pos].
func Uint64(data []byte, pos int) (uint64, int, error) {
	var v uint64
	for i := 0; i < MaxLen64; i++ {
		if pos+i >= len(data) {
			return 0, pos, fmt.Errorf("%w: varint: truncated at offset %d", mlt.ErrCorrupt, pos+i)
		}
		b := data[pos+i]
		if i == MaxLen64-1 && b > 1 {
			return 0, pos, fmt.Errorf("%w: varint: value at offset %d overflows 64 bits", mlt.ErrCorrupt, pos)
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			return v, pos + i + 1, nil
		}
	}

	return 0, pos, fmt.Errorf("%w: varint: value at offset %d overflows 64 bits", mlt.ErrCorrupt, pos)
}

// Uint32s decodes exactly n consecutive values.
func Uint32s(data []byte, pos, n int) ([]uint32, int, error) {
	if n < 0 || n > len(data)-pos {
		// every value takes at least one byte
		return nil, pos, fmt.Errorf("%w: varint: %d values cannot fit in %d bytes",
			mlt.ErrCorrupt, n, max(len(data)-pos, 0))
	}

	out := make([]uint32, n)
	for i := range out {
		var err error
		if out[i], pos, err = Uint32(data, pos); err != nil {
			return nil, pos, err
		}
	}

	return out, pos, nil
}

// Uint64s decodes exactly n consecutive values.
func Uint64s(data []byte, pos, n int) ([]uint64, int, error) {
	if n < 0 || n > len(data)-pos {
		return nil, pos, fmt.Errorf("%w: varint: %d values cannot fit in %d bytes",
			mlt.ErrCorrupt, n, max(len(data)-pos, 0))
	}

	out := make([]uint64, n)
	for i := range out {
		var err error
		if out[i], pos, err = Uint64(data, pos); err != nil {
			return nil, pos, err
		}
	}

	return out, pos, nil
}

// ZigZag32 maps an unsigned zigzag value back to its signed form:
// 0, 1, 2, 3, 4 decode to 0, -1, 1, -2, 2.
func ZigZag32(n uint32) int32 { return int32(n>>1) ^ -int32(n&1) }

// ZigZag64 is the 64-bit form of ZigZag32.
func ZigZag64(n uint64) int64 { return int64(n>>1) ^ -int64(n&1) }
