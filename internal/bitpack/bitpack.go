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

// Package bitpack implements fixed-width bit packing of 32-value blocks.
//
// Values are packed consecutively starting at bit 0 of the first word,
// little-endian within each word, so a value may straddle two adjacent
// words. A block of 32 values packed at width w occupies exactly w words.
package bitpack

//go:generate go run gen.go

import (
	"fmt"
	"math/bits"
)

// BlockSize is the number of values handled by a single Unpack or Pack call.
const BlockSize = 32

func checkWidth(bitWidth int) {
	if bitWidth < 0 || bitWidth > 32 {
		panic(fmt.Sprintf("bitpack: invalid bit width %d", bitWidth))
	}
}

// Unpack decodes 32 values of bitWidth bits from in[inPos:inPos+bitWidth]
// into out[outPos:outPos+32]. A width of 0 writes zeros and reads nothing,
// a width of 32 copies the words verbatim.
//
// Unpack panics if bitWidth is outside 0..32.
func Unpack(in []uint32, inPos int, out []uint32, outPos int, bitWidth int) {
	checkWidth(bitWidth)
	dst := out[outPos : outPos+BlockSize]
	switch bitWidth {
	case 0:
		clear(dst)
	case 32:
		copy(dst, in[inPos:inPos+BlockSize])
	default:
		unpackers[bitWidth](in[inPos:inPos+bitWidth], dst)
	}
}

// UnpackGeneric is the reference shift loop Unpack is specialized from.
// It produces identical output for every width.
func UnpackGeneric(in []uint32, inPos int, out []uint32, outPos int, bitWidth int) {
	checkWidth(bitWidth)
	if bitWidth == 0 {
		clear(out[outPos : outPos+BlockSize])

		return
	}

	mask := uint64(1)<<bitWidth - 1
	for i := range BlockSize {
		bit := i * bitWidth
		word, shift := inPos+bit/32, bit%32
		v := uint64(in[word]) >> shift
		if shift+bitWidth > 32 {
			v |= uint64(in[word+1]) << (32 - shift)
		}
		out[outPos+i] = uint32(v & mask)
	}
}

// Pack is the inverse of Unpack: it writes the low bitWidth bits of
// in[inPos:inPos+32] into out[outPos:outPos+bitWidth]. Higher bits of the
// inputs are ignored.
func Pack(in []uint32, inPos int, out []uint32, outPos int, bitWidth int) {
	checkWidth(bitWidth)
	if bitWidth == 0 {
		return
	}

	dst := out[outPos : outPos+bitWidth]
	clear(dst)
	mask := uint64(1)<<bitWidth - 1
	for i := range BlockSize {
		v := uint64(in[inPos+i]) & mask
		bit := i * bitWidth
		word, shift := bit/32, bit%32
		dst[word] |= uint32(v << shift)
		if shift+bitWidth > 32 {
			dst[word+1] |= uint32(v >> (32 - shift))
		}
	}
}

// Width returns the number of bits needed to represent v.
func Width(v uint32) int { return bits.Len32(v) }
