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

// Package mlttest builds encoded MapLibre Tile fixtures for tests. It
// implements just enough of the encoder direction to produce the streams
// the decoder consumes, and is not meant for production tiles.
package mlttest

import (
	"encoding/binary"

	"github.com/maplibre/mlt-go/internal/bitpack"
	"github.com/maplibre/mlt-go/internal/fastpfor"
)

const exceptionOverhead = 8

// FastPFOR compresses values into the composed FastPFOR + VariableByte word
// layout read by fastpfor.DecodeWords.
func FastPFOR(values []uint32) []uint32 {
	return fastPFORPaged(values, fastpfor.PageSize)
}

func fastPFORPaged(values []uint32, pageSize int) []uint32 {
	if len(values) == 0 {
		return nil
	}

	aligned := len(values) / fastpfor.BlockSize * fastpfor.BlockSize
	out := []uint32{uint32(aligned)}
	for pos := 0; pos < aligned; pos += pageSize {
		out = encodePage(values[pos:min(pos+pageSize, aligned)], out)
	}

	return appendVariableByte(out, values[aligned:])
}

// FastPFORBytes is FastPFOR serialized as big-endian bytes, the layout of
// a FAST_PFOR stream payload.
func FastPFORBytes(values []uint32) []byte {
	words := FastPFOR(values)
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[i*4:], w)
	}

	return buf
}

func bestBitWidth(block []uint32) (b, cExcept, maxBits int) {
	var freqs [33]int
	for _, v := range block {
		freqs[bitpack.Width(v)]++
	}

	maxBits = 32
	for maxBits > 0 && freqs[maxBits] == 0 {
		maxBits--
	}

	b = maxBits
	bestCost := maxBits * fastpfor.BlockSize
	count := 0
	for w := maxBits - 1; w >= 0; w-- {
		count += freqs[w+1]
		if count == fastpfor.BlockSize {
			break
		}
		cost := count*exceptionOverhead + count*(maxBits-w) + w*fastpfor.BlockSize + 8
		if maxBits-w == 1 {
			cost -= count
		}
		if cost < bestCost {
			bestCost, b, cExcept = cost, w, count
		}
	}

	return b, cExcept, maxBits
}

func encodePage(page []uint32, out []uint32) []uint32 {
	headerPos := len(out)
	out = append(out, 0)

	var (
		meta   []byte
		groups [33][]uint32
	)
	for pos := 0; pos < len(page); pos += fastpfor.BlockSize {
		block := page[pos : pos+fastpfor.BlockSize]
		b, cExcept, maxBits := bestBitWidth(block)
		meta = append(meta, byte(b), byte(cExcept))
		if cExcept > 0 {
			meta = append(meta, byte(maxBits))
			index := maxBits - b
			for k, v := range block {
				if v>>b != 0 {
					meta = append(meta, byte(k))
					if index != 1 {
						groups[index] = append(groups[index], v>>b)
					}
				}
			}
		}

		for k := 0; k < fastpfor.BlockSize; k += bitpack.BlockSize {
			out = packBlock(out, block, k, b)
		}
	}

	out[headerPos] = uint32(len(out) - headerPos)
	out = append(out, uint32(len(meta)))
	for len(meta)%4 != 0 {
		meta = append(meta, 0)
	}
	for i := 0; i < len(meta); i += 4 {
		out = append(out, binary.LittleEndian.Uint32(meta[i:]))
	}

	var bitmap uint32
	for k := 2; k <= 32; k++ {
		if len(groups[k]) > 0 {
			bitmap |= 1 << (k - 1)
		}
	}
	out = append(out, bitmap)

	for k := 2; k <= 32; k++ {
		size := len(groups[k])
		if size == 0 {
			continue
		}
		out = append(out, uint32(size))
		padded := make([]uint32, (size+31)&^31)
		copy(padded, groups[k])
		for j := 0; j < size; j += bitpack.BlockSize {
			out = packBlock(out, padded, j, k)
		}
		out = out[:len(out)-(len(padded)-size)*k/32]
	}

	return out
}

func packBlock(out, values []uint32, pos, width int) []uint32 {
	start := len(out)
	out = append(out, make([]uint32, width)...)
	bitpack.Pack(values, pos, out, start, width)

	return out
}

func appendVariableByte(out []uint32, values []uint32) []uint32 {
	if len(values) == 0 {
		return out
	}

	var buf []byte
	for _, v := range values {
		for v >= 0x80 {
			buf = append(buf, byte(v&0x7f))
			v >>= 7
		}
		buf = append(buf, byte(v)|0x80)
	}
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	for i := 0; i < len(buf); i += 4 {
		out = append(out, binary.LittleEndian.Uint32(buf[i:]))
	}

	return out
}
