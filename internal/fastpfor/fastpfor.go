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

// Package fastpfor decodes integer streams compressed with the FastPFOR
// patched frame-of-reference codec, composed with a VariableByte codec for
// the values that do not fill a whole 256-value block.
//
// A compressed stream is a sequence of 32-bit words. The first word holds
// the number of values coded with FastPFOR (a multiple of BlockSize). Those
// values are split into pages of at most PageSize values; every page stores
// its packed blocks followed by a metadata area holding the per-block bit
// widths, the exception positions and the bit-packed exception values
// grouped by width. The words after the last page are VariableByte coded.
package fastpfor

import (
	"encoding/binary"
	"fmt"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/internal/bitpack"
)

const (
	// BlockSize is the number of values sharing one base bit width.
	BlockSize = 256
	// PageSize is the maximum number of values coded in a single page.
	PageSize = 65536
)

// Decoder holds the scratch buffers reused across pages and calls. A
// Decoder must not be used by more than one goroutine at a time; use one
// Decoder per goroutine or the package level Decode functions.
type Decoder struct {
	groups   [33][]uint32
	sizes    [33]int
	pointers [33]int
	meta     []byte
	pad      [32]uint32
}

// NewDecoder returns a Decoder with empty scratch buffers.
func NewDecoder() *Decoder { return &Decoder{} }

// DecodeBytes decodes numValues values from data, which holds the
// compressed words in big-endian byte order. A trailing partial word is
// zero padded.
func DecodeBytes(data []byte, numValues int) ([]uint32, error) {
	return NewDecoder().DecodeBytes(data, numValues)
}

// DecodeWords decodes numValues values from the compressed words in.
func DecodeWords(in []uint32, numValues int) ([]uint32, error) {
	return NewDecoder().DecodeWords(in, numValues)
}

// DecodeBytes is the reusable form of the package level DecodeBytes.
func (d *Decoder) DecodeBytes(data []byte, numValues int) ([]uint32, error) {
	return d.DecodeWords(BytesToWords(data), numValues)
}

// BytesToWords converts big-endian bytes to words, zero padding a trailing
// partial word on the right.
func BytesToWords(data []byte) []uint32 {
	full := len(data) / 4
	words := make([]uint32, (len(data)+3)/4)
	for i := range full {
		words[i] = binary.BigEndian.Uint32(data[i*4:])
	}
	if rem := data[full*4:]; len(rem) > 0 {
		var w uint32
		for i, b := range rem {
			w |= uint32(b) << (24 - 8*i)
		}
		words[full] = w
	}

	return words
}

// DecodeWords is the reusable form of the package level DecodeWords.
func (d *Decoder) DecodeWords(in []uint32, numValues int) ([]uint32, error) {
	if numValues < 0 {
		return nil, fmt.Errorf("%w: fastpfor: negative value count %d", mlt.ErrCorrupt, numValues)
	}

	if len(in) == 0 {
		if numValues == 0 {
			return []uint32{}, nil
		}

		return nil, fmt.Errorf("%w: fastpfor: empty input for %d values", mlt.ErrCorrupt, numValues)
	}

	packed := int(in[0])
	if packed%BlockSize != 0 || packed > numValues {
		return nil, fmt.Errorf("%w: fastpfor: invalid packed length %d for %d values",
			mlt.ErrCorrupt, packed, numValues)
	}
	// a block costs at least two metadata bytes and a tail value one byte
	if packed/BlockSize > 2*len(in) || numValues-packed > 4*(len(in)-1) {
		return nil, fmt.Errorf("%w: fastpfor: %d words cannot hold %d values",
			mlt.ErrCorrupt, len(in), numValues)
	}

	out := make([]uint32, numValues)

	inPos, outPos := 1, 0
	for remaining := packed; remaining > 0; {
		size := min(remaining, PageSize)
		next, err := d.decodePage(in, inPos, out, outPos, size)
		if err != nil {
			return nil, err
		}
		inPos = next
		outPos += size
		remaining -= size
	}

	n, err := decodeVariableByte(in[inPos:], out[outPos:])
	if err != nil {
		return nil, err
	}
	if outPos+n != numValues {
		return nil, fmt.Errorf("%w: fastpfor: decoded %d values, expected %d",
			mlt.ErrCorrupt, outPos+n, numValues)
	}

	return out, nil
}

func (d *Decoder) decodePage(in []uint32, initPos int, out []uint32, outPos, size int) (int, error) {
	corrupt := func(format string, args ...any) (int, error) {
		return 0, fmt.Errorf("%w: fastpfor: page at word %d: %s",
			mlt.ErrCorrupt, initPos, fmt.Sprintf(format, args...))
	}

	if initPos >= len(in) {
		return corrupt("missing page header")
	}
	whereMeta := int(in[initPos])
	metaStart := initPos + whereMeta
	if whereMeta < 1 || metaStart >= len(in) {
		return corrupt("metadata offset %d out of range", whereMeta)
	}

	inExcept := metaStart
	byteSize := int(in[inExcept])
	inExcept++
	metaWords := (byteSize + 3) / 4
	if byteSize > len(in)*4 || inExcept+metaWords >= len(in) {
		return corrupt("metadata of %d bytes exceeds input", byteSize)
	}
	if cap(d.meta) < byteSize {
		d.meta = make([]byte, byteSize)
	}
	meta := d.meta[:byteSize]
	for i := range meta {
		meta[i] = byte(in[inExcept+i/4] >> (8 * (i % 4)))
	}
	inExcept += metaWords

	bitmap := in[inExcept]
	inExcept++
	for k := 2; k <= 32; k++ {
		d.sizes[k], d.pointers[k] = 0, 0
		if bitmap&(1<<(k-1)) == 0 {
			continue
		}
		if inExcept >= len(in) {
			return corrupt("missing size of exception group %d", k)
		}
		n := int(in[inExcept])
		inExcept++
		if n > size {
			return corrupt("exception group %d has %d values for a page of %d", k, n, size)
		}

		rounded := (n + bitpack.BlockSize - 1) &^ (bitpack.BlockSize - 1)
		if cap(d.groups[k]) < rounded {
			d.groups[k] = make([]uint32, rounded)
		}
		group := d.groups[k][:rounded]
		for j := 0; j < n; j += bitpack.BlockSize {
			if inExcept >= len(in) {
				return corrupt("exception group %d truncated", k)
			}
			d.unpackTail(in, inExcept, group, j, k)
			inExcept += k
		}
		inExcept -= (rounded - n) * k / 32
		if inExcept > len(in) {
			return corrupt("exception group %d truncated", k)
		}
		d.sizes[k] = n
	}

	inPos := initPos + 1
	bp := 0
	for run := range size / BlockSize {
		if bp+2 > len(meta) {
			return corrupt("block %d header missing", run)
		}
		b, cExcept := int(meta[bp]), int(meta[bp+1])
		bp += 2
		if b > 32 {
			return corrupt("block %d bit width %d", run, b)
		}
		if inPos+b*(BlockSize/bitpack.BlockSize) > metaStart {
			return corrupt("block %d data overlaps metadata", run)
		}

		blockOut := outPos + run*BlockSize
		for k := 0; k < BlockSize; k += bitpack.BlockSize {
			bitpack.Unpack(in, inPos, out, blockOut+k, b)
			inPos += b
		}

		if cExcept == 0 {
			continue
		}
		if bp+1+cExcept > len(meta) {
			return corrupt("block %d exceptions truncated", run)
		}
		maxBits := int(meta[bp])
		bp++
		index := maxBits - b
		if index < 1 || index > 32 || maxBits > 32 {
			return corrupt("block %d exception width %d with base width %d", run, maxBits, b)
		}

		positions := meta[bp : bp+cExcept]
		bp += cExcept
		if index == 1 {
			for _, pos := range positions {
				out[blockOut+int(pos)] |= 1 << b
			}

			continue
		}

		if d.pointers[index]+cExcept > d.sizes[index] {
			return corrupt("block %d exhausts exception group %d", run, index)
		}
		group := d.groups[index]
		for _, pos := range positions {
			out[blockOut+int(pos)] |= group[d.pointers[index]] << b
			d.pointers[index]++
		}
	}

	return inExcept, nil
}

// unpackTail unpacks 32 values at width k, copying the words into a zero
// padded scratch block first when the packed block runs past the input.
func (d *Decoder) unpackTail(in []uint32, inPos int, out []uint32, outPos, k int) {
	if inPos+k <= len(in) {
		bitpack.Unpack(in, inPos, out, outPos, k)

		return
	}

	clear(d.pad[:])
	copy(d.pad[:k], in[inPos:])
	bitpack.Unpack(d.pad[:], 0, out, outPos, k)
}
