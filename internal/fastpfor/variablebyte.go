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

package fastpfor

import (
	"fmt"

	"github.com/maplibre/mlt-go"
)

var errVariableByteOverflow = fmt.Errorf("%w: fastpfor: variable byte value overflows 32 bits", mlt.ErrCorrupt)

// decodeVariableByte decodes the VariableByte tail of a composed stream
// into out and returns the number of values written. Bytes are read
// little-endian from each word, seven payload bits per byte, and a set high
// bit marks the last byte of a value. Zero bytes after the final value pad
// the last word.
func decodeVariableByte(in []uint32, out []uint32) (int, error) {
	var (
		n     int
		v     uint32
		shift uint
	)
	for _, word := range in {
		for s := 0; s < 32; s += 8 {
			c := byte(word >> s)
			payload := uint32(c & 0x7f)
			switch {
			case shift >= 32:
				if payload != 0 {
					return 0, errVariableByteOverflow
				}
			case shift > 25 && payload>>(32-shift) != 0:
				return 0, errVariableByteOverflow
			default:
				v |= payload << shift
			}
			if c&0x80 == 0 {
				shift += 7

				continue
			}
			if n == len(out) {
				return 0, fmt.Errorf("%w: fastpfor: more than %d values in variable byte tail",
					mlt.ErrCorrupt, len(out))
			}
			out[n] = v
			n++
			v, shift = 0, 0
		}
	}
	if v != 0 {
		return 0, fmt.Errorf("%w: fastpfor: unterminated variable byte value", mlt.ErrCorrupt)
	}

	return n, nil
}
