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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/maplibre/mlt-go"
)

// DecodeByteRLE decodes numBytes bytes of ORC style byte run length
// encoding from data[pos:end]. A control byte below 128 starts a run of
// control+3 copies of the next byte; otherwise 256-control literal bytes
// follow.
func DecodeByteRLE(data []byte, pos, end, numBytes int) ([]byte, error) {
	if end > len(data) || pos > end {
		return nil, fmt.Errorf("%w: stream: byte rle payload overruns input", mlt.ErrCorrupt)
	}

	out := make([]byte, 0, numBytes)
	for len(out) < numBytes {
		if pos >= end {
			return nil, fmt.Errorf("%w: stream: byte rle ended after %d of %d bytes",
				mlt.ErrCorrupt, len(out), numBytes)
		}

		control := int(data[pos])
		pos++
		if control < 128 {
			if pos >= end {
				return nil, fmt.Errorf("%w: stream: byte rle run without value", mlt.ErrCorrupt)
			}
			for range min(control+3, numBytes-len(out)) {
				out = append(out, data[pos])
			}
			pos++
			continue
		}

		n := 256 - control
		if pos+n > end {
			return nil, fmt.Errorf("%w: stream: byte rle literal of %d bytes overruns payload",
				mlt.ErrCorrupt, n)
		}
		out = append(out, data[pos:pos+min(n, numBytes-len(out))]...)
		pos += n
	}

	if pos != end {
		return nil, fmt.Errorf("%w: stream: byte rle left %d trailing bytes", mlt.ErrCorrupt, end-pos)
	}
	return out, nil
}

// DecodeBooleanRLE decodes m.NumValues booleans stored least significant
// bit first in byte run length encoded bytes. The result holds
// ceil(NumValues/8) bytes.
func DecodeBooleanRLE(data []byte, pos int, m *Metadata) ([]byte, int, error) {
	end, err := payloadEnd(data, pos, m)
	if err != nil {
		return nil, pos, err
	}

	bits, err := DecodeByteRLE(data, pos, end, (m.NumValues+7)/8)
	if err != nil {
		return nil, pos, err
	}
	return bits, end, nil
}

// DecodeFloatStream decodes little-endian float32 values.
func DecodeFloatStream(data []byte, pos int, m *Metadata) ([]float32, int, error) {
	end, err := payloadEnd(data, pos, m)
	if err != nil {
		return nil, pos, err
	}
	if m.ByteLength != 4*m.NumValues {
		return nil, pos, fmt.Errorf("%w: stream: %d bytes for %d floats", mlt.ErrCorrupt, m.ByteLength, m.NumValues)
	}

	out := make([]float32, m.NumValues)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[pos+4*i:]))
	}
	return out, end, nil
}

// DecodeDoubleStream decodes little-endian float64 values.
func DecodeDoubleStream(data []byte, pos int, m *Metadata) ([]float64, int, error) {
	end, err := payloadEnd(data, pos, m)
	if err != nil {
		return nil, pos, err
	}
	if m.ByteLength != 8*m.NumValues {
		return nil, pos, fmt.Errorf("%w: stream: %d bytes for %d doubles", mlt.ErrCorrupt, m.ByteLength, m.NumValues)
	}

	out := make([]float64, m.NumValues)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[pos+8*i:]))
	}
	return out, end, nil
}
