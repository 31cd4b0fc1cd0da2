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

// VectorType describes how a decoded column is stored.
type VectorType uint8

const (
	// Flat holds one value per feature.
	Flat VectorType = iota
	// Const holds a single value shared by every feature.
	Const
	// Sequence holds an arithmetic progression base + i*delta.
	Sequence
)

func (v VectorType) String() string {
	switch v {
	case Flat:
		return "FLAT"
	case Const:
		return "CONST"
	case Sequence:
		return "SEQUENCE"
	}
	return fmt.Sprintf("VectorType(%d)", uint8(v))
}

// VectorTypeOf classifies a stream from its header and, for delta coded
// two-run streams, a peek at its first four values. The payload starts at
// data[pos]; the peek does not move any cursor.
func VectorTypeOf(data []byte, pos int, m *Metadata, numFeatures int) VectorType {
	if m.Technique1 == RLE {
		if m.Runs == 1 {
			return Const
		}
		return Flat
	}

	single := Flat
	if m.NumValues == 1 {
		single = Const
	}

	if m.Technique1 != Delta || m.Technique2 != RLE || m.NumRLEValues != numFeatures {
		return single
	}
	switch m.Runs {
	case 1:
		return Sequence
	case 2:
		// two runs of delta one
		raw, _, err := decodePhysical(data, pos, m)
		if err == nil && len(raw) == 4 && raw[2] == 2 && raw[3] == 2 {
			return Sequence
		}
	}
	return single
}

// DecodeConstIntStream decodes a stream classified as Const and returns
// its single value.
func DecodeConstIntStream(data []byte, pos int, m *Metadata, signed bool) (int32, int, error) {
	raw, next, err := decodePhysical(data, pos, m)
	if err != nil {
		return 0, pos, err
	}

	var v uint32
	switch len(raw) {
	case 1:
		v = raw[0]
	case 2:
		// one run: length then value
		v = raw[1]
	default:
		return 0, pos, fmt.Errorf("%w: stream: constant stream with %d values", mlt.ErrCorrupt, len(raw))
	}

	if signed {
		return varint.ZigZag32(v), next, nil
	}
	return int32(v), next, nil
}

// DecodeSequenceIntStream decodes a stream classified as Sequence and
// returns the base and delta of value i = base + i*delta.
func DecodeSequenceIntStream(data []byte, pos int, m *Metadata) (base, delta int32, next int, err error) {
	raw, next, err := decodePhysical(data, pos, m)
	if err != nil {
		return 0, 0, pos, err
	}

	switch len(raw) {
	case 2:
		v := varint.ZigZag32(raw[1])
		return v, v, next, nil
	case 4:
		return varint.ZigZag32(raw[2]), varint.ZigZag32(raw[3]), next, nil
	}
	return 0, 0, pos, fmt.Errorf("%w: stream: sequence stream with %d values", mlt.ErrCorrupt, len(raw))
}

// DecodeConstLongStream is the 64-bit form of DecodeConstIntStream.
func DecodeConstLongStream(data []byte, pos int, m *Metadata, signed bool) (int64, int, error) {
	raw, next, err := decodePhysicalLong(data, pos, m)
	if err != nil {
		return 0, pos, err
	}

	var v uint64
	switch len(raw) {
	case 1:
		v = raw[0]
	case 2:
		v = raw[1]
	default:
		return 0, pos, fmt.Errorf("%w: stream: constant stream with %d values", mlt.ErrCorrupt, len(raw))
	}

	if signed {
		return varint.ZigZag64(v), next, nil
	}
	return int64(v), next, nil
}

// DecodeSequenceLongStream is the 64-bit form of DecodeSequenceIntStream.
func DecodeSequenceLongStream(data []byte, pos int, m *Metadata) (base, delta int64, next int, err error) {
	raw, next, err := decodePhysicalLong(data, pos, m)
	if err != nil {
		return 0, 0, pos, err
	}

	switch len(raw) {
	case 2:
		v := varint.ZigZag64(raw[1])
		return v, v, next, nil
	case 4:
		return varint.ZigZag64(raw[2]), varint.ZigZag64(raw[3]), next, nil
	}
	return 0, 0, pos, fmt.Errorf("%w: stream: sequence stream with %d values", mlt.ErrCorrupt, len(raw))
}
