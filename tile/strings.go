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

package tile

import (
	"fmt"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/stream"
)

// stringStreams collects the streams of a string column. Plain columns
// carry a VAR_BINARY length stream and the concatenated bytes; dictionary
// columns add a STRING offset stream per value and a DICTIONARY length
// stream sizing the entries of a SINGLE data stream.
type stringStreams struct {
	offsets []int32
	lengths []int32
	data    []byte
	dict    bool
	fsst    bool
}

// decodeStrings decodes count non-null strings from numStreams streams.
func decodeStrings(data []byte, pos, numStreams, count int) ([]string, int, error) {
	var s stringStreams
	for range numStreams {
		md, next, err := stream.DecodeMetadata(data, pos)
		if err != nil {
			return nil, pos, err
		}
		pos = next

		switch md.PhysicalType {
		case stream.Offset:
			if md.OffsetKind() != stream.OffsetString {
				return nil, pos, fmt.Errorf("%w: tile: %s offset stream in string column",
					mlt.ErrCorrupt, md.OffsetKind())
			}
			s.offsets, pos, err = stream.DecodeIntStream(data, pos, md, false)
		case stream.Length:
			switch md.LengthKind() {
			case stream.LengthVarBinary, stream.LengthDictionary:
				s.lengths, pos, err = stream.DecodeIntStream(data, pos, md, false)
			case stream.LengthSymbol:
				s.fsst = true
				_, pos, err = stream.Payload(data, pos, md)
			default:
				return nil, pos, fmt.Errorf("%w: tile: %s length stream in string column",
					mlt.ErrCorrupt, md.LengthKind())
			}
		case stream.Data:
			var payload []byte
			if payload, pos, err = stream.Payload(data, pos, md); err != nil {
				return nil, pos, err
			}
			switch md.Dictionary() {
			case stream.DictionaryNone:
				s.data = payload
			case stream.DictionarySingle:
				s.dict, s.data = true, payload
			case stream.DictionaryFSST:
				s.fsst = true
			default:
				return nil, pos, fmt.Errorf("%w: tile: %s dictionary in string column",
					mlt.ErrNotImplemented, md.Dictionary())
			}
		default:
			return nil, pos, fmt.Errorf("%w: tile: unexpected %s stream in string column",
				mlt.ErrCorrupt, md.PhysicalType)
		}
		if err != nil {
			return nil, pos, err
		}
	}

	if s.fsst {
		return nil, pos, fmt.Errorf("%w: tile: FSST compressed strings", mlt.ErrNotImplemented)
	}

	var (
		out []string
		err error
	)
	if s.dict {
		out, err = s.dictionary(count)
	} else {
		out, err = s.plain(count)
	}
	return out, pos, err
}

// split cuts data into consecutive strings of the given lengths, which
// must cover it exactly.
func split(data []byte, lengths []int32) ([]string, error) {
	out := make([]string, len(lengths))
	start := 0
	for i, n := range lengths {
		if n < 0 || int(n) > len(data)-start {
			return nil, fmt.Errorf("%w: tile: string %d of length %d overruns %d data bytes",
				mlt.ErrCorrupt, i, n, len(data))
		}
		out[i] = string(data[start : start+int(n)])
		start += int(n)
	}

	if start != len(data) {
		return nil, fmt.Errorf("%w: tile: %d string bytes unused", mlt.ErrCorrupt, len(data)-start)
	}
	return out, nil
}

func (s *stringStreams) plain(count int) ([]string, error) {
	if len(s.lengths) != count {
		return nil, fmt.Errorf("%w: tile: %d string lengths for %d values", mlt.ErrCorrupt, len(s.lengths), count)
	}
	return split(s.data, s.lengths)
}

func (s *stringStreams) dictionary(count int) ([]string, error) {
	if len(s.offsets) != count {
		return nil, fmt.Errorf("%w: tile: %d dictionary references for %d values",
			mlt.ErrCorrupt, len(s.offsets), count)
	}

	dict, err := split(s.data, s.lengths)
	if err != nil {
		return nil, err
	}

	out := make([]string, count)
	for i, ref := range s.offsets {
		if ref < 0 || int(ref) >= len(dict) {
			return nil, fmt.Errorf("%w: tile: dictionary reference %d out of %d entries",
				mlt.ErrCorrupt, ref, len(dict))
		}
		out[i] = dict[ref]
	}
	return out, nil
}
