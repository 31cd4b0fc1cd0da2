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

package mlttest

import (
	"slices"

	"github.com/maplibre/mlt-go/stream"
)

// Table assembles one feature table. Columns are written in the order
// they are added and must follow the schema's column order.
type Table struct {
	ID          int
	Version     byte
	Extent      int
	MaxExtent   int
	NumFeatures int

	body []byte
}

// NewTable starts a table with the given schema id and feature count and
// an extent of 4096.
func NewTable(id, numFeatures int) *Table {
	return &Table{ID: id, Version: 1, Extent: 4096, MaxExtent: 4096, NumFeatures: numFeatures}
}

// Column appends a column made of the given streams.
func (t *Table) Column(streams ...[]byte) *Table {
	return t.Raw(len(streams), slices.Concat(streams...))
}

// Raw appends a column with an explicit stream count.
func (t *Table) Raw(numStreams int, body []byte) *Table {
	t.body = Varints(t.body, uint64(numStreams))
	t.body = append(t.body, body...)
	return t
}

// Encode writes the table header and body.
func (t *Table) Encode() []byte {
	buf := []byte{t.Version}
	buf = Varints(buf, uint64(t.ID), uint64(len(t.body)),
		uint64(t.Extent), uint64(t.MaxExtent), uint64(t.NumFeatures))
	return append(buf, t.body...)
}

// Tile concatenates encoded tables.
func Tile(tables ...*Table) []byte {
	var out []byte
	for _, t := range tables {
		out = append(out, t.Encode()...)
	}
	return out
}

// Present encodes a present stream.
func Present(vals ...bool) []byte {
	return Booleans(stream.Present, vals...)
}

// Bytes encodes an uncompressed DATA stream with the given dictionary
// type.
func Bytes(dict stream.DictionaryType, payload []byte) []byte {
	return Stream{Type: stream.Data, Subtype: uint8(dict)}.Encode(len(payload), payload)
}

// PlainStrings returns the length and data streams of a plain string
// column.
func PlainStrings(vals ...string) [][]byte {
	lengths := make([]uint32, len(vals))
	var data []byte
	for i, v := range vals {
		lengths[i] = uint32(len(v))
		data = append(data, v...)
	}
	return [][]byte{
		Lengths(stream.LengthVarBinary, lengths...),
		Bytes(stream.DictionaryNone, data),
	}
}

// DictionaryStrings returns the offset, dictionary length and dictionary
// streams of a dictionary coded string column. Entries appear in first
// use order.
func DictionaryStrings(vals ...string) [][]byte {
	var (
		dict    []string
		refs    = make([]uint32, len(vals))
		lengths []uint32
		data    []byte
	)
	for i, v := range vals {
		j := slices.Index(dict, v)
		if j < 0 {
			j = len(dict)
			dict = append(dict, v)
			lengths = append(lengths, uint32(len(v)))
			data = append(data, v...)
		}
		refs[i] = uint32(j)
	}
	return [][]byte{
		Plain(stream.Offset, uint8(stream.OffsetString), refs...),
		Lengths(stream.LengthDictionary, lengths...),
		Bytes(stream.DictionarySingle, data),
	}
}
