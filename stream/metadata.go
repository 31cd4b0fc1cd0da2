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

// Package stream decodes the self describing streams a MapLibre Tile
// column is made of. Each stream starts with a Metadata header naming its
// physical and logical encodings, followed by ByteLength payload bytes.
package stream

import (
	"fmt"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/varint"
)

// PhysicalType is the high nibble of a stream's first header byte.
type PhysicalType uint8

const (
	Present PhysicalType = iota
	Data
	Offset
	Length
)

func (p PhysicalType) String() string {
	switch p {
	case Present:
		return "PRESENT"
	case Data:
		return "DATA"
	case Offset:
		return "OFFSET"
	case Length:
		return "LENGTH"
	}
	return fmt.Sprintf("PhysicalType(%d)", uint8(p))
}

// DictionaryType qualifies a DATA stream.
type DictionaryType uint8

const (
	DictionaryNone DictionaryType = iota
	DictionarySingle
	DictionaryShared
	DictionaryVertex
	DictionaryMorton
	DictionaryFSST
)

var dictionaryNames = [...]string{"NONE", "SINGLE", "SHARED", "VERTEX", "MORTON", "FSST"}

func (d DictionaryType) String() string {
	if int(d) < len(dictionaryNames) {
		return dictionaryNames[d]
	}
	return fmt.Sprintf("DictionaryType(%d)", uint8(d))
}

// OffsetType qualifies an OFFSET stream.
type OffsetType uint8

const (
	OffsetVertex OffsetType = iota
	OffsetIndex
	OffsetString
	OffsetKey
)

var offsetNames = [...]string{"VERTEX", "INDEX", "STRING", "KEY"}

func (o OffsetType) String() string {
	if int(o) < len(offsetNames) {
		return offsetNames[o]
	}
	return fmt.Sprintf("OffsetType(%d)", uint8(o))
}

// LengthType qualifies a LENGTH stream.
type LengthType uint8

const (
	LengthVarBinary LengthType = iota
	LengthGeometries
	LengthParts
	LengthRings
	LengthTriangles
	LengthSymbol
	LengthDictionary
)

var lengthNames = [...]string{"VAR_BINARY", "GEOMETRIES", "PARTS", "RINGS", "TRIANGLES", "SYMBOL", "DICTIONARY"}

func (l LengthType) String() string {
	if int(l) < len(lengthNames) {
		return lengthNames[l]
	}
	return fmt.Sprintf("LengthType(%d)", uint8(l))
}

// LogicalTechnique is one of the two logical level encodings of a stream.
type LogicalTechnique uint8

const (
	LogicalNone LogicalTechnique = iota
	Delta
	ComponentwiseDelta
	RLE
	Morton
	PseudoDecimal
)

var logicalNames = [...]string{"NONE", "DELTA", "COMPONENTWISE_DELTA", "RLE", "MORTON", "PDE"}

func (l LogicalTechnique) String() string {
	if int(l) < len(logicalNames) {
		return logicalNames[l]
	}
	return fmt.Sprintf("LogicalTechnique(%d)", uint8(l))
}

// PhysicalTechnique is the bit level encoding of a stream payload.
type PhysicalTechnique uint8

const (
	PhysicalNone PhysicalTechnique = iota
	FastPFOR
	Varint
	ALP
)

var physicalNames = [...]string{"NONE", "FAST_PFOR", "VARINT", "ALP"}

func (p PhysicalTechnique) String() string {
	if int(p) < len(physicalNames) {
		return physicalNames[p]
	}
	return fmt.Sprintf("PhysicalTechnique(%d)", uint8(p))
}

// Metadata is the header that precedes every stream payload. The Morton
// fields are set only when Technique1 is Morton and the RLE fields only
// when either technique is RLE and the payload is physically encoded.
type Metadata struct {
	PhysicalType      PhysicalType
	Subtype           uint8
	Technique1        LogicalTechnique
	Technique2        LogicalTechnique
	PhysicalTechnique PhysicalTechnique

	// NumValues is the number of physically encoded values.
	NumValues int
	// ByteLength is the payload size following the header.
	ByteLength int

	NumBits         int
	CoordinateShift int

	Runs         int
	NumRLEValues int
}

// Dictionary returns the subtype of a DATA stream.
func (m *Metadata) Dictionary() DictionaryType { return DictionaryType(m.Subtype) }

// OffsetKind returns the subtype of an OFFSET stream.
func (m *Metadata) OffsetKind() OffsetType { return OffsetType(m.Subtype) }

// LengthKind returns the subtype of a LENGTH stream.
func (m *Metadata) LengthKind() LengthType { return LengthType(m.Subtype) }

// IsMorton reports whether the header carries Morton parameters.
func (m *Metadata) IsMorton() bool { return m.Technique1 == Morton }

// IsRLE reports whether the header carries run length parameters.
func (m *Metadata) IsRLE() bool {
	return !m.IsMorton() && (m.Technique1 == RLE || m.Technique2 == RLE) &&
		m.PhysicalTechnique != PhysicalNone
}

// NumLogicalValues is the number of values produced by the logical
// decode: the expanded count for run length streams, two coordinates
// per Morton code, otherwise NumValues.
func (m *Metadata) NumLogicalValues() int {
	switch {
	case m.IsMorton():
		return 2 * m.NumValues
	case m.IsRLE():
		return m.NumRLEValues
	}
	return m.NumValues
}

func (m *Metadata) String() string {
	var sub string
	switch m.PhysicalType {
	case Data:
		sub = m.Dictionary().String()
	case Offset:
		sub = m.OffsetKind().String()
	case Length:
		sub = m.LengthKind().String()
	default:
		sub = "-"
	}
	return fmt.Sprintf("%s/%s %s+%s %s values=%d bytes=%d",
		m.PhysicalType, sub, m.Technique1, m.Technique2, m.PhysicalTechnique, m.NumValues, m.ByteLength)
}

var subtypeCount = [...]uint8{
	Present: 1,
	Data:    uint8(len(dictionaryNames)),
	Offset:  uint8(len(offsetNames)),
	Length:  uint8(len(lengthNames)),
}

// DecodeMetadata reads a stream header at data[pos] and returns it along
// with the offset of the payload. The payload must fit in data.
func DecodeMetadata(data []byte, pos int) (*Metadata, int, error) {
	if pos < 0 || pos+2 > len(data) {
		return nil, pos, fmt.Errorf("%w: stream: truncated header at offset %d", mlt.ErrCorrupt, pos)
	}

	kind, enc := data[pos], data[pos+1]
	m := &Metadata{
		PhysicalType:      PhysicalType(kind >> 4),
		Subtype:           kind & 0x0f,
		Technique1:        LogicalTechnique(enc >> 5),
		Technique2:        LogicalTechnique((enc >> 2) & 0x07),
		PhysicalTechnique: PhysicalTechnique(enc & 0x03),
	}

	if int(m.PhysicalType) >= len(subtypeCount) {
		return nil, pos, fmt.Errorf("%w: stream: unknown physical stream type %d", mlt.ErrCorrupt, m.PhysicalType)
	}
	if m.PhysicalType == Present {
		m.Subtype = 0
	} else if m.Subtype >= subtypeCount[m.PhysicalType] {
		return nil, pos, fmt.Errorf("%w: stream: unknown %s subtype %d", mlt.ErrCorrupt, m.PhysicalType, m.Subtype)
	}
	for _, t := range []LogicalTechnique{m.Technique1, m.Technique2} {
		if int(t) >= len(logicalNames) {
			return nil, pos, fmt.Errorf("%w: stream: unknown logical technique %d", mlt.ErrCorrupt, t)
		}
	}

	vals, next, err := varint.Uint32s(data, pos+2, 2)
	if err != nil {
		return nil, pos, err
	}
	m.NumValues, m.ByteLength = int(vals[0]), int(vals[1])

	switch {
	case m.IsMorton():
		if vals, next, err = varint.Uint32s(data, next, 2); err != nil {
			return nil, pos, err
		}
		m.NumBits, m.CoordinateShift = int(vals[0]), int(vals[1])
		if m.NumBits > 16 {
			return nil, pos, fmt.Errorf("%w: stream: morton code with %d bits per coordinate", mlt.ErrCorrupt, m.NumBits)
		}
	case m.IsRLE():
		if vals, next, err = varint.Uint32s(data, next, 2); err != nil {
			return nil, pos, err
		}
		m.Runs, m.NumRLEValues = int(vals[0]), int(vals[1])
	}

	if m.ByteLength > len(data)-next {
		return nil, pos, fmt.Errorf("%w: stream: %s payload of %d bytes exceeds the %d remaining",
			mlt.ErrCorrupt, m.PhysicalType, m.ByteLength, len(data)-next)
	}

	return m, next, nil
}

// Skip returns the offset just past the stream starting at data[pos].
func Skip(data []byte, pos int) (int, error) {
	m, next, err := DecodeMetadata(data, pos)
	if err != nil {
		return pos, err
	}
	return next + m.ByteLength, nil
}
