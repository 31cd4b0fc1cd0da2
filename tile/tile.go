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

// Package tile decodes MapLibre Tiles into feature tables. A tile is a
// sequence of feature tables, each described by a schema in the tileset
// metadata and framed as
//
//	version byte
//	varint featureTableId, bodySize, extent, maxTileExtent, numFeatures
//	body: per schema column a varint stream count and the column streams
//
// Geometry columns are decoded lazily on first access.
package tile

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/geometry"
	"github.com/maplibre/mlt-go/metadata"
	"github.com/maplibre/mlt-go/varint"
	"github.com/maplibre/mlt-go/vector"
)

// Feature is one row of a feature table. Properties omits null values.
type Feature struct {
	ID         int64
	HasID      bool
	Geometry   geometry.Geometry
	Properties map[string]any
}

// FeatureTable is one decoded layer of a tile.
type FeatureTable struct {
	Name        string
	Version     uint8
	Extent      int
	MaxExtent   int
	NumFeatures int

	schema     *metadata.FeatureTable
	ids        vector.Vector
	properties []vector.Vector

	lazyGeometry   func() (*geometry.Vector, error)
	lazyGeometries func() ([]geometry.Geometry, error)
}

// decodeGeometryColumn is replaced in tests to count decodes.
var decodeGeometryColumn = geometry.DecodeColumn

// init arms the lazy geometry decode over the column streams in
// data[start:end].
func (t *FeatureTable) init(data []byte, start, end, numStreams int) {
	t.lazyGeometry = sync.OnceValues(func() (*geometry.Vector, error) {
		if numStreams == 0 {
			return nil, nil
		}

		v, next, err := decodeGeometryColumn(data[:end], start, numStreams, t.NumFeatures)
		if err != nil {
			return nil, fmt.Errorf("feature table %q: %w", t.Name, err)
		}
		if next != end {
			return nil, fmt.Errorf("%w: tile: feature table %q geometry column ends at %d, streams end at %d",
				mlt.ErrCorrupt, t.Name, next, end)
		}
		return v, nil
	})
	t.lazyGeometries = sync.OnceValues(func() ([]geometry.Geometry, error) {
		v, err := t.lazyGeometry()
		if err != nil || v == nil {
			return nil, err
		}
		geoms, err := v.Geometries()
		if err != nil {
			return nil, fmt.Errorf("feature table %q: %w", t.Name, err)
		}
		return geoms, nil
	})
}

// Schema returns the metadata the table was decoded with.
func (t *FeatureTable) Schema() *metadata.FeatureTable { return t.schema }

// IDs returns the id vector, nil when the table has no id column.
func (t *FeatureTable) IDs() vector.Vector { return t.ids }

// ID returns the id of feature i.
func (t *FeatureTable) ID(i int) (int64, bool) {
	if t.ids == nil {
		return 0, false
	}
	return vector.Int64(t.ids, i)
}

// GeometryVector decodes the geometry column on first call and returns
// the cached vector afterwards. It is nil when the table has no geometry
// column.
func (t *FeatureTable) GeometryVector() (*geometry.Vector, error) { return t.lazyGeometry() }

// Geometries reconstructs every feature's geometry once and caches the
// result. Callers must not modify the returned slice. It is nil when the
// table has no geometry column.
func (t *FeatureTable) Geometries() ([]geometry.Geometry, error) { return t.lazyGeometries() }

// Properties returns the decoded property vectors in schema order.
func (t *FeatureTable) Properties() []vector.Vector { return t.properties }

// Property returns the property vector with the given name.
func (t *FeatureTable) Property(name string) (vector.Vector, bool) {
	i := slices.IndexFunc(t.properties, func(v vector.Vector) bool { return v.Name() == name })
	if i < 0 {
		return nil, false
	}
	return t.properties[i], true
}

// PropertyNames returns the names of the decoded property columns.
func (t *FeatureTable) PropertyNames() []string {
	names := make([]string, len(t.properties))
	for i, v := range t.properties {
		names[i] = v.Name()
	}
	return names
}

// Feature materializes feature i.
func (t *FeatureTable) Feature(i int) (Feature, error) {
	if i < 0 || i >= t.NumFeatures {
		return Feature{}, fmt.Errorf("%w: feature %d of %d", mlt.ErrInvalidArgument, i, t.NumFeatures)
	}

	geoms, err := t.Geometries()
	if err != nil {
		return Feature{}, err
	}
	return t.feature(i, geoms), nil
}

func (t *FeatureTable) feature(i int, geoms []geometry.Geometry) Feature {
	f := Feature{Properties: make(map[string]any, len(t.properties))}
	if geoms != nil {
		f.Geometry = geoms[i]
	}
	f.ID, f.HasID = t.ID(i)
	for _, p := range t.properties {
		if v := p.Value(i); v != nil {
			f.Properties[p.Name()] = v
		}
	}
	return f
}

// Features yields every feature in order. A geometry decode error is
// yielded once and ends the sequence.
func (t *FeatureTable) Features() iter.Seq2[Feature, error] {
	return func(yield func(Feature, error) bool) {
		geoms, err := t.Geometries()
		if err != nil {
			yield(Feature{}, err)
			return
		}

		for i := range t.NumFeatures {
			if !yield(t.feature(i, geoms), nil) {
				return
			}
		}
	}
}

func (t *FeatureTable) String() string {
	return fmt.Sprintf("%s: %d features, extent %d, properties %v",
		t.Name, t.NumFeatures, t.Extent, t.PropertyNames())
}

type options struct {
	properties map[string]struct{}
	maxWorkers int
}

func (o *options) wants(name string) bool {
	if o.properties == nil {
		return true
	}
	_, ok := o.properties[name]
	return ok
}

// Option configures decoding.
type Option func(*options)

// WithProperties restricts decoding to the named property columns. The
// remaining columns are skipped without decoding. The id and geometry
// columns are always kept.
func WithProperties(names ...string) Option {
	return func(o *options) {
		if o.properties == nil {
			o.properties = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			o.properties[n] = struct{}{}
		}
	}
}

// WithMaxWorkers bounds the number of tiles DecodeAll decodes at once.
func WithMaxWorkers(n int) Option {
	return func(o *options) { o.maxWorkers = n }
}

func newOptions(opts []Option) *options {
	o := &options{maxWorkers: 5}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// Decode decodes every feature table in data. Errors wrap mlt.ErrCorrupt
// for malformed input, mlt.ErrNotImplemented for recognized encodings the
// decoder does not support and mlt.ErrUnknownFeatureTable for a table id
// missing from ts. Nothing in the returned tables aliases state shared
// with other calls; geometry decoding reads data later, so data must not
// be modified afterwards.
func Decode(data []byte, ts *metadata.Tileset, opts ...Option) ([]*FeatureTable, error) {
	o := newOptions(opts)

	var tables []*FeatureTable
	for pos := 0; pos < len(data); {
		t, next, err := decodeTable(data, pos, ts, o)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
		pos = next
	}

	return tables, nil
}

func decodeTable(data []byte, pos int, ts *metadata.Tileset, o *options) (*FeatureTable, int, error) {
	version := data[pos]
	header, pos, err := varint.Uint32s(data, pos+1, 5)
	if err != nil {
		return nil, pos, err
	}

	schema, err := ts.Table(int(header[0]))
	if err != nil {
		return nil, pos, err
	}

	end := pos + int(header[1])
	if int(header[1]) > len(data)-pos {
		return nil, pos, fmt.Errorf("%w: tile: feature table %q body of %d bytes overruns tile",
			mlt.ErrCorrupt, schema.Name, header[1])
	}
	body := data[:end]

	t := &FeatureTable{
		Name:        schema.Name,
		Version:     version,
		Extent:      int(header[2]),
		MaxExtent:   int(header[3]),
		NumFeatures: int(header[4]),
		schema:      schema,
	}

	var geomStart, geomEnd, geomStreams int
	for _, col := range schema.Columns {
		n, next, err := varint.Uint32(body, pos)
		if err != nil {
			return nil, pos, fmt.Errorf("feature table %q column %q: %w", t.Name, col.Name, err)
		}
		numStreams := int(n)
		pos = next

		switch {
		case col.IsGeometry():
			geomStart, geomStreams = pos, numStreams
			pos, err = skipColumn(body, pos, col, numStreams)
			geomEnd = pos
		case !col.IsID() && !o.wants(col.Name):
			pos, err = skipColumn(body, pos, col, numStreams)
		default:
			var v vector.Vector
			if v, pos, err = decodeColumn(body, pos, col, numStreams, t.NumFeatures); err != nil {
				break
			}
			if col.IsID() {
				t.ids = v
			} else {
				t.properties = append(t.properties, v)
			}
		}
		if err != nil {
			return nil, pos, fmt.Errorf("feature table %q column %q: %w", t.Name, col.Name, err)
		}
	}

	if pos != end {
		return nil, pos, fmt.Errorf("%w: tile: feature table %q columns end at %d, body ends at %d",
			mlt.ErrCorrupt, t.Name, pos, end)
	}

	t.init(body, geomStart, geomEnd, geomStreams)
	return t, end, nil
}
