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

// Package metadata models the tileset metadata that describes the
// columns of every feature table in a tile. Tiles do not carry their own
// schema; the decoder resolves each column's decoding path from here.
package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/maplibre/mlt-go"
	"gopkg.in/yaml.v3"
)

// Type is the physical type of a column.
type Type string

const (
	Boolean  Type = "BOOLEAN"
	Int8     Type = "INT_8"
	Uint8    Type = "UINT_8"
	Int32    Type = "INT_32"
	Uint32   Type = "UINT_32"
	Int64    Type = "INT_64"
	Uint64   Type = "UINT_64"
	Float    Type = "FLOAT"
	Double   Type = "DOUBLE"
	String   Type = "STRING"
	Geometry Type = "GEOMETRY"
	Struct   Type = "STRUCT"
)

var knownTypes = []Type{
	Boolean, Int8, Uint8, Int32, Uint32, Int64, Uint64,
	Float, Double, String, Geometry, Struct,
}

// IsInteger reports whether t is one of the integer types.
func (t Type) IsInteger() bool {
	switch t {
	case Int8, Uint8, Int32, Uint32, Int64, Uint64:
		return true
	}
	return false
}

// IsSigned reports whether integer values of t are zigzag encoded.
func (t Type) IsSigned() bool { return t == Int8 || t == Int32 || t == Int64 }

const (
	// IDColumn is the name of the feature id column.
	IDColumn = "id"
	// GeometryColumn is the name of the geometry column.
	GeometryColumn = "geometry"
)

// Column describes one column of a feature table. Children are only
// set for Struct columns.
type Column struct {
	Name     string   `yaml:"name" json:"name"`
	Type     Type     `yaml:"type" json:"type"`
	Nullable bool     `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Children []Column `yaml:"children,omitempty" json:"children,omitempty"`
}

func (c Column) IsID() bool { return c.Name == IDColumn }

func (c Column) IsGeometry() bool { return c.Name == GeometryColumn }

func (c Column) String() string {
	var null string
	if c.Nullable {
		null = " nullable"
	}
	return fmt.Sprintf("%s: %s%s", c.Name, c.Type, null)
}

// FeatureTable is the schema of one layer.
type FeatureTable struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []Column `yaml:"columns" json:"columns"`
}

// Column returns the column with the given name.
func (f *FeatureTable) Column(name string) (Column, bool) {
	i := slices.IndexFunc(f.Columns, func(c Column) bool { return c.Name == name })
	if i < 0 {
		return Column{}, false
	}
	return f.Columns[i], true
}

// Tileset holds the schemas of every feature table, addressed by their
// position in FeatureTables.
type Tileset struct {
	Name          string         `yaml:"name,omitempty" json:"name,omitempty"`
	FeatureTables []FeatureTable `yaml:"featureTables" json:"featureTables"`
}

// Table returns the schema with the given feature table id.
func (t *Tileset) Table(id int) (*FeatureTable, error) {
	if id < 0 || id >= len(t.FeatureTables) {
		return nil, fmt.Errorf("%w: %d of %d", mlt.ErrUnknownFeatureTable, id, len(t.FeatureTables))
	}
	return &t.FeatureTables[id], nil
}

// Validate checks the schemas for unknown types, duplicate names and id
// or geometry columns of the wrong type.
func (t *Tileset) Validate() error {
	var errs []error
	for i, table := range t.FeatureTables {
		if table.Name == "" {
			errs = append(errs, fmt.Errorf("feature table %d has no name", i))
		}

		seen := make(map[string]struct{}, len(table.Columns))
		for _, col := range table.Columns {
			if _, dup := seen[col.Name]; dup {
				errs = append(errs, fmt.Errorf("feature table %q: duplicate column %q", table.Name, col.Name))
			}
			seen[col.Name] = struct{}{}

			if err := validateColumn(col); err != nil {
				errs = append(errs, fmt.Errorf("feature table %q: %w", table.Name, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: metadata: %w", mlt.ErrInvalidArgument, errors.Join(errs...))
	}
	return nil
}

func validateColumn(col Column) error {
	switch {
	case col.Name == "":
		return errors.New("column has no name")
	case !slices.Contains(knownTypes, col.Type):
		return fmt.Errorf("column %q: unknown type %q", col.Name, col.Type)
	case col.IsID() && !col.Type.IsInteger():
		return fmt.Errorf("id column must be an integer type, got %s", col.Type)
	case col.IsGeometry() != (col.Type == Geometry):
		return fmt.Errorf("column %q: geometry must be the %q column", col.Name, GeometryColumn)
	case col.Type == Struct && len(col.Children) == 0:
		return fmt.Errorf("struct column %q has no children", col.Name)
	case col.Type != Struct && len(col.Children) > 0:
		return fmt.Errorf("column %q of type %s has children", col.Name, col.Type)
	}

	for _, child := range col.Children {
		if child.Type == Struct || child.Type == Geometry {
			return fmt.Errorf("struct column %q: child %q cannot be %s", col.Name, child.Name, child.Type)
		}
		if err := validateColumn(child); err != nil {
			return fmt.Errorf("struct column %q: %w", col.Name, err)
		}
	}
	return nil
}

// Read decodes and validates tileset metadata in YAML or JSON form.
// Unknown keys are rejected.
func Read(r io.Reader) (*Tileset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ts Tileset
	if err := dec.Decode(&ts); err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", mlt.ErrInvalidArgument, err)
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return &ts, nil
}

// Parse is Read over a byte slice.
func Parse(data []byte) (*Tileset, error) {
	return Read(bytes.NewReader(data))
}

// Marshal encodes the tileset as YAML.
func (t *Tileset) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
