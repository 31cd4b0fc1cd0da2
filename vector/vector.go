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

// Package vector holds decoded id and property columns. A column is
// stored flat with one slot per feature, as a single constant, or as an
// arithmetic sequence, with an optional present bitmap marking nulls.
package vector

import (
	"fmt"
	"math/bits"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/maplibre/mlt-go"
)

// Scalar is the set of Go types a property column can hold.
type Scalar interface {
	bool | int32 | uint32 | int64 | uint64 | float32 | float64 | string
}

// Integer is the set of types a Sequence can hold.
type Integer interface {
	int32 | uint32 | int64 | uint64
}

// Bitmap is a least significant bit first bitset.
type Bitmap []byte

// Get reports whether bit i is set. Bits past the end are unset.
func (b Bitmap) Get(i int) bool {
	if i < 0 || i>>3 >= len(b) {
		return false
	}
	return b[i>>3]&(1<<(i&7)) != 0
}

// Count returns the number of set bits among the first n.
func (b Bitmap) Count(n int) int {
	full := min(n>>3, len(b))
	count := 0
	for _, v := range b[:full] {
		count += bits.OnesCount8(v)
	}
	if rem := n & 7; rem != 0 && full < len(b) {
		count += bits.OnesCount8(b[full] & (1<<rem - 1))
	}
	return count
}

// Vector is one decoded column.
type Vector interface {
	fmt.Stringer
	Name() string
	Len() int
	// IsNull reports whether row i has no value.
	IsNull(i int) bool
	// Value returns row i boxed, or nil when the row is null.
	Value(i int) any
	DataType() arrow.DataType
}

func dataType[T Scalar]() arrow.DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return arrow.FixedWidthTypes.Boolean
	case int32:
		return arrow.PrimitiveTypes.Int32
	case uint32:
		return arrow.PrimitiveTypes.Uint32
	case int64:
		return arrow.PrimitiveTypes.Int64
	case uint64:
		return arrow.PrimitiveTypes.Uint64
	case float32:
		return arrow.PrimitiveTypes.Float32
	case float64:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.BinaryTypes.String
	}
}

// nullable is the present bitmap shared by every vector kind. A nil
// bitmap means every row is present.
type nullable struct {
	name    string
	size    int
	present Bitmap
}

func (n *nullable) Name() string { return n.name }

func (n *nullable) Len() int { return n.size }

func (n *nullable) IsNull(i int) bool {
	if i < 0 || i >= n.size {
		return true
	}
	return n.present != nil && !n.present.Get(i)
}

// Present returns the present bitmap, nil when the column has no nulls.
func (n *nullable) Present() Bitmap { return n.present }

// Flat stores one value per row. Null rows hold the zero value.
type Flat[T Scalar] struct {
	nullable
	values []T
}

// NewFlat wraps values, one per row.
func NewFlat[T Scalar](name string, values []T, present Bitmap) *Flat[T] {
	return &Flat[T]{nullable: nullable{name: name, size: len(values), present: present}, values: values}
}

// Scatter spreads the non-null values in dense over n rows following
// present. A nil present bitmap requires len(dense) == n.
func Scatter[T Scalar](name string, dense []T, present Bitmap, n int) (*Flat[T], error) {
	if present == nil {
		if len(dense) != n {
			return nil, fmt.Errorf("%w: vector: column %q has %d values for %d rows",
				mlt.ErrCorrupt, name, len(dense), n)
		}
		return NewFlat(name, dense, nil), nil
	}

	if len(present) < (n+7)/8 {
		return nil, fmt.Errorf("%w: vector: column %q present bitmap covers %d of %d rows",
			mlt.ErrCorrupt, name, 8*len(present), n)
	}
	if set := present.Count(n); set != len(dense) {
		return nil, fmt.Errorf("%w: vector: column %q has %d values for %d present rows",
			mlt.ErrCorrupt, name, len(dense), set)
	}

	values := make([]T, n)
	next := 0
	for i := range values {
		if present.Get(i) {
			values[i] = dense[next]
			next++
		}
	}
	return NewFlat(name, values, present), nil
}

// Get returns row i and whether it is present.
func (f *Flat[T]) Get(i int) (T, bool) {
	if f.IsNull(i) {
		var zero T
		return zero, false
	}
	return f.values[i], true
}

func (f *Flat[T]) Value(i int) any {
	if v, ok := f.Get(i); ok {
		return v
	}
	return nil
}

// Values returns the backing slice, one entry per row.
func (f *Flat[T]) Values() []T { return f.values }

func (f *Flat[T]) DataType() arrow.DataType { return dataType[T]() }

func (f *Flat[T]) String() string {
	return fmt.Sprintf("%s: flat %s[%d]", f.name, f.DataType(), f.size)
}

// Const stores a single value shared by every present row.
type Const[T Scalar] struct {
	nullable
	value T
}

// NewConst returns a vector of n rows holding v.
func NewConst[T Scalar](name string, v T, n int, present Bitmap) *Const[T] {
	return &Const[T]{nullable: nullable{name: name, size: n, present: present}, value: v}
}

func (c *Const[T]) Get(i int) (T, bool) {
	if c.IsNull(i) {
		var zero T
		return zero, false
	}
	return c.value, true
}

func (c *Const[T]) Value(i int) any {
	if v, ok := c.Get(i); ok {
		return v
	}
	return nil
}

func (c *Const[T]) DataType() arrow.DataType { return dataType[T]() }

func (c *Const[T]) String() string {
	return fmt.Sprintf("%s: const %s[%d] = %v", c.name, c.DataType(), c.size, c.value)
}

// Sequence stores row i as Base + i*Delta. It never holds nulls.
type Sequence[T Integer] struct {
	nullable
	Base, Delta T
}

// NewSequence returns a vector of n rows counting from base by delta.
func NewSequence[T Integer](name string, base, delta T, n int) *Sequence[T] {
	return &Sequence[T]{nullable: nullable{name: name, size: n}, Base: base, Delta: delta}
}

func (s *Sequence[T]) Get(i int) (T, bool) {
	if s.IsNull(i) {
		return 0, false
	}
	return s.Base + T(i)*s.Delta, true
}

func (s *Sequence[T]) Value(i int) any {
	if v, ok := s.Get(i); ok {
		return v
	}
	return nil
}

func (s *Sequence[T]) DataType() arrow.DataType { return dataType[T]() }

func (s *Sequence[T]) String() string {
	return fmt.Sprintf("%s: sequence %s[%d] = %v + i*%v", s.name, s.DataType(), s.size, s.Base, s.Delta)
}

// Int64 returns row i of an integer vector widened to int64. Unsigned
// 64-bit values above MaxInt64 wrap.
func Int64(v Vector, i int) (int64, bool) {
	switch val := v.Value(i).(type) {
	case int32:
		return int64(val), true
	case uint32:
		return int64(val), true
	case int64:
		return val, true
	case uint64:
		return int64(val), true
	}
	return 0, false
}
