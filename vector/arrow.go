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

package vector

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/maplibre/mlt-go"
)

// Append appends every row of v to b. The builder must match
// v.DataType().
func Append(b array.Builder, v Vector) error {
	b.Reserve(v.Len())
	for i := range v.Len() {
		val := v.Value(i)
		if val == nil {
			b.AppendNull()
			continue
		}

		switch b := b.(type) {
		case *array.BooleanBuilder:
			b.Append(val.(bool))
		case *array.Int32Builder:
			b.Append(val.(int32))
		case *array.Uint32Builder:
			b.Append(val.(uint32))
		case *array.Int64Builder:
			b.Append(val.(int64))
		case *array.Uint64Builder:
			b.Append(val.(uint64))
		case *array.Float32Builder:
			b.Append(val.(float32))
		case *array.Float64Builder:
			b.Append(val.(float64))
		case *array.StringBuilder:
			b.Append(val.(string))
		default:
			return fmt.Errorf("%w: vector: cannot append %s to %s builder",
				mlt.ErrInvalidArgument, v.DataType(), b.Type())
		}
	}

	return nil
}

// ToArrow copies v into a new arrow array allocated from mem.
func ToArrow(mem memory.Allocator, v Vector) (arrow.Array, error) {
	b := array.NewBuilder(mem, v.DataType())
	defer b.Release()

	if err := Append(b, v); err != nil {
		return nil, err
	}
	return b.NewArray(), nil
}
