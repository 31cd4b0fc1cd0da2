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
	"context"
	"fmt"

	"github.com/maplibre/mlt-go/metadata"
	"golang.org/x/sync/errgroup"
)

// DecodeAll decodes independent tiles concurrently, at most
// WithMaxWorkers at a time, and returns their tables in input order.
// Geometry is decoded eagerly by the workers. The first error cancels
// the remaining tiles.
func DecodeAll(ctx context.Context, tiles [][]byte, ts *metadata.Tileset, opts ...Option) ([][]*FeatureTable, error) {
	o := newOptions(opts)
	out := make([][]*FeatureTable, len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(o.maxWorkers, len(tiles))))
	for i, data := range tiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tables, err := Decode(data, ts, opts...)
			if err != nil {
				return fmt.Errorf("tile %d: %w", i, err)
			}
			for _, t := range tables {
				if _, err := t.Geometries(); err != nil {
					return fmt.Errorf("tile %d: %w", i, err)
				}
			}

			out[i] = tables
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
