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

package main

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/config"
	mltio "github.com/maplibre/mlt-go/io"
	"github.com/maplibre/mlt-go/mbtiles"
	"github.com/maplibre/mlt-go/metadata"
	"github.com/maplibre/mlt-go/tile"
)

// cli carries the parsed arguments merged with the configured source.
type cli struct {
	cfg        Config
	out        Output
	props      map[string]string
	baseURI    string
	maxWorkers int
}

func (c *cli) mergeConf(src *config.SourceConfig) {
	if len(c.cfg.Metadata) == 0 {
		c.cfg.Metadata = src.Metadata
	}
	if len(c.cfg.Output) == 0 {
		c.cfg.Output = src.Output
	}
	c.baseURI = src.URI
	c.props = src.Props
}

func (c *cli) run(ctx context.Context) error {
	switch {
	case c.cfg.Layers:
		return c.layers(ctx)
	case c.cfg.Schema:
		return c.schema(ctx)
	case c.cfg.Features:
		return c.features(ctx)
	case c.cfg.Geometry:
		return c.geometry(ctx)
	case c.cfg.MBTiles:
		return c.describeArchive(ctx)
	case c.cfg.Extract:
		return c.extract(ctx)
	}

	return fmt.Errorf("%w: no command given", mlt.ErrInvalidArgument)
}

// location resolves relative tile, metadata and archive locations against
// the source URI. Absolute paths and locations with a scheme, such as
// s3:// or mbtiles:, are used as given.
func (c *cli) location(name string) string {
	if c.baseURI == "" || strings.HasPrefix(name, "/") {
		return name
	}
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		return name
	}

	return strings.TrimSuffix(c.baseURI, "/") + "/" + name
}

func (c *cli) tileset(ctx context.Context) (*metadata.Tileset, error) {
	if c.cfg.Metadata == "" {
		return nil, fmt.Errorf("%w: --metadata is required", mlt.ErrInvalidArgument)
	}

	data, err := mltio.ReadFile(ctx, c.props, c.location(c.cfg.Metadata))
	if err != nil {
		return nil, err
	}

	return metadata.Parse(data)
}

func (c *cli) decodeOptions() []tile.Option {
	opts := []tile.Option{tile.WithMaxWorkers(c.maxWorkers)}
	if c.cfg.Properties != "" {
		opts = append(opts, tile.WithProperties(parsePropertyList(c.cfg.Properties)...))
	}

	return opts
}

func (c *cli) decode(ctx context.Context, location string) ([]*tile.FeatureTable, error) {
	ts, err := c.tileset(ctx)
	if err != nil {
		return nil, err
	}

	data, err := mltio.ReadFile(ctx, c.props, c.location(location))
	if err != nil {
		return nil, err
	}

	tables, err := tile.Decode(data, ts, c.decodeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	return c.filter(tables)
}

func (c *cli) filter(tables []*tile.FeatureTable) ([]*tile.FeatureTable, error) {
	if c.cfg.Layer == "" {
		return tables, nil
	}

	for _, t := range tables {
		if t.Name == c.cfg.Layer {
			return []*tile.FeatureTable{t}, nil
		}
	}

	return nil, fmt.Errorf("%w: no layer %q", mlt.ErrInvalidArgument, c.cfg.Layer)
}

func (c *cli) layers(ctx context.Context) error {
	ts, err := c.tileset(ctx)
	if err != nil {
		return err
	}

	data := make([][]byte, len(c.cfg.Tiles))
	for i, loc := range c.cfg.Tiles {
		if data[i], err = mltio.ReadFile(ctx, c.props, c.location(loc)); err != nil {
			return err
		}
	}

	decoded, err := tile.DecodeAll(ctx, data, ts, c.decodeOptions()...)
	if err != nil {
		return err
	}

	for i, tables := range decoded {
		c.out.Layers(c.cfg.Tiles[i], tables)
	}

	return nil
}

func (c *cli) schema(ctx context.Context) error {
	tables, err := c.decode(ctx, c.cfg.Tiles[0])
	if err != nil {
		return err
	}

	for _, t := range tables {
		sc, err := t.ArrowSchema()
		if err != nil {
			return err
		}
		c.out.Schema(t.Name, sc)
	}

	return nil
}

func (c *cli) features(ctx context.Context) error {
	limit := 0
	if c.cfg.Limit != "" {
		n, err := strconv.Atoi(c.cfg.Limit)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: invalid --limit %q", mlt.ErrInvalidArgument, c.cfg.Limit)
		}
		limit = n
	}

	tables, err := c.decode(ctx, c.cfg.Tiles[0])
	if err != nil {
		return err
	}

	for _, t := range tables {
		feats, err := collect(t.Features(), limit)
		if err != nil {
			return fmt.Errorf("layer %q: %w", t.Name, err)
		}
		c.out.Features(t.Name, feats)
	}

	return nil
}

func collect(seq iter.Seq2[tile.Feature, error], limit int) ([]tile.Feature, error) {
	var out []tile.Feature
	for f, err := range seq {
		if err != nil {
			return nil, err
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, f)
	}

	return out, nil
}

func (c *cli) geometry(ctx context.Context) error {
	idx, err := strconv.Atoi(c.cfg.Feature)
	if err != nil {
		return fmt.Errorf("%w: invalid feature index %q", mlt.ErrInvalidArgument, c.cfg.Feature)
	}

	tables, err := c.decode(ctx, c.cfg.Tiles[0])
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return fmt.Errorf("%w: tile has no layers", mlt.ErrInvalidArgument)
	}

	t := tables[0]
	f, err := t.Feature(idx)
	if err != nil {
		return fmt.Errorf("layer %q: %w", t.Name, err)
	}

	c.out.Geometry(t.Name, idx, f.Geometry)

	return nil
}

func (c *cli) describeArchive(ctx context.Context) error {
	a, err := mbtiles.OpenLocation(ctx, c.props, c.location(c.cfg.Archive))
	if err != nil {
		return err
	}
	defer a.Close()

	if c.cfg.TileID == "" {
		md, err := a.Metadata(ctx)
		if err != nil {
			return err
		}
		c.out.Metadata(md)

		var ids []mbtiles.TileID
		for id, err := range a.Tiles(ctx) {
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		c.out.TileIDs(ids)

		return nil
	}

	id, err := mbtiles.ParseTileID(c.cfg.TileID)
	if err != nil {
		return err
	}

	var tables []*tile.FeatureTable
	if c.cfg.Metadata == "" {
		tables, err = a.DecodeTile(ctx, id, c.decodeOptions()...)
	} else {
		var ts *metadata.Tileset
		if ts, err = c.tileset(ctx); err != nil {
			return err
		}
		var data []byte
		if data, err = a.Tile(ctx, id); err != nil {
			return err
		}
		tables, err = tile.Decode(data, ts, c.decodeOptions()...)
	}
	if err != nil {
		return err
	}

	if tables, err = c.filter(tables); err != nil {
		return err
	}
	c.out.Layers(c.cfg.Archive+"#"+id.String(), tables)

	return nil
}

func (c *cli) extract(ctx context.Context) error {
	id, err := mbtiles.ParseTileID(c.cfg.TileID)
	if err != nil {
		return err
	}

	a, err := mbtiles.OpenLocation(ctx, c.props, c.location(c.cfg.Archive))
	if err != nil {
		return err
	}
	defer a.Close()

	data, err := a.Tile(ctx, id)
	if err != nil {
		return err
	}

	if err := mltio.WriteFile(ctx, c.props, c.cfg.Location, data); err != nil {
		return err
	}
	c.out.Text(fmt.Sprintf("Extracted %s (%d bytes) to %s", id, len(data), c.cfg.Location))

	return nil
}
