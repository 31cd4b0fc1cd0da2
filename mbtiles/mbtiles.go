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

// Package mbtiles reads and writes MBTiles archives holding MapLibre
// tiles.
//
// An archive is a SQLite database with a tiles table addressed by zoom,
// column and TMS row and a metadata table of name/value pairs. Tile rows
// are flipped to and from XYZ here so callers only see XYZ coordinates.
// Tile data may be stored gzip or zlib compressed.
//
// The environment variable MLT_SQL_DEBUG logs the queries of an archive:
//   - MLT_SQL_DEBUG=1 logs only failed queries
//   - MLT_SQL_DEBUG=2 logs all queries
package mbtiles

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/metadata"
	"github.com/maplibre/mlt-go/tile"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// Well known metadata names.
const (
	FormatKey  = "format"
	NameKey    = "name"
	MinZoomKey = "minzoom"
	MaxZoomKey = "maxzoom"
	// TilesetKey holds the tileset metadata document as YAML or JSON.
	TilesetKey = "mlt-tileset"
)

// MIMEType is the format stored for archives of MapLibre tiles.
const MIMEType = "application/vnd.maplibre-vector-tile"

const maxZoom = 30

var ErrTileNotFound = errors.New("mbtiles: tile not found")

type metadataRow struct {
	bun.BaseModel `bun:"table:metadata"`

	Name  string `bun:"name,pk"`
	Value string `bun:"value"`
}

type tileRow struct {
	bun.BaseModel `bun:"table:tiles"`

	ZoomLevel  int    `bun:"zoom_level,pk"`
	TileColumn int    `bun:"tile_column,pk"`
	TileRow    int    `bun:"tile_row,pk"`
	TileData   []byte `bun:"tile_data"`
}

// TileID addresses a tile in XYZ order.
type TileID struct {
	Z, X, Y int
}

func (t TileID) String() string { return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y) }

func (t TileID) validate() error {
	if t.Z < 0 || t.Z > maxZoom {
		return fmt.Errorf("%w: mbtiles: zoom %d out of range", mlt.ErrInvalidArgument, t.Z)
	}
	n := 1 << t.Z
	if t.X < 0 || t.X >= n || t.Y < 0 || t.Y >= n {
		return fmt.Errorf("%w: mbtiles: tile %s out of range", mlt.ErrInvalidArgument, t)
	}

	return nil
}

// flipY converts between XYZ and TMS rows, which is its own inverse.
func flipY(z, y int) int { return 1<<z - 1 - y }

// Archive is an open MBTiles database.
type Archive struct {
	db *bun.DB
	// temp is the local copy of a remote archive, removed on Close
	temp string
}

// Open opens an existing archive.
func Open(ctx context.Context, path string) (*Archive, error) {
	a, err := open(ctx, path)
	if err != nil {
		return nil, err
	}

	exists, err := a.hasTilesTable(ctx)
	if err != nil {
		a.Close()

		return nil, err
	}
	if !exists {
		a.Close()

		return nil, fmt.Errorf("%w: mbtiles: %s has no tiles table", mlt.ErrCorrupt, path)
	}

	return a, nil
}

// Create opens the archive at path, creating the database and its tables
// when they do not exist yet.
func Create(ctx context.Context, path string) (*Archive, error) {
	a, err := open(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := a.createTables(ctx); err != nil {
		a.Close()

		return nil, err
	}

	return a, nil
}

func open(ctx context.Context, path string) (*Archive, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, err
	}

	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()

		return nil, fmt.Errorf("mbtiles: opening %s: %w", path, err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithEnabled(false),
		bundebug.FromEnv("MLT_SQL_DEBUG")))

	return &Archive{db: db}, nil
}

func (a *Archive) hasTilesTable(ctx context.Context) (bool, error) {
	n, err := a.db.NewSelect().
		TableExpr("sqlite_master").
		Where("type IN (?)", bun.In([]string{"table", "view"})).
		Where("name = ?", "tiles").
		Count(ctx)

	return n > 0, err
}

func (a *Archive) createTables(ctx context.Context) error {
	_, err := a.db.NewCreateTable().Model((*metadataRow)(nil)).
		IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = a.db.NewCreateTable().Model((*tileRow)(nil)).
		IfNotExists().Exec(ctx)

	return err
}

// Close closes the database and removes the local copy of a remote
// archive.
func (a *Archive) Close() error {
	err := a.db.Close()
	if a.temp != "" {
		err = errors.Join(err, os.Remove(a.temp))
	}

	return err
}

// Metadata returns all metadata entries.
func (a *Archive) Metadata(ctx context.Context) (map[string]string, error) {
	var rows []metadataRow
	if err := a.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Value
	}

	return out, nil
}

// MetadataValue returns a single metadata entry and whether it exists.
func (a *Archive) MetadataValue(ctx context.Context, name string) (string, bool, error) {
	var row metadataRow
	err := a.db.NewSelect().Model(&row).Where("name = ?", name).Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, err
	}

	return row.Value, true, nil
}

// SetMetadata inserts or replaces a metadata entry.
func (a *Archive) SetMetadata(ctx context.Context, name, value string) error {
	_, err := a.db.NewInsert().Model(&metadataRow{Name: name, Value: value}).
		On("CONFLICT (name) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)

	return err
}

// Tileset parses the tileset metadata stored in the archive.
func (a *Archive) Tileset(ctx context.Context) (*metadata.Tileset, error) {
	doc, ok, err := a.MetadataValue(ctx, TilesetKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: mbtiles: no %q metadata entry", mlt.ErrInvalidArgument, TilesetKey)
	}

	return metadata.Parse([]byte(doc))
}

// Tile returns the uncompressed data of a tile. Missing tiles are
// ErrTileNotFound.
func (a *Archive) Tile(ctx context.Context, id TileID) ([]byte, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}

	var row tileRow
	err := a.db.NewSelect().Model(&row).
		Where("zoom_level = ?", id.Z).
		Where("tile_column = ?", id.X).
		Where("tile_row = ?", flipY(id.Z, id.Y)).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %s", ErrTileNotFound, id)
	case err != nil:
		return nil, err
	}

	data, err := decompress(row.TileData)
	if err != nil {
		return nil, fmt.Errorf("mbtiles: tile %s: %w", id, err)
	}

	return data, nil
}

// PutTile inserts or replaces a tile. The data is stored as given.
func (a *Archive) PutTile(ctx context.Context, id TileID, data []byte) error {
	if err := id.validate(); err != nil {
		return err
	}

	_, err := a.db.NewInsert().Model(&tileRow{
		ZoomLevel:  id.Z,
		TileColumn: id.X,
		TileRow:    flipY(id.Z, id.Y),
		TileData:   data,
	}).
		On("CONFLICT (zoom_level, tile_column, tile_row) DO UPDATE").
		Set("tile_data = EXCLUDED.tile_data").
		Exec(ctx)

	return err
}

// Tiles yields the ids of all tiles in zoom, column, row order. Iteration
// stops at the first error.
func (a *Archive) Tiles(ctx context.Context) iter.Seq2[TileID, error] {
	return func(yield func(TileID, error) bool) {
		rows, err := a.db.NewSelect().Model((*tileRow)(nil)).
			Column("zoom_level", "tile_column", "tile_row").
			Order("zoom_level", "tile_column", "tile_row").
			Rows(ctx)
		if err != nil {
			yield(TileID{}, err)

			return
		}
		defer rows.Close()

		for rows.Next() {
			var row tileRow
			if err := a.db.ScanRow(ctx, rows, &row); err != nil {
				yield(TileID{}, err)

				return
			}

			id := TileID{Z: row.ZoomLevel, X: row.TileColumn, Y: flipY(row.ZoomLevel, row.TileRow)}
			if !yield(id, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(TileID{}, err)
		}
	}
}

// DecodeTile reads a tile and decodes it with the archive's tileset
// metadata.
func (a *Archive) DecodeTile(ctx context.Context, id TileID, opts ...tile.Option) ([]*tile.FeatureTable, error) {
	ts, err := a.Tileset(ctx)
	if err != nil {
		return nil, err
	}

	data, err := a.Tile(ctx, id)
	if err != nil {
		return nil, err
	}

	return tile.Decode(data, ts, opts...)
}

// decompress inflates gzip and zlib payloads and returns anything else
// unchanged.
func decompress(data []byte) ([]byte, error) {
	var (
		r   io.ReadCloser
		err error
	)
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		r, err = gzip.NewReader(bytes.NewReader(data))
	case len(data) >= 2 && data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0:
		r, err = zlib.NewReader(bytes.NewReader(data))
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mlt.ErrCorrupt, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mlt.ErrCorrupt, err)
	}

	return out, nil
}
