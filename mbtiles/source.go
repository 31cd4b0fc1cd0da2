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

package mbtiles

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/maplibre/mlt-go"
	mltio "github.com/maplibre/mlt-go/io"
	"github.com/maplibre/mlt-go/metadata"
)

// Scheme is the io scheme addressing the contents of an archive:
//
//	mbtiles:///data/planet.mbtiles#14/8529/5975      tile of a local archive
//	mbtiles:s3://bucket/planet.mbtiles#14/8529/5975  tile of a remote archive
//	mbtiles:///data/planet.mbtiles                   the archive's tileset document
//
// Tiles are read uncompressed. Writing a tile or a tileset document
// creates the local archive when it does not exist yet.
const Scheme = "mbtiles"

// TempDirProp names the directory remote archives are copied to. The
// default is the system temporary directory.
const TempDirProp = "mbtiles.temp-dir"

func init() {
	mltio.Register(func(ctx context.Context, loc *url.URL, props map[string]string) (mltio.IO, error) {
		archive, err := archiveLocation(loc)
		if err != nil {
			return nil, err
		}

		return &source{ctx: ctx, props: props, location: archive}, nil
	}, Scheme)
}

// ParseTileID parses a Z/X/Y tile address.
func ParseTileID(s string) (TileID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return TileID{}, fmt.Errorf("%w: tile id %q is not Z/X/Y", mlt.ErrInvalidArgument, s)
	}

	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return TileID{}, fmt.Errorf("%w: tile id %q is not Z/X/Y", mlt.ErrInvalidArgument, s)
		}
		vals[i] = v
	}

	return TileID{Z: vals[0], X: vals[1], Y: vals[2]}, nil
}

// archiveLocation returns the location of the archive named by an
// mbtiles: URL, without the tile fragment.
func archiveLocation(loc *url.URL) (string, error) {
	switch {
	case loc.Opaque != "":
		return loc.Opaque, nil
	case loc.Host != "":
		return "", fmt.Errorf("%w: mbtiles: location %q names host %q, archives are mbtiles:///path or mbtiles:URL",
			mlt.ErrInvalidArgument, loc.Redacted(), loc.Host)
	case loc.Path == "":
		return "", fmt.Errorf("%w: mbtiles: location %q names no archive", mlt.ErrInvalidArgument, loc.Redacted())
	}

	return loc.Path, nil
}

// localPath reports the file system path of an archive location, or false
// when the archive is held by another io scheme.
func localPath(location string) (string, bool) {
	if !strings.Contains(location, "://") {
		return location, true
	}

	u, err := url.Parse(location)
	if err != nil || u.Scheme != "file" {
		return "", false
	}

	return filepath.FromSlash(u.Path), true
}

// OpenLocation opens the archive at location. Local archives are opened in
// place. Archives held by any other registered io scheme are copied to a
// temporary file first, since SQLite needs a file; the copy is removed
// when the archive is closed.
func OpenLocation(ctx context.Context, props map[string]string, location string) (*Archive, error) {
	if path, ok := localPath(location); ok {
		return Open(ctx, path)
	}

	data, err := mltio.ReadFile(ctx, props, location)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(props[TempDirProp], "mlt-*.mbtiles")
	if err != nil {
		return nil, err
	}
	_, err = f.Write(data)
	if err = errors.Join(err, f.Close()); err != nil {
		os.Remove(f.Name())

		return nil, err
	}

	a, err := Open(ctx, f.Name())
	if err != nil {
		os.Remove(f.Name())

		return nil, err
	}
	a.temp = f.Name()

	return a, nil
}

// source serves an archive through the io package. The archive is opened
// on first use and closed with the source.
type source struct {
	ctx      context.Context
	props    map[string]string
	location string
	archive  *Archive
}

// target splits an mbtiles: location into its archive and tile. ok is
// false when the location addresses the tileset document.
func (s *source) target(op, location string) (id TileID, ok bool, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return id, false, &fs.PathError{Op: op, Path: location, Err: errors.Join(fs.ErrInvalid, err)}
	}
	if archive, err := archiveLocation(u); err != nil || archive != s.location {
		return id, false, &fs.PathError{Op: op, Path: location, Err: errors.Join(fs.ErrInvalid, err)}
	}
	if u.Fragment == "" {
		return id, false, nil
	}

	if id, err = ParseTileID(u.Fragment); err != nil {
		return id, false, &fs.PathError{Op: op, Path: location, Err: err}
	}

	return id, true, nil
}

// open opens the archive for reading or, when forWrite is set, creates it.
// Only local archives can be written.
func (s *source) open(forWrite bool) (*Archive, error) {
	path, local := localPath(s.location)
	if forWrite && !local {
		return nil, &fs.PathError{Op: "write", Path: s.location, Err: errors.ErrUnsupported}
	}
	if s.archive != nil {
		return s.archive, nil
	}

	var err error
	if forWrite {
		s.archive, err = Create(s.ctx, path)
	} else {
		s.archive, err = OpenLocation(s.ctx, s.props, s.location)
	}

	return s.archive, err
}

// ReadFile returns the uncompressed tile named by the location fragment,
// or the tileset document when there is no fragment.
func (s *source) ReadFile(location string) ([]byte, error) {
	id, isTile, err := s.target("read", location)
	if err != nil {
		return nil, err
	}

	a, err := s.open(false)
	if err != nil {
		return nil, err
	}

	if !isTile {
		doc, ok, err := a.MetadataValue(s.ctx, TilesetKey)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &fs.PathError{Op: "read", Path: location,
				Err: fmt.Errorf("%w: no %q metadata entry", fs.ErrNotExist, TilesetKey)}
		}

		return []byte(doc), nil
	}

	data, err := a.Tile(s.ctx, id)
	if errors.Is(err, ErrTileNotFound) {
		err = &fs.PathError{Op: "read", Path: location, Err: errors.Join(fs.ErrNotExist, err)}
	}

	return data, err
}

// WriteFile stores a tile, or the tileset document when the location has
// no fragment. Tileset documents are parsed before they are stored.
func (s *source) WriteFile(location string, content []byte) error {
	id, isTile, err := s.target("write", location)
	if err != nil {
		return err
	}
	if !isTile {
		if _, err := metadata.Parse(content); err != nil {
			return err
		}
	}

	a, err := s.open(true)
	if err != nil {
		return err
	}

	if !isTile {
		return a.SetMetadata(s.ctx, TilesetKey, string(content))
	}

	return a.PutTile(s.ctx, id, content)
}

func (s *source) Close() error {
	if s.archive == nil {
		return nil
	}

	return s.archive.Close()
}
