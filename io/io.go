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

// Package io resolves tile, tileset and archive locations to the storage
// holding them.
//
// A location is a plain path, a file:// URL or a URL whose scheme was
// registered with [Register]. Importing io/gocloud registers the object
// store schemes (s3, gs, abfs, wasb and mem); importing mbtiles registers
// the mbtiles scheme addressing tiles inside an archive.
package io

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

var ErrIONotFound = errors.New("io scheme not registered")

// IO reads whole objects from a storage backend. Tiles and tileset
// documents are small and always consumed in full, so there is no
// streaming access.
type IO interface {
	// ReadFile reads the object at location. Missing objects are
	// reported with an error wrapping fs.ErrNotExist.
	ReadFile(location string) ([]byte, error)
}

// WriteFileIO is an IO that can also store objects, such as tiles
// extracted from an archive.
type WriteFileIO interface {
	IO

	// WriteFile stores content at location, replacing any existing
	// object.
	WriteFile(location string, content []byte) error
}

// LoadFS returns the IO registered for the scheme of location. Plain
// paths and file:// URLs resolve to [LocalFS]; unknown schemes are
// reported with an error wrapping ErrIONotFound.
//
// An IO that implements io.Closer must be closed by the caller.
func LoadFS(ctx context.Context, props map[string]string, location string) (IO, error) {
	factory, loc, err := schemes.lookup(location)
	if err != nil {
		return nil, err
	}

	return factory(ctx, loc, props)
}

// ReadFile loads the IO for location and reads the object there. The IO
// is closed before returning.
func ReadFile(ctx context.Context, props map[string]string, location string) (data []byte, err error) {
	fsys, err := LoadFS(ctx, props, location)
	if err != nil {
		return nil, err
	}
	defer closeIO(fsys, &err)

	if data, err = fsys.ReadFile(location); err != nil {
		return nil, fmt.Errorf("io: reading %s: %w", location, err)
	}

	return data, nil
}

// WriteFile loads the IO for location and stores content there.
// Read-only backends are reported with an error wrapping
// errors.ErrUnsupported.
func WriteFile(ctx context.Context, props map[string]string, location string, content []byte) (err error) {
	fsys, err := LoadFS(ctx, props, location)
	if err != nil {
		return err
	}
	defer closeIO(fsys, &err)

	wf, ok := fsys.(WriteFileIO)
	if !ok {
		return &fs.PathError{Op: "write", Path: location, Err: errors.ErrUnsupported}
	}

	return wf.WriteFile(location, content)
}

func closeIO(fsys IO, err *error) {
	if c, ok := fsys.(io.Closer); ok {
		*err = errors.Join(*err, c.Close())
	}
}
