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

package io

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalFS reads and writes tiles on the local file system. Locations are
// plain paths or file:// URLs without a host.
type LocalFS struct{}

func localPath(op, location string) (string, error) {
	if !strings.HasPrefix(location, "file:") {
		return location, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", &fs.PathError{Op: op, Path: location, Err: errors.Join(fs.ErrInvalid, err)}
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", &fs.PathError{Op: op, Path: location, Err: fs.ErrInvalid}
	}

	return filepath.FromSlash(u.Path), nil
}

func (LocalFS) ReadFile(location string) ([]byte, error) {
	name, err := localPath("read", location)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(name)
}

// WriteFile creates the missing parent directories of location, such as
// the zoom and column directories of a tile pyramid, and replaces the
// file atomically.
func (LocalFS) WriteFile(location string, content []byte) (err error) {
	name, err := localPath("write", location)
	if err != nil {
		return err
	}

	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	_, err = f.Write(content)
	if err = errors.Join(err, f.Close()); err != nil {
		return err
	}
	if err = os.Chmod(f.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}
