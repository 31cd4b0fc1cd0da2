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

package gocloud

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// KeyExtractor maps a location to the object key inside a bucket.
type KeyExtractor func(location string) (string, error)

// defaultKeyExtractor strips "scheme://bucket/" from locations. Locations
// without a scheme are already keys.
func defaultKeyExtractor(bucketName string) KeyExtractor {
	return func(location string) (string, error) {
		_, after, found := strings.Cut(location, "://")
		if !found {
			return strings.TrimPrefix(location, "/"), nil
		}

		key, ok := strings.CutPrefix(after, bucketName+"/")
		if !ok || key == "" {
			return "", fmt.Errorf("gocloud: location %q has no key in bucket %q", location, bucketName)
		}

		return key, nil
	}
}

// blobFS is an IO backed by an object store bucket. Tiles and tileset
// documents are read and written as whole objects.
type blobFS struct {
	bucket       *blob.Bucket
	ctx          context.Context
	keyExtractor KeyExtractor
	// shared buckets outlive the file system and are not closed with it
	shared bool
}

func createBlobFS(ctx context.Context, bucket *blob.Bucket, keyExtractor KeyExtractor) *blobFS {
	return &blobFS{bucket: bucket, ctx: ctx, keyExtractor: keyExtractor}
}

func (b *blobFS) key(op, name string) (string, error) {
	key, err := b.keyExtractor(name)
	if err != nil {
		return "", &fs.PathError{Op: op, Path: name, Err: errors.Join(fs.ErrInvalid, err)}
	}
	if !fs.ValidPath(key) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}

	return key, nil
}

func pathError(op, name string, err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		err = errors.Join(fs.ErrNotExist, err)
	}

	return &fs.PathError{Op: op, Path: name, Err: err}
}

func (b *blobFS) ReadFile(name string) ([]byte, error) {
	key, err := b.key("read", name)
	if err != nil {
		return nil, err
	}

	data, err := b.bucket.ReadAll(b.ctx, key)
	if err != nil {
		return nil, pathError("read", name, err)
	}

	return data, nil
}

func (b *blobFS) WriteFile(name string, content []byte) error {
	key, err := b.key("write", name)
	if err != nil {
		return err
	}

	if err := b.bucket.WriteAll(b.ctx, key, content, nil); err != nil {
		return pathError("write", name, err)
	}

	return nil
}

func (b *blobFS) Close() error {
	if b.shared {
		return nil
	}

	return b.bucket.Close()
}
