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

// Package gocloud registers object store schemes with the io package.
// Import it for its side effects:
//
//	import _ "github.com/maplibre/mlt-go/io/gocloud"
//
// Tiles, tileset documents and archives are then addressed as
// s3://bucket/key, gs://bucket/key,
// abfs://container@account.dfs.core.windows.net/key or, for process local
// buckets, mem://bucket/key.
package gocloud

import (
	"context"
	"net/url"
	"sync"

	mltio "github.com/maplibre/mlt-go/io"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

type bucketOpener func(ctx context.Context, loc *url.URL, props map[string]string) (*blob.Bucket, error)

// bucketFactory adapts a bucket opener to an io scheme factory. The
// bucket is owned by the returned IO.
func bucketFactory(open bucketOpener, keys func(*url.URL) KeyExtractor) mltio.SchemeFactory {
	return func(ctx context.Context, loc *url.URL, props map[string]string) (mltio.IO, error) {
		bucket, err := open(ctx, loc, props)
		if err != nil {
			return nil, err
		}

		return createBlobFS(ctx, bucket, keys(loc)), nil
	}
}

func hostKeys(loc *url.URL) KeyExtractor { return defaultKeyExtractor(loc.Host) }

var memBuckets sync.Map // host -> func() *blob.Bucket

// openMemBucket returns the bucket of the location host. Buckets live for
// the lifetime of the process so tiles written by one command can be read
// by the next.
func openMemBucket(ctx context.Context, loc *url.URL, _ map[string]string) mltio.IO {
	b, _ := memBuckets.LoadOrStore(loc.Host, sync.OnceValue(func() *blob.Bucket {
		return memblob.OpenBucket(nil)
	}))

	fsys := createBlobFS(ctx, b.(func() *blob.Bucket)(), hostKeys(loc))
	fsys.shared = true

	return fsys
}

func init() {
	mltio.Register(bucketFactory(createS3Bucket, hostKeys), "s3", "s3a", "s3n")
	mltio.Register(bucketFactory(createGCSBucket, hostKeys), "gs")
	mltio.Register(bucketFactory(createAzureBucket, func(*url.URL) KeyExtractor {
		return adlsKeyExtractor()
	}), adlsSchemes...)
	mltio.Register(func(ctx context.Context, loc *url.URL, props map[string]string) (mltio.IO, error) {
		return openMemBucket(ctx, loc, props), nil
	}, "mem")
}
