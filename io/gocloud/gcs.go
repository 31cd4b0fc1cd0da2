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
	"fmt"
	"net/url"
	"strconv"

	"cloud.google.com/go/storage"
	"gocloud.dev/blob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcp"
	"google.golang.org/api/option"
)

// Source properties read when opening GCS buckets. Key files hold service
// account credentials.
const (
	GCSEndpoint  = "gcs.endpoint"
	GCSKeyPath   = "gcs.keypath"
	GCSJSONKey   = "gcs.jsonkey"
	GCSAnonymous = "gcs.anonymous"
	// GCSJSONReads reads objects through the JSON API instead of XML.
	GCSJSONReads = "gcs.json-reads"
)

func parseBoolProp(props map[string]string, key string) (bool, error) {
	v, ok := props[key]
	if !ok {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("gocloud: invalid %s value %q", key, v)
	}

	return b, nil
}

// gcsOptions maps source properties to storage client options and
// reports whether the bucket is read without credentials.
func gcsOptions(props map[string]string) ([]option.ClientOption, bool, error) {
	anonymous, err := parseBoolProp(props, GCSAnonymous)
	if err != nil {
		return nil, false, err
	}
	jsonReads, err := parseBoolProp(props, GCSJSONReads)
	if err != nil {
		return nil, false, err
	}

	var opts []option.ClientOption
	if endpoint := props[GCSEndpoint]; endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	switch {
	case anonymous:
		opts = append(opts, option.WithoutAuthentication())
	case props[GCSJSONKey] != "":
		opts = append(opts, option.WithAuthCredentialsJSON(option.ServiceAccount, []byte(props[GCSJSONKey])))
	case props[GCSKeyPath] != "":
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, props[GCSKeyPath]))
	}
	if jsonReads {
		opts = append(opts, storage.WithJSONReads())
	}

	return opts, anonymous, nil
}

// createGCSBucket opens the bucket named by the location host. Without
// default credentials public buckets are read anonymously.
func createGCSBucket(ctx context.Context, loc *url.URL, props map[string]string) (*blob.Bucket, error) {
	opts, anonymous, err := gcsOptions(props)
	if err != nil {
		return nil, err
	}

	client := gcp.NewAnonymousHTTPClient(gcp.DefaultTransport())
	if creds, _ := gcp.DefaultCredentials(ctx); creds != nil && !anonymous {
		if client, err = gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds)); err != nil {
			return nil, err
		}
	}

	return gcsblob.OpenBucket(ctx, client, loc.Host, &gcsblob.Options{ClientOptions: opts})
}
