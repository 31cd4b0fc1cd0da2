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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAzureBucketEmptyContainerName(t *testing.T) {
	parsedURL, err := url.Parse("abfs://testaccount.dfs.core.windows.net/path")
	require.NoError(t, err)

	_, err = createAzureBucket(context.Background(), parsedURL, map[string]string{})
	assert.ErrorContains(t, err, "container name is required")
}

func TestCreateAzureBucketSharedKeyMissingAccountKey(t *testing.T) {
	parsedURL, err := url.Parse("abfs://container@testaccount.dfs.core.windows.net/path")
	require.NoError(t, err)

	_, err = createAzureBucket(context.Background(), parsedURL, map[string]string{
		AdlsSharedKeyAccountName: "testaccount",
	})
	assert.ErrorContains(t, err, "shared-key requires both")
}

func TestCreateAzureBucketSharedKey(t *testing.T) {
	parsedURL, err := url.Parse("abfs://container@testaccount.dfs.core.windows.net/path")
	require.NoError(t, err)

	bucket, err := createAzureBucket(context.Background(), parsedURL, map[string]string{
		AdlsSharedKeyAccountName: "testaccount",
		AdlsSharedKeyAccountKey:  "dGVzdGtleQ==",
	})
	require.NoError(t, err)
	require.NotNil(t, bucket)
	assert.NoError(t, bucket.Close())
}

func TestNewAdlsLocationUriParsing(t *testing.T) {
	tests := []struct {
		uri               string
		expectedAccount   string
		expectedContainer string
		expectedHostname  string
		expectedPath      string
		shouldFail        bool
	}{
		{
			uri:               "abfs://container@account.dfs.core.windows.net/tile.mlt",
			expectedAccount:   "account",
			expectedContainer: "container",
			expectedHostname:  "account.dfs.core.windows.net",
			expectedPath:      "/tile.mlt",
		},
		{
			uri:               "abfs://container@account.dfs.core.usgovcloudapi.net/tile.mlt",
			expectedAccount:   "account",
			expectedContainer: "container",
			expectedHostname:  "account.dfs.core.usgovcloudapi.net",
			expectedPath:      "/tile.mlt",
		},
		{
			uri:               "wasb://container@account.blob.core.windows.net/tile.mlt",
			expectedAccount:   "account",
			expectedContainer: "container",
			expectedHostname:  "account.blob.core.windows.net",
			expectedPath:      "/tile.mlt",
		},
		{
			uri:        "abfs://account.dfs.core.windows.net/path",
			shouldFail: true,
		},
	}

	for _, test := range tests {
		t.Run(test.uri, func(t *testing.T) {
			parsedURL, err := url.Parse(test.uri)
			require.NoError(t, err)

			location, err := newAdlsLocation(parsedURL)
			if test.shouldFail {
				assert.Error(t, err)
				assert.Nil(t, location)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedAccount, location.accountName)
			assert.Equal(t, test.expectedContainer, location.containerName)
			assert.Equal(t, test.expectedHostname, location.hostname)
			assert.Equal(t, test.expectedPath, location.path)
		})
	}
}

func TestAdlsContainerURL(t *testing.T) {
	parsedURL, err := url.Parse("abfss://tiles@account.dfs.core.windows.net/14/1/2.mlt")
	require.NoError(t, err)
	loc, err := newAdlsLocation(parsedURL)
	require.NoError(t, err)

	assert.Equal(t, "https://account.blob.core.windows.net/tiles", loc.containerURL(nil))
	assert.Equal(t, "http://account.localhost:10000/tiles", loc.containerURL(map[string]string{
		AdlsProtocol: "http",
		AdlsEndpoint: "localhost:10000",
	}))
}

func TestAdlsKeyExtractor(t *testing.T) {
	extractor := adlsKeyExtractor()

	tests := []struct {
		name        string
		input       string
		expectedKey string
		shouldError bool
	}{
		{
			name:        "abfs valid URI",
			input:       "abfs://container@account.dfs.core.windows.net/tiles/0/0/0.mlt",
			expectedKey: "tiles/0/0/0.mlt",
		},
		{
			name:        "wasbs valid URI",
			input:       "wasbs://container@account.blob.core.windows.net/tiles/0/0/0.mlt",
			expectedKey: "tiles/0/0/0.mlt",
		},
		{
			name:        "relative key",
			input:       "tiles/0/0/0.mlt",
			expectedKey: "tiles/0/0/0.mlt",
		},
		{
			name:        "URI with no path",
			input:       "abfs://container@account.dfs.core.windows.net",
			shouldError: true,
		},
		{
			name:        "invalid scheme",
			input:       "s3://bucket/tiles/0/0/0.mlt",
			shouldError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key, err := extractor(test.input)

			if test.shouldError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, test.expectedKey, key)
			}
		})
	}
}

func TestPropertiesWithPrefix(t *testing.T) {
	props := map[string]string{
		AdlsSasTokenPrefix + "account": "sv=1",
		AdlsProtocol:                   "https",
	}
	assert.Equal(t, map[string]string{"account": "sv=1"},
		propertiesWithPrefix(props, AdlsSasTokenPrefix))
}
