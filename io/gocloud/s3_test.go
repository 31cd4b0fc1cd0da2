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
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAWSConfig(t *testing.T) {
	t.Run("region", func(t *testing.T) {
		cfg, err := ParseAWSConfig(t.Context(), map[string]string{
			S3Region: "eu-west-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", cfg.Region)
	})

	t.Run("static credentials", func(t *testing.T) {
		cfg, err := ParseAWSConfig(t.Context(), map[string]string{
			S3Region:          "us-east-1",
			S3AccessKeyID:     "AKID",
			S3SecretAccessKey: "SECRET",
			S3SessionToken:    "TOKEN",
		})
		require.NoError(t, err)

		creds, err := cfg.Credentials.Retrieve(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "AKID", creds.AccessKeyID)
		assert.Equal(t, "SECRET", creds.SecretAccessKey)
		assert.Equal(t, "TOKEN", creds.SessionToken)
	})

	t.Run("anonymous", func(t *testing.T) {
		cfg, err := ParseAWSConfig(t.Context(), map[string]string{
			S3Region:    "us-east-1",
			S3Anonymous: "true",
		})
		require.NoError(t, err)

		creds, err := cfg.Credentials.Retrieve(t.Context())
		require.NoError(t, err)
		assert.Empty(t, creds.AccessKeyID)
	})

	t.Run("invalid anonymous flag", func(t *testing.T) {
		_, err := ParseAWSConfig(t.Context(), map[string]string{
			S3Anonymous: "maybe",
		})
		assert.ErrorContains(t, err, "invalid s3.anonymous value")
	})

	t.Run("invalid proxy", func(t *testing.T) {
		_, err := ParseAWSConfig(t.Context(), map[string]string{
			S3ProxyURI: "://proxy",
		})
		assert.ErrorContains(t, err, "invalid s3 proxy url")
	})
}

func TestCreateS3BucketUsesContextConfig(t *testing.T) {
	// the invalid property would fail if the config were parsed from props
	props := map[string]string{S3Anonymous: "maybe", S3EndpointURL: "http://localhost:9000"}
	parsed, err := url.Parse("s3://tiles/14/8529/5975.mlt")
	require.NoError(t, err)

	_, err = createS3Bucket(t.Context(), parsed, props)
	require.ErrorContains(t, err, "invalid s3.anonymous value")

	ctx := WithAWSConfig(t.Context(), &aws.Config{Region: "us-east-1"})
	bucket, err := createS3Bucket(ctx, parsed, props)
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())
}

func TestS3UsePathStyle(t *testing.T) {
	assert.True(t, s3UsePathStyle(nil))
	assert.False(t, s3UsePathStyle(map[string]string{S3ForceVirtualAddressing: "true"}))
	assert.True(t, s3UsePathStyle(map[string]string{S3ForceVirtualAddressing: "false"}))
	assert.True(t, s3UsePathStyle(map[string]string{S3ForceVirtualAddressing: "nope"}))
}

func TestAWSConfigContext(t *testing.T) {
	assert.Nil(t, awsConfigFrom(t.Context()))

	cfg := &aws.Config{Region: "eu-central-1"}
	assert.Same(t, cfg, awsConfigFrom(WithAWSConfig(t.Context(), cfg)))
}
