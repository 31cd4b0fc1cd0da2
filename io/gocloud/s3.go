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
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gocloud.dev/blob"
	"gocloud.dev/blob/s3blob"
)

// Source properties read when opening S3 buckets.
const (
	S3Region                 = "s3.region"
	S3SessionToken           = "s3.session-token"
	S3SecretAccessKey        = "s3.secret-access-key"
	S3AccessKeyID            = "s3.access-key-id"
	S3EndpointURL            = "s3.endpoint"
	S3ProxyURI               = "s3.proxy-uri"
	S3ForceVirtualAddressing = "s3.force-virtual-addressing"
	S3Anonymous              = "s3.anonymous"
)

type awsConfigKey struct{}

// WithAWSConfig returns a context whose S3 locations are opened with cfg
// instead of a configuration built from the source properties.
func WithAWSConfig(ctx context.Context, cfg *aws.Config) context.Context {
	return context.WithValue(ctx, awsConfigKey{}, cfg)
}

func awsConfigFrom(ctx context.Context) *aws.Config {
	cfg, _ := ctx.Value(awsConfigKey{}).(*aws.Config)

	return cfg
}

// ParseAWSConfig builds an AWS configuration from location properties on
// top of the default credential chain.
func ParseAWSConfig(ctx context.Context, props map[string]string) (*aws.Config, error) {
	opts := []func(*config.LoadOptions) error{}

	if region, ok := props[S3Region]; ok {
		opts = append(opts, config.WithRegion(region))
	}

	anonymous, err := parseBoolProp(props, S3Anonymous)
	if err != nil {
		return nil, err
	}

	accessKey, secretKey, token := props[S3AccessKeyID], props[S3SecretAccessKey], props[S3SessionToken]
	switch {
	case anonymous:
		opts = append(opts, config.WithCredentialsProvider(aws.AnonymousCredentials{}))
	case accessKey != "" || secretKey != "" || token != "":
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, token)))
	}

	if proxy, ok := props[S3ProxyURI]; ok {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			return nil, fmt.Errorf("gocloud: invalid s3 proxy url '%s'", proxy)
		}

		opts = append(opts, config.WithHTTPClient(awshttp.NewBuildableClient().WithTransportOptions(
			func(t *http.Transport) {
				t.Proxy = http.ProxyURL(proxyURL)
			},
		)))
	}

	awscfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &awscfg, nil
}

func s3UsePathStyle(props map[string]string) bool {
	if forceVirtual, ok := props[S3ForceVirtualAddressing]; ok {
		if b, err := strconv.ParseBool(forceVirtual); err == nil {
			return !b
		}
	}

	return true
}

func createS3Bucket(ctx context.Context, parsed *url.URL, props map[string]string) (*blob.Bucket, error) {
	awscfg := awsConfigFrom(ctx)
	if awscfg == nil {
		var err error
		if awscfg, err = ParseAWSConfig(ctx, props); err != nil {
			return nil, err
		}
	}

	endpoint, ok := props[S3EndpointURL]
	if !ok {
		endpoint = os.Getenv("AWS_S3_ENDPOINT")
	}

	client := s3.NewFromConfig(*awscfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = s3UsePathStyle(props)
	})

	return s3blob.OpenBucketV2(ctx, client, parsed.Host, nil)
}
