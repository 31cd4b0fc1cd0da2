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
	"net/url"
	"slices"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"gocloud.dev/blob"
	"gocloud.dev/blob/azureblob"
)

// Source properties read when opening Azure containers. The prefixed
// properties are suffixed with the storage account name.
const (
	AdlsSasTokenPrefix         = "adls.sas-token."
	AdlsConnectionStringPrefix = "adls.connection-string."
	AdlsSharedKeyAccountName   = "adls.auth.shared-key.account.name"
	AdlsSharedKeyAccountKey    = "adls.auth.shared-key.account.key"
	AdlsEndpoint               = "adls.endpoint"
	AdlsProtocol               = "adls.protocol"
)

var adlsSchemes = []string{"abfs", "abfss", "wasb", "wasbs"}

// adlsLocation is a location of the form
// scheme://container@account.dfs.core.windows.net/path.
type adlsLocation struct {
	accountName   string
	containerName string
	hostname      string
	path          string
}

func newAdlsLocation(parsed *url.URL) (*adlsLocation, error) {
	containerName := parsed.User.Username()
	if containerName == "" {
		return nil, fmt.Errorf("gocloud: azure container name is required in %q", parsed.Redacted())
	}

	accountName, _, _ := strings.Cut(parsed.Hostname(), ".")
	if accountName == "" {
		return nil, fmt.Errorf("gocloud: azure account name is required in %q", parsed.Redacted())
	}

	return &adlsLocation{
		accountName:   accountName,
		containerName: containerName,
		hostname:      parsed.Hostname(),
		path:          parsed.Path,
	}, nil
}

// containerURL addresses the container through the blob endpoint of the
// account, which also serves dfs hosts.
func (l *adlsLocation) containerURL(props map[string]string) string {
	protocol := props[AdlsProtocol]
	if protocol == "" {
		protocol = "https"
	}

	domain := props[AdlsEndpoint]
	if domain == "" {
		_, domain, _ = strings.Cut(l.hostname, ".")
		if rest, ok := strings.CutPrefix(domain, "dfs."); ok {
			domain = "blob." + rest
		}
	}

	return fmt.Sprintf("%s://%s.%s/%s", protocol, l.accountName, domain, l.containerName)
}

func propertiesWithPrefix(props map[string]string, prefix string) map[string]string {
	result := map[string]string{}
	for k, v := range props {
		if after, ok := strings.CutPrefix(k, prefix); ok {
			result[after] = v
		}
	}

	return result
}

func createAzureBucket(ctx context.Context, parsed *url.URL, props map[string]string) (*blob.Bucket, error) {
	loc, err := newAdlsLocation(parsed)
	if err != nil {
		return nil, err
	}

	client, err := newContainerClient(loc, props)
	if err != nil {
		return nil, err
	}

	return azureblob.OpenBucket(ctx, client, nil)
}

// newContainerClient picks the credential from the properties in the
// order connection string, shared key, SAS token, default credential.
func newContainerClient(loc *adlsLocation, props map[string]string) (*container.Client, error) {
	containerURL := loc.containerURL(props)

	if cs, ok := propertiesWithPrefix(props, AdlsConnectionStringPrefix)[loc.accountName]; ok {
		return container.NewClientFromConnectionString(cs, loc.containerName, nil)
	}

	accountName, accountKey := props[AdlsSharedKeyAccountName], props[AdlsSharedKeyAccountKey]
	if accountName != "" || accountKey != "" {
		if accountName == "" || accountKey == "" {
			return nil, fmt.Errorf("gocloud: azure shared-key requires both %s and %s",
				AdlsSharedKeyAccountName, AdlsSharedKeyAccountKey)
		}

		cred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
		if err != nil {
			return nil, fmt.Errorf("gocloud: azure shared-key: %w", err)
		}

		return container.NewClientWithSharedKeyCredential(containerURL, cred, nil)
	}

	if sas, ok := propertiesWithPrefix(props, AdlsSasTokenPrefix)[loc.accountName]; ok {
		return container.NewClientWithNoCredential(containerURL+"?"+strings.TrimPrefix(sas, "?"), nil)
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}

	return container.NewClient(containerURL, cred, nil)
}

// adlsKeyExtractor uses the location path as the key. The container and
// account are fixed by the location the file system was loaded for.
func adlsKeyExtractor() KeyExtractor {
	return func(location string) (string, error) {
		parsed, err := url.Parse(location)
		if err != nil {
			return "", err
		}

		if parsed.Scheme == "" {
			return strings.TrimPrefix(parsed.Path, "/"), nil
		}

		if !slices.Contains(adlsSchemes, parsed.Scheme) {
			return "", fmt.Errorf("gocloud: %q is not an azure location", location)
		}

		key := strings.TrimPrefix(parsed.Path, "/")
		if key == "" {
			return "", errors.New("gocloud: azure location has no key")
		}

		return key, nil
	}
}
