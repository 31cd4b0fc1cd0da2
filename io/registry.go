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
	"context"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"sync"
)

// SchemeFactory opens the IO serving a parsed location. props carries the
// source properties, such as credentials and endpoints, from the
// configuration file.
type SchemeFactory func(ctx context.Context, loc *url.URL, props map[string]string) (IO, error)

type registry struct {
	mu        sync.RWMutex
	factories map[string]SchemeFactory
}

var schemes = &registry{factories: map[string]SchemeFactory{}}

func init() {
	Register(func(context.Context, *url.URL, map[string]string) (IO, error) {
		return LocalFS{}, nil
	}, "", "file")
}

// Register makes factory serve each of the given schemes, replacing any
// factory registered before. Schemes are case insensitive.
func Register(factory SchemeFactory, scheme ...string) {
	if factory == nil {
		panic("io: Register factory is nil")
	}

	schemes.mu.Lock()
	defer schemes.mu.Unlock()
	for _, s := range scheme {
		schemes.factories[strings.ToLower(s)] = factory
	}
}

// Unregister removes the factories of the given schemes.
func Unregister(scheme ...string) {
	schemes.mu.Lock()
	defer schemes.mu.Unlock()
	for _, s := range scheme {
		delete(schemes.factories, strings.ToLower(s))
	}
}

// RegisteredSchemes returns the sorted list of registered schemes.
func RegisteredSchemes() []string {
	schemes.mu.RLock()
	defer schemes.mu.RUnlock()

	return slices.Sorted(maps.Keys(schemes.factories))
}

// lookup parses location and returns the factory for its scheme.
func (r *registry) lookup(location string) (SchemeFactory, *url.URL, error) {
	loc, err := url.Parse(location)
	if err != nil {
		return nil, nil, fmt.Errorf("io: invalid location %q: %w", location, err)
	}

	r.mu.RLock()
	factory, ok := r.factories[loc.Scheme]
	r.mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrIONotFound, loc.Scheme)
	}

	return factory, loc, nil
}
