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

package mlt

import "errors"

var (
	// ErrCorrupt is returned when a tile or stream is malformed: a cursor
	// would run past the end of the buffer, a declared byte length does not
	// match what was consumed, an enum value is out of range, or a varint
	// overflows.
	ErrCorrupt = errors.New("corrupt tile data")
	// ErrNotImplemented is returned for encodings that are recognized but
	// not supported by this decoder, such as FSST string dictionaries or
	// struct columns. Callers may skip the affected column or table.
	ErrNotImplemented = errors.New("not implemented")
	// ErrInvalidArgument is returned when a caller supplies an argument the
	// decoder cannot work with, such as missing tileset metadata.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownFeatureTable is returned when a tile references a feature
	// table id that the tileset metadata does not describe.
	ErrUnknownFeatureTable = errors.New("unknown feature table")
)
