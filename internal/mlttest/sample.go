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

package mlttest

import "github.com/maplibre/mlt-go/stream"

// SampleTileset describes the single table of SampleTile.
const SampleTileset = `
name: sample
featureTables:
  - name: places
    columns:
      - {name: id, type: UINT_32}
      - {name: geometry, type: GEOMETRY}
      - {name: name, type: STRING, nullable: true}
`

// SampleTile encodes two points: id 7 "harbour" at (10, 20) and id 8
// with no name at (30, 40).
func SampleTile() []byte {
	return NewTable(0, 2).
		Column(Plain(stream.Data, 0, 7, 8)).
		Column(
			RLE(stream.Data, 0, 0, 0),
			Signed(stream.Data, uint8(stream.DictionaryVertex), 10, 20, 30, 40),
		).
		Column(append([][]byte{Present(true, false)}, PlainStrings("harbour")...)...).
		Encode()
}
