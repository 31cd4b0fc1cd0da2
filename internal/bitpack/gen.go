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

//go:build ignore

// gen writes unpack_gen.go, one straight-line unpack routine per bit width.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

const licenseHeader = `// Licensed to the Apache Software Foundation (ASF) under one
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
`

func main() {
	var buf bytes.Buffer
	buf.WriteString(licenseHeader)
	buf.WriteString("\n// Code generated by gen.go. DO NOT EDIT.\n\npackage bitpack\n\n")
	buf.WriteString("var unpackers = [33]func(in []uint32, out []uint32){\n")
	for w := 1; w < 32; w++ {
		fmt.Fprintf(&buf, "\t%d: unpack%d,\n", w, w)
	}
	buf.WriteString("}\n")

	for w := 1; w < 32; w++ {
		fmt.Fprintf(&buf, "\nfunc unpack%d(in []uint32, out []uint32) {\n", w)
		fmt.Fprintf(&buf, "\t_ = in[%d]\n\t_ = out[31]\n", w-1)
		mask := uint64(1)<<w - 1
		for i := 0; i < 32; i++ {
			bit := i * w
			word, shift := bit/32, bit%32
			switch {
			case shift+w < 32:
				fmt.Fprintf(&buf, "\tout[%d] = (in[%d] >> %d) & 0x%x\n", i, word, shift, mask)
			case shift+w == 32:
				fmt.Fprintf(&buf, "\tout[%d] = in[%d] >> %d\n", i, word, shift)
			default:
				fmt.Fprintf(&buf, "\tout[%d] = (in[%d] >> %d) | (in[%d]<<%d)&0x%x\n",
					i, word, shift, word+1, 32-shift, mask)
			}
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("unpack_gen.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
