// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"bytes"

	"go4.org/bytereplacer"
)

// jsonStringEscaper replaces the bytes that have a short JSON escape
// (backslash, quote, newline, carriage return, tab); writeString escapes
// the remaining control bytes. It is the JSON-string analogue of the
// HTML byte escaper zombiezen.com/go/commonmark builds with the same
// primitive for rendering text nodes.
var jsonStringEscaper = bytereplacer.New(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func writeString(w *bytes.Buffer, s string) {
	w.WriteByte('"')
	for _, b := range jsonStringEscaper.Replace([]byte(s)) {
		if b < 0x20 {
			// Control bytes without a short escape use the \u00XX form.
			const hex = "0123456789abcdef"
			w.WriteString(`\u00`)
			w.WriteByte(hex[b>>4])
			w.WriteByte(hex[b&0xf])
			continue
		}
		w.WriteByte(b)
	}
	w.WriteByte('"')
}
