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

package litedoc

import "golang.org/x/net/html/atom"

// isKnownHTMLTag reports whether name is one of the fixed set of HTML5 tag
// names, used to decide whether a "<name" line opens an HtmlBlock. HTML is
// an opaque pass-through module here, so only tag recognition is needed,
// never tree construction.
func isKnownHTMLTag(name string) bool {
	return atom.Lookup([]byte(lowerASCII(name))) != 0
}

func lowerASCII(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return string(out)
}
