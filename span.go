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

import "fmt"

// Span is a half-open byte interval [Start, End) into a source buffer.
// Every Block and Inline carries exactly one Span. A parent's Span encloses
// the Span of every descendant; sibling Spans never overlap and appear in
// source order.
type Span struct {
	Start int
	End   int
}

// NewSpan returns a Span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes the Span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the Span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether offset lies within [s.Start, s.End).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Merge returns the smallest Span that covers both s and other.
func (s Span) Merge(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Slice returns the bytes of src covered by s.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
