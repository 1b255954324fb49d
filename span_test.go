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

import "testing"

func TestSpanLen(t *testing.T) {
	s := NewSpan(3, 9)
	if got := s.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
}

func TestSpanIsEmpty(t *testing.T) {
	if !NewSpan(5, 5).IsEmpty() {
		t.Error("NewSpan(5, 5).IsEmpty() = false, want true")
	}
	if NewSpan(5, 6).IsEmpty() {
		t.Error("NewSpan(5, 6).IsEmpty() = true, want false")
	}
}

func TestSpanContains(t *testing.T) {
	s := NewSpan(2, 5)
	tests := []struct {
		offset int
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestSpanMerge(t *testing.T) {
	got := NewSpan(4, 10).Merge(NewSpan(0, 6))
	want := NewSpan(0, 10)
	if got != want {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}
