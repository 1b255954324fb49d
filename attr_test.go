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

func TestAttrMapGetLastOccurrenceWins(t *testing.T) {
	var m AttrMap
	m.Set("x", NewAttrInt(1))
	m.Set("x", NewAttrInt(2))
	got, ok := m.Get("x")
	if !ok || got.Int() != 2 {
		t.Errorf("Get(x) = (%v, %v), want (2, true)", got, ok)
	}
}

func TestAttrMapGetMissingKey(t *testing.T) {
	var m AttrMap
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}

func TestAttrMapHas(t *testing.T) {
	var m AttrMap
	if m.Has("x") {
		t.Error("Has(x) = true before Set, want false")
	}
	m.Set("x", NewAttrBool(true))
	if !m.Has("x") {
		t.Error("Has(x) = false after Set, want true")
	}
}

func TestAttrValueKinds(t *testing.T) {
	if NewAttrString("s").Kind() != AttrString {
		t.Error("NewAttrString kind mismatch")
	}
	if NewAttrFloat(1.5).Float() != 1.5 {
		t.Error("NewAttrFloat value mismatch")
	}
	list := NewAttrList([]AttrValue{NewAttrInt(1), NewAttrInt(2)})
	if len(list.List()) != 2 || list.List()[1].Int() != 2 {
		t.Errorf("NewAttrList = %v, want [1 2]", list.List())
	}
}
