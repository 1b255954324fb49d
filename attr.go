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

// AttrValueKind discriminates the variants of AttrValue.
type AttrValueKind uint8

const (
	AttrString AttrValueKind = iota
	AttrBool
	AttrInt
	AttrFloat
	AttrList
)

// AttrValue is one value in an AttrMap: a string, bool, 64-bit signed
// integer, IEEE 754 double, or a list of the preceding scalar kinds.
type AttrValue struct {
	kind  AttrValueKind
	str   string
	b     bool
	i     int64
	f     float64
	items []AttrValue
}

func NewAttrString(s string) AttrValue   { return AttrValue{kind: AttrString, str: s} }
func NewAttrBool(b bool) AttrValue       { return AttrValue{kind: AttrBool, b: b} }
func NewAttrInt(i int64) AttrValue       { return AttrValue{kind: AttrInt, i: i} }
func NewAttrFloat(f float64) AttrValue   { return AttrValue{kind: AttrFloat, f: f} }
func NewAttrList(items []AttrValue) AttrValue {
	return AttrValue{kind: AttrList, items: items}
}

func (v AttrValue) Kind() AttrValueKind { return v.kind }
func (v AttrValue) String() string      { return v.str }
func (v AttrValue) Bool() bool          { return v.b }
func (v AttrValue) Int() int64          { return v.i }
func (v AttrValue) Float() float64      { return v.f }
func (v AttrValue) List() []AttrValue   { return v.items }

// AttrPair is one entry of an AttrMap.
type AttrPair struct {
	Key   string
	Value AttrValue
}

// AttrMap is an ordered sequence of key/value pairs, as produced by the
// metadata block and fenced-block attribute lists.
type AttrMap struct {
	Pairs []AttrPair
}

// Get returns the value of the last occurrence of key, and whether key was
// present at all.
func (m AttrMap) Get(key string) (AttrValue, bool) {
	for i := len(m.Pairs) - 1; i >= 0; i-- {
		if m.Pairs[i].Key == key {
			return m.Pairs[i].Value, true
		}
	}
	return AttrValue{}, false
}

// Set appends a key/value pair. Callers that want "last occurrence wins"
// lookup semantics (per Get) may append duplicate keys freely.
func (m *AttrMap) Set(key string, value AttrValue) {
	m.Pairs = append(m.Pairs, AttrPair{Key: key, Value: value})
}

// Has reports whether key occurs in the map.
func (m AttrMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}
