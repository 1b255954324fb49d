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

import "strings"

// Profile selects the syntax dialect used to parse a document.
type Profile uint8

const (
	// Litedoc is the native dialect: no modules enabled by default, strict
	// fenced-block grammar.
	Litedoc Profile = iota
	// Md enables a GFM-flavored module default while still recognizing
	// "::" fences for forward compatibility.
	Md
	// MdStrict disables every module, including HTML, regardless of
	// directives.
	MdStrict
)

func (p Profile) String() string {
	switch p {
	case Litedoc:
		return "litedoc"
	case Md:
		return "md"
	case MdStrict:
		return "md-strict"
	default:
		return "unknown"
	}
}

// ParseProfile parses a profile name as accepted by the "@profile" directive
// and the --profile CLI flag.
func ParseProfile(s string) (Profile, bool) {
	switch s {
	case "litedoc":
		return Litedoc, true
	case "md":
		return Md, true
	case "md-strict":
		return MdStrict, true
	default:
		return 0, false
	}
}

// ProfileFromFilename infers a Profile the way the reference CLI does: ".md"
// extensions get Md, everything else gets Litedoc.
func ProfileFromFilename(name string) Profile {
	if strings.HasSuffix(name, ".md") {
		return Md
	}
	return Litedoc
}

// DefaultModules returns the module set a Profile enables absent any
// "@modules" directive.
func (p Profile) DefaultModules() Module {
	switch p {
	case Md:
		return ModuleTables | ModuleTasks | ModuleStrikethrough | ModuleAutolink
	default:
		return 0
	}
}

// Module is a bitmask of opt-in syntax extensions.
type Module uint8

const (
	ModuleTables Module = 1 << iota
	ModuleFootnotes
	ModuleMath
	ModuleTasks
	ModuleStrikethrough
	ModuleAutolink
	ModuleHTML
)

// Has reports whether every bit set in m is also set in the receiver.
func (s Module) Has(m Module) bool {
	return s&m == m
}

var moduleNames = []struct {
	bit  Module
	name string
}{
	{ModuleTables, "tables"},
	{ModuleFootnotes, "footnotes"},
	{ModuleMath, "math"},
	{ModuleTasks, "tasks"},
	{ModuleStrikethrough, "strikethrough"},
	{ModuleAutolink, "autolink"},
	{ModuleHTML, "html"},
}

// ParseModuleName parses a single module name as it appears in an
// "@modules" directive.
func ParseModuleName(s string) (Module, bool) {
	for _, mn := range moduleNames {
		if mn.name == s {
			return mn.bit, true
		}
	}
	return 0, false
}

func (s Module) String() string {
	var names []string
	for _, mn := range moduleNames {
		if s.Has(mn.bit) {
			names = append(names, mn.name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, ",")
}

// effectiveModules applies MdStrict's "no modules ever" rule on top of an
// otherwise-computed module set.
func effectiveModules(p Profile, requested Module) Module {
	if p == MdStrict {
		return 0
	}
	return requested
}
