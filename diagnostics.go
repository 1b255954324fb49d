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

// DiagnosticKind identifies the class of a recoverable parse error.
type DiagnosticKind uint8

const (
	UnterminatedFence DiagnosticKind = iota
	UnterminatedCodeFence
	MissingLanguage
	MalformedAttribute
	MalformedMetadata
	UnknownModule
	BadTable
	UnexpectedEof
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnterminatedFence:
		return "unterminated-fence"
	case UnterminatedCodeFence:
		return "unterminated-code-fence"
	case MissingLanguage:
		return "missing-language"
	case MalformedAttribute:
		return "malformed-attribute"
	case MalformedMetadata:
		return "malformed-metadata"
	case UnknownModule:
		return "unknown-module"
	case BadTable:
		return "bad-table"
	case UnexpectedEof:
		return "unexpected-eof"
	default:
		return "unknown"
	}
}

// Fatal reports whether this kind of diagnostic represents a condition with
// no recoverable continuation. Only UnexpectedEof is fatal-capable. The
// parser itself does not consult Fatal: strict mode stops at the first
// diagnostic of any kind, and recovery mode records every kind and keeps
// parsing.
func (k DiagnosticKind) Fatal() bool {
	return k == UnexpectedEof
}

// Diagnostic is a recorded recoverable error: a kind, the span of the
// offending region, and a short human-readable message.
type Diagnostic struct {
	Kind    DiagnosticKind
	Span    Span
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at %s: %s", d.Kind, d.Span, d.Message)
}

// Diagnostics is an ordered list of Diagnostic, in the order encountered
// during the parse.
type Diagnostics []Diagnostic

// IsEmpty reports whether no diagnostics were recorded.
func (ds Diagnostics) IsEmpty() bool {
	return len(ds) == 0
}

// HasFatal reports whether any diagnostic in ds is of a fatal-capable kind.
func (ds Diagnostics) HasFatal() bool {
	for _, d := range ds {
		if d.Kind.Fatal() {
			return true
		}
	}
	return false
}
