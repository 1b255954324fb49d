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

func TestDiagnosticKindFatal(t *testing.T) {
	if !UnexpectedEof.Fatal() {
		t.Error("UnexpectedEof.Fatal() = false, want true")
	}
	if UnterminatedFence.Fatal() {
		t.Error("UnterminatedFence.Fatal() = true, want false")
	}
}

func TestDiagnosticsHasFatal(t *testing.T) {
	ds := Diagnostics{{Kind: MissingLanguage}}
	if ds.HasFatal() {
		t.Error("HasFatal() = true, want false")
	}
	ds = append(ds, Diagnostic{Kind: UnexpectedEof})
	if !ds.HasFatal() {
		t.Error("HasFatal() = false, want true")
	}
}

func TestDiagnosticsIsEmpty(t *testing.T) {
	var ds Diagnostics
	if !ds.IsEmpty() {
		t.Error("IsEmpty() = false on nil Diagnostics, want true")
	}
}

func TestDiagnosticError(t *testing.T) {
	d := &Diagnostic{Kind: MissingLanguage, Span: NewSpan(0, 3), Message: "needs a language tag"}
	want := "missing-language at [0,3): needs a language tag"
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
