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

// Package litedoc provides a parser for LiteDoc, a document format designed
// for deterministic parsing of machine-generated structured text. Unlike
// Markdown, LiteDoc's block boundaries are explicit "::name … ::" fences, so
// parsing never needs indentation heuristics, backtracking, or ambiguity
// resolution against emitter quirks.
//
// The parser is a single-pass, zero-copy scanner: it converts a UTF-8 source
// buffer into a typed syntax tree with a byte Span on every node, borrowing
// from the source buffer wherever possible. Malformed input is recovered
// from deterministically rather than rejected outright; see
// [ParseWithRecovery].
package litedoc
