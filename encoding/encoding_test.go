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
	"strings"
	"testing"

	"go.litedoc.dev/litedoc"
)

func TestEncodeDocumentHeadingAndParagraph(t *testing.T) {
	doc, err := litedoc.Parse([]byte("# Hello\n\nWorld\n"), litedoc.Litedoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(EncodeDocument(doc))

	if !strings.HasPrefix(got, `{"type":"document","profile":"litedoc","modules":[],"metadata":null,"blocks":[`) {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if !strings.Contains(got, `{"type":"heading","level":1,"content":[{"type":"text","content":"Hello","span":[2,7]}],"span":[0,8]}`) {
		t.Errorf("missing heading encoding in %s", got)
	}
	if !strings.Contains(got, `{"type":"paragraph","content":[{"type":"text","content":"World","span":[9,14]}],"span":[9,15]}`) {
		t.Errorf("missing paragraph encoding in %s", got)
	}
	if !strings.HasSuffix(got, `],"span":[0,15]}`) {
		t.Errorf("unexpected suffix: %s", got)
	}
}

func TestEncodeDocumentModuleList(t *testing.T) {
	doc, err := litedoc.Parse([]byte("@modules tables, math\n\nok\n"), litedoc.Litedoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(EncodeDocument(doc))
	if !strings.Contains(got, `"modules":["tables","math"]`) {
		t.Errorf("modules list not in expected order: %s", got)
	}
}

func TestEncodeDocumentMetadata(t *testing.T) {
	src := "--- meta ---\ntitle: \"Doc\"\nn: 42\n---\n\nbody\n"
	doc, err := litedoc.Parse([]byte(src), litedoc.Litedoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(EncodeDocument(doc))
	if !strings.Contains(got, `"title":"Doc"`) {
		t.Errorf("missing title attr: %s", got)
	}
	if !strings.Contains(got, `"n":42`) {
		t.Errorf("missing n attr: %s", got)
	}
}

func TestEncodeStringEscaping(t *testing.T) {
	doc, err := litedoc.Parse([]byte("line \"quoted\"\tend\n"), litedoc.Litedoc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(EncodeDocument(doc))
	if !strings.Contains(got, `line \"quoted\"\tend`) {
		t.Errorf("expected escaped quotes and tab, got %s", got)
	}
}

func TestEncodeRawBlockFromRecovery(t *testing.T) {
	result := litedoc.ParseWithRecovery([]byte("::list\n- A\n"), litedoc.Litedoc)
	got := string(EncodeDocument(result.Document))
	if !strings.Contains(got, `{"type":"raw_block","content":`) {
		t.Errorf("expected raw_block in output: %s", got)
	}
}
