package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.litedoc.dev/litedoc/internal/cli"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.litedoc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCommandPrintsCanonicalJSON(t *testing.T) {
	path := writeFixture(t, "# Hello\n\nWorld\n")

	root := cli.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"parse", path})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"type":"heading"`)
	assert.Contains(t, out.String(), `"content":"Hello"`)
}

func TestValidateCommandReportsDiagnostics(t *testing.T) {
	path := writeFixture(t, "::list\n- A\n")

	root := cli.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"validate", path})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "unterminated-fence")
}

func TestValidateCommandOKOnCleanDocument(t *testing.T) {
	path := writeFixture(t, "# Hello\n\nWorld\n")

	root := cli.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"validate", path})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "ok")
}

func TestStatsCommandCountsNodeKinds(t *testing.T) {
	path := writeFixture(t, "# Hello\n\nWorld\n")

	root := cli.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"stats", path})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "diagnostics\t0")
}

func TestParseCommandRejectsUnknownProfile(t *testing.T) {
	path := writeFixture(t, "# Hello\n")

	root := cli.NewRootCommand()
	root.SetArgs([]string{"parse", "--profile", "bogus", path})

	err := root.Execute()
	require.Error(t, err)
}
