package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	want := []string{"query", "table", "templates", "begin", "history", "export", "version"}
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "dev")
}

func TestQueryCommandRequiresArg(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"query"})

	assert.Error(t, root.Execute())
}
