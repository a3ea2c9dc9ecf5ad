package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["parse"], "parse subcommand missing")
	assert.True(t, names["serve"], "serve subcommand missing")
}

func TestParseCommandRejectsNonPDF(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"parse", "statement.txt"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pdf")
}

func TestParseCommandMissingFile(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"parse", "does-not-exist.pdf"})

	err := root.Execute()
	require.Error(t, err)
}
