package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const oceanTheme = `version: "1.0.0"
name: ocean
base: dark
features:
  - name: ribbon.group.collapsed.text
    states:
      tracking:
        text_color: "#ff0000"
      common:
        text_color: "#0ea5e9"
  - name: ribbon.group.normal.text
    redirect: ribbon.group.collapsed.text
`

const plainTheme = `version: "1.0.0"
name: plain
`

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}
