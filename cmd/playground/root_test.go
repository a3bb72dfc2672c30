package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with an isolated HOME so no user
// config leaks in.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const testCatalog = `
component: Widget
demos:
  - name: Solo
    component: badge
    approaches:
      - key: inline
        label: Inline
        kind: inline
        recommendation: recommended
        props: { count: 3 }
        slots:
          - name: badge
            code: "badge color={{.Color}} radius={{.BorderRadius}}"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootWithoutTerminalPrintsSnapshot(t *testing.T) {
	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	require.Contains(t, stdout, "Component: Button")
	require.Contains(t, stdout, "Code:")
}

func TestRootRejectsInvalidSettings(t *testing.T) {
	_, _, err := executeCommand(t, "show", "--log-level", "loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to show: loading settings")
}

func TestRootRejectsUnknownComponent(t *testing.T) {
	_, _, err := executeCommand(t, "show", "--component", "carousel")
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening catalog (builtin carousel)")
	require.Contains(t, err.Error(), "button")
}

func TestRootReadsCatalogFromEnvironment(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	stdout, _, err := executeCommandWithEnv(t, map[string]string{"PLAYGROUND_CATALOG": path}, "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "Component: Widget")
}

func TestRootReadsConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("component: slider\n"), 0o644))

	stdout, _, err := executeCommand(t, "--config", cfg, "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "Component: Slider")
}

func TestVerboseLogsCatalogSource(t *testing.T) {
	_, stderr, err := executeCommand(t, "show", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "catalog loaded")
}

func executeCommandWithEnv(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	return executeCommand(t, args...)
}
