package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(&out)
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Available demos are:\n  - chain_expression\n"))
	assert.Contains(t, out, "  - range_state_transition\n")
	assert.Equal(t, 13, strings.Count(out, "\n"))
}

func TestVerboseEnablesBrokerDebug(t *testing.T) {
	t.Cleanup(func() { mqtt.DEBUG = mqtt.NOOPLogger{} })

	_, err := execute(t, "list", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.IsType(t, mqtt.NOOPLogger{}, mqtt.DEBUG)

	_, err = execute(t, "list", "--verbose", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &log.Logger{}, mqtt.DEBUG)
}

func TestRunWithoutDemo(t *testing.T) {
	out, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, errExit)
	assert.Contains(t, out, "Usage: docanim run")
	assert.Contains(t, out, "  - count\n")
}

func TestRunUnknownDemo(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "run", "nope", "--config", filepath.Join(dir, "none.yaml"), "--out", filepath.Join(dir, "gifs"))
	assert.ErrorIs(t, err, errExit)
	assert.Contains(t, out, "Error: Demo 'nope' not found.\nAvailable demos are:\n")
	assert.NoDirExists(t, filepath.Join(dir, "gifs"))
}

func TestCustomDemosListed(t *testing.T) {
	dir := t.TempDir()
	demos := filepath.Join(dir, "demos.yaml")
	require.NoError(t, os.WriteFile(demos, []byte(`demos:
  - name: my_demo
    kind: string_movement
    steps:
      - input: "1"
        result: "true"
        satisfied: true
`), 0o644))
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("demos_file: "+demos+"\n"), 0o644))

	out, err := execute(t, "list", "--config", cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "  - my_demo\n"))
}

func TestRunRendersDemo(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("canvas:\n  width: 160\n  height: 60\n  frame_rate: 5\n"), 0o644))
	outDir := filepath.Join(dir, "gifs")

	out, err := execute(t, "run", "count", "--config", cfg, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Running demo: count")
	assert.Contains(t, out, "GIF created: "+filepath.Join(outDir, "count1.gif"))
	assert.FileExists(t, filepath.Join(outDir, "count1.gif"))
	assert.FileExists(t, filepath.Join(outDir, "manifest.db"))

	out, err = execute(t, "run", "count", "--config", cfg, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged")
}
