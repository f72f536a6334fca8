package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/amphipod"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRun_Example(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4 search in -short mode")
	}
	cfg := defaultConfig()
	cfg.Input = writeFile(t, "input.txt", example)
	cfg.AStar = true

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out))
	assert.Equal(t, "Part1: 12521\nPart2: 44169\n", out.String())
}

func TestRun_MissingInput(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "missing.txt")
	err := run(context.Background(), cfg, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_MalformedInput(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input = writeFile(t, "input.txt", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#A\n  #########\n")
	err := run(context.Background(), cfg, io.Discard)
	assert.ErrorIs(t, err, amphipod.ErrMalformedInput)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestParseFlags_ConfigFileAndOverrides(t *testing.T) {
	path := writeFile(t, "day23.yaml", "input: burrow.txt\nastar: true\nverbose: true\n")

	cfg, err := parseFlags([]string{"-config", path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{Input: "burrow.txt", AStar: true, Verbose: true}, cfg)

	// Flags win over the file.
	cfg, err = parseFlags([]string{"-config", path, "-f", "other.txt", "-v=false", "-profile", "cpu"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{Input: "other.txt", AStar: true, Verbose: false, Profile: "cpu"}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-profile", "block"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"extra"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-config", writeFile(t, "bad.yaml", "inptu: x\n")}, io.Discard)
	assert.Error(t, err, "unknown YAML fields are rejected")

	_, err = parseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFlags_EmptyConfigFile(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", writeFile(t, "empty.yaml", "")}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}
