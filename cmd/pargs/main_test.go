// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ebcrowder/pargs"
)

func run(t *testing.T, args ...string) (int, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := program(append([]string{"pargs"}, args...), stdout, stderr)
	return code, stdout, stderr
}

func TestProgramJSON(t *testing.T) {
	code, stdout, stderr := run(t, "--quiet",
		"--command=deploy", "--flag=-h", "--option=-i", "--option=-j",
		"--", "deploy", "-h", "-i=peppers", "-j=mushrooms", "-x")
	require.Equal(t, 0, code, stderr.String())

	var got pargs.Matches
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got), stdout.String())
	assert.Equal(t, pargs.Matches{
		CommandArgs: []string{"deploy"},
		FlagArgs:    []string{"-h"},
		OptionArgs:  []pargs.Pair{{Key: "-i", Value: "peppers"}, {Key: "-j", Value: "mushrooms"}},
	}, got)
	assert.Contains(t, stdout.String(), `"option_args": [`)
}

func TestProgramVocabularyFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pizza.yaml")
	err := os.WriteFile(path, []byte("commands: [pizza_command]\noptions: [-z]\nrequired: [-z]\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	code, stdout, stderr := run(t, "--quiet", "--vocabulary", path, "--output", "yaml",
		"--", "pizza_command", "-z", "cheez")
	require.Equal(t, 0, code, stderr.String())

	var got pargs.Matches
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got), stdout.String())
	assert.Equal(t, []string{"pizza_command"}, got.CommandArgs)
	assert.Empty(t, got.FlagArgs)
	assert.Equal(t, []pargs.Pair{{Key: "-z", Value: "cheez"}}, got.OptionArgs)
}

func TestProgramDebug(t *testing.T) {
	code, _, stderr := run(t, "--quiet", "--debug", "--option=-z", "--", "-z", "cheez")
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "DEBUG: ")
	assert.Contains(t, stderr.String(), "option: -z, value: 'cheez'")
}

func TestProgramErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no arguments", []string{"--command=deploy"}, "ERROR: no arguments were provided"},
		{"only terminator", []string{"--command=deploy", "--"}, "ERROR: no arguments were provided"},
		{"dangling option value", []string{"--option=-z", "--", "-z"}, "ERROR: missing value for option '-z' at position 0"},
		{"missing required", []string{"--flag=-h", "--require=-h", "--", "deploy"}, "ERROR: missing required argument '-h'"},
		{"overlapping vocabulary", []string{"--flag=-h", "--option=-h", "--", "-h"}, "ERROR: invalid vocabulary: '-h' defined in both flags and options"},
		{"unknown output", []string{"--output", "toml", "--", "deploy"}, "ERROR: unknown output format 'toml', use json or yaml"},
		{"missing vocabulary file", []string{"--vocabulary", filepath.Join(t.TempDir(), "missing.yaml"), "--", "deploy"}, "ERROR: reading "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, append([]string{"--quiet"}, tt.args...)...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tt.msg)
		})
	}
}

func TestProgramHelp(t *testing.T) {
	code, stdout, stderr := run(t, "--help")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "--vocabulary")
}
