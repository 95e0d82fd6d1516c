// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package vocabulary loads the identifiers recognized by pargs.Parse from a definition file.
//
// YAML (.yaml, .yml) and JSON (.json, .jsonc) files are supported.
// JSON files may contain // line comments, /* block comments */ and trailing commas.
//
//	commands: [deploy]
//	flags: [-h]
//	options: [-i, -j]
//	required: [deploy]
package vocabulary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/ebcrowder/pargs"
)

// ErrorUnsupportedFormat - The file extension is not one of the supported formats.
var ErrorUnsupportedFormat = errors.New("unsupported vocabulary format")

// ErrorInvalid - The vocabulary failed validation.
var ErrorInvalid = errors.New("invalid vocabulary")

// Vocabulary - identifiers recognized for each category.
// Required lists the identifiers that must be present after parsing, it is not used for classification.
type Vocabulary struct {
	Commands []string `json:"commands" yaml:"commands"`
	Flags    []string `json:"flags" yaml:"flags"`
	Options  []string `json:"options" yaml:"options"`
	Required []string `json:"required" yaml:"required"`
}

// ReadFile - reads and validates the vocabulary at path.
// The format is picked from the file extension.
func ReadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var v *Vocabulary
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		v, err = ParseYAML(data)
	case ".json", ".jsonc":
		v, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("%s: %w: '%s'", path, ErrorUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ParseYAML - decodes a YAML vocabulary rejecting unknown fields.
// An empty document is an empty vocabulary.
func ParseYAML(data []byte) (*Vocabulary, error) {
	v := &Vocabulary{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	return v, nil
}

// ParseJSON - strips JSONC comments and trailing commas then decodes the vocabulary rejecting unknown fields.
func ParseJSON(data []byte) (*Vocabulary, error) {
	v := &Vocabulary{}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	return v, nil
}

// Validate - checks that identifiers are not empty and that each one belongs to a single category.
// Required identifiers must be part of a category.
func (v *Vocabulary) Validate() error {
	seen := map[string]string{}
	for _, c := range []struct {
		name string
		ids  []string
	}{
		{"commands", v.Commands},
		{"flags", v.Flags},
		{"options", v.Options},
	} {
		for _, id := range c.ids {
			if id == "" {
				return fmt.Errorf("%w: empty identifier in %s", ErrorInvalid, c.name)
			}
			if prev, ok := seen[id]; ok && prev != c.name {
				return fmt.Errorf("%w: '%s' defined in both %s and %s", ErrorInvalid, id, prev, c.name)
			}
			seen[id] = c.name
		}
	}
	for _, id := range v.Required {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: required '%s' is not a command, flag or option", ErrorInvalid, id)
		}
	}
	return nil
}

// Merge - returns a new Vocabulary with the identifiers of both.
// Order is preserved, v first, and duplicates are dropped.
func (v *Vocabulary) Merge(other *Vocabulary) *Vocabulary {
	if other == nil {
		other = &Vocabulary{}
	}
	return &Vocabulary{
		Commands: union(v.Commands, other.Commands),
		Flags:    union(v.Flags, other.Flags),
		Options:  union(v.Options, other.Options),
		Required: union(v.Required, other.Required),
	}
}

// Parse - classifies args with this vocabulary and checks the required identifiers.
func (v *Vocabulary) Parse(args []string) (*pargs.Matches, error) {
	m, err := pargs.Parse(args, v.Commands, v.Flags, v.Options)
	if err != nil {
		return nil, err
	}
	if err := m.Require(v.Required...); err != nil {
		return nil, err
	}
	return m, nil
}

func union(lists ...[]string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, list := range lists {
		for _, e := range list {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}
