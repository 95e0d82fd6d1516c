// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pargs

import (
	"fmt"

	"github.com/ebcrowder/pargs/text"
)

// HasCommand - Indicates if the command was passed on the command line.
func (m *Matches) HasCommand(name string) bool {
	return contains(m.CommandArgs, name)
}

// HasFlag - Indicates if the flag was passed on the command line.
func (m *Matches) HasFlag(name string) bool {
	return contains(m.FlagArgs, name)
}

// Option - Returns the first value given to the option.
// The bool is false if the option wasn't passed.
func (m *Matches) Option(key string) (string, bool) {
	for _, p := range m.OptionArgs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// OptionValues - Returns every value given to the option in the order they were passed.
func (m *Matches) OptionValues(key string) []string {
	values := []string{}
	for _, p := range m.OptionArgs {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

// OptionMap - Returns the options as a map.
// When an option was passed more than once the last value wins.
func (m *Matches) OptionMap() map[string]string {
	om := make(map[string]string, len(m.OptionArgs))
	for _, p := range m.OptionArgs {
		om[p.Key] = p.Value
	}
	return om
}

// Require - Checks that every given identifier was passed as a command, a flag or an option.
// The error wraps ErrorMissingRequiredArgument and names the first identifier missing.
//
// Parse doesn't check for presence, call Require on its result:
//
//	matches, err := pargs.Parse(args, commands, flags, options)
//	...
//	err = matches.Require("deploy", "-i")
func (m *Matches) Require(required ...string) error {
	for _, r := range required {
		if m.HasCommand(r) || m.HasFlag(r) {
			continue
		}
		if _, ok := m.Option(r); ok {
			continue
		}
		return fmt.Errorf("%w"+text.ErrorMissingRequiredArgument, ErrorMissingRequiredArgument, r)
	}
	return nil
}

// String - `{command_args: [deploy], flag_args: [-h], option_args: [-i peppers]}`.
func (m *Matches) String() string {
	options := make([]string, 0, len(m.OptionArgs)*2)
	for _, p := range m.OptionArgs {
		options = append(options, p.Key, p.Value)
	}
	return fmt.Sprintf("{command_args: %v, flag_args: %v, option_args: %v}",
		m.CommandArgs, m.FlagArgs, options)
}

func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
