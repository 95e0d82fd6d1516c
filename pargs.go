// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package pargs - command line argument classifier.

pargs returns the parsed arguments to the caller grouped by category so they are easy to look up.
It works with three kinds of arguments: commands, flags and options.

The caller defines the identifiers each category recognizes and passes them to Parse together with the arguments:

	matches, err := pargs.Parse(os.Args[1:],
		[]string{"deploy"},     // commands
		[]string{"-h"},         // flags
		[]string{"-i", "-j"},   // options
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	if matches.HasFlag("-h") {
		// ...
	}

Definitions

* Commands are single arguments without a value, entered without a dash.

* Flags are boolean, their presence means true. They should not be assigned a value.

* Options are assigned a value, either as `-i=peppers` or as `-i peppers`.

Arguments that are not part of any category are ignored.
*/
package pargs

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ebcrowder/pargs/internal/cursor"
	"github.com/ebcrowder/pargs/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Pair - option key and the value it was given.
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Matches - arguments that were successfully classified.
//
// Each list keeps the order the arguments were given in.
// Repeated options keep every occurrence.
type Matches struct {
	CommandArgs []string `json:"command_args" yaml:"command_args"`
	FlagArgs    []string `json:"flag_args" yaml:"flag_args"`
	OptionArgs  []Pair   `json:"option_args" yaml:"option_args"`
}

/*
Parse - Classifies args against the given commands, flags and options.

Each argument is matched against the categories in order and stops at the first match:

1. A command, when args[i] is in commands.

2. A flag, when args[i] is in flags.

3. An option with an assigned value, when args[i] has the form `key=value` and key is in options.
Only the first '=' splits, the value is kept verbatim and can be empty.

4. An option followed by its value, when args[i] is in options.
The value is args[i+1], which is still classified on its own afterwards.

Anything else is dropped.

Parse fails with ErrorEmptyInput when args is empty and with ErrorDanglingOptionValue when an option in the `key value` form is the last argument.
On error no Matches are returned.
*/
func Parse(args, commands, flags, options []string) (*Matches, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w%w"+text.ErrorEmptyInput, ErrorParsing, ErrorEmptyInput)
	}

	commandSet := toSet(commands)
	flagSet := toSet(flags)
	optionSet := toSet(options)

	m := &Matches{
		CommandArgs: []string{},
		FlagArgs:    []string{},
		OptionArgs:  []Pair{},
	}

	c := cursor.New(args)
	for c.Next() {
		arg := c.Value()
		key, value := splitAssignment(arg)

		if _, ok := commandSet[arg]; ok {
			Logger.Printf("command: %s", arg)
			m.CommandArgs = append(m.CommandArgs, arg)
			continue
		}
		if _, ok := flagSet[arg]; ok {
			Logger.Printf("flag: %s", arg)
			m.FlagArgs = append(m.FlagArgs, arg)
			continue
		}
		if _, ok := optionSet[key]; ok && key != "" {
			Logger.Printf("option: %s, value: '%s'", key, value)
			m.OptionArgs = append(m.OptionArgs, Pair{Key: key, Value: value})
			continue
		}
		if _, ok := optionSet[arg]; ok {
			// The value is not consumed, it goes through classification on the next iteration.
			next, ok := c.Peek()
			if !ok {
				return nil, fmt.Errorf("%w%w"+text.ErrorDanglingOptionValue, ErrorParsing, ErrorDanglingOptionValue, arg, c.Index())
			}
			Logger.Printf("option: %s, value: '%s'", arg, next)
			m.OptionArgs = append(m.OptionArgs, Pair{Key: arg, Value: next})
			continue
		}
		Logger.Printf("unknown: %s", arg)
	}
	return m, nil
}

// splitAssignment - splits `key=value` at the first '='.
// Returns empty strings when there is no '='.
func splitAssignment(s string) (string, string) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return "", ""
	}
	return key, value
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, e := range list {
		set[e] = struct{}{}
	}
	return set
}
