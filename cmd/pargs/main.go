// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command pargs classifies the arguments given after `--` and prints them grouped by category.
//
//	pargs --command=deploy --flag=-h --option=-i -- deploy -h -i=peppers
//	pargs --vocabulary pizza.yaml --output yaml -- pizza_command -z cheez
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-getoptions"
	"gopkg.in/yaml.v3"

	"github.com/ebcrowder/pargs"
	"github.com/ebcrowder/pargs/vocabulary"
)

var Logger = log.New(os.Stderr, "", log.LstdFlags)

func main() {
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

func program(args []string, stdout, stderr io.Writer) int {
	Logger.SetOutput(stderr)

	opt := getoptions.New()
	opt.Self("pargs", "Classifies the arguments given after -- into commands, flags and options.")
	opt.Bool("help", false, opt.Alias("?"))
	debug := opt.Bool("debug", false, opt.GetEnv("PARGS_DEBUG"), opt.Description("Print pargs debug output."))
	quiet := opt.Bool("quiet", false, opt.Description("Don't log progress."))
	vocabularyFile := opt.String("vocabulary", "", opt.ArgName("file"),
		opt.Description("Vocabulary definition file: .yaml, .yml, .json or .jsonc."))
	commands := opt.StringSlice("command", 1, 1, opt.ArgName("id"),
		opt.Description("Recognized command. Can be repeated."))
	flags := opt.StringSlice("flag", 1, 1, opt.ArgName("id"),
		opt.Description("Recognized flag. Can be repeated. Use --flag=-h for identifiers starting with a dash."))
	options := opt.StringSlice("option", 1, 1, opt.ArgName("id"),
		opt.Description("Recognized option. Can be repeated. Use --option=-i for identifiers starting with a dash."))
	required := opt.StringSlice("require", 1, 1, opt.ArgName("id"),
		opt.Description("Identifier that must be present. Can be repeated."))
	output := opt.String("output", "json", opt.ArgName("json|yaml"),
		opt.Description("Output format."))
	remaining, err := opt.Parse(args[1:])
	if opt.Called("help") {
		fmt.Fprint(stderr, opt.Help())
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n\n", err)
		fmt.Fprint(stderr, opt.Help(getoptions.HelpSynopsis))
		return 1
	}
	if *quiet {
		Logger.SetOutput(io.Discard)
	}
	if *debug {
		pargs.Logger.SetOutput(stderr)
	} else {
		pargs.Logger.SetOutput(io.Discard)
	}

	render, err := renderer(*output)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}

	v := &vocabulary.Vocabulary{}
	if *vocabularyFile != "" {
		Logger.Printf("Loading vocabulary from %s", *vocabularyFile)
		v, err = vocabulary.ReadFile(*vocabularyFile)
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return 1
		}
	}
	v = v.Merge(&vocabulary.Vocabulary{
		Commands: *commands,
		Flags:    *flags,
		Options:  *options,
		Required: *required,
	})
	if err := v.Validate(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}

	Logger.Printf("Classifying %d arguments", len(remaining))
	matches, err := v.Parse(remaining)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}

	out, err := render(matches)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	fmt.Fprint(stdout, string(out))
	return 0
}

func renderer(format string) (func(*pargs.Matches) ([]byte, error), error) {
	switch format {
	case "json":
		return func(m *pargs.Matches) ([]byte, error) {
			out, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(out, '\n'), nil
		}, nil
	case "yaml":
		return func(m *pargs.Matches) ([]byte, error) {
			return yaml.Marshal(m)
		}, nil
	}
	return nil, fmt.Errorf("unknown output format '%s', use json or yaml", format)
}
