// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pargs

import (
	"errors"
)

// The sentinels carry no text of their own, the message comes from the text package.
// Use errors.Is to check for them.

// ErrorParsing - Indicates that there was an error classifying the cli args.
// Every error returned by Parse matches it.
var ErrorParsing = errors.New("")

// ErrorEmptyInput - Parse was called without arguments.
var ErrorEmptyInput = errors.New("")

// ErrorDanglingOptionValue - An option in `key value` form was the last argument.
var ErrorDanglingOptionValue = errors.New("")

// ErrorMissingRequiredArgument - Returned by Matches.Require.
var ErrorMissingRequiredArgument = errors.New("")
