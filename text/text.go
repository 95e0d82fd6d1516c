// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// They are exported variables so programs can replace them before calling pargs.
package text

// ErrorEmptyInput - Returned when there are no arguments to classify.
var ErrorEmptyInput = "no arguments were provided"

// ErrorDanglingOptionValue holds the text for an option given in `key value` form without a following value.
// It has a string placeholder '%s' for the option and '%d' for its position in the argument list.
var ErrorDanglingOptionValue = "missing value for option '%s' at position %d"

// ErrorMissingRequiredArgument holds the text for a required identifier absent from the parsed arguments.
// It has a string placeholder '%s' for the identifier.
var ErrorMissingRequiredArgument = "missing required argument '%s'"
