// This file is part of pargs.
//
// Copyright (C) 2023  The pargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cursor - walks a list of arguments one at a time allowing a bounds checked look at the next one.
package cursor

// Cursor - position over a read only list of arguments.
type Cursor struct {
	args []string
	idx  int
}

// New - returns a Cursor positioned before the first argument.
func New(args []string) *Cursor {
	return &Cursor{args: args, idx: -1}
}

// Len - number of arguments.
func (c *Cursor) Len() int {
	return len(c.args)
}

// Index - current position, -1 before the first call to Next.
func (c *Cursor) Index() int {
	return c.idx
}

// Next - advances one position and reports whether there is an argument there.
// Once the end is reached the position stays at Len.
func (c *Cursor) Next() bool {
	if c.idx < len(c.args) {
		c.idx++
	}
	return c.idx < len(c.args)
}

// Value - argument at the current position or "" when outside the list.
func (c *Cursor) Value() string {
	if c.idx < 0 || c.idx >= len(c.args) {
		return ""
	}
	return c.args[c.idx]
}

// Peek - argument after the current one without moving.
// The bool is false when there is none.
func (c *Cursor) Peek() (string, bool) {
	next := c.idx + 1
	if next >= len(c.args) {
		return "", false
	}
	return c.args[next], true
}

// IsLast - current argument is the final one.
func (c *Cursor) IsLast() bool {
	return len(c.args) > 0 && c.idx == len(c.args)-1
}
