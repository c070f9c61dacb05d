// Package tsobject turns a source file holding a single exported object
// literal (`export const zhCN = { ... };`) into an i18nlint.Dictionary.
//
// It is a textual heuristic, not a parser for the source language: a
// literal containing `};` before its real end, single quotes inside
// strings, or keys that need quoting are not handled.
package tsobject

import (
	"errors"
	"regexp"
)

// ErrNoExport is returned when no exported object literal is found.
var ErrNoExport = errors.New("no exported literal found")

var (
	lineComment  = regexp.MustCompile(`(?m)//.*$`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// export const name[: Type] = { ... } [as const];
	exportedObject = regexp.MustCompile(`(?s)export\s+const\s+[a-zA-Z0-9_$]+\s*(?::[^=]*?)?=\s*(\{.*?\})\s*(?:as\s+const\s*)?;`)
)

// StripComments removes line and block comments from text.
func StripComments(text string) string {
	text = lineComment.ReplaceAllString(text, "")
	return blockComment.ReplaceAllString(text, "")
}

// Extract returns the object literal bound by the first exported constant
// in text, with comments removed.
func Extract(text string) (string, error) {
	m := exportedObject.FindStringSubmatch(StripComments(text))
	if m == nil {
		return "", ErrNoExport
	}
	return m[1], nil
}
