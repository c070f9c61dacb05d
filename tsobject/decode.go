package tsobject

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lifei6671/i18nlint"
)

// excerptLimit bounds the normalized text kept in a ParseError.
const excerptLimit = 500

var (
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	bareKey       = regexp.MustCompile(`([{,]\s*)([a-zA-Z_$][a-zA-Z0-9_$]*)(\s*:)`)
)

// ParseError reports a literal that could not be decoded after
// normalization.
type ParseError struct {
	Err     error
	Excerpt string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode object literal: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Normalize rewrites an object literal into strict JSON text.
// The steps run in order over the whole text: single quotes become double
// quotes, trailing commas before `}` or `]` are dropped, and bare
// identifier keys are quoted.
func Normalize(literal string) string {
	s := strings.ReplaceAll(literal, "'", `"`)
	s = trailingComma.ReplaceAllString(s, "$1")
	return bareKey.ReplaceAllString(s, `${1}"${2}"${3}`)
}

// Decode normalizes literal and decodes it into a Dictionary.
// On failure the Dictionary is nil and the error is a *ParseError.
func Decode(literal string) (i18nlint.Dictionary, error) {
	normalized := Normalize(literal)

	var raw map[string]any
	if err := json.Unmarshal([]byte(normalized), &raw); err != nil {
		return nil, &ParseError{Err: err, Excerpt: excerpt(normalized)}
	}
	d, err := i18nlint.FromMap(raw)
	if err != nil {
		return nil, &ParseError{Err: err, Excerpt: excerpt(normalized)}
	}
	return d, nil
}

// Parse extracts and decodes the exported object literal in text.
func Parse(text string) (i18nlint.Dictionary, error) {
	literal, err := Extract(text)
	if err != nil {
		return nil, err
	}
	return Decode(literal)
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLimit {
		return s
	}
	return string(runes[:excerptLimit]) + "..."
}
