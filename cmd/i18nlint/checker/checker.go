package checker

import (
	"slices"
	"sort"

	"github.com/lifei6671/i18nlint"
)

// Entry is one flattened key and its value.
type Entry struct {
	Key   string
	Value string
}

// SyntaxError is a value whose {param} template does not validate.
type SyntaxError struct {
	Key string
	Err error
}

// ParamMismatch is a key whose {param} names differ between the two sides.
type ParamMismatch struct {
	Key   string
	Left  []string
	Right []string
}

// Side holds the findings for one dictionary.
type Side struct {
	Name string

	// Missing lists keys the other side has and this side lacks.
	Missing      []string
	Placeholders []Entry
	SyntaxErrors []SyntaxError
}

// Result of comparing two dictionaries. Every list is sorted by key.
type Result struct {
	Left            Side
	Right           Side
	ParamMismatches []ParamMismatch
}

// HasIssues reports whether the comparison produced any finding.
func (r *Result) HasIssues() bool {
	for _, s := range []Side{r.Left, r.Right} {
		if len(s.Missing) > 0 || len(s.Placeholders) > 0 || len(s.SyntaxErrors) > 0 {
			return true
		}
	}
	return len(r.ParamMismatches) > 0
}

// Compare performs:
//  1. key alignment check (missing on either side)
//  2. placeholder detection (empty value, or value equal to its last key segment)
//  3. {param} parity for keys present on both sides
//  4. template syntax check via i18nlint.ValidateTemplate()
func Compare(left, right i18nlint.Dictionary, leftName, rightName string) *Result {
	leftFlat := i18nlint.Flatten(left)
	rightFlat := i18nlint.Flatten(right)

	res := &Result{
		Left: Side{
			Name:         leftName,
			Missing:      difference(rightFlat, leftFlat),
			Placeholders: placeholders(leftFlat),
			SyntaxErrors: syntaxErrors(leftFlat),
		},
		Right: Side{
			Name:         rightName,
			Missing:      difference(leftFlat, rightFlat),
			Placeholders: placeholders(rightFlat),
			SyntaxErrors: syntaxErrors(rightFlat),
		},
	}

	for _, key := range i18nlint.SortedKeys(leftFlat) {
		rv, ok := rightFlat[key]
		if !ok {
			continue
		}
		lp, rp := i18nlint.Params(leftFlat[key]), i18nlint.Params(rv)
		if !slices.Equal(lp, rp) {
			res.ParamMismatches = append(res.ParamMismatches, ParamMismatch{Key: key, Left: lp, Right: rp})
		}
	}

	return res
}

// difference returns the keys of a that are absent from b, sorted.
func difference(a, b map[string]string) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// IsPlaceholder reports whether value looks like an untranslated stub for key.
func IsPlaceholder(key, value string) bool {
	return value == "" || value == i18nlint.LastSegment(key)
}

func placeholders(flat map[string]string) []Entry {
	var out []Entry
	for _, k := range i18nlint.SortedKeys(flat) {
		if IsPlaceholder(k, flat[k]) {
			out = append(out, Entry{Key: k, Value: flat[k]})
		}
	}
	return out
}

func syntaxErrors(flat map[string]string) []SyntaxError {
	var out []SyntaxError
	for _, k := range i18nlint.SortedKeys(flat) {
		if err := i18nlint.ValidateTemplate(flat[k]); err != nil {
			out = append(out, SyntaxError{Key: k, Err: err})
		}
	}
	return out
}
