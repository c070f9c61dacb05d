package checker

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints res as human-readable text.
func WriteReport(w io.Writer, res *Result) {
	writeKeys(w, fmt.Sprintf("%s is missing %d keys:", res.Right.Name, len(res.Right.Missing)), res.Right.Missing)
	writeKeys(w, fmt.Sprintf("%s is missing %d keys:", res.Left.Name, len(res.Left.Missing)), res.Left.Missing)
	if len(res.Left.Missing) == 0 && len(res.Right.Missing) == 0 {
		fmt.Fprintf(w, "\nKeys match between %s and %s.\n", res.Left.Name, res.Right.Name)
	}

	for _, side := range []Side{res.Left, res.Right} {
		if len(side.Placeholders) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nEmpty or key-named values in %s:\n", side.Name)
		for _, e := range side.Placeholders {
			fmt.Fprintf(w, "  - %s: %q\n", e.Key, e.Value)
		}
	}

	if len(res.ParamMismatches) > 0 {
		fmt.Fprintf(w, "\nParameter mismatches between %s and %s:\n", res.Left.Name, res.Right.Name)
		for _, m := range res.ParamMismatches {
			fmt.Fprintf(w, "  - %s: {%s} vs {%s}\n", m.Key, strings.Join(m.Left, ", "), strings.Join(m.Right, ", "))
		}
	}

	for _, side := range []Side{res.Left, res.Right} {
		if len(side.SyntaxErrors) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nTemplate syntax errors in %s:\n", side.Name)
		for _, se := range side.SyntaxErrors {
			fmt.Fprintf(w, "  - %s: %v\n", se.Key, se.Err)
		}
	}
}

func writeKeys(w io.Writer, header string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", header)
	for _, k := range keys {
		fmt.Fprintf(w, "  - %s\n", k)
	}
}
