package scanner

import (
	"fmt"
	"io"
	"strings"
)

// lineWidth bounds the echoed source line, in runes.
const lineWidth = 80

// WriteReport prints findings grouped by file and a final count.
func WriteReport(w io.Writer, r *Report, verbose bool) {
	for _, path := range r.Files {
		fmt.Fprintf(w, "\n%s:\n", path)
		for _, f := range r.Findings[path] {
			fmt.Fprintf(w, "  L%d: %s\n", f.Line, truncate(f.Text, lineWidth))
			if verbose {
				fmt.Fprintf(w, "        %s\n", strings.Join(f.Matches, ", "))
			}
		}
	}
	fmt.Fprintf(w, "\nTotal: %d hardcoded strings\n", r.Total())
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
