package checker

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	t.Run("WriteReport_Findings", func(t *testing.T) {
		res := &Result{
			Left: Side{
				Name:         "zh",
				Missing:      []string{"a.c"},
				Placeholders: []Entry{{Key: "nav.home", Value: "home"}},
				SyntaxErrors: []SyntaxError{{Key: "bad", Err: errors.New("boom")}},
			},
			Right: Side{
				Name:    "en",
				Missing: []string{"x", "y"},
			},
			ParamMismatches: []ParamMismatch{{Key: "greet", Left: []string{"name"}, Right: nil}},
		}

		var buf bytes.Buffer
		WriteReport(&buf, res)

		want := "\nen is missing 2 keys:\n" +
			"  - x\n" +
			"  - y\n" +
			"\nzh is missing 1 keys:\n" +
			"  - a.c\n" +
			"\nEmpty or key-named values in zh:\n" +
			"  - nav.home: \"home\"\n" +
			"\nParameter mismatches between zh and en:\n" +
			"  - greet: {name} vs {}\n" +
			"\nTemplate syntax errors in zh:\n" +
			"  - bad: boom\n"
		assert.Equal(t, want, buf.String())
	})
	t.Run("WriteReport_Match", func(t *testing.T) {
		var buf bytes.Buffer
		WriteReport(&buf, &Result{Left: Side{Name: "zh"}, Right: Side{Name: "en"}})
		assert.Equal(t, "\nKeys match between zh and en.\n", buf.String())
	})
}
