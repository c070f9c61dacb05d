package i18nlint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseYAML(t *testing.T) {
	t.Run("ParseYAML_Nested", func(t *testing.T) {
		d, err := ParseYAML([]byte("nav:\n  home: 首页\n  about: 关于\ntitle: 选课\n"))
		if err != nil {
			t.Fatalf("ParseYAML: %v", err)
		}
		want := map[string]string{"nav.home": "首页", "nav.about": "关于", "title": "选课"}
		if diff := cmp.Diff(want, Flatten(d)); diff != "" {
			t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("ParseYAML_MessagesLayout", func(t *testing.T) {
		d, err := ParseYAML([]byte("language: en\nmessages:\n  user.login.success: \"Welcome {name}\"\n"))
		if err != nil {
			t.Fatalf("ParseYAML: %v", err)
		}
		if got, ok := d.Lookup("user.login.success"); !ok || got != "Welcome {name}" {
			t.Fatalf("Lookup = %q, %v", got, ok)
		}
		if _, ok := d["language"]; ok {
			t.Fatalf("language field leaked into dictionary: %v", d)
		}
	})
	t.Run("ParseYAML_NonStringLeaf", func(t *testing.T) {
		d, err := ParseYAML([]byte("count: 3\n"))
		if err == nil {
			t.Fatalf("expected error, got %v", d)
		}
		if d != nil {
			t.Fatalf("expected no partial dictionary, got %v", d)
		}
	})
	t.Run("ParseYAML_Malformed", func(t *testing.T) {
		if _, err := ParseYAML([]byte("a: [unclosed\n")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParseJSON(t *testing.T) {
	t.Run("ParseJSON_Success", func(t *testing.T) {
		d, err := ParseJSON([]byte(`{"a": {"b": "hello"}}`))
		if err != nil {
			t.Fatalf("ParseJSON: %v", err)
		}
		if got, _ := d.Lookup("a.b"); got != "hello" {
			t.Fatalf("Lookup a.b = %q", got)
		}
	})
	t.Run("ParseJSON_ArrayLeaf", func(t *testing.T) {
		if _, err := ParseJSON([]byte(`{"a": ["x"]}`)); err == nil {
			t.Fatal("expected error for array leaf")
		}
	})
}
