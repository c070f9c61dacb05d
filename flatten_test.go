package i18nlint

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func countLeaves(d Dictionary) int {
	n := 0
	for _, v := range d {
		switch vv := v.(type) {
		case Dictionary:
			n += countLeaves(vv)
		case string:
			n++
		}
	}
	return n
}

func TestFlatten(t *testing.T) {
	d := Dictionary{
		"nav": Dictionary{
			"home": "home",
			"menu": Dictionary{
				"open":  "打开",
				"close": "关闭",
			},
		},
		"empty": Dictionary{},
		"title": "选课",
	}

	got := Flatten(d)
	want := map[string]string{
		"nav.home":       "home",
		"nav.menu.open":  "打开",
		"nav.menu.close": "关闭",
		"title":          "选课",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
	if len(got) != countLeaves(d) {
		t.Fatalf("len(Flatten) = %d, leaves = %d", len(got), countLeaves(d))
	}

	// every key splits back into a path that reaches its leaf
	for key, value := range got {
		var node any = d
		for _, seg := range strings.Split(key, Separator) {
			node = node.(Dictionary)[seg]
		}
		if node != value {
			t.Fatalf("path %q reached %v, want %q", key, node, value)
		}
	}
}

func TestFlatten_Idempotent(t *testing.T) {
	d := Dictionary{"a": "x", "b": "y"}
	want := map[string]string{"a": "x", "b": "y"}
	if diff := cmp.Diff(want, Flatten(d)); diff != "" {
		t.Fatalf("flat dictionary changed (-want +got):\n%s", diff)
	}
}

func TestFlattenPrefixed(t *testing.T) {
	d := Dictionary{"nav": Dictionary{"home": "首页"}}
	want := map[string]string{"root/nav/home": "首页"}
	if diff := cmp.Diff(want, FlattenPrefixed(d, "root", "/")); diff != "" {
		t.Fatalf("FlattenPrefixed mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedKeysAndLastSegment(t *testing.T) {
	keys := SortedKeys(map[string]string{"b.a": "", "a.c": "", "a.b": ""})
	if diff := cmp.Diff([]string{"a.b", "a.c", "b.a"}, keys); diff != "" {
		t.Fatalf("SortedKeys mismatch (-want +got):\n%s", diff)
	}
	if got := LastSegment("nav.menu.open"); got != "open" {
		t.Fatalf("LastSegment = %q", got)
	}
	if got := LastSegment("title"); got != "title" {
		t.Fatalf("LastSegment = %q", got)
	}
}
