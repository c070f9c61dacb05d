package i18nlint

import (
	"sort"
	"strings"
)

// Separator joins nested keys into a flat path.
const Separator = "."

// Flatten 将嵌套字典展开为 "a.b.c" -> value 的扁平映射
func Flatten(d Dictionary) map[string]string {
	return FlattenPrefixed(d, "", Separator)
}

// FlattenPrefixed flattens d with every path rooted at prefix.
// Empty nested dictionaries contribute no entries.
func FlattenPrefixed(d Dictionary, prefix, sep string) map[string]string {
	out := make(map[string]string)
	flattenInto(out, d, prefix, sep)
	return out
}

func flattenInto(out map[string]string, d Dictionary, prefix, sep string) {
	for k, v := range d {
		key := joinKey(prefix, k, sep)
		switch vv := v.(type) {
		case Dictionary:
			flattenInto(out, vv, key, sep)
		case string:
			out[key] = vv
		}
	}
}

// SortedKeys returns the keys of a flat mapping in lexicographic order.
func SortedKeys(flat map[string]string) []string {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LastSegment returns the final path segment of a flattened key.
func LastSegment(key string) string {
	if i := strings.LastIndex(key, Separator); i >= 0 {
		return key[i+len(Separator):]
	}
	return key
}

func joinKey(prefix, key, sep string) string {
	if prefix == "" {
		return key
	}
	return prefix + sep + key
}
