package i18nlint

import (
	"fmt"
	"regexp"
	"strings"
)

// Dictionary is one locale's translation table.
// Values are either string leaves or nested Dictionary values.
type Dictionary map[string]any

// FromMap converts a decoded document into a Dictionary.
// Every leaf must be a string; any other leaf type fails the whole
// conversion and no partial Dictionary is returned.
func FromMap(m map[string]any) (Dictionary, error) {
	return fromMap(m, "")
}

func fromMap(m map[string]any, prefix string) (Dictionary, error) {
	d := make(Dictionary, len(m))
	for k, v := range m {
		path := joinKey(prefix, k, Separator)
		switch vv := v.(type) {
		case string:
			d[k] = vv
		case Dictionary:
			sub, err := fromMap(vv, path)
			if err != nil {
				return nil, err
			}
			d[k] = sub
		case map[string]any:
			sub, err := fromMap(vv, path)
			if err != nil {
				return nil, err
			}
			d[k] = sub
		default:
			return nil, fmt.Errorf("key %q: value must be a string or object, got %T", path, v)
		}
	}
	return d, nil
}

// Lookup resolves a dot-separated path to its string leaf.
// A key stored with dots in its name (flat YAML messages) matches first.
func (d Dictionary) Lookup(path string) (string, bool) {
	if s, ok := d[path].(string); ok {
		return s, true
	}
	var current any = d
	for _, seg := range strings.Split(path, Separator) {
		node, ok := current.(Dictionary)
		if !ok {
			return "", false
		}
		current, ok = node[seg]
		if !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

var paramPattern = regexp.MustCompile(`\{(\w+)\}`)

// Translate 与前端运行时的 t(key, params) 行为一致:
// 找不到或不是字符串时返回 key 本身，{name} 占位符按 params 替换，未提供的保留原样，nil 值输出 null。
func (d Dictionary) Translate(key string, params map[string]any) string {
	text, ok := d.Lookup(key)
	if !ok {
		return key
	}
	if len(params) == 0 {
		return text
	}
	return paramPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := params[name]
		if !ok {
			return match
		}
		if v == nil {
			return "null"
		}
		return fmt.Sprint(v)
	})
}
