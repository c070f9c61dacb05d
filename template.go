package i18nlint

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// AST DEFINITIONS
///////////////////////////////////////////////////////////////////////////////

// Node is the interface for all AST nodes.
type Node interface {
	// Source returns the node's original template text.
	Source() string
}

// TextNode represents a static text segment.
type TextNode struct {
	Text string
}

func (t *TextNode) Source() string {
	return t.Text
}

// PlaceholderNode represents: {name}
type PlaceholderNode struct {
	Name string
}

func (p *PlaceholderNode) Source() string {
	return "{" + p.Name + "}"
}

// TemplateAST is a whole parsed template.
type TemplateAST []Node

///////////////////////////////////////////////////////////////////////////////
// TEMPLATE PARSER
///////////////////////////////////////////////////////////////////////////////

var paramName = regexp.MustCompile(`^\w+$`)

// ParseTemplate parses tpl string into an AST (TemplateAST).
// Supports nested `{}` inside a placeholder and is tolerant to unmatched
// '{': an unclosed '{' is treated as plain text.
func ParseTemplate(tpl string) (TemplateAST, error) {
	runes := []rune(tpl)
	n := len(runes)

	var nodes TemplateAST
	var buf bytes.Buffer

	i := 0
	for i < n {
		// 普通字符，累积到文本缓冲
		if runes[i] != '{' {
			buf.WriteRune(runes[i])
			i++
			continue
		}

		start := i
		depth := 1
		j := i + 1

		for j < n && depth > 0 {
			switch runes[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}

		if depth != 0 {
			// 没有找到配对的 '}'，宽松模式：把这个 '{' 当普通字符输出
			buf.WriteRune(runes[start])
			i = start + 1
			continue
		}

		// 找到配对的 '}' 后才 flush 文本节点
		if buf.Len() > 0 {
			nodes = append(nodes, &TextNode{Text: buf.String()})
			buf.Reset()
		}

		raw := string(runes[start+1 : j-1])
		i = j

		ph, err := parsePlaceholder(raw)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, ph)
	}

	if buf.Len() > 0 {
		nodes = append(nodes, &TextNode{Text: buf.String()})
	}

	return nodes, nil
}

// parsePlaceholder parses the expression inside `{ ... }`.
func parsePlaceholder(expr string) (*PlaceholderNode, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, errors.New("empty placeholder expression")
	}
	return &PlaceholderNode{Name: expr}, nil
}

// Params returns the distinct {name} parameters the runtime translator
// would substitute in tpl, sorted.
func Params(tpl string) []string {
	seen := make(map[string]struct{})
	for _, m := range paramPattern.FindAllStringSubmatch(tpl, -1) {
		seen[m[1]] = struct{}{}
	}
	return sortedSet(seen)
}

// ValidateTemplate does a strict validation for linting purpose:
//  1. checks brace balance
//  2. parses into AST
//  3. checks every placeholder is a plain {name} parameter
func ValidateTemplate(tpl string) error {
	if err := checkBraces(tpl); err != nil {
		return err
	}

	ast, err := ParseTemplate(tpl)
	if err != nil {
		return err
	}

	// 运行时只替换 {word} 形式，其余写法会原样输出
	for _, node := range ast {
		ph, ok := node.(*PlaceholderNode)
		if !ok {
			continue
		}
		if !paramName.MatchString(ph.Name) {
			return fmt.Errorf("placeholder %s is not a plain parameter name", ph.Source())
		}
	}

	return nil
}

// checkBraces checks that all '{' and '}' are balanced at the template level.
func checkBraces(tpl string) error {
	runes := []rune(tpl)
	depth := 0
	firstOpen := -1

	for i, r := range runes {
		switch r {
		case '{':
			if depth == 0 {
				firstOpen = i
			}
			depth++
		case '}':
			if depth == 0 {
				return fmt.Errorf("extra closing '}' at position %d", i)
			}
			depth--
		}
	}

	if depth != 0 && firstOpen >= 0 {
		return fmt.Errorf("unclosed placeholder starting at position %d", firstOpen)
	}
	return nil
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
