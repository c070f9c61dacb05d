package i18nlint

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlFile 对应 language + messages 布局的 YAML 词典文件
type yamlFile struct {
	Language string         `yaml:"language"`
	Messages map[string]any `yaml:"messages"`
}

// ParseYAML decodes a YAML dictionary.
//
// Two layouts are accepted: a plain nested mapping, or a document with a
// `language` field and a `messages` mapping, in which case only the
// messages are returned.
func ParseYAML(data []byte) (Dictionary, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if isMessagesLayout(raw) {
		var yf yamlFile
		if err := yaml.Unmarshal(data, &yf); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		raw = yf.Messages
	}
	return FromMap(raw)
}

func isMessagesLayout(raw map[string]any) bool {
	if len(raw) != 2 {
		return false
	}
	_, hasLang := raw["language"].(string)
	_, hasMsgs := raw["messages"].(map[string]any)
	return hasLang && hasMsgs
}

// ParseJSON decodes a JSON dictionary.
func ParseJSON(data []byte) (Dictionary, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return FromMap(raw)
}
