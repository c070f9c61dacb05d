package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lifei6671/i18nlint"
	"github.com/lifei6671/i18nlint/tsobject"
)

// ParseFunc decodes the raw contents of one dictionary file.
type ParseFunc func(data []byte) (i18nlint.Dictionary, error)

var sources = map[string]ParseFunc{
	".ts":   parseObjectLiteral,
	".js":   parseObjectLiteral,
	".mjs":  parseObjectLiteral,
	".yaml": i18nlint.ParseYAML,
	".yml":  i18nlint.ParseYAML,
	".json": i18nlint.ParseJSON,
}

func parseObjectLiteral(data []byte) (i18nlint.Dictionary, error) {
	return tsobject.Parse(string(data))
}

// SourceFor returns the parser registered for path's extension.
func SourceFor(path string) (ParseFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	parse, ok := sources[ext]
	if !ok {
		return nil, fmt.Errorf("file %s: unsupported dictionary format %q", path, ext)
	}
	return parse, nil
}

// LoadDictionary reads and decodes the dictionary at path.
func LoadDictionary(path string) (i18nlint.Dictionary, error) {
	parse, err := SourceFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}
