// Package scanner finds literal text in a non-Latin script that is
// hardcoded in source files instead of going through the dictionary.
package scanner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"github.com/lifei6671/i18nlint/cmd/i18nlint/config"
	"github.com/lifei6671/i18nlint/internal/logger"
)

// ErrFindings signals a scan that found hardcoded text.
var ErrFindings = errors.New("hardcoded text found")

// Finding is one source line containing hardcoded text.
type Finding struct {
	Path    string
	Line    int
	Text    string // trimmed line
	Matches []string
}

// Report groups findings per file in walk order.
type Report struct {
	Files    []string
	Findings map[string][]Finding
}

// Total is the number of offending lines.
func (r *Report) Total() int {
	n := 0
	for _, f := range r.Findings {
		n += len(f)
	}
	return n
}

// Scanner holds a compiled scan configuration.
type Scanner struct {
	root         string
	excludeDirs  map[string]struct{}
	excludeFiles []glob.Glob
	includeExts  map[string]struct{}
	pattern      *regexp.Regexp
}

// New compiles cfg.
func New(cfg config.ScanConfig) (*Scanner, error) {
	pattern, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", cfg.Pattern, err)
	}
	s := &Scanner{
		root:        cfg.Root,
		excludeDirs: toSet(cfg.ExcludeDirs),
		includeExts: toSet(cfg.IncludeExts),
		pattern:     pattern,
	}
	for _, p := range cfg.ExcludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", p, err)
		}
		s.excludeFiles = append(s.excludeFiles, g)
	}
	return s, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// ShouldCheck reports whether the file at rel (relative to the root) is scanned.
func (s *Scanner) ShouldCheck(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if _, ok := s.excludeDirs[part]; ok {
			return false
		}
	}
	name := filepath.Base(rel)
	for _, g := range s.excludeFiles {
		if g.Match(name) {
			return false
		}
	}
	_, ok := s.includeExts[filepath.Ext(name)]
	return ok
}

// Scan walks the root in lexical order and collects findings.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	info, err := os.Stat(s.root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s not found", s.root)
	}

	report := &Report{Findings: make(map[string][]Finding)}
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.L().Debug("skip unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if _, ok := s.excludeDirs[d.Name()]; ok && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil || !s.ShouldCheck(rel) {
			return nil
		}

		findings, err := s.CheckFile(path)
		if err != nil {
			logger.L().Debug("skip unreadable file", zap.String("path", path), zap.Error(err))
			return nil
		}
		if len(findings) > 0 {
			report.Files = append(report.Files, path)
			report.Findings[path] = findings
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// CheckFile scans one file line by line.
func (s *Scanner) CheckFile(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.CheckLines(path, data)
}

// CheckLines scans data as the contents of path.
func (s *Scanner) CheckLines(path string, data []byte) ([]Finding, error) {
	var findings []Finding
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if skipLine(line) {
			continue
		}
		matches := s.pattern.FindAllString(line, -1)
		if len(matches) == 0 {
			continue
		}
		findings = append(findings, Finding{
			Path:    path,
			Line:    n,
			Text:    strings.TrimSpace(line),
			Matches: matches,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return findings, nil
}

// skipLine 按行粗略跳过注释和 import 语句，不做语法分析
func skipLine(line string) bool {
	if strings.Contains(line, "//") || strings.Contains(line, "/*") || strings.Contains(line, "*/") {
		return true
	}
	return strings.Contains(line, "import") && strings.Contains(line, "from")
}

// Scan is a shorthand for New(cfg) followed by Scan.
func Scan(ctx context.Context, cfg config.ScanConfig) (*Report, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx)
}
