package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifei6671/i18nlint/cmd/i18nlint/scanner"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestKeysCommand(t *testing.T) {
	t.Run("Keys_DefaultPaths", func(t *testing.T) {
		t.Chdir(t.TempDir())
		writeFile(t, "app/src/lib/i18n/locales/zh-CN.ts", "export const zhCN = {\n  a: { b: '你好' },\n};\n")
		writeFile(t, "app/src/lib/i18n/locales/en-US.ts", "export const enUS = {\n  a: { b: 'hello', c: 'world' },\n};\n")

		out, err := execute(t, "keys")
		require.NoError(t, err)
		assert.Contains(t, out, "is missing 1 keys:\n  - a.c\n")
	})
	t.Run("Keys_FileNotFound", func(t *testing.T) {
		t.Chdir(t.TempDir())

		out, err := execute(t, "keys")
		require.NoError(t, err)
		assert.Equal(t, "file not found: app/src/lib/i18n/locales/zh-CN.ts\n", out)
	})
	t.Run("Keys_Fail", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, "zh.yaml", "nav:\n  home: home\n")
		writeFile(t, "en.json", `{"nav": {"home": "Home"}}`)

		out, err := execute(t, "keys", "--base", "zh.yaml", "--target", "en.json", "--fail")
		assert.ErrorIs(t, err, errIssues)
		assert.Contains(t, out, "  - nav.home: \"home\"\n")
		assert.Equal(t, 1, exitCode(err, &bytes.Buffer{}))
	})
	t.Run("Keys_ConfigFile", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, "zh.ts", "export const zhCN = { a: '甲' };")
		writeFile(t, "en.ts", "export const enUS = { a: 'A' };")
		writeFile(t, "lint.yaml", "keys:\n  base:\n    path: zh.ts\n    label: 中文词典\n  target:\n    path: en.ts\n    label: 英文词典\n")

		out, err := execute(t, "--config", "lint.yaml", "keys")
		require.NoError(t, err)
		assert.Contains(t, out, "Keys match between 中文词典 and 英文词典.")
	})
}

func TestScanCommand(t *testing.T) {
	t.Run("Scan_Findings", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, "web/App.svelte", "<h1>课程表</h1>\n")

		out, err := execute(t, "scan", "--root", "web", "-v")
		assert.ErrorIs(t, err, scanner.ErrFindings)
		assert.Contains(t, out, "  L1: <h1>课程表</h1>\n")
		assert.Contains(t, out, "课程表\n")
		assert.Contains(t, out, "Total: 1 hardcoded strings")
	})
	t.Run("Scan_Clean", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, "app/src/App.svelte", "<h1>{t('title')}</h1>\n")

		out, err := execute(t, "scan")
		require.NoError(t, err)
		assert.Equal(t, "\nTotal: 0 hardcoded strings\n", out)
	})
	t.Run("Scan_RootMissing", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := execute(t, "scan")
		require.Error(t, err)
		var stderr bytes.Buffer
		assert.Equal(t, 1, exitCode(err, &stderr))
		assert.Contains(t, stderr.String(), "app/src not found")
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil, &bytes.Buffer{}))
}

func TestBadLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "--log-level", "loud", "scan")
	assert.Error(t, err)
}
