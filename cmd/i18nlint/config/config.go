// Package config holds the i18nlint configuration.
//
// Configuration is loaded from:
// 1. default values (the fixed paths and lists of the original scripts)
// 2. an optional YAML file (--config, else .i18nlint.yaml in the working directory)
// 3. command-line flags bound by the caller
//
// Environment variables are not read.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = ".i18nlint.yaml"

// Config is the root configuration structure.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Keys KeysConfig `mapstructure:"keys"`
	Scan ScanConfig `mapstructure:"scan"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// KeysConfig configures the dictionary consistency check.
type KeysConfig struct {
	Base   LocaleConfig `mapstructure:"base"`
	Target LocaleConfig `mapstructure:"target"`

	// Fail makes findings turn into a non-zero exit status.
	Fail bool `mapstructure:"fail"`
}

// LocaleConfig points at one locale's dictionary file.
type LocaleConfig struct {
	Tag   string `mapstructure:"tag"`
	Path  string `mapstructure:"path"`
	Label string `mapstructure:"label"`
}

// DisplayLabel returns Label, or a label derived from the locale tag.
func (l LocaleConfig) DisplayLabel() string {
	if l.Label != "" {
		return l.Label
	}
	tag, err := language.Parse(l.Tag)
	if err != nil {
		return l.Path
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return fmt.Sprintf("%s dictionary (%s)", name, tag)
	}
	return fmt.Sprintf("%s dictionary", tag)
}

// ScanConfig configures the hardcoded-literal scanner.
type ScanConfig struct {
	Root         string   `mapstructure:"root"`
	ExcludeDirs  []string `mapstructure:"exclude_dirs"`
	ExcludeFiles []string `mapstructure:"exclude_files"`
	IncludeExts  []string `mapstructure:"include_exts"`

	// Pattern matches one run of the script that must not be hardcoded.
	Pattern string `mapstructure:"pattern"`
	Verbose bool   `mapstructure:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "warn", Format: "console"},
		Keys: KeysConfig{
			Base:   LocaleConfig{Tag: "zh-CN", Path: "app/src/lib/i18n/locales/zh-CN.ts"},
			Target: LocaleConfig{Tag: "en-US", Path: "app/src/lib/i18n/locales/en-US.ts"},
		},
		Scan: ScanConfig{
			Root:         "app/src",
			ExcludeDirs:  []string{".git", "node_modules", "dist", "build", ".svelte-kit", "data", "crawler", "openspec", ".specify"},
			ExcludeFiles: []string{"check_i18n.py", "zh-CN.ts", "README.md", "AGENTS.md", "PLAN.md"},
			IncludeExts:  []string{".ts", ".svelte", ".js", ".tsx", ".jsx"},
			Pattern:      `[\x{4e00}-\x{9fff}]+`,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("keys.base.tag", d.Keys.Base.Tag)
	v.SetDefault("keys.base.path", d.Keys.Base.Path)
	v.SetDefault("keys.base.label", d.Keys.Base.Label)
	v.SetDefault("keys.target.tag", d.Keys.Target.Tag)
	v.SetDefault("keys.target.path", d.Keys.Target.Path)
	v.SetDefault("keys.target.label", d.Keys.Target.Label)
	v.SetDefault("keys.fail", d.Keys.Fail)
	v.SetDefault("scan.root", d.Scan.Root)
	v.SetDefault("scan.exclude_dirs", d.Scan.ExcludeDirs)
	v.SetDefault("scan.exclude_files", d.Scan.ExcludeFiles)
	v.SetDefault("scan.include_exts", d.Scan.IncludeExts)
	v.SetDefault("scan.pattern", d.Scan.Pattern)
	v.SetDefault("scan.verbose", d.Scan.Verbose)
}

// Loader reads configuration into a Config.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults applied.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	return &Loader{v: v}
}

// BindFlag binds a command-line flag to a configuration key, e.g. "keys.base.path".
// An unset flag leaves the file or default value in place.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file (if any) and returns the merged configuration.
// An explicit path must exist; the default file name is optional.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".yaml"))
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed returns the config file read by Load, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Validate checks locale tags and required paths.
func (c *Config) Validate() error {
	locales := []struct {
		name string
		loc  LocaleConfig
	}{
		{"keys.base", c.Keys.Base},
		{"keys.target", c.Keys.Target},
	}
	for _, l := range locales {
		if l.loc.Path == "" {
			return fmt.Errorf("%s.path is required", l.name)
		}
		if l.loc.Tag == "" {
			continue
		}
		if _, err := language.Parse(l.loc.Tag); err != nil {
			return fmt.Errorf("%s.tag %q: %w", l.name, l.loc.Tag, err)
		}
	}
	if c.Scan.Root == "" {
		return errors.New("scan.root is required")
	}
	if c.Scan.Pattern == "" {
		return errors.New("scan.pattern is required")
	}
	return nil
}
