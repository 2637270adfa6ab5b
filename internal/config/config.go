// Package config manages the user preferences file, by default
// <user config dir>/create-mini-vite/config.yaml. Every key can be
// overridden from the environment with a MINI_VITE_ prefix, for example
// MINI_VITE_TEMPLATE=react-ts.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/mini-vite/create/internal/pm"
)

const (
	appDir    = "create-mini-vite"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "MINI_VITE"
)

// Keys.
const (
	KeyTemplate       = "template"
	KeyFeatures       = "features"
	KeyCSS            = "css"
	KeyTemplatesDir   = "templates_dir"
	KeyLogDir         = "log_dir"
	KeyIgnore         = "ignore"
	KeyPackageManager = "package_manager"
)

// CSS choices besides a plugin name.
const CSSNone = "none"

var keys = []string{KeyTemplate, KeyFeatures, KeyCSS, KeyTemplatesDir, KeyLogDir, KeyIgnore, KeyPackageManager}

// listKeys hold comma-separated lists.
var listKeys = map[string]bool{KeyFeatures: true, KeyIgnore: true}

// Config holds the defaults applied when a flag or prompt does not decide.
type Config struct {
	Template       string   `mapstructure:"template" yaml:"template"`
	Features       []string `mapstructure:"features" yaml:"features"`
	CSS            string   `mapstructure:"css" yaml:"css"`
	TemplatesDir   string   `mapstructure:"templates_dir" yaml:"templates_dir"`
	LogDir         string   `mapstructure:"log_dir" yaml:"log_dir"`
	Ignore         []string `mapstructure:"ignore" yaml:"ignore"`
	PackageManager string   `mapstructure:"package_manager" yaml:"package_manager"`
}

// Keys returns every supported key.
func Keys() []string {
	return slices.Clone(keys)
}

// DefaultPath returns <user config dir>/create-mini-vite/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appDir, fileName+"."+fileType)
}

// Load reads the file at path, layered over built-in defaults and under
// MINI_VITE_* environment variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Features = trimList(cfg.Features)
	cfg.Ignore = trimList(cfg.Ignore)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTemplate, "")
	v.SetDefault(KeyFeatures, []string{})
	v.SetDefault(KeyCSS, "")
	v.SetDefault(KeyTemplatesDir, "")
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyIgnore, []string{})
	v.SetDefault(KeyPackageManager, "")
}

// Validate checks the values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.CSS {
	case "", CSSNone, "tailwind", "unocss":
	default:
		return fmt.Errorf("css must be tailwind, unocss or none, got %q", c.CSS)
	}
	if c.PackageManager != "" {
		if _, ok := pm.Lookup(c.PackageManager); !ok {
			return fmt.Errorf("package_manager must be one of %s, got %q", strings.Join(pm.Names(), ", "), c.PackageManager)
		}
	}
	return nil
}

// Set writes one key to the file at path, creating it if needed.
// List keys take a comma-separated value; an empty value clears the key.
func Set(path, key, value string) error {
	if !slices.Contains(keys, key) {
		return fmt.Errorf("unknown key %q (valid: %s)", key, strings.Join(keys, ", "))
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if listKeys[key] {
		v.Set(key, trimList(strings.Split(value, ",")))
	} else {
		v.Set(key, strings.TrimSpace(value))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// trimList drops blank entries and surrounding whitespace.
func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
