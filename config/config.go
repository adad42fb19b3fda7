// Package config provides YAML configuration parsing for ExampleBoard.
//
// This package enables running ExampleBoard as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	port: 8080
//	brand: Qwik
//	default_app: hello-world
//	session_ttl: 30m
//
//	sections:
//	  - id: introduction
//	    title: Introduction
//	    apps:
//	      - id: hello-world
//	        title: Hello World
//	        icon: "🌎"
//	        description: The simplest Qwik app.
//	        dir: apps/hello-world
//	      - id: counter
//	        title: Counter
//	        inputs:
//	          - apps/counter/app.tsx
//	          - path: root.tsx
//	            code: "export default () => <Counter />;"
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort       = 8080
	defaultSessionTTL = time.Hour
	defaultRateBurst  = 10

	// minSessionTTL keeps the sweeper from running in a tight loop.
	minSessionTTL = time.Second
)

// Config is the root configuration structure for ExampleBoard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Brand is the document title suffix. Defaults to "Qwik" if not set.
	Brand string `yaml:"brand"`

	// Port is the HTTP server port. Defaults to 8080.
	Port int `yaml:"port"`

	// DefaultApp is the app "/" redirects to. Defaults to the first app.
	DefaultApp string `yaml:"default_app"`

	// SessionTTL is how long an idle page view session is kept.
	// Accepts duration strings like "30m", "1h". Defaults to 1h.
	SessionTTL Duration `yaml:"session_ttl"`

	// SwitchToInputOnSelect makes a menu selection also show the Input panel.
	SwitchToInputOnSelect bool `yaml:"switch_to_input_on_select"`

	// ContributeURL adds a link for contributing examples to the menu.
	ContributeURL string `yaml:"contribute_url"`

	// RateLimit limits session API requests per client IP.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Sections defines the examples menu in order.
	Sections []SectionConfig `yaml:"sections"`

	// BaseDir is the directory relative input files are resolved against.
	// [Load] sets it to the config file's directory.
	BaseDir string `yaml:"-"`
}

// RateLimitConfig configures the per-IP token bucket.
type RateLimitConfig struct {
	// RPS is the sustained request rate. Zero disables rate limiting.
	RPS float64 `yaml:"rps"`

	// Burst is the bucket size. Defaults to 10 when RPS is set.
	Burst int `yaml:"burst"`
}

// SectionConfig defines a titled group of apps.
type SectionConfig struct {
	ID    string      `yaml:"id"`
	Title string      `yaml:"title"`
	Apps  []AppConfig `yaml:"apps"`
}

// AppConfig defines a single example app.
type AppConfig struct {
	// ID appears in the page URL: /examples/<id>.
	ID string `yaml:"id"`

	// Title is shown in the menu and the document title.
	Title string `yaml:"title"`

	// Description is shown under the title. Markdown is rendered.
	Description string `yaml:"description"`

	// Icon is shown next to the title.
	Icon string `yaml:"icon"`

	// Dir loads every file under a directory as the app's inputs.
	// Supports environment variable substitution. Mutually exclusive with Inputs.
	Dir string `yaml:"dir"`

	// Inputs lists the app's source files in order.
	Inputs []InputConfig `yaml:"inputs"`
}

// InputConfig specifies one source file of an app.
//
// It supports two formats in YAML:
//
// Shorthand string, a file path:
//
//	inputs:
//	  - apps/counter/app.tsx
//
// Structured object, with inline code or a file:
//
//	inputs:
//	  - path: app.tsx
//	    code: "export default () => <p>Hi</p>;"
//	  - path: root.tsx
//	    file: shared/root.tsx
type InputConfig struct {
	// Path is the file name shown in the editor. Defaults to the base name
	// of File.
	Path string

	// Code is inline file content.
	Code string

	// File is read for the content when Code is empty. Relative paths are
	// resolved against [Config.BaseDir].
	File string
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler for InputConfig.
func (in *InputConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		in.File = strings.TrimSpace(s)
		return nil
	}

	if node.Kind == yaml.MappingNode {
		// temporary struct to avoid infinite recursion
		var raw struct {
			Path string `yaml:"path"`
			Code string `yaml:"code"`
			File string `yaml:"file"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		in.Path = raw.Path
		in.Code = raw.Code
		in.File = raw.File
		return nil
	}

	return fmt.Errorf("input must be a string or object, got %v", node.Kind)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Relative input files and directories are resolved against the directory
// containing path. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.BaseDir = filepath.Dir(path)
	return cfg, nil
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in Dir and File values.
// Defaults are applied for Port (8080), SessionTTL (1h) and the rate limit
// burst (10). BaseDir is left as "." and may be overridden by the caller.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = Duration(defaultSessionTTL)
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = defaultRateBurst
	}
	cfg.BaseDir = "."

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// AppCount returns the number of apps across all sections.
func (c *Config) AppCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Apps)
	}
	return n
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.SessionTTL.Duration() < minSessionTTL {
		return fmt.Errorf("session_ttl must be at least %s, got %s", minSessionTTL, c.SessionTTL.Duration())
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit.rps cannot be negative, got %v", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit.burst cannot be negative, got %d", c.RateLimit.Burst)
	}

	seen := make(map[string]string)
	for i := range c.Sections {
		s := &c.Sections[i]

		if s.ID == "" {
			return fmt.Errorf("sections[%d]: id is required", i)
		}
		if s.Title == "" {
			return fmt.Errorf("sections[%d] (%s): title is required", i, s.ID)
		}

		for j := range s.Apps {
			app := &s.Apps[j]
			ctx := fmt.Sprintf("sections[%d].apps[%d]", i, j)

			if app.ID == "" {
				return fmt.Errorf("%s: id is required", ctx)
			}
			ctx = fmt.Sprintf("%s (%s)", ctx, app.ID)
			if strings.Contains(app.ID, "/") {
				return fmt.Errorf("%s: id cannot contain '/'", ctx)
			}
			if owner, exists := seen[app.ID]; exists {
				return fmt.Errorf("%s: duplicate app id (already in section %q)", ctx, owner)
			}
			seen[app.ID] = s.ID

			if app.Title == "" {
				return fmt.Errorf("%s: title is required", ctx)
			}

			if err := app.expandAndValidate(ctx); err != nil {
				return err
			}
		}
	}

	if len(seen) == 0 {
		return errors.New("at least one app must be defined")
	}

	if c.DefaultApp != "" {
		if _, ok := seen[c.DefaultApp]; !ok {
			return fmt.Errorf("default_app %q is not defined in any section", c.DefaultApp)
		}
	}

	return nil
}

func (a *AppConfig) expandAndValidate(ctx string) error {
	if a.Dir != "" {
		if len(a.Inputs) > 0 {
			return fmt.Errorf("%s: dir and inputs are mutually exclusive", ctx)
		}
		expanded, err := expandEnvVars(a.Dir)
		if err != nil {
			return fmt.Errorf("%s: dir: %w", ctx, err)
		}
		a.Dir = expanded
		return nil
	}

	paths := make(map[string]struct{}, len(a.Inputs))
	for k := range a.Inputs {
		in := &a.Inputs[k]

		if in.Code != "" && in.File != "" {
			return fmt.Errorf("%s: inputs[%d]: code and file are mutually exclusive", ctx, k)
		}
		if in.File != "" {
			expanded, err := expandEnvVars(in.File)
			if err != nil {
				return fmt.Errorf("%s: inputs[%d]: file: %w", ctx, k, err)
			}
			in.File = expanded
			if in.Path == "" {
				in.Path = path.Base(filepath.ToSlash(in.File))
			}
		}
		if in.Path == "" {
			return fmt.Errorf("%s: inputs[%d]: path is required for inline code", ctx, k)
		}
		if _, exists := paths[in.Path]; exists {
			return fmt.Errorf("%s: inputs[%d]: duplicate path %q", ctx, k, in.Path)
		}
		paths[in.Path] = struct{}{}
	}

	return nil
}
