package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpalmerr/exampleboard"
)

// BuildSections converts parsed configuration into SDK Section objects.
//
// Input files and directories are read from disk, relative to cfg.BaseDir.
func BuildSections(cfg *Config) ([]exampleboard.Section, error) {
	sections := make([]exampleboard.Section, 0, len(cfg.Sections))

	for _, sc := range cfg.Sections {
		apps := make([]exampleboard.ExampleApp, 0, len(sc.Apps))
		for _, ac := range sc.Apps {
			app, err := buildApp(ac, cfg.BaseDir)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", sc.ID, err)
			}
			apps = append(apps, app)
		}

		section, err := exampleboard.NewSection(sc.ID, sc.Title, apps...)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, nil
}

// BuildOptions converts parsed configuration into SDK options, including
// the sections built by [BuildSections].
func BuildOptions(cfg *Config) ([]exampleboard.Option, error) {
	sections, err := BuildSections(cfg)
	if err != nil {
		return nil, err
	}

	opts := []exampleboard.Option{
		exampleboard.WithSections(sections...),
		exampleboard.WithPort(cfg.Port),
		exampleboard.WithSessionTTL(cfg.SessionTTL.Duration()),
		exampleboard.WithSwitchToInputOnSelect(cfg.SwitchToInputOnSelect),
	}
	if cfg.Brand != "" {
		opts = append(opts, exampleboard.WithBrand(cfg.Brand))
	}
	if cfg.DefaultApp != "" {
		opts = append(opts, exampleboard.WithDefaultApp(cfg.DefaultApp))
	}
	if cfg.ContributeURL != "" {
		opts = append(opts, exampleboard.WithContributeURL(cfg.ContributeURL))
	}
	if cfg.RateLimit.RPS > 0 {
		opts = append(opts, exampleboard.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	return opts, nil
}

// buildApp converts a single AppConfig to an SDK ExampleApp.
func buildApp(ac AppConfig, baseDir string) (exampleboard.ExampleApp, error) {
	var opts []exampleboard.AppOption

	if ac.Description != "" {
		opts = append(opts, exampleboard.WithDescription(ac.Description))
	}
	if ac.Icon != "" {
		opts = append(opts, exampleboard.WithIcon(ac.Icon))
	}

	if ac.Dir != "" {
		inputs, err := exampleboard.InputsFromFS(os.DirFS(resolve(baseDir, ac.Dir)), ".")
		if err != nil {
			return exampleboard.ExampleApp{}, fmt.Errorf("app %q: %w", ac.ID, err)
		}
		opts = append(opts, exampleboard.WithInputs(inputs...))
	}

	for _, ic := range ac.Inputs {
		code := ic.Code
		if ic.File != "" {
			data, err := os.ReadFile(resolve(baseDir, ic.File))
			if err != nil {
				return exampleboard.ExampleApp{}, fmt.Errorf("app %q: input %q: %w", ac.ID, ic.Path, err)
			}
			code = string(data)
		}
		opts = append(opts, exampleboard.WithInput(ic.Path, code))
	}

	return exampleboard.NewApp(ac.ID, ac.Title, opts...)
}

// resolve joins p to baseDir unless p is absolute.
func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, p)
}
