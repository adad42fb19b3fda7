package exampleboard

import (
	"errors"
	"fmt"
)

// appConfig holds mutable state during app construction.
type appConfig struct {
	description string
	icon        string
	inputs      []Input
}

// AppOption is a function that configures an [ExampleApp] during construction.
//
// Options return an error if validation fails.
//
// Built-in options: [WithDescription], [WithIcon], [WithInput], [WithInputs].
type AppOption func(*appConfig) error

// WithDescription sets the text shown under the app title in the menu.
// Markdown is rendered; raw HTML is dropped.
func WithDescription(description string) AppOption {
	return func(cfg *appConfig) error {
		cfg.description = description
		return nil
	}
}

// WithIcon sets the menu icon.
func WithIcon(icon string) AppOption {
	return func(cfg *appConfig) error {
		cfg.icon = icon
		return nil
	}
}

// WithInput appends a source file to the app.
//
// Files keep the order in which they are added. Returns an error if path is
// empty or already used by this app.
func WithInput(path, code string) AppOption {
	return func(cfg *appConfig) error {
		return cfg.addInput(Input{Path: path, Code: code})
	}
}

// WithInputs appends several source files to the app.
//
// Equivalent to calling [WithInput] for each file.
func WithInputs(inputs ...Input) AppOption {
	return func(cfg *appConfig) error {
		for _, in := range inputs {
			if err := cfg.addInput(in); err != nil {
				return err
			}
		}
		return nil
	}
}

func (cfg *appConfig) addInput(in Input) error {
	if in.Path == "" {
		return errors.New("input path cannot be empty")
	}
	for _, existing := range cfg.inputs {
		if existing.Path == in.Path {
			return fmt.Errorf("duplicate input path %q", in.Path)
		}
	}
	cfg.inputs = append(cfg.inputs, in)
	return nil
}
