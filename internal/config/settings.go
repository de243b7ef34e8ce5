package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the file name written by `minigrep init`.
const DefaultSettingsFile = ".minigrep.yaml"

// ColorMode selects when matches are highlighted.
type ColorMode string

const (
	ColorNever  ColorMode = "never"
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
)

// Validate reports whether m is one of the known modes.
func (m ColorMode) Validate() error {
	switch m {
	case ColorNever, ColorAuto, ColorAlways:
		return nil
	default:
		return fmt.Errorf("unknown color mode %q (want never, auto or always)", string(m))
	}
}

// Settings holds the reporter defaults read from a settings file.
type Settings struct {
	Name        string    `yaml:"name"`
	LineNumbers bool      `yaml:"line_numbers"`
	Count       bool      `yaml:"count"`
	JSON        bool      `yaml:"json"`
	Color       ColorMode `yaml:"color"`
}

// Default returns the settings used when no settings file is given.
func Default() Settings {
	return Settings{
		Name:  "minigrep",
		Color: ColorNever,
	}
}

// Load reads settings from path. An empty path yields Default.
// Fields missing from the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return settings, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return settings, fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}

	if settings.Color == "" {
		settings.Color = ColorNever
	}
	if err := settings.Color.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings file %s: %w", path, err)
	}

	return settings, nil
}

// Write stores settings at path, replacing any existing file.
func Write(path string, settings Settings) error {
	if path == "" {
		path = DefaultSettingsFile
	}

	d, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
