package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTemplateName is the template generate uses when none is configured.
const DefaultTemplateName = "post.md"

// Settings is the content of config.yml.
type Settings struct {
	Author          string   `json:"author"           yaml:"author"`
	DefaultTemplate string   `json:"default_template" yaml:"default_template"`
	Tags            []string `json:"tags"             yaml:"tags"`
}

// DefaultSettings returns the settings written on first run.
// The author comes from $USER, falling back to "changeme".
func DefaultSettings() Settings {
	author := os.Getenv("USER")
	if author == "" {
		author = "changeme"
	}
	return Settings{
		Author:          author,
		DefaultTemplate: DefaultTemplateName,
		Tags:            []string{"blog"},
	}
}

// LoadSettings reads config.yml. Missing fields fall back to the defaults;
// a missing file yields DefaultSettings.
func LoadSettings(paths Paths) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("reading config file %s: %w", paths.ConfigFile, err)
	}

	var fromFile Settings
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return Settings{}, fmt.Errorf("parsing config file %s: %w", paths.ConfigFile, err)
	}

	if fromFile.Author != "" {
		settings.Author = fromFile.Author
	}
	if fromFile.DefaultTemplate != "" {
		settings.DefaultTemplate = fromFile.DefaultTemplate
	}
	if fromFile.Tags != nil {
		settings.Tags = fromFile.Tags
	}
	return settings, nil
}

// SetupResult reports what Setup had to create.
type SetupResult struct {
	CreatedConfig   bool
	CreatedTemplate string // path of the default template, when written
}

// Setup creates the configuration and templates directories, a default
// config.yml when none exists, and writes defaultTemplate as post.md when
// the templates directory is empty. Existing files are never touched.
func Setup(paths Paths, defaultTemplate []byte) (SetupResult, error) {
	var result SetupResult

	if err := os.MkdirAll(paths.TemplatesDir, 0o755); err != nil {
		return result, fmt.Errorf("creating templates directory: %w", err)
	}

	created, err := ensureConfigFile(paths)
	if err != nil {
		return result, err
	}
	result.CreatedConfig = created

	entries, err := os.ReadDir(paths.TemplatesDir)
	if err != nil {
		return result, fmt.Errorf("reading templates directory: %w", err)
	}
	if len(entries) == 0 {
		path := filepath.Join(paths.TemplatesDir, DefaultTemplateName)
		if err := os.WriteFile(path, defaultTemplate, 0o644); err != nil {
			return result, fmt.Errorf("writing default template: %w", err)
		}
		result.CreatedTemplate = path
	}

	return result, nil
}

func ensureConfigFile(paths Paths) (bool, error) {
	if _, err := os.Stat(paths.ConfigFile); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(DefaultSettings())
	if err != nil {
		return false, fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(paths.ConfigFile, data, 0o644); err != nil {
		return false, fmt.Errorf("writing config file: %w", err)
	}
	return true, nil
}
