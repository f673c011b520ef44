// Package config resolves the blog-tools configuration directory and the
// files inside it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvDir overrides the configuration directory.
const EnvDir = "BLOG_TOOLS_DIR"

const appName = "blog-tools"

// Dir returns the blog-tools configuration directory.
//
// Resolution:
//   - $BLOG_TOOLS_DIR if set (explicit override)
//   - $XDG_CONFIG_HOME/blog-tools if set (respects XDG on any platform)
//   - %AppData%/blog-tools on Windows
//   - ~/.config/blog-tools on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Paths holds every location blog-tools reads or writes. It is built once
// at startup and handed to the components that need it.
type Paths struct {
	Dir          string `json:"dir"`
	ListsFile    string `json:"lists_file"`
	ConfigFile   string `json:"config_file"`
	TemplatesDir string `json:"templates_dir"`
}

// NewPaths lays out the standard files under dir.
func NewPaths(dir string) Paths {
	return Paths{
		Dir:          dir,
		ListsFile:    filepath.Join(dir, "lists.yml"),
		ConfigFile:   filepath.Join(dir, "config.yml"),
		TemplatesDir: filepath.Join(dir, "templates"),
	}
}

// DefaultPaths returns NewPaths(Dir()).
func DefaultPaths() Paths {
	return NewPaths(Dir())
}
