package post

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template sources.
const (
	SourceUser    = "user"
	SourceBuiltin = "built-in"
)

// Template is a post template.
type Template struct {
	Name    string
	Content string
	// Source is SourceUser or SourceBuiltin.
	Source string
	// Path is the file the template was read from; empty for built-ins.
	Path string
}

// TemplateInfo describes a template for listing.
type TemplateInfo struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	Path      string `json:"path,omitempty"`
	Overrides bool   `json:"overrides,omitempty"` // user template shadows a built-in
}

// ErrTemplateNotFound is returned when no template matches a name.
var ErrTemplateNotFound = errors.New("template not found")

// LoadTemplate finds a template by name in dir, then among the built-ins.
// The name may be given with or without the .md suffix.
func LoadTemplate(dir, name string) (*Template, error) {
	base := templateName(name)

	if tmpl, err := loadFromDir(dir, name); err == nil {
		return tmpl, nil
	}
	if tmpl, err := loadBuiltin(base); err == nil {
		return tmpl, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}

// ListTemplates returns the templates in dir followed by the built-ins that
// no user template overrides.
func ListTemplates(dir string) ([]TemplateInfo, error) {
	user, err := listFromDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	builtins := listBuiltins()
	isBuiltin := make(map[string]bool, len(builtins))
	for _, info := range builtins {
		isBuiltin[info.Name] = true
	}

	seen := make(map[string]bool, len(user))
	templates := make([]TemplateInfo, 0, len(user)+len(builtins))
	for _, info := range user {
		info.Overrides = isBuiltin[info.Name]
		seen[info.Name] = true
		templates = append(templates, info)
	}
	for _, info := range builtins {
		if !seen[info.Name] {
			templates = append(templates, info)
		}
	}
	return templates, nil
}

// templateName strips the .md suffix.
func templateName(name string) string {
	return strings.TrimSuffix(name, ".md")
}

func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	candidates := []string{name}
	if !strings.HasSuffix(name, ".md") {
		candidates = append(candidates, name+".md")
	}

	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return &Template{
			Name:    templateName(candidate),
			Content: string(data),
			Source:  SourceUser,
			Path:    path,
		}, nil
	}
	return nil, fmt.Errorf("template %q not in %s", name, dir)
}

func listFromDir(dir string) ([]TemplateInfo, error) {
	if dir == "" {
		return nil, nil
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var templates []TemplateInfo
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		templates = append(templates, TemplateInfo{
			Name:   templateName(entry.Name()),
			Source: SourceUser,
			Path:   filepath.Join(dir, entry.Name()),
		})
	}
	return templates, nil
}
