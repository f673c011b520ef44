package post

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.md
var builtinFS embed.FS

// DefaultTemplateFile is the file name of the template written on first run.
const DefaultTemplateFile = "post.md"

// DefaultTemplate returns the content of the built-in post template.
func DefaultTemplate() []byte {
	data, err := builtinFS.ReadFile("templates/" + DefaultTemplateFile)
	if err != nil {
		panic(fmt.Sprintf("embedded template missing: %v", err))
	}
	return data
}

func loadBuiltin(name string) (*Template, error) {
	path := "templates/" + name + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	return &Template{Name: name, Content: string(data), Source: SourceBuiltin}, nil
}

func listBuiltins() []TemplateInfo {
	dirEntries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	var templates []TemplateInfo
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		templates = append(templates, TemplateInfo{
			Name:   strings.TrimSuffix(entry.Name(), ".md"),
			Source: SourceBuiltin,
		})
	}
	return templates
}
