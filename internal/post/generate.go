package post

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/natefinch/atomic"
)

// ErrExists is returned when the output file is already present and
// overwriting was not requested.
var ErrExists = errors.New("post file already exists")

// Options configures Generate.
type Options struct {
	Title        string
	TemplatesDir string
	TemplateName string
	Author       string
	Tags         []string
	// ContentFile is read and substituted for {{content}} when set.
	ContentFile string
	// Output is the file to write. When empty the file is named after the
	// slugified title inside Dir.
	Output string
	Dir    string
	Now    time.Time
	Force  bool
}

// Result describes a generated post.
type Result struct {
	Path     string `json:"path"`
	Template string `json:"template"`
	Source   string `json:"source"`
}

// OutputPath returns where Generate writes the post for opts.
func OutputPath(opts Options) string {
	if opts.Output != "" {
		return opts.Output
	}
	name := slug.Make(opts.Title)
	if name == "" {
		name = "post"
	}
	return filepath.Join(opts.Dir, name+".md")
}

// Generate renders a template into a new post file.
func Generate(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Title) == "" {
		return nil, errors.New("title is required")
	}

	tmpl, err := LoadTemplate(opts.TemplatesDir, opts.TemplateName)
	if err != nil {
		return nil, err
	}

	var content string
	if opts.ContentFile != "" {
		data, err := os.ReadFile(opts.ContentFile)
		if err != nil {
			return nil, fmt.Errorf("reading content file: %w", err)
		}
		content = string(data)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	path := OutputPath(opts)
	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	rendered := Render(tmpl, &RenderContext{
		Title:   opts.Title,
		Date:    now,
		Author:  opts.Author,
		Tags:    opts.Tags,
		Content: content,
	})

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := atomic.WriteFile(path, strings.NewReader(rendered)); err != nil {
		return nil, fmt.Errorf("writing post: %w", err)
	}

	return &Result{Path: path, Template: tmpl.Name, Source: tmpl.Source}, nil
}
