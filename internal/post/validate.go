package post

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"go.abhg.dev/goldmark/frontmatter"
)

// Frontmatter is the metadata block at the top of a post.
type Frontmatter struct {
	Title  string   `json:"title"            yaml:"title"`
	Date   string   `json:"date"             yaml:"date"`
	Author string   `json:"author,omitempty" yaml:"author"`
	Tags   []string `json:"tags,omitempty"   yaml:"tags"`
}

// Report is the outcome of validating one post.
type Report struct {
	Path        string       `json:"path"`
	Frontmatter *Frontmatter `json:"frontmatter,omitempty"`
	Problems    []string     `json:"problems"`
}

// Valid reports whether no problems were found.
func (r *Report) Valid() bool {
	return len(r.Problems) == 0
}

// dateLayouts are the accepted forms of the date field.
var dateLayouts = []string{DateLayout, time.RFC3339, "2006-01-02 15:04:05"}

var markdown = goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))

// Validate checks the post at path. Problems with the post are collected in
// the report; only failures to read it are returned as errors.
func Validate(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading post: %w", err)
	}
	report := Check(data)
	report.Path = path
	return report, nil
}

// Check validates post content.
func Check(src []byte) *Report {
	report := &Report{Problems: []string{}}

	ctx := parser.NewContext()
	if err := markdown.Convert(src, io.Discard, parser.WithContext(ctx)); err != nil {
		report.addf("invalid markdown: %v", err)
		return report
	}

	data := frontmatter.Get(ctx)
	if data == nil {
		report.addf("missing frontmatter")
		return report
	}

	var fm Frontmatter
	if err := data.Decode(&fm); err != nil {
		report.addf("invalid frontmatter: %v", err)
		return report
	}
	report.Frontmatter = &fm

	if strings.TrimSpace(fm.Title) == "" {
		report.addf("missing title")
	}
	switch {
	case strings.TrimSpace(fm.Date) == "":
		report.addf("missing date")
	case !validDate(fm.Date):
		report.addf("invalid date %q, want YYYY-MM-DD", fm.Date)
	}
	return report
}

func (r *Report) addf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

func validDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
