package post

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the format of {{date}}.
const DateLayout = "2006-01-02"

// RenderContext provides data for template rendering.
type RenderContext struct {
	Title   string
	Date    time.Time
	Author  string
	Tags    []string
	Content string
}

// Render substitutes the placeholders in the template content in a single
// pass, so substituted values are never expanded again. Unknown
// placeholders are left as they are.
func Render(tmpl *Template, ctx *RenderContext) string {
	vars := buildVars(ctx)
	pairs := make([]string, 0, len(vars)*2)
	for key, val := range vars {
		pairs = append(pairs, "{{"+key+"}}", val)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl.Content)
}

func buildVars(ctx *RenderContext) map[string]string {
	return map[string]string{
		"title":   ctx.Title,
		"date":    ctx.Date.Format(DateLayout),
		"author":  ctx.Author,
		"tags":    quoteTags(ctx.Tags),
		"content": ctx.Content,
	}
}

// quoteTags renders tags as a comma separated list of quoted strings, so
// `tags: [{{tags}}]` is a YAML sequence.
func quoteTags(tags []string) string {
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = strconv.Quote(tag)
	}
	return strings.Join(quoted, ", ")
}
