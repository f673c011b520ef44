// Package post generates new blog post files from templates and checks the
// frontmatter of existing ones.
//
// Templates are resolved in order:
//  1. <config dir>/templates/<name> (with or without the .md suffix)
//  2. Built-in templates (embedded in binary)
//
// Templates use {{name}} placeholders: title, date, author, tags and content.
package post
