package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/config"
	"github.com/gorewood/blogtools/internal/output"
	"github.com/gorewood/blogtools/internal/post"
)

// generateFlags holds the generate command flags.
type generateFlags struct {
	template string
	author   string
	tags     []string
	content  string
	output   string
	dir      string
	force    bool
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate <title>",
		Short: "Create a new post from a template",
		Long: `Create a new post file from a template.

The file is named after the slugified title (My Post -> my-post.md) and
written to --dir, or to the exact path given with --output. Templates are
looked up in the templates directory of the configuration, then among the
built-ins. Author, tags and template default to the values in config.yml.

Template placeholders: {{title}}, {{date}}, {{author}}, {{tags}}, {{content}}.

Examples:
  blog-tools generate "Why I like Go"
  blog-tools generate "Release notes" --tags go --tags release --author sam
  blog-tools generate "Draft" --content notes.md --output posts/draft.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template name (default from config.yml)")
	cmd.Flags().StringVar(&flags.author, "author", "", "Post author (default from config.yml)")
	cmd.Flags().StringSliceVar(&flags.tags, "tags", nil, "Post tags (default from config.yml)")
	cmd.Flags().StringVar(&flags.content, "content", "", "File whose content fills {{content}}")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the post to this path")
	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Directory for the post when --output is not set")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing post")

	return cmd
}

func runGenerate(cmd *cobra.Command, title string, flags generateFlags) error {
	printer := output.ForCommand(cmd)
	paths := appFor(cmd).paths

	settings, err := config.LoadSettings(paths)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	opts := post.Options{
		Title:        title,
		TemplatesDir: paths.TemplatesDir,
		TemplateName: settings.DefaultTemplate,
		Author:       settings.Author,
		Tags:         settings.Tags,
		ContentFile:  flags.content,
		Output:       flags.output,
		Dir:          flags.dir,
		Force:        flags.force,
	}
	if flags.template != "" {
		opts.TemplateName = flags.template
	}
	if flags.author != "" {
		opts.Author = flags.author
	}
	if cmd.Flags().Changed("tags") {
		opts.Tags = flags.tags
	}

	result, err := post.Generate(opts)
	if err != nil {
		exitErr := generateError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	printer.Created("Created post: %s", result.Path)
	return nil
}

// generateError maps generation failures to exit codes.
func generateError(err error) *output.ExitError {
	switch {
	case errors.Is(err, post.ErrExists):
		exitErr := output.NewConflictError(err.Error() + " (use --force to overwrite)")
		exitErr.Cause = err
		return exitErr
	case errors.Is(err, post.ErrTemplateNotFound):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}
