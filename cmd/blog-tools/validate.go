package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/output"
	"github.com/gorewood/blogtools/internal/post"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check the frontmatter of posts",
		Long: `Check that each post starts with YAML frontmatter holding a title
and a date (YYYY-MM-DD or RFC 3339).

Exits with status 1 when any post has problems.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}
}

func runValidate(cmd *cobra.Command, files []string) error {
	printer := output.ForCommand(cmd)

	reports := make([]*post.Report, 0, len(files))
	invalid := 0
	for _, file := range files {
		report, err := post.Validate(file)
		if err != nil {
			exitErr := output.NewSystemErrorWithCause(err.Error(), err)
			printer.Error(exitErr)
			return exitErr
		}
		reports = append(reports, report)
		if !report.Valid() {
			invalid++
		}
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{"reports": reports}); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			if report.Valid() {
				printer.Success("%s is valid", report.Path)
				continue
			}
			for _, problem := range report.Problems {
				printer.Warn("%s: %s", report.Path, problem)
			}
		}
	}

	if invalid > 0 {
		err := output.NewUserError(fmt.Sprintf("%d of %d posts have problems", invalid, len(reports)))
		if !printer.IsJSON() {
			printer.Error(err)
		}
		return err
	}
	return nil
}
