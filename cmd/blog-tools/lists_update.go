package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/lists"
	"github.com/gorewood/blogtools/internal/output"
)

// updateFlags holds the lists update flags.
type updateFlags struct {
	completed  bool
	inProgress bool
	path       string
	tags       []string
}

// newListsUpdateCmd creates the lists update command.
func newListsUpdateCmd() *cobra.Command {
	var flags updateFlags

	cmd := &cobra.Command{
		Use:   "update <list> <post>",
		Short: "Update the status of a blog post idea",
		Long: `Update a post in a list. At least one flag is required.

--completed and --in-progress only ever set a flag; marking a post that is
already marked prints a warning. --tags replaces the post's tags and --path
records where the post content lives.

Examples:
  blog-tools lists update ideas post1 --in-progress
  blog-tools lists update ideas post1 --completed --path content/post1.md
  blog-tools lists update ideas post1 --tags go --tags cli`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsUpdate(cmd, args[0], args[1], toUpdate(cmd, flags))
		},
	}

	cmd.Flags().BoolVar(&flags.completed, "completed", false, "Mark as complete")
	cmd.Flags().BoolVar(&flags.inProgress, "in-progress", false, "Mark as in progress")
	cmd.Flags().StringVar(&flags.path, "path", "", "Path to the post contents")
	cmd.Flags().StringSliceVar(&flags.tags, "tags", nil, "Tags for the post (repeatable or comma separated)")

	return cmd
}

// toUpdate keeps only the flags that were given on the command line.
func toUpdate(cmd *cobra.Command, flags updateFlags) lists.Update {
	update := lists.Update{
		Completed:  flags.completed,
		InProgress: flags.inProgress,
	}
	if cmd.Flags().Changed("tags") {
		update.Tags = append([]string{}, flags.tags...)
	}
	if cmd.Flags().Changed("path") {
		path := flags.path
		update.Path = &path
	}
	return update
}

func runListsUpdate(cmd *cobra.Command, list, postName string, update lists.Update) error {
	printer := output.ForCommand(cmd)

	notices, err := newListService(cmd, printer, nil).UpdatePost(list, postName, update)
	if err != nil {
		return reportListsError(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"list": list, "post": postName, "notices": notices})
	}

	for _, notice := range notices {
		switch notice.Level {
		case lists.LevelSuccess:
			printer.Success("%s", notice.Message)
		case lists.LevelWarning:
			printer.Warn("%s", notice.Message)
		default:
			printer.Notice("%s", notice.Message)
		}
	}
	return nil
}
