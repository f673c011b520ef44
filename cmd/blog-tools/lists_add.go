package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/output"
)

// newListsAddCmd creates the lists add command.
func newListsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <list> <post>",
		Short: "Add a post to a list",
		Long: `Add a post idea to an existing list. The post starts out planned.

Adding a post that is already in the list resets it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsAdd(cmd, args[0], args[1])
		},
	}
}

func runListsAdd(cmd *cobra.Command, list, postName string) error {
	printer := output.ForCommand(cmd)

	if err := newListService(cmd, printer, nil).AddPost(list, postName); err != nil {
		return reportListsError(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"status": "added", "list": list, "post": postName})
	}
	printer.Success("Added %s to %s list", postName, list)
	return nil
}
