package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/output"
)

// newListsCreateCmd creates the lists create command.
func newListsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a list",
		Long: `Create an empty list.

Creating a list that already exists empties it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsCreate(cmd, args[0])
		},
	}
}

func runListsCreate(cmd *cobra.Command, name string) error {
	printer := output.ForCommand(cmd)

	if err := newListService(cmd, printer, nil).CreateList(name); err != nil {
		return reportListsError(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"status": "created", "list": name})
	}
	printer.Success("Created list: %s", name)
	return nil
}
