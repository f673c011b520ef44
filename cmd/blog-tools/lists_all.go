package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/output"
)

// newListsAllCmd creates the lists all command.
func newListsAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every list with its post counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListsAll(cmd)
		},
	}
}

func runListsAll(cmd *cobra.Command) error {
	printer := output.ForCommand(cmd)

	summaries, err := newListService(cmd, printer, nil).Lists()
	if err != nil {
		return reportListsError(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"lists": summaries})
	}

	if len(summaries) == 0 {
		printer.Info("No lists yet. Create one with: blog-tools lists create <name>")
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.Posts),
			strconv.Itoa(s.InProgress),
			strconv.Itoa(s.Completed),
		})
	}
	printer.Table([]string{"LIST", "POSTS", "IN PROGRESS", "COMPLETED"}, rows)
	return nil
}
