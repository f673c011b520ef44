package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/lists"
	"github.com/gorewood/blogtools/internal/output"
)

// listView is the JSON form of lists show.
type listView struct {
	List  string       `json:"list"`
	Posts []lists.Item `json:"posts"`
}

// newListsShowCmd creates the lists show command.
func newListsShowCmd() *cobra.Command {
	var filter lists.Filter
	var statusFlag bool

	cmd := &cobra.Command{
		Use:     "show <list>",
		Aliases: []string{"list"},
		Short:   "View all posts in a list",
		Long: `View the posts in a list, in the order they were added.

--completed and --in-progress narrow the view; together they only show
posts that are both. --status prefixes each post with its status:
[✓] completed, [~] in progress, [ ] planned.

Examples:
  blog-tools lists show ideas
  blog-tools lists show ideas --status
  blog-tools lists show ideas --completed --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsShow(cmd, args[0], filter, statusFlag)
		},
	}

	cmd.Flags().BoolVar(&filter.Completed, "completed", false, "Show only completed posts")
	cmd.Flags().BoolVar(&filter.InProgress, "in-progress", false, "Show only in-progress posts")
	cmd.Flags().BoolVar(&statusFlag, "status", false, "Show post status as well")

	return cmd
}

func runListsShow(cmd *cobra.Command, name string, filter lists.Filter, statusFlag bool) error {
	printer := output.ForCommand(cmd)

	items, err := newListService(cmd, printer, nil).ShowList(name, filter)
	if err != nil {
		return reportListsError(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(listView{List: name, Posts: items})
	}

	printer.Println(strings.ToUpper(name))
	for _, item := range items {
		if statusFlag {
			printer.Println("- " + printer.Mark(item.Mark()) + " " + item.Name)
			continue
		}
		printer.Println("- " + item.Name)
	}
	return nil
}
