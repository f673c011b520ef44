package main

import "github.com/spf13/cobra"

// newListsCmd creates the lists command and its subcommands.
func newListsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage lists of blog post ideas",
		Long: `Manage lists of blog post ideas.

A list holds post ideas in the order they were added. Each post is planned,
in progress or completed, and can carry tags and the path of its content.

Examples:
  blog-tools lists create ideas
  blog-tools lists add ideas "Why I like Go"
  blog-tools lists update ideas "Why I like Go" --in-progress
  blog-tools lists show ideas --status`,
	}

	cmd.AddCommand(newListsShowCmd())
	cmd.AddCommand(newListsAllCmd())
	cmd.AddCommand(newListsCreateCmd())
	cmd.AddCommand(newListsAddCmd())
	cmd.AddCommand(newListsUpdateCmd())
	cmd.AddCommand(newListsDeleteCmd())
	cmd.AddCommand(newListsRemoveCmd())

	return cmd
}
