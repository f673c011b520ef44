package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/confirm"
	"github.com/gorewood/blogtools/internal/output"
)

// deletion is the JSON form of a delete or remove result.
type deletion struct {
	Outcome string `json:"outcome"`
	Deleted bool   `json:"deleted"`
	List    string `json:"list"`
	Post    string `json:"post,omitempty"`
}

// newListsDeleteCmd creates the lists delete command.
func newListsDeleteCmd() *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "delete <list>",
		Short: "Delete a list",
		Long: `Delete a list and every post in it.

You are asked to confirm first: "y" deletes, "n" or enter cancels, and any
other answer leaves the list alone. --yes skips the question.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsDelete(cmd, args[0], yesFlag)
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Delete without asking")

	return cmd
}

func runListsDelete(cmd *cobra.Command, list string, yesFlag bool) error {
	printer := output.ForCommand(cmd)

	service := newListService(cmd, printer, newConfirmer(cmd, printer, yesFlag))
	outcome, err := service.DeleteList(list)
	if err != nil {
		return reportListsError(printer, err)
	}

	return reportDeletion(printer, outcome, deletion{List: list}, "Deleted '%s' list", list)
}

// newListsRemoveCmd creates the lists remove command.
func newListsRemoveCmd() *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "remove <list> <post>",
		Short: "Remove a post from a list",
		Long: `Remove a post from a list.

You are asked to confirm first: "y" removes, "n" or enter cancels, and any
other answer leaves the post alone. --yes skips the question.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListsRemove(cmd, args[0], args[1], yesFlag)
		},
	}

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Remove without asking")

	return cmd
}

func runListsRemove(cmd *cobra.Command, list, postName string, yesFlag bool) error {
	printer := output.ForCommand(cmd)

	service := newListService(cmd, printer, newConfirmer(cmd, printer, yesFlag))
	outcome, err := service.RemovePost(list, postName)
	if err != nil {
		return reportListsError(printer, err)
	}

	return reportDeletion(printer, outcome, deletion{List: list, Post: postName}, "Deleted '%s' post", postName)
}

// reportDeletion prints the outcome of a confirmed deletion. Declined and
// invalid answers are not errors.
func reportDeletion(printer *output.Printer, outcome confirm.Outcome, result deletion, deletedFormat, name string) error {
	if printer.IsJSON() {
		result.Outcome = outcome.String()
		result.Deleted = outcome == confirm.Affirmed
		return printer.WriteJSON(result)
	}

	switch outcome {
	case confirm.Affirmed:
		printer.Success(deletedFormat, name)
	case confirm.Invalid:
		printer.Warn("Invalid input. Not deleting.")
	default:
		printer.Info("Cancelled deletion.")
	}
	return nil
}
