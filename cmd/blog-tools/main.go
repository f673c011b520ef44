// Package main provides the entry point for the blog-tools CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/envfile"
	"github.com/gorewood/blogtools/internal/lists"
	"github.com/gorewood/blogtools/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError prints errors that commands have not printed themselves,
// such as cobra's argument and flag errors.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if output.IsReported(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the blog-tools CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal()
}

// newRootCmdInternal creates the root command with extra options for the
// lists store, such as a replacement file writer.
func newRootCmdInternal(storeOpts ...lists.StoreOption) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog-tools",
		Short: "Track blog post ideas and generate posts",
		Long: `blog-tools - Track blog post ideas and generate new posts from templates.

Ideas live in named lists and move from planned to in progress to completed.
Lists, settings and templates are kept in the configuration directory
(~/.config/blog-tools, or $BLOG_TOOLS_DIR when set).

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if output.ForCommand(cmd).IsJSON() {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'blog-tools --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) so a blog checkout can pin BLOG_TOOLS_DIR,
	// then make sure the configuration directory is populated.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles()
		return bootstrap(cmd, withApp(cmd, storeOpts).paths)
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always or never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "ideas", Title: "Idea Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "posts", Title: "Post Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newListsCmd(), "ideas")

	addGroupedCommand(cmd, newGenerateCmd(), "posts")
	addGroupedCommand(cmd, newValidateCmd(), "posts")

	addGroupedCommand(cmd, newConfigCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
