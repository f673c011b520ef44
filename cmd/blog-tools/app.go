package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/config"
	"github.com/gorewood/blogtools/internal/confirm"
	"github.com/gorewood/blogtools/internal/lists"
	"github.com/gorewood/blogtools/internal/output"
	"github.com/gorewood/blogtools/internal/post"
)

// missingStatusMessage is shown when update gets no fields to change.
const missingStatusMessage = `Please specify a status. Type "blog-tools lists update --help" for more info.`

// app holds what the root command resolves once per run. Subcommands get
// it from their context.
type app struct {
	paths     config.Paths
	storeOpts []lists.StoreOption
}

type appKey struct{}

// withApp resolves the configuration paths and attaches the app to cmd.
// It runs after the env files are loaded so they can set BLOG_TOOLS_DIR.
func withApp(cmd *cobra.Command, storeOpts []lists.StoreOption) *app {
	a := &app{paths: config.DefaultPaths(), storeOpts: storeOpts}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey{}, a))
	return a
}

// appFor returns the app attached by the root command.
func appFor(cmd *cobra.Command) *app {
	if ctx := cmd.Context(); ctx != nil {
		if a, ok := ctx.Value(appKey{}).(*app); ok {
			return a
		}
	}
	return withApp(cmd, nil)
}

// bootstrap creates the configuration directory, lists file, config file
// and default template on first run. Notes about what was created go to
// stderr so they never mix with command output.
func bootstrap(cmd *cobra.Command, paths config.Paths) error {
	errOut := cmd.ErrOrStderr()
	notes := output.NewPrinter(errOut, false, output.ResolveColorMode(colorFlag(cmd), output.IsTTY(errOut)))

	if err := lists.NewStore(paths.ListsFile).EnsureInitialized(); err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		notes.Error(exitErr)
		return exitErr
	}

	result, err := config.Setup(paths, post.DefaultTemplate())
	if result.CreatedConfig {
		notes.Warn("No configuration file found, generating now...")
	}
	if result.CreatedTemplate != "" {
		notes.Created("Created default template: %s", result.CreatedTemplate)
	}
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		notes.Error(exitErr)
		return exitErr
	}
	return nil
}

func colorFlag(cmd *cobra.Command) string {
	flag := cmd.Root().PersistentFlags().Lookup("color")
	if flag == nil {
		return output.ColorAuto
	}
	return flag.Value.String()
}

// newStore opens the lists file. Load warnings go through the printer's
// error writer, so stdout only carries the command result.
func newStore(cmd *cobra.Command, printer *output.Printer) *lists.Store {
	a := appFor(cmd)
	opts := append([]lists.StoreOption{lists.WithWarnFunc(printer.Warn)}, a.storeOpts...)
	return lists.NewStore(a.paths.ListsFile, opts...)
}

// newListService builds the list service for a command.
func newListService(cmd *cobra.Command, printer *output.Printer, confirmer confirm.Confirmer) *lists.Service {
	if confirmer == nil {
		confirmer = confirm.Fixed(confirm.Declined)
	}
	return lists.NewService(newStore(cmd, printer), confirmer)
}

// newConfirmer returns the gate for destructive commands. --yes skips the
// prompt. Prompts go to stderr in JSON mode to keep stdout parseable.
func newConfirmer(cmd *cobra.Command, printer *output.Printer, yes bool) confirm.Confirmer {
	if yes {
		return confirm.Fixed(confirm.Affirmed)
	}
	promptOut := cmd.OutOrStdout()
	if printer.IsJSON() {
		promptOut = cmd.ErrOrStderr()
	}
	return confirm.NewGate(cmd.InOrStdin(), promptOut, printer.Styles().Question)
}

// reportListsError converts a list service error into an ExitError,
// prints it and returns it.
func reportListsError(printer *output.Printer, err error) error {
	var exitErr *output.ExitError
	var writeErr *lists.WriteError
	switch {
	case errors.Is(err, lists.ErrListNotFound):
		exitErr = output.NewUserErrorWithCause("List not found", err)
	case errors.Is(err, lists.ErrPostNotFound):
		exitErr = output.NewUserErrorWithCause("Post not found", err)
	case errors.Is(err, lists.ErrMissingArgument):
		exitErr = output.NewUserErrorWithCause(missingStatusMessage, err)
	case errors.As(err, &writeErr):
		exitErr = output.NewSystemErrorWithCause(writeErr.Error(), err)
	default:
		exitErr = output.NewSystemErrorWithCause(err.Error(), err)
	}
	printer.Error(exitErr)
	return exitErr
}
