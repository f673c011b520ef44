package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/config"
	"github.com/gorewood/blogtools/internal/output"
	"github.com/gorewood/blogtools/internal/post"
)

// configView is the JSON form of the config command.
type configView struct {
	Paths    config.Paths    `json:"paths"`
	Settings config.Settings `json:"settings"`
}

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show where blog-tools keeps its files and the active settings",
		Long: `Show the configuration directory, the files in it and the settings
from config.yml.

Set BLOG_TOOLS_DIR (in the environment or a .env file) to use another
configuration directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd)
		},
	}

	cmd.AddCommand(newConfigTemplatesCmd())

	return cmd
}

func runConfig(cmd *cobra.Command) error {
	printer := output.ForCommand(cmd)
	paths := appFor(cmd).paths

	settings, err := config.LoadSettings(paths)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(configView{Paths: paths, Settings: settings})
	}

	printer.Heading("Files")
	printer.KeyValue("Directory", paths.Dir)
	printer.KeyValue("Lists", paths.ListsFile)
	printer.KeyValue("Config", paths.ConfigFile)
	printer.KeyValue("Templates", paths.TemplatesDir)
	printer.Println()
	printer.Heading("Settings")
	printer.KeyValue("Author", settings.Author)
	printer.KeyValue("Default template", settings.DefaultTemplate)
	printer.KeyValue("Tags", strings.Join(settings.Tags, ", "))
	return nil
}

// newConfigTemplatesCmd creates the config templates command.
func newConfigTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the templates available to generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigTemplates(cmd)
		},
	}
}

func runConfigTemplates(cmd *cobra.Command) error {
	printer := output.ForCommand(cmd)

	templates, err := post.ListTemplates(appFor(cmd).paths.TemplatesDir)
	if err != nil {
		exitErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"templates": templates})
	}

	rows := make([][]string, 0, len(templates))
	for _, tmpl := range templates {
		source := tmpl.Source
		if tmpl.Overrides {
			source += " (overrides built-in)"
		}
		rows = append(rows, []string{tmpl.Name, source, tmpl.Path})
	}
	printer.Table([]string{"NAME", "SOURCE", "PATH"}, rows)
	return nil
}
