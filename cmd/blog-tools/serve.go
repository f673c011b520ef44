package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/blogtools/internal/lists"
	blogmcp "github.com/gorewood/blogtools/internal/mcp"
	"github.com/gorewood/blogtools/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run blog-tools as a Model Context Protocol (MCP) server over stdio.

This exposes the list operations as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "blog-tools": {
        "command": "blog-tools",
        "args": ["serve"]
      }
    }
  }

Available tools: lists, show_list, templates, create_list, add_post,
update_post, delete_list, remove_post. delete_list and remove_post only
delete when called with confirm=true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFor(cmd)
			// stdout carries the protocol; load warnings go to stderr
			warnings := output.NewPrinter(cmd.ErrOrStderr(), false, false)
			opts := append([]lists.StoreOption{lists.WithWarnFunc(warnings.Warn)}, a.storeOpts...)
			store := lists.NewStore(a.paths.ListsFile, opts...)
			server := blogmcp.NewServer(buildVersion(), store, a.paths.TemplatesDir)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
