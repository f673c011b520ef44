// Package mcp provides a Model Context Protocol server for blog-tools.
// It exposes list operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/blogtools/internal/lists"
)

// NewServer creates an MCP server with all blog-tools tools registered.
// Templates are listed from templatesDir.
func NewServer(version string, store *lists.Store, templatesDir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "blog-tools",
		Version: version,
	}, nil)
	registerTools(server, store, templatesDir)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// destructiveAnnotations returns annotations for tools that delete data.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all blog-tools tools to the server.
func registerTools(server *mcp.Server, store *lists.Store, templatesDir string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lists",
		Description: "List every post list with its post count and how many posts are completed or in progress.",
		Annotations: readOnlyAnnotations(),
	}, handleLists(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_list",
		Description: "Show the posts of one list in stored order. completed and in_progress filter the posts; both together require both flags.",
		Annotations: readOnlyAnnotations(),
	}, handleShowList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "templates",
		Description: "List the post templates available to the generate command.",
		Annotations: readOnlyAnnotations(),
	}, handleTemplates(templatesDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_list",
		Description: "Create an empty list. Creating a list that already exists empties it.",
		Annotations: writeAnnotations(),
	}, handleCreateList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_post",
		Description: "Add a post idea to an existing list. Both status flags start false.",
		Annotations: writeAnnotations(),
	}, handleAddPost(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_post",
		Description: "Update a post: mark it completed or in progress, replace its tags, or set the path of its content. At least one field is required.",
		Annotations: writeAnnotations(),
	}, handleUpdatePost(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_list",
		Description: "Delete a list and all of its posts. Nothing is deleted unless confirm is true.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_post",
		Description: "Remove a post from a list. Nothing is removed unless confirm is true.",
		Annotations: destructiveAnnotations(),
	}, handleRemovePost(store))
}
