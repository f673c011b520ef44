package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/blogtools/internal/confirm"
	"github.com/gorewood/blogtools/internal/lists"
)

// MessageOutput is the output of tools that report a single outcome.
type MessageOutput struct {
	Message string `json:"message" jsonschema:"what happened"`
}

// --- Create list tool ---

// CreateListInput is the input for the create_list tool.
type CreateListInput struct {
	Name string `json:"name" jsonschema:"list name (required)"`
}

func handleCreateList(store *lists.Store) mcp.ToolHandlerFor[CreateListInput, MessageOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CreateListInput) (*mcp.CallToolResult, MessageOutput, error) {
		if input.Name == "" {
			return nil, MessageOutput{}, lists.ErrMissingArgument
		}
		if err := readService(store).CreateList(input.Name); err != nil {
			return nil, MessageOutput{}, err
		}
		return nil, MessageOutput{Message: "Created list: " + input.Name}, nil
	}
}

// --- Add post tool ---

// AddPostInput is the input for the add_post tool.
type AddPostInput struct {
	List string `json:"list" jsonschema:"list name (required)"`
	Post string `json:"post" jsonschema:"post name (required)"`
}

func handleAddPost(store *lists.Store) mcp.ToolHandlerFor[AddPostInput, MessageOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddPostInput) (*mcp.CallToolResult, MessageOutput, error) {
		if input.List == "" || input.Post == "" {
			return nil, MessageOutput{}, lists.ErrMissingArgument
		}
		if err := readService(store).AddPost(input.List, input.Post); err != nil {
			return nil, MessageOutput{}, err
		}
		return nil, MessageOutput{Message: fmt.Sprintf("Added %s to %s list", input.Post, input.List)}, nil
	}
}

// --- Update post tool ---

// UpdatePostInput is the input for the update_post tool.
type UpdatePostInput struct {
	List       string   `json:"list"                  jsonschema:"list name (required)"`
	Post       string   `json:"post"                  jsonschema:"post name (required)"`
	Completed  bool     `json:"completed,omitempty"   jsonschema:"mark the post as completed"`
	InProgress bool     `json:"in_progress,omitempty" jsonschema:"mark the post as in progress"`
	Tags       []string `json:"tags,omitempty"        jsonschema:"replace the post tags"`
	Path       *string  `json:"path,omitempty"        jsonschema:"set where the post content is located"`
}

// Notice is one line of an update report.
type Notice struct {
	Level   string `json:"level"   jsonschema:"success, warning or info"`
	Message string `json:"message" jsonschema:"notice text"`
}

// UpdatePostOutput is the output for the update_post tool.
type UpdatePostOutput struct {
	Notices []Notice `json:"notices" jsonschema:"what changed, in order"`
}

func handleUpdatePost(store *lists.Store) mcp.ToolHandlerFor[UpdatePostInput, UpdatePostOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input UpdatePostInput) (*mcp.CallToolResult, UpdatePostOutput, error) {
		notices, err := readService(store).UpdatePost(input.List, input.Post, lists.Update{
			Completed:  input.Completed,
			InProgress: input.InProgress,
			Tags:       input.Tags,
			Path:       input.Path,
		})
		if err != nil {
			return nil, UpdatePostOutput{}, err
		}

		out := UpdatePostOutput{Notices: make([]Notice, 0, len(notices))}
		for _, notice := range notices {
			out.Notices = append(out.Notices, Notice{Level: notice.Level.String(), Message: notice.Message})
		}
		return nil, out, nil
	}
}

// --- Destructive tools ---

// DeleteOutput is the output of delete_list and remove_post.
type DeleteOutput struct {
	Deleted bool   `json:"deleted" jsonschema:"whether anything was deleted"`
	Message string `json:"message" jsonschema:"what happened"`
}

// DeleteListInput is the input for the delete_list tool.
type DeleteListInput struct {
	List    string `json:"list"    jsonschema:"list name (required)"`
	Confirm bool   `json:"confirm" jsonschema:"must be true to delete; the deletion cannot be undone"`
}

func handleDeleteList(store *lists.Store) mcp.ToolHandlerFor[DeleteListInput, DeleteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DeleteListInput) (*mcp.CallToolResult, DeleteOutput, error) {
		outcome, err := lists.NewService(store, confirmerFor(input.Confirm)).DeleteList(input.List)
		if err != nil {
			return nil, DeleteOutput{}, err
		}
		return nil, deleteOutput(outcome, fmt.Sprintf("Deleted '%s' list", input.List)), nil
	}
}

// RemovePostInput is the input for the remove_post tool.
type RemovePostInput struct {
	List    string `json:"list"    jsonschema:"list name (required)"`
	Post    string `json:"post"    jsonschema:"post name (required)"`
	Confirm bool   `json:"confirm" jsonschema:"must be true to remove; the removal cannot be undone"`
}

func handleRemovePost(store *lists.Store) mcp.ToolHandlerFor[RemovePostInput, DeleteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RemovePostInput) (*mcp.CallToolResult, DeleteOutput, error) {
		outcome, err := lists.NewService(store, confirmerFor(input.Confirm)).RemovePost(input.List, input.Post)
		if err != nil {
			return nil, DeleteOutput{}, err
		}
		return nil, deleteOutput(outcome, fmt.Sprintf("Deleted '%s' post", input.Post)), nil
	}
}

// confirmerFor turns the confirm argument into a fixed answer.
func confirmerFor(confirmed bool) confirm.Confirmer {
	if confirmed {
		return confirm.Fixed(confirm.Affirmed)
	}
	return confirm.Fixed(confirm.Declined)
}

func deleteOutput(outcome confirm.Outcome, deleted string) DeleteOutput {
	if outcome == confirm.Affirmed {
		return DeleteOutput{Deleted: true, Message: deleted}
	}
	return DeleteOutput{Message: "Cancelled deletion. Pass confirm=true to delete."}
}
