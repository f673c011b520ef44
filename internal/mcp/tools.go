package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/blogtools/internal/confirm"
	"github.com/gorewood/blogtools/internal/lists"
	"github.com/gorewood/blogtools/internal/post"
)

// --- Shared types ---

// PostEntry is one post of a list.
type PostEntry struct {
	Name       string   `json:"name"           jsonschema:"post name"`
	Status     string   `json:"status"         jsonschema:"status mark: [✓] completed, [~] in progress, [ ] planned"`
	Completed  bool     `json:"completed"      jsonschema:"whether the post is completed"`
	InProgress bool     `json:"in_progress"    jsonschema:"whether the post is in progress"`
	Tags       []string `json:"tags,omitempty" jsonschema:"post tags"`
	Path       string   `json:"path,omitempty" jsonschema:"location of the post content"`
}

func toPostEntries(items []lists.Item) []PostEntry {
	result := make([]PostEntry, 0, len(items))
	for _, item := range items {
		result = append(result, PostEntry{
			Name:       item.Name,
			Status:     item.Mark(),
			Completed:  item.Completed,
			InProgress: item.InProgress,
			Tags:       item.Tags,
			Path:       item.Path,
		})
	}
	return result
}

// readService returns a service for operations that never prompt.
func readService(store *lists.Store) *lists.Service {
	return lists.NewService(store, confirm.Fixed(confirm.Declined))
}

// --- Lists tool ---

// ListsInput is the input for the lists tool (no parameters needed).
type ListsInput struct{}

// ListsOutput is the output for the lists tool.
type ListsOutput struct {
	Lists []lists.Summary `json:"lists" jsonschema:"all lists in stored order"`
}

func handleLists(store *lists.Store) mcp.ToolHandlerFor[ListsInput, ListsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListsInput) (*mcp.CallToolResult, ListsOutput, error) {
		summaries, err := readService(store).Lists()
		if err != nil {
			return nil, ListsOutput{}, fmt.Errorf("loading lists: %w", err)
		}
		return nil, ListsOutput{Lists: summaries}, nil
	}
}

// --- Show list tool ---

// ShowListInput is the input for the show_list tool.
type ShowListInput struct {
	List       string `json:"list"                  jsonschema:"list name (required)"`
	Completed  bool   `json:"completed,omitempty"   jsonschema:"only completed posts"`
	InProgress bool   `json:"in_progress,omitempty" jsonschema:"only posts in progress"`
}

// ShowListOutput is the output for the show_list tool.
type ShowListOutput struct {
	List  string      `json:"list"  jsonschema:"list name"`
	Posts []PostEntry `json:"posts" jsonschema:"matching posts in stored order"`
}

func handleShowList(store *lists.Store) mcp.ToolHandlerFor[ShowListInput, ShowListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowListInput) (*mcp.CallToolResult, ShowListOutput, error) {
		items, err := readService(store).ShowList(input.List, lists.Filter{
			Completed:  input.Completed,
			InProgress: input.InProgress,
		})
		if err != nil {
			return nil, ShowListOutput{}, err
		}
		return nil, ShowListOutput{List: input.List, Posts: toPostEntries(items)}, nil
	}
}

// --- Templates tool ---

// TemplatesInput is the input for the templates tool (no parameters needed).
type TemplatesInput struct{}

// TemplatesOutput is the output for the templates tool.
type TemplatesOutput struct {
	Templates []post.TemplateInfo `json:"templates" jsonschema:"user templates first, then built-ins they do not override"`
}

func handleTemplates(dir string) mcp.ToolHandlerFor[TemplatesInput, TemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TemplatesInput) (*mcp.CallToolResult, TemplatesOutput, error) {
		templates, err := post.ListTemplates(dir)
		if err != nil {
			return nil, TemplatesOutput{}, fmt.Errorf("listing templates: %w", err)
		}
		return nil, TemplatesOutput{Templates: templates}, nil
	}
}
