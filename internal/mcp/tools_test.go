package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/blogtools/internal/lists"
	"github.com/gorewood/blogtools/internal/post"
)

// --- Test helpers ---

// makeTestStore returns a store holding an "ideas" list with one completed,
// one in-progress and one planned post.
func makeTestStore(t *testing.T) *lists.Store {
	t.Helper()
	store := lists.NewStore(filepath.Join(t.TempDir(), "lists.yml"))
	c := lists.NewCollection()
	ideas := c.Create("ideas")
	ideas.Put("done", lists.Entry{Completed: true, Tags: []string{"go"}})
	ideas.Put("wip", lists.Entry{InProgress: true})
	ideas.Put("planned", lists.Entry{})
	c.Create("drafts")
	if err := store.Save(c); err != nil {
		t.Fatalf("writing test lists: %v", err)
	}
	return store
}

func postNames(t *testing.T, store *lists.Store, list string) []string {
	t.Helper()
	c, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	l, ok := c.List(list)
	if !ok {
		return nil
	}
	var names []string
	for _, item := range l.Items(lists.Filter{}) {
		names = append(names, item.Name)
	}
	return names
}

func hasList(t *testing.T, store *lists.Store, list string) bool {
	t.Helper()
	c, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	_, ok := c.List(list)
	return ok
}

// --- Read tools ---

func TestHandleLists(t *testing.T) {
	handler := handleLists(makeTestStore(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ListsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []lists.Summary{
		{Name: "ideas", Posts: 3, Completed: 1, InProgress: 1},
		{Name: "drafts"},
	}
	if diff := cmp.Diff(want, out.Lists); diff != "" {
		t.Errorf("Lists mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleShowList(t *testing.T) {
	store := makeTestStore(t)
	handler := handleShowList(store)

	tests := []struct {
		name  string
		input ShowListInput
		want  []string
	}{
		{"all", ShowListInput{List: "ideas"}, []string{"done", "wip", "planned"}},
		{"completed", ShowListInput{List: "ideas", Completed: true}, []string{"done"}},
		{"in progress", ShowListInput{List: "ideas", InProgress: true}, []string{"wip"}},
		{"both", ShowListInput{List: "ideas", Completed: true, InProgress: true}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make([]string, 0, len(out.Posts))
			for _, p := range out.Posts {
				got = append(got, p.Name)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("posts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandleShowList_Entry(t *testing.T) {
	handler := handleShowList(makeTestStore(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ShowListInput{List: "ideas", Completed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []PostEntry{{Name: "done", Status: "[✓]", Completed: true, Tags: []string{"go"}}}
	if diff := cmp.Diff(want, out.Posts); diff != "" {
		t.Errorf("posts mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleShowList_NotFound(t *testing.T) {
	handler := handleShowList(makeTestStore(t))

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ShowListInput{List: "missing"})
	if !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("error = %v, want ErrListNotFound", err)
	}
}

func TestHandleTemplates(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "note.md"), []byte("{{title}}"), 0o600); err != nil {
		t.Fatal(err)
	}
	handler := handleTemplates(dir)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, TemplatesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []post.TemplateInfo{
		{Name: "note", Source: post.SourceUser, Path: filepath.Join(dir, "note.md")},
		{Name: "post", Source: post.SourceBuiltin},
	}
	if diff := cmp.Diff(want, out.Templates); diff != "" {
		t.Errorf("Templates mismatch (-want +got):\n%s", diff)
	}
}

// --- Write tools ---

func TestHandleCreateList(t *testing.T) {
	store := makeTestStore(t)
	handler := handleCreateList(store)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateListInput{Name: "ideas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Created list: ideas" {
		t.Errorf("Message = %q", out.Message)
	}
	if names := postNames(t, store, "ideas"); len(names) != 0 {
		t.Errorf("re-created list still has posts %v", names)
	}

	if _, _, err := handler(context.Background(), &mcp.CallToolRequest{}, CreateListInput{}); !errors.Is(err, lists.ErrMissingArgument) {
		t.Errorf("empty name: error = %v, want ErrMissingArgument", err)
	}
}

func TestHandleAddPost(t *testing.T) {
	store := makeTestStore(t)
	handler := handleAddPost(store)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, AddPostInput{List: "drafts", Post: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Added new to drafts list" {
		t.Errorf("Message = %q", out.Message)
	}
	if diff := cmp.Diff([]string{"new"}, postNames(t, store, "drafts")); diff != "" {
		t.Errorf("drafts mismatch (-want +got):\n%s", diff)
	}

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, AddPostInput{List: "missing", Post: "x"})
	if !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("missing list: error = %v, want ErrListNotFound", err)
	}
}

func TestHandleUpdatePost(t *testing.T) {
	store := makeTestStore(t)
	handler := handleUpdatePost(store)
	path := "content/planned.md"

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, UpdatePostInput{
		List: "ideas", Post: "done", Completed: true, Path: &path,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Notice{
		{Level: "warning", Message: "Post already marked as complete"},
		{Level: "info", Message: "The post content is located at: content/planned.md"},
	}
	if diff := cmp.Diff(want, out.Notices); diff != "" {
		t.Errorf("Notices mismatch (-want +got):\n%s", diff)
	}

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, UpdatePostInput{List: "ideas", Post: "done"})
	if !errors.Is(err, lists.ErrMissingArgument) {
		t.Errorf("no fields: error = %v, want ErrMissingArgument", err)
	}
}

// --- Destructive tools ---

func TestHandleDeleteList(t *testing.T) {
	tests := []struct {
		name        string
		confirm     bool
		wantDeleted bool
		wantMessage string
	}{
		{"confirmed", true, true, "Deleted 'ideas' list"},
		{"not confirmed", false, false, "Cancelled deletion. Pass confirm=true to delete."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := makeTestStore(t)
			handler := handleDeleteList(store)

			_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, DeleteListInput{List: "ideas", Confirm: tt.confirm})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(DeleteOutput{Deleted: tt.wantDeleted, Message: tt.wantMessage}, out); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if hasList(t, store, "ideas") == tt.wantDeleted {
				t.Errorf("list present = %v after deleted = %v", !tt.wantDeleted, tt.wantDeleted)
			}
		})
	}
}

func TestHandleRemovePost(t *testing.T) {
	store := makeTestStore(t)
	handler := handleRemovePost(store)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, RemovePostInput{List: "ideas", Post: "wip"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Deleted {
		t.Error("removed without confirm")
	}

	_, out, err = handler(context.Background(), &mcp.CallToolRequest{}, RemovePostInput{List: "ideas", Post: "wip", Confirm: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Deleted || out.Message != "Deleted 'wip' post" {
		t.Errorf("output = %+v", out)
	}
	if diff := cmp.Diff([]string{"done", "planned"}, postNames(t, store, "ideas")); diff != "" {
		t.Errorf("posts mismatch (-want +got):\n%s", diff)
	}

	_, _, err = handler(context.Background(), &mcp.CallToolRequest{}, RemovePostInput{List: "ideas", Post: "wip", Confirm: true})
	if !errors.Is(err, lists.ErrPostNotFound) {
		t.Errorf("second remove: error = %v, want ErrPostNotFound", err)
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("test", makeTestStore(t), t.TempDir())
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
}
