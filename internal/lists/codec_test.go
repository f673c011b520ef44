package lists

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// snapshot flattens a collection into comparable values.
func snapshot(c *Collection) map[string][]Item {
	out := make(map[string][]Item, c.Len())
	for _, name := range c.Names() {
		l, _ := c.List(name)
		out[name] = l.Items(Filter{})
	}
	return out
}

func TestEncode_Format(t *testing.T) {
	c := NewCollection()
	ideas := c.Create("ideas")
	ideas.Put("post1", Entry{Completed: true, Tags: []string{"go", "cli"}, Path: "posts/post1.md"})
	ideas.Put("post2", Entry{})
	c.Create("empty")

	data, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `ideas:
  posts:
    post1:
      completed: true
      in_progress: false
      tags:
        - go
        - cli
      path: posts/post1.md
    post2:
      completed: false
      in_progress: false
empty:
  posts: {}
`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(NewCollection())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("Encode(empty) = %q, want %q", data, "{}\n")
	}
}

func TestParse_KeepsOrder(t *testing.T) {
	data := []byte(`zeta:
  posts:
    b-post: {completed: false, in_progress: true}
    a-post: {completed: true, in_progress: false, tags: [x]}
alpha:
  posts: {}
`)
	c, problems, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("Parse() problems = %q, want none", problems)
	}

	if diff := cmp.Diff([]string{"zeta", "alpha"}, c.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	zeta, _ := c.List("zeta")
	want := []Item{
		{Name: "b-post", Entry: Entry{InProgress: true}},
		{Name: "a-post", Entry: Entry{Completed: true, Tags: []string{"x"}}},
	}
	if diff := cmp.Diff(want, zeta.Items(Filter{})); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NonMappingIsEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n", "just a string", "- a\n- b\n", "42", "~"} {
		t.Run(input, func(t *testing.T) {
			c, _, err := Parse([]byte(input))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			if c.Len() != 0 {
				t.Errorf("Parse(%q) has %d lists, want 0", input, c.Len())
			}
		})
	}
}

func TestParse_Lenient(t *testing.T) {
	data := []byte(`nulled:
bare:
  posts:
defaults:
  posts:
    idea:
anchored:
  posts:
    one: &base {completed: true, in_progress: false}
    two: *base
`)
	c, problems, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("Parse() problems = %q, want none", problems)
	}

	got := snapshot(c)
	want := map[string][]Item{
		"nulled":   {},
		"bare":     {},
		"defaults": {{Name: "idea"}},
		"anchored": {
			{Name: "one", Entry: Entry{Completed: true}},
			{Name: "two", Entry: Entry{Completed: true}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	if _, _, err := Parse([]byte("ideas: [unclosed\n")); err == nil {
		t.Error("Parse() error = nil, want a syntax error")
	}
}

func TestParse_DropsInvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         map[string][]Item
		wantProblems []string
	}{
		{
			name: "scalar tags become one tag",
			input: `ideas:
  posts:
    a: {completed: true}
    b: {completed: false, in_progress: true, tags: go}
other:
  posts:
    keep: {}
`,
			want: map[string][]Item{
				"ideas": {
					{Name: "a", Entry: Entry{Completed: true}},
					{Name: "b", Entry: Entry{InProgress: true, Tags: []string{"go"}}},
				},
				"other": {{Name: "keep"}},
			},
		},
		{
			name: "bad flag keeps the rest of the entry",
			input: `ideas:
  posts:
    p:
      completed: [1, 2]
      in_progress: maybe
      tags: [go, [nested], cli]
      path: posts/p.md
`,
			want: map[string][]Item{
				"ideas": {{Name: "p", Entry: Entry{Tags: []string{"go", "cli"}, Path: "posts/p.md"}}},
			},
			wantProblems: []string{
				`line 4: list "ideas", post "p": completed: want true or false, got a list`,
				`line 5: list "ideas", post "p": in_progress: want true or false, got "maybe"`,
				`line 6: list "ideas", post "p": tags: skipped a list`,
			},
		},
		{
			name: "list of the wrong shape loads empty",
			input: `ideas:
  - a
  - b
drafts:
  posts: nope
other:
  posts:
    keep:
`,
			want: map[string][]Item{
				"ideas":  {},
				"drafts": {},
				"other":  {{Name: "keep"}},
			},
			wantProblems: []string{
				`line 2: list "ideas": want a mapping, got a list`,
				`line 5: list "drafts": posts: want a mapping, got a scalar`,
			},
		},
		{
			name: "entry of the wrong shape keeps its name",
			input: `ideas:
  posts:
    p: true
    q: {path: [a]}
`,
			want: map[string][]Item{
				"ideas": {{Name: "p"}, {Name: "q"}},
			},
			wantProblems: []string{
				`line 3: list "ideas", post "p": want a mapping, got a scalar`,
				`line 4: list "ideas", post "q": path: want a string, got a list`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, problems, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, snapshot(c), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantProblems, problems, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("problems mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	c := NewCollection()
	ideas := c.Create("ideas")
	ideas.Put("post1", Entry{Completed: true})
	ideas.Put("post2", Entry{InProgress: true, Tags: []string{"a", "b"}})
	ideas.Put("yes", Entry{Path: "~/posts/yes.md"})
	numbers := c.Create("2024")
	numbers.Put("42", Entry{Tags: []string{}})
	c.Create("true")

	data, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, _, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v\n%s", err, data)
	}

	if diff := cmp.Diff(c.Names(), back.Names()); diff != "" {
		t.Errorf("list order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot(c), snapshot(back), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
