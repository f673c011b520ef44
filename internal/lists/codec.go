package lists

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// postsKey is the only key of a list mapping.
const postsKey = "posts"

// Parse decodes a lists document. Empty documents and documents whose root
// is not a mapping decode to an empty collection. Mapping key order is kept.
//
// Only YAML syntax errors fail the parse. Values of the wrong shape, such as
// a scalar where a list's posts belong or "tags: [[a]]", are dropped and
// described in the returned problems so the rest of the document survives.
// A scalar tags value is read as a single tag.
func Parse(data []byte) (*Collection, []string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return NewCollection(), nil, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return NewCollection(), nil, nil
	}

	d := &decoder{}
	c := NewCollection()
	d.eachPair(root, "", func(name string, value *yaml.Node) {
		c.put(name, d.list(name, value))
	})
	return c, d.problems, nil
}

// Encode serialises the collection as YAML with two-space indentation.
func Encode(c *Collection) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.order {
		listNode, err := encodeList(c.lists[name])
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", name, err)
		}
		root.Content = append(root.Content, stringNode(name), listNode)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decoder collects the problems found while decoding a document.
type decoder struct {
	problems []string
}

func (d *decoder) problemf(node *yaml.Node, format string, args ...any) {
	d.problems = append(d.problems, fmt.Sprintf("line %d: ", node.Line)+fmt.Sprintf(format, args...))
}

func (d *decoder) list(name string, node *yaml.Node) *PostList {
	list := NewPostList()
	node = resolve(node)
	if isNull(node) {
		return list
	}
	if node.Kind != yaml.MappingNode {
		d.problemf(node, "list %q: want a mapping, got a %s", name, kindName(node))
		return list
	}

	var posts *yaml.Node
	d.eachPair(node, fmt.Sprintf("list %q: ", name), func(key string, value *yaml.Node) {
		if key == postsKey {
			posts = resolve(value)
		}
	})
	if posts == nil || isNull(posts) {
		return list
	}
	if posts.Kind != yaml.MappingNode {
		d.problemf(posts, "list %q: posts: want a mapping, got a %s", name, kindName(posts))
		return list
	}

	d.eachPair(posts, fmt.Sprintf("list %q: ", name), func(post string, value *yaml.Node) {
		list.Put(post, d.entry(fmt.Sprintf("list %q, post %q", name, post), value))
	})
	return list
}

// entry decodes one post field by field, keeping every field that has the
// right shape.
func (d *decoder) entry(where string, node *yaml.Node) Entry {
	var entry Entry
	node = resolve(node)
	if isNull(node) {
		return entry
	}
	if node.Kind != yaml.MappingNode {
		d.problemf(node, "%s: want a mapping, got a %s", where, kindName(node))
		return entry
	}

	d.eachPair(node, where+": ", func(key string, value *yaml.Node) {
		value = resolve(value)
		switch key {
		case "completed":
			entry.Completed = d.flag(where, key, value)
		case "in_progress":
			entry.InProgress = d.flag(where, key, value)
		case "tags":
			entry.Tags = d.tags(where, value)
		case "path":
			entry.Path = d.scalar(where, key, value)
		}
	})
	return entry
}

func (d *decoder) flag(where, key string, node *yaml.Node) bool {
	if isNull(node) {
		return false
	}
	var b bool
	if node.Kind != yaml.ScalarNode || node.Decode(&b) != nil {
		d.problemf(node, "%s: %s: want true or false, got %s", where, key, describe(node))
		return false
	}
	return b
}

func (d *decoder) scalar(where, key string, node *yaml.Node) string {
	if isNull(node) {
		return ""
	}
	if node.Kind != yaml.ScalarNode {
		d.problemf(node, "%s: %s: want a string, got a %s", where, key, kindName(node))
		return ""
	}
	return node.Value
}

func (d *decoder) tags(where string, node *yaml.Node) []string {
	switch {
	case isNull(node):
		return nil
	case node.Kind == yaml.ScalarNode:
		return []string{node.Value}
	case node.Kind != yaml.SequenceNode:
		d.problemf(node, "%s: tags: want a list, got a %s", where, kindName(node))
		return nil
	}

	tags := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolve(item)
		if item == nil || item.Kind != yaml.ScalarNode || isNull(item) {
			d.problemf(node, "%s: tags: skipped a %s", where, kindName(item))
			continue
		}
		tags = append(tags, item.Value)
	}
	return tags
}

// eachPair walks a mapping node's key/value pairs in order. Pairs whose key
// is not a scalar are skipped.
func (d *decoder) eachPair(node *yaml.Node, where string, fn func(key string, value *yaml.Node)) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			d.problemf(node.Content[i], "%skeys must be scalars", where)
			continue
		}
		fn(key.Value, node.Content[i+1])
	}
}

func kindName(node *yaml.Node) string {
	if node == nil {
		return "missing value"
	}
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		if isNull(node) {
			return "null"
		}
		return "scalar"
	default:
		return "value"
	}
}

// describe names a node for messages, quoting scalars.
func describe(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return fmt.Sprintf("%q", node.Value)
	}
	return "a " + kindName(node)
}

func encodeList(list *PostList) (*yaml.Node, error) {
	posts := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range list.order {
		var entryNode yaml.Node
		if err := entryNode.Encode(list.posts[name]); err != nil {
			return nil, fmt.Errorf("post %q: %w", name, err)
		}
		posts.Content = append(posts.Content, stringNode(name), &entryNode)
	}
	if len(posts.Content) == 0 {
		posts.Style = yaml.FlowStyle
	}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{stringNode(postsKey), posts},
	}, nil
}

// resolve follows aliases.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

// stringNode builds a key that always round-trips as a string, so names
// like "yes" or "42" are quoted.
func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
