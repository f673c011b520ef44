package lists

// PostList is an insertion-ordered set of named entries.
type PostList struct {
	order []string
	posts map[string]*Entry
}

// NewPostList returns an empty list.
func NewPostList() *PostList {
	return &PostList{posts: make(map[string]*Entry)}
}

// Len returns the number of entries.
func (l *PostList) Len() int { return len(l.order) }

// Get returns a copy of the named entry.
func (l *PostList) Get(name string) (Entry, bool) {
	entry, ok := l.posts[name]
	if !ok {
		return Entry{}, false
	}
	return entry.clone(), true
}

// Has reports whether the list holds the named post.
func (l *PostList) Has(name string) bool {
	_, ok := l.posts[name]
	return ok
}

// Put inserts or replaces an entry. A replaced entry keeps its position.
func (l *PostList) Put(name string, entry Entry) {
	if _, ok := l.posts[name]; !ok {
		l.order = append(l.order, name)
	}
	e := entry.clone()
	l.posts[name] = &e
}

// Remove deletes the named entry and reports whether it existed.
func (l *PostList) Remove(name string) bool {
	if _, ok := l.posts[name]; !ok {
		return false
	}
	delete(l.posts, name)
	l.order = removeName(l.order, name)
	return true
}

// Items returns the entries in stored order, filtered.
func (l *PostList) Items(filter Filter) []Item {
	items := make([]Item, 0, len(l.order))
	for _, name := range l.order {
		entry := l.posts[name]
		if !filter.Match(*entry) {
			continue
		}
		items = append(items, Item{Name: name, Entry: entry.clone()})
	}
	return items
}

// Collection is the insertion-ordered set of all lists.
type Collection struct {
	order []string
	lists map[string]*PostList
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{lists: make(map[string]*PostList)}
}

// Len returns the number of lists.
func (c *Collection) Len() int { return len(c.order) }

// Names returns list names in stored order.
func (c *Collection) Names() []string {
	return append([]string(nil), c.order...)
}

// List returns the named list. The returned list is live: changes to it
// change the collection.
func (c *Collection) List(name string) (*PostList, bool) {
	list, ok := c.lists[name]
	return list, ok
}

// Create sets name to an empty list, discarding the posts of any existing
// list with that name. An existing list keeps its position.
func (c *Collection) Create(name string) *PostList {
	c.put(name, NewPostList())
	return c.lists[name]
}

// Delete removes the named list and reports whether it existed.
func (c *Collection) Delete(name string) bool {
	if _, ok := c.lists[name]; !ok {
		return false
	}
	delete(c.lists, name)
	c.order = removeName(c.order, name)
	return true
}

func (c *Collection) put(name string, list *PostList) {
	if _, ok := c.lists[name]; !ok {
		c.order = append(c.order, name)
	}
	c.lists[name] = list
}

func removeName(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			return append(names[:i:i], names[i+1:]...)
		}
	}
	return names
}
