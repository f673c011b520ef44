package lists

import (
	"fmt"
	"strings"

	"github.com/gorewood/blogtools/internal/confirm"
)

// Level classifies a Notice.
type Level int

// Notice levels.
const (
	LevelSuccess Level = iota
	LevelWarning
	LevelInfo
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	default:
		return "success"
	}
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Notice is one user-facing line produced by UpdatePost.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Update carries the fields to change on a post. Only set fields apply:
// Completed and InProgress only ever set a flag to true, Tags replaces the
// tags when non-nil, Path replaces the path when non-nil.
type Update struct {
	Completed  bool
	InProgress bool
	Tags       []string
	Path       *string
}

// IsEmpty reports whether no field is set.
func (u Update) IsEmpty() bool {
	return !u.Completed && !u.InProgress && u.Tags == nil && u.Path == nil
}

// Summary describes one list for overviews.
type Summary struct {
	Name       string `json:"name"`
	Posts      int    `json:"posts"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
}

// Service runs list commands against a Store. Each call loads the whole
// collection, changes it in memory and saves it back when it changed.
type Service struct {
	store     *Store
	confirmer confirm.Confirmer
}

// NewService creates a Service. The confirmer guards DeleteList and RemovePost.
func NewService(store *Store, confirmer confirm.Confirmer) *Service {
	return &Service{store: store, confirmer: confirmer}
}

// CreateList creates an empty list. An existing list of the same name is
// reset and its posts are discarded.
func (s *Service) CreateList(name string) error {
	c, err := s.store.Load()
	if err != nil {
		return err
	}
	c.Create(name)
	return s.store.Save(c)
}

// AddPost adds a post with both flags false, replacing any post of the same name.
func (s *Service) AddPost(list, post string) error {
	c, err := s.store.Load()
	if err != nil {
		return err
	}
	l, err := findList(c, list)
	if err != nil {
		return err
	}
	l.Put(post, Entry{})
	return s.store.Save(c)
}

// ShowList returns the list's entries matching filter, in stored order.
func (s *Service) ShowList(list string, filter Filter) ([]Item, error) {
	c, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	l, err := findList(c, list)
	if err != nil {
		return nil, err
	}
	return l.Items(filter), nil
}

// Lists summarises every list in stored order.
func (s *Service) Lists() ([]Summary, error) {
	c, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, c.Len())
	for _, name := range c.Names() {
		l, _ := c.List(name)
		summary := Summary{Name: name, Posts: l.Len()}
		for _, item := range l.Items(Filter{}) {
			if item.Completed {
				summary.Completed++
			}
			if item.InProgress {
				summary.InProgress++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// DeleteList removes a list after confirmation. The store is only written
// when the outcome is Affirmed.
func (s *Service) DeleteList(list string) (confirm.Outcome, error) {
	c, err := s.store.Load()
	if err != nil {
		return confirm.Declined, err
	}
	if _, err := findList(c, list); err != nil {
		return confirm.Declined, err
	}

	outcome, err := s.confirmer.Confirm(fmt.Sprintf("Are you sure you want to delete the '%s' list?", list))
	if err != nil || outcome != confirm.Affirmed {
		return outcome, err
	}

	c.Delete(list)
	return confirm.Affirmed, s.store.Save(c)
}

// RemovePost removes a post from a list after confirmation. The store is
// only written when the outcome is Affirmed.
func (s *Service) RemovePost(list, post string) (confirm.Outcome, error) {
	c, err := s.store.Load()
	if err != nil {
		return confirm.Declined, err
	}
	l, err := findList(c, list)
	if err != nil {
		return confirm.Declined, err
	}
	if !l.Has(post) {
		return confirm.Declined, fmt.Errorf("%w: %q in list %q", ErrPostNotFound, post, list)
	}

	outcome, err := s.confirmer.Confirm(fmt.Sprintf("Are you sure you want to delete the post '%s'?", post))
	if err != nil || outcome != confirm.Affirmed {
		return outcome, err
	}

	l.Remove(post)
	return confirm.Affirmed, s.store.Save(c)
}

// UpdatePost applies u to an existing post and returns what changed.
// Marking a flag that is already set is reported as a warning notice, not
// an error. The store is not read when u is empty.
func (s *Service) UpdatePost(list, post string, u Update) ([]Notice, error) {
	if u.IsEmpty() {
		return nil, ErrMissingArgument
	}

	c, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	l, err := findList(c, list)
	if err != nil {
		return nil, err
	}
	entry, ok := l.Get(post)
	if !ok {
		return nil, fmt.Errorf("%w: %q in list %q", ErrPostNotFound, post, list)
	}

	notices := applyUpdate(&entry, post, u)
	l.Put(post, entry)
	if err := s.store.Save(c); err != nil {
		return nil, err
	}
	return notices, nil
}

func applyUpdate(entry *Entry, post string, u Update) []Notice {
	var notices []Notice

	if u.Completed {
		if entry.Completed {
			notices = append(notices, Notice{LevelWarning, "Post already marked as complete"})
		} else {
			entry.Completed = true
			notices = append(notices, Notice{LevelSuccess, fmt.Sprintf("Marked '%s' as complete", post)})
		}
	}

	if u.InProgress {
		if entry.InProgress {
			notices = append(notices, Notice{LevelWarning, "Post already marked as in progress"})
		} else {
			entry.InProgress = true
			notices = append(notices, Notice{LevelSuccess, fmt.Sprintf("Marked '%s' as in progress", post)})
		}
	}

	if u.Tags != nil {
		entry.Tags = append([]string{}, u.Tags...)
		notices = append(notices, Notice{LevelInfo,
			"Added the following tags to the post: " + strings.Join(u.Tags, ", ")})
	}

	if u.Path != nil {
		entry.Path = *u.Path
		notices = append(notices, Notice{LevelInfo, "The post content is located at: " + *u.Path})
	}

	return notices
}

func findList(c *Collection, name string) (*PostList, error) {
	l, ok := c.List(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrListNotFound, name)
	}
	return l, nil
}
