package lists

import "slices"

// Status marks used in list views.
const (
	MarkCompleted  = "[✓]"
	MarkInProgress = "[~]"
	MarkPlanned    = "[ ]"
)

// Entry is one tracked post idea. Completed and InProgress are independent.
type Entry struct {
	Completed  bool     `json:"completed"      yaml:"completed"`
	InProgress bool     `json:"in_progress"    yaml:"in_progress"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Path       string   `json:"path,omitempty" yaml:"path,omitempty"`
}

// Mark returns the status glyph. Completed wins over in progress.
func (e Entry) Mark() string {
	switch {
	case e.Completed:
		return MarkCompleted
	case e.InProgress:
		return MarkInProgress
	default:
		return MarkPlanned
	}
}

func (e Entry) clone() Entry {
	e.Tags = slices.Clone(e.Tags)
	return e
}

// Item is a named entry in list order.
type Item struct {
	Name  string `json:"name"`
	Entry `yaml:",inline"`
}

// Filter selects entries for display. Set fields are combined with AND;
// the zero Filter matches everything.
type Filter struct {
	Completed  bool
	InProgress bool
}

// Match reports whether the entry satisfies every set filter.
func (f Filter) Match(e Entry) bool {
	if f.Completed && !e.Completed {
		return false
	}
	if f.InProgress && !e.InProgress {
		return false
	}
	return true
}
