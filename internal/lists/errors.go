package lists

import (
	"errors"
	"fmt"
)

// Domain errors returned by Service. They never leave the store modified.
var (
	ErrListNotFound    = errors.New("list not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrMissingArgument = errors.New("no update fields supplied")
)

// ParseError reports a lists file that is not valid YAML. Load recovers
// from it by returning an empty collection.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failed Save. The previous file content may or may
// not have been replaced.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
