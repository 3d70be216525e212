package snapshots

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned when a load is attempted without a path.
var ErrEmptyPath = errors.New("snapshot path required")

// ErrNoHeader is returned for a file without a header row.
var ErrNoHeader = errors.New("snapshot has no header row")

// ParseError reports a cell that could not be converted.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %s: cannot parse %q: %v", e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
