package fixture

import (
	"fmt"
	"strings"
)

// FileError locates a problem in a fixture file.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// DeclError locates an error at a declaration path inside a fixture.
type DeclError struct {
	Path string
	Err  error
}

func (e DeclError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e DeclError) Unwrap() error {
	return e.Err
}

// ErrorSet collects every problem found while building a fixture so that one
// load reports all of them.
type ErrorSet struct {
	Errs []error
}

func (s *ErrorSet) Add(err error) {
	if err == nil {
		return
	}

	if nested, ok := err.(*ErrorSet); ok {
		s.Errs = append(s.Errs, nested.Errs...)
		return
	}

	s.Errs = append(s.Errs, err)
}

// AddAt records err against the declaration or call site at path.
func (s *ErrorSet) AddAt(path string, err error) {
	if err == nil {
		return
	}

	s.Add(DeclError{Path: path, Err: err})
}

func (s *ErrorSet) Error() string {
	if len(s.Errs) == 1 {
		return s.Errs[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(s.Errs))
	for _, err := range s.Errs {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}

	return b.String()
}

func (s *ErrorSet) Unwrap() []error {
	return s.Errs
}

// Err returns the set, or nil when nothing was collected.
func (s *ErrorSet) Err() error {
	if len(s.Errs) == 0 {
		return nil
	}

	return s
}
