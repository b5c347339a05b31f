// internal/models/errors.go
package models

import "fmt"

// NotFoundError signals that a Reddit resource is absent or private.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reddit resource not found: %s", e.Path)
}

// FetchError signals an HTTP-level failure: transport error, timeout or a
// non-2xx status other than 404/403. Status is 0 when no response was received.
type FetchError struct {
	Path   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError signals an unexpected JSON shape. At item level the item is
// skipped; at envelope level the whole call fails with this error.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse reddit response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
