package prefstore

import "errors"

var (
	// ErrNotFound indicates no preference is stored for the subject
	ErrNotFound = errors.New("prefstore.not_found")

	// ErrEmptySubject indicates an empty subject key was given
	ErrEmptySubject = errors.New("prefstore.empty_subject")

	// ErrEmptyValue indicates an empty preference value was given
	ErrEmptyValue = errors.New("prefstore.empty_value")
)
