package config

import "fmt"

// Error is the error type produced while loading a configuration. It
// carries the section and key the failure points at, the human-readable
// message, and optionally the underlying parse error.
type Error struct {
	Section string
	Key     string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s - %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, or nil.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Location returns the setting the error points at as "section.key".
// Section-level errors return just the section name.
func (e *Error) Location() string {
	switch {
	case e.Section != "" && e.Key != "":
		return e.Section + "." + e.Key
	case e.Section != "":
		return e.Section
	default:
		return e.Key
	}
}

// newError creates an error with a message and no locator.
func newError(message string) *Error {
	return &Error{Message: message}
}

// errAt creates an error pointing at a section/key.
func errAt(section, key, message string) *Error {
	return &Error{Section: section, Key: key, Message: message}
}

// wrapAt creates an error pointing at a section/key with an underlying
// cause attached.
func wrapAt(section, key, message string, cause error) *Error {
	return &Error{Section: section, Key: key, Message: message, Cause: cause}
}
