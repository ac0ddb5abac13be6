package entity

import (
	"errors"
	"fmt"
)

// ErrorKind categorises a failed annotation.
type ErrorKind string

const (
	ErrorKindDecode ErrorKind = "decode"
	ErrorKindParse  ErrorKind = "parse"
	ErrorKindWrite  ErrorKind = "write"
)

// AnnotateError is the tagged error returned by the annotation pipeline.
type AnnotateError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AnnotateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnnotateError) Unwrap() error {
	return e.Cause
}

// NewDecodeError reports an image that could not be read or decoded.
func NewDecodeError(path string, cause error) *AnnotateError {
	return &AnnotateError{
		Kind:    ErrorKindDecode,
		Message: fmt.Sprintf("failed to load image, check that the path is correct: %s", path),
		Cause:   cause,
	}
}

// NewParseError reports bbox text that matched the tag but not the int range.
func NewParseError(cause error) *AnnotateError {
	return &AnnotateError{
		Kind:    ErrorKindParse,
		Message: "failed to parse bbox coordinates",
		Cause:   cause,
	}
}

// NewWriteError reports a failed encode or write of the output image.
func NewWriteError(message string, cause error) *AnnotateError {
	return &AnnotateError{
		Kind:    ErrorKindWrite,
		Message: message,
		Cause:   cause,
	}
}

// IsKind reports whether err wraps an AnnotateError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var annErr *AnnotateError
	if errors.As(err, &annErr) {
		return annErr.Kind == kind
	}
	return false
}
