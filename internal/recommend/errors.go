package recommend

import (
	"errors"
	"fmt"
)

// ErrTextRequired is returned when the query text is empty after trimming
var ErrTextRequired = &ValidationError{Message: "Text is required."}

// ValidationError is a caller mistake; no upstream call was made
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError is a non-success status from the collaborator
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Upstream %d: %s", e.StatusCode, e.Body)
}

// MalformedReplyError means the reply held no usable {"books": [...]} object.
// Raw is the cleaned reply text.
type MalformedReplyError struct {
	Raw string
}

func (e *MalformedReplyError) Error() string {
	return "Model did not return valid JSON"
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
