package feedback

import "errors"

var (
	// ErrFeedbackNotFound indicates the feedback record doesn't exist.
	ErrFeedbackNotFound = errors.New("feedback not found")
	// ErrClientNotFound indicates the referenced client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrProjectNotFound indicates the referenced project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid feedback input.
	ErrInvalidInput = errors.New("invalid feedback input")
)
