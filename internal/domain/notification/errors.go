package notification

import "errors"

var (
	// ErrNotificationNotFound indicates the notification doesn't exist.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrInvalidInput indicates invalid notification input.
	ErrInvalidInput = errors.New("invalid notification input")
)
