package services

import "errors"

// Service-level sentinel errors. Handlers translate these into HTTP
// status codes.
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrSessionNotFound = errors.New("session not found")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}
