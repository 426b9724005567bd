package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered identifier used to correlate all log
// entries of one client session. Falls back to a random UUID if the
// monotonic v7 source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
