package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string for a stored record
func GenerateID() string {
	return uuid.NewString()
}

// RequestID returns a short identifier used to correlate a client request with server logs
func RequestID() string {
	id := uuid.New()
	return "req-" + id.String()[:8]
}
