package utils

import "github.com/google/uuid"

// GenerateUUID returns a random identifier suitable for SSE client IDs
// and request correlation.
func GenerateUUID() string {
	return uuid.NewString()
}
