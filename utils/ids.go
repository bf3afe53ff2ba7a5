package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// NormalizeID trims whitespace around an identifier taken from a request.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
