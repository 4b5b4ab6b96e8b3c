package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionID creates a human-readable id for one service run.
// Format: {prefix}-{8charHexUUID}, e.g. "service-a3f8e2b1".
func GenerateSessionID(prefix string) string {
	if prefix == "" {
		prefix = "service"
	}
	return prefix + "-" + shortUUID()
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
