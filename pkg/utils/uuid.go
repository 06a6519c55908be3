package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateShortID generates a short public order reference
func GenerateShortID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}
