package pkg

import (
	"github.com/google/uuid"
)

// GenerateSessionID - generates an id used to tell sessions apart in logs.
func GenerateSessionID() string {
	return uuid.NewString()
}
