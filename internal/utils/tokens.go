package utils

import "github.com/google/uuid"

// NewVerificationToken returns an opaque, unguessable token string
// (a v4 UUID, 122 bits of entropy).
func NewVerificationToken() string {
	return uuid.NewString()
}
