package models

import "time"

// VerificationToken gates the activation of a freshly registered account.
// One row per issued token; the row is deleted the moment it is consumed,
// expired rows stay until the sweeper (if enabled) removes them.
type VerificationToken struct {
	ID         int64     `json:"id"`
	Token      string    `json:"token"`
	Email      string    `json:"email"`
	ExpiryDate time.Time `json:"expiry_date"`
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return !t.ExpiryDate.After(now)
}
