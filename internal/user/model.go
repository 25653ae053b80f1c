package user

import "time"

// User is the identity record. Both token pairs are nullable and present
// only while the matching flow is pending.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsVerified   bool
	LastLogin    *time.Time

	VerifiedToken        *string
	VerifiedTokenExpires *time.Time
	ResetToken           *string
	ResetTokenExpires    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
