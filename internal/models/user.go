package models

import "time"

// User is a registered identity. It is never modified after registration.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
