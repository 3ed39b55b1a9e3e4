package models

import "time"

// Identity is what a verified token proves about its bearer.
type Identity struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
