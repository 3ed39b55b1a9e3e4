// Package limiter throttles repeated failed logins for a username.
package limiter

import (
	"context"
	"errors"
)

var ErrTooManyAttempts = errors.New("too many login attempts")

type LoginLimiter interface {
	// Allow records an attempt for the username and returns
	// ErrTooManyAttempts once the limit for the current window is exceeded.
	Allow(ctx context.Context, username string) error

	// Reset forgets previous attempts after a successful login.
	Reset(ctx context.Context, username string) error
}

type noop struct{}

// NewNoop returns a limiter that allows everything. It is used when Redis
// is not configured.
func NewNoop() LoginLimiter {
	return noop{}
}

func (noop) Allow(context.Context, string) error { return nil }

func (noop) Reset(context.Context, string) error { return nil }
