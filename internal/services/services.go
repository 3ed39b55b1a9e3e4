package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-task-services/internal/models"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("authentication failed")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token is expired")
	ErrTaskNotFound       = errors.New("task not found")
	ErrDelivery           = errors.New("failed to deliver notification")
)

type AuthService interface {
	// Register stores a user with an argon2id hash of the password.
	//
	// It returns ErrValidation if the username or password is empty
	// and ErrUserAlreadyExists if the username is taken.
	Register(ctx context.Context, params RegisterParams) (*models.User, error)

	// VerifyCredentials reports whether a user with the given username
	// exists and the password matches its hash. It has no side effects.
	VerifyCredentials(ctx context.Context, username, password string) (bool, error)

	// Login verifies the credentials and issues a token for the user.
	//
	// It returns ErrInvalidCredentials if the user doesn't exist or the
	// password doesn't match, and limiter.ErrTooManyAttempts when the
	// username is throttled.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
}

type TokenService interface {
	// Issue signs a token for the username that expires TokenTTL later.
	Issue(username string) (*IssuedToken, error)

	// Verify checks the signature and the expiry of the token. It returns
	// an error wrapping ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (*models.Identity, error)
}

// TaskService operates only on tasks owned by the caller. A task owned by
// someone else is reported as ErrTaskNotFound, exactly like a missing one.
type TaskService interface {
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)
	GetTasksByOwner(ctx context.Context, owner string) ([]*models.Task, error)
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)
	DeleteTask(ctx context.Context, params DeleteTaskParams) error
}

type NotificationService interface {
	// Notify sends the message once. It returns ErrValidation for missing
	// fields and an error wrapping ErrDelivery if the transport fails.
	Notify(ctx context.Context, n models.Notification) error
}

type RegisterParams struct {
	Username string
	Password string
}

type LoginParams struct {
	Username string
	Password string
}

type LoginResult struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type CreateTaskParams struct {
	Owner       string
	Title       string
	Description string
}

type UpdateTaskParams struct {
	ID    int64
	Owner string
	Patch models.TaskPatch
}

type DeleteTaskParams struct {
	ID    int64
	Owner string
}
