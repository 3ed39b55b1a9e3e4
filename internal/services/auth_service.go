package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/limiter"
	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

type authServiceImpl struct {
	logger     zerolog.Logger
	users      storage.UserStore
	tokens     TokenService
	limiter    limiter.LoginLimiter
	hashParams *argon2id.Params
}

// NewAuthService returns an AuthService backed by the given stores. A nil
// hashParams defaults to argon2id.DefaultParams and a nil loginLimiter
// disables throttling.
func NewAuthService(
	logger zerolog.Logger,
	users storage.UserStore,
	tokens TokenService,
	loginLimiter limiter.LoginLimiter,
	hashParams *argon2id.Params,
) AuthService {
	if loginLimiter == nil {
		loginLimiter = limiter.NewNoop()
	}
	if hashParams == nil {
		hashParams = argon2id.DefaultParams
	}
	return &authServiceImpl{
		logger:     logger,
		users:      users,
		tokens:     tokens,
		limiter:    loginLimiter,
		hashParams: hashParams,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if params.Username == "" || params.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	passwordHash, err := argon2id.CreateHash(params.Password, s.hashParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	user := &models.User{
		Username:     params.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	err = s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			s.logger.Error().
				Str("username", user.Username).
				Msg("user with this username already exists")
			return nil, ErrUserAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().
		Str("username", user.Username).
		Msg("registered user")
	return user, nil
}

func (s *authServiceImpl) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return false, nil
		}

		s.logger.Error().
			Err(err).
			Str("username", username).
			Msg("failed to get user")
		return false, err
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return false, err
	}
	return match, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	if params.Username == "" || params.Password == "" {
		return nil, ErrInvalidCredentials
	}

	err := s.limiter.Allow(ctx, params.Username)
	if err != nil {
		if errors.Is(err, limiter.ErrTooManyAttempts) {
			s.logger.Warn().
				Str("username", params.Username).
				Msg("login throttled")
			return nil, err
		}

		s.logger.Error().
			Err(err).
			Msg("failed to check login attempts")
		return nil, err
	}

	match, err := s.VerifyCredentials(ctx, params.Username, params.Password)
	if err != nil {
		return nil, err
	} else if !match {
		s.logger.Error().
			Str("username", params.Username).
			Msg("invalid credentials")
		return nil, ErrInvalidCredentials
	}

	err = s.limiter.Reset(ctx, params.Username)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("failed to reset login attempts")
	}

	token, err := s.tokens.Issue(params.Username)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("username", params.Username).
		Time("expires_at", token.ExpiresAt).
		Msg("logged in")
	return &LoginResult{
		Username:  params.Username,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}, nil
}
