package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

type UserStore struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewUserStore(logger zerolog.Logger, pgPool *pgxpool.Pool) *UserStore {
	return &UserStore{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *UserStore) CreateUser(ctx context.Context, user *models.User) error {
	const insertUserQuery = `
INSERT INTO users (username,
                   password,
                   created_at)
VALUES ($1, $2, $3)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertUserQuery,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return storage.ErrUserExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return err
	}
	s.logger.Debug().
		Str("username", user.Username).
		Msg("inserted user")
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{Username: username}

	const selectUserQuery = `
SELECT password,
       created_at
FROM users
WHERE username = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectUserQuery,
		username,
	).Scan(
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("username", username).
			Msg("failed to select user")
		return nil, err
	}
	return user, nil
}

var (
	_ storage.UserStore = (*UserStore)(nil)
)
