package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

// TaskStore relies on BIGSERIAL for ids, so deleted ids are never handed
// out again.
type TaskStore struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskStore(logger zerolog.Logger, pgPool *pgxpool.Pool) *TaskStore {
	return &TaskStore{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *TaskStore) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	created := *task

	const insertTaskQuery = `
INSERT INTO tasks (username,
                   title,
                   description,
                   completed)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		created.Owner,
		created.Title,
		created.Description,
		created.Completed,
	).Scan(&created.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", created.ID).
		Msg("inserted task")
	return &created, nil
}

func (s *TaskStore) ListTasks(ctx context.Context, owner string) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       title,
       description,
       completed
FROM tasks
WHERE username = $1
ORDER BY id
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTasksQuery,
		owner,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{Owner: owner}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Completed,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) UpdateTask(
	ctx context.Context,
	owner string,
	id int64,
	fn func(task *models.Task) error,
) (*models.Task, error) {
	tx, err := s.pgPool.Begin(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to begin transaction")
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task := &models.Task{ID: id, Owner: owner}

	const selectTaskQuery = `
SELECT title,
       description,
       completed
FROM tasks
WHERE id = $1 AND username = $2
FOR UPDATE
`
	err = tx.QueryRow(
		ctx,
		selectTaskQuery,
		id,
		owner,
	).Scan(
		&task.Title,
		&task.Description,
		&task.Completed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to select task")
		return nil, err
	}

	err = fn(task)
	if err != nil {
		return nil, err
	}
	task.ID = id
	task.Owner = owner

	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    completed = $3
WHERE id = $4 AND username = $5
`
	_, err = tx.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.Completed,
		task.ID,
		task.Owner,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to update task")
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to commit transaction")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("updated task")
	return task, nil
}

func (s *TaskStore) DeleteTask(ctx context.Context, owner string, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND username = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
		owner,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrTaskNotFound
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

var (
	_ storage.TaskStore = (*TaskStore)(nil)
)
