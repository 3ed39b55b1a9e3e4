package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  storage.TaskStore
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskStore,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if params.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	task, err := s.tasks.CreateTask(ctx, &models.Task{
		Owner:       params.Owner,
		Title:       params.Title,
		Description: params.Description,
		Completed:   false,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("owner", task.Owner).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasksByOwner(ctx context.Context, owner string) ([]*models.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, owner)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("owner", owner).
			Msg("failed to list tasks")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Str("owner", owner).
		Msg("listed tasks")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	patch := params.Patch
	if patch.Title != nil && *patch.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if patch.Description != nil && *patch.Description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrValidation)
	}

	task, err := s.tasks.UpdateTask(ctx, params.Owner, params.ID, func(task *models.Task) error {
		patch.Apply(task)
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Error().
				Int64("task_id", params.ID).
				Str("owner", params.Owner).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("owner", task.Owner).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, params DeleteTaskParams) error {
	err := s.tasks.DeleteTask(ctx, params.Owner, params.ID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Error().
				Int64("task_id", params.ID).
				Str("owner", params.Owner).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", params.ID).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Int64("task_id", params.ID).
		Str("owner", params.Owner).
		Msg("deleted task")
	return nil
}
