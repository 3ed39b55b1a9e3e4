package memory

import (
	"context"
	"sync"

	"github.com/adanyl0v/go-task-services/internal/models"
	"github.com/adanyl0v/go-task-services/internal/storage"
)

// TaskStore keeps tasks in a slice so that listing preserves insertion order.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int64
}

func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

func (s *TaskStore) CreateTask(_ context.Context, task *models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *task
	created.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, created)
	return &created, nil
}

func (s *TaskStore) ListTasks(_ context.Context, owner string) ([]*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*models.Task, 0)
	for i := range s.tasks {
		if s.tasks[i].Owner == owner {
			task := s.tasks[i]
			tasks = append(tasks, &task)
		}
	}
	return tasks, nil
}

func (s *TaskStore) UpdateTask(
	_ context.Context,
	owner string,
	id int64,
	fn func(task *models.Task) error,
) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(owner, id)
	if i < 0 {
		return nil, storage.ErrTaskNotFound
	}

	task := s.tasks[i]
	err := fn(&task)
	if err != nil {
		return nil, err
	}
	task.ID = s.tasks[i].ID
	task.Owner = s.tasks[i].Owner
	s.tasks[i] = task
	return &task, nil
}

func (s *TaskStore) DeleteTask(_ context.Context, owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(owner, id)
	if i < 0 {
		return storage.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Len returns the number of stored tasks across all owners.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// indexOf must be called with mu held.
func (s *TaskStore) indexOf(owner string, id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].Owner == owner {
			return i
		}
	}
	return -1
}

var (
	_ storage.TaskStore = (*TaskStore)(nil)
)
