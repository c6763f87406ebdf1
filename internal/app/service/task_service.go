package service

import (
	"context"
	"errors"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		userRepository: userRepository,
	}
}

// Create inserts a new task owned by callerID. The assignee must exist at
// creation time; the existence check and the insert are two separate store
// round trips with no transaction between them.
func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput, callerID string) (domain.Task, error) {
	if err := s.resolveAssignee(ctx, input.AssignedUser); err != nil {
		return domain.Task{}, err
	}

	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}

	id, err := s.taskRepository.Insert(ctx, input, callerID)
	if err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.FindWithFilter(ctx, filter)
}

// FindOne returns the task only when callerID is its assignee. A creator who
// is not also the assignee gets ErrTaskNotFound, which is stricter than the
// update permission set.
func (s *TaskService) FindOne(ctx context.Context, id, callerID string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if task.AssignedUser.ID != callerID {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return task, nil
}

// Update merges the provided fields into the task. Permitted for the creator
// and the assignee; a reassignment must point at an existing user.
func (s *TaskService) Update(ctx context.Context, id string, patch domain.UpdateTaskInput, callerID string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if task.CreatedBy.ID != callerID && task.AssignedUser.ID != callerID {
		return domain.Task{}, domain.ErrTaskForbidden
	}

	if patch.AssignedUser != nil {
		if err := s.resolveAssignee(ctx, *patch.AssignedUser); err != nil {
			return domain.Task{}, err
		}
	}

	if patch.Empty() {
		return task, nil
	}

	if err := s.taskRepository.UpdateByID(ctx, id, patch); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.FindByID(ctx, id)
}

// Remove permanently deletes the task. Only the creator may delete, the
// assignee may not.
func (s *TaskService) Remove(ctx context.Context, id, callerID string) error {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if task.CreatedBy.ID != callerID {
		return domain.ErrTaskForbidden
	}

	return s.taskRepository.DeleteByID(ctx, id)
}

// Stats counts tasks grouped by status. All three buckets are present in the
// result even when no task carries that status; an empty callerID counts
// tasks across all assignees.
func (s *TaskService) Stats(ctx context.Context, callerID string) (domain.TaskStats, error) {
	counts, err := s.taskRepository.CountByStatus(ctx, callerID)
	if err != nil {
		return domain.TaskStats{}, err
	}

	stats := domain.TaskStats{
		Pending:    counts[domain.TaskStatusPending],
		InProgress: counts[domain.TaskStatusInProgress],
		Completed:  counts[domain.TaskStatusCompleted],
	}
	for _, count := range counts {
		stats.Total += count
	}

	return stats, nil
}

func (s *TaskService) resolveAssignee(ctx context.Context, assigneeID string) error {
	_, err := s.userRepository.FindByID(ctx, assigneeID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrAssignedUserNotFound
	}
	return err
}

var _ ports.TaskService = (*TaskService)(nil)
