package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, input domain.CreateTaskInput, createdBy string) (string, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	FindWithFilter(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	UpdateByID(ctx context.Context, id string, patch domain.UpdateTaskInput) error
	DeleteByID(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, assignedUser string) (map[domain.TaskStatus]int, error)
}

type TaskService interface {
	Create(ctx context.Context, input domain.CreateTaskInput, callerID string) (domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	FindOne(ctx context.Context, id, callerID string) (domain.Task, error)
	Update(ctx context.Context, id string, patch domain.UpdateTaskInput, callerID string) (domain.Task, error)
	Remove(ctx context.Context, id, callerID string) error
	Stats(ctx context.Context, callerID string) (domain.TaskStats, error)
}
