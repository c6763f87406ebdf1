package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskflow/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Insert(ctx context.Context, input domain.CreateTaskInput, createdBy string) (string, error) {
	args := m.Called(ctx, input, createdBy)
	return args.String(0), args.Error(1)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) FindWithFilter(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) UpdateByID(ctx context.Context, id string, patch domain.UpdateTaskInput) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *taskRepositoryMock) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepositoryMock) CountByStatus(ctx context.Context, assignedUser string) (map[domain.TaskStatus]int, error) {
	args := m.Called(ctx, assignedUser)

	var counts map[domain.TaskStatus]int
	if value := args.Get(0); value != nil {
		counts = value.(map[domain.TaskStatus]int)
	}
	return counts, args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Insert(ctx context.Context, input domain.RegisterInput, passwordHash string) (domain.User, error) {
	args := m.Called(ctx, input, passwordHash)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	args := m.Called(ctx, email, username)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

type passwordHasherMock struct {
	mock.Mock
}

func (m *passwordHasherMock) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *passwordHasherMock) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) Issue(user domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *tokenManagerMock) Subject(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}
