package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, string, error)
	Profile(ctx context.Context, userID string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenManager issues and validates the bearer tokens carrying the caller id.
type TokenManager interface {
	Issue(user domain.User) (string, error)
	Subject(token string) (string, error)
}
