package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, input domain.RegisterInput, passwordHash string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}
