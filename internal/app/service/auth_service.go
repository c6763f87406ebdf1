package service

import (
	"context"
	"errors"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	passwordHasher ports.PasswordHasher
	tokenManager   ports.TokenManager
}

func NewAuthService(
	userRepository ports.UserRepository,
	passwordHasher ports.PasswordHasher,
	tokenManager ports.TokenManager,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	exists, err := s.userRepository.ExistsByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepository.Insert(ctx, input, hash)
}

// Login verifies the credentials and issues a bearer token for the user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, "", err
	}

	if !s.passwordHasher.Verify(password, user.PasswordHash) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Issue(user)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepository.FindByID(ctx, userID)
}

// ListUsers returns the directory used by assignment pickers.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

var _ ports.AuthService = (*AuthService)(nil)
