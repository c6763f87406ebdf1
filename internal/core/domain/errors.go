package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskForbidden        = errors.New("task operation forbidden")
	ErrAssignedUserNotFound = errors.New("assigned user not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
