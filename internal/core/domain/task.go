package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Valid reports whether the status is one of the three known values.
// No transition graph exists between them.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// UserSummary is the embedded representation of a referenced user,
// resolved at read time when shaping task responses.
type UserSummary struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
}

type Task struct {
	ID           string
	Title        string
	Description  string
	Status       TaskStatus
	DueDate      time.Time
	AssignedUser UserSummary
	CreatedBy    UserSummary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateTaskInput struct {
	Title        string
	Description  string
	Status       TaskStatus
	AssignedUser string
	DueDate      time.Time
}

// UpdateTaskInput carries a partial update; nil fields keep their prior values.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *TaskStatus
	AssignedUser *string
	DueDate      *time.Time
}

func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.Status == nil &&
		in.AssignedUser == nil &&
		in.DueDate == nil
}

// TaskFilter is the closed filter structure accepted by the list operation.
// All fields are optional and AND-combined.
type TaskFilter struct {
	Status       TaskStatus
	AssignedUser string
	Search       string
	DueFrom      *time.Time
	DueTo        *time.Time
}

type TaskStats struct {
	Pending    int
	InProgress int
	Completed  int
	Total      int
}
