package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id, t.title, t.description, t.status, t.due_date, t.created_at, t.updated_at,
  au.id AS assignee_id,
  au.username AS assignee_username,
  au.first_name AS assignee_first_name,
  au.last_name AS assignee_last_name,
  cu.id AS creator_id,
  cu.username AS creator_username,
  cu.first_name AS creator_first_name,
  cu.last_name AS creator_last_name
FROM tasks t
JOIN users au ON au.id = t.assigned_user
JOIN users cu ON cu.id = t.created_by
`

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, assigned_user, created_by, due_date)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                string    `db:"id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	Status            string    `db:"status"`
	DueDate           time.Time `db:"due_date"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	AssigneeID        string    `db:"assignee_id"`
	AssigneeUsername  string    `db:"assignee_username"`
	AssigneeFirstName string    `db:"assignee_first_name"`
	AssigneeLastName  string    `db:"assignee_last_name"`
	CreatorID         string    `db:"creator_id"`
	CreatorUsername   string    `db:"creator_username"`
	CreatorFirstName  string    `db:"creator_first_name"`
	CreatorLastName   string    `db:"creator_last_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, input domain.CreateTaskInput, createdBy string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		id,
		input.Title,
		input.Description,
		string(input.Status),
		input.AssignedUser,
		createdBy,
		input.DueDate,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTasksQuery+"WHERE t.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) FindWithFilter(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	var clauses []string
	var args []any

	if filter.Status != "" {
		clauses = append(clauses, "t.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.AssignedUser != "" {
		clauses = append(clauses, "t.assigned_user = ?")
		args = append(args, filter.AssignedUser)
	}
	if filter.DueFrom != nil {
		clauses = append(clauses, "t.due_date >= ?")
		args = append(args, *filter.DueFrom)
	}
	if filter.DueTo != nil {
		clauses = append(clauses, "t.due_date <= ?")
		args = append(args, *filter.DueTo)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(LOWER(t.title) LIKE ? OR LOWER(t.description) LIKE ?)")
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	query := selectTasksQuery
	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY t.created_at DESC"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateByID(ctx context.Context, id string, patch domain.UpdateTaskInput) error {
	var sets []string
	var args []any

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.AssignedUser != nil {
		sets = append(sets, "assigned_user = ?")
		args = append(args, *patch.AssignedUser)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, *patch.DueDate)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

// CountByStatus groups tasks by status, optionally scoped to one assignee.
// Statuses with no tasks do not appear in the result map.
func (r *TaskRepository) CountByStatus(ctx context.Context, assignedUser string) (map[domain.TaskStatus]int, error) {
	query := "SELECT status, COUNT(*) AS total FROM tasks"
	var args []any
	if assignedUser != "" {
		query += " WHERE assigned_user = ?"
		args = append(args, assignedUser)
	}
	query += " GROUP BY status"

	var rows []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	counts := make(map[domain.TaskStatus]int, len(rows))
	for _, row := range rows {
		counts[domain.TaskStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		DueDate:     row.DueDate,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		AssignedUser: domain.UserSummary{
			ID:        row.AssigneeID,
			Username:  row.AssigneeUsername,
			FirstName: row.AssigneeFirstName,
			LastName:  row.AssigneeLastName,
		},
		CreatedBy: domain.UserSummary{
			ID:        row.CreatorID,
			Username:  row.CreatorUsername,
			FirstName: row.CreatorFirstName,
			LastName:  row.CreatorLastName,
		},
	}
}
