package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/validation"
	"taskflow/internal/core/domain"
)

func TestBuildCreateTaskInput_TrimsAndParses(t *testing.T) {
	input, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:        "  Fix bug  ",
		Description:  " Crash on empty filter ",
		Status:       "Pending",
		AssignedUser: "u1",
		DueDate:      "2024-06-01T12:00:00Z",
	})

	require.NoError(t, err)
	require.Equal(t, "Fix bug", input.Title)
	require.Equal(t, "Crash on empty filter", input.Description)
	require.Equal(t, domain.TaskStatusPending, input.Status)
	require.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), input.DueDate)
}

func TestBuildCreateTaskInput_AcceptsBareDate(t *testing.T) {
	input, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:        "Fix bug",
		Description:  "Crash on empty filter",
		Status:       "Pending",
		AssignedUser: "u1",
		DueDate:      "2024-06-01",
	})

	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), input.DueDate)
}

func TestBuildCreateTaskInput_RejectsBlankTitle(t *testing.T) {
	_, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:        "   ",
		Description:  "desc",
		Status:       "Pending",
		AssignedUser: "u1",
		DueDate:      "2024-06-01",
	})

	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_RejectsUnparsableDueDate(t *testing.T) {
	_, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:        "Fix bug",
		Description:  "desc",
		Status:       "Pending",
		AssignedUser: "u1",
		DueDate:      "tomorrow",
	})

	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func rawFields(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	raw := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestBuildUpdateTaskInput_PartialPatch(t *testing.T) {
	status := "Completed"
	patch, err := validation.BuildUpdateTaskInput(
		dto.UpdateTaskRequest{Status: &status},
		rawFields(t, `{"status":"Completed"}`),
	)

	require.NoError(t, err)
	require.Nil(t, patch.Title)
	require.Nil(t, patch.Description)
	require.Nil(t, patch.AssignedUser)
	require.Nil(t, patch.DueDate)
	require.NotNil(t, patch.Status)
	require.Equal(t, domain.TaskStatusCompleted, *patch.Status)
}

func TestBuildUpdateTaskInput_RejectsEmptyPatch(t *testing.T) {
	_, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{}`))
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_RejectsNullFields(t *testing.T) {
	_, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawFields(t, `{"title":null}`))
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_RejectsBlankReassignment(t *testing.T) {
	blank := "  "
	_, err := validation.BuildUpdateTaskInput(
		dto.UpdateTaskRequest{AssignedUser: &blank},
		rawFields(t, `{"assignedUser":"  "}`),
	)
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_ParsesDueDate(t *testing.T) {
	due := "2024-12-31T23:59:59Z"
	patch, err := validation.BuildUpdateTaskInput(
		dto.UpdateTaskRequest{DueDate: &due},
		rawFields(t, `{"dueDate":"2024-12-31T23:59:59Z"}`),
	)

	require.NoError(t, err)
	require.NotNil(t, patch.DueDate)
	require.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), *patch.DueDate)
}
