package dto

type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type TaskItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Status       string      `json:"status"`
	AssignedUser UserSummary `json:"assignedUser"`
	CreatedBy    UserSummary `json:"createdBy"`
	DueDate      string      `json:"dueDate"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

type TaskStatsResponse struct {
	Pending    int `json:"Pending"`
	InProgress int `json:"In Progress"`
	Completed  int `json:"Completed"`
	Total      int `json:"total"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateTaskRequest struct {
	Title        string `json:"title" binding:"required,max=255"`
	Description  string `json:"description" binding:"required,max=65535"`
	Status       string `json:"status" binding:"required,oneof='Pending' 'In Progress' 'Completed'"`
	AssignedUser string `json:"assignedUser" binding:"required"`
	DueDate      string `json:"dueDate" binding:"required"`
}

type UpdateTaskRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	Status       *string `json:"status" binding:"omitempty,oneof='Pending' 'In Progress' 'Completed'"`
	AssignedUser *string `json:"assignedUser" binding:"omitempty"`
	DueDate      *string `json:"dueDate" binding:"omitempty"`
}
