package apierrors

const (
	MsgTaskNotFound         = "taskNotFound"
	MsgAssignedUserNotFound = "assignedUserNotFound"
	MsgTaskUpdateForbidden  = "taskUpdateForbidden"
	MsgTaskDeleteForbidden  = "taskDeleteForbidden"
	MsgTaskDeleted          = "taskDeleted"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidTaskFilters   = "invalidTaskFilters"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailListTasks        = "failListTasks"
	MsgFailGetTask          = "failGetTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailTaskStats        = "failTaskStats"

	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUserAlreadyExists  = "userAlreadyExists"
	MsgUserNotFound       = "userNotFound"
	MsgUnauthorized       = "unauthorized"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"
	MsgFailListUsers      = "failListUsers"
)
