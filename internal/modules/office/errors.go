package office

import "errors"

var (
	ErrOfficeNotFound     = errors.New("office not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotManager         = errors.New("only office managers can be assigned to offices")
	ErrAlreadyAssigned    = errors.New("user is already assigned to this office")
	ErrAssignmentNotFound = errors.New("user is not assigned to this office")
	ErrForbidden          = errors.New("office is not managed by caller")
	ErrOfficeInactive     = errors.New("office is inactive")
)
