package booking

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is; the specific errors below wrap one kind.
var (
	ErrNotFound        = errors.New("not found")
	ErrInactive        = errors.New("inactive")
	ErrMismatch        = errors.New("room does not belong to office")
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrConflict        = errors.New("room is already booked for an overlapping interval")
	ErrForbidden       = errors.New("not allowed to cancel this booking")
	ErrValidation      = errors.New("validation error")
)

var (
	ErrOfficeNotFound  = fmt.Errorf("office %w", ErrNotFound)
	ErrOfficeInactive  = fmt.Errorf("office %w", ErrInactive)
	ErrRoomNotFound    = fmt.Errorf("room %w", ErrNotFound)
	ErrRoomInactive    = fmt.Errorf("room %w", ErrInactive)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrTitleTooLong    = fmt.Errorf("title too long: %w", ErrValidation)
)
