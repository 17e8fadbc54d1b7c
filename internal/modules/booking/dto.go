package booking

import (
	"time"

	"meetspace/internal/pkg/interval"
)

type CreateBookingRequest struct {
	OfficeID  string `json:"office_id" binding:"required"`
	RoomID    string `json:"room_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Title     string `json:"title"`
}

// CreateBookingInput is a parsed booking request on behalf of OwnerUserID.
type CreateBookingInput struct {
	OfficeID    string
	RoomID      string
	Date        time.Time
	Start       interval.Clock
	End         interval.Clock
	Title       string
	OwnerUserID string
}

// AvailabilityQuery filters the active rooms of an office. Availability is
// only checked when Date, Start and End are all set.
type AvailabilityQuery struct {
	OfficeID    string
	MinCapacity *int
	Date        *time.Time
	Start       *interval.Clock
	End         *interval.Clock
}

type RoomSummary struct {
	ID          string `json:"id"`
	OfficeID    string `json:"office_id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}

type BookingSummary struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	OfficeID    string `json:"office_id"`
	OfficeName  string `json:"office_name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Title       string `json:"title"`
	IsCancelled bool   `json:"is_cancelled"`
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}
