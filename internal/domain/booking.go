package domain

import "time"

type BookingState string

const (
	BookingActive    BookingState = "active"
	BookingCancelled BookingState = "cancelled"
)

const MaxBookingTitleLen = 200

type Booking struct {
	ID          string       `json:"id" gorm:"type:varchar(36);primaryKey"`
	RoomID      string       `json:"room_id" gorm:"type:varchar(36);not null;index:idx_bookings_room_time,priority:1"`
	OwnerUserID string       `json:"owner_user_id" gorm:"type:varchar(36);not null;index"`
	StartUTC    time.Time    `json:"start_utc" gorm:"column:start_utc;not null;index:idx_bookings_room_time,priority:2"`
	EndUTC      time.Time    `json:"end_utc" gorm:"column:end_utc;not null;index:idx_bookings_room_time,priority:3"`
	Title       string       `json:"title" gorm:"size:200"`
	State       BookingState `json:"state" gorm:"size:16;not null;default:active"`
	CreatedAt   time.Time    `json:"created_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (b *Booking) IsCancelled() bool {
	return b.State == BookingCancelled
}

// Cancel moves the booking to the cancelled state. It reports false when the
// booking was already cancelled.
func (b *Booking) Cancel() bool {
	if b.State == BookingCancelled {
		return false
	}
	b.State = BookingCancelled
	return true
}
