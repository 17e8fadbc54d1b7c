// Package queue publishes booking audit events to RabbitMQ.
package queue

import "time"

type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
)

// Event is the JSON body of every published message.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	OfficeID   string    `json:"office_id,omitempty"`
	UserID     string    `json:"user_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	StartUTC   time.Time `json:"start_utc"`
	EndUTC     time.Time `json:"end_utc"`
	OccurredAt time.Time `json:"occurred_at"`
}
