package booking

import (
	"context"
	"time"

	"meetspace/internal/domain"
	"meetspace/internal/queue"
)

// BookingStore persists bookings. Lookups that find nothing return
// repository.ErrNotFound; TryInsertIfNoConflict returns repository.ErrConflict
// when an active booking of the same room overlaps.
type BookingStore interface {
	HasConflicting(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	Insert(ctx context.Context, b *domain.Booking) error
	TryInsertIfNoConflict(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByOfficeAndDate(ctx context.Context, officeID string, date time.Time) ([]domain.Booking, error)
}

// Directory is the read side of offices and rooms.
type Directory interface {
	GetOffice(ctx context.Context, id string) (*domain.Office, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListActiveRoomsByOffice(ctx context.Context, officeID string, minCapacity *int) ([]domain.Room, error)
}

// EventPublisher receives booking lifecycle events. Optional.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.Event) error
}
