package repository

import (
	"context"

	"meetspace/internal/domain"
)

// Directory is the read-only office/room view the booking core consumes.
type Directory struct {
	offices *OfficeRepository
	rooms   *RoomRepository
}

func NewDirectory(offices *OfficeRepository, rooms *RoomRepository) *Directory {
	return &Directory{offices: offices, rooms: rooms}
}

func (d *Directory) GetOffice(ctx context.Context, id string) (*domain.Office, error) {
	return d.offices.GetByID(ctx, id)
}

func (d *Directory) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return d.rooms.GetByID(ctx, id)
}

func (d *Directory) ListActiveRoomsByOffice(ctx context.Context, officeID string, minCapacity *int) ([]domain.Room, error) {
	return d.rooms.ListActiveByOffice(ctx, officeID, minCapacity)
}
