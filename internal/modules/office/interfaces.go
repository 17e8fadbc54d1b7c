package office

import (
	"context"

	"meetspace/internal/domain"
)

type OfficeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Office, error)
	List(ctx context.Context) ([]domain.Office, error)
	ListActive(ctx context.Context) ([]domain.Office, error)
	ListByAssignedUser(ctx context.Context, userID string) ([]domain.Office, error)
	Create(ctx context.Context, o *domain.Office) error
	Update(ctx context.Context, o *domain.Office) error
	IsAssigned(ctx context.Context, officeID, userID string) (bool, error)
	AddAssignment(ctx context.Context, a *domain.OfficeAssignment) error
	RemoveAssignment(ctx context.Context, officeID, userID string) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
