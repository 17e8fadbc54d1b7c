package user

import (
	"context"

	"meetspace/internal/domain"
	"meetspace/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, f repository.UserFilter) ([]domain.User, int64, error)
}

// SessionRevoker ends the refresh sessions of a deactivated user.
type SessionRevoker interface {
	RevokeByUser(ctx context.Context, userID string) error
}
