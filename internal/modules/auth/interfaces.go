package auth

import (
	"context"
	"time"

	"meetspace/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id string, replacedByID *string) error
	RevokeByUser(ctx context.Context, userID string) error
}

type TokenIssuer interface {
	GenerateToken(userID, email, role string) (string, error)
	TTL() time.Duration
}
