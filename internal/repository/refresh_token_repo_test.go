package repository

import (
	"context"
	"testing"
	"time"

	"meetspace/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefreshToken(userID string, expiresAt time.Time, revokedAt *time.Time) *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: uuid.NewString(),
		ExpiresAt: expiresAt,
		RevokedAt: revokedAt,
	}
}

func TestRefreshTokenRepository_RevokeTwice(t *testing.T) {
	repo := NewRefreshTokenRepository(setupDB(t))
	ctx := context.Background()

	tok := newRefreshToken("u1", time.Now().UTC().Add(time.Hour), nil)
	require.NoError(t, repo.Create(ctx, tok))

	next := uuid.NewString()
	require.NoError(t, repo.Revoke(ctx, tok.ID, &next))
	assert.ErrorIs(t, repo.Revoke(ctx, tok.ID, nil), ErrNotFound)

	got, err := repo.GetByHash(ctx, tok.TokenHash)
	require.NoError(t, err)
	assert.True(t, got.IsRevoked())
	require.NotNil(t, got.ReplacedByID)
	assert.Equal(t, next, *got.ReplacedByID)
}

func TestRefreshTokenRepository_DeleteStale(t *testing.T) {
	db := setupDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	longAgo := now.Add(-40 * 24 * time.Hour)
	recently := now.Add(-time.Hour)

	live := newRefreshToken("u1", now.Add(time.Hour), nil)
	expired := newRefreshToken("u1", now.Add(-time.Minute), nil)
	oldRevoked := newRefreshToken("u1", now.Add(time.Hour), &longAgo)
	newRevoked := newRefreshToken("u1", now.Add(time.Hour), &recently)
	for _, tok := range []*domain.RefreshToken{live, expired, oldRevoked, newRevoked} {
		require.NoError(t, repo.Create(ctx, tok))
	}

	n, err := repo.DeleteStale(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var left []domain.RefreshToken
	require.NoError(t, db.Order("id").Find(&left).Error)
	require.Len(t, left, 2)
	ids := []string{left[0].ID, left[1].ID}
	assert.ElementsMatch(t, []string{live.ID, newRevoked.ID}, ids)
}
