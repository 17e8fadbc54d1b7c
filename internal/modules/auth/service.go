package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"meetspace/internal/domain"
	"meetspace/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service issues access tokens for the password grant and rotates refresh
// tokens.
type Service struct {
	users              UserRepository
	tokens             RefreshTokenRepository
	jwt                TokenIssuer
	refreshTokenPepper string
	refreshTTL         time.Duration
	now                func() time.Time
}

func NewService(
	users UserRepository,
	tokens RefreshTokenRepository,
	jwt TokenIssuer,
	refreshTokenPepper string,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:              users,
		tokens:             tokens,
		jwt:                jwt,
		refreshTokenPepper: refreshTokenPepper,
		refreshTTL:         refreshTTL,
		now:                time.Now,
	}
}

// Token checks the credentials and returns a new token pair. Unknown email,
// wrong password and inactive user all yield ErrInvalidCredentials.
func (s *Service) Token(ctx context.Context, req TokenRequest) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user, nil)
}

// Refresh rotates the presented refresh token. Presenting a token that was
// already rotated revokes every token of its user.
func (s *Service) Refresh(ctx context.Context, raw string) (*TokenResponse, error) {
	current, err := s.tokens.GetByHash(ctx, hashTokenWithPepper(raw, s.refreshTokenPepper))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if current.IsRevoked() {
		if err := s.tokens.RevokeByUser(ctx, current.UserID); err != nil {
			return nil, err
		}
		return nil, ErrRefreshTokenReused
	}
	if current.IsExpired(s.now()) {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.IsActive {
		_ = s.tokens.RevokeByUser(ctx, user.ID)
		return nil, ErrUserInactive
	}

	return s.issue(ctx, user, current)
}

// Logout revokes the refresh token. Unknown or revoked tokens are ignored.
func (s *Service) Logout(ctx context.Context, raw string) error {
	t, err := s.tokens.GetByHash(ctx, hashTokenWithPepper(raw, s.refreshTokenPepper))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	err = s.tokens.Revoke(ctx, t.ID, nil)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// issue creates an access token and a refresh token. When rotating, the old
// refresh token is revoked first; losing that race counts as reuse.
func (s *Service) issue(ctx context.Context, user *domain.User, rotated *domain.RefreshToken) (*TokenResponse, error) {
	access, err := s.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	raw, hash, err := generateOpaqueRefreshToken(s.refreshTokenPepper)
	if err != nil {
		return nil, err
	}

	next := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: s.now().Add(s.refreshTTL),
	}

	if rotated != nil {
		if err := s.tokens.Revoke(ctx, rotated.ID, &next.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrRefreshTokenReused
			}
			return nil, err
		}
	}

	if err := s.tokens.Create(ctx, next); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  access,
		RefreshToken: raw,
		ExpiresIn:    int64(s.jwt.TTL() / time.Second),
		TokenType:    "Bearer",
	}, nil
}

func generateOpaqueRefreshToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}
