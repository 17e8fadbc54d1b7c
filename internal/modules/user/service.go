package user

import (
	"context"
	"errors"
	"strings"

	"meetspace/internal/domain"
	"meetspace/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	users    UserRepository
	sessions SessionRevoker
}

func NewService(users UserRepository, sessions SessionRevoker) *Service {
	return &Service{users: users, sessions: sessions}
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	resp := toResponse(u)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, page, pageSize int, search string) (*PagedUsers, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	rows, total, err := s.users.List(ctx, repository.UserFilter{Search: search, Page: page, PageSize: pageSize})
	if err != nil {
		return nil, err
	}

	items := make([]UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toResponse(&rows[i]))
	}
	return &PagedUsers{Items: items, TotalCount: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces names, email, role and the active flag. Deactivating a
// user also revokes their refresh tokens.
func (s *Service) Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (*UserResponse, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	active := req.IsActive != nil && *req.IsActive
	if actorID == u.ID && (role != domain.RoleAdmin || !active) {
		return nil, ErrSelfDemotion
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != u.Email {
		other, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil && other.ID != u.ID:
			return nil, ErrEmailTaken
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
	}

	wasActive := u.IsActive
	u.Email = email
	u.FirstName = strings.TrimSpace(req.FirstName)
	u.LastName = strings.TrimSpace(req.LastName)
	u.Role = role
	u.IsActive = active

	if err := s.users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if wasActive && !u.IsActive && s.sessions != nil {
		if err := s.sessions.RevokeByUser(ctx, u.ID); err != nil {
			return nil, err
		}
	}

	resp := toResponse(u)
	return &resp, nil
}

// HashPassword returns the bcrypt hash stored for a user.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
