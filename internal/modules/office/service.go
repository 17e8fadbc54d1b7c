package office

import (
	"context"
	"errors"
	"strings"

	"meetspace/internal/domain"
	"meetspace/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	offices OfficeRepository
	rooms   RoomRepository
	users   UserRepository
}

func NewService(offices OfficeRepository, rooms RoomRepository, users UserRepository) *Service {
	return &Service{offices: offices, rooms: rooms, users: users}
}

// ListOffices scopes the listing by role: admins see everything, managers
// their assigned offices, employees the active ones.
func (s *Service) ListOffices(ctx context.Context, userID string, role domain.UserRole) ([]OfficeResponse, error) {
	var (
		list []domain.Office
		err  error
	)
	switch role {
	case domain.RoleAdmin:
		list, err = s.offices.List(ctx)
	case domain.RoleOfficeManager:
		list, err = s.offices.ListByAssignedUser(ctx, userID)
	default:
		list, err = s.offices.ListActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OfficeResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOfficeResponse(o))
	}
	return out, nil
}

func (s *Service) CreateOffice(ctx context.Context, req CreateOfficeRequest) (*OfficeResponse, error) {
	o := &domain.Office{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		State:   domain.ResourceActive,
	}
	for _, r := range req.Rooms {
		o.Rooms = append(o.Rooms, domain.Room{
			ID:          uuid.NewString(),
			OfficeID:    o.ID,
			Name:        strings.TrimSpace(r.Name),
			Capacity:    r.Capacity,
			Description: strings.TrimSpace(r.Description),
			State:       domain.ResourceActive,
		})
	}

	if err := s.offices.Create(ctx, o); err != nil {
		return nil, err
	}
	resp := toOfficeResponse(*o)
	return &resp, nil
}

func (s *Service) UpdateOffice(ctx context.Context, userID string, role domain.UserRole, officeID string, req UpdateOfficeRequest) error {
	o, err := s.loadManagedOffice(ctx, userID, role, officeID)
	if err != nil {
		return err
	}

	o.Name = strings.TrimSpace(req.Name)
	o.Address = strings.TrimSpace(req.Address)
	return notFound(s.offices.Update(ctx, o), ErrOfficeNotFound)
}

// DeactivateOffice soft-deletes the office. Its rooms and bookings stay.
func (s *Service) DeactivateOffice(ctx context.Context, officeID string) error {
	o, err := s.offices.GetByID(ctx, officeID)
	if err != nil {
		return notFound(err, ErrOfficeNotFound)
	}
	o.Deactivate()
	return notFound(s.offices.Update(ctx, o), ErrOfficeNotFound)
}

func (s *Service) AssignManager(ctx context.Context, officeID, userID string) error {
	if _, err := s.offices.GetByID(ctx, officeID); err != nil {
		return notFound(err, ErrOfficeNotFound)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if u.Role != domain.RoleOfficeManager {
		return ErrNotManager
	}

	assigned, err := s.offices.IsAssigned(ctx, officeID, userID)
	if err != nil {
		return err
	}
	if assigned {
		return ErrAlreadyAssigned
	}

	err = s.offices.AddAssignment(ctx, &domain.OfficeAssignment{OfficeID: officeID, UserID: userID})
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrAlreadyAssigned
	}
	return err
}

func (s *Service) RemoveManager(ctx context.Context, officeID, userID string) error {
	return notFound(s.offices.RemoveAssignment(ctx, officeID, userID), ErrAssignmentNotFound)
}

func (s *Service) CreateRoom(ctx context.Context, userID string, role domain.UserRole, req CreateRoomRequest) (*RoomResponse, error) {
	o, err := s.loadManagedOffice(ctx, userID, role, req.OfficeID)
	if err != nil {
		return nil, err
	}
	if !o.IsActive() {
		return nil, ErrOfficeInactive
	}

	room := &domain.Room{
		ID:          uuid.NewString(),
		OfficeID:    o.ID,
		Name:        strings.TrimSpace(req.Name),
		Capacity:    req.Capacity,
		Description: strings.TrimSpace(req.Description),
		State:       domain.ResourceActive,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	resp := toRoomResponse(*room)
	return &resp, nil
}

func (s *Service) UpdateRoom(ctx context.Context, userID string, role domain.UserRole, roomID string, req UpdateRoomRequest) error {
	room, err := s.loadManagedRoom(ctx, userID, role, roomID)
	if err != nil {
		return err
	}

	room.Name = strings.TrimSpace(req.Name)
	room.Capacity = req.Capacity
	room.Description = strings.TrimSpace(req.Description)
	return notFound(s.rooms.Update(ctx, room), ErrRoomNotFound)
}

// DeactivateRoom soft-deletes the room; existing bookings are kept.
func (s *Service) DeactivateRoom(ctx context.Context, userID string, role domain.UserRole, roomID string) error {
	room, err := s.loadManagedRoom(ctx, userID, role, roomID)
	if err != nil {
		return err
	}

	room.Deactivate()
	return notFound(s.rooms.Update(ctx, room), ErrRoomNotFound)
}

// loadManagedOffice loads the office and checks that a manager caller is
// assigned to it. Admins manage every office.
func (s *Service) loadManagedOffice(ctx context.Context, userID string, role domain.UserRole, officeID string) (*domain.Office, error) {
	o, err := s.offices.GetByID(ctx, officeID)
	if err != nil {
		return nil, notFound(err, ErrOfficeNotFound)
	}
	if role == domain.RoleAdmin {
		return o, nil
	}

	assigned, err := s.offices.IsAssigned(ctx, officeID, userID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *Service) loadManagedRoom(ctx context.Context, userID string, role domain.UserRole, roomID string) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	if _, err := s.loadManagedOffice(ctx, userID, role, room.OfficeID); err != nil {
		return nil, err
	}
	return room, nil
}

func notFound(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
