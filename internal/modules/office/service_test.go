package office

import (
	"context"
	"testing"

	"meetspace/internal/database"
	"meetspace/internal/domain"
	"meetspace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(
		repository.NewOfficeRepository(db),
		repository.NewRoomRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, id string, role domain.UserRole) {
	t.Helper()
	require.NoError(t, db.Create(&domain.User{
		ID: id, Email: id + "@example.com", PasswordHash: "x",
		FirstName: "F", LastName: "L", Role: role, IsActive: true,
	}).Error)
}

func TestService_CreateOfficeWithRooms(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	created, err := svc.CreateOffice(ctx, CreateOfficeRequest{
		Name:    " HQ ",
		Address: "1 Main St",
		Rooms:   []RoomInput{{Name: "Blue", Capacity: 4}, {Name: "Atrium", Capacity: 12}},
	})
	require.NoError(t, err)
	assert.Equal(t, "HQ", created.Name)
	assert.Len(t, created.Rooms, 2)

	all, err := svc.ListOffices(ctx, "admin", domain.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Atrium", all[0].Rooms[0].Name)
}

func TestService_ListOffices_ByRole(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	seedUser(t, db, "mgr", domain.RoleOfficeManager)

	a, err := svc.CreateOffice(ctx, CreateOfficeRequest{Name: "A", Address: "a"})
	require.NoError(t, err)
	b, err := svc.CreateOffice(ctx, CreateOfficeRequest{Name: "B", Address: "b"})
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateOffice(ctx, b.ID))
	require.NoError(t, svc.AssignManager(ctx, b.ID, "mgr"))

	admin, err := svc.ListOffices(ctx, "root", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admin, 2)

	manager, err := svc.ListOffices(ctx, "mgr", domain.RoleOfficeManager)
	require.NoError(t, err)
	require.Len(t, manager, 1)
	assert.Equal(t, b.ID, manager[0].ID)
	assert.False(t, manager[0].IsActive)

	employee, err := svc.ListOffices(ctx, "emp", domain.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, employee, 1)
	assert.Equal(t, a.ID, employee[0].ID)
}

func TestService_AssignManager(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	seedUser(t, db, "mgr", domain.RoleOfficeManager)
	seedUser(t, db, "emp", domain.RoleEmployee)

	o, err := svc.CreateOffice(ctx, CreateOfficeRequest{Name: "A", Address: "a"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.AssignManager(ctx, o.ID, "emp"), ErrNotManager)
	assert.ErrorIs(t, svc.AssignManager(ctx, o.ID, "ghost"), ErrUserNotFound)
	assert.ErrorIs(t, svc.AssignManager(ctx, "nope", "mgr"), ErrOfficeNotFound)

	require.NoError(t, svc.AssignManager(ctx, o.ID, "mgr"))
	assert.ErrorIs(t, svc.AssignManager(ctx, o.ID, "mgr"), ErrAlreadyAssigned)

	require.NoError(t, svc.RemoveManager(ctx, o.ID, "mgr"))
	assert.ErrorIs(t, svc.RemoveManager(ctx, o.ID, "mgr"), ErrAssignmentNotFound)
}

func TestService_ManagerScope(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()
	seedUser(t, db, "mgr", domain.RoleOfficeManager)

	mine, err := svc.CreateOffice(ctx, CreateOfficeRequest{Name: "Mine", Address: "m", Rooms: []RoomInput{{Name: "R", Capacity: 2}}})
	require.NoError(t, err)
	other, err := svc.CreateOffice(ctx, CreateOfficeRequest{Name: "Other", Address: "o", Rooms: []RoomInput{{Name: "X", Capacity: 2}}})
	require.NoError(t, err)
	require.NoError(t, svc.AssignManager(ctx, mine.ID, "mgr"))

	err = svc.UpdateOffice(ctx, "mgr", domain.RoleOfficeManager, other.ID, UpdateOfficeRequest{Name: "Hijack", Address: "o"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.UpdateOffice(ctx, "mgr", domain.RoleOfficeManager, mine.ID, UpdateOfficeRequest{Name: "Mine 2", Address: "m"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeactivateRoom(ctx, "mgr", domain.RoleOfficeManager, other.Rooms[0].ID), ErrForbidden)
	require.NoError(t, svc.DeactivateRoom(ctx, "mgr", domain.RoleOfficeManager, mine.Rooms[0].ID))

	room, err := repository.NewRoomRepository(db).GetByID(ctx, mine.Rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceInactive, room.State)

	require.NoError(t, svc.UpdateOffice(ctx, "root", domain.RoleAdmin, other.ID, UpdateOfficeRequest{Name: "Other 2", Address: "o"}))
}

func TestService_CreateRoom(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	o, err := svc.CreateOffice(ctx, CreateOfficeRequest{Name: "A", Address: "a"})
	require.NoError(t, err)

	room, err := svc.CreateRoom(ctx, "root", domain.RoleAdmin, CreateRoomRequest{OfficeID: o.ID, Name: "New", Capacity: 3})
	require.NoError(t, err)
	assert.True(t, room.IsActive)

	require.NoError(t, svc.UpdateRoom(ctx, "root", domain.RoleAdmin, room.ID, UpdateRoomRequest{Name: "Renamed", Capacity: 5}))

	require.NoError(t, svc.DeactivateOffice(ctx, o.ID))
	_, err = svc.CreateRoom(ctx, "root", domain.RoleAdmin, CreateRoomRequest{OfficeID: o.ID, Name: "Late", Capacity: 3})
	assert.ErrorIs(t, err, ErrOfficeInactive)

	_, err = svc.CreateRoom(ctx, "root", domain.RoleAdmin, CreateRoomRequest{OfficeID: "missing", Name: "X", Capacity: 1})
	assert.ErrorIs(t, err, ErrOfficeNotFound)
}
