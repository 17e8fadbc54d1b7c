package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"meetspace/internal/database"
	"meetspace/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedOfficeAndRoom(t *testing.T, db *gorm.DB) (*domain.Office, *domain.Room) {
	t.Helper()
	office := &domain.Office{ID: uuid.NewString(), Name: "HQ", Address: "1 Main St", State: domain.ResourceActive}
	require.NoError(t, db.Create(office).Error)
	room := &domain.Room{ID: uuid.NewString(), OfficeID: office.ID, Name: "Room A", Capacity: 4, State: domain.ResourceActive}
	require.NoError(t, db.Create(room).Error)
	room.Office = office
	return office, room
}

func newBooking(roomID, owner string, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		OwnerUserID: owner,
		StartUTC:    start,
		EndUTC:      end,
		Title:       "Meeting",
		State:       domain.BookingActive,
	}
}

func at(h, m int) time.Time {
	return time.Date(2026, 6, 1, h, m, 0, 0, time.UTC)
}

func TestBookingRepository_TryInsert_AdjacentAllowed(t *testing.T) {
	db := setupDB(t)
	_, room := seedOfficeAndRoom(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.TryInsertIfNoConflict(ctx, newBooking(room.ID, "u1", at(10, 0), at(11, 0))))
	require.NoError(t, repo.TryInsertIfNoConflict(ctx, newBooking(room.ID, "u2", at(11, 0), at(12, 0))))

	err := repo.TryInsertIfNoConflict(ctx, newBooking(room.ID, "u3", at(9, 30), at(10, 30)))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBookingRepository_TryInsert_UnknownRoom(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)

	err := repo.TryInsertIfNoConflict(context.Background(), newBooking(uuid.NewString(), "u1", at(10, 0), at(11, 0)))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingRepository_CancelledDoesNotConflict(t *testing.T) {
	db := setupDB(t)
	_, room := seedOfficeAndRoom(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(room.ID, "u1", at(9, 0), at(10, 0))
	require.NoError(t, repo.TryInsertIfNoConflict(ctx, b))

	b.Cancel()
	require.NoError(t, repo.Update(ctx, b))

	conflict, err := repo.HasConflicting(ctx, room.ID, at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.False(t, conflict)

	require.NoError(t, repo.TryInsertIfNoConflict(ctx, newBooking(room.ID, "u2", at(9, 0), at(10, 0))))
}

func TestBookingRepository_ConcurrentInsertsAdmitOne(t *testing.T) {
	db := setupDB(t)
	_, room := seedOfficeAndRoom(t, db)
	repo := NewBookingRepository(db)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		accepted  int
		conflicts int
	)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// every window overlaps 10:00-10:30
			b := newBooking(room.ID, "u", at(10, 0).Add(-time.Duration(i)*time.Minute), at(10, 30).Add(time.Duration(i)*time.Minute))
			err := repo.TryInsertIfNoConflict(context.Background(), b)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, workers-1, conflicts)

	var stored int64
	require.NoError(t, db.Model(&domain.Booking{}).Where("room_id = ?", room.ID).Count(&stored).Error)
	assert.Equal(t, int64(1), stored)
}

func TestBookingRepository_ListByOfficeAndDate(t *testing.T) {
	db := setupDB(t)
	office, room := seedOfficeAndRoom(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	sameDay := newBooking(room.ID, "u1", at(9, 0), at(10, 0))
	nextDay := newBooking(room.ID, "u1", at(9, 0).AddDate(0, 0, 1), at(10, 0).AddDate(0, 0, 1))
	cancelled := newBooking(room.ID, "u1", at(14, 0), at(15, 0))
	cancelled.State = domain.BookingCancelled
	for _, b := range []*domain.Booking{sameDay, nextDay, cancelled} {
		require.NoError(t, repo.Insert(ctx, b))
	}

	got, err := repo.ListByOfficeAndDate(ctx, office.ID, at(0, 0))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sameDay.ID, got[0].ID)
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db := setupDB(t)
	_, room := seedOfficeAndRoom(t, db)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	early := newBooking(room.ID, "u1", at(8, 0), at(9, 0))
	late := newBooking(room.ID, "u1", at(15, 0), at(16, 0))
	late.State = domain.BookingCancelled
	other := newBooking(room.ID, "u2", at(11, 0), at(12, 0))
	for _, b := range []*domain.Booking{early, late, other} {
		require.NoError(t, repo.Insert(ctx, b))
	}

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, late.ID, got[0].ID)
	assert.Equal(t, early.ID, got[1].ID)
	require.NotNil(t, got[0].Room)
	require.NotNil(t, got[0].Room.Office)
	assert.Equal(t, "Room A", got[0].Room.Name)
	assert.Equal(t, "HQ", got[0].Room.Office.Name)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
