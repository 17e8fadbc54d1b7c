package repository

import (
	"context"
	"time"

	"meetspace/internal/domain"
	"meetspace/internal/pkg/interval"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db    *gorm.DB
	locks *roomLocks
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db, locks: newRoomLocks()}
}

// HasConflicting reports whether an active booking of roomID overlaps
// [start, end).
func (r *BookingRepository) HasConflicting(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	return hasConflicting(r.db.WithContext(ctx), roomID, start, end)
}

func hasConflicting(db *gorm.DB, roomID string, start, end time.Time) (bool, error) {
	var cnt int64
	err := db.
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("state = ?", domain.BookingActive).
		Where("start_utc < ? AND end_utc > ?", end, start).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

// TryInsertIfNoConflict runs the overlap check and the insert as one unit.
// The room mutex serialises callers in this process, the row lock on the
// room serialises them across processes, and on PostgreSQL the
// bookings_no_overlap constraint rejects whatever slips past both.
func (r *BookingRepository) TryInsertIfNoConflict(ctx context.Context, b *domain.Booking) error {
	unlock := r.locks.lock(b.RoomID)
	defer unlock()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", b.RoomID).
			First(&room).Error; err != nil {
			return err
		}

		conflict, err := hasConflicting(tx, b.RoomID, b.StartUTC, b.EndUTC)
		if err != nil {
			return err
		}
		if conflict {
			return ErrConflict
		}

		return tx.Create(b).Error
	})
	return translate(err)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title": b.Title,
			"state": b.State,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns every booking of the user, cancelled ones included,
// with room and office preloaded, newest start first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Room.Office").
		Where("owner_user_id = ?", userID).
		Order("start_utc DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByOfficeAndDate returns active bookings of the office's rooms that
// overlap the UTC day of date.
func (r *BookingRepository) ListByOfficeAndDate(ctx context.Context, officeID string, date time.Time) ([]domain.Booking, error) {
	dayStart, dayEnd := interval.DayBounds(date)

	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("rooms.office_id = ?", officeID).
		Where("bookings.state = ?", domain.BookingActive).
		Where("bookings.start_utc < ? AND bookings.end_utc > ?", dayEnd, dayStart).
		Order("bookings.start_utc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
