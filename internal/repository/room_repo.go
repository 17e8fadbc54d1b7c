package repository

import (
	"context"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

// ListActiveByOffice returns the active rooms of an office, optionally
// restricted to capacity >= minCapacity, ordered by name.
func (r *RoomRepository) ListActiveByOffice(ctx context.Context, officeID string, minCapacity *int) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).
		Where("office_id = ?", officeID).
		Where("state = ?", domain.ResourceActive)

	if minCapacity != nil {
		q = q.Where("capacity >= ?", *minCapacity)
	}

	var out []domain.Room
	if err := q.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return translate(r.db.WithContext(ctx).Create(room).Error)
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"name":        room.Name,
			"capacity":    room.Capacity,
			"description": room.Description,
			"state":       room.State,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
