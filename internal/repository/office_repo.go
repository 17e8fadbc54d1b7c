package repository

import (
	"context"

	"meetspace/internal/domain"

	"gorm.io/gorm"
)

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

func (r *OfficeRepository) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	var o domain.Office
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

// List returns all offices with their rooms.
func (r *OfficeRepository) List(ctx context.Context) ([]domain.Office, error) {
	var out []domain.Office
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Order("name").
		Find(&out).Error
	return out, err
}

// ListActive returns active offices with their active rooms.
func (r *OfficeRepository) ListActive(ctx context.Context) ([]domain.Office, error) {
	var out []domain.Office
	err := r.db.WithContext(ctx).
		Preload("Rooms", "state = ?", domain.ResourceActive).
		Where("state = ?", domain.ResourceActive).
		Order("name").
		Find(&out).Error
	return out, err
}

// ListByAssignedUser returns the offices a manager is assigned to.
func (r *OfficeRepository) ListByAssignedUser(ctx context.Context, userID string) ([]domain.Office, error) {
	var out []domain.Office
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Joins("JOIN office_assignments oa ON oa.office_id = offices.id").
		Where("oa.user_id = ?", userID).
		Order("offices.name").
		Find(&out).Error
	return out, err
}

// Create inserts the office and any rooms attached to it in one transaction.
func (r *OfficeRepository) Create(ctx context.Context, o *domain.Office) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	}))
}

func (r *OfficeRepository) Update(ctx context.Context, o *domain.Office) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Office{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"name":    o.Name,
			"address": o.Address,
			"state":   o.State,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OfficeRepository) IsAssigned(ctx context.Context, officeID, userID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.OfficeAssignment{}).
		Where("office_id = ? AND user_id = ?", officeID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *OfficeRepository) AddAssignment(ctx context.Context, a *domain.OfficeAssignment) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *OfficeRepository) RemoveAssignment(ctx context.Context, officeID, userID string) error {
	tx := r.db.WithContext(ctx).
		Where("office_id = ? AND user_id = ?", officeID, userID).
		Delete(&domain.OfficeAssignment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
