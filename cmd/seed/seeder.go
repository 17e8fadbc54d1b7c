package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"meetspace/internal/domain"
	"meetspace/internal/modules/user"
	"meetspace/internal/repository"
)

type fixture struct {
	Offices []officeFixture `yaml:"offices"`
}

type officeFixture struct {
	Name    string        `yaml:"name"`
	Address string        `yaml:"address"`
	Rooms   []roomFixture `yaml:"rooms"`
}

type roomFixture struct {
	Name        string `yaml:"name"`
	Capacity    int    `yaml:"capacity"`
	Description string `yaml:"description"`
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, o := range fx.Offices {
		if strings.TrimSpace(o.Name) == "" {
			return nil, fmt.Errorf("office #%d: name is required", i+1)
		}
		for _, r := range o.Rooms {
			if strings.TrimSpace(r.Name) == "" || r.Capacity < 1 {
				return nil, fmt.Errorf("office %q: rooms need a name and capacity >= 1", o.Name)
			}
		}
	}
	return &fx, nil
}

type seeder struct {
	db    *gorm.DB
	users *repository.UserRepository
}

func newSeeder(db *gorm.DB) *seeder {
	return &seeder{db: db, users: repository.NewUserRepository(db)}
}

// ensureAdmin creates the bootstrap admin unless a user with that email
// already exists.
func (s *seeder) ensureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := user.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

// applyFixture inserts offices and rooms that are not present yet, matching
// offices by name and rooms by name within their office.
func (s *seeder) applyFixture(ctx context.Context, fx *fixture) (int, int, error) {
	var offices, rooms int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, of := range fx.Offices {
			var office domain.Office
			err := tx.Where("name = ?", of.Name).First(&office).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				office = domain.Office{
					ID:      uuid.NewString(),
					Name:    of.Name,
					Address: of.Address,
					State:   domain.ResourceActive,
				}
				if err := tx.Create(&office).Error; err != nil {
					return err
				}
				offices++
			case err != nil:
				return err
			}

			for _, rf := range of.Rooms {
				var n int64
				if err := tx.Model(&domain.Room{}).
					Where("office_id = ? AND name = ?", office.ID, rf.Name).
					Count(&n).Error; err != nil {
					return err
				}
				if n > 0 {
					continue
				}
				room := domain.Room{
					ID:          uuid.NewString(),
					OfficeID:    office.ID,
					Name:        rf.Name,
					Capacity:    rf.Capacity,
					Description: rf.Description,
					State:       domain.ResourceActive,
				}
				if err := tx.Create(&room).Error; err != nil {
					return err
				}
				rooms++
			}
		}
		return nil
	})
	return offices, rooms, err
}
