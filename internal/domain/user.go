package domain

import "time"

type UserRole string

const (
	RoleEmployee      UserRole = "Employee"
	RoleOfficeManager UserRole = "OfficeManager"
	RoleAdmin         UserRole = "Admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleOfficeManager, RoleAdmin:
		return true
	}
	return false
}

// IsElevated reports manager-or-admin privilege.
func (r UserRole) IsElevated() bool {
	return r == RoleOfficeManager || r == RoleAdmin
}

type User struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email        string    `json:"email" gorm:"size:256;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	Role         UserRole  `json:"role" gorm:"size:32;not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
