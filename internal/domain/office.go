package domain

import "time"

type Office struct {
	ID        string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name      string        `json:"name" gorm:"size:200;not null"`
	Address   string        `json:"address" gorm:"size:500;not null"`
	State     ResourceState `json:"state" gorm:"size:16;not null;default:active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:OfficeID"`
}

func (o *Office) IsActive() bool { return o.State == ResourceActive }

func (o *Office) Deactivate() { o.State = ResourceInactive }

// OfficeAssignment links an office manager to an office they curate.
type OfficeAssignment struct {
	OfficeID  string    `json:"office_id" gorm:"type:varchar(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
