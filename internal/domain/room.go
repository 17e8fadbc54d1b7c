package domain

import "time"

// ResourceState is the lifecycle of offices and rooms. Deactivation is a soft
// delete: rows are kept so historical bookings still resolve.
type ResourceState string

const (
	ResourceActive   ResourceState = "active"
	ResourceInactive ResourceState = "inactive"
)

type Room struct {
	ID          string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	OfficeID    string        `json:"office_id" gorm:"type:varchar(36);not null;index"`
	Name        string        `json:"name" gorm:"size:200;not null"`
	Capacity    int           `json:"capacity" gorm:"not null"`
	Description string        `json:"description,omitempty" gorm:"size:1000"`
	State       ResourceState `json:"state" gorm:"size:16;not null;default:active"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Office *Office `json:"office,omitempty" gorm:"foreignKey:OfficeID"`
}

func (r *Room) IsActive() bool { return r.State == ResourceActive }

func (r *Room) Deactivate() { r.State = ResourceInactive }
