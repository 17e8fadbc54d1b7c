package domain

import "time"

// RefreshToken stores refresh tokens for users.
//
// Only the SHA-256 hash of the raw token is persisted. Refreshing rotates the
// token: the presented one is revoked and replaced.
type RefreshToken struct {
	ID string `json:"id" gorm:"type:varchar(36);primaryKey"`

	UserID string `json:"user_id" gorm:"type:varchar(36);index;not null"`

	TokenHash string `json:"-" gorm:"size:64;uniqueIndex;not null"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`

	ReplacedByID *string `json:"replaced_by_id" gorm:"type:varchar(36)"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
