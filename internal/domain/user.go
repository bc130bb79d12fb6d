package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account. Deleting a user cascades to their
// questions and answers.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:255;not null;uniqueIndex"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         Role      `gorm:"size:16;not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Questions []Question `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Answers   []Answer   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
