package models

import "time"

const (
	RoleMember     = "member"
	RoleConsultant = "consultant"
	RoleAdmin      = "admin"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'member'" json:"role"`
	Status       string `gorm:"size:20;default:'active'" json:"status"`

	Profile *Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
