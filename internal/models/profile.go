package models

import "time"

type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	FullName  string `gorm:"size:100" json:"full_name"`
	Phone     string `gorm:"size:20" json:"phone"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
