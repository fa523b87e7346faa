package models

import "time"

type Consultant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user"`

	MeetingLink   string `gorm:"size:255" json:"meeting_link"`
	Certification string `gorm:"size:255" json:"certification"`
	Speciality    string `gorm:"size:100" json:"speciality"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
