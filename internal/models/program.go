package models

import "time"

type Program struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:150;uniqueIndex;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
