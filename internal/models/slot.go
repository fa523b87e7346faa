package models

import "time"

// Slot is a time-of-day range, "HH:MM" on both ends.
type Slot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConsultantSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConsultantID uint `gorm:"uniqueIndex:ux_consultant_slot_weekday;not null" json:"consultant_id"`
	SlotID       uint `gorm:"uniqueIndex:ux_consultant_slot_weekday;not null" json:"slot_id"`
	Weekday      int  `gorm:"uniqueIndex:ux_consultant_slot_weekday;not null" json:"weekday"`

	Slot Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot"`

	CreatedAt time.Time `json:"created_at"`
}
