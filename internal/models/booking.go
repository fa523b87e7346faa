package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConsultantID uint `gorm:"index;not null" json:"consultant_id"`
	MemberID     uint `gorm:"index;not null" json:"member_id"`
	SlotID       uint `gorm:"not null" json:"slot_id"`

	// Date is the calendar day, "YYYY-MM-DD".
	Date   string `gorm:"size:10;not null" json:"date"`
	Status string `gorm:"size:32;not null;default:'PendingConfirmation'" json:"status"`

	Notes       string `gorm:"size:255" json:"notes"`
	MeetingLink string `gorm:"size:255" json:"meeting_link"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
