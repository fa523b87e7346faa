package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is the stored form of a survey question. Retired questions stay
// in the list with Deleted set so old responses keep resolving.
type Question struct {
	ID         int      `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Type       string   `json:"type"`
	Required   bool     `json:"required"`
	Deleted    bool     `json:"deleted"`
	Version    int      `json:"version"`
	OriginalID *int     `json:"original_id,omitempty"`
}

type Survey struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProgramID uint   `gorm:"index;not null" json:"program_id"`
	Type      string `gorm:"size:50;not null" json:"type"`

	Questions datatypes.JSONSlice[Question] `gorm:"type:jsonb;not null" json:"questions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Answer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

type SurveyResponse struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SurveyID uint `gorm:"index;not null" json:"survey_id"`
	UserID   uint `gorm:"index;not null" json:"user_id"`

	Answers datatypes.JSONSlice[Answer] `gorm:"type:jsonb;not null" json:"answers"`

	SubmittedAt time.Time `json:"submitted_at"`
}
