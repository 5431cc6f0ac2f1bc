package models

import "time"

// OpenApplication is a job application not tied to any posted requirement.
type OpenApplication struct {
	ID              uint      `gorm:"primaryKey"`
	FullName        string    `gorm:"type:VARCHAR(255);not null"`
	Email           string    `gorm:"type:VARCHAR(255);not null"`
	Phone           string    `gorm:"type:VARCHAR(20)"`
	DesiredPosition string    `gorm:"type:VARCHAR(255)"`
	CoverLetter     string    `gorm:"type:TEXT"`
	Resume          string    `gorm:"type:VARCHAR(255);not null"`
	SubmittedOn     time.Time `gorm:"autoCreateTime"`
}
