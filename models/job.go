package models

import "time"

type JobRequirement struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:VARCHAR(255);not null"`
	Department  string `gorm:"type:VARCHAR(255)"`
	Location    string `gorm:"type:VARCHAR(255)"`
	Description string `gorm:"type:TEXT;not null"`
	// Experience is the required years of experience.
	Experience int `gorm:"not null"`
	// Requirements holds rich HTML from the back-office editor.
	Requirements string    `gorm:"type:TEXT;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	PostedOn     time.Time `gorm:"autoCreateTime"`

	Applications []JobApplication `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

type JobApplication struct {
	ID          uint           `gorm:"primaryKey"`
	JobID       uint           `gorm:"not null;index"`
	Job         JobRequirement
	FullName    string         `gorm:"type:VARCHAR(255);not null"`
	Email       string         `gorm:"type:VARCHAR(255);not null"`
	Phone       string         `gorm:"type:VARCHAR(20)"`
	CoverLetter string         `gorm:"type:TEXT"`
	// Resume is the stored upload path, not the file itself.
	Resume    string    `gorm:"type:VARCHAR(255);not null"`
	AppliedOn time.Time `gorm:"autoCreateTime"`
}
