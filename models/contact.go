package models

import "time"

// Contact is immutable after creation.
type Contact struct {
	ID        uint      `gorm:"primaryKey"`
	Fullname  string    `gorm:"type:VARCHAR(100);not null"`
	Mobile    string    `gorm:"type:VARCHAR(15);not null"`
	Email     string    `gorm:"type:VARCHAR(255);not null"`
	Subject   string    `gorm:"type:VARCHAR(255);not null"`
	Message   string    `gorm:"type:TEXT;not null"`
	CreatedAt time.Time
}
