package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:VARCHAR(100);not null"`
	Slug        string    `gorm:"type:VARCHAR(100);not null;uniqueIndex"`
	Description string    `gorm:"type:TEXT"`
	CreatedAt   time.Time

	// Deleting a category keeps its posts and clears their category_id.
	Posts []BlogPost `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
