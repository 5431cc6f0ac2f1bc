package models

import "time"

type Tag struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:VARCHAR(50);not null"`
	Slug      string    `gorm:"type:VARCHAR(50);not null;uniqueIndex"`
	CreatedAt time.Time

	Posts []BlogPost `gorm:"many2many:blog_post_tags"`
}
