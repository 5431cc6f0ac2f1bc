package models

import "time"

// Author is the post byline. Account management and sign-in live in the
// separate auth system; this table only carries what the blog needs.
type Author struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:VARCHAR(150);not null"`
	Email     string    `gorm:"type:VARCHAR(255);not null;uniqueIndex"`
	CreatedAt time.Time

	Posts []BlogPost `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
