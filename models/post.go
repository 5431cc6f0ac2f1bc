package models

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// BlogPost is publicly visible only while status is "published" and
// published_at is not in the future.
type BlogPost struct {
	ID      uint   `gorm:"primaryKey"`
	Title   string `gorm:"type:VARCHAR(255);not null"`
	Slug    string `gorm:"type:VARCHAR(255);not null;uniqueIndex"`
	Excerpt string `gorm:"type:VARCHAR(500);not null"`
	Content string `gorm:"type:TEXT;not null"`

	// FeaturedImage is the stored upload path, ImageURL an external link.
	// Either may be empty.
	FeaturedImage string `gorm:"type:VARCHAR(255)"`
	ImageURL      string `gorm:"type:VARCHAR(255)"`

	CategoryID *uint     `gorm:"index"`
	Category   *Category
	Tags       []Tag     `gorm:"many2many:blog_post_tags"`
	AuthorID   uint      `gorm:"not null;index"`
	Author     Author

	Status     string `gorm:"type:VARCHAR(10);not null;default:'draft';index:idx_blog_posts_window"`
	IsFeatured bool   `gorm:"not null;default:false;index"`
	ReadTime   int    `gorm:"not null;default:5"`
	Views      int64  `gorm:"not null;default:0"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time `gorm:"index:idx_blog_posts_window"`
}
