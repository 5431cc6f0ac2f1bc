package services

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/models"
	"github.com/satyarajasree/digital-marketing-backend/utils"
)

const (
	defaultReadTime = 5
	wordsPerMinute  = 200
)

// ContentService owns the write path for blog content. Normalization
// (slug assignment, published_at, read_time) happens here explicitly, never
// in model hooks, so the write path stays auditable.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// SaveCategory computes the slug from the name once, on first save with an
// empty slug. Re-saving never recomputes it.
func (s *ContentService) SaveCategory(category *models.Category) error {
	if category.Slug == "" {
		slug, err := utils.UniqueSlug(s.db, &models.Category{}, slugBase(category.Name, "category"), category.ID)
		if err != nil {
			return err
		}
		category.Slug = slug
	}
	return s.db.Save(category).Error
}

func (s *ContentService) SaveTag(tag *models.Tag) error {
	if tag.Slug == "" {
		slug, err := utils.UniqueSlug(s.db, &models.Tag{}, slugBase(tag.Name, "tag"), tag.ID)
		if err != nil {
			return err
		}
		tag.Slug = slug
	}
	return s.db.Save(tag).Error
}

// SavePost normalizes and persists a post:
//   - slug derived from the title once, when empty
//   - published_at stamped on the first transition to "published" and
//     never touched again
//   - read_time estimated from the content when not supplied
func (s *ContentService) SavePost(post *models.BlogPost) error {
	if post.Slug == "" {
		slug, err := utils.UniqueSlug(s.db, &models.BlogPost{}, slugBase(post.Title, "post"), post.ID)
		if err != nil {
			return err
		}
		post.Slug = slug
	}
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if post.ReadTime <= 0 {
		post.ReadTime = EstimateReadTime(post.Content)
	}
	return s.db.Save(post).Error
}

// EstimateReadTime strips markup from rich HTML content and estimates
// reading minutes at 200 wpm, minimum 1. Empty or unparseable content
// falls back to the default of 5.
func EstimateReadTime(htmlContent string) int {
	if strings.TrimSpace(htmlContent) == "" {
		return defaultReadTime
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return defaultReadTime
	}
	words := len(strings.Fields(doc.Text()))
	if words == 0 {
		return defaultReadTime
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func slugBase(name, fallback string) string {
	base := utils.Slugify(name)
	if base == "" {
		return fallback
	}
	return base
}
