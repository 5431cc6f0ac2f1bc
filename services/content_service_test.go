package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/database"
	"github.com/satyarajasree/digital-marketing-backend/models"
	"github.com/satyarajasree/digital-marketing-backend/services"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func author(t *testing.T, db *gorm.DB) models.Author {
	t.Helper()
	var a models.Author
	require.NoError(t, db.First(&a).Error)
	return a
}

func TestCategorySlugDerivedOnce(t *testing.T) {
	db := setupDB(t)
	svc := services.NewContentService(db)

	category := &models.Category{Name: "Tech News"}
	require.NoError(t, svc.SaveCategory(category))
	assert.Equal(t, "tech-news", category.Slug)

	// Renaming never recomputes the slug.
	category.Name = "Technology News"
	require.NoError(t, svc.SaveCategory(category))
	assert.Equal(t, "tech-news", category.Slug)

	// A second category with a colliding name gets a suffixed slug.
	other := &models.Category{Name: "Tech News"}
	require.NoError(t, svc.SaveCategory(other))
	assert.Equal(t, "tech-news-2", other.Slug)

	third := &models.Category{Name: "Tech News"}
	require.NoError(t, svc.SaveCategory(third))
	assert.Equal(t, "tech-news-3", third.Slug)
}

func TestTagSlugDerivedOnce(t *testing.T) {
	db := setupDB(t)
	svc := services.NewContentService(db)

	tag := &models.Tag{Name: "Cloud Native"}
	require.NoError(t, svc.SaveTag(tag))
	assert.Equal(t, "cloud-native", tag.Slug)

	require.NoError(t, svc.SaveTag(tag))
	assert.Equal(t, "cloud-native", tag.Slug)
}

func TestPostPublishedAtSetOnFirstPublishOnly(t *testing.T) {
	db := setupDB(t)
	svc := services.NewContentService(db)
	a := author(t, db)

	post := &models.BlogPost{
		Title: "Hello World", Excerpt: "e", Content: "c",
		AuthorID: a.ID, Status: models.PostStatusDraft,
	}
	require.NoError(t, svc.SavePost(post))
	assert.Equal(t, "hello-world", post.Slug)
	assert.Nil(t, post.PublishedAt)

	post.Status = models.PostStatusPublished
	require.NoError(t, svc.SavePost(post))
	require.NotNil(t, post.PublishedAt)
	first := *post.PublishedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.SavePost(post))
	assert.True(t, post.PublishedAt.Equal(first), "published_at must not change on re-save")

	// Archiving and re-publishing keeps the original timestamp too.
	post.Status = models.PostStatusArchived
	require.NoError(t, svc.SavePost(post))
	post.Status = models.PostStatusPublished
	require.NoError(t, svc.SavePost(post))
	assert.True(t, post.PublishedAt.Equal(first))
}

func TestPostSlugSupplied(t *testing.T) {
	db := setupDB(t)
	svc := services.NewContentService(db)
	a := author(t, db)

	post := &models.BlogPost{
		Title: "Some Title", Slug: "custom-slug", Excerpt: "e", Content: "c",
		AuthorID: a.ID, Status: models.PostStatusDraft,
	}
	require.NoError(t, svc.SavePost(post))
	assert.Equal(t, "custom-slug", post.Slug)
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 5, services.EstimateReadTime(""))
	assert.Equal(t, 5, services.EstimateReadTime("<p></p>"))
	assert.Equal(t, 1, services.EstimateReadTime("<p>just a few words</p>"))

	long := "<p>" + strings.Repeat("word ", 450) + "</p>"
	assert.Equal(t, 3, services.EstimateReadTime(long))
}

func TestSavePostDefaultsReadTime(t *testing.T) {
	db := setupDB(t)
	svc := services.NewContentService(db)
	a := author(t, db)

	post := &models.BlogPost{
		Title: "Read Time", Excerpt: "e",
		Content:  "<p>" + strings.Repeat("word ", 450) + "</p>",
		AuthorID: a.ID, Status: models.PostStatusDraft,
	}
	require.NoError(t, svc.SavePost(post))
	assert.Equal(t, 3, post.ReadTime)

	supplied := &models.BlogPost{
		Title: "Supplied", Excerpt: "e", Content: "c",
		ReadTime: 12, AuthorID: a.ID, Status: models.PostStatusDraft,
	}
	require.NoError(t, svc.SavePost(supplied))
	assert.Equal(t, 12, supplied.ReadTime)
}
