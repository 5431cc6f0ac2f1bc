package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/models"
)

const (
	defaultPageSize  = 9
	maxPageSize      = 100
	featuredPostsCap = 2
)

type BlogController struct {
	db *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{db: db}
}

// categoryItem and tagItem are the top-level list/detail shapes; the *Ref
// variants are the compact forms nested inside posts.

type categoryItem struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PostCount   int64     `json:"post_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type tagItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	PostCount int64     `json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
}

type categoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type tagRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type postListItem struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	FeaturedImage string       `json:"featured_image"`
	ImageURL      string       `json:"image_url"`
	Category      *categoryRef `json:"category"`
	Tags          []tagRef     `json:"tags"`
	AuthorName    string       `json:"author_name"`
	ReadTime      int          `json:"read_time"`
	Views         int64        `json:"views"`
	IsFeatured    bool         `json:"is_featured"`
	PublishedAt   *time.Time   `json:"published_at"`
	CreatedAt     time.Time    `json:"created_at"`
}

type postDetail struct {
	ID            uint         `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	Content       string       `json:"content"`
	FeaturedImage string       `json:"featured_image"`
	ImageURL      string       `json:"image_url"`
	Category      *categoryRef `json:"category"`
	Tags          []tagRef     `json:"tags"`
	AuthorName    string       `json:"author_name"`
	AuthorEmail   string       `json:"author_email"`
	ReadTime      int          `json:"read_time"`
	Views         int64        `json:"views"`
	IsFeatured    bool         `json:"is_featured"`
	PublishedAt   *time.Time   `json:"published_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// publishedScope is the public-visibility predicate: published status and
// a publish date that is not in the future.
func (bc *BlogController) publishedScope() *gorm.DB {
	return bc.db.Model(&models.BlogPost{}).
		Where("status = ? AND published_at <= ?", models.PostStatusPublished, time.Now())
}

// taggedPostIDs is a subquery over the tag join table. Filtering by
// "id IN (subquery)" instead of joining keeps result rows deduplicated.
func (bc *BlogController) taggedPostIDs(cond string, arg interface{}) *gorm.DB {
	return bc.db.Table("blog_post_tags").
		Select("blog_post_tags.blog_post_id").
		Joins("JOIN tags ON tags.id = blog_post_tags.tag_id").
		Where(cond, arg)
}

func (bc *BlogController) publishedPostCount(categoryID uint) (int64, error) {
	var n int64
	err := bc.db.Model(&models.BlogPost{}).
		Where("category_id = ? AND status = ?", categoryID, models.PostStatusPublished).
		Count(&n).Error
	return n, err
}

// Tag counts include drafts and archived posts, unlike category counts.
func (bc *BlogController) tagPostCount(tagID uint) (int64, error) {
	var n int64
	err := bc.db.Table("blog_post_tags").Where("tag_id = ?", tagID).Count(&n).Error
	return n, err
}

// GET /categories and GET /categories-with-counts
func (bc *BlogController) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := bc.db.Order("name asc").Find(&categories).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	items := make([]categoryItem, 0, len(categories))
	for _, category := range categories {
		n, err := bc.publishedPostCount(category.ID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to count posts")
			return
		}
		items = append(items, toCategoryItem(category, n))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": items})
}

// GET /categories/:slug
func (bc *BlogController) GetCategory(c *gin.Context) {
	var category models.Category
	if err := bc.db.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		respondError(c, http.StatusNotFound, "category not found")
		return
	}
	n, err := bc.publishedPostCount(category.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to count posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": toCategoryItem(category, n)})
}

// GET /tags
func (bc *BlogController) ListTags(c *gin.Context) {
	var tags []models.Tag
	if err := bc.db.Order("id asc").Find(&tags).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch tags")
		return
	}
	items := make([]tagItem, 0, len(tags))
	for _, tag := range tags {
		n, err := bc.tagPostCount(tag.ID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to count posts")
			return
		}
		items = append(items, toTagItem(tag, n))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": items})
}

// GET /tags/:slug
func (bc *BlogController) GetTag(c *gin.Context) {
	var tag models.Tag
	if err := bc.db.Where("slug = ?", c.Param("slug")).First(&tag).Error; err != nil {
		respondError(c, http.StatusNotFound, "tag not found")
		return
	}
	n, err := bc.tagPostCount(tag.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to count posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": toTagItem(tag, n)})
}

// GET /posts
// Query: ?category=<slug>&tag=<slug>&search=<q>&page=1&page_size=9
func (bc *BlogController) ListPosts(c *gin.Context) {
	page := 1
	pageSize := defaultPageSize
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > maxPageSize {
				n = maxPageSize
			}
			pageSize = n
		}
	}
	offset := (page - 1) * pageSize

	q := bc.publishedScope()
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("category_id IN (?)",
			bc.db.Model(&models.Category{}).Select("id").Where("slug = ?", category))
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("id IN (?)", bc.taggedPostIDs("tags.slug = ?", tag))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		p := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ? OR id IN (?))",
			p, p, p, bc.taggedPostIDs("LOWER(tags.name) LIKE ?", p))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to count posts")
		return
	}
	var posts []models.BlogPost
	err := q.Preload("Category").Preload("Tags").Preload("Author").
		Order("published_at desc, created_at desc").
		Offset(offset).Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch posts")
		return
	}

	items := make([]postListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, toPostListItem(post))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"data":        items,
		},
	})
}

// GET /posts/featured
func (bc *BlogController) FeaturedPosts(c *gin.Context) {
	var posts []models.BlogPost
	err := bc.publishedScope().
		Where("is_featured = ?", true).
		Preload("Category").Preload("Tags").Preload("Author").
		Order("published_at desc, created_at desc").
		Limit(featuredPostsCap).
		Find(&posts).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch posts")
		return
	}
	items := make([]postListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, toPostListItem(post))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": items})
}

// GET /posts/:slug
// Every successful fetch increments the view counter by one; only that
// column is written, so updated_at stays untouched. Concurrent fetches may
// lose an increment, which is acceptable for an advisory counter.
func (bc *BlogController) GetPost(c *gin.Context) {
	var post models.BlogPost
	err := bc.publishedScope().
		Preload("Category").Preload("Tags").Preload("Author").
		Where("slug = ?", c.Param("slug")).
		First(&post).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "post not found")
		return
	}

	if err := bc.db.Model(&post).UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update views")
		return
	}
	post.Views++

	c.JSON(http.StatusOK, gin.H{"success": true, "result": toPostDetail(post)})
}

func toCategoryItem(category models.Category, postCount int64) categoryItem {
	return categoryItem{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		PostCount:   postCount,
		CreatedAt:   category.CreatedAt,
	}
}

func toTagItem(tag models.Tag, postCount int64) tagItem {
	return tagItem{
		ID:        tag.ID,
		Name:      tag.Name,
		Slug:      tag.Slug,
		PostCount: postCount,
		CreatedAt: tag.CreatedAt,
	}
}

func toCategoryRef(category *models.Category) *categoryRef {
	if category == nil {
		return nil
	}
	return &categoryRef{ID: category.ID, Name: category.Name, Slug: category.Slug}
}

func toTagRefs(tags []models.Tag) []tagRef {
	refs := make([]tagRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, tagRef{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return refs
}

func toPostListItem(post models.BlogPost) postListItem {
	return postListItem{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		ImageURL:      post.ImageURL,
		Category:      toCategoryRef(post.Category),
		Tags:          toTagRefs(post.Tags),
		AuthorName:    post.Author.Name,
		ReadTime:      post.ReadTime,
		Views:         post.Views,
		IsFeatured:    post.IsFeatured,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
	}
}

func toPostDetail(post models.BlogPost) postDetail {
	return postDetail{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		FeaturedImage: post.FeaturedImage,
		ImageURL:      post.ImageURL,
		Category:      toCategoryRef(post.Category),
		Tags:          toTagRefs(post.Tags),
		AuthorName:    post.Author.Name,
		AuthorEmail:   post.Author.Email,
		ReadTime:      post.ReadTime,
		Views:         post.Views,
		IsFeatured:    post.IsFeatured,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}
