package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9_]+`)

// Slugify turns a human-readable name into a URL-safe slug: lowercase,
// with runs of anything outside [a-z0-9_] collapsed to single dashes.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	out := nonAlnum.ReplaceAllString(b.String(), "-")
	return strings.Trim(out, "-")
}

// UniqueSlug returns base, or base-2, base-3, ... until no other row of
// model carries the slug. excludeID skips the row being updated.
func UniqueSlug(db *gorm.DB, model interface{}, base string, excludeID uint) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		q := db.Model(model).Where("slug = ?", slug)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
