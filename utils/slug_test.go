package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satyarajasree/digital-marketing-backend/utils"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Tech News":          "tech-news",
		"  Hello   World  ":  "hello-world",
		"Go 1.21 Released!":  "go-121-released",
		"already-slugged":    "already-slugged",
		"UPPER_case mix":     "upper_case-mix",
		"snake_case_name":    "snake_case_name",
		"!!!":                "",
		"":                   "",
		"C++ & Go: a review": "c-go-a-review",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.Slugify(in), "Slugify(%q)", in)
	}
}
