package controllers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "result": nil, "error": msg})
}

func respondValidationErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"result":  nil,
		"error":   "validation failed",
		"errors":  errs,
	})
}

// fieldErrors flattens a binding error into a field→message map keyed by
// the snake_case payload field names.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[snakeCase(fe.Field())] = messageFor(fe)
		}
		return out
	}
	out["body"] = "invalid request"
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return "value is too long"
	case "min":
		return "value is too short"
	default:
		return "invalid value"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
