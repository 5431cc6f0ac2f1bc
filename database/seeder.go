package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/models"
)

// Seed creates the default author. Posts require an author while account
// management lives in the external auth system, so one row must exist.
func Seed(db *gorm.DB) error {
	author := models.Author{
		Name:  "Editorial Team",
		Email: "editorial@satyarajasree.com",
	}
	if err := db.Where(models.Author{Email: author.Email}).FirstOrCreate(&author).Error; err != nil {
		log.Printf("Error seeding default author: %v", err)
		return err
	}
	return nil
}
