package database

import (
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Author{},
		&models.Category{},
		&models.Tag{},
		&models.BlogPost{},
		&models.Contact{},
		&models.JobRequirement{},
		&models.JobApplication{},
		&models.OpenApplication{},
	)
}
