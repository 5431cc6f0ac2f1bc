package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/controllers"
	"github.com/satyarajasree/digital-marketing-backend/middleware"
	"github.com/satyarajasree/digital-marketing-backend/services"
)

func SetupContactRoutes(r *gin.Engine, db *gorm.DB, notifier *services.Notifier) {
	contactController := controllers.NewContactController(db, notifier)

	r.POST("/contact", middleware.SubmissionThrottle(), contactController.Create)
}
