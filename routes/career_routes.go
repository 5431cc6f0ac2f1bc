package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/config"
	"github.com/satyarajasree/digital-marketing-backend/controllers"
	"github.com/satyarajasree/digital-marketing-backend/middleware"
	"github.com/satyarajasree/digital-marketing-backend/services"
)

func SetupCareerRoutes(r *gin.Engine, db *gorm.DB, notifier *services.Notifier, cfg *config.Config) {
	careerController := controllers.NewCareerController(db, notifier, cfg.UploadDir)

	r.GET("/jobs", careerController.ListJobs)
	r.GET("/jobs/:id", careerController.GetJob)
	r.POST("/apply", middleware.SubmissionThrottle(), careerController.Apply)
	r.POST("/open-application", middleware.SubmissionThrottle(), careerController.SubmitOpenApplication)
}
