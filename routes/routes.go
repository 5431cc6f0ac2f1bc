package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/satyarajasree/digital-marketing-backend/config"
	"github.com/satyarajasree/digital-marketing-backend/middleware"
	"github.com/satyarajasree/digital-marketing-backend/services"
	"github.com/satyarajasree/digital-marketing-backend/utils"
)

// SetupRouter creates the gin.Engine and registers all routes. The database
// comes from the global handle set during startup; the mailer is injected
// so tests can substitute a recording fake.
func SetupRouter(cfg *config.Config, mailer services.Mailer) *gin.Engine {
	db := utils.GetDB()
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	// Uploaded files (post images, résumés) are served from disk; only the
	// path is persisted.
	r.Static("/uploads", cfg.UploadDir)

	notifier := services.NewNotifier(mailer, cfg.ContactEmail)

	SetupBlogRoutes(r, db)
	SetupContactRoutes(r, db, notifier)
	SetupCareerRoutes(r, db, notifier, cfg)

	return r
}
