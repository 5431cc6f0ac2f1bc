package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/satyarajasree/digital-marketing-backend/controllers"
)

func SetupBlogRoutes(r *gin.Engine, db *gorm.DB) {
	blogController := controllers.NewBlogController(db)

	r.GET("/categories", blogController.ListCategories)
	r.GET("/categories/:slug", blogController.GetCategory)
	r.GET("/categories-with-counts", blogController.ListCategories)
	r.GET("/tags", blogController.ListTags)
	r.GET("/tags/:slug", blogController.GetTag)
	r.GET("/posts", blogController.ListPosts)
	r.GET("/posts/featured", blogController.FeaturedPosts)
	r.GET("/posts/:slug", blogController.GetPost)
}
