package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ClientIPMiddleware(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupPhotoRoutes(api, c)
		setupVideoRoutes(api, c)
		setupBlogRoutes(api, c)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
		{
			setupAdminPhotoRoutes(admin, c)
			setupAdminVideoRoutes(admin, c)
			setupAdminBlogRoutes(admin, c)
			setupUploadRoutes(admin, c)
		}
	}

	return router
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
	}
}

func setupPhotoRoutes(api *gin.RouterGroup, c *container.Container) {
	photos := api.Group("/photos")
	{
		photos.GET("", c.PhotoHandler.ListPhotos)
		photos.GET("/:id", c.PhotoHandler.GetPhoto)
	}
}

func setupVideoRoutes(api *gin.RouterGroup, c *container.Container) {
	videos := api.Group("/videos")
	{
		videos.GET("", c.VideoHandler.ListVideos)
		videos.GET("/:id", c.VideoHandler.GetVideo)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blog := api.Group("/blog")
	{
		blog.GET("", c.PostHandler.ListPosts)
		blog.GET("/categories", c.PostHandler.ListCategories)
		blog.GET("/tags", c.PostHandler.ListTags)
		blog.GET("/slug/:slug", c.PostHandler.GetPostBySlug)
		blog.GET("/:id", c.PostHandler.GetPost)
	}
}

// ========================================
// ADMIN ROUTES (JWT + admin role)
// ========================================
func setupAdminPhotoRoutes(admin *gin.RouterGroup, c *container.Container) {
	photos := admin.Group("/photos")
	{
		photos.GET("", c.PhotoHandler.ListAllPhotos)
		photos.POST("", c.PhotoHandler.CreatePhoto)
		photos.GET("/:id", c.PhotoHandler.GetPhotoAdmin)
		photos.PUT("/:id", c.PhotoHandler.UpdatePhoto)
		photos.PATCH("/:id", c.PhotoHandler.UpdatePhoto)
		photos.DELETE("/:id", c.PhotoHandler.DeletePhoto)
	}
}

func setupAdminVideoRoutes(admin *gin.RouterGroup, c *container.Container) {
	videos := admin.Group("/videos")
	{
		videos.GET("", c.VideoHandler.ListAllVideos)
		videos.POST("", c.VideoHandler.CreateVideo)
		videos.GET("/:id", c.VideoHandler.GetVideoAdmin)
		videos.PUT("/:id", c.VideoHandler.UpdateVideo)
		videos.PATCH("/:id", c.VideoHandler.UpdateVideo)
		videos.DELETE("/:id", c.VideoHandler.DeleteVideo)
	}
}

func setupAdminBlogRoutes(admin *gin.RouterGroup, c *container.Container) {
	blog := admin.Group("/blog")
	{
		blog.GET("", c.PostHandler.ListAllPosts)
		blog.POST("", c.PostHandler.CreatePost)
		blog.GET("/:id", c.PostHandler.GetPostAdmin)
		blog.PUT("/:id", c.PostHandler.UpdatePost)
		blog.PATCH("/:id", c.PostHandler.UpdatePost)
		blog.DELETE("/:id", c.PostHandler.DeletePost)
	}
}

func setupUploadRoutes(admin *gin.RouterGroup, c *container.Container) {
	if c.MediaHandler == nil {
		log.Warn().Msg("Upload route disabled: no object storage")
		return
	}
	admin.POST("/uploads", c.MediaHandler.Upload)
}

// ========================================
// HEALTH
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services, healthy := appCtx.HealthStatus(ctx)

		status, statusCode := "ok", http.StatusOK
		if !healthy {
			status, statusCode = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"store":     appCtx.Config.App.StoreDriver,
			"services":  services,
		})
	}
}
