package routes

import (
	"time"

	"hashly/handlers"
	"hashly/middleware"
	"hashly/templates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(templates.Parse())

	// Health check endpoint for deployment probes
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded post images
	router.Static("/static", "./static")

	// Public routes (no session required)
	router.GET("/", handlers.Index)
	router.GET("/about", handlers.About)
	router.GET("/contact", handlers.Contact)
	router.POST("/login", middleware.RateLimitMiddleware(60, time.Minute), handlers.Login)
	router.GET("/logout", handlers.Logout)

	// Content routes require a session
	protected := router.Group("/")
	protected.Use(middleware.SessionAuthMiddleware())

	protected.GET("/home", handlers.Home)
	protected.GET("/our", handlers.OurPosts)
	protected.GET("/inbox", handlers.Inbox)

	protected.GET("/post", handlers.NewPostForm)
	protected.POST("/post", handlers.CreatePost)
	protected.POST("/delete/:postID", handlers.DeletePost)

	protected.GET("/trending", handlers.Trending)
	protected.GET("/hashtag/:tag", handlers.HashtagPosts)

	protected.POST("/comment/:postID", handlers.AddComment)
	protected.POST("/like/:postID", handlers.AddLike)

	return router
}
