package main

import (
	"log"
	"net/http"
	"os"

	"confhub-api/config"
	"confhub-api/handlers"
	"confhub-api/middleware"
	"confhub-api/repositories"
	"confhub-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	conferenceRepo := repositories.NewConferenceRepository(db)
	paperRepo := repositories.NewPaperRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	conferenceService := services.NewConferenceService(conferenceRepo, userRepo, paperRepo)
	paperService := services.NewPaperService(paperRepo, reviewRepo, conferenceRepo, nil)
	reviewService := services.NewReviewService(reviewRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	conferenceHandler := handlers.NewConferenceHandler(conferenceService)
	paperHandler := handlers.NewPaperHandler(paperService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Users
			users := protected.Group("/users")
			{
				users.GET("", userHandler.GetUsers)
				users.GET("/:id", userHandler.GetUser)
			}

			// Conferences
			conferences := protected.Group("/conferences")
			{
				conferences.POST("", middleware.RequireRole("admin"), conferenceHandler.CreateConference)
				conferences.GET("", conferenceHandler.GetConferences)
				conferences.GET("/:id", conferenceHandler.GetConference)
				conferences.PUT("/:id", middleware.RequireRole("admin"), conferenceHandler.UpdateConference)
				conferences.DELETE("/:id", middleware.RequireRole("admin"), conferenceHandler.DeleteConference)
				conferences.POST("/:id/reviewers", middleware.RequireRole("admin"), conferenceHandler.AssignReviewers)
				conferences.GET("/:id/papers", conferenceHandler.GetConferencePapers)
			}

			// Papers
			papers := protected.Group("/papers")
			{
				papers.POST("", paperHandler.SubmitPaper)
				papers.GET("", paperHandler.GetPapers)
				papers.GET("/:id", paperHandler.GetPaper)
				papers.DELETE("/:id", paperHandler.DeletePaper)
				papers.PUT("/:id/version", paperHandler.UploadNewVersion)
				papers.POST("/:id/reviews", paperHandler.SubmitReview)
			}

			// Reviews
			reviews := protected.Group("/reviews")
			{
				reviews.GET("", reviewHandler.GetReviews)
				reviews.GET("/:id", reviewHandler.GetReview)
				reviews.PUT("/:id", reviewHandler.UpdateReview)
				reviews.DELETE("/:id", reviewHandler.DeleteReview)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
