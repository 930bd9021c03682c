package routes

import (
	"net/http"

	"hairstyleportal-backend/config"
	"hairstyleportal-backend/controllers"
	"hairstyleportal-backend/models"
	"hairstyleportal-backend/services"
	"hairstyleportal-backend/storage"
	"hairstyleportal-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	styleController := controllers.NewStyleController(
		storage.New(cfg.DataFile("styles.json"), []models.Style{}))
	productController := controllers.NewProductController(
		storage.New(cfg.DataFile("products.json"), []models.Product{}))
	reviewController := controllers.NewReviewController(
		storage.New(cfg.DataFile("reviews.json"), []models.Review{}))
	bookingController := controllers.NewBookingController(
		storage.New(cfg.DataFile("booking-config.json"), models.DefaultBookingConfig()))
	inspirationController := controllers.NewInspirationController(
		services.NewInspirationService(cfg.PexelsAPIKey))

	r.GET("/health", controllers.HealthCheck)
	r.GET("/info", controllers.ServiceInfo(cfg.DataDir))

	api := r.Group("/api")
	api.Use(utils.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	{
		// Style catalog routes
		styles := api.Group("/styles")
		{
			styles.GET("", styleController.GetStyles)
			styles.POST("", styleController.CreateStyle)
			styles.PUT("/:id", styleController.UpdateStyle)
			styles.DELETE("/:id", styleController.DeleteStyle)
		}

		api.GET("/products", productController.GetProducts)

		// Review routes
		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewController.GetReviews)
			reviews.POST("", reviewController.CreateReview)
			reviews.GET("/stats", reviewController.GetReviewStats)
		}

		// Booking routes
		booking := api.Group("/booking")
		{
			booking.GET("/config", bookingController.GetConfig)
			booking.POST("/config", bookingController.SetConfig)
			booking.POST("/initiate", bookingController.InitiateBooking)
		}

		api.GET("/inspiration", inspirationController.GetInspiration)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
