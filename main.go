package main

import (
	"log"
	"os"
	"strings"
	"time"

	"globaltrotter/database"
	"globaltrotter/handlers"
	"globaltrotter/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize database
	database.InitDB()

	// Initialize in-memory state
	services.InitCatalog()
	services.InitBookings()
	handlers.InitSessions()

	// Initialize AI service
	services.InitGemini()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (hosted platforms sit behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)

		// Catalog
		api.GET("/flights", handlers.ListFlightsHandler)
		api.GET("/hotels", handlers.ListHotelsHandler)
		api.GET("/cars", handlers.ListCarsHandler)
		api.GET("/explore", handlers.ListExploreHandler)
		api.GET("/items/:id", handlers.GetItemHandler)
		api.GET("/featured", handlers.FeaturedHandler)
		api.GET("/testimonials", handlers.TestimonialsHandler)
		api.GET("/tips", handlers.TravelTipsHandler)
		api.GET("/tags", handlers.TagsHandler)
		api.GET("/hero-videos", handlers.HeroVideosHandler)

		// AI search and trip planning
		api.POST("/search", handlers.SearchHandler)
		api.POST("/itinerary", handlers.ItineraryHandler)
		api.GET("/itinerary/:id", handlers.GetItineraryHandler)

		// Simulated bookings
		api.POST("/bookings", handlers.CreateBookingHandler)
		api.POST("/bookings/:id/confirm", handlers.ConfirmBookingHandler)
		api.GET("/bookings/:id", handlers.GetBookingHandler)
		api.DELETE("/bookings/:id", handlers.CloseBookingHandler)
		api.GET("/bookings/:id/voucher", handlers.VoucherHandler)

		// Newsletter popup
		api.GET("/newsletter/status", handlers.NewsletterStatusHandler)
		api.POST("/newsletter/dismiss", handlers.NewsletterDismissHandler)
		api.POST("/newsletter/subscribe", handlers.NewsletterSubscribeHandler)

		// Chat widget
		api.POST("/assistant", handlers.AssistantHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Global Trotter backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
