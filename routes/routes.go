package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"seatadvisor/handlers"
)

// RegisterSeatRoutes registers seat pool endpoints.
func RegisterSeatRoutes(r *gin.Engine) {
	api := r.Group("/api/seats")
	{
		api.GET("", handlers.ListSeats)
		api.GET("/:id", handlers.GetSeat)
	}
}

// RegisterRecommendationRoutes registers the scoring endpoints.
func RegisterRecommendationRoutes(r *gin.Engine) {
	api := r.Group("/api/seat-recommendations")
	{
		api.POST("", handlers.Recommend)
		api.POST("/quick-filter", handlers.QuickFilter)
	}
}

// RegisterChatRoutes registers the conversational advisor endpoints.
func RegisterChatRoutes(r *gin.Engine) {
	r.POST("/api/chat", handlers.Chat)

	sessions := r.Group("/api/sessions")
	{
		sessions.GET("/count", handlers.SessionCount)
		sessions.DELETE("/:id", handlers.ClearSession)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.POST("", handlers.CreateBooking)
		api.GET("", handlers.ListBookings)
		api.DELETE("/:id", handlers.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SeatAdvisor"})
	})
}

// RegisterRoutes sets up CORS and all route groups.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSeatRoutes(r)
	RegisterRecommendationRoutes(r)
	RegisterChatRoutes(r)
	RegisterBookingRoutes(r)
	RegisterHealthRoute(r)
}
