package routes

import (
	"net/http"
	"time"

	"quadrafacil/handlers"
	"quadrafacil/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMatchRoutes registers the match-engine endpoints. The public
// listing and details stay open; everything that mutates state requires
// authentication.
func RegisterMatchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/matches")
	{
		api.GET("/public", hb.ListOpenMatches)
		api.GET("/:matchId", hb.GetMatchDetails)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		protected.POST("/open", hb.OpenMatch)
		protected.POST("/:matchId/join", hb.RequestJoinMatch)
		protected.POST("/:matchId/approve", hb.ApproveJoinRequest)
		protected.POST("/:matchId/reject", hb.RejectJoinRequest)
		protected.DELETE("/:matchId/leave", hb.LeaveMatch)
	}
}

// RegisterBookingRoutes registers the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateBooking)
		api.PATCH("/:bookingId/confirm", hb.ConfirmBooking)
		api.PATCH("/:bookingId/reject", hb.RejectBooking)
		api.DELETE("/:bookingId", hb.CancelBooking)
		api.GET("/owner", hb.ListOwnerBookings)
		api.GET("/athlete", hb.ListMyAgenda)
	}
}

// RegisterChatRoutes registers the chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chats")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", hb.ListMyChats)
		api.POST("/match/:matchId", hb.GetOrCreateMatchChat)
		api.POST("/:chatId/messages", hb.SendChatMessage)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm QuadraFacil"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimiter())

	RegisterHealthRoute(r)
	RegisterMatchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
}
