package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-dashboard/controllers"
	"hotel-dashboard/middleware"
)

// SetupRouter wires the controllers onto the dashboard's HTTP surface. Every
// /api route sits behind the session middleware; health and metrics do not.
func SetupRouter(
	bc *controllers.BookingController,
	sc *controllers.StatsController,
	rc *controllers.ResourceController,
	corsOrigins []string,
	tokenSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.Metrics())

	origins := corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", middleware.RequireSession(tokenSecret))
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.GET("/:id/actions", bc.GetActions)
			bookings.POST("/:id/confirm", bc.ConfirmBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.POST("/:id/complete", bc.CompleteBooking)
		}

		api.GET("/rooms", rc.GetRooms)
		api.GET("/payments", rc.GetPayments)
		api.GET("/reviews", rc.GetReviews)

		api.GET("/stats", sc.GetStats)
	}

	return r
}
