package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	h "github.com/babludoman333/rail-easy-seats/internal/http/handlers"
	"github.com/babludoman333/rail-easy-seats/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetAuthSecret([]byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Public catalog: stations, train search, seat maps
		api.GET("/stations", h.ListStations)
		trains := api.Group("/trains")
		trains.GET("/search", h.SearchTrains)
		trains.GET("/:id", h.GetTrain)
		trains.GET("/:id/coaches", h.ListCoaches)
		trains.GET("/:id/seats", h.SeatCatalogByQuery)
		trains.POST("/:id/coaches/:coach/seats", h.SeatCatalog)

		// Public booking lookups; a PNR is its own credential
		api.GET("/pnr/:pnr", h.PNRStatus)
		api.GET("/pnr/:pnr/ticket", h.DownloadTicket)

		// Support chat
		api.GET("/support/faqs", h.ListFAQs)
		api.POST("/support/ask", h.AskSupport)

		// Booking flow
		bookings := api.Group("/bookings")
		bookings.POST("/quote", h.QuoteBooking)
		bookings.POST("/hold", auth, h.HoldSeats)
		bookings.POST("/confirm", auth, h.ConfirmBooking)
		bookings.GET("/mine", auth, h.MyBookings)

		// Payment simulation
		api.POST("/payments/checkout", auth, h.Checkout)

		// Cab add-on, rider side
		cabs := api.Group("/cabs", auth)
		cabs.POST("", h.BookCab)
		cabs.GET("/mine", h.MyCabRides)

		// Driver dashboard
		driver := api.Group("/driver", auth)
		driver.GET("/profile", h.DriverProfile)
		driver.PUT("/vehicle", h.UpdateDriverVehicle)
		driver.PUT("/availability", h.SetDriverAvailability)
		driver.GET("/rides/open", h.OpenRides)
		driver.GET("/rides", h.DriverRides)
		driver.POST("/rides/:id/accept", h.AcceptRide)
		driver.POST("/rides/:id/complete", h.CompleteRide)

		// Admin catalog management
		admin := api.Group("/admin", auth, requireAdmin())
		admin.POST("/stations", h.CreateStation)
		admin.POST("/trains", h.CreateTrain)
		admin.POST("/trains/:id/seats", h.SeedSeats)
	}

	return r
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.UserRole(c) != "admin" {
			c.AbortWithStatusJSON(stdhttp.StatusForbidden, gin.H{
				"error": "admin access required",
				"code":  "forbidden",
			})
			return
		}
		c.Next()
	}
}
