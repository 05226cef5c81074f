package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain/models"
	h "travel-backend/internal/http/handlers"
	"travel-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	adminOnly := []gin.HandlerFunc{middleware.RequireAuth(), middleware.RequireRoles(models.RoleAdmin)}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		// Packages: catalog is public, mutations are admin only.
		packages := api.Group("/packages")
		packages.GET("", h.GetPackages)
		packages.GET("/:id", h.GetPackage)
		packages.POST("", append(adminOnly, h.CreatePackage)...)
		packages.PUT("/:id", append(adminOnly, h.UpdatePackage)...)
		packages.DELETE("/:id", append(adminOnly, h.DeletePackage)...)

		// Destinations
		destinations := api.Group("/destinations")
		destinations.GET("", h.GetDestinations)
		destinations.GET("/:id", h.GetDestination)
		destinations.POST("", append(adminOnly, h.CreateDestination)...)

		// Bookings: everything here needs a logged-in user.
		bookings := api.Group("/bookings", middleware.RequireAuth())
		bookings.POST("", h.CreateBooking)
		bookings.GET("/my-bookings", h.GetMyBookings)
		bookings.GET("", middleware.RequireRoles(models.RoleAdmin), h.GetAllBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id/status", middleware.RequireRoles(models.RoleAdmin), h.UpdateBookingStatus)
		bookings.PUT("/:id/cancel", h.CancelBooking)
		bookings.POST("/:id/review", h.ReviewBooking)
		bookings.GET("/:id/invoice", h.GetBookingInvoice)

		// Users
		users := api.Group("/users")
		users.GET("", append(adminOnly, h.GetUsers)...)
		users.PUT("/profile", middleware.RequireAuth(), h.UpdateProfile)
	}

	return r
}
