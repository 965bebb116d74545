package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// registerValidations adds the "bookdate" rule used by the booking payload:
// a date-only string or an RFC3339 timestamp.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
			_, ok := controllers.ParseBookingDate(fl.Field().String())
			return ok
		})
	}
}

// SetupRouter wires the controllers onto the API surface.
func SetupRouter(
	rc *controllers.RoomController,
	uc *controllers.UserController,
	bc *controllers.BookingController,
	auth *services.AuthService,
) *gin.Engine {
	registerValidations()

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must stay registered before /:id
			rooms.GET("/featured", rc.GetFeaturedRooms)

			rooms.GET("/:id", rc.GetRoomByID)
		}

		users := api.Group("/users")
		{
			users.POST("/register", uc.Register)
			users.POST("/login", uc.Login)

			users.GET("/me", middleware.RequireAuth(auth), uc.Me)
			users.PUT("/profile", middleware.RequireAuth(auth), uc.UpdateProfile)
			users.GET("/dashboard", middleware.RequireAuth(auth), uc.GetDashboard)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth(auth))
		{
			bookings.GET("/my-bookings", bc.GetMyBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.DELETE("/:id", bc.CancelBooking)
		}
	}

	return r
}
