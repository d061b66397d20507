package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/board"
	"github.com/yeremiapane/laundry-app/config"
	"github.com/yeremiapane/laundry-app/controllers"
	"github.com/yeremiapane/laundry-app/metrics"
	"github.com/yeremiapane/laundry-app/middlewares"
	"github.com/yeremiapane/laundry-app/models"
	"github.com/yeremiapane/laundry-app/services"
	"gorm.io/gorm"
)

// SetupRouter wires services, controllers and middleware onto a gin engine.
// A nil cfg falls back to config.Default and a nil hub gets a fresh one.
func SetupRouter(db *gorm.DB, cfg *config.Config, hub *board.Hub) *gin.Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if hub == nil {
		hub = board.NewHub()
	}

	users := services.NewUserService(db, cfg.Booking.StaffDefaultPass)
	bookings := services.NewBookingService(db, users, hub, services.BookingOptions{
		PlaceholderPassword: cfg.Booking.PlaceholderPassword,
		StrictStatus:        cfg.Booking.StrictStatus,
		Transactional:       cfg.Booking.TransactionalCreate,
	})
	catalog := services.NewCatalogService(db)
	dashboard := services.NewDashboardService(db)

	userCtrl := controllers.NewUserController(users)
	bookingCtrl := controllers.NewBookingController(bookings)
	catalogCtrl := controllers.NewCatalogController(catalog)
	dashboardCtrl := controllers.NewDashboardController(dashboard)
	boardCtrl := controllers.NewBoardController(hub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.Instrument())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.App.CORSOrigin))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	limiter := middlewares.NewRateLimiter(cfg.Auth.RatePerMinute)
	authLimited := r.Group("/")
	authLimited.Use(limiter.RateLimit())
	{
		authLimited.POST("/register", userCtrl.Register)
		authLimited.POST("/login", userCtrl.Login)
		authLimited.POST("/owner/login", userCtrl.OwnerLogin)
	}

	r.GET("/services", catalogCtrl.GetServices)

	owner := r.Group("/owner")
	if cfg.Auth.RequireOwnerToken {
		owner.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleOwner, models.RoleAdmin))
	}
	{
		owner.GET("/stats", dashboardCtrl.GetOwnerStats)
		owner.GET("/reports", dashboardCtrl.GetReports)
		owner.GET("/reports/export", dashboardCtrl.ExportReports)

		owner.GET("/employees", userCtrl.GetEmployees)
		owner.POST("/employees", userCtrl.CreateEmployee)
		owner.DELETE("/employees/:id", userCtrl.DeleteEmployee)

		owner.POST("/services", catalogCtrl.CreateService)
		owner.PUT("/services/:id", catalogCtrl.UpdateService)
		owner.DELETE("/services/:id", catalogCtrl.DeleteService)
	}

	booking := r.Group("/bookings")
	booking.Use(middlewares.OptionalAuth())
	{
		booking.POST("", bookingCtrl.CreateBooking)
		booking.GET("", bookingCtrl.GetBookings)
		booking.GET("/:id/status", bookingCtrl.GetBookingStatus)
		booking.DELETE("/:id", bookingCtrl.DeleteBooking)
		booking.POST("/:id/update-status", bookingCtrl.UpdateStatus)
	}

	staff := r.Group("/staff")
	{
		staff.GET("/bookings", bookingCtrl.GetStaffBookings)
		staff.GET("/order-counts", dashboardCtrl.GetOrderCounts)
		staff.POST("/bookings/:id/update-status", bookingCtrl.StaffUpdateStatus)
		staff.GET("/ws", middlewares.WebSocketAuthMiddleware(), boardCtrl.HandleWebSocket)
	}

	return r
}
