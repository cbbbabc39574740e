package routes

import (
	"net/http"
	"time"

	"autohub/handlers"
	"autohub/middleware"
	"autohub/models"
	"autohub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-up, sign-in and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
		if hb.EnableLoginAs {
			api.POST("/login-as", hb.Auth.LoginAsHandler)
		}
	}
}

// RegisterProviderRoutes registers the public provider directory.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Provider.ListProvidersHandler)
		api.GET("/:id", hb.Provider.GetProviderByIDHandler)
		api.GET("/:id/reviews", hb.Provider.ListReviewsHandler)
		api.POST("/:id/reviews", hb.Provider.SubmitReviewHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints. Anonymous callers may book and list.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.SessionAuthMiddleware(hb.UserService, true))
		bookingGroup.GET("", hb.Booking.ListBookingsHandler)
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		bookingGroup.POST("/:id/reschedule", hb.Booking.RescheduleBookingHandler)
	}
}

// RegisterPaymentRoutes registers checkout and invoice endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.UserService, false))
		api.GET("", hb.Payment.ListPaymentsHandler)
		api.POST("", hb.Payment.CheckoutHandler)
		api.POST("/callback", hb.Payment.CallbackHandler)
		api.GET("/:id/invoice", hb.Payment.InvoiceHandler)
	}
}

// RegisterNotificationRoutes registers the in-app feed and channel preferences.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", hb.Notification.ListHandler)
		api.POST("/read-all", hb.Notification.MarkAllReadHandler)
		api.GET("/prefs", hb.Notification.GetPrefsHandler)
		api.POST("/prefs", hb.Notification.TogglePrefHandler)
		api.POST("/test", middleware.SessionAuthMiddleware(hb.UserService, false), hb.Notification.SendTestHandler)
	}
}

// RegisterVehicleRoutes registers the signed-in user's garage.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.UserService, false))
		api.GET("", hb.Vehicle.ListHandler)
		api.POST("", hb.Vehicle.AddHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.SessionAuthMiddleware(hb.UserService, false), middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/stats", hb.Admin.StatsHandler)
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.POST("/users/:id/toggle", hb.Admin.ToggleUserHandler)
		adminGroup.GET("/providers", hb.Admin.GetAllProvidersHandler)
		adminGroup.POST("/providers/:id/approval", hb.Admin.SetApprovalHandler)
		adminGroup.GET("/reviews/pending", hb.Admin.PendingReviewsHandler)
		adminGroup.POST("/reviews/:id/moderate", hb.Admin.ModerateReviewHandler)
		adminGroup.POST("/payments/:id/refund", hb.Payment.RefundHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the last store probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Store {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": http.StatusText(code), "store": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
