package handlers

import (
	"autohub/config"
	"autohub/database"
	"autohub/database/repository"
	"autohub/models"
	"autohub/services/admin"
	"autohub/services/booking"
	"autohub/services/notification"
	"autohub/services/payment"
	"autohub/services/provider"
	"autohub/services/review"
	"autohub/services/user"
	"autohub/services/vehicle"
)

// HandlerBundle groups all endpoint handlers and the services behind them.
type HandlerBundle struct {
	UserService         user.UserService
	NotificationService notification.NotificationService

	Auth          *AuthHandler
	Provider      *ProviderHandler
	Booking       *BookingHandler
	Payment       *PaymentHandler
	Notification  *NotificationHandler
	Vehicle       *VehicleHandler
	Admin         *AdminHandler
	EnableLoginAs bool
}

// NewHandlerBundle wires repositories, services and handlers over one store.
func NewHandlerBundle(store database.Store, cfg config.Config) *HandlerBundle {
	repos := repository.New(store)
	devMode := cfg.Env != "production"

	userService := user.NewUserService(repos, cfg.SessionTTL, devMode)
	providerService := provider.NewDefaultProviderService(repos.Providers)
	reviewService := review.NewDefaultReviewService(repos.Reviews, providerService)
	bookingService := booking.NewDefaultBookingService(repos.Bookings, providerService, cfg.RescheduleOffset)

	var card payment.CardGateway
	if gw := payment.NewStripeGateway(cfg.StripeKey); gw != nil {
		card = gw
	}
	paymentService := payment.NewDefaultPaymentService(repos.Payments, providerService, cfg.RazorpayKeyID, card)

	senders := map[models.NotificationChannel]notification.Sender{}
	if mail := notification.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass); mail != nil {
		senders[models.ChannelEmail] = mail
	}
	notificationService := notification.NewDefaultNotificationService(repos.Notifications, senders)
	vehicleService := vehicle.NewDefaultVehicleService(repos.Vehicles)
	adminService := admin.NewDefaultAdminService(repos)

	return &HandlerBundle{
		UserService:         userService,
		NotificationService: notificationService,

		Auth:          NewAuthHandler(userService),
		Provider:      NewProviderHandler(providerService, reviewService),
		Booking:       NewBookingHandler(bookingService),
		Payment:       NewPaymentHandler(paymentService),
		Notification:  NewNotificationHandler(notificationService),
		Vehicle:       NewVehicleHandler(vehicleService),
		Admin:         NewAdminHandler(adminService, userService, providerService, reviewService),
		EnableLoginAs: devMode,
	}
}
