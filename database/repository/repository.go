package repository

import (
	"autohub/database"
	bookingRepo "autohub/database/repository/booking"
	notificationRepo "autohub/database/repository/notification"
	paymentRepo "autohub/database/repository/payment"
	providerRepo "autohub/database/repository/provider"
	reviewRepo "autohub/database/repository/review"
	sessionRepo "autohub/database/repository/session"
	userRepo "autohub/database/repository/user"
	vehicleRepo "autohub/database/repository/vehicle"
)

// Re-export the repository interfaces.
type (
	UserRepository         = userRepo.UserRepository
	ProviderRepository     = providerRepo.ProviderRepository
	BookingRepository      = bookingRepo.BookingRepository
	ReviewRepository       = reviewRepo.ReviewRepository
	PaymentRepository      = paymentRepo.PaymentRepository
	NotificationRepository = notificationRepo.NotificationRepository
	VehicleRepository      = vehicleRepo.VehicleRepository
	SessionRepository      = sessionRepo.SessionRepository
)

// Repositories bundles every store-backed repository.
type Repositories struct {
	Users         UserRepository
	Providers     ProviderRepository
	Bookings      BookingRepository
	Reviews       ReviewRepository
	Payments      PaymentRepository
	Notifications NotificationRepository
	Vehicles      VehicleRepository
	Sessions      SessionRepository
}

// New builds every repository over one store.
func New(store database.Store) *Repositories {
	return &Repositories{
		Users:         userRepo.NewStoreUserRepo(store),
		Providers:     providerRepo.NewStoreProviderRepo(store),
		Bookings:      bookingRepo.NewStoreBookingRepo(store),
		Reviews:       reviewRepo.NewStoreReviewRepo(store),
		Payments:      paymentRepo.NewStorePaymentRepo(store),
		Notifications: notificationRepo.NewStoreNotificationRepo(store),
		Vehicles:      vehicleRepo.NewStoreVehicleRepo(store),
		Sessions:      sessionRepo.NewStoreSessionRepo(store),
	}
}
