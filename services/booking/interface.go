package booking

import (
	"context"
	"time"

	"autohub/database/repository"
	"autohub/models"
	"autohub/services/provider"
)

// BookingService covers the booking lifecycle: upcoming -> cancelled, with reschedules in between.
type BookingService interface {
	CreateBooking(ctx context.Context, principal *models.Principal, req models.BookingRequest) (*models.Booking, error)
	// ListBookings returns bookings visible to principal; status "" or "all" disables the status filter.
	ListBookings(ctx context.Context, principal *models.Principal, status string) ([]models.Booking, error)
	GetBooking(ctx context.Context, principal *models.Principal, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch models.BookingUpdateRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, principal *models.Principal, id string) (*models.Booking, error)
	// RescheduleBooking moves the booking to date, or to now + the reschedule offset when date is empty.
	RescheduleBooking(ctx context.Context, principal *models.Principal, id, date string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo             repository.BookingRepository
	Providers        provider.ProviderService
	RescheduleOffset time.Duration
	now              func() time.Time
}

func NewDefaultBookingService(repo repository.BookingRepository, providers provider.ProviderService, rescheduleOffset time.Duration) *DefaultBookingService {
	if rescheduleOffset <= 0 {
		rescheduleOffset = 48 * time.Hour
	}
	return &DefaultBookingService{
		Repo:             repo,
		Providers:        providers,
		RescheduleOffset: rescheduleOffset,
		now:              func() time.Time { return time.Now().UTC() },
	}
}
