package bookingRepo

import (
	"context"

	"autohub/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetAll returns bookings newest first.
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Create prepends the booking.
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	// Update applies the fields present in patch and stamps UpdatedAt; nil when absent.
	Update(ctx context.Context, id string, patch models.BookingUpdateRequest) (*models.Booking, error)
}
